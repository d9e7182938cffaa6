package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name    string
		pct     float64
		width   int
		wantPct string
	}{
		{"zero", 0, 10, "0%"},
		{"half", 0.5, 10, "50%"},
		{"full", 1, 10, "100%"},
		{"clamped above", 1.4, 10, "100%"},
		{"clamped below", -0.2, 10, "0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, tt.width)
			assert.Contains(t, got, tt.wantPct)
		})
	}
}

func TestRenderProgress_BarWidth(t *testing.T) {
	got := RenderProgress(0.5, 10)
	assert.Equal(t, 5, strings.Count(got, filledBlock))
	assert.Equal(t, 5, strings.Count(got, emptyBlock))
}
