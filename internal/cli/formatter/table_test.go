package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	headers := []string{"NAME", "STATUS"}
	rows := [][]string{
		{"March push", "active"},
		{"April", "planned"},
	}

	got := RenderTable(headers, rows)
	assert.Contains(t, got, "NAME")
	assert.Contains(t, got, "March push")
	assert.Contains(t, got, "planned")

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	assert.Len(t, lines, 4) // header + separator + 2 rows
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestRenderTable_ShortRows(t *testing.T) {
	got := RenderTable([]string{"A", "B", "C"}, [][]string{{"only"}})
	assert.Contains(t, got, "only")
}
