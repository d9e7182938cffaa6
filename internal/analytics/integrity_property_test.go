package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Property sweep: for every (motion, action) pair in a bounded grid the
// score stays in [0,100], lands in its band, and is non-decreasing in
// action while motion is held fixed.
func TestIntegrityScore_Properties(t *testing.T) {
	const limit = 60

	for motion := 0; motion <= limit; motion++ {
		prev := -1
		for action := 0; action <= limit; action++ {
			score, err := IntegrityScore(motion, action)
			require.NoError(t, err)
			require.GreaterOrEqual(t, score, 0, "motion=%d action=%d", motion, action)
			require.LessOrEqual(t, score, 100, "motion=%d action=%d", motion, action)

			if motion == 0 && action == 0 {
				require.Equal(t, 100, score)
				// The all-zero case sits outside the band mapping; do not
				// feed it into the monotonicity chain.
				continue
			}

			ratio := float64(action) / float64(motion+action)
			switch {
			case ratio >= 0.8:
				require.GreaterOrEqual(t, score, 90, "motion=%d action=%d", motion, action)
			case ratio >= 0.5:
				require.GreaterOrEqual(t, score, 60, "motion=%d action=%d", motion, action)
				require.Less(t, score, 90, "motion=%d action=%d", motion, action)
			default:
				require.Less(t, score, 60, "motion=%d action=%d", motion, action)
			}

			if prev >= 0 {
				require.GreaterOrEqual(t, score, prev,
					"score decreased in action: motion=%d action=%d", motion, action)
			}
			prev = score
		}
	}
}
