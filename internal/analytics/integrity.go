package analytics

import (
	"errors"
	"math"
	"strings"
)

// ErrNegativeUnits is the precondition violation for integrity scoring.
// It is distinct from any zero-value output: "no activity" scores 100, it
// does not error.
var ErrNegativeUnits = errors.New("motion and action units must be non-negative")

// IntegrityScore maps a motion/action unit split onto a 0..100 score.
//
// No activity at all scores 100: absence of evidence is not evidence of
// dishonesty. Otherwise the action ratio action/(motion+action) runs through
// three monotonic bands, piecewise-linear and continuous at the 0.5/0.8
// boundaries:
//
//	ratio >= 0.8        -> 90..100
//	0.5 <= ratio < 0.8  -> 60..90
//	ratio < 0.5         ->  0..60
func IntegrityScore(motionUnits, actionUnits int) (int, error) {
	if motionUnits < 0 || actionUnits < 0 {
		return 0, ErrNegativeUnits
	}
	if motionUnits == 0 && actionUnits == 0 {
		return 100, nil
	}

	ratio := float64(actionUnits) / float64(motionUnits+actionUnits)

	var score float64
	switch {
	case ratio >= 0.8:
		score = 90 + (ratio-0.8)/0.2*10
	case ratio >= 0.5:
		score = 60 + (ratio-0.5)/0.3*30
	default:
		score = ratio / 0.5 * 60
	}

	// Floor keeps each band inside its half-open bucket after quantization.
	return int(math.Floor(score)), nil
}

// ValidateProofOfWork checks that claimed units carry substantive evidence.
// Nothing claimed needs nothing proven; otherwise the trimmed proof text
// must be at least 10 characters.
func ValidateProofOfWork(units int, proofText string) bool {
	if units == 0 {
		return true
	}
	return len(strings.TrimSpace(proofText)) >= 10
}
