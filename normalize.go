package clustering

import (
	"fmt"
	"math"
)

// MissingPolicy selects how a pair with exactly one zero measurement is
// normalized. Historical revisions of the normalizer disagree on this
// branch, so it is exposed as a policy rather than hard-coded.
type MissingPolicy string

const (
	// MissingArithmeticMean treats a single zero as a missing reciprocal
	// measurement and falls back to the arithmetic mean of the two raw
	// values. This is the default.
	MissingArithmeticMean MissingPolicy = "mean"

	// MissingZero treats a single zero as a perfect match and normalizes
	// the pair to zero.
	MissingZero MissingPolicy = "zero"
)

// Normalize converts a flat list of raw, possibly asymmetric pairwise
// measurements into a symmetric score matrix. rawScores is row-major over
// all ordered pairs including self-pairs, so its length must be n² for n
// elements; n is recovered as the integer square root of the length, and
// any trailing entries beyond n² are silently discarded.
//
// Each unordered pair (i, j) is normalized to the harmonic mean of the two
// reciprocal measurements, 2ab/(a+b). If both are zero the score is zero;
// if exactly one is zero the policy decides. Diagonal entries are forced
// to zero.
func Normalize(rawScores []float64, policy MissingPolicy) (*ScoreMatrix, error) {
	n := int(math.Sqrt(float64(len(rawScores))))
	if n < 1 {
		return nil, fmt.Errorf("clustering: need at least one measurement, got %d", len(rawScores))
	}

	m, err := NewScoreMatrix(n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a := rawScores[i*n+j]
			b := rawScores[j*n+i]

			var score float64
			switch {
			case a == 0 && b == 0:
				score = 0
			case a == 0 || b == 0:
				if policy == MissingArithmeticMean {
					score = (a + b) / 2
				}
			default:
				score = 2 * a * b / (a + b)
			}
			m.Set(i, j, score)
		}
	}

	return m, nil
}
