package sim

import (
	"math"

	"github.com/katalvlaran/lvlsim/ratings"
)

// Diagonal placeholders. Self-similarity is never a computed score; these
// fixed conventions are part of the pinned output shape and downstream
// code must not read meaning into them.
const (
	cosineDiag  = 1.0
	pearsonDiag = 1.0
	msdDiag     = 100.0
)

// Cosine computes the pairwise cosine similarity matrix.
//
// For each pair (i, j) it accumulates, over the other-axis entities that
// rated both:
//
//	prods = Σ ri·rj    sqI = Σ ri²    sqJ = Σ rj²
//
// and scores the pair prods / √(sqI·sqJ). Pairs with no shared evidence
// score 0, as do pairs whose denominator vanishes (an all-zero side).
// The diagonal is fixed at 1.
//
// Complexity: O(Σ m²) accumulation + O(n²) fill; O(n²) memory per
// accumulator (×Workers during accumulation).
//
// Errors: ratings.ErrNegativeEntityCount, ratings.ErrEntityOutOfRange,
// ErrBadWorkers.
func Cosine(nX int, yr ratings.Table, opts *Options) (*Matrix, error) {
	workers, err := prepare(nX, yr, opts)
	if err != nil {
		return nil, err
	}

	acc := accumulate(nX, yr, workers, needProds|needSquares, func(a *accum, k int, ri, rj float64) {
		a.prods[k] += ri * rj
		a.sqI[k] += ri * ri
		a.sqJ[k] += rj * rj
	})

	m := newMatrix(nX)
	fillSym(m, workers, cosineDiag, func(k int) float64 {
		if acc.freq[k] == 0 {
			return 0
		}
		denom := math.Sqrt(acc.sqI[k] * acc.sqJ[k])
		if denom == 0 {
			return 0
		}

		return acc.prods[k] / denom
	})

	return m, nil
}
