package sim

import (
	"math"

	"github.com/katalvlaran/lvlsim/ratings"
)

// Pearson computes the pairwise Pearson correlation matrix.
//
// For each pair (i, j) it accumulates, over shared other-axis entities,
// freq, prods = Σ ri·rj, sqI = Σ ri², sqJ = Σ rj², sumI = Σ ri and
// sumJ = Σ rj, then scores the pair with n = freq:
//
//	num   = n·prods − sumI·sumJ
//	denum = √((n·sqI − sumI²)·(n·sqJ − sumJ²))
//	score = num / denum
//
// A vanishing denominator (no shared evidence, a single co-rating, or a
// constant side) means correlation is undefined and scores 0.
// The diagonal is fixed at 1.
//
// Because the correlation is computed over co-rated evidence only, an
// affine rescaling of one side (rj = a·ri + b, a > 0) scores exactly 1.
//
// Complexity: O(Σ m²) accumulation + O(n²) fill; O(n²) memory per
// accumulator (×Workers during accumulation).
//
// Errors: ratings.ErrNegativeEntityCount, ratings.ErrEntityOutOfRange,
// ErrBadWorkers.
func Pearson(nX int, yr ratings.Table, opts *Options) (*Matrix, error) {
	workers, err := prepare(nX, yr, opts)
	if err != nil {
		return nil, err
	}

	acc := accumulate(nX, yr, workers, needProds|needSquares|needSums, func(a *accum, k int, ri, rj float64) {
		a.prods[k] += ri * rj
		a.sqI[k] += ri * ri
		a.sqJ[k] += rj * rj
		a.sumI[k] += ri
		a.sumJ[k] += rj
	})

	m := newMatrix(nX)
	fillSym(m, workers, pearsonDiag, func(k int) float64 {
		n := float64(acc.freq[k])
		num := n*acc.prods[k] - acc.sumI[k]*acc.sumJ[k]
		denum := math.Sqrt((n*acc.sqI[k] - acc.sumI[k]*acc.sumI[k]) * (n*acc.sqJ[k] - acc.sumJ[k]*acc.sumJ[k]))
		if denum == 0 {
			return 0
		}

		return num / denum
	})

	return m, nil
}
