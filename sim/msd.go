package sim

import "github.com/katalvlaran/lvlsim/ratings"

// MSD computes the inverse mean-squared-difference similarity matrix.
//
// For each pair (i, j) it accumulates, over shared other-axis entities,
// the co-rating count freq and sqDiff = Σ (ri−rj)², then scores the pair
// freq / sqDiff. Pairs in perfect agreement (sqDiff == 0) score their raw
// co-rating count instead: dividing by the vanishing dispersion is
// undefined, and the count still rewards pairs with more shared evidence.
// That branch also covers pairs with no shared evidence, which score 0.
// The diagonal is fixed at 100.
//
// Complexity: O(Σ m²) accumulation + O(n²) fill; O(n²) memory per
// accumulator (×Workers during accumulation).
//
// Errors: ratings.ErrNegativeEntityCount, ratings.ErrEntityOutOfRange,
// ErrBadWorkers.
func MSD(nX int, yr ratings.Table, opts *Options) (*Matrix, error) {
	workers, err := prepare(nX, yr, opts)
	if err != nil {
		return nil, err
	}

	acc := accumulate(nX, yr, workers, needSqDiff, func(a *accum, k int, ri, rj float64) {
		d := ri - rj
		a.sqDiff[k] += d * d
	})

	m := newMatrix(nX)
	fillSym(m, workers, msdDiag, msdCell(acc))

	return m, nil
}

// MSDClone computes the bias-corrected variant of MSD: each pairwise
// difference is first reduced by the pair's mean offset (see MeanDiff)
// before squaring, so a pair whose ratings differ by a constant shift
// (one entity scoring everything half a point higher, say) still counts
// as perfect agreement. The combination rule and the 100 diagonal match
// MSD exactly.
//
// Runs the traversal twice (mean offsets, then adjusted dispersions), so
// it costs twice the accumulation of MSD.
//
// Errors: ratings.ErrNegativeEntityCount, ratings.ErrEntityOutOfRange,
// ErrBadWorkers.
func MSDClone(nX int, yr ratings.Table, opts *Options) (*Matrix, error) {
	workers, err := prepare(nX, yr, opts)
	if err != nil {
		return nil, err
	}
	md := meanDiff(nX, yr, workers)

	acc := accumulate(nX, yr, workers, needSqDiff, func(a *accum, k int, ri, rj float64) {
		d := ri - rj - md.data[k]
		a.sqDiff[k] += d * d
	})

	m := newMatrix(nX)
	fillSym(m, workers, msdDiag, msdCell(acc))

	return m, nil
}

// msdCell is the combination rule shared by MSD and MSDClone.
func msdCell(acc *accum) cellFunc {
	return func(k int) float64 {
		if acc.sqDiff[k] == 0 {
			return float64(acc.freq[k])
		}

		return float64(acc.freq[k]) / acc.sqDiff[k]
	}
}

// MeanDiff computes the helper matrix of mean pairwise rating offsets:
// cell (i, j) holds the average of ri−rj over the other-axis entities
// that rated both, or 0 when none did. The matrix is antisymmetric
// (mean[j][i] == -mean[i][j]) with a zero diagonal. It is not a
// similarity — MSDClone consumes it to cancel systematic rating-scale
// bias, and it doubles as a bias diagnostic on its own.
//
// Complexity and errors as for MSD.
func MeanDiff(nX int, yr ratings.Table, opts *Options) (*Matrix, error) {
	workers, err := prepare(nX, yr, opts)
	if err != nil {
		return nil, err
	}

	return meanDiff(nX, yr, workers), nil
}

// meanDiff is the validated core of MeanDiff, shared with MSDClone.
func meanDiff(nX int, yr ratings.Table, workers int) *Matrix {
	acc := accumulate(nX, yr, workers, needDiff, func(a *accum, k int, ri, rj float64) {
		a.diff[k] += ri - rj
	})

	m := newMatrix(nX)
	fillAnti(m, workers, func(k int) float64 {
		if acc.freq[k] == 0 {
			return 0
		}

		return acc.diff[k] / float64(acc.freq[k])
	})

	return m
}
