// Package sim - shared pairwise co-occurrence accumulation.
//
// All metrics run the same traversal: for every other-axis group, visit
// every ordered pair of its entries (self pairs included) and update
// per-pair running sums indexed by the flat offset i*n + j. Visiting both
// (i,j) and (j,i) makes the sums symmetric by construction and keeps the
// result independent of id ordering within groups; a combinatorial
// half-pair enumeration would have to assume sorted ids to mirror
// correctly. The price is m² updates for a group of size m; that
// O(Σ m²) term dominates the runtime, not the final O(n²) fill.
package sim

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlsim/ratings"
)

// need flags select which running sums a metric allocates; freq is
// always carried.
type need uint8

const (
	needProds   need = 1 << iota // Σ ri·rj
	needSquares                  // Σ ri², Σ rj²
	needSums                     // Σ ri, Σ rj
	needSqDiff                   // Σ (ri−rj)² (possibly mean-adjusted)
	needDiff                     // Σ (ri−rj)
)

// accum holds the per-pair running sums for one metric. Every slice is
// n×n row-major (same layout as Matrix); only the ones the metric asked
// for are allocated. Counts live in int64 and sums in float64 to keep
// the two numeric domains explicit.
type accum struct {
	n      int
	freq   []int64
	prods  []float64
	sqI    []float64
	sqJ    []float64
	sumI   []float64
	sumJ   []float64
	sqDiff []float64
	diff   []float64
}

func newAccum(n int, needs need) *accum {
	a := &accum{n: n, freq: make([]int64, n*n)}
	if needs&needProds != 0 {
		a.prods = make([]float64, n*n)
	}
	if needs&needSquares != 0 {
		a.sqI = make([]float64, n*n)
		a.sqJ = make([]float64, n*n)
	}
	if needs&needSums != 0 {
		a.sumI = make([]float64, n*n)
		a.sumJ = make([]float64, n*n)
	}
	if needs&needSqDiff != 0 {
		a.sqDiff = make([]float64, n*n)
	}
	if needs&needDiff != 0 {
		a.diff = make([]float64, n*n)
	}

	return a
}

// merge folds another worker's partial sums into a. Addition is
// elementwise, so merge order only moves the last ulp; we still merge in
// worker order for reproducible runs at a fixed worker count.
func (a *accum) merge(b *accum) {
	for k, v := range b.freq {
		a.freq[k] += v
	}
	addInto(a.prods, b.prods)
	addInto(a.sqI, b.sqI)
	addInto(a.sqJ, b.sqJ)
	addInto(a.sumI, b.sumI)
	addInto(a.sumJ, b.sumJ)
	addInto(a.sqDiff, b.sqDiff)
	addInto(a.diff, b.diff)
}

// addInto adds src into dst elementwise; both nil (unallocated) or both
// same length.
func addInto(dst, src []float64) {
	for k, v := range src {
		dst[k] += v
	}
}

// updateFunc applies one co-rating pair to the running sums at flat
// offset k. freq has already been incremented by the traversal.
type updateFunc func(a *accum, k int, ri, rj float64)

// groupUpdate visits every ordered pair of one group, self pairs
// included. The diagonal updates are harmless: every metric overwrites
// the diagonal with its placeholder during the fill pass.
func groupUpdate(a *accum, group []ratings.Entry, update updateFunc) {
	n := a.n
	for _, ei := range group {
		row := ei.X * n
		for _, ej := range group {
			k := row + ej.X
			a.freq[k]++
			update(a, k, ei.Score, ej.Score)
		}
	}
}

// accumulate runs the traversal over yr with the given worker count and
// returns the merged sums. Group keys are visited in ascending order so
// sequential runs are bit-for-bit reproducible; parallel runs deal
// groups round-robin to workers and merge partials in worker order, so a
// fixed worker count is reproducible too.
func accumulate(nX int, yr ratings.Table, workers int, needs need, update updateFunc) *accum {
	ys := make([]int, 0, len(yr))
	for y := range yr {
		ys = append(ys, y)
	}
	sort.Ints(ys)

	if workers == 1 || len(ys) == 0 {
		a := newAccum(nX, needs)
		for _, y := range ys {
			groupUpdate(a, yr[y], update)
		}

		return a
	}

	if workers > len(ys) {
		workers = len(ys)
	}
	parts := make([]*accum, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			local := newAccum(nX, needs)
			for idx := w; idx < len(ys); idx += workers {
				groupUpdate(local, yr[ys[idx]], update)
			}
			parts[w] = local

			return nil
		})
	}
	_ = g.Wait() // workers never fail; Wait is the merge barrier

	merged := parts[0]
	for _, p := range parts[1:] {
		merged.merge(p)
	}

	return merged
}

// cellFunc computes the final score for the off-diagonal cell at flat
// offset k, from fully merged sums. Pure and independent per cell.
type cellFunc func(k int) float64

// fillSym fills the upper triangle (j > i) via cell, mirrors each value
// to (j,i), and writes diag on the diagonal. Rows are dealt round-robin
// across workers; a worker writing row i only touches (i, j>i) and their
// mirrors (j>i, i), which no other worker's rows produce, so the passes
// are race-free without locking.
func fillSym(m *Matrix, workers int, diag float64, cell cellFunc) {
	fillRows(m.n, workers, func(i int) {
		m.set(i, i, diag)
		base := i * m.n
		for j := i + 1; j < m.n; j++ {
			m.setSym(i, j, cell(base+j))
		}
	})
}

// fillAnti is fillSym's antisymmetric counterpart: (j,i) receives the
// negated value and the diagonal stays zero.
func fillAnti(m *Matrix, workers int, cell cellFunc) {
	fillRows(m.n, workers, func(i int) {
		base := i * m.n
		for j := i + 1; j < m.n; j++ {
			m.setAnti(i, j, cell(base+j))
		}
	})
}

// fillRows runs fill(i) for every row, sequentially or interleaved
// across workers (row i goes to worker i mod workers, which balances the
// shrinking upper-triangle rows).
func fillRows(n, workers int, fill func(i int)) {
	if workers == 1 || n == 0 {
		for i := 0; i < n; i++ {
			fill(i)
		}

		return
	}

	if workers > n {
		workers = n
	}
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < n; i += workers {
				fill(i)
			}

			return nil
		})
	}
	_ = g.Wait()
}

// prepare validates the input contract and resolves the worker count;
// every public metric starts here.
func prepare(nX int, yr ratings.Table, opts *Options) (int, error) {
	if err := yr.Validate(nX); err != nil {
		return 0, err
	}

	return resolveWorkers(opts)
}
