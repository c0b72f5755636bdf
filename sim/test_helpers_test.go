package sim_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlsim/ratings"
	"github.com/katalvlaran/lvlsim/sim"
)

// metricFunc is the shared shape of every public metric, used by the
// table-driven contract tests.
type metricFunc func(nX int, yr ratings.Table, opts *sim.Options) (*sim.Matrix, error)

// allMetrics enumerates the public entry points by name.
var allMetrics = map[string]metricFunc{
	"Cosine":   sim.Cosine,
	"MSD":      sim.MSD,
	"MSDClone": sim.MSDClone,
	"Pearson":  sim.Pearson,
	"MeanDiff": sim.MeanDiff,
}

// workedTable is the hand-checked fixture used across metric tests:
// three entities, two evidence groups. Entities 0 and 1 agree perfectly
// on both shared groups; entity 2 shares only group 0, where it scores 1
// against 0's and 1's 4.
func workedTable() (int, ratings.Table) {
	return 3, ratings.Table{
		0: {{X: 0, Score: 4}, {X: 1, Score: 4}, {X: 2, Score: 1}},
		1: {{X: 0, Score: 5}, {X: 1, Score: 5}},
	}
}

// disjointTable has two entities that never share an evidence group.
func disjointTable() (int, ratings.Table) {
	return 2, ratings.Table{
		0: {{X: 0, Score: 5}},
		1: {{X: 1, Score: 3}},
	}
}

// randomTable builds a reproducible table: nY groups, each co-rating a
// random subset of nX entities with half-point scores in [0.5, 5].
func randomTable(seed int64, nX, nY, perGroup int) ratings.Table {
	rng := rand.New(rand.NewSource(seed))
	yr := make(ratings.Table, nY)
	for y := 0; y < nY; y++ {
		seen := make(map[int]bool, perGroup)
		group := make([]ratings.Entry, 0, perGroup)
		for len(group) < perGroup {
			x := rng.Intn(nX)
			if seen[x] {
				continue
			}
			seen[x] = true
			score := 0.5 * float64(1+rng.Intn(10))
			group = append(group, ratings.Entry{X: x, Score: score})
		}
		yr[y] = group
	}

	return yr
}

// assertSymmetric checks m[i][j] == m[j][i] exactly; the engine mirrors
// cells rather than recomputing them, so equality is bitwise.
func assertSymmetric(t *testing.T, m *sim.Matrix) {
	t.Helper()
	for i := 0; i < m.N(); i++ {
		for j := i + 1; j < m.N(); j++ {
			assert.Equal(t, m.At(i, j), m.At(j, i), "cell (%d,%d) must mirror (%d,%d)", i, j, j, i)
		}
	}
}

// assertDiagonal checks every diagonal cell equals the pinned placeholder.
func assertDiagonal(t *testing.T, m *sim.Matrix, want float64) {
	t.Helper()
	for i := 0; i < m.N(); i++ {
		assert.Equal(t, want, m.At(i, i), "diagonal cell (%d,%d)", i, i)
	}
}
