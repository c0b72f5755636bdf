package sim

import (
	"fmt"
	"strings"
)

// Matrix is a dense square matrix of float64 scores stored row-major in a
// flat slice (offset i*n + j) for cache friendliness. The engine returns
// it fully populated; callers own it afterwards and may read it freely
// from any number of goroutines.
type Matrix struct {
	n    int // side length (>= 0)
	data []float64
}

// newMatrix allocates a zero-filled n×n Matrix. n == 0 yields a legal
// empty matrix.
func newMatrix(n int) *Matrix {
	return &Matrix{n: n, data: make([]float64, n*n)}
}

// N returns the side length of the matrix.
// Complexity: O(1).
func (m *Matrix) N() int {
	return m.n
}

// At returns the score at (i, j). It panics with a descriptive message if
// either index is outside [0, N()): the flat layout would otherwise alias
// a neighboring row and return a silently wrong value.
// Complexity: O(1).
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("sim: Matrix.At(%d,%d): index out of range for %d×%d matrix", i, j, m.n, m.n))
	}

	return m.data[i*m.n+j]
}

// Row returns a read-only view of row i (same backing storage).
// Panics on an out-of-range index, like At.
// Complexity: O(1).
func (m *Matrix) Row(i int) []float64 {
	if i < 0 || i >= m.n {
		panic(fmt.Sprintf("sim: Matrix.Row(%d): index out of range for %d×%d matrix", i, m.n, m.n))
	}

	return m.data[i*m.n : (i+1)*m.n]
}

// set writes a single cell; used for diagonal placeholders.
func (m *Matrix) set(i, j int, v float64) {
	m.data[i*m.n+j] = v
}

// setSym writes v at (i,j) and mirrors it to (j,i).
func (m *Matrix) setSym(i, j int, v float64) {
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v
}

// setAnti writes v at (i,j) and -v at (j,i).
func (m *Matrix) setAnti(i, j int, v float64) {
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = -v
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n²) for string construction.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.n; i++ {
		b.WriteString("[")
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.n+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
