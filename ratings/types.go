package ratings

import "fmt"

// Entry is one observed co-rating: the target-axis entity X together with
// the numeric Score it received from one other-axis entity.
type Entry struct {
	X     int
	Score float64
}

// Table maps an other-axis entity id to the ordered list of co-ratings it
// contributed. Keys need not be sorted or contiguous; target-axis ids are
// dense 0-based indices. Each X appears at most once per group (caller
// invariant, see package doc).
type Table map[int][]Entry

// Validate checks the boundary contract between a Table and an entity
// count nX: nX must be non-negative and every Entry.X must lie in
// [0, nX). Returns ErrNegativeEntityCount or ErrEntityOutOfRange wrapped
// with the offending ids; nil when the pair is consistent.
//
// Complexity: O(total entries).
func (t Table) Validate(nX int) error {
	if nX < 0 {
		return fmt.Errorf("Table.Validate(%d): %w", nX, ErrNegativeEntityCount)
	}
	for y, group := range t {
		for _, e := range group {
			if e.X < 0 || e.X >= nX {
				return fmt.Errorf("Table.Validate(%d): group %d mentions entity %d: %w", nX, y, e.X, ErrEntityOutOfRange)
			}
		}
	}

	return nil
}

// NumRatings returns the total number of entries across all groups.
// Useful when budgeting the O(Σ m²) accumulation cost in package sim.
// Complexity: O(groups).
func (t Table) NumRatings() int {
	var total int
	for _, group := range t {
		total += len(group)
	}

	return total
}

// GroupSizes returns, for each group, the length of its co-rating list.
// The accumulation work in package sim is the sum of the squares of these
// sizes, so callers can estimate cost without running anything.
// Complexity: O(groups).
func (t Table) GroupSizes() []int {
	sizes := make([]int, 0, len(t))
	for _, group := range t {
		sizes = append(sizes, len(group))
	}

	return sizes
}
