// Package ratings defines the sparse co-rating structure consumed by the
// similarity engine in package sim, plus its boundary validation.
//
// The data is organized "by the other axis": to compare items, group the
// ratings by user; to compare users, group them by item. Each group lists
// the target-axis entities that share that evidence, together with the
// score each one received:
//
//	yr := ratings.Table{
//	  12: {{X: 0, Score: 4}, {X: 1, Score: 4}, {X: 2, Score: 1}},
//	  40: {{X: 0, Score: 5}, {X: 1, Score: 5}},
//	}
//
// Target-axis ids are dense 0-based indices below the entity count the
// caller supplies; group keys may be arbitrary ints in any order. A group
// must mention each target-axis id at most once (one score per pair of
// entities) — that invariant belongs to the loader and is not re-checked
// here.
//
// Validate enforces the cheap structural contract (non-negative entity
// count, all ids in range) and returns sentinel errors matched with
// errors.Is. Tables are read-only for the engine: no function in this
// package mutates one.
package ratings
