// Package lvlsim is the similarity core for neighborhood-based
// recommenders: it turns sparse co-rating data into dense pairwise
// similarity matrices between users or between items.
//
// 🚀 What is lvlsim?
//
//	A small, pure-Go engine that takes ratings grouped by one axis and
//	compares the entities of the other:
//		• Cosine, MSD, bias-corrected MSD and Pearson metrics
//		• symmetric n×n output with pinned diagonal conventions
//		• explicit fallback policies instead of NaNs or errors
//		• optional data parallelism with per-worker accumulators
//
// ✨ Why choose lvlsim?
//
//   - Deterministic — fixed traversal order, reproducible output
//   - Reentrant — no state survives a call; safe for concurrent batches
//   - Honest about cost — O(Σ m²) time and O(n²) memory, documented
//     up front instead of hidden behind sparsity tricks
//
// Everything lives in two subpackages:
//
//	ratings/ — the sparse co-rating Table and its boundary validation
//	sim/     — the four similarity metrics, the MeanDiff helper and the
//	           dense symmetric Matrix they produce
//
// Loading rating data, picking neighborhoods and predicting scores are
// deliberately out of scope: feed this engine a ratings.Table and an
// entity count, take the Matrix, and build your recommender downstream.
//
//	go get github.com/katalvlaran/lvlsim
package lvlsim
