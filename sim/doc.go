// Package sim computes dense pairwise similarity matrices between the
// entities of a recommender system (user–user or item–item) from sparse
// co-rating data, for consumption by neighborhood-based algorithms.
//
// 🚀 What does sim do?
//
//	Given an entity count and a ratings.Table grouped by the opposite
//	axis, it produces an n×n symmetric Matrix under one of four metrics:
//	  • Cosine   — angle between co-rating vectors
//	  • MSD      — inverse mean squared difference
//	  • MSDClone — MSD after removing each pair's average rating offset
//	  • Pearson  — correlation over co-rated evidence
//	plus MeanDiff, the antisymmetric helper matrix MSDClone is built on.
//
// ✨ Key properties:
//   - one shared traversal: every ordered pair drawn from each group
//     updates per-pair running sums, so results are symmetric by
//     construction and independent of id ordering
//   - explicit edge-case policies instead of errors: pairs with no shared
//     evidence score 0 (or their co-rating count for the MSD family);
//     degenerate denominators score 0, never NaN
//   - fixed diagonal conventions: 1 for Cosine/Pearson, 100 for the MSD
//     family, 0 for MeanDiff — placeholders, not computed scores
//   - optional data parallelism: Options.Workers splits the traversal
//     across goroutines with private accumulators merged afterwards
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/lvlsim/ratings"
//	  "github.com/katalvlaran/lvlsim/sim"
//	)
//
//	yr := ratings.Table{
//	  12: {{X: 0, Score: 4}, {X: 1, Score: 4}, {X: 2, Score: 1}},
//	  40: {{X: 0, Score: 5}, {X: 1, Score: 5}},
//	}
//	m, err := sim.Cosine(3, yr, nil) // nil → DefaultOptions
//
// Performance:
//
//   - Time:   O(Σ_y m_y²) accumulation + O(n²) combination, for group
//     sizes m_y and entity count n
//   - Memory: O(n²) per accumulator matrix; with W workers each owns a
//     private copy during accumulation, so budget O(W·n²) at peak
//
// Numeric range: counts accumulate in int64 and sums in float64; keep
// per-pair sums of products below 2^53 (comfortable for any realistic
// rating scale) or precision degrades silently.
//
// All computation is call-local: no state survives between calls, so the
// package is safe for concurrent use from multiple goroutines.
package sim
