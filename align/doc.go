// Package align computes optimal pairwise sequence alignments with
// dynamic programming: Needleman–Wunsch (global) and Smith–Waterman (local)
// under a linear gap model.
//
// 🚀 Pipeline
//
//	scoring.Model ─▶ BuildMatrix ─▶ ReconstructGlobal / ReconstructLocal
//
//	1. Build a scoring.Model over the alphabet of both sequences.
//	2. BuildMatrix fills an (m+1)x(n+1) table of best sub-alignment scores.
//	   Global and Local differ only in the clamp: Local floors every cell at 0.
//	3. Reconstruct walks the table back from its start cell and emits one
//	   optimal alignment. Ties are broken diagonal > up > left.
//
// ✨ Guarantees:
//   - deterministic output for identical input
//   - aligned X and Y always have equal length
//   - the returned score is recomputed from the aligned pairs and checked
//     against the table (ErrScoreMismatch otherwise)
//
// ⚙️ Usage:
//
//	x, y := []rune("AAT"), []rune("AGCT")
//	model, _ := scoring.New(scoring.AlphabetOf(x, y), '-', scoring.Scores{Diag: 10, OffDiag: 4, Dash: -4})
//	res, err := align.NeedlemanWunsch(x, y, model)
//	// res.Score == 20, string(res.X) == "A-AT", string(res.Y) == "AGCT"
//
// Complexity:
//
//   - Time:   O(m·n)
//   - Memory: O(m·n), the full table is kept for backtracking
//
// All functions are pure; independent pairs may be aligned concurrently.
package align
