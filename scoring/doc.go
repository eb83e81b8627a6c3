// Package scoring builds substitution scoring models for pairwise sequence
// alignment.
//
// 🚀 What is a scoring model?
//
//	A total function over pairs of symbols drawn from an alphabet plus one
//	reserved gap symbol. Three integers define it:
//	  • Diag    — score of a symbol aligned with itself
//	  • OffDiag — score of two different (non-gap) symbols
//	  • Dash    — score of any symbol aligned with the gap
//
// ✨ Key features:
//   - generic over any comparable symbol type (rune, byte, int, enums)
//   - immutable once built; safe for concurrent readers
//   - O(1) lookups through a flat (k+1)x(k+1) table, gap at index k
//   - textual score coercion with every bad value reported at once
//
// Policy note: the gap/gap cell is scored with Diag, not Dash. Historical
// builders disagreed on this; Diag is the documented contract here. The cell
// is never reached by alignments of gap-free sequences.
//
// ⚙️ Usage:
//
//	model, err := scoring.NewRunes("ACGT", scoring.Scores{Diag: 10, OffDiag: 4, Dash: -4})
//	if err != nil {
//	  // handle ErrGapInAlphabet
//	}
//	s, _ := model.Score('A', '-') // -4
package scoring
