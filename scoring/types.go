package scoring

// DefaultGap is the gap symbol used by rune and byte models.
const DefaultGap = '-'

// Scores holds the three integers that define a scoring model.
//
// Fields:
//   - Diag    — score(x, x) for every alphabet symbol, and score(gap, gap).
//   - OffDiag — score(x, y) for distinct alphabet symbols x, y.
//   - Dash    — score(x, gap) == score(gap, x) for every alphabet symbol.
type Scores struct {
	Diag    int
	OffDiag int
	Dash    int
}

// DefaultScores returns unit edit-style scores:
// Diag=1, OffDiag=-1, Dash=-1.
func DefaultScores() Scores {
	return Scores{
		Diag:    1,
		OffDiag: -1,
		Dash:    -1,
	}
}
