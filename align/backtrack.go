package align

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/seqalign/matrix"
	"github.com/katalvlaran/seqalign/scoring"
)

// move is one backtracking step.
type move uint8

const (
	moveDiag move = iota // consume x[i-1] and y[j-1]
	moveUp               // consume x[i-1], gap in Y
	moveLeft             // consume y[j-1], gap in X
)

// tracer holds the state shared by the global and local walks. Aligned
// columns are appended in reverse and flipped once by finish.
type tracer[S comparable] struct {
	x, y   []S
	xi, yi []int
	model  *scoring.Model[S]
	grid   *matrix.Dense
	gap    int
	ax, ay []S
}

// newTracer validates the inputs of a reconstruction and prepares the walk.
func newTracer[S comparable](x, y []S, model *scoring.Model[S], m *Matrix, want Mode) (*tracer[S], error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.mode != want {
		return nil, fmt.Errorf("%w: matrix is %v, want %v", ErrModeMismatch, m.mode, want)
	}
	if m.Rows() != len(x)+1 || m.Cols() != len(y)+1 {
		return nil, fmt.Errorf("%w: matrix is %dx%d, sequences need %dx%d",
			ErrDimensionMismatch, m.Rows(), m.Cols(), len(x)+1, len(y)+1)
	}
	xi, err := model.Indices(x)
	if err != nil {
		return nil, fmt.Errorf("align: sequence x: %w", err)
	}
	yi, err := model.Indices(y)
	if err != nil {
		return nil, fmt.Errorf("align: sequence y: %w", err)
	}
	capacity := len(x) + len(y)

	return &tracer[S]{
		x:     x,
		y:     y,
		xi:    xi,
		yi:    yi,
		model: model,
		grid:  m.grid,
		gap:   model.GapIndex(),
		ax:    make([]S, 0, capacity),
		ay:    make([]S, 0, capacity),
	}, nil
}

// choose picks the move that explains cell (i, j), with i, j > 0.
// Priority: diagonal, then up, then left.
func (t *tracer[S]) choose(i, j int) (move, error) {
	cur, err := t.grid.At(i, j)
	if err != nil {
		return 0, err
	}
	diag, err := t.grid.At(i-1, j-1)
	if err != nil {
		return 0, err
	}
	if cur == diag+t.model.ScoreAt(t.xi[i-1], t.yi[j-1]) {
		return moveDiag, nil
	}
	up, err := t.grid.At(i-1, j)
	if err != nil {
		return 0, err
	}
	if cur == up+t.model.ScoreAt(t.xi[i-1], t.gap) {
		return moveUp, nil
	}

	return moveLeft, nil
}

// apply emits the aligned column for mv and returns the next cell.
func (t *tracer[S]) apply(mv move, i, j int) (int, int) {
	g := t.model.Gap()
	switch mv {
	case moveDiag:
		t.ax = append(t.ax, t.x[i-1])
		t.ay = append(t.ay, t.y[j-1])
		return i - 1, j - 1
	case moveUp:
		t.ax = append(t.ax, t.x[i-1])
		t.ay = append(t.ay, g)
		return i - 1, j
	default:
		t.ax = append(t.ax, g)
		t.ay = append(t.ay, t.y[j-1])
		return i, j - 1
	}
}

// finish flips the aligned buffers, checks equal length and recomputes the
// score against want.
func (t *tracer[S]) finish(want int) (Result[S], error) {
	slices.Reverse(t.ax)
	slices.Reverse(t.ay)
	if len(t.ax) != len(t.ay) {
		return Result[S]{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(t.ax), len(t.ay))
	}
	score, err := Rescore(t.ax, t.ay, t.model)
	if err != nil {
		return Result[S]{}, err
	}
	if score != want {
		return Result[S]{}, fmt.Errorf("%w: got %d, matrix has %d", ErrScoreMismatch, score, want)
	}

	return Result[S]{Score: score, X: t.ax, Y: t.ay}, nil
}

// Rescore sums model scores over the aligned columns of ax and ay.
// Errors: ErrNilModel, ErrLengthMismatch, scoring.ErrUnknownSymbol.
func Rescore[S comparable](ax, ay []S, model *scoring.Model[S]) (int, error) {
	if model == nil {
		return 0, ErrNilModel
	}
	if len(ax) != len(ay) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(ax), len(ay))
	}
	total := 0
	for k := range ax {
		s, err := model.Score(ax[k], ay[k])
		if err != nil {
			return 0, fmt.Errorf("align: column %d: %w", k, err)
		}
		total += s
	}

	return total, nil
}
