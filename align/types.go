package align

import (
	"fmt"
	"strings"
)

// Mode selects global (Needleman–Wunsch) or local (Smith–Waterman) semantics.
type Mode int

const (
	// Global aligns both sequences end to end; cells are not clamped.
	Global Mode = iota

	// Local aligns the best-scoring sub-windows; every cell is floored at 0.
	Local
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Global:
		return "global"
	case Local:
		return "local"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) valid() bool {
	return m == Global || m == Local
}

// clamp applies the mode's floor to a candidate cell value.
func (m Mode) clamp(v int) int {
	if m == Local && v < 0 {
		return 0
	}

	return v
}

// ParseMode maps "global" or "local" (any case, surrounding spaces ignored)
// to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global":
		return Global, nil
	case "local":
		return Local, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Result is one optimal alignment.
// X and Y have equal length; gaps are written with the model's gap symbol.
type Result[S comparable] struct {
	Score int
	X, Y  []S
}

// Len returns the number of aligned columns.
func (r Result[S]) Len() int {
	return len(r.X)
}
