package align_test

import (
	"testing"

	"github.com/katalvlaran/seqalign/scoring"
	"github.com/stretchr/testify/require"
)

// refScores are the scores of the AAT/AGCT reference scenario.
var refScores = scoring.Scores{Diag: 10, OffDiag: 4, Dash: -4}

// dnaModel builds a rune model over ACGT with the given scores.
func dnaModel(t testing.TB, sc scoring.Scores) *scoring.Model[rune] {
	t.Helper()
	m, err := scoring.NewRunes("ACGT", sc)
	require.NoError(t, err)

	return m
}

// ungap drops every gap symbol from s.
func ungap(s []rune) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r != scoring.DefaultGap {
			out = append(out, r)
		}
	}

	return out
}

// pairScore scores one column without going through a Model.
func pairScore(a, b rune, sc scoring.Scores) int {
	switch {
	case a == scoring.DefaultGap || b == scoring.DefaultGap:
		return sc.Dash
	case a == b:
		return sc.Diag
	default:
		return sc.OffDiag
	}
}

// bestGlobal is an exhaustive top-down search over all alignments of x and y.
// Exponential; keep inputs tiny.
func bestGlobal(x, y []rune, sc scoring.Scores) int {
	switch {
	case len(x) == 0:
		return len(y) * sc.Dash
	case len(y) == 0:
		return len(x) * sc.Dash
	}
	m, n := len(x), len(y)

	return max(
		bestGlobal(x[:m-1], y[:n-1], sc)+pairScore(x[m-1], y[n-1], sc),
		bestGlobal(x[:m-1], y, sc)+sc.Dash,
		bestGlobal(x, y[:n-1], sc)+sc.Dash,
	)
}

// globalDP is a plain bottom-up global scorer used as an oracle for
// sub-window searches.
func globalDP(x, y []rune, sc scoring.Scores) int {
	prev := make([]int, len(y)+1)
	cur := make([]int, len(y)+1)
	for j := 1; j <= len(y); j++ {
		prev[j] = prev[j-1] + sc.Dash
	}
	for i := 1; i <= len(x); i++ {
		cur[0] = prev[0] + sc.Dash
		for j := 1; j <= len(y); j++ {
			cur[j] = max(
				prev[j-1]+pairScore(x[i-1], y[j-1], sc),
				prev[j]+sc.Dash,
				cur[j-1]+sc.Dash,
			)
		}
		prev, cur = cur, prev
	}

	return prev[len(y)]
}

// bestLocal returns the best global score over every pair of contiguous
// sub-windows of x and y, including the empty pair.
func bestLocal(x, y []rune, sc scoring.Scores) int {
	best := 0
	for a := 0; a <= len(x); a++ {
		for b := a; b <= len(x); b++ {
			for c := 0; c <= len(y); c++ {
				for d := c; d <= len(y); d++ {
					best = max(best, globalDP(x[a:b], y[c:d], sc))
				}
			}
		}
	}

	return best
}

// isWindow reports whether sub occurs contiguously in s.
func isWindow(sub, s []rune) bool {
	if len(sub) == 0 {
		return true
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if string(s[i:i+len(sub)]) == string(sub) {
			return true
		}
	}

	return false
}
