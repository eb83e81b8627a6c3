// SPDX-License-Identifier: MIT

package scoring

import "fmt"

// Model is an immutable substitution scoring model over an alphabet of
// comparable symbols plus one reserved gap symbol.
//
// Layout:
//   - index maps every alphabet symbol to 0..k-1 in first-seen order;
//     the gap takes index k.
//   - table is a flat (k+1)x(k+1) row-major buffer, offset = i*(k+1) + j.
type Model[S comparable] struct {
	alphabet []S       // deduplicated, first-seen order
	gap      S         // reserved sentinel, never in alphabet
	scores   Scores    // values the table was built from
	index    map[S]int // symbol -> row/column; gap -> len(alphabet)
	table    []int     // len == (k+1)*(k+1)
	width    int       // k+1
}

// New builds a scoring model over alphabet with the given gap symbol.
// Implementation:
//   - Stage 1: collapse duplicate symbols, reject a gap found in the alphabet.
//   - Stage 2: fill the k×k block with Diag/OffDiag.
//   - Stage 3: fill the gap row and column with Dash, gap/gap with Diag.
//
// Errors:
//   - ErrGapInAlphabet (also matches ErrConstruction).
//
// Complexity: O(k²) time and memory.
func New[S comparable](alphabet []S, gap S, scores Scores) (*Model[S], error) {
	index := make(map[S]int, len(alphabet)+1)
	symbols := make([]S, 0, len(alphabet))
	for _, s := range alphabet {
		if s == gap {
			return nil, fmt.Errorf("%w: %w (%v)", ErrConstruction, ErrGapInAlphabet, gap)
		}
		if _, seen := index[s]; seen {
			continue
		}
		index[s] = len(symbols)
		symbols = append(symbols, s)
	}
	k := len(symbols)
	index[gap] = k

	width := k + 1
	table := make([]int, width*width)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if i == j {
				table[i*width+j] = scores.Diag
			} else {
				table[i*width+j] = scores.OffDiag
			}
		}
		table[i*width+k] = scores.Dash
		table[k*width+i] = scores.Dash
	}
	// gap/gap follows the diagonal, see package doc.
	table[k*width+k] = scores.Diag

	return &Model[S]{
		alphabet: symbols,
		gap:      gap,
		scores:   scores,
		index:    index,
		table:    table,
		width:    width,
	}, nil
}

// NewFromStrings coerces the textual scores with ParseScores and builds the
// model. Construction is rejected if any score fails to parse.
func NewFromStrings[S comparable](alphabet []S, gap S, diag, offDiag, dash string) (*Model[S], error) {
	scores, err := ParseScores(diag, offDiag, dash)
	if err != nil {
		return nil, err
	}

	return New(alphabet, gap, scores)
}

// NewRunes builds a rune model over the characters of alphabet, using
// DefaultGap as the gap symbol.
func NewRunes(alphabet string, scores Scores) (*Model[rune], error) {
	return New([]rune(alphabet), rune(DefaultGap), scores)
}

// AlphabetOf returns the union of the symbols in seqs, in first-seen order.
func AlphabetOf[S comparable](seqs ...[]S) []S {
	seen := make(map[S]struct{})
	var out []S
	for _, seq := range seqs {
		for _, s := range seq {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}

	return out
}

// Gap returns the gap symbol.
func (m *Model[S]) Gap() S {
	return m.gap
}

// Alphabet returns a copy of the deduplicated alphabet in first-seen order.
func (m *Model[S]) Alphabet() []S {
	out := make([]S, len(m.alphabet))
	copy(out, m.alphabet)

	return out
}

// Scores returns the scores the model was built from.
func (m *Model[S]) Scores() Scores {
	return m.scores
}

// Contains reports whether s is an alphabet symbol or the gap.
func (m *Model[S]) Contains(s S) bool {
	_, ok := m.index[s]

	return ok
}

// Score returns score(x, y).
// Errors: ErrNilModel, ErrUnknownSymbol.
// Complexity: O(1).
func (m *Model[S]) Score(x, y S) (int, error) {
	if m == nil {
		return 0, ErrNilModel
	}
	i, ok := m.index[x]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownSymbol, x)
	}
	j, ok := m.index[y]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownSymbol, y)
	}

	return m.table[i*m.width+j], nil
}

// GapIndex returns the table index of the gap symbol.
func (m *Model[S]) GapIndex() int {
	return m.width - 1
}

// Indices translates seq into table indices for use with ScoreAt.
// It fails fast on the first symbol the model does not cover, reporting
// its position.
// Complexity: O(len(seq)).
func (m *Model[S]) Indices(seq []S) ([]int, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	out := make([]int, len(seq))
	for p, s := range seq {
		i, ok := m.index[s]
		if !ok {
			return nil, fmt.Errorf("%w: %v at position %d", ErrUnknownSymbol, s, p)
		}
		out[p] = i
	}

	return out, nil
}

// ScoreAt returns the score for table indices i, j as produced by Indices
// or GapIndex. Indices outside the table panic like any slice access.
func (m *Model[S]) ScoreAt(i, j int) int {
	return m.table[i*m.width+j]
}
