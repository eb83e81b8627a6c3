package scoring_test

import (
	"testing"

	"github.com/katalvlaran/seqalign/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScores(t *testing.T) {
	s, err := scoring.ParseScores("10", " 4 ", "-4")
	require.NoError(t, err)
	assert.Equal(t, scoring.Scores{Diag: 10, OffDiag: 4, Dash: -4}, s)
}

// TestParseScores_Rejects verifies that non-integer input is rejected
// instead of being carried into the model.
func TestParseScores_Rejects(t *testing.T) {
	cases := []struct {
		name            string
		diag, off, dash string
		mentions        []string
	}{
		{"word", "ten", "4", "-4", []string{"diag"}},
		{"float", "10", "4.5", "-4", []string{"off-diag"}},
		{"empty", "10", "4", "", []string{"dash"}},
		{"all bad", "a", "b", "c", []string{"diag", "off-diag", "dash"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := scoring.ParseScores(tc.diag, tc.off, tc.dash)
			require.ErrorIs(t, err, scoring.ErrConstruction)
			assert.Equal(t, scoring.Scores{}, s)
			for _, m := range tc.mentions {
				assert.Contains(t, err.Error(), m+" score")
			}
		})
	}
}

func TestNewFromStrings(t *testing.T) {
	m, err := scoring.NewFromStrings([]rune("AC"), '-', "3", "-1", "-2")
	require.NoError(t, err)
	s, err := m.Score('A', '-')
	require.NoError(t, err)
	assert.Equal(t, -2, s)

	m, err = scoring.NewFromStrings([]rune("AC"), '-', "3", "x", "-2")
	require.ErrorIs(t, err, scoring.ErrConstruction)
	assert.Nil(t, m)
}
