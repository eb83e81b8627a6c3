package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/errors"
)

// ParseScores coerces textual diag, off-diagonal and dash scores to integers.
// Surrounding whitespace is ignored; values are read in base 10.
//
// Every value that fails to parse is reported; the returned error wraps
// ErrConstruction once per bad value. Scores are only returned when all
// three values are valid.
func ParseScores(diag, offDiag, dash string) (Scores, error) {
	errs := &errors.M{}
	d, err := parseScore("diag", diag)
	errs.Append(err)
	o, err := parseScore("off-diag", offDiag)
	errs.Append(err)
	g, err := parseScore("dash", dash)
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return Scores{}, err
	}

	return Scores{Diag: d, OffDiag: o, Dash: g}, nil
}

func parseScore(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s score %q is not an integer", ErrConstruction, name, raw)
	}

	return v, nil
}
