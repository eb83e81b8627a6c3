package scoring

import "errors"

// Sentinel errors for scoring model construction and lookup.
var (
	// ErrConstruction indicates the model could not be built from the given input.
	ErrConstruction = errors.New("scoring: cannot build model")

	// ErrGapInAlphabet indicates the gap symbol is also listed in the alphabet.
	// Errors carrying it also match ErrConstruction.
	ErrGapInAlphabet = errors.New("scoring: gap symbol must not be part of the alphabet")

	// ErrUnknownSymbol indicates a symbol outside alphabet ∪ {gap}.
	ErrUnknownSymbol = errors.New("scoring: symbol not covered by model")

	// ErrNilModel indicates a nil *Model receiver.
	ErrNilModel = errors.New("scoring: nil model")
)
