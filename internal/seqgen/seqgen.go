// Package seqgen generates reproducible random symbol sequences for tests,
// benchmarks and examples. Output depends only on Options, never on time.
package seqgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Sentinel errors for sequence generation.
var (
	// ErrBadLength indicates a negative sequence length.
	ErrBadLength = errors.New("seqgen: length must be >= 0")

	// ErrEmptyAlphabet indicates an alphabet without symbols.
	ErrEmptyAlphabet = errors.New("seqgen: alphabet is empty")

	// ErrBadRate indicates a mutation rate outside [0, 1].
	ErrBadRate = errors.New("seqgen: rate must be within [0, 1]")
)

// DNA is the nucleotide alphabet.
const DNA = "ACGT"

// defaultSeed stands in for Options.Seed == 0.
const defaultSeed uint64 = 0x5eed

// Stream ids keep Runes and Mutate independent under one seed.
const (
	streamRunes uint64 = iota + 1
	streamMutate
)

// Options configures generation.
type Options struct {
	// Length is the number of symbols Runes produces.
	Length int
	// Alphabet lists the symbols to draw from, uniformly.
	Alphabet []rune
	// Seed selects the stream; 0 means the package default seed.
	Seed int64
}

// DefaultOptions returns Length=32 over DNA with the default seed.
func DefaultOptions() Options {
	return Options{
		Length:   32,
		Alphabet: []rune(DNA),
		Seed:     0,
	}
}

func (o Options) validate() error {
	if o.Length < 0 {
		return fmt.Errorf("%w: %d", ErrBadLength, o.Length)
	}
	if len(o.Alphabet) == 0 {
		return ErrEmptyAlphabet
	}

	return nil
}

// source returns a PCG generator for the given stream. A *rand.Rand is not
// safe for concurrent use; each call gets its own.
func (o Options) source(stream uint64) *rand.Rand {
	seed := uint64(o.Seed)
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewPCG(seed, stream))
}

// Runes returns opts.Length symbols drawn uniformly from opts.Alphabet.
// Complexity: O(Length).
func Runes(opts Options) ([]rune, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	r := opts.source(streamRunes)
	out := make([]rune, opts.Length)
	for i := range out {
		out[i] = opts.Alphabet[r.IntN(len(opts.Alphabet))]
	}

	return out, nil
}

// Mutate returns a relative of src. Each position is, with probability rate,
// substituted, deleted or followed by an inserted symbol (one third each).
// opts.Length is ignored; opts.Alphabet and opts.Seed are used.
// Complexity: O(len(src)).
func Mutate(src []rune, rate float64, opts Options) ([]rune, error) {
	if len(opts.Alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if rate < 0 || rate > 1 {
		return nil, fmt.Errorf("%w: %v", ErrBadRate, rate)
	}
	r := opts.source(streamMutate)
	pick := func() rune { return opts.Alphabet[r.IntN(len(opts.Alphabet))] }

	out := make([]rune, 0, len(src)+len(src)/4)
	for _, s := range src {
		if r.Float64() >= rate {
			out = append(out, s)
			continue
		}
		switch r.IntN(3) {
		case 0: // substitution
			out = append(out, pick())
		case 1: // deletion
		default: // insertion after s
			out = append(out, s, pick())
		}
	}

	return out, nil
}
