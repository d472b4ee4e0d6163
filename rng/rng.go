// Package rng provides deterministic, forkable random number generator
// states for game simulations.
//
// Every generator core implements Source. A Source owns its state
// exclusively: copies are independent, and nothing in this package shares
// state between two Sources. Forking derives a new, independent Source
// from a parent while also advancing the parent, so repeated forks from
// the same parent produce distinct children, and the whole tree of
// generators is reproducible from a single root seed.
//
// Sources are not safe for concurrent use. Each Source is meant to have
// exactly one owner at a time (one entity, one world slot); callers that
// share a Source across goroutines must provide their own ordering.
package rng

import (
	"encoding/json"
	"fmt"
)

// Algorithm names accepted by NewSource and reported by Source.Algorithm.
const (
	AlgorithmWyrand  = "wyrand"
	AlgorithmChaCha8 = "chacha8"
	AlgorithmPCG     = "pcg"
)

// ErrUnknownAlgorithm is returned when an algorithm name does not match
// any generator core in this package.
var ErrUnknownAlgorithm = fmt.Errorf("unknown rng algorithm")

// Source is the capability set shared by all generator cores.
//
// Uint64 is both the draw primitive and the seed-derivation primitive:
// it returns a fresh 64-bit value and mutates the receiver, so a value
// drawn for seeding a child never repeats on the parent's next draw.
type Source interface {
	// Uint64 draws the next value, advancing the state.
	Uint64() uint64

	// Fill overwrites p with pseudo-random bytes, advancing the state.
	Fill(p []byte)

	// Reseed resets the state to one fully determined by seed.
	Reseed(seed uint64)

	// Fork derives a new, independent Source of the same algorithm,
	// seeded from the receiver. The receiver's state advances, so two
	// consecutive forks yield different children.
	Fork() Source

	// Clone returns an exact copy with identical future output. It does
	// not advance the receiver. Use Fork for independent children; Clone
	// exists for snapshots and duplicate-and-compare checks only.
	Clone() Source

	// Algorithm reports the core's algorithm name.
	Algorithm() string

	json.Marshaler
}

// Algorithms lists the supported algorithm names in stable order.
func Algorithms() []string {
	return []string{AlgorithmWyrand, AlgorithmChaCha8, AlgorithmPCG}
}

// NewSource constructs a Source of the named algorithm with a fully
// deterministic state derived from seed.
func NewSource(algorithm string, seed uint64) (Source, error) {
	switch algorithm {
	case AlgorithmWyrand:
		return NewWyrandSeeded(seed), nil
	case AlgorithmChaCha8:
		return NewChaCha8FromSeed(seed), nil
	case AlgorithmPCG:
		return NewPCGSeeded(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// NewSourceEntropy constructs a Source of the named algorithm seeded from
// the operating system's entropy pool. The result is not reproducible.
func NewSourceEntropy(algorithm string) (Source, error) {
	switch algorithm {
	case AlgorithmWyrand:
		return NewWyrand(), nil
	case AlgorithmChaCha8:
		return NewChaCha8(), nil
	case AlgorithmPCG:
		return NewPCG(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

type sourceHeader struct {
	Algorithm string `json:"algorithm"`
}

// UnmarshalSource decodes a Source previously encoded with its
// MarshalJSON method, dispatching on the embedded algorithm name. The
// decoded Source reproduces the original's future draws exactly.
func UnmarshalSource(data []byte) (Source, error) {
	var header sourceHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("decode rng state: %w", err)
	}

	var src Source
	switch header.Algorithm {
	case AlgorithmWyrand:
		src = new(Wyrand)
	case AlgorithmChaCha8:
		src = new(ChaCha8)
	case AlgorithmPCG:
		src = new(PCG)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, header.Algorithm)
	}

	if err := json.Unmarshal(data, src); err != nil {
		return nil, err
	}
	return src, nil
}
