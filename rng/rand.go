package rng

import (
	mrand "math/rand/v2"
)

// Rand couples a Source with the math/rand/v2 sampling layer. All numeric
// sampling (ranged integers, floats, permutations, shuffles) is delegated
// to the embedded *rand.Rand, which draws exclusively from the owned
// Source; this type adds the gameplay conveniences on top.
//
// Like Source, a Rand has exactly one owner and is not safe for
// concurrent use.
type Rand struct {
	src Source
	*mrand.Rand
}

// New wraps a Source in a Rand. The Rand takes ownership of src; callers
// must not keep drawing from src directly.
func New(src Source) *Rand {
	return &Rand{src: src, Rand: mrand.New(src)}
}

// NewSeeded is shorthand for New over a deterministic Source of the named
// algorithm.
func NewSeeded(algorithm string, seed uint64) (*Rand, error) {
	src, err := NewSource(algorithm, seed)
	if err != nil {
		return nil, err
	}
	return New(src), nil
}

// Source returns the owned generator core.
func (r *Rand) Source() Source {
	return r.src
}

// Algorithm reports the owned core's algorithm name.
func (r *Rand) Algorithm() string {
	return r.src.Algorithm()
}

// Fork derives an independent child Rand of the same algorithm, advancing
// the receiver. This is the only way public constructors build one
// generator from another; exact duplication goes through Clone and is
// reserved for snapshots.
func (r *Rand) Fork() *Rand {
	return New(r.src.Fork())
}

// Clone returns an exact copy with identical future output. The receiver
// does not advance.
func (r *Rand) Clone() *Rand {
	return New(r.src.Clone())
}

// Reseed resets the owned core to a state fully determined by seed.
func (r *Rand) Reseed(seed uint64) {
	r.src.Reseed(seed)
}

// Chance reports true with probability p. Values at or below 0 never
// fire; values at or above 1 always do.
func (r *Rand) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

// Bool reports true or false with equal probability.
func (r *Rand) Bool() bool {
	return r.src.Uint64()&1 == 1
}

// Float64Normalized returns a float in [-1, 1).
func (r *Rand) Float64Normalized() float64 {
	return r.Float64()*2 - 1
}

// Float32Normalized returns a float in [-1, 1).
func (r *Rand) Float32Normalized() float32 {
	return r.Float32()*2 - 1
}

// Digit returns a random digit rune for the given radix (2 to 36).
func (r *Rand) Digit(radix int) rune {
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	if radix < 2 {
		radix = 2
	}
	if radix > len(digits) {
		radix = len(digits)
	}
	return rune(digits[r.IntN(radix)])
}

// Lowercase returns a random rune in a-z.
func (r *Rand) Lowercase() rune {
	return rune('a' + r.IntN(26))
}

// Uppercase returns a random rune in A-Z.
func (r *Rand) Uppercase() rune {
	return rune('A' + r.IntN(26))
}

// Alphabetic returns a random ASCII letter.
func (r *Rand) Alphabetic() rune {
	if r.Bool() {
		return r.Lowercase()
	}
	return r.Uppercase()
}

// Alphanumeric returns a random ASCII letter or digit.
func (r *Rand) Alphanumeric() rune {
	const pool = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	return rune(pool[r.IntN(len(pool))])
}

// FillBytes overwrites p with pseudo-random bytes.
func (r *Rand) FillBytes(p []byte) {
	r.src.Fill(p)
}

// MarshalJSON encodes the owned core's full state.
func (r *Rand) MarshalJSON() ([]byte, error) {
	return r.src.MarshalJSON()
}

// UnmarshalJSON restores a Rand from a state encoded by MarshalJSON,
// dispatching on the embedded algorithm name.
func (r *Rand) UnmarshalJSON(data []byte) error {
	src, err := UnmarshalSource(data)
	if err != nil {
		return err
	}
	r.src = src
	r.Rand = mrand.New(src)
	return nil
}

// Sample returns a uniformly chosen element of list. The second return is
// false only when list is empty.
func Sample[T any](r *Rand, list []T) (T, bool) {
	var zero T
	if len(list) == 0 {
		return zero, false
	}
	return list[r.IntN(len(list))], true
}

// SampleN returns n distinct elements of list in random order, or fewer
// when list is shorter than n.
func SampleN[T any](r *Rand, list []T, n int) []T {
	if n > len(list) {
		n = len(list)
	}
	if n <= 0 {
		return nil
	}
	picked := make([]T, 0, n)
	for _, i := range r.Perm(len(list))[:n] {
		picked = append(picked, list[i])
	}
	return picked
}

// ShuffleSlice permutes list in place.
func ShuffleSlice[T any](r *Rand, list []T) {
	r.Shuffle(len(list), func(i, j int) {
		list[i], list[j] = list[j], list[i]
	})
}

// WeightedSample returns an element of list chosen with probability
// proportional to weight(element). Elements with non-positive weight are
// never chosen; the second return is false when list is empty or no
// element carries positive weight.
func WeightedSample[T any](r *Rand, list []T, weight func(T) float64) (T, bool) {
	var zero T
	total := 0.0
	for _, item := range list {
		if w := weight(item); w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return zero, false
	}
	roll := r.Float64() * total
	cumulative := 0.0
	for _, item := range list {
		w := weight(item)
		if w <= 0 {
			continue
		}
		cumulative += w
		if roll < cumulative {
			return item, true
		}
	}
	// Float round-off can leave roll at the very top of the range.
	for i := len(list) - 1; i >= 0; i-- {
		if weight(list[i]) > 0 {
			return list[i], true
		}
	}
	return zero, false
}
