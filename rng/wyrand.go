package rng

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/bits"
)

// WyRand mixing constants (wyhash v4 final).
const (
	wyrandAdd = 0xa0761d6478bd642f
	wyrandXor = 0xe7037ed1a0b428db
)

// Wyrand is a WyRand generator core: 64 bits of state, one add and one
// 128-bit multiply per draw. It is the default algorithm for gameplay
// randomness. Not cryptographically secure.
type Wyrand struct {
	state uint64
}

// NewWyrand returns a Wyrand seeded from the OS entropy pool. The result
// is not reproducible; use NewWyrandSeeded for deterministic runs.
func NewWyrand() *Wyrand {
	return NewWyrandSeeded(EntropySeed())
}

// NewWyrandSeeded returns a Wyrand whose entire future output is
// determined by seed.
func NewWyrandSeeded(seed uint64) *Wyrand {
	w := new(Wyrand)
	w.Reseed(seed)
	return w
}

// Uint64 draws the next value, advancing the state.
func (w *Wyrand) Uint64() uint64 {
	w.state += wyrandAdd
	hi, lo := bits.Mul64(w.state, w.state^wyrandXor)
	return hi ^ lo
}

// Fill overwrites p with pseudo-random bytes.
func (w *Wyrand) Fill(p []byte) {
	fillFromUint64(w, p)
}

// Reseed resets the state to one fully determined by seed.
func (w *Wyrand) Reseed(seed uint64) {
	w.state = splitmix(seed)
}

// Fork derives an independent child generator seeded from the next draw,
// advancing the receiver. Two consecutive forks yield distinct children.
func (w *Wyrand) Fork() Source {
	return w.ForkWyrand()
}

// ForkWyrand is Fork with a concrete return type.
func (w *Wyrand) ForkWyrand() *Wyrand {
	return NewWyrandSeeded(w.Uint64())
}

// Clone returns an exact copy with identical future output. The receiver
// does not advance.
func (w *Wyrand) Clone() Source {
	c := *w
	return &c
}

// Algorithm reports "wyrand".
func (w *Wyrand) Algorithm() string {
	return AlgorithmWyrand
}

type wyrandState struct {
	Algorithm string `json:"algorithm"`
	State     uint64 `json:"state"`
}

// MarshalJSON encodes the full generator state. Decoding it reproduces
// bit-identical future draws.
func (w *Wyrand) MarshalJSON() ([]byte, error) {
	return json.Marshal(wyrandState{Algorithm: AlgorithmWyrand, State: w.state})
}

// UnmarshalJSON restores state encoded by MarshalJSON.
func (w *Wyrand) UnmarshalJSON(data []byte) error {
	var s wyrandState
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s.Algorithm != AlgorithmWyrand {
		return fmt.Errorf("decode wyrand state: algorithm is %q", s.Algorithm)
	}
	w.state = s.State
	return nil
}

// fillFromUint64 fills p eight bytes at a time from src, little-endian,
// truncating the final draw for any tail shorter than eight bytes.
func fillFromUint64(src interface{ Uint64() uint64 }, p []byte) {
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, src.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], src.Uint64())
		copy(p, tail[:])
	}
}
