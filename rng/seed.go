package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"time"
)

// EntropySeed returns a seed read from the operating system's entropy
// pool. Generators built from it are not reproducible across runs; use an
// explicit seed when determinism matters.
func EntropySeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand failing is effectively unheard of; the clock
		// keeps non-deterministic construction working regardless.
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// SeedFromString hashes an arbitrary string into a seed, so worlds can be
// keyed by human-friendly names ("camp-alpha", a save slot, a share code)
// while remaining fully deterministic.
func SeedFromString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// seedWord mixes a seed with a salt label, yielding independent seed
// material for multi-word states initialised from a single 64-bit seed.
func seedWord(seed uint64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// fillEntropy overwrites p with bytes from the OS entropy pool, falling
// back to a clock-seeded generator if the pool is unreadable.
func fillEntropy(p []byte) {
	if _, err := crand.Read(p); err != nil {
		NewWyrandSeeded(uint64(time.Now().UnixNano())).Fill(p)
	}
}

const splitmixIncrement = 0x9e3779b97f4a7c15

// splitmix is the SplitMix64 finaliser. It spreads a 64-bit seed across
// the full state width before it reaches a generator core, so adjacent
// seeds (1, 2, 3...) still start from well-separated states.
func splitmix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
