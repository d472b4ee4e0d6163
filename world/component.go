package world

import (
	"github.com/appengine-ltd/entrand/rng"
)

// Forker is anything that can deterministically seed a new generator:
// the world's GlobalRng, or another entity's RngComponent. Forking
// advances the parent, so consecutive forks always produce distinct,
// independent children.
type Forker interface {
	Fork() *rng.Rand
}

// GlobalRng is a world's seed authority: the single generator every
// derived generator in that world traces back to. Seed it once and the
// whole tree of per-entity generators is reproducible.
//
// The global instance exists to seed RngComponents, not to serve as a
// general entropy tap: every system that draws from it must be strictly
// ordered against every other such system, while systems that only touch
// per-entity components need ordering only among themselves.
type GlobalRng struct {
	*rng.Rand
}

// NewGlobalRng creates a seed authority with a fully deterministic state.
func NewGlobalRng(algorithm string, seed uint64) (*GlobalRng, error) {
	r, err := rng.NewSeeded(algorithm, seed)
	if err != nil {
		return nil, err
	}
	return &GlobalRng{Rand: r}, nil
}

// NewGlobalRngEntropy creates a seed authority seeded from the OS entropy
// pool. Worlds built on it are not reproducible.
func NewGlobalRngEntropy(algorithm string) (*GlobalRng, error) {
	src, err := rng.NewSourceEntropy(algorithm)
	if err != nil {
		return nil, err
	}
	return &GlobalRng{Rand: rng.New(src)}, nil
}

// UnmarshalJSON restores the authority from a Snapshot payload.
func (g *GlobalRng) UnmarshalJSON(data []byte) error {
	r := new(rng.Rand)
	if err := r.UnmarshalJSON(data); err != nil {
		return err
	}
	g.Rand = r
	return nil
}

// RngComponent is the generator state owned by a single entity. Its
// lifetime is bound to that entity: created at spawn (or on demand) by
// forking the GlobalRng or another component, dropped at despawn.
//
// Constructors that take a parent always fork — they never clone — so
// every component starts from an independent, deterministically derived
// state. Only one system at a time may draw from a given component; the
// host scheduler is responsible for ordering systems that share one.
type RngComponent struct {
	*rng.Rand
}

// NewRngComponent creates a component seeded from the OS entropy pool.
// This is the escape hatch for entities that do not care about
// determinism; reproducible worlds should use NewRngComponentFrom.
func NewRngComponent(algorithm string) (*RngComponent, error) {
	src, err := rng.NewSourceEntropy(algorithm)
	if err != nil {
		return nil, err
	}
	return &RngComponent{Rand: rng.New(src)}, nil
}

// NewRngComponentSeeded creates a component with an explicit seed,
// bypassing the seeding tree entirely.
func NewRngComponentSeeded(algorithm string, seed uint64) (*RngComponent, error) {
	r, err := rng.NewSeeded(algorithm, seed)
	if err != nil {
		return nil, err
	}
	return &RngComponent{Rand: r}, nil
}

// NewRngComponentFrom forks parent into a fresh component. The parent
// advances; its next fork yields a different child.
func NewRngComponentFrom(parent Forker) *RngComponent {
	return &RngComponent{Rand: parent.Fork()}
}

// ForkComponent derives a further component from this one. Seeding trees
// can grow to any depth; a squad leader's component can seed its
// members' components without ever touching the GlobalRng.
func (c *RngComponent) ForkComponent() *RngComponent {
	return NewRngComponentFrom(c)
}

// UnmarshalJSON restores the component from a Snapshot payload.
func (c *RngComponent) UnmarshalJSON(data []byte) error {
	r := new(rng.Rand)
	if err := r.UnmarshalJSON(data); err != nil {
		return err
	}
	c.Rand = r
	return nil
}
