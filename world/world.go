// Package world binds the rng generator cores to an entity arena: one
// GlobalRng seed authority per world, one RngComponent per entity that
// wants randomness.
//
// The package enforces ownership, not scheduling. Nothing here locks:
// each component belongs to exactly one entity, and any two systems that
// draw from the same component (or from the GlobalRng) must be run in a
// fixed relative order by the host scheduler. Systems over disjoint
// entities can run fully in parallel without affecting determinism,
// because every component mutates only its own state.
package world

import (
	"fmt"
	"sort"

	"github.com/appengine-ltd/entrand/rng"
)

// EntityID identifies an entity within one World.
type EntityID uint64

// NilEntity is the zero value; no live entity ever has this ID.
const NilEntity EntityID = 0

// ErrDeadEntity is returned when attaching state to an entity that was
// never spawned or has been despawned.
var ErrDeadEntity = fmt.Errorf("entity is not alive")

// Config controls world creation.
type Config struct {
	// Algorithm selects the generator core for the GlobalRng and, by
	// forking, every component derived from it. Empty means wyrand.
	Algorithm string

	// Seed fully determines the world when non-zero. A zero seed (and an
	// empty SeedString) selects entropy seeding, which is explicitly
	// non-deterministic.
	Seed uint64

	// SeedString, when non-empty, overrides Seed with a hash of the
	// string, so worlds can be keyed by save-slot names or share codes.
	SeedString string
}

// World is an arena of entities with their generator components, plus
// the GlobalRng they fork from. A World is an explicitly owned handle;
// create one per deterministic domain and pass it where it is needed.
type World struct {
	global *GlobalRng
	nextID EntityID
	alive  map[EntityID]bool
	rngs   map[EntityID]*RngComponent
}

// New creates a world per cfg. See Config for how seeding is resolved.
func New(cfg Config) (*World, error) {
	algorithm := cfg.Algorithm
	if algorithm == "" {
		algorithm = rng.AlgorithmWyrand
	}

	seed := cfg.Seed
	if cfg.SeedString != "" {
		seed = rng.SeedFromString(cfg.SeedString)
	}

	var global *GlobalRng
	var err error
	if seed == 0 {
		global, err = NewGlobalRngEntropy(algorithm)
	} else {
		global, err = NewGlobalRng(algorithm, seed)
	}
	if err != nil {
		return nil, err
	}

	return &World{
		global: global,
		alive:  map[EntityID]bool{},
		rngs:   map[EntityID]*RngComponent{},
	}, nil
}

// Global returns the world's seed authority.
func (w *World) Global() *GlobalRng {
	return w.global
}

// Spawn creates a new entity without a generator component.
func (w *World) Spawn() EntityID {
	w.nextID++
	id := w.nextID
	w.alive[id] = true
	return id
}

// SpawnWithRng creates a new entity and attaches a component forked from
// the GlobalRng in one step.
func (w *World) SpawnWithRng() (EntityID, *RngComponent) {
	id := w.Spawn()
	c := NewRngComponentFrom(w.global)
	w.rngs[id] = c
	return id, c
}

// Attach forks the GlobalRng into a component for id, replacing any
// component id already had.
func (w *World) Attach(id EntityID) (*RngComponent, error) {
	return w.AttachFrom(id, w.global)
}

// AttachFrom forks parent into a component for id. The parent may be the
// GlobalRng or any other entity's component.
func (w *World) AttachFrom(id EntityID, parent Forker) (*RngComponent, error) {
	if !w.alive[id] {
		return nil, fmt.Errorf("attach rng to entity %d: %w", id, ErrDeadEntity)
	}
	c := NewRngComponentFrom(parent)
	w.rngs[id] = c
	return c, nil
}

// Rng returns id's component, or nil when id is dead or never had one.
// A nil result on an ID the caller believes is alive indicates a
// lifecycle bug on the caller's side, not a recoverable condition.
func (w *World) Rng(id EntityID) *RngComponent {
	return w.rngs[id]
}

// Alive reports whether id is a live entity.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Despawn destroys an entity and drops its component. Holding a
// component pointer past its entity's despawn is a use-after-free class
// bug; the world will never hand that component out again.
func (w *World) Despawn(id EntityID) {
	delete(w.alive, id)
	delete(w.rngs, id)
}

// Len reports the number of live entities.
func (w *World) Len() int {
	return len(w.alive)
}

// Entities returns the live entity IDs in ascending order. Systems that
// must iterate deterministically should range over this rather than over
// any map.
func (w *World) Entities() []EntityID {
	ids := make([]EntityID, 0, len(w.alive))
	for id := range w.alive {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
