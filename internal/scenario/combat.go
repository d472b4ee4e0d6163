// Package scenario runs a small deterministic wildlife encounter: one
// scout defending camp against a wolf pack. Every combatant owns its own
// rng component, so the whole fight replays identically from a single
// world seed, and it exists to exercise exactly that: the CLI demos and
// the reproducibility checker both drive this simulation.
package scenario

import (
	"fmt"

	"github.com/appengine-ltd/entrand/world"
)

// Config controls one encounter.
type Config struct {
	Seed      uint64
	Algorithm string
	Ticks     int // default 3
	Wolves    int // default 2
}

type combatant struct {
	id        world.EntityID
	name      string
	hp        int
	maxHP     int
	attackMin int
	attackMax int
	hitChance float64
}

func (c *combatant) alive() bool {
	return c.hp > 0
}

// Result captures the encounter outcome plus the world snapshot taken
// after the final tick, so two runs can be compared byte for byte.
type Result struct {
	ScoutHP  int
	WolfHP   []int
	Log      []string
	Snapshot []byte
}

const (
	scoutRallyChance = 0.10
	scoutRallyMin    = 2
	scoutRallyMax    = 6
)

// Run plays the encounter to completion and returns the outcome. The
// same Config always yields the same Result, byte for byte.
func Run(cfg Config) (*Result, error) {
	ticks := cfg.Ticks
	if ticks <= 0 {
		ticks = 3
	}
	wolves := cfg.Wolves
	if wolves <= 0 {
		wolves = 2
	}

	w, err := world.New(world.Config{Algorithm: cfg.Algorithm, Seed: cfg.Seed})
	if err != nil {
		return nil, fmt.Errorf("create encounter world: %w", err)
	}

	scoutID, _ := w.SpawnWithRng()
	scout := &combatant{
		id:        scoutID,
		name:      "scout",
		hp:        100,
		maxHP:     100,
		attackMin: 5,
		attackMax: 10,
		hitChance: 0.6,
	}

	pack := make([]*combatant, 0, wolves)
	for i := 0; i < wolves; i++ {
		id, _ := w.SpawnWithRng()
		pack = append(pack, &combatant{
			id:        id,
			name:      fmt.Sprintf("wolf %d", i+1),
			hp:        20,
			maxHP:     20,
			attackMin: 3,
			attackMax: 6,
			hitChance: 0.5,
		})
	}

	result := &Result{}
	for tick := 1; tick <= ticks; tick++ {
		// System order is fixed; each system draws only from the
		// components of the entities it owns.
		packAttacks(w, tick, scout, pack, result)
		scoutAttacks(w, tick, scout, pack, result)
		scoutRallies(w, tick, scout, result)
	}

	result.ScoutHP = scout.hp
	for _, wolf := range pack {
		result.WolfHP = append(result.WolfHP, wolf.hp)
	}
	snapshot, err := w.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("snapshot encounter world: %w", err)
	}
	result.Snapshot = snapshot
	return result, nil
}

func packAttacks(w *world.World, tick int, scout *combatant, pack []*combatant, result *Result) {
	for _, wolf := range pack {
		if !wolf.alive() || !scout.alive() {
			continue
		}
		rng := w.Rng(wolf.id)
		if !rng.Chance(wolf.hitChance) {
			continue
		}
		damage := wolf.attackMin + rng.IntN(wolf.attackMax-wolf.attackMin+1)
		scout.hp = max(scout.hp-damage, 0)
		result.Log = append(result.Log, fmt.Sprintf("tick %d: %s bites the scout for %d (%d hp left)", tick, wolf.name, damage, scout.hp))
	}
}

func scoutAttacks(w *world.World, tick int, scout *combatant, pack []*combatant, result *Result) {
	if !scout.alive() {
		return
	}
	rng := w.Rng(scout.id)
	for _, wolf := range pack {
		if !wolf.alive() {
			continue
		}
		if !rng.Chance(scout.hitChance) {
			continue
		}
		damage := scout.attackMin + rng.IntN(scout.attackMax-scout.attackMin+1)
		wolf.hp = max(wolf.hp-damage, 0)
		result.Log = append(result.Log, fmt.Sprintf("tick %d: scout strikes %s for %d (%d hp left)", tick, wolf.name, damage, wolf.hp))
		break
	}
}

func scoutRallies(w *world.World, tick int, scout *combatant, result *Result) {
	if !scout.alive() {
		return
	}
	rng := w.Rng(scout.id)
	if !rng.Chance(scoutRallyChance) {
		return
	}
	heal := scoutRallyMin + rng.IntN(scoutRallyMax-scoutRallyMin+1)
	scout.hp = min(scout.hp+heal, scout.maxHP)
	result.Log = append(result.Log, fmt.Sprintf("tick %d: scout rallies for %d (%d hp)", tick, heal, scout.hp))
}
