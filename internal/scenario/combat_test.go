package scenario

import (
	"bytes"
	"testing"

	"github.com/appengine-ltd/entrand/rng"
)

func TestRunDeterministic(t *testing.T) {
	for _, algorithm := range rng.Algorithms() {
		t.Run(algorithm, func(t *testing.T) {
			cfg := Config{Seed: 42, Algorithm: algorithm, Ticks: 10, Wolves: 3}

			first, err := Run(cfg)
			if err != nil {
				t.Fatalf("first run: %v", err)
			}
			second, err := Run(cfg)
			if err != nil {
				t.Fatalf("second run: %v", err)
			}

			if first.ScoutHP != second.ScoutHP {
				t.Fatalf("scout hp differs between runs: %d != %d", first.ScoutHP, second.ScoutHP)
			}
			if len(first.WolfHP) != len(second.WolfHP) {
				t.Fatalf("wolf counts differ between runs")
			}
			for i := range first.WolfHP {
				if first.WolfHP[i] != second.WolfHP[i] {
					t.Fatalf("wolf %d hp differs between runs: %d != %d", i, first.WolfHP[i], second.WolfHP[i])
				}
			}
			if len(first.Log) != len(second.Log) {
				t.Fatalf("log lengths differ between runs: %d != %d", len(first.Log), len(second.Log))
			}
			for i := range first.Log {
				if first.Log[i] != second.Log[i] {
					t.Fatalf("log line %d differs:\n%s\n%s", i, first.Log[i], second.Log[i])
				}
			}
			if !bytes.Equal(first.Snapshot, second.Snapshot) {
				t.Fatalf("world snapshots differ between runs")
			}
		})
	}
}

func TestRunSeedsDiffer(t *testing.T) {
	a, err := Run(Config{Seed: 1, Ticks: 20, Wolves: 3})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := Run(Config{Seed: 2, Ticks: 20, Wolves: 3})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if bytes.Equal(a.Snapshot, b.Snapshot) {
		t.Fatalf("different seeds produced identical world snapshots")
	}
}

func TestRunBounds(t *testing.T) {
	result, err := Run(Config{Seed: 7, Ticks: 50, Wolves: 4})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.ScoutHP < 0 || result.ScoutHP > 100 {
		t.Fatalf("scout hp out of range: %d", result.ScoutHP)
	}
	if len(result.WolfHP) != 4 {
		t.Fatalf("expected 4 wolves, got %d", len(result.WolfHP))
	}
	for i, hp := range result.WolfHP {
		if hp < 0 || hp > 20 {
			t.Fatalf("wolf %d hp out of range: %d", i, hp)
		}
	}
	if len(result.Snapshot) == 0 {
		t.Fatalf("missing world snapshot")
	}
}

func TestRunDefaults(t *testing.T) {
	result, err := Run(Config{Seed: 3})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.WolfHP) != 2 {
		t.Fatalf("default wolf count = %d, want 2", len(result.WolfHP))
	}
}

func TestRunRejectsUnknownAlgorithm(t *testing.T) {
	if _, err := Run(Config{Seed: 1, Algorithm: "mersenne"}); err == nil {
		t.Fatalf("expected error for unknown algorithm")
	}
}
