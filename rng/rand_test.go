package rng

import (
	"encoding/json"
	"testing"
)

func newRand(t *testing.T, algorithm string, seed uint64) *Rand {
	t.Helper()
	r, err := NewSeeded(algorithm, seed)
	if err != nil {
		t.Fatalf("NewSeeded(%q, %d): %v", algorithm, seed, err)
	}
	return r
}

func TestChanceBounds(t *testing.T) {
	r := newRand(t, AlgorithmWyrand, 1)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatalf("Chance(0) fired")
		}
		if !r.Chance(1) {
			t.Fatalf("Chance(1) missed")
		}
		if r.Chance(-0.5) {
			t.Fatalf("negative probability fired")
		}
		if !r.Chance(1.5) {
			t.Fatalf("probability above one missed")
		}
	}
}

func TestChanceMixes(t *testing.T) {
	r := newRand(t, AlgorithmWyrand, 2)
	hits := 0
	for i := 0; i < 1000; i++ {
		if r.Chance(0.5) {
			hits++
		}
	}
	if hits == 0 || hits == 1000 {
		t.Fatalf("Chance(0.5) hit %d of 1000, expected a mixture", hits)
	}
}

func TestIntNRange(t *testing.T) {
	r := newRand(t, AlgorithmPCG, 3)
	for i := 0; i < 1000; i++ {
		got := r.IntN(6)
		if got < 0 || got >= 6 {
			t.Fatalf("IntN(6) = %d, out of range", got)
		}
	}
}

func TestSample(t *testing.T) {
	r := newRand(t, AlgorithmWyrand, 4)

	if _, ok := Sample(r, []string(nil)); ok {
		t.Fatalf("sampling an empty list reported ok")
	}

	values := []string{"forest", "lake", "ridge"}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		got, ok := Sample(r, values)
		if !ok {
			t.Fatalf("sampling a non-empty list failed")
		}
		seen[got] = true
	}
	if len(seen) != len(values) {
		t.Fatalf("200 samples only reached %d of %d values", len(seen), len(values))
	}
}

func TestSampleN(t *testing.T) {
	r := newRand(t, AlgorithmWyrand, 5)
	values := []int{1, 2, 3, 4, 5, 6, 7, 8}

	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "zero", n: 0, want: 0},
		{name: "negative", n: -3, want: 0},
		{name: "subset", n: 3, want: 3},
		{name: "all", n: 8, want: 8},
		{name: "beyond", n: 20, want: 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SampleN(r, values, tc.n)
			if len(got) != tc.want {
				t.Fatalf("SampleN(%d) returned %d values, want %d", tc.n, len(got), tc.want)
			}
			seen := map[int]bool{}
			for _, v := range got {
				if seen[v] {
					t.Fatalf("SampleN(%d) repeated value %d", tc.n, v)
				}
				seen[v] = true
			}
		})
	}
}

func TestShuffleSlicePreservesElements(t *testing.T) {
	r := newRand(t, AlgorithmWyrand, 6)
	list := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	ShuffleSlice(r, list)

	counts := map[int]int{}
	for _, v := range list {
		counts[v]++
	}
	for v := 1; v <= 10; v++ {
		if counts[v] != 1 {
			t.Fatalf("shuffle lost or duplicated %d", v)
		}
	}
}

func TestWeightedSample(t *testing.T) {
	r := newRand(t, AlgorithmWyrand, 7)

	type item struct {
		name   string
		weight float64
	}
	items := []item{
		{name: "common", weight: 10},
		{name: "rare", weight: 1},
		{name: "never", weight: 0},
	}

	counts := map[string]int{}
	for i := 0; i < 2000; i++ {
		got, ok := WeightedSample(r, items, func(it item) float64 { return it.weight })
		if !ok {
			t.Fatalf("weighted sample failed on a weighted list")
		}
		counts[got.name]++
	}
	if counts["never"] != 0 {
		t.Fatalf("zero-weight item was chosen %d times", counts["never"])
	}
	if counts["common"] <= counts["rare"] {
		t.Fatalf("weights ignored: common=%d rare=%d", counts["common"], counts["rare"])
	}

	if _, ok := WeightedSample(r, items, func(item) float64 { return 0 }); ok {
		t.Fatalf("all-zero weights reported ok")
	}
	if _, ok := WeightedSample(r, []item(nil), func(item) float64 { return 1 }); ok {
		t.Fatalf("empty list reported ok")
	}
}

func TestNormalizedRanges(t *testing.T) {
	r := newRand(t, AlgorithmChaCha8, 8)
	for i := 0; i < 500; i++ {
		if got := r.Float64Normalized(); got < -1 || got >= 1 {
			t.Fatalf("Float64Normalized = %v, out of [-1, 1)", got)
		}
		if got := r.Float32Normalized(); got < -1 || got >= 1 {
			t.Fatalf("Float32Normalized = %v, out of [-1, 1)", got)
		}
	}
}

func TestCharacterHelpers(t *testing.T) {
	r := newRand(t, AlgorithmWyrand, 9)
	for i := 0; i < 500; i++ {
		if c := r.Lowercase(); c < 'a' || c > 'z' {
			t.Fatalf("Lowercase = %q", c)
		}
		if c := r.Uppercase(); c < 'A' || c > 'Z' {
			t.Fatalf("Uppercase = %q", c)
		}
		if c := r.Digit(10); c < '0' || c > '9' {
			t.Fatalf("Digit(10) = %q", c)
		}
		if c := r.Digit(2); c != '0' && c != '1' {
			t.Fatalf("Digit(2) = %q", c)
		}
		c := r.Alphanumeric()
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		isDigit := c >= '0' && c <= '9'
		if !isLetter && !isDigit {
			t.Fatalf("Alphanumeric = %q", c)
		}
	}
}

func TestRandForkMatchesSourceFork(t *testing.T) {
	for _, algorithm := range Algorithms() {
		t.Run(algorithm, func(t *testing.T) {
			viaRand := newRand(t, algorithm, 42)
			viaSource := newSeeded(t, algorithm, 42)

			child := viaRand.Fork()
			want := viaSource.Fork()

			for i := 0; i < 10; i++ {
				if got := child.Source().Uint64(); got != want.Uint64() {
					t.Fatalf("Rand fork diverged from Source fork at draw %d", i)
				}
			}
		})
	}
}

func TestRandJSONRoundTrip(t *testing.T) {
	for _, algorithm := range Algorithms() {
		t.Run(algorithm, func(t *testing.T) {
			r := newRand(t, algorithm, 77)
			r.FillBytes(make([]byte, 40))

			data, err := json.Marshal(r)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}

			restored := new(Rand)
			if err := json.Unmarshal(data, restored); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			for i := 0; i < 20; i++ {
				got, want := restored.Uint64(), r.Uint64()
				if got != want {
					t.Fatalf("restored Rand diverged at draw %d", i)
				}
			}
		})
	}
}
