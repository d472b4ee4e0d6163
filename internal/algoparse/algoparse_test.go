package algoparse

import (
	"testing"

	"github.com/appengine-ltd/entrand/rng"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "empty defaults to wyrand", input: "", want: rng.AlgorithmWyrand},
		{name: "exact wyrand", input: "wyrand", want: rng.AlgorithmWyrand},
		{name: "exact chacha8", input: "chacha8", want: rng.AlgorithmChaCha8},
		{name: "exact pcg", input: "pcg", want: rng.AlgorithmPCG},
		{name: "uppercase", input: "WYRAND", want: rng.AlgorithmWyrand},
		{name: "padded", input: "  pcg  ", want: rng.AlgorithmPCG},
		{name: "alias crypto", input: "crypto", want: rng.AlgorithmChaCha8},
		{name: "alias secure", input: "secure", want: rng.AlgorithmChaCha8},
		{name: "alias wyhash", input: "wyhash", want: rng.AlgorithmWyrand},
		{name: "prefix chach", input: "chach", want: rng.AlgorithmChaCha8},
		{name: "prefix wyr", input: "wyr", want: rng.AlgorithmWyrand},
		{name: "typo wyrnad", input: "wyrnad", want: rng.AlgorithmWyrand},
		{name: "typo chacha88", input: "chacha88", want: rng.AlgorithmChaCha8},
		{name: "typo pcg3", input: "pcg3", want: rng.AlgorithmPCG},
		{name: "garbage", input: "mersenne-twister", wantErr: true},
		{name: "far off", input: "zzzzzz", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%q) = %q, expected error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("Resolve(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestResolvedNamesConstructSources(t *testing.T) {
	for _, input := range []string{"wyrand", "chacha", "pcg32"} {
		canonical, err := Resolve(input)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", input, err)
		}
		if _, err := rng.NewSource(canonical, 1); err != nil {
			t.Fatalf("NewSource(%q): %v", canonical, err)
		}
	}
}
