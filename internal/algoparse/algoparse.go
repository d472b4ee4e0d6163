// Package algoparse resolves user-typed algorithm names from CLI flags
// into the canonical names the rng package accepts, tolerating common
// misspellings.
package algoparse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/entrand/rng"
)

var aliases = map[string]string{
	"wyrand":  rng.AlgorithmWyrand,
	"wy":      rng.AlgorithmWyrand,
	"wyhash":  rng.AlgorithmWyrand,
	"chacha8": rng.AlgorithmChaCha8,
	"chacha":  rng.AlgorithmChaCha8,
	"secure":  rng.AlgorithmChaCha8,
	"crypto":  rng.AlgorithmChaCha8,
	"pcg":     rng.AlgorithmPCG,
	"pcg32":   rng.AlgorithmPCG,
	"pcgr":    rng.AlgorithmPCG,
}

// Resolve maps input to a canonical algorithm name. Matching is exact
// first, then prefix, then fuzzy with a distance limit scaled to the
// alias length. Ambiguous or distant input yields an error listing the
// canonical choices.
func Resolve(input string) (string, error) {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return rng.AlgorithmWyrand, nil
	}

	if canonical, ok := aliases[in]; ok {
		return canonical, nil
	}

	type candidate struct {
		alias     string
		canonical string
		dist      int
	}
	var cands []candidate
	for alias, canonical := range aliases {
		if strings.HasPrefix(alias, in) && len(in) >= 2 {
			cands = append(cands, candidate{alias: alias, canonical: canonical, dist: 0})
			continue
		}
		dist := levenshtein.ComputeDistance(in, alias)
		if dist > distanceLimit(len(alias)) {
			continue
		}
		cands = append(cands, candidate{alias: alias, canonical: canonical, dist: dist})
	}

	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].alias < cands[j].alias
		}
		return cands[i].dist < cands[j].dist
	})

	if len(cands) == 0 {
		return "", fmt.Errorf("unknown algorithm %q (choose one of %s)", input, strings.Join(rng.Algorithms(), ", "))
	}

	best := cands[0]
	for _, c := range cands[1:] {
		if c.dist == best.dist && c.canonical != best.canonical {
			return "", fmt.Errorf("ambiguous algorithm %q (choose one of %s)", input, strings.Join(rng.Algorithms(), ", "))
		}
	}
	return best.canonical, nil
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
