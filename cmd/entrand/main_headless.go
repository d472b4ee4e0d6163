//go:build !cgo
// +build !cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/entrand/internal/algoparse"
	"github.com/appengine-ltd/entrand/internal/scenario"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		seed        uint64
		algoFlag    string
		ticks       int
		wolves      int
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Uint64Var(&seed, "seed", 42, "encounter seed")
	flag.StringVar(&algoFlag, "algo", "wyrand", "rng algorithm: wyrand, chacha8, pcg")
	flag.IntVar(&ticks, "ticks", 3, "encounter length in ticks")
	flag.IntVar(&wolves, "wolves", 2, "size of the wolf pack")
	flag.Parse()

	if showVersion {
		fmt.Printf("entrand %s (%s) %s\n", version, commit, date)
		return
	}

	algorithm, err := algoparse.Resolve(algoFlag)
	if err != nil {
		die(err.Error())
	}

	// No cgo means no raylib window; run the text encounter instead.
	result, err := scenario.Run(scenario.Config{
		Seed:      seed,
		Algorithm: algorithm,
		Ticks:     ticks,
		Wolves:    wolves,
	})
	if err != nil {
		die(err.Error())
	}

	for _, line := range result.Log {
		fmt.Println(line)
	}
	fmt.Printf("scout: %d hp\n", result.ScoutHP)
	for i, hp := range result.WolfHP {
		fmt.Printf("wolf %d: %d hp\n", i+1, hp)
	}
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
