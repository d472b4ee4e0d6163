//go:build cgo
// +build cgo

package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/entrand/internal/algoparse"
	"github.com/appengine-ltd/entrand/world"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	screenWidth  = 960
	screenHeight = 600
	walkerRadius = 3
)

type walker struct {
	x, y  float32
	color rl.Color
	rng   *world.RngComponent
}

func main() {
	var (
		showVersion bool
		seed        uint64
		seedString  string
		algoFlag    string
		walkers     int
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Uint64Var(&seed, "seed", 0, "world seed (0 seeds from entropy, not reproducible)")
	flag.StringVar(&seedString, "seed-string", "", "world seed as a string, overrides -seed")
	flag.StringVar(&algoFlag, "algo", "wyrand", "rng algorithm: wyrand, chacha8, pcg")
	flag.IntVar(&walkers, "walkers", 64, "number of walker entities")
	flag.Parse()

	if showVersion {
		fmt.Printf("entrand %s (%s) %s\n", version, commit, date)
		return
	}

	algorithm, err := algoparse.Resolve(algoFlag)
	if err != nil {
		die(err.Error())
	}
	if walkers < 1 {
		die("-walkers must be at least 1")
	}

	w, err := world.New(world.Config{Algorithm: algorithm, Seed: seed, SeedString: seedString})
	if err != nil {
		die(err.Error())
	}

	// Each walker owns its component; the draws below never touch the
	// global, so their paths replay identically for a given seed no
	// matter how many walkers exist or which order they update in.
	flock := make([]*walker, 0, walkers)
	for i := 0; i < walkers; i++ {
		_, rng := w.SpawnWithRng()
		flock = append(flock, &walker{
			x: screenWidth / 2,
			y: screenHeight / 2,
			color: rl.NewColor(
				uint8(96+rng.IntN(160)),
				uint8(96+rng.IntN(160)),
				uint8(96+rng.IntN(160)),
				255,
			),
			rng: rng,
		})
	}

	rl.InitWindow(screenWidth, screenHeight, "entrand walkers")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		for _, wk := range flock {
			wk.x = wrap(wk.x+wk.rng.Float32Normalized()*4, screenWidth)
			wk.y = wrap(wk.y+wk.rng.Float32Normalized()*4, screenHeight)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(16, 16, 24, 255))
		for _, wk := range flock {
			rl.DrawCircle(int32(wk.x), int32(wk.y), walkerRadius, wk.color)
		}
		rl.DrawText(fmt.Sprintf("%s | %d walkers", algorithm, walkers), 10, 10, 20, rl.RayWhite)
		rl.EndDrawing()
	}
}

func wrap(v, limit float32) float32 {
	if v < 0 {
		return v + limit
	}
	if v >= limit {
		return v - limit
	}
	return v
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
