// Stress test: how long a frame of N charms takes to step and re-chain,
// without a window.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"charms/internal/pendulum"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	frames := flag.Int("frames", 600, "frames to simulate per run")
	flag.Parse()

	testCounts := []int{1, 10, 100, 1000, 5000}
	for _, count := range testCounts {
		run(count, *frames)
	}
}

func run(count, frames int) {
	rng := rand.New(rand.NewSource(42)) // Consistent results
	names := pendulum.PresetNames()

	charms := make([]*pendulum.Charm, 0, count)
	schedulers := make([]*pendulum.Scheduler, 0, count)
	for i := 0; i < count; i++ {
		preset, _ := pendulum.Preset(names[i%len(names)])
		cfg := preset.Config(rl.Vector2{X: rng.Float32() * 1920, Y: 40})
		cfg.Variant = pendulum.ChainVariant(i % 2)
		c, err := pendulum.New(cfg)
		if err != nil {
			fmt.Printf("%5d charms: ERROR: %v\n", count, err)
			return
		}
		// Start each charm swinging.
		s := c.State()
		s.Velocity = rl.Vector2{X: rng.Float32()*20 - 10}
		c.SetState(s)
		charms = append(charms, c)
		schedulers = append(schedulers, pendulum.NewScheduler())
	}

	start := time.Now()
	steps := 0
	for f := 0; f < frames; f++ {
		// Alternate smooth and stalled frames to exercise catch-up.
		dt := pendulum.FrameStep
		if f%50 == 49 {
			dt *= 6
		}
		force := pendulum.DefaultScrollForce().Force(float32(f%120-60) * 100)
		for i, c := range charms {
			steps += schedulers[i].Tick(dt, c, force)
		}
	}
	elapsed := time.Since(start)
	perFrame := elapsed / time.Duration(frames)

	fmt.Printf("%5d charms: %10v/frame | %7d steps | %5.1f%% of a 60 Hz budget\n",
		count, perFrame.Round(time.Microsecond), steps,
		100*perFrame.Seconds()*60)
}
