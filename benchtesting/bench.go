package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/kpfaulkner/geom2d/geom"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {
	iterations := flag.Int("n", 50_000_000, "number of arithmetic rounds")
	mode := flag.String("profile", "cpu", "profile to capture: cpu, mem or none")
	flag.Parse()

	switch *mode {
	case "cpu":
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		defer p.Stop()
	case "mem":
		p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
		defer p.Stop()
	case "none":
	default:
		log.Fatalf("unknown profile mode %q", *mode)
	}

	start := time.Now()
	p := walk(*iterations)
	fmt.Printf("%d rounds took %d ms, ended at %v\n", *iterations, time.Since(start).Milliseconds(), p)

	if !p.IsFinite() {
		log.Warnf("walk ended on a non-finite point %v", p)
	}
}

// walk runs every Point operation in a loop, feeding each result into the
// next round so nothing gets optimised away.
func walk(iterations int) geom.Point {
	p := geom.Pt(1, 2)
	step := geom.Vec2d{0.5, -0.25}
	size := geom.Size{W: 3, H: 4}
	for i := 0; i < iterations; i++ {
		p = p.Add(step).
			Sub(size).
			AddScalar(1.5).
			SubScalar(0.5).
			Add(geom.Pair{X: 2.5, Y: 4.25}).
			Mul(0.999)
	}
	return p
}
