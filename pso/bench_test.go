package pso_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/psotsp/geom"
	"github.com/katalvlaran/psotsp/pso"
)

// BenchmarkSwarmStep measures one iteration for a mid-sized instance.
func BenchmarkSwarmStep(b *testing.B) {
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			pts := geom.RandomPoints(100, rand.New(rand.NewSource(1)))
			opts := pso.DefaultOptions()
			opts.Iterations = b.N
			opts.PopulationSize = 100
			opts.Workers = workers
			opts.CheckInvariants = false
			sw, err := pso.NewSwarm(pts, opts)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := sw.Step(nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkTourCost(b *testing.B) {
	pts := geom.RandomPoints(1000, rand.New(rand.NewSource(1)))
	r := pso.RandomRoute(pts, rand.New(rand.NewSource(2)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pso.TourCost(r, pts)
	}
}

func BenchmarkGreedyRoute(b *testing.B) {
	pts := geom.RandomPoints(500, rand.New(rand.NewSource(1)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pso.GreedyRoute(pts, 0)
	}
}
