package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/urfave/cli"

	"github.com/katalvlaran/psotsp/geom"
	"github.com/katalvlaran/psotsp/plotsink"
	"github.com/katalvlaran/psotsp/pso"
	"github.com/katalvlaran/psotsp/tsplib"
)

func run(c *cli.Context) error {
	name, pts, err := loadPoints(c)
	if err != nil {
		return err
	}
	if path := c.String(flagSaveInstance); path != "" {
		if err = saveInstance(path, name, pts); err != nil {
			return err
		}
	}

	opts := optionsFrom(c)
	sw, err := pso.NewSwarm(pts, opts)
	if err != nil {
		return err
	}
	initial, _ := sw.Best()
	log.Printf("%s: %d cities, %d particles, seed %d", name, len(pts), opts.PopulationSize, opts.Seed)
	log.Printf("initial cost is %.4f", initial)

	ctx, stop := notifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		every = c.Int(flagLogEvery)
		plots *plotsink.Sink
		sinks = []pso.Sink{logSink(every)}
	)
	if c.String(flagPlotDir) != "" {
		plots = plotsink.New(every)
		sinks = append(sinks, plots)
	}

	start := time.Now()
	res, runErr := sw.Run(ctx, pso.Tee(sinks...))
	elapsed := time.Since(start)
	// A second Ctrl-C while outputs are written kills the process.
	stop()

	interrupted := errors.Is(runErr, context.Canceled)
	if runErr != nil && !interrupted {
		return runErr
	}
	if interrupted {
		log.Printf("interrupted after %d iterations", res.Iterations)
	}
	log.Printf("cost: %.4f\t| gbest: %v", res.BestCost, res.BestRoute)
	log.Printf("elapsed %v", elapsed.Round(time.Millisecond))

	if plots != nil {
		if err = writePlots(c.String(flagPlotDir), plots, pts, res); err != nil {
			return err
		}
	}
	if path := c.String(flagReport); path != "" {
		rep := newReport(name, len(pts), opts, res, elapsed, interrupted)
		if err = rep.writeFile(path); err != nil {
			return err
		}
	}

	return nil
}

// loadPoints reads --file, or generates --random cities.
func loadPoints(c *cli.Context) (string, []geom.Point, error) {
	if path := c.String(flagFile); path != "" {
		inst, err := tsplib.ReadFile(path)
		if err != nil {
			return "", nil, err
		}
		name := inst.Name
		if name == "" {
			name = filepath.Base(path)
		}

		return name, inst.Points, nil
	}

	n := c.Int(flagRandom)
	if n < 1 {
		return "", nil, fmt.Errorf("--%s must be at least 1, got %d", flagRandom, n)
	}

	return fmt.Sprintf("random%d", n), randomInstance(n, seedFrom(c)), nil
}

// instanceSalt separates the instance stream from the swarm streams, which
// are seeded from the same run seed.
const instanceSalt = 0x7a3c_59e1_d2b4_8f06

// randomInstance generates n cities from a stream derived from seed.
func randomInstance(n int, seed int64) []geom.Point {
	return geom.RandomPoints(n, rand.New(rand.NewSource(seed^instanceSalt)))
}

// optionsFrom maps flags onto pso.Options.
func optionsFrom(c *cli.Context) pso.Options {
	opts := pso.DefaultOptions()
	opts.Iterations = c.Int(flagIterations)
	opts.PopulationSize = c.Int(flagPopulation)
	opts.PBestProbability = c.Float64(flagPBest)
	opts.GBestProbability = c.Float64(flagGBest)
	opts.Workers = c.Int(flagWorkers)
	opts.Seed = seedFrom(c)

	return opts
}

// seedFrom returns --seed, or a time-based seed fixed once per process.
func seedFrom(c *cli.Context) int64 {
	if c.IsSet(flagSeed) {
		return c.Int64(flagSeed)
	}

	return processSeed
}

var (
	processSeed   = time.Now().UnixNano()
	notifyContext = signal.NotifyContext
)

// logSink logs gbest every `every` iterations; every ≤ 0 logs nothing.
func logSink(every int) pso.Sink {
	if every <= 0 {
		return nil
	}

	return pso.SinkFunc(func(p pso.Progress) {
		if p.Iteration%every == 0 {
			log.Printf("iter %5d: best %.4f (pbest mean %.4f, sd %.4f)",
				p.Iteration, p.BestCost, p.MeanBestCost, p.StdDevBestCost)
		}
	})
}

func saveInstance(path, name string, pts []geom.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = tsplib.Write(f, name, pts); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func writePlots(dir string, s *plotsink.Sink, pts []geom.Point, res pso.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if len(s.History()) > 0 {
		if err := s.SaveConvergence(filepath.Join(dir, "convergence.png")); err != nil {
			return err
		}
	}
	if err := s.SaveSnapshots(dir, pts); err != nil {
		return err
	}

	return plotsink.SaveTour(filepath.Join(dir, "tour.png"), pts, res.BestRoute, fmt.Sprintf("pso TSP (%.2f)", res.BestCost))
}
