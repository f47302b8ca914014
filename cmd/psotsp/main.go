// Command psotsp searches for a short closed tour through a set of 2-D
// points with the discrete particle swarm optimiser of package pso.
//
// Usage:
//
//	psotsp -f berlin52.tsp -i 1200 -p 300 --pbest 0.9 --gbest 0.02
//	psotsp -n 60 --seed 7 --plot-dir out --report out/run.json
//
// Without --file a random instance of --random cities is generated. Ctrl-C
// stops the run between iterations; the best tour found so far is still
// printed and written.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli"

	"github.com/katalvlaran/psotsp/pso"
)

const (
	flagFile         = "file"
	flagRandom       = "random"
	flagIterations   = "iterations"
	flagPopulation   = "population"
	flagPBest        = "pbest"
	flagGBest        = "gbest"
	flagSeed         = "seed"
	flagWorkers      = "workers"
	flagLogEvery     = "log-every"
	flagPlotDir      = "plot-dir"
	flagReport       = "report"
	flagSaveInstance = "save-instance"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "psotsp"
	app.Usage = "discrete particle swarm optimisation for the Euclidean TSP"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: flagFile + ", f", Usage: "TSPLIB instance with a NODE_COORD_SECTION"},
		cli.IntFlag{Name: flagRandom + ", n", Value: 52, Usage: "number of random cities when no file is given"},
		cli.IntFlag{Name: flagIterations + ", i", Value: pso.DefaultIterations, Usage: "number of iterations"},
		cli.IntFlag{Name: flagPopulation + ", p", Value: pso.DefaultPopulationSize, Usage: "number of particles"},
		cli.Float64Flag{Name: flagPBest, Value: pso.DefaultPBestProbability, Usage: "acceptance probability of swaps towards the personal best"},
		cli.Float64Flag{Name: flagGBest, Value: pso.DefaultGBestProbability, Usage: "acceptance probability of swaps towards the global best"},
		cli.Int64Flag{Name: flagSeed, Usage: "random seed (time based when unset)"},
		cli.IntFlag{Name: flagWorkers + ", w", Value: 1, Usage: "goroutines updating particles"},
		cli.IntFlag{Name: flagLogEvery, Value: 20, Usage: "log progress (and snapshot tours) every N iterations, 0 disables"},
		cli.StringFlag{Name: flagPlotDir, Usage: "directory for convergence and tour charts"},
		cli.StringFlag{Name: flagReport, Usage: "write a JSON run report to this file"},
		cli.StringFlag{Name: flagSaveInstance, Usage: "write the instance in TSPLIB format to this file"},
	}
	app.Action = run

	return app
}
