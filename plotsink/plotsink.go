// Package plotsink records optimiser progress and renders it with
// gonum/plot: a convergence chart of the gbest cost per iteration and tour
// drawings of gbest.
//
// Report only copies data in memory, so the optimiser never waits on
// rendering; charts are produced afterwards with the Save*/Write* helpers.
package plotsink

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/psotsp/geom"
	"github.com/katalvlaran/psotsp/pso"
)

// ErrNothingToPlot is returned when there is no data to draw.
var ErrNothingToPlot = errors.New("plotsink: nothing to plot")

const (
	width  = 6 * vg.Inch
	height = 4 * vg.Inch
)

var (
	costColor  = color.RGBA{G: 128, A: 255}
	cityColor  = color.RGBA{R: 220, A: 255}
	routeColor = color.RGBA{G: 128, B: 64, A: 255}
)

// Snapshot is gbest as reported at one iteration.
type Snapshot struct {
	Iteration int
	Cost      float64
	Route     pso.Route
}

// Sink is a pso.Sink that keeps the cost history and, every Every
// iterations, a snapshot of the gbest tour. Every ≤ 0 disables snapshots.
// A Sink is not safe for concurrent use.
type Sink struct {
	Every int

	history   []float64
	snapshots []Snapshot
}

// New returns a Sink taking a tour snapshot every `every` iterations.
func New(every int) *Sink {
	return &Sink{Every: every}
}

// Report implements pso.Sink. The route in p is already a private copy and
// is kept as is.
func (s *Sink) Report(p pso.Progress) {
	s.history = append(s.history, p.BestCost)
	if s.Every > 0 && p.Iteration%s.Every == 0 {
		s.snapshots = append(s.snapshots, Snapshot{Iteration: p.Iteration, Cost: p.BestCost, Route: p.BestRoute})
	}
}

// History returns the recorded gbest costs.
func (s *Sink) History() []float64 { return s.history }

// Snapshots returns the recorded tour snapshots.
func (s *Sink) Snapshots() []Snapshot { return s.snapshots }

// SaveConvergence writes the convergence chart to path; the image format
// follows the file extension (.png, .svg, .pdf, …).
func (s *Sink) SaveConvergence(path string) error {
	p, err := ConvergencePlot(s.history)
	if err != nil {
		return err
	}

	return p.Save(width, height, path)
}

// SaveSnapshots writes one tour chart per snapshot into dir, named
// tour_<iteration>.png.
func (s *Sink) SaveSnapshots(dir string, pts []geom.Point) error {
	for _, snap := range s.snapshots {
		name := filepath.Join(dir, fmt.Sprintf("tour_%05d.png", snap.Iteration))
		title := fmt.Sprintf("pso TSP iter %d (%.2f)", snap.Iteration, snap.Cost)
		if err := SaveTour(name, pts, snap.Route, title); err != nil {
			return err
		}
	}

	return nil
}

// ConvergencePlot draws cost against iteration.
func ConvergencePlot(history []float64) (*plot.Plot, error) {
	if len(history) == 0 {
		return nil, ErrNothingToPlot
	}
	xys := make(plotter.XYs, len(history))
	for i, c := range history {
		xys[i].X = float64(i)
		xys[i].Y = c
	}

	p := plot.New()
	p.Title.Text = "pso iter"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Distance"

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("plotsink: %w", err)
	}
	line.LineStyle.Color = costColor
	p.Add(line)

	return p, nil
}

// TourPlot draws the cities as dots and the closed tour through them.
func TourPlot(pts []geom.Point, route pso.Route, title string) (*plot.Plot, error) {
	if len(route) == 0 {
		return nil, ErrNothingToPlot
	}
	xys := make(plotter.XYs, len(route)+1)
	for i, v := range route {
		if v < 0 || v >= len(pts) {
			return nil, fmt.Errorf("plotsink: city %d out of range", v)
		}
		xys[i].X, xys[i].Y = pts[v].X, pts[v].Y
	}
	xys[len(route)] = xys[0]

	p := plot.New()
	p.Title.Text = title

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("plotsink: %w", err)
	}
	line.LineStyle.Color = routeColor

	dots, err := plotter.NewScatter(xys[:len(route)])
	if err != nil {
		return nil, fmt.Errorf("plotsink: %w", err)
	}
	dots.GlyphStyle.Color = cityColor
	dots.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(line, dots)

	return p, nil
}

// SaveTour renders TourPlot to path.
func SaveTour(path string, pts []geom.Point, route pso.Route, title string) error {
	p, err := TourPlot(pts, route, title)
	if err != nil {
		return err
	}

	return p.Save(width, height, path)
}

// WritePNG renders p as PNG into w.
func WritePNG(w io.Writer, p *plot.Plot) error {
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("plotsink: %w", err)
	}
	_, err = wt.WriteTo(w)

	return err
}
