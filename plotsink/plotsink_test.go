package plotsink_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/psotsp/geom"
	"github.com/katalvlaran/psotsp/plotsink"
	"github.com/katalvlaran/psotsp/pso"
)

var pngMagic = []byte("\x89PNG")

func square() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func TestSink_RecordsHistoryAndSnapshots(t *testing.T) {
	s := plotsink.New(20)
	for i := 0; i < 45; i++ {
		s.Report(pso.Progress{Iteration: i, BestCost: float64(100 - i), BestRoute: pso.Route{0, 1, 2, 3}})
	}

	assert.Len(t, s.History(), 45)
	require.Len(t, s.Snapshots(), 3)
	assert.Equal(t, []int{0, 20, 40}, []int{
		s.Snapshots()[0].Iteration, s.Snapshots()[1].Iteration, s.Snapshots()[2].Iteration,
	})
	assert.Equal(t, 60.0, s.Snapshots()[2].Cost)

	off := plotsink.New(0)
	off.Report(pso.Progress{})
	assert.Empty(t, off.Snapshots())
}

func TestConvergencePlot_PNG(t *testing.T) {
	p, err := plotsink.ConvergencePlot([]float64{10, 8, 8, 5})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, plotsink.WritePNG(&buf, p))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	_, err = plotsink.ConvergencePlot(nil)
	assert.ErrorIs(t, err, plotsink.ErrNothingToPlot)
}

func TestTourPlot_Errors(t *testing.T) {
	_, err := plotsink.TourPlot(square(), nil, "empty")
	assert.ErrorIs(t, err, plotsink.ErrNothingToPlot)

	_, err = plotsink.TourPlot(square(), pso.Route{0, 9}, "bad")
	assert.Error(t, err)
}

// TestSink_EndToEnd runs a small swarm into the sink and writes every chart.
func TestSink_EndToEnd(t *testing.T) {
	opts := pso.DefaultOptions()
	opts.Iterations = 30
	opts.PopulationSize = 6

	sw, err := pso.NewSwarm(square(), opts)
	require.NoError(t, err)

	s := plotsink.New(10)
	res, err := sw.Run(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, res.History, s.History())

	dir := t.TempDir()
	require.NoError(t, s.SaveConvergence(filepath.Join(dir, "convergence.png")))
	require.NoError(t, s.SaveSnapshots(dir, square()))
	require.NoError(t, plotsink.SaveTour(filepath.Join(dir, "tour.png"), square(), res.BestRoute, "final"))

	for _, name := range []string{"convergence.png", "tour.png", "tour_00000.png", "tour_00010.png", "tour_00020.png"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.True(t, bytes.HasPrefix(data, pngMagic), name)
	}
}
