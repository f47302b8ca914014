package pso

import (
	"sync/atomic"
)

// Progress is one per-iteration report. BestRoute is a private copy; sinks
// may keep it.
type Progress struct {
	// Iteration is the zero-based index of the iteration about to update
	// the particles.
	Iteration int

	// BestCost and BestRoute describe gbest at the start of the iteration.
	BestCost  float64
	BestRoute Route

	// MeanBestCost and StdDevBestCost summarise the pbest costs of the whole
	// swarm; a collapsing deviation means the swarm lost its diversity.
	MeanBestCost   float64
	StdDevBestCost float64
}

// Sink consumes progress reports. Report is called synchronously from the
// optimisation loop and must return quickly; buffering or dropping is the
// sink's business.
type Sink interface {
	Report(Progress)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(Progress)

// Report implements Sink.
func (f SinkFunc) Report(p Progress) { f(p) }

// Tee fans every report out to each non-nil sink in order.
func Tee(sinks ...Sink) Sink {
	var live = make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			live = append(live, s)
		}
	}

	return SinkFunc(func(p Progress) {
		for _, s := range live {
			s.Report(p)
		}
	})
}

// ChannelSink forwards reports to a buffered channel without ever blocking:
// when the buffer is full the report is dropped and counted.
type ChannelSink struct {
	ch      chan Progress
	dropped atomic.Uint64
}

// NewChannelSink returns a ChannelSink buffering up to capacity reports.
// A negative capacity is treated as 0.
func NewChannelSink(capacity int) *ChannelSink {
	if capacity < 0 {
		capacity = 0
	}

	return &ChannelSink{ch: make(chan Progress, capacity)}
}

// C returns the receive side of the channel.
func (s *ChannelSink) C() <-chan Progress { return s.ch }

// Report implements Sink.
func (s *ChannelSink) Report(p Progress) {
	select {
	case s.ch <- p:
	default:
		s.dropped.Add(1)
	}
}

// Dropped returns how many reports were discarded so far.
func (s *ChannelSink) Dropped() uint64 { return s.dropped.Load() }

// Close closes the channel. Call it once the run that reports into s is over.
func (s *ChannelSink) Close() { close(s.ch) }

// Recorder keeps every report in memory. It is not safe for concurrent use.
type Recorder struct {
	Reports []Progress
}

// Report implements Sink.
func (r *Recorder) Report(p Progress) { r.Reports = append(r.Reports, p) }

// Costs returns the recorded best costs in iteration order.
func (r *Recorder) Costs() []float64 {
	out := make([]float64, len(r.Reports))
	for i := range r.Reports {
		out[i] = r.Reports[i].BestCost
	}

	return out
}
