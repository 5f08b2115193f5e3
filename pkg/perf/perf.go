// Package perf provides a frame time recorder. Frame durations
// are collected while the emulator runs and written out as a plot
// when the recorder is flushed.
package perf

import (
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Recorder collects frame durations.
type Recorder struct {
	frameTimes []time.Duration
	last       time.Time
}

// NewRecorder returns a new Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Frame records the time elapsed since the previous call as one
// frame. The first call only arms the recorder.
func (r *Recorder) Frame() {
	now := time.Now()
	if !r.last.IsZero() {
		r.frameTimes = append(r.frameTimes, now.Sub(r.last))
	}
	r.last = now
}

// Average returns the average frame duration recorded so far.
func (r *Recorder) Average() time.Duration {
	if len(r.frameTimes) == 0 {
		return 0
	}

	var total time.Duration
	for _, t := range r.frameTimes {
		total += t
	}
	return total / time.Duration(len(r.frameTimes))
}

// WritePlot writes the recorded frame times as a line plot to the
// given PNG file.
func (r *Recorder) WritePlot(filename string) error {
	p := plot.New()
	p.Title.Text = "Frame Time"
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "ms"

	xys := make(plotter.XYs, len(r.frameTimes))
	for i, t := range r.frameTimes {
		xys[i].X = float64(i)
		xys[i].Y = float64(t.Microseconds()) / 1000
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(8*vg.Inch, 6*vg.Inch, filename)
}
