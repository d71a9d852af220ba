package report

import (
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/memtrack/memtrack/internal/model"
)

// ChartConfig are the cosmetic parameters of the rendered chart.
type ChartConfig struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

func (c *ChartConfig) defaults() {
	// 1024x768 px at the 96 DPI the png writer uses.
	const (
		defWidth  = vg.Length(768)
		defHeight = vg.Length(576)
	)

	if c.Title == "" {
		c.Title = "Memory Usage Over Time"
	}
	if c.XLabel == "" {
		c.XLabel = "Time (seconds)"
	}
	if c.YLabel == "" {
		c.YLabel = "Memory (MB)"
	}
	if c.Width == 0 {
		c.Width = defWidth
	}
	if c.Height == 0 {
		c.Height = defHeight
	}
}

// WriteChart renders the time-ordered series as a PNG line chart at path.
// The y axis spans the observed MB range plus a 10% margin on each side,
// clamped at 0; the x axis spans [0, last elapsed second]. A single-sample
// series has a zero-width span and still renders as a flat line. A write
// failure is a hard error for the run.
func WriteChart(samples []model.Sample, path string, cfg ChartConfig) error {
	cfg.defaults()

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.BackgroundColor = color.White

	pts := make(plotter.XYs, 0, len(samples))
	var minMB, maxMB float64
	for i, s := range samples {
		mb := float64(s.MemoryKB) / 1024
		pts = append(pts, plotter.XY{X: s.Elapsed, Y: mb})

		if i == 0 || mb < minMB {
			minMB = mb
		}
		if i == 0 || mb > maxMB {
			maxMB = mb
		}
	}

	margin := (maxMB - minMB) / 10
	yMin := minMB - margin
	if yMin < 0 {
		yMin = 0
	}

	p.X.Min = 0
	if len(samples) > 0 {
		p.X.Max = samples[len(samples)-1].Elapsed
	}
	p.Y.Min = yMin
	p.Y.Max = maxMB + margin

	// A flat or single-point series leaves a degenerate range; widen it so
	// the axes still lay out.
	if p.X.Max <= p.X.Min {
		p.X.Max = p.X.Min + 1
	}
	if p.Y.Max <= p.Y.Min {
		p.Y.Max = p.Y.Min + 1
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "build line series")
	}
	line.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)

	if err := p.Save(cfg.Width, cfg.Height, path); err != nil {
		return errors.Wrapf(err, "save chart to %s", path)
	}

	return nil
}
