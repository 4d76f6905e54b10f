// Package chart renders the growth chart projection to PNG with go-chart.
package chart

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strings"
	"sync"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ghuser/growthtrack/pkg/logger"
	"github.com/ghuser/growthtrack/services/growth/application/views"
)

// Rendered is the adapter's current chart instance.
type Rendered struct {
	PNG     []byte
	Data    views.ChartData
	Version uint64
}

// Adapter implements views.ChartAdapter. It owns one current chart; Render
// drops the previous instance before building the next.
type Adapter struct {
	mu      sync.RWMutex
	width   int
	height  int
	current *Rendered
	version uint64
	log     logger.Logger
}

// NewAdapter returns an Adapter producing width×height images.
func NewAdapter(width, height int, log logger.Logger) *Adapter {
	if width <= 0 {
		width = 1024
	}
	if height <= 0 {
		height = 400
	}
	return &Adapter{width: width, height: height, log: log}
}

// Render rebuilds the chart from data. An empty projection, or one with only
// gaps, yields a blank image rather than an error.
func (a *Adapter) Render(ctx context.Context, data views.ChartData) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.current = nil
	a.version++

	img, err := a.draw(data)
	if err != nil {
		a.log.ErrorContext(ctx, "chart render failed, showing blank image", "error", err, "points", len(data.Labels))
		img = blankPNG(a.width, a.height)
	}
	a.current = &Rendered{PNG: img, Data: data, Version: a.version}
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// Current returns the current PNG and its version. Before the first Render it
// returns a blank image at version 0.
func (a *Adapter) Current() ([]byte, uint64) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.current == nil {
		return blankPNG(a.width, a.height), a.version
	}
	return a.current.PNG, a.current.Version
}

// Data returns the projection the current chart was built from.
func (a *Adapter) Data() views.ChartData {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.current == nil {
		return views.ChartData{Title: views.ChartTitle, Labels: []string{}, Datasets: []views.ChartDataset{}}
	}
	return a.current.Data
}

func (a *Adapter) draw(data views.ChartData) ([]byte, error) {
	yMin, yMax, ok := valueBounds(data)
	if data.Empty() || !ok {
		return blankPNG(a.width, a.height), nil
	}

	// Legend entries come from one named series per dataset; the plotted
	// segments below are unnamed.
	legend := gochart.Chart{}
	var series []gochart.Series
	for _, ds := range data.Datasets {
		style := lineStyle(ds.Color)
		legend.Series = append(legend.Series, gochart.ContinuousSeries{Name: ds.Label, Style: style})
		for _, seg := range splitSegments(ds.Values) {
			seg = seg.padded()
			series = append(series, gochart.ContinuousSeries{XValues: seg.xs, YValues: seg.ys, Style: style})
		}
	}

	// go-chart derives the x range from the ticks when any are set, so the
	// half-step margins are unlabeled ticks of their own.
	lastX := float64(len(data.Labels)) - 0.5
	ticks := make([]gochart.Tick, 0, len(data.Labels)+2)
	ticks = append(ticks, gochart.Tick{Value: -0.5})
	for i, l := range data.Labels {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: l})
	}
	ticks = append(ticks, gochart.Tick{Value: lastX})

	ch := gochart.Chart{
		Title:      data.Title,
		Width:      a.width,
		Height:     a.height,
		Background: gochart.Style{Padding: gochart.Box{Top: 50, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Ticks: ticks,
			Range: &gochart.ContinuousRange{Min: -0.5, Max: lastX},
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: yMin, Max: yMax},
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&legend)}

	var buf bytes.Buffer
	if err := ch.Render(gochart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type segment struct {
	xs, ys []float64
}

// padded repeats a lone point so go-chart, which needs two values per
// series, draws it as a dot.
func (s segment) padded() segment {
	if len(s.xs) != 1 {
		return s
	}
	return segment{xs: []float64{s.xs[0], s.xs[0]}, ys: []float64{s.ys[0], s.ys[0]}}
}

// splitSegments breaks values at nil entries so the plotted line has a gap
// instead of bridging or dropping to zero. X values are label indexes.
func splitSegments(values []*float64) []segment {
	var (
		out []segment
		cur segment
	)
	for i, v := range values {
		if v == nil || math.IsNaN(*v) {
			if len(cur.xs) > 0 {
				out = append(out, cur)
				cur = segment{}
			}
			continue
		}
		cur.xs = append(cur.xs, float64(i))
		cur.ys = append(cur.ys, *v)
	}
	if len(cur.xs) > 0 {
		out = append(out, cur)
	}
	return out
}

// valueBounds returns a padded y range over all present values.
func valueBounds(data views.ChartData) (lo, hi float64, ok bool) {
	lo, hi = math.MaxFloat64, -math.MaxFloat64
	for _, ds := range data.Datasets {
		for _, v := range ds.Values {
			if v == nil || math.IsNaN(*v) {
				continue
			}
			lo = math.Min(lo, *v)
			hi = math.Max(hi, *v)
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 1
	}
	return lo - pad, hi + pad, true
}

func lineStyle(hex string) gochart.Style {
	c := drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
	return gochart.Style{
		StrokeColor: c,
		StrokeWidth: 2,
		DotColor:    c,
		DotWidth:    3,
	}
}

func blankPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
