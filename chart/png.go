// Package chart renders price series as PNG images.
package chart

import (
	"errors"
	"strconv"

	"github.com/etnz/nextfinance"
	"github.com/vicanso/go-charts/v2"
)

// ErrNoData is returned when rendering an empty series.
var ErrNoData = errors.New("no data")

// Options of a rendered chart. Zero values select the defaults.
type Options struct {
	Title   string
	Padding float64 // vertical padding, as in nextfinance.Project
	Width   int
	Height  int
	Theme   string // "dark" or "light"
}

const (
	DefaultWidth  = 800
	DefaultHeight = 400
)

// PNG renders s as a line chart. The y axis uses the same bounds as the projected chart.
func PNG(s nextfinance.Series, o Options) ([]byte, error) {
	minY, maxY, ok := nextfinance.Bounds(s, o.Padding)
	if !ok {
		return nil, ErrNoData
	}
	if minY == maxY {
		minY, maxY = minY-1, maxY+1
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	theme := charts.ThemeDark
	if o.Theme == charts.ThemeLight {
		theme = charts.ThemeLight
	}

	labels := make([]string, s.Len())
	for i := range labels {
		labels[i] = strconv.Itoa(s.At(i).Index)
	}

	painter, err := charts.LineRender([][]float64{s.Values()},
		charts.PNGTypeOption(),
		charts.TitleTextOptionFunc(o.Title),
		charts.WidthOptionFunc(o.Width),
		charts.HeightOptionFunc(o.Height),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 10}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &minY, Max: &maxY, DivideCount: 4}),
		charts.ThemeOptionFunc(theme),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
