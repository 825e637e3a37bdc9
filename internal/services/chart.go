package services

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"poblaciones/internal/models"
)

const (
	ChartTitle         = "Population by Continent"
	DefaultChartWidth  = 900
	DefaultChartHeight = 520
	chartPadding       = 50
	maxBarWidth        = 80
)

var (
	barFill   = drawing.Color{R: 75, G: 192, B: 192, A: 51}
	barStroke = drawing.Color{R: 75, G: 192, B: 192, A: 255}
)

// ChartRenderer draws a continent series as a bar chart with the y-axis starting at zero
type ChartRenderer struct {
	width  int
	height int
	title  string
}

// NewChartRenderer creates a renderer producing width x height images
func NewChartRenderer(width, height int) *ChartRenderer {
	if width <= 0 {
		width = DefaultChartWidth
	}
	if height <= 0 {
		height = DefaultChartHeight
	}
	return &ChartRenderer{width: width, height: height, title: ChartTitle}
}

// Size returns the output dimensions in pixels
func (r *ChartRenderer) Size() (int, int) {
	return r.width, r.height
}

// Render returns the chart as an image. An empty series renders a blank canvas.
func (r *ChartRenderer) Render(bars []models.ContinentBar) (image.Image, error) {
	if len(bars) == 0 {
		return Blank(r.width, r.height), nil
	}

	var buf bytes.Buffer
	if err := r.RenderPNG(&buf, bars); err != nil {
		return nil, err
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode chart: %w", err)
	}
	return img, nil
}

// RenderPNG writes the chart as PNG to w
func (r *ChartRenderer) RenderPNG(w io.Writer, bars []models.ContinentBar) error {
	if len(bars) == 0 {
		return png.Encode(w, Blank(r.width, r.height))
	}

	bc := r.barChart(bars)
	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func (r *ChartRenderer) barChart(bars []models.ContinentBar) chart.BarChart {
	values := make([]chart.Value, 0, len(bars))
	var largest float64
	for _, bar := range bars {
		v := float64(bar.Population)
		if v > largest {
			largest = v
		}
		values = append(values, chart.Value{
			Label: bar.Label,
			Value: v,
			Style: chart.Style{
				FillColor:   barFill,
				StrokeColor: barStroke,
				StrokeWidth: 1,
			},
		})
	}

	// the range must be non-degenerate or go-chart refuses to render
	if largest <= 0 {
		largest = 1
	}

	return chart.BarChart{
		Title:  r.title,
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: chartPadding, Left: chartPadding, Right: chartPadding, Bottom: chartPadding},
		},
		BarWidth: r.barWidth(len(bars)),
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: largest * 1.1},
			ValueFormatter: FormatPopulation,
		},
		Bars: values,
	}
}

func (r *ChartRenderer) barWidth(count int) int {
	usable := r.width - 2*chartPadding
	width := usable / (2 * count)
	if width > maxBarWidth {
		width = maxBarWidth
	}
	if width < 4 {
		width = 4
	}
	return width
}

// FormatPopulation renders axis values compactly (1.2B, 350M, 12K)
func FormatPopulation(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return fmt.Sprintf("%v", v)
	}

	switch {
	case f < 0:
		return "-" + FormatPopulation(-f)
	case f >= 1e9:
		return fmt.Sprintf("%.1fB", f/1e9)
	case f >= 1e6:
		return fmt.Sprintf("%.0fM", f/1e6)
	case f >= 1e3:
		return fmt.Sprintf("%.0fK", f/1e3)
	default:
		return fmt.Sprintf("%.0f", f)
	}
}

// Blank returns a white image, used when there is nothing to draw
func Blank(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	return img
}
