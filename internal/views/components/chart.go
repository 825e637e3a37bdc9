package components

import (
	"errors"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"poblaciones/internal/models"
)

const (
	ChartAreaWidth  = 720
	ChartAreaHeight = 420
)

// ErrTargetBound is reported when a chart is built on a target that already holds one
var ErrTargetBound = errors.New("chart area already holds a live chart")

// ChartImageRenderer turns a series into an image
type ChartImageRenderer interface {
	Render(bars []models.ContinentBar) (image.Image, error)
}

// ChartArea is the single render target charts are bound to
type ChartArea struct {
	container   *fyne.Container
	placeholder fyne.CanvasObject
	bound       *BarChart
}

// NewChartArea creates an empty target showing a placeholder
func NewChartArea() *ChartArea {
	placeholder := container.NewCenter(widget.NewLabel("No data loaded"))
	return &ChartArea{
		container:   container.NewStack(placeholder),
		placeholder: placeholder,
	}
}

// GetContainer returns the target container
func (ca *ChartArea) GetContainer() *fyne.Container {
	return ca.container
}

// HasChart returns true while a chart is bound
func (ca *ChartArea) HasChart() bool {
	return ca.bound != nil
}

func (ca *ChartArea) bind(chart *BarChart) error {
	if ca.bound != nil {
		return ErrTargetBound
	}
	ca.bound = chart
	ca.container.Objects = []fyne.CanvasObject{chart.image}
	ca.container.Refresh()
	return nil
}

func (ca *ChartArea) unbind(chart *BarChart) {
	if ca.bound != chart {
		return
	}
	ca.bound = nil
	ca.container.Objects = []fyne.CanvasObject{ca.placeholder}
	ca.container.Refresh()
}

// BarChart is one live chart instance drawn into a ChartArea
type BarChart struct {
	area     *ChartArea
	renderer ChartImageRenderer
	image    *canvas.Image
	bars     []models.ContinentBar
	disposed bool
	onError  func(error)
}

// NewBarChart renders bars and binds the result into area.
// Render errors are passed to onError and leave the previous frame on screen.
func NewBarChart(area *ChartArea, renderer ChartImageRenderer, bars []models.ContinentBar, onError func(error)) (*BarChart, error) {
	chart := &BarChart{
		area:     area,
		renderer: renderer,
		image:    canvas.NewImageFromImage(nil),
		onError:  onError,
	}
	chart.image.FillMode = canvas.ImageFillContain
	chart.image.ScaleMode = canvas.ImageScaleSmooth
	chart.image.SetMinSize(fyne.NewSize(ChartAreaWidth, ChartAreaHeight))

	if err := area.bind(chart); err != nil {
		return nil, err
	}

	chart.Update(bars)
	return chart, nil
}

// Update redraws the chart with a new series
func (c *BarChart) Update(bars []models.ContinentBar) {
	if c.disposed {
		return
	}

	c.bars = bars
	img, err := c.renderer.Render(bars)
	if err != nil {
		if c.onError != nil {
			c.onError(err)
		}
		return
	}

	c.image.Image = img
	c.image.Refresh()
}

// Dispose unbinds the chart from its area. Further updates are ignored.
func (c *BarChart) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.area.unbind(c)
}

// Bars returns the series currently drawn
func (c *BarChart) Bars() []models.ContinentBar {
	return c.bars
}

// IsDisposed reports whether Dispose was called
func (c *BarChart) IsDisposed() bool {
	return c.disposed
}
