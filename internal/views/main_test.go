package views

import (
	"errors"
	"image"
	"testing"

	"poblaciones/internal/models"
	"poblaciones/internal/views/components"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	calls int
}

func (r *stubRenderer) Render(bars []models.ContinentBar) (image.Image, error) {
	r.calls++
	return image.NewRGBA(image.Rect(0, 0, 10, 10)), nil
}

func newTestView(t *testing.T) (*MainView, *stubRenderer) {
	test.NewTempApp(t)
	window := test.NewTempWindow(t, nil)
	renderer := &stubRenderer{}
	return NewMainView(window, renderer, "http://example.test/all", nil), renderer
}

func TestMainViewStartsOnHome(t *testing.T) {
	view, _ := newTestView(t)

	assert.NotNil(t, view.GetContainer())
	assert.False(t, view.IsLoading())
	assert.Equal(t, "Ready", view.GetStatus())
}

func TestMainViewActivatesPopulationPage(t *testing.T) {
	view, _ := newTestView(t)

	activations := 0
	view.SetActivateHandler(func() { activations++ })

	view.ShowPopulation()
	assert.Equal(t, components.PagePopulation, view.CurrentPage())
	assert.Equal(t, 1, activations)

	view.ShowPopulation()
	assert.Equal(t, 1, activations, "reselecting the shown page does not reactivate it")
}

func TestMainViewForwardsThreshold(t *testing.T) {
	view, _ := newTestView(t)

	var got []float64
	view.SetThresholdHandler(func(v float64) { got = append(got, v) })

	view.filter.SetValue(25)
	assert.Equal(t, []float64{25}, got)
}

func TestMainViewControllerSurface(t *testing.T) {
	view, _ := newTestView(t)

	view.SetLoading(true)
	assert.True(t, view.IsLoading())
	view.SetLoading(false)
	assert.False(t, view.IsLoading())

	view.SetStatus("2 countries in 1 continents")
	assert.Equal(t, "2 countries in 1 continents", view.GetStatus())

	view.SetThresholdRange(5000)
	assert.Equal(t, 5000.0, view.filter.Slider.Max)

	assert.NotPanics(t, func() {
		view.ShowLoadError(errors.New("boom"), func() {})
	})
}

func TestMainViewNewChart(t *testing.T) {
	view, renderer := newTestView(t)

	chart, err := view.NewChart([]models.ContinentBar{{Label: "Asia", Population: 150}})
	require.NoError(t, err)
	assert.True(t, view.chartArea.HasChart())
	assert.Equal(t, 1, renderer.calls)

	_, err = view.NewChart(nil)
	assert.ErrorIs(t, err, components.ErrTargetBound)

	chart.Dispose()
	assert.False(t, view.chartArea.HasChart())
}
