package services

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poblaciones/internal/models"
)

func TestChartRendererRender(t *testing.T) {
	renderer := NewChartRenderer(640, 400)

	t.Run("draws bars at the configured size", func(t *testing.T) {
		img, err := renderer.Render([]models.ContinentBar{
			{Label: "Asia", Population: 150},
			{Label: "Europe", Population: 30},
		})
		require.NoError(t, err)
		require.NotNil(t, img)
		assert.Equal(t, 640, img.Bounds().Dx())
		assert.Equal(t, 400, img.Bounds().Dy())
	})

	t.Run("single bar", func(t *testing.T) {
		img, err := renderer.Render([]models.ContinentBar{{Label: "Asia", Population: 150}})
		require.NoError(t, err)
		assert.Equal(t, 640, img.Bounds().Dx())
	})

	t.Run("all zero totals still render", func(t *testing.T) {
		img, err := renderer.Render([]models.ContinentBar{{Label: "Antarctic", Population: 0}})
		require.NoError(t, err)
		assert.NotNil(t, img)
	})

	t.Run("empty series is blank", func(t *testing.T) {
		img, err := renderer.Render(nil)
		require.NoError(t, err)
		assert.Equal(t, 640, img.Bounds().Dx())
		r, g, b, _ := img.At(10, 10).RGBA()
		assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
	})
}

func TestChartRendererRenderPNG(t *testing.T) {
	renderer := NewChartRenderer(0, 0)
	w, h := renderer.Size()
	assert.Equal(t, DefaultChartWidth, w)
	assert.Equal(t, DefaultChartHeight, h)

	var buf bytes.Buffer
	require.NoError(t, renderer.RenderPNG(&buf, []models.ContinentBar{
		{Label: "Africa", Population: 1_400_000_000},
		{Label: "Americas", Population: 1_000_000_000},
		{Label: "Asia", Population: 4_700_000_000},
	}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultChartWidth, img.Bounds().Dx())
	assert.Equal(t, DefaultChartHeight, img.Bounds().Dy())
}

func TestFormatPopulation(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{float64(0), "0"},
		{float64(950), "950"},
		{float64(12_000), "12K"},
		{float64(350_000_000), "350M"},
		{float64(4_700_000_000), "4.7B"},
		{float64(-2_000), "-2K"},
		{"x", "x"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPopulation(tt.in))
	}
}
