package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func newRecordingFilter(t *testing.T) (*FilterControl, *[]float64) {
	t.Helper()
	test.NewTempApp(t)

	fc := NewFilterControl()
	var changes []float64
	fc.SetOnChanged(func(v float64) { changes = append(changes, v) })
	return fc, &changes
}

func TestFilterControlDefaults(t *testing.T) {
	fc, changes := newRecordingFilter(t)

	assert.Equal(t, float64(0), fc.Value())
	assert.Equal(t, "0", fc.entry.Text)
	assert.Equal(t, float64(0), fc.Slider.Value)
	assert.Empty(t, *changes)
}

func TestFilterControlEntry(t *testing.T) {
	t.Run("typed value notifies and moves the slider", func(t *testing.T) {
		fc, changes := newRecordingFilter(t)

		fc.entry.SetText("6")

		assert.Equal(t, []float64{6}, *changes)
		assert.Equal(t, float64(6), fc.Value())
		assert.Equal(t, float64(6), fc.Slider.Value)
	})

	t.Run("unparseable text is ignored", func(t *testing.T) {
		fc, changes := newRecordingFilter(t)

		fc.entry.SetText("abc")
		fc.entry.SetText("-")

		assert.Empty(t, *changes)
		assert.Equal(t, float64(0), fc.Value())
	})

	t.Run("negative values are accepted", func(t *testing.T) {
		fc, changes := newRecordingFilter(t)

		fc.entry.SetText("-5")

		assert.Equal(t, []float64{-5}, *changes)
		assert.Equal(t, float64(-5), fc.Value())
		assert.Equal(t, float64(0), fc.Slider.Value, "slider clamps to its minimum")
	})

	t.Run("empty entry means zero", func(t *testing.T) {
		fc, changes := newRecordingFilter(t)

		fc.entry.SetText("40")
		fc.entry.SetText("")

		assert.Equal(t, []float64{40, 0}, *changes)
	})
}

func TestFilterControlSlider(t *testing.T) {
	fc, changes := newRecordingFilter(t)

	fc.Slider.OnChanged(20)

	assert.Equal(t, []float64{20}, *changes)
	assert.Equal(t, "20", fc.entry.Text)
	assert.Equal(t, float64(20), fc.Value())
}

func TestFilterControlSetValue(t *testing.T) {
	fc, changes := newRecordingFilter(t)

	fc.SetValue(12)
	fc.SetValue(12)

	assert.Equal(t, []float64{12}, *changes, "unchanged value does not notify twice")
	assert.Equal(t, "12", fc.entry.Text)
	assert.Equal(t, float64(12), fc.Slider.Value)
}

func TestFormatThreshold(t *testing.T) {
	assert.Equal(t, "0", formatThreshold(0))
	assert.Equal(t, "12.5", formatThreshold(12.5))
	assert.Equal(t, "4700000000", formatThreshold(4_700_000_000))
	assert.Equal(t, "-5", formatThreshold(-5))
}

func TestFilterControlSetRange(t *testing.T) {
	fc, changes := newRecordingFilter(t)

	fc.SetRange(4_700_000_000)
	assert.Equal(t, float64(4_700_000_000), fc.Slider.Max)
	assert.Empty(t, *changes, "range change is not a value change")

	fc.SetValue(1_000_000_000)
	assert.Equal(t, float64(1_000_000_000), fc.Slider.Value)

	fc.SetRange(0)
	assert.Equal(t, float64(defaultSliderMax), fc.Slider.Max)
	assert.Equal(t, float64(1_000_000_000), fc.Value(), "threshold survives a smaller range")
}

func TestParseThreshold(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"0", 0, true},
		{" 42 ", 42, true},
		{"1e6", 1e6, true},
		{"-3.5", -3.5, true},
		{"", 0, true},
		{"Inf", 0, false},
		{"NaN", 0, false},
		{"12abc", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseThreshold(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}
