package components

import (
	"math"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const defaultSliderMax = 100

// FilterControl edits the minimum population through a numeric entry and a slider kept in sync.
// Every change invokes the change handler synchronously.
type FilterControl struct {
	container *fyne.Container
	entry     *widget.Entry
	Slider    *widget.Slider

	value     float64
	syncing   bool
	onChanged func(float64)
}

// NewFilterControl creates a filter at 0
func NewFilterControl() *FilterControl {
	fc := &FilterControl{}
	fc.createComponents()
	fc.buildLayout()
	fc.setupEventHandlers()
	return fc
}

func (fc *FilterControl) createComponents() {
	fc.entry = widget.NewEntry()
	fc.entry.SetPlaceHolder("Minimum population")
	fc.entry.SetText(formatThreshold(0))

	fc.Slider = widget.NewSlider(0, defaultSliderMax)
	fc.Slider.Step = 1
}

func (fc *FilterControl) buildLayout() {
	entryBox := container.NewGridWrap(fyne.NewSize(180, fc.entry.MinSize().Height), fc.entry)
	fc.container = container.NewBorder(nil, nil,
		container.NewHBox(widget.NewLabel("Minimum population"), entryBox),
		nil,
		fc.Slider,
	)
}

func (fc *FilterControl) setupEventHandlers() {
	fc.entry.OnChanged = func(text string) {
		value, ok := parseThreshold(text)
		if !ok {
			return
		}
		fc.apply(value, fc.entry)
	}

	fc.Slider.OnChanged = func(value float64) {
		fc.apply(value, fc.Slider)
	}
}

// apply stores value, mirrors it into the widget that did not originate it and notifies
func (fc *FilterControl) apply(value float64, origin fyne.CanvasObject) {
	if fc.syncing {
		return
	}

	changed := value != fc.value
	fc.value = value

	fc.syncing = true
	if origin != fc.entry {
		fc.entry.SetText(formatThreshold(value))
	}
	if origin != fc.Slider {
		fc.Slider.SetValue(math.Max(fc.Slider.Min, math.Min(value, fc.Slider.Max)))
	}
	fc.syncing = false

	if changed && fc.onChanged != nil {
		fc.onChanged(value)
	}
}

// SetOnChanged registers the handler invoked on every value change
func (fc *FilterControl) SetOnChanged(handler func(float64)) {
	fc.onChanged = handler
}

// SetValue changes the threshold programmatically
func (fc *FilterControl) SetValue(value float64) {
	fc.apply(value, nil)
}

// Value returns the current threshold
func (fc *FilterControl) Value() float64 {
	return fc.value
}

// SetRange sets the slider maximum, typically to the largest continent total
func (fc *FilterControl) SetRange(max float64) {
	if max <= 0 {
		max = defaultSliderMax
	}

	fc.syncing = true
	fc.Slider.Max = max
	fc.Slider.SetValue(math.Max(0, math.Min(fc.value, max)))
	fc.Slider.Refresh()
	fc.syncing = false
}

// GetContainer returns the filter row
func (fc *FilterControl) GetContainer() *fyne.Container {
	return fc.container
}

// parseThreshold accepts any finite number. An empty entry means 0.
func parseThreshold(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, true
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false
	}
	return value, true
}

func formatThreshold(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
