package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the outcome of the last load
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	sourceLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar(source string) *StatusBar {
	sb := &StatusBar{}
	sb.createComponents(source)
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents(source string) {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.sourceLabel = widget.NewLabel("Source: " + source)
	sb.sourceLabel.Truncation = fyne.TextTruncateEllipsis
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(nil, nil,
		sb.statusLabel,
		nil,
		sb.sourceLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// LoadingIndicator is an infinite progress bar shown while a load is in flight
type LoadingIndicator struct {
	container *fyne.Container
	bar       *widget.ProgressBarInfinite
	label     *widget.Label
	visible   bool
}

// NewLoadingIndicator creates a hidden loading indicator
func NewLoadingIndicator() *LoadingIndicator {
	li := &LoadingIndicator{
		bar:   widget.NewProgressBarInfinite(),
		label: widget.NewLabel("Loading population data..."),
	}
	li.bar.Stop()

	li.container = container.NewVBox(li.label, li.bar)
	li.container.Hide()
	return li
}

// SetVisible shows and animates the indicator, or stops and hides it
func (li *LoadingIndicator) SetVisible(visible bool) {
	li.visible = visible
	if visible {
		li.bar.Start()
		li.container.Show()
	} else {
		li.bar.Stop()
		li.container.Hide()
	}
}

// IsVisible returns true while a load is shown as in progress
func (li *LoadingIndicator) IsVisible() bool {
	return li.visible
}

// GetContainer returns the indicator container
func (li *LoadingIndicator) GetContainer() *fyne.Container {
	return li.container
}
