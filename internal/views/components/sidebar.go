package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Page identifies a navigation target
type Page int

const (
	PageHome Page = iota
	PagePopulation
)

var pages = []struct {
	title string
	icon  fyne.Resource
}{
	PageHome:       {"Home", theme.HomeIcon()},
	PagePopulation: {"Population", theme.ListIcon()},
}

// Sidebar is the navigation list on the left of the window
type Sidebar struct {
	list       *widget.List
	onSelected func(Page)
}

// NewSidebar creates the navigation list
func NewSidebar() *Sidebar {
	s := &Sidebar{}
	s.list = widget.NewList(
		func() int { return len(pages) },
		func() fyne.CanvasObject {
			return container.NewHBox(widget.NewIcon(theme.HomeIcon()), widget.NewLabel("Population"))
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			row := item.(*fyne.Container)
			row.Objects[0].(*widget.Icon).SetResource(pages[id].icon)
			row.Objects[1].(*widget.Label).SetText(pages[id].title)
		},
	)
	s.list.OnSelected = func(id widget.ListItemID) {
		if s.onSelected != nil {
			s.onSelected(Page(id))
		}
	}
	return s
}

// SetOnSelected registers the navigation handler
func (s *Sidebar) SetOnSelected(handler func(Page)) {
	s.onSelected = handler
}

// Select navigates to page
func (s *Sidebar) Select(page Page) {
	s.list.Select(widget.ListItemID(page))
}

// GetWidget returns the list widget
func (s *Sidebar) GetWidget() fyne.CanvasObject {
	return s.list
}

// Title returns the display name of page
func (p Page) Title() string {
	if int(p) < 0 || int(p) >= len(pages) {
		return ""
	}
	return pages[p].title
}
