package views

import (
	"fmt"
	"io"

	"poblaciones/internal/logger"
	"poblaciones/internal/models"
	"poblaciones/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// MainView is the application shell: navigation sidebar plus the home and population pages
type MainView struct {
	window        fyne.Window
	logger        logger.Logger
	mainContainer *fyne.Container
	pageContainer *fyne.Container

	sidebar   *components.Sidebar
	filter    *components.FilterControl
	loading   *components.LoadingIndicator
	chartArea *components.ChartArea
	statusBar *components.StatusBar
	renderer  components.ChartImageRenderer

	homePage       fyne.CanvasObject
	populationPage fyne.CanvasObject
	currentPage    components.Page

	// Event handlers - connected to controller
	activateHandler  func()
	thresholdHandler func(float64)
}

// NewMainView builds the shell and sets it as the window content
func NewMainView(window fyne.Window, renderer components.ChartImageRenderer, source string, log logger.Logger) *MainView {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	view := &MainView{
		window:      window,
		logger:      log,
		renderer:    renderer,
		currentPage: -1,
	}

	view.initializeComponents(source)
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents(source string) {
	mv.sidebar = components.NewSidebar()
	mv.filter = components.NewFilterControl()
	mv.loading = components.NewLoadingIndicator()
	mv.chartArea = components.NewChartArea()
	mv.statusBar = components.NewStatusBar(source)
}

func (mv *MainView) buildLayout() {
	mv.homePage = container.NewCenter(container.NewVBox(
		widget.NewRichTextFromMarkdown("# Population by Continent"),
		widget.NewLabel("Open the Population page to load the latest country data."),
	))

	mv.populationPage = container.NewBorder(
		container.NewVBox(mv.filter.GetContainer(), mv.loading.GetContainer()),
		mv.statusBar.GetContainer(),
		nil,
		nil,
		mv.chartArea.GetContainer(),
	)

	mv.pageContainer = container.NewStack(mv.homePage)

	split := container.NewHSplit(mv.sidebar.GetWidget(), mv.pageContainer)
	split.SetOffset(0.18)

	mv.mainContainer = container.NewStack(split)
	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.sidebar.SetOnSelected(mv.showPage)

	mv.filter.SetOnChanged(func(value float64) {
		if mv.thresholdHandler != nil {
			mv.thresholdHandler(value)
		}
	})
}

func (mv *MainView) showPage(page components.Page) {
	if page == mv.currentPage {
		return
	}
	mv.currentPage = page

	switch page {
	case components.PagePopulation:
		mv.pageContainer.Objects = []fyne.CanvasObject{mv.populationPage}
	default:
		mv.pageContainer.Objects = []fyne.CanvasObject{mv.homePage}
	}
	mv.pageContainer.Refresh()

	mv.logger.Debug("MainView", "page shown", map[string]interface{}{"page": page.Title()})

	if page == components.PagePopulation && mv.activateHandler != nil {
		mv.activateHandler()
	}
}

// ShowPopulation navigates to the population page, activating it
func (mv *MainView) ShowPopulation() {
	mv.sidebar.Select(components.PagePopulation)
}

// Event handler setters - called by controller

// SetActivateHandler sets the handler run whenever the population page is shown
func (mv *MainView) SetActivateHandler(handler func()) {
	mv.activateHandler = handler
}

// SetThresholdHandler sets the handler for filter changes
func (mv *MainView) SetThresholdHandler(handler func(float64)) {
	mv.thresholdHandler = handler
}

// UI update methods - called by controller on the UI goroutine

// SetLoading toggles the loading indicator
func (mv *MainView) SetLoading(loading bool) {
	mv.loading.SetVisible(loading)
}

// SetStatus updates the status bar message
func (mv *MainView) SetStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// SetThresholdRange adapts the slider to the loaded data
func (mv *MainView) SetThresholdRange(max float64) {
	mv.filter.SetRange(max)
}

// ShowLoadError shows the failure dialog with a retry action
func (mv *MainView) ShowLoadError(err error, onRetry func()) {
	components.NewErrorDialog(err, onRetry, mv.window).Show()
}

// NewChart builds a chart instance bound to the population page's chart area
func (mv *MainView) NewChart(bars []models.ContinentBar) (*components.BarChart, error) {
	return components.NewBarChart(mv.chartArea, mv.renderer, bars, func(err error) {
		mv.logger.Error("MainView", fmt.Errorf("rendering chart: %w", err), nil)
		mv.statusBar.SetStatus("Chart could not be drawn")
	})
}

// ShowExportDialog asks for a destination and hands the writer to export
func (mv *MainView) ShowExportDialog(export func(io.Writer) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mv.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if err := export(writer); err != nil {
			mv.logger.Error("MainView", err, map[string]interface{}{"uri": writer.URI().String()})
			dialog.ShowError(err, mv.window)
			return
		}
		mv.statusBar.SetStatus("Chart exported to " + writer.URI().Name())
	}, mv.window)
	d.SetFileName("population_by_continent.png")
	d.Show()
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowAboutDialog displays application information
func (mv *MainView) ShowAboutDialog(appName, version, description string) {
	content := container.NewVBox(
		widget.NewLabel(appName),
		widget.NewLabel(fmt.Sprintf("Version: %s", version)),
		widget.NewLabel(""),
		widget.NewLabel(description),
	)

	dialog.ShowCustom("About", "Close", content, mv.window)
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// GetStatus returns the status bar text
func (mv *MainView) GetStatus() string {
	return mv.statusBar.GetStatus()
}

// IsLoading reports whether the loading indicator is shown
func (mv *MainView) IsLoading() bool {
	return mv.loading.IsVisible()
}

// CurrentPage returns the page on screen
func (mv *MainView) CurrentPage() components.Page {
	return mv.currentPage
}

// Show displays the window
func (mv *MainView) Show() {
	mv.window.Show()
}
