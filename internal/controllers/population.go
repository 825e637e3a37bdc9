package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"poblaciones/internal/logger"
	"poblaciones/internal/models"

	"fyne.io/fyne/v2"
)

// ErrNothingToExport is returned by ExportChart before the first successful load
var ErrNothingToExport = errors.New("no chart to export yet")

// CountryLoader performs one logical load of the country list
type CountryLoader interface {
	LoadCountries(ctx context.Context) ([]models.CountryRecord, error)
}

// ChartExporter writes a series as an image
type ChartExporter interface {
	RenderPNG(w io.Writer, bars []models.ContinentBar) error
}

// View is what the controller needs from the population screen
type View interface {
	SetActivateHandler(handler func())
	SetThresholdHandler(handler func(float64))
	SetLoading(loading bool)
	SetStatus(status string)
	SetThresholdRange(max float64)
	ShowLoadError(err error, onRetry func())
}

// ViewState is a snapshot of the controller's state
type ViewState struct {
	LoadState    models.LoadState
	Countries    int
	Continents   int
	Unassigned   int
	Threshold    float64
	Visible      int
	LastLoad     time.Time
	ChartVisible bool
}

// PopulationController drives the population view: load, aggregate, render, filter
type PopulationController struct {
	loader    CountryLoader
	presenter *ChartPresenter
	exporter  ChartExporter
	view      View
	logger    logger.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	state      models.LoadState
	totals     models.ContinentTotals
	countries  int
	unassigned int
	lastLoad   time.Time

	// async runs the fetch off the UI goroutine, ui hands results back to it
	async func(func())
	ui    func(func())
}

// NewPopulationController creates a controller and connects it to view
func NewPopulationController(
	loader CountryLoader,
	presenter *ChartPresenter,
	exporter ChartExporter,
	view View,
	log logger.Logger,
) *PopulationController {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	controller := &PopulationController{
		loader:    loader,
		presenter: presenter,
		exporter:  exporter,
		view:      view,
		logger:    log,
		ctx:       ctx,
		cancel:    cancel,
		async:     func(fn func()) { go fn() },
		ui:        fyne.Do,
	}

	controller.setupViewEventHandlers()
	return controller
}

func (pc *PopulationController) setupViewEventHandlers() {
	if pc.view == nil {
		return
	}

	pc.view.SetActivateHandler(pc.Activate)
	pc.view.SetThresholdHandler(pc.SetThreshold)
}

// Activate is called whenever the population view becomes visible
func (pc *PopulationController) Activate() {
	pc.logger.Debug("PopulationController", "view activated", nil)
	pc.LoadData()
}

// LoadData starts a fetch unless one is already running.
// The previous chart stays on screen until the new data arrives.
func (pc *PopulationController) LoadData() {
	pc.mu.Lock()
	if pc.state == models.LoadStateLoading {
		pc.mu.Unlock()
		pc.logger.Debug("PopulationController", "load already in progress", nil)
		return
	}
	pc.state = models.LoadStateLoading
	pc.mu.Unlock()

	pc.view.SetLoading(true)
	pc.view.SetStatus("Loading countries...")

	pc.async(func() {
		startTime := time.Now()
		records, err := pc.loader.LoadCountries(pc.ctx)
		duration := time.Since(startTime)

		pc.ui(func() {
			pc.finishLoad(records, err, duration)
		})
	})
}

func (pc *PopulationController) finishLoad(records []models.CountryRecord, err error, duration time.Duration) {
	if pc.ctx.Err() != nil {
		return
	}

	pc.view.SetLoading(false)

	if err != nil {
		pc.mu.Lock()
		pc.state = models.LoadStateFailed
		pc.mu.Unlock()

		pc.logger.Error("PopulationController", fmt.Errorf("fetching countries: %w", err), map[string]interface{}{
			"duration_ms": duration.Milliseconds(),
		})
		pc.view.SetStatus("Failed to load data")
		pc.view.ShowLoadError(err, pc.LoadData)
		return
	}

	totals := models.Aggregate(records)
	unassigned := models.CountUnassigned(records)
	if unassigned > 0 {
		pc.logger.Warning("PopulationController", "records without region ignored", map[string]interface{}{
			"count": unassigned,
		})
	}

	now := time.Now()
	pc.mu.Lock()
	pc.state = models.LoadStateLoaded
	pc.totals = totals
	pc.countries = len(records)
	pc.unassigned = unassigned
	pc.lastLoad = now
	pc.mu.Unlock()

	pc.presenter.Render(totals)
	pc.view.SetThresholdRange(float64(totals.Max()))
	pc.view.SetStatus(fmt.Sprintf("%d countries in %d continents, updated %s",
		len(records), len(totals), now.Format("15:04:05")))

	pc.logger.Info("PopulationController", "population data loaded", map[string]interface{}{
		"countries":   len(records),
		"continents":  len(totals),
		"population":  totals.Total(),
		"duration_ms": duration.Milliseconds(),
	})
}

// SetThreshold applies a new minimum population without refetching
func (pc *PopulationController) SetThreshold(threshold float64) {
	pc.presenter.SetThreshold(threshold)
}

// ExportChart writes the currently visible chart as PNG
func (pc *PopulationController) ExportChart(w io.Writer) error {
	if pc.presenter.State() == PresenterEmpty {
		return ErrNothingToExport
	}
	if err := pc.exporter.RenderPNG(w, pc.presenter.Series()); err != nil {
		return fmt.Errorf("exporting chart: %w", err)
	}
	return nil
}

// GetViewState returns a snapshot of the current state
func (pc *PopulationController) GetViewState() ViewState {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	return ViewState{
		LoadState:    pc.state,
		Countries:    pc.countries,
		Continents:   len(pc.totals),
		Unassigned:   pc.unassigned,
		Threshold:    pc.presenter.Threshold(),
		Visible:      len(pc.presenter.Series()),
		LastLoad:     pc.lastLoad,
		ChartVisible: pc.presenter.State() == PresenterRendered,
	}
}

// Shutdown stops delivering results of in-flight loads
func (pc *PopulationController) Shutdown() {
	pc.cancel()
	pc.logger.Debug("PopulationController", "controller shut down", nil)
}
