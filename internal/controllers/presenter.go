package controllers

import (
	"poblaciones/internal/logger"
	"poblaciones/internal/models"
)

// PresenterState is the lifecycle of the single chart instance
type PresenterState int

const (
	PresenterEmpty PresenterState = iota
	PresenterRendered
)

func (s PresenterState) String() string {
	if s == PresenterRendered {
		return "rendered"
	}
	return "empty"
}

// ChartInstance is a live chart bound to the view's render target
type ChartInstance interface {
	// Update replaces the visible series in place
	Update(bars []models.ContinentBar)
	// Dispose releases the render target
	Dispose()
}

// ChartFactory constructs a chart instance showing bars
type ChartFactory func(bars []models.ContinentBar) ChartInstance

// ChartPresenter owns at most one chart instance and rebuilds it from continent totals and a threshold
type ChartPresenter struct {
	factory   ChartFactory
	logger    logger.Logger
	instance  ChartInstance
	totals    models.ContinentTotals
	threshold float64
	series    []models.ContinentBar
}

// NewChartPresenter creates an empty presenter with threshold 0
func NewChartPresenter(factory ChartFactory, log logger.Logger) *ChartPresenter {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &ChartPresenter{factory: factory, logger: log}
}

// Render shows a new data set. An existing instance is disposed before the replacement is built.
func (cp *ChartPresenter) Render(totals models.ContinentTotals) {
	cp.totals = totals
	cp.series = totals.Filter(cp.threshold)

	if cp.instance != nil {
		cp.instance.Dispose()
		cp.instance = nil
	}
	cp.instance = cp.factory(cp.series)

	cp.logger.Debug("ChartPresenter", "chart rebuilt", map[string]interface{}{
		"continents": len(totals),
		"visible":    len(cp.series),
		"threshold":  cp.threshold,
	})
}

// SetThreshold changes the minimum population and refreshes the live instance in place
func (cp *ChartPresenter) SetThreshold(threshold float64) {
	cp.threshold = threshold
	if cp.instance == nil {
		return
	}

	cp.series = cp.totals.Filter(threshold)
	cp.instance.Update(cp.series)
}

// Threshold returns the current minimum population
func (cp *ChartPresenter) Threshold() float64 {
	return cp.threshold
}

// Series returns the visible (label, value) pairs
func (cp *ChartPresenter) Series() []models.ContinentBar {
	return cp.series
}

// State reports whether a chart instance is live
func (cp *ChartPresenter) State() PresenterState {
	if cp.instance == nil {
		return PresenterEmpty
	}
	return PresenterRendered
}
