package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"poblaciones/internal/config"
	"poblaciones/internal/controllers"
	"poblaciones/internal/logger"
	"poblaciones/internal/models"
	"poblaciones/internal/services"
	"poblaciones/internal/shutdown"
	"poblaciones/internal/views"
	"poblaciones/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName        = "Population by Continent"
	AppID          = "com.poblaciones.continents"
	AppVersion     = "1.0.0"
	AppDescription = "World population grouped by continent, from the REST Countries public API."
)

// Application holds the wired MVC components and their lifecycle
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	config  config.Config
	logger  logger.Logger

	controller *controllers.PopulationController
	presenter  *controllers.ChartPresenter
	view       *views.MainView

	countryService *services.CountryService
	renderer       *services.ChartRenderer

	shutdown *shutdown.Manager
}

func main() {
	cfg, err := config.Load(os.Getenv("POBLACIONES_CONFIG"))
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application := NewApplication(cfg)
	application.Run()
}

// NewApplication creates and wires every component
func NewApplication(cfg config.Config) *Application {
	appLogger := logger.New(cfg.LogLevel, cfg.JSONLogs)

	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":     AppVersion,
		"endpoint":    cfg.Endpoint,
		"max_retries": cfg.MaxRetries,
		"go_version":  runtime.Version(),
		"log_level":   cfg.LogLevel,
	})

	source := services.NewHTTPCountrySource(cfg.Endpoint, cfg.RequestTimeout)
	countryService := services.NewCountryService(source, cfg.MaxRetries, appLogger)
	renderer := services.NewChartRenderer(components.ChartAreaWidth, components.ChartAreaHeight)

	mainView := views.NewMainView(window, renderer, cfg.Endpoint, appLogger)

	presenter := controllers.NewChartPresenter(func(bars []models.ContinentBar) controllers.ChartInstance {
		chart, err := mainView.NewChart(bars)
		if err != nil {
			appLogger.Error("Application", fmt.Errorf("creating chart: %w", err), nil)
			return nil
		}
		return chart
	}, appLogger)

	controller := controllers.NewPopulationController(countryService, presenter, renderer, mainView, appLogger)

	application := &Application{
		fyneApp:        fyneApp,
		window:         window,
		config:         cfg,
		logger:         appLogger,
		controller:     controller,
		presenter:      presenter,
		view:           mainView,
		countryService: countryService,
		renderer:       renderer,
		shutdown:       shutdown.NewManager(appLogger),
	}

	application.shutdown.Register("controller", controller)
	application.shutdown.Register("load statistics", shutdown.Func(application.logLoadStats))

	application.setupMenus()
	application.setupWindowEvents()

	return application
}

// Run shows the window and blocks until the application quits
func (a *Application) Run() {
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.view.ShowPopulation()
	a.window.ShowAndRun()

	a.shutdown.Shutdown()
}

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Refresh", a.controller.LoadData),
		fyne.NewMenuItem("Export Chart...", func() {
			a.view.ShowExportDialog(a.controller.ExportChart)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", a.quit),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.view.ShowAboutDialog(AppName, AppVersion, AppDescription)
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.quit()
	})
}

func (a *Application) quit() {
	a.shutdown.Shutdown()
	a.fyneApp.Quit()
}

func (a *Application) logLoadStats() {
	stats := a.countryService.GetLoadStats()

	a.logger.Info("Application", "session summary", map[string]interface{}{
		"loads":          stats.Calls,
		"failed_loads":   stats.Failures,
		"attempts":       stats.Attempts,
		"last_load_time": stats.LastDuration.String(),
	})
}
