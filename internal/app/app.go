package app

import (
	"context"

	"plexport/internal/bridge"
	"plexport/internal/config"
	"plexport/internal/infrastructure/logging"
	"plexport/internal/services"
	"plexport/internal/types"
)

// App struct represents the main application
type App struct {
	ctx      context.Context
	cfg      *config.Config
	exporter *services.ExportService
	logger   logging.Logger
}

// NewApp creates a new App application struct with dependency injection
func NewApp() (*App, error) {
	// Initialize logger first (required by all other components)
	logger := logging.NewDefaultLogger()

	// Load configuration from the environment (.env supported)
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	// Initialize the command bridge with the production executor
	cmdBridge := bridge.New(cfg, nil, logger)

	// Initialize the export service on top of the bridge
	exporter := services.NewExportService(cmdBridge, cfg, logger)

	return &App{
		cfg:      cfg,
		exporter: exporter,
		logger:   logger,
	}, nil
}

// Startup is called at application startup
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	a.logger.Info("Application started",
		"environment", a.cfg.Environment,
		"tool_command", a.cfg.ToolCommand)
}

// DomReady is called after front-end resources have been loaded
func (a *App) DomReady(ctx context.Context) {
	// Add your action here
}

// BeforeClose is called when the application is about to quit
func (a *App) BeforeClose(ctx context.Context) (prevent bool) {
	return false
}

// Shutdown is called at application termination. The Wails context is
// canceled on close, which in turn kills any tool invocation still running.
func (a *App) Shutdown(ctx context.Context) {
	a.logger.Info("Application shutdown completed")
}

// ExportPlaylist exports the given playlist through the CLI tool and returns
// the uniform response record
func (a *App) ExportPlaylist(playlistUUID, exportFormat, host string, port uint16) *types.ExportResponse {
	return a.exporter.ExportPlaylist(a.context(), playlistUUID, exportFormat, host, port)
}

// GetPlaylists returns the tool's playlist listing as a raw response
func (a *App) GetPlaylists(host string, port uint16) *types.ExportResponse {
	return a.exporter.GetPlaylists(a.context(), host, port)
}

// CheckConnection verifies the tool can reach the destination service
func (a *App) CheckConnection(host string, port uint16) *types.ExportResponse {
	return a.exporter.CheckConnection(a.context(), host, port)
}

// LoadPlaylists returns the playlist listing decoded for the frontend
func (a *App) LoadPlaylists(host string, port uint16) *types.PlaylistsResult {
	return a.exporter.LoadPlaylists(a.context(), host, port)
}

// GetConnectionDefaults returns the configured host/port defaults for the
// frontend connection form
func (a *App) GetConnectionDefaults() types.ConnectionDefaults {
	return a.exporter.ConnectionDefaults()
}

// GetLogger returns the application's structured logger
func (a *App) GetLogger() logging.Logger {
	return a.logger
}

// context returns the Wails lifecycle context once Startup has run, falling
// back to the background context before that (and in tests)
func (a *App) context() context.Context {
	if a.ctx != nil {
		return a.ctx
	}
	return context.Background()
}
