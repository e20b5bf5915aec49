package services

import (
	"context"
	"encoding/json"

	"plexport/internal/config"
	"plexport/internal/infrastructure/logging"
	"plexport/internal/types"
)

// Invoker is the command bridge surface the service depends on
type Invoker interface {
	Export(ctx context.Context, playlistUUID, format, host string, port uint16) *types.ExportResponse
	List(ctx context.Context, host string, port uint16) *types.ExportResponse
	Status(ctx context.Context, host string, port uint16) *types.ExportResponse
}

// ExportService sits between the GUI shell and the command bridge. It fills
// in configured connection defaults, normalizes the caller-supplied format
// string, and offers a parsed playlist listing for the frontend. The bridge
// underneath stays payload-agnostic.
type ExportService struct {
	bridge Invoker
	cfg    *config.Config
	logger logging.Logger
}

// NewExportService creates a new export service with its dependencies
func NewExportService(bridge Invoker, cfg *config.Config, logger logging.Logger) *ExportService {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &ExportService{
		bridge: bridge,
		cfg:    cfg,
		logger: logger,
	}
}

// ExportPlaylist exports one playlist in the requested format
func (s *ExportService) ExportPlaylist(ctx context.Context, playlistUUID, format, host string, port uint16) *types.ExportResponse {
	host, port = s.fillDefaults(host, port)
	return s.bridge.Export(ctx, playlistUUID, s.normalizeFormat(format), host, port)
}

// GetPlaylists returns the tool's raw playlist listing response
func (s *ExportService) GetPlaylists(ctx context.Context, host string, port uint16) *types.ExportResponse {
	host, port = s.fillDefaults(host, port)
	return s.bridge.List(ctx, host, port)
}

// CheckConnection runs the tool's status check against the destination
func (s *ExportService) CheckConnection(ctx context.Context, host string, port uint16) *types.ExportResponse {
	host, port = s.fillDefaults(host, port)
	return s.bridge.Status(ctx, host, port)
}

// LoadPlaylists runs the listing operation and decodes its JSON payload into
// typed playlists. The raw response is always returned; a payload that fails
// to decode is reported via ParseError rather than an error, since the tool
// already reported success.
func (s *ExportService) LoadPlaylists(ctx context.Context, host string, port uint16) *types.PlaylistsResult {
	resp := s.GetPlaylists(ctx, host, port)
	result := &types.PlaylistsResult{Response: resp}

	if !resp.Success {
		return result
	}

	var playlists []types.Playlist
	if err := json.Unmarshal([]byte(resp.Message), &playlists); err != nil {
		s.logger.Warn("Playlist listing payload is not valid JSON",
			"error", err.Error(),
			"payload_bytes", len(resp.Message))
		result.ParseError = err.Error()
		return result
	}

	result.Playlists = playlists
	return result
}

// ConnectionDefaults returns the configured host/port defaults for the
// frontend connection form
func (s *ExportService) ConnectionDefaults() types.ConnectionDefaults {
	return types.ConnectionDefaults{
		Host: s.cfg.DefaultHost,
		Port: s.cfg.DefaultPort,
	}
}

// fillDefaults substitutes configured defaults for an empty host or zero port
func (s *ExportService) fillDefaults(host string, port uint16) (string, uint16) {
	if host == "" {
		host = s.cfg.DefaultHost
	}
	if port == 0 {
		port = s.cfg.DefaultPort
	}
	return host, port
}

// normalizeFormat maps the "default" alias to the empty format. Unrecognized
// values are passed through unchanged so they take the tool's default export
// branch, but the condition is logged so it stays observable.
func (s *ExportService) normalizeFormat(format string) string {
	switch format {
	case types.FormatDefault, "default":
		return types.FormatDefault
	case types.FormatPPTX, types.FormatJSON:
		return format
	default:
		s.logger.Warn("Unrecognized export format, using default branch", "format", format)
		return format
	}
}
