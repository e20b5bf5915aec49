package types

// Export format values understood by the CLI tool. Anything else falls back to
// the plain export branch without being rejected.
const (
	FormatDefault = ""
	FormatPPTX    = "pptx"
	FormatJSON    = "json"
)

// ExportResponse is the uniform result record returned to the frontend for
// every bridge operation, regardless of outcome.
type ExportResponse struct {
	Success  bool    `json:"success"`
	Message  string  `json:"message"`
	FilePath *string `json:"filePath"`
}

// Playlist is one entry of the tool's JSON playlist listing. Unknown fields in
// the payload are ignored.
type Playlist struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Tracks int    `json:"tracks"`
}

// PlaylistsResult carries the parsed playlist listing alongside the raw
// response so the frontend can still show the tool's own output on failure.
type PlaylistsResult struct {
	Response   *ExportResponse `json:"response"`
	Playlists  []Playlist      `json:"playlists"`
	ParseError string          `json:"parseError,omitempty"`
}

// ConnectionDefaults are the host/port values the frontend prefills its
// connection form with.
type ConnectionDefaults struct {
	Host string `json:"host"`
	Port uint16 `json:"port"`
}
