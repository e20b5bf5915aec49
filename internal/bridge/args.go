package bridge

import (
	"strconv"

	"plexport/internal/types"
)

// Subcommand tokens and flags accepted by the CLI tool
const (
	subcommandExport    = "export"
	subcommandPPTX      = "pptx"
	subcommandPlaylists = "playlists"
	subcommandStatus    = "status"

	flagJSON = "--json"
	flagHost = "--host"
	flagPort = "--port"
)

// exportArgs builds the operation arguments for an export request. A pptx
// export uses its own subcommand and never takes --json; every other format
// value, recognized or not, takes the plain export branch, with --json
// appended only for the json format.
func exportArgs(playlistUUID, format string) []string {
	if format == types.FormatPPTX {
		return []string{subcommandPPTX, playlistUUID}
	}

	args := []string{subcommandExport, playlistUUID}
	if format == types.FormatJSON {
		args = append(args, flagJSON)
	}
	return args
}

// listArgs builds the fixed operation arguments for a playlist listing
func listArgs() []string {
	return []string{subcommandPlaylists, flagJSON}
}

// statusArgs builds the fixed operation arguments for a status check
func statusArgs() []string {
	return []string{subcommandStatus}
}

// hostPortArgs builds the trailing destination arguments shared by every
// operation
func hostPortArgs(host string, port uint16) []string {
	return []string{flagHost, host, flagPort, strconv.FormatUint(uint64(port), 10)}
}
