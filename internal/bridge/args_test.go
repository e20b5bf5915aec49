package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportArgs(t *testing.T) {
	tests := []struct {
		name   string
		uuid   string
		format string
		want   []string
	}{
		{
			name:   "pptx format uses its own subcommand",
			uuid:   "abc-123",
			format: "pptx",
			want:   []string{"pptx", "abc-123"},
		},
		{
			name:   "json format appends the json flag",
			uuid:   "abc-123",
			format: "json",
			want:   []string{"export", "abc-123", "--json"},
		},
		{
			name:   "empty format takes the default branch",
			uuid:   "abc-123",
			format: "",
			want:   []string{"export", "abc-123"},
		},
		{
			name:   "unrecognized format behaves like default",
			uuid:   "abc-123",
			format: "csv",
			want:   []string{"export", "abc-123"},
		},
		{
			name:   "empty uuid is passed through unvalidated",
			uuid:   "",
			format: "json",
			want:   []string{"export", "", "--json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exportArgs(tt.uuid, tt.format))
		})
	}
}

func TestExportArgsPPTXNeverAppendsJSONFlag(t *testing.T) {
	args := exportArgs("uuid-1", "pptx")
	assert.NotContains(t, args, "--json")
}

func TestExportArgsUnknownFormatMatchesJSONMinusFlag(t *testing.T) {
	// Any format other than pptx/json must produce the json vector minus the
	// trailing --json flag.
	jsonArgs := exportArgs("uuid-1", "json")
	for _, format := range []string{"", "default", "csv", "PPTX", "yaml"} {
		assert.Equal(t, jsonArgs[:len(jsonArgs)-1], exportArgs("uuid-1", format),
			"format %q", format)
	}
}

func TestListArgs(t *testing.T) {
	assert.Equal(t, []string{"playlists", "--json"}, listArgs())
}

func TestStatusArgs(t *testing.T) {
	assert.Equal(t, []string{"status"}, statusArgs())
}

func TestHostPortArgs(t *testing.T) {
	assert.Equal(t, []string{"--host", "localhost", "--port", "3000"}, hostPortArgs("localhost", 3000))
	assert.Equal(t, []string{"--host", "10.0.0.2", "--port", "65535"}, hostPortArgs("10.0.0.2", 65535))
	assert.Equal(t, []string{"--host", "", "--port", "0"}, hostPortArgs("", 0))
}
