package bridge

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plexport/internal/config"
	"plexport/internal/types"
)

// fakeExecutor records every spec it receives and replies with a canned
// outcome, an error, or a custom function
type fakeExecutor struct {
	mu      sync.Mutex
	specs   []CommandSpec
	outcome *CommandOutcome
	err     error
	fn      func(ctx context.Context, spec CommandSpec) (*CommandOutcome, error)
}

func (f *fakeExecutor) Run(ctx context.Context, spec CommandSpec) (*CommandOutcome, error) {
	f.mu.Lock()
	f.specs = append(f.specs, spec)
	f.mu.Unlock()

	if f.fn != nil {
		return f.fn(ctx, spec)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.outcome, nil
}

func (f *fakeExecutor) lastSpec(t *testing.T) CommandSpec {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.specs, "executor was never invoked")
	return f.specs[len(f.specs)-1]
}

func testConfig() *config.Config {
	cfg := config.TestConfig()
	cfg.ToolCommand = "npm"
	cfg.ToolArgs = []string{"run", "dev", "--"}
	return cfg
}

func TestBridgeExportArgumentVector(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   []string
	}{
		{
			name:   "pptx",
			format: "pptx",
			want:   []string{"run", "dev", "--", "pptx", "uuid-1", "--host", "localhost", "--port", "3000"},
		},
		{
			name:   "json",
			format: "json",
			want:   []string{"run", "dev", "--", "export", "uuid-1", "--json", "--host", "localhost", "--port", "3000"},
		},
		{
			name:   "default",
			format: "",
			want:   []string{"run", "dev", "--", "export", "uuid-1", "--host", "localhost", "--port", "3000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := &fakeExecutor{outcome: &CommandOutcome{}}
			b := New(testConfig(), executor, nil)

			b.Export(context.Background(), "uuid-1", tt.format, "localhost", 3000)

			spec := executor.lastSpec(t)
			assert.Equal(t, "npm", spec.Program)
			assert.Equal(t, tt.want, spec.Args)
		})
	}
}

func TestBridgeListArgumentVectorIsFixed(t *testing.T) {
	executor := &fakeExecutor{outcome: &CommandOutcome{}}
	b := New(testConfig(), executor, nil)

	b.List(context.Background(), "media.local", 8080)

	spec := executor.lastSpec(t)
	assert.Equal(t, []string{"run", "dev", "--", "playlists", "--json", "--host", "media.local", "--port", "8080"}, spec.Args)
}

func TestBridgeStatusArgumentVectorIsFixed(t *testing.T) {
	executor := &fakeExecutor{outcome: &CommandOutcome{}}
	b := New(testConfig(), executor, nil)

	b.Status(context.Background(), "media.local", 8080)

	spec := executor.lastSpec(t)
	assert.Equal(t, []string{"run", "dev", "--", "status", "--host", "media.local", "--port", "8080"}, spec.Args)
}

func TestBridgeSuccessUsesStdout(t *testing.T) {
	executor := &fakeExecutor{outcome: &CommandOutcome{ExitCode: 0, Stdout: "OK\n", Stderr: ""}}
	b := New(testConfig(), executor, nil)

	resp := b.Status(context.Background(), "localhost", 3000)

	assert.Equal(t, &types.ExportResponse{Success: true, Message: "OK\n", FilePath: nil}, resp)
}

func TestBridgeToolFailureUsesStderr(t *testing.T) {
	executor := &fakeExecutor{outcome: &CommandOutcome{ExitCode: 1, Stdout: "", Stderr: "not found\n"}}
	b := New(testConfig(), executor, nil)

	resp := b.Export(context.Background(), "uuid-1", "", "localhost", 3000)

	assert.Equal(t, &types.ExportResponse{Success: false, Message: "not found\n", FilePath: nil}, resp)
}

func TestBridgeAnyNonZeroExitIsFailure(t *testing.T) {
	for _, code := range []int{1, 2, 127, 255} {
		executor := &fakeExecutor{outcome: &CommandOutcome{ExitCode: code, Stderr: "boom"}}
		b := New(testConfig(), executor, nil)

		resp := b.List(context.Background(), "localhost", 3000)

		assert.False(t, resp.Success, "exit code %d", code)
		assert.Equal(t, "boom", resp.Message)
	}
}

func TestBridgeLaunchErrorSynthesizesDiagnostic(t *testing.T) {
	launchErr := errors.New(`exec: "npm": executable file not found in $PATH`)

	tests := []struct {
		name       string
		invoke     func(b *Bridge) *types.ExportResponse
		diagnostic string
	}{
		{
			name: "export",
			invoke: func(b *Bridge) *types.ExportResponse {
				return b.Export(context.Background(), "uuid-1", "", "localhost", 3000)
			},
			diagnostic: "Failed to run export",
		},
		{
			name: "list",
			invoke: func(b *Bridge) *types.ExportResponse {
				return b.List(context.Background(), "localhost", 3000)
			},
			diagnostic: "Failed to get playlists",
		},
		{
			name: "status",
			invoke: func(b *Bridge) *types.ExportResponse {
				return b.Status(context.Background(), "localhost", 3000)
			},
			diagnostic: "Connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := &fakeExecutor{err: launchErr}
			b := New(testConfig(), executor, nil)

			resp := tt.invoke(b)

			assert.False(t, resp.Success)
			assert.Contains(t, resp.Message, tt.diagnostic)
			assert.Contains(t, resp.Message, "executable file not found")
			assert.Nil(t, resp.FilePath)
		})
	}
}

func TestBridgeFilePathNeverPopulated(t *testing.T) {
	outcomes := []*fakeExecutor{
		{outcome: &CommandOutcome{ExitCode: 0, Stdout: "done"}},
		{outcome: &CommandOutcome{ExitCode: 1, Stderr: "failed"}},
		{err: errors.New("launch failed")},
	}

	for i, executor := range outcomes {
		b := New(testConfig(), executor, nil)
		for _, resp := range []*types.ExportResponse{
			b.Export(context.Background(), "uuid-1", "pptx", "localhost", 3000),
			b.List(context.Background(), "localhost", 3000),
			b.Status(context.Background(), "localhost", 3000),
		} {
			assert.Nil(t, resp.FilePath, "outcome %d", i)
		}
	}
}

func TestBridgeTimeoutProducesFailedResponse(t *testing.T) {
	cfg := testConfig()
	cfg.CommandTimeout = 20 * time.Millisecond

	executor := &fakeExecutor{
		fn: func(ctx context.Context, spec CommandSpec) (*CommandOutcome, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	b := New(cfg, executor, nil)

	resp := b.Status(context.Background(), "localhost", 3000)

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "timed out after 20ms")
}

func TestBridgeCallerCancellationStopsInvocation(t *testing.T) {
	cfg := testConfig()
	cfg.CommandTimeout = 0 // unbounded; only the caller context applies

	executor := &fakeExecutor{
		fn: func(ctx context.Context, spec CommandSpec) (*CommandOutcome, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	b := New(cfg, executor, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	resp := b.Export(ctx, "uuid-1", "", "localhost", 3000)

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "context canceled")
}

func TestBridgeConcurrentInvocationsAreIsolated(t *testing.T) {
	executor := &fakeExecutor{
		fn: func(ctx context.Context, spec CommandSpec) (*CommandOutcome, error) {
			// Echo the target back so each response is distinguishable.
			return &CommandOutcome{Stdout: spec.Args[len(spec.Args)-3]}, nil
		},
	}
	b := New(testConfig(), executor, nil)

	const workers = 16
	var wg sync.WaitGroup
	responses := make([]*types.ExportResponse, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			responses[i] = b.Status(context.Background(), fmt.Sprintf("host-%d", i), uint16(1000+i))
		}(i)
	}
	wg.Wait()

	for i, resp := range responses {
		require.NotNil(t, resp, "worker %d", i)
		assert.True(t, resp.Success)
		assert.Equal(t, fmt.Sprintf("host-%d", i), resp.Message)
	}
}

func TestBridgeNilContextDefaultsToBackground(t *testing.T) {
	executor := &fakeExecutor{outcome: &CommandOutcome{Stdout: "ok"}}
	b := New(testConfig(), executor, nil)

	resp := b.Status(nil, "localhost", 3000) //nolint:staticcheck

	assert.True(t, resp.Success)
}

func TestBridgeEmptyLauncherPrefix(t *testing.T) {
	cfg := testConfig()
	cfg.ToolCommand = "playlist-tool"
	cfg.ToolArgs = nil

	executor := &fakeExecutor{outcome: &CommandOutcome{}}
	b := New(cfg, executor, nil)

	b.Status(context.Background(), "localhost", 3000)

	spec := executor.lastSpec(t)
	assert.Equal(t, "playlist-tool", spec.Program)
	assert.Equal(t, []string{"status", "--host", "localhost", "--port", "3000"}, spec.Args)
}
