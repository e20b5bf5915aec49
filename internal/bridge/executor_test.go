package bridge

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helperProcess returns a command spec that re-runs this test binary as a
// child process, dispatching to TestHelperProcess below. The pattern comes
// from the os/exec test suite and keeps these tests independent of whatever
// binaries the host happens to have.
func helperProcess(args ...string) CommandSpec {
	return CommandSpec{
		Program: os.Args[0],
		Args:    append([]string{"-test.run=TestHelperProcess", "--"}, args...),
		Env:     []string{"GO_WANT_HELPER_PROCESS=1"},
	}
}

// TestHelperProcess is not a real test; it is the child-process body used by
// the executor tests. Invocation: -- <exit code> <stdout> <stderr> [sleep ms]
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "helper: missing arguments")
		os.Exit(2)
	}

	exitCode, _ := strconv.Atoi(args[0])
	if len(args) > 3 {
		sleepMs, _ := strconv.Atoi(args[3])
		time.Sleep(time.Duration(sleepMs) * time.Millisecond)
	}

	fmt.Fprint(os.Stdout, args[1])
	fmt.Fprint(os.Stderr, args[2])
	os.Exit(exitCode)
}

func TestExecExecutorSuccess(t *testing.T) {
	executor := NewExecExecutor()

	outcome, err := executor.Run(context.Background(), helperProcess("0", "OK\n", ""))

	require.NoError(t, err)
	assert.Equal(t, 0, outcome.ExitCode)
	assert.Equal(t, "OK\n", outcome.Stdout)
	assert.Equal(t, "", outcome.Stderr)
}

func TestExecExecutorNonZeroExitIsNotAnError(t *testing.T) {
	executor := NewExecExecutor()

	outcome, err := executor.Run(context.Background(), helperProcess("1", "", "not found\n"))

	require.NoError(t, err)
	assert.Equal(t, 1, outcome.ExitCode)
	assert.Equal(t, "", outcome.Stdout)
	assert.Equal(t, "not found\n", outcome.Stderr)
}

func TestExecExecutorLaunchFailure(t *testing.T) {
	executor := NewExecExecutor()

	outcome, err := executor.Run(context.Background(), CommandSpec{
		Program: "plexport-test-binary-that-does-not-exist",
		Args:    []string{"status"},
	})

	require.Error(t, err)
	assert.Nil(t, outcome)
	assert.NotEmpty(t, err.Error())
}

func TestExecExecutorTimeout(t *testing.T) {
	executor := NewExecExecutor()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	outcome, err := executor.Run(ctx, helperProcess("0", "late", "", "5000"))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, outcome)
}

func TestExecExecutorNilContext(t *testing.T) {
	executor := NewExecExecutor()

	outcome, err := executor.Run(nil, helperProcess("0", "ok", "")) //nolint:staticcheck

	require.NoError(t, err)
	assert.Equal(t, "ok", outcome.Stdout)
}

func TestDecodeLossy(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"valid utf8", []byte("hello\n"), "hello\n"},
		{"empty", nil, ""},
		{"invalid sequence replaced", []byte{'o', 'k', 0xff, 0xfe, '!'}, "ok�!"},
		{"lone continuation byte", []byte{0x80}, "�"},
		{"valid multibyte preserved", []byte("naïve ✓"), "naïve ✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeLossy(tt.input))
		})
	}
}
