// Package cli_test tests event argument validation, usage output, and exit codes.
// Related: internal/cli/root.go
// Tags: cli, args, usage, exit-codes
package cli

import (
	"bytes"
	"context"
	"log"
	"sync"
	"testing"

	"github.com/ariel-frischer/cc-notify/internal/notify"
	"github.com/ariel-frischer/cc-notify/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDispatcher records dispatched events
type recordingDispatcher struct {
	mu     sync.Mutex
	events []notify.Event
}

func (d *recordingDispatcher) Dispatch(_ context.Context, event notify.Event) notify.Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return notify.Result{Event: event, Sound: notify.OutcomeFailed, Remote: notify.OutcomeFailed}
}

// runCLI executes the root command with args and returns exit code, stderr and dispatched events
func runCLI(t *testing.T, args []string) (int, string, []notify.Event) {
	t.Helper()

	rec := &recordingDispatcher{}
	built := 0
	cmd := NewRootCmd(func(*log.Logger) Dispatcher {
		built++
		return rec
	})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := execute(cmd, args)
	if len(rec.events) == 0 {
		assert.Equal(t, 0, built, "dispatcher must not be built for rejected invocations")
	}
	return ExitCode(err), stderr.String(), rec.events
}

func TestRootCmd_ValidEvents(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		args []string
		want notify.Event
	}{
		"input":    {args: []string{"input"}, want: notify.EventInput},
		"complete": {args: []string{"complete"}, want: notify.EventComplete},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			code, stderr, events := runCLI(t, tt.args)

			assert.Equal(t, ExitSuccess, code)
			assert.Empty(t, stderr)
			assert.Equal(t, []notify.Event{tt.want}, events)
		})
	}
}

func TestRootCmd_UsageErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		args       []string
		wantReason string
	}{
		"no arguments":       {args: []string{}, wantReason: "expected 1 argument, got 0"},
		"nil arguments":      {args: nil, wantReason: "expected 1 argument, got 0"},
		"too many arguments": {args: []string{"input", "extra"}, wantReason: "expected 1 argument, got 2"},
		"unknown event":      {args: []string{"bogus"}, wantReason: `unknown event: "bogus"`},
		"wrong case":         {args: []string{"INPUT"}, wantReason: "unknown event"},
		"help flag":          {args: []string{"-h"}, wantReason: "unknown event"},
		"long help flag":     {args: []string{"--help"}, wantReason: "unknown event"},
		"completion request": {args: []string{"__complete", ""}, wantReason: "expected 1 argument, got 2"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			code, stderr, events := runCLI(t, tt.args)

			assert.Equal(t, ExitInvalidArguments, code)
			assert.NotEqual(t, ExitSuccess, code)
			assert.Empty(t, events)
			assert.Contains(t, stderr, tt.wantReason)
			assert.Contains(t, stderr, "Usage:")
			assert.Contains(t, stderr, "{input|complete}")
		})
	}
}

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf, "cc-notify", nil)

	out := buf.String()
	assert.Contains(t, out, "cc-notify {input|complete}")
	assert.Contains(t, out, "  input    - Play sound when Claude needs user input")
	assert.Contains(t, out, "  complete - Play sound when Claude completes tasks")
}

func TestValidateEventArgs(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd(nil)
	assert.NoError(t, validateEventArgs(cmd, []string{"input"}))
	assert.NoError(t, validateEventArgs(cmd, []string{"complete"}))

	err := validateEventArgs(cmd, []string{"bogus"})
	require.Error(t, err)
	var uerr *usageError
	assert.ErrorAs(t, err, &uerr)
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitInvalidArguments, ExitCode(NewExitError(ExitInvalidArguments)))
	assert.Equal(t, 7, ExitCode(NewExitError(7)))
	assert.Equal(t, "exit code 7", NewExitError(7).Error())
}

func TestDefaultDispatcher(t *testing.T) {
	// No t.Parallel() - modifies environment
	testutil.ClearNotifyEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:ABC")
	t.Setenv("TELEGRAM_CHAT_ID", "999")
	t.Setenv("CC_NOTIFY_SOUNDS_DIR", "/opt/hooks/sounds")

	var logs bytes.Buffer
	d, ok := defaultDispatcher(log.New(&logs, "", 0)).(*notify.Dispatcher)
	require.True(t, ok)

	cfg := d.Config()
	assert.True(t, cfg.Telegram.Active())
	assert.Equal(t, "/opt/hooks/sounds/complete.ogg", cfg.SoundFor(notify.EventComplete))
	assert.Equal(t, "/opt/hooks/sounds/input-needed.ogg", cfg.SoundFor(notify.EventInput))
}

func TestDefaultDispatcher_InvalidConfigFallsBack(t *testing.T) {
	// No t.Parallel() - modifies environment
	testutil.ClearNotifyEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:ABC")
	t.Setenv("TELEGRAM_CHAT_ID", "999")
	t.Setenv("CC_NOTIFY_TIMEOUT", "forever")

	var logs bytes.Buffer
	d, ok := defaultDispatcher(log.New(&logs, "", 0)).(*notify.Dispatcher)
	require.True(t, ok)

	assert.Contains(t, logs.String(), "using defaults")
	assert.True(t, d.Config().Telegram.Active())
}
