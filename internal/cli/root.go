// cc-notify - sound and Telegram notifications for coding-assistant hooks
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/cc-notify

// Package cli provides the Cobra command that turns a hook invocation into
// notifications. It accepts exactly one event argument and never lets a
// notification failure change the exit status.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ariel-frischer/cc-notify/internal/config"
	"github.com/ariel-frischer/cc-notify/internal/notify"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Dispatcher runs the side effects for an accepted event
type Dispatcher interface {
	Dispatch(ctx context.Context, event notify.Event) notify.Result
}

// DispatcherFactory builds the dispatcher once the event has been accepted,
// so configuration is only read for valid invocations.
type DispatcherFactory func(logger *log.Logger) Dispatcher

// usageError reports a malformed invocation
type usageError struct {
	reason string
}

func (e *usageError) Error() string {
	return e.reason
}

// NewRootCmd creates the cc-notify command.
// Flag parsing is disabled: every token, "-h" included, is an event candidate.
func NewRootCmd(newDispatcher DispatcherFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "cc-notify {input|complete}",
		Short: "Play a sound and send a Telegram message for assistant hook events",
		Long: `cc-notify plays a sound when the coding assistant needs input or finishes a task.

On "complete" it also posts a short message to Telegram when TELEGRAM_BOT_TOKEN
and TELEGRAM_CHAT_ID are both set. Sound and Telegram failures are ignored.`,
		Example: `  # Hook for Notification events
  cc-notify input

  # Hook for Stop events
  TELEGRAM_BOT_TOKEN=123:ABC TELEGRAM_CHAT_ID=999 cc-notify complete`,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		Args:               validateEventArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			event, err := notify.ParseEvent(args[0])
			if err != nil {
				return &usageError{reason: err.Error()}
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			logger := log.New(cmd.ErrOrStderr(), "", 0)
			newDispatcher(logger).Dispatch(ctx, event)
			return nil
		},
	}
}

// validateEventArgs accepts exactly one known event
func validateEventArgs(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &usageError{reason: fmt.Sprintf("expected 1 argument, got %d", len(args))}
	}
	if _, err := notify.ParseEvent(args[0]); err != nil {
		return &usageError{reason: err.Error()}
	}
	return nil
}

// Execute runs the command with the process arguments
func Execute() error {
	return execute(NewRootCmd(defaultDispatcher), os.Args[1:])
}

// execute validates args before handing them to cobra, so that no token
// (including cobra's hidden completion commands) reaches a side effect
// unless it is a valid event.
func execute(cmd *cobra.Command, args []string) error {
	if args == nil {
		args = []string{}
	}

	if err := validateEventArgs(cmd, args); err != nil {
		return usage(cmd, err)
	}

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			return usage(cmd, err)
		}
		return err
	}
	return nil
}

// usage prints the usage text to stderr and returns the usage exit error
func usage(cmd *cobra.Command, err error) error {
	printUsage(cmd.ErrOrStderr(), cmd.Name(), err)
	return NewExitError(ExitInvalidArguments)
}

// printUsage writes the reason and the usage lines
func printUsage(w io.Writer, name string, err error) {
	bold := color.New(color.Bold).SprintFunc()

	names := make([]string, 0, len(notify.Events()))
	for _, e := range notify.Events() {
		names = append(names, string(e))
	}

	if err != nil {
		fmt.Fprintf(w, "%s: %v\n", name, err)
	}
	fmt.Fprintf(w, "%s %s {%s}\n", bold("Usage:"), name, strings.Join(names, "|"))
	for _, e := range notify.Events() {
		fmt.Fprintf(w, "  %-8s - %s\n", e, e.Description())
	}
}

// defaultDispatcher loads configuration from the environment and wires the
// platform player and the Telegram client. A configuration error falls back
// to defaults instead of aborting the hook.
func defaultDispatcher(logger *log.Logger) Dispatcher {
	cfg, err := config.Load()
	if err != nil {
		logger.Printf("[cc-notify] warning: %v, using defaults", err)
		cfg = config.Fallback()
	}

	return notify.NewDispatcher(
		cfg.NotifyConfig(),
		notify.NewPlayer(),
		notify.NewTelegramClient(cfg.Timeout),
		notify.WithLogger(logger),
	)
}
