package notify

import (
	"errors"
	"fmt"
	"time"
)

// Event is the lifecycle trigger passed to the notifier
type Event string

const (
	// EventInput fires when the assistant is waiting for user input
	EventInput Event = "input"
	// EventComplete fires when the assistant has finished a task
	EventComplete Event = "complete"
)

// ErrUnknownEvent is returned by ParseEvent for anything but a known event
var ErrUnknownEvent = errors.New("unknown event")

// Events returns the valid events in usage order
func Events() []Event {
	return []Event{EventInput, EventComplete}
}

// ParseEvent converts a command-line token into an Event.
// Matching is exact: "Complete" or " input" are rejected.
func ParseEvent(s string) (Event, error) {
	switch Event(s) {
	case EventInput, EventComplete:
		return Event(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEvent, s)
	}
}

// Description returns the one-line usage description for the event
func (e Event) Description() string {
	switch e {
	case EventInput:
		return "Play sound when Claude needs user input"
	case EventComplete:
		return "Play sound when Claude completes tasks"
	default:
		return ""
	}
}

const (
	// DefaultMessagePrefix starts every completion message
	DefaultMessagePrefix = "✓ Claude Code done in"

	// DefaultTimeout bounds the Telegram request
	DefaultTimeout = 5 * time.Second
)

// TelegramConfig holds the two tokens needed to post a completion message.
type TelegramConfig struct {
	// BotToken is the bot credential used in the API path
	BotToken string

	// ChatID is the destination chat, sent verbatim
	ChatID string
}

// Active reports whether both tokens are set. A partial config is never used.
func (c TelegramConfig) Active() bool {
	return c.BotToken != "" && c.ChatID != ""
}

// Config is everything the Dispatcher needs, built once at process start.
type Config struct {
	// Sounds maps each event to the audio file played for it
	Sounds map[Event]string

	// Telegram is the optional remote notification target
	Telegram TelegramConfig

	// MessagePrefix starts the completion message (default: DefaultMessagePrefix)
	MessagePrefix string

	// Debug logs remote notification failures instead of dropping them
	Debug bool
}

// SoundFor returns the sound file configured for the event, or "" if none
func (c Config) SoundFor(e Event) string {
	if c.Sounds == nil {
		return ""
	}
	return c.Sounds[e]
}

// Outcome is the result of one side effect
type Outcome string

const (
	// OutcomeSkipped means the action was not attempted
	OutcomeSkipped Outcome = "skipped"
	// OutcomeDelivered means the action finished without error
	OutcomeDelivered Outcome = "delivered"
	// OutcomeFailed means the action was attempted and failed
	OutcomeFailed Outcome = "failed"
)

// Result records what a Dispatch call did. It is informational only;
// a failed outcome never changes the process exit status.
type Result struct {
	Event  Event
	Sound  Outcome
	Remote Outcome
}
