package notify

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Dispatcher maps an event to its side effects: a local sound and, for
// EventComplete, a Telegram message. Every side effect is best-effort.
type Dispatcher struct {
	config    Config
	player    Player
	messenger Messenger
	logger    *log.Logger
	now       func() time.Time
	getwd     func() (string, error)
}

// DispatcherOption customizes a Dispatcher
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger warnings are written to (default: discard)
func WithLogger(logger *log.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithClock sets the time source used in the completion message
func WithClock(now func() time.Time) DispatcherOption {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// WithWorkDir sets the lookup for the directory named in the completion message
func WithWorkDir(getwd func() (string, error)) DispatcherOption {
	return func(d *Dispatcher) {
		if getwd != nil {
			d.getwd = getwd
		}
	}
}

// NewDispatcher creates a dispatcher. A nil player or messenger disables
// the matching side effect.
func NewDispatcher(config Config, player Player, messenger Messenger, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		config:    config,
		player:    player,
		messenger: messenger,
		logger:    log.New(io.Discard, "", 0),
		now:       time.Now,
		getwd:     os.Getwd,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Config returns the dispatcher's configuration
func (d *Dispatcher) Config() Config {
	return d.config
}

// Dispatch plays the event's sound, then sends the completion message when
// the event is EventComplete and Telegram is configured. It never fails;
// the Result only describes what happened.
func (d *Dispatcher) Dispatch(ctx context.Context, event Event) Result {
	result := Result{Event: event, Sound: OutcomeSkipped, Remote: OutcomeSkipped}

	if PlaySound(ctx, d.player, d.config.SoundFor(event), d.logger) {
		result.Sound = OutcomeDelivered
	} else if d.player != nil && d.player.Available() {
		result.Sound = OutcomeFailed
	}
	d.debugf("sound: %s via %s (%s)", Platform(), d.playerTool(), result.Sound)

	if event == EventComplete {
		result.Remote = d.sendCompletion(ctx)
	}

	return result
}

// sendCompletion posts the completion message if Telegram is fully configured
func (d *Dispatcher) sendCompletion(ctx context.Context) (outcome Outcome) {
	if d.messenger == nil || !d.config.Telegram.Active() {
		return OutcomeSkipped
	}

	defer func() {
		if r := recover(); r != nil {
			d.debugf("telegram: panic: %v", r)
			outcome = OutcomeFailed
		}
	}()

	text := CompletionMessage(d.config.MessagePrefix, d.workDir(), d.now())
	if err := d.messenger.Send(ctx, d.config.Telegram, text); err != nil {
		d.debugf("telegram: %s", d.redact(err.Error()))
		return OutcomeFailed
	}
	return OutcomeDelivered
}

// toolNamer is implemented by players backed by an external command
type toolNamer interface {
	Tool() string
}

// playerTool names the audio tool behind the player, or "none"
func (d *Dispatcher) playerTool() string {
	if p, ok := d.player.(toolNamer); ok {
		if tool := p.Tool(); tool != "" {
			return tool
		}
	}
	return "none"
}

// workDir returns the current directory, or "." if it cannot be determined
func (d *Dispatcher) workDir() string {
	dir, err := d.getwd()
	if err != nil || dir == "" {
		return "."
	}
	return dir
}

// redact hides the bot token, which appears in request URLs inside errors
func (d *Dispatcher) redact(s string) string {
	if token := d.config.Telegram.BotToken; token != "" {
		return strings.ReplaceAll(s, token, "<redacted>")
	}
	return s
}

func (d *Dispatcher) debugf(format string, args ...interface{}) {
	if d.config.Debug {
		d.logger.Printf(format, args...)
	}
}
