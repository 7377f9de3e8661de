package notify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Player plays a sound file through whatever the platform offers
type Player interface {
	// Play blocks until the sound finished playing or failed
	Play(ctx context.Context, soundFile string) error

	// Available returns true if the player can produce sound at all
	Available() bool
}

// playerCommand is one candidate audio tool and the arguments placed before
// the sound file path.
type playerCommand struct {
	name string
	args []string
	// argsFor, when set, builds the full argument list instead of args+file
	argsFor func(soundFile string) []string
}

func (c playerCommand) buildArgs(soundFile string) []string {
	if c.argsFor != nil {
		return c.argsFor(soundFile)
	}
	args := make([]string, 0, len(c.args)+1)
	args = append(args, c.args...)
	return append(args, soundFile)
}

// runFunc executes an external command and waits for it to exit
type runFunc func(ctx context.Context, name string, args ...string) error

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// commandPlayer shells out to the installed tools of a platform's candidate
// list, falling through to the next one when a tool fails. Not safe for
// concurrent use.
type commandPlayer struct {
	commands []*playerCommand
	run      runFunc
	lastTool string
}

// newCommandPlayer keeps every candidate found by lookPath, in order
func newCommandPlayer(candidates []playerCommand, lookPath func(string) (string, error), run runFunc) *commandPlayer {
	p := &commandPlayer{run: run}
	for i := range candidates {
		if _, err := lookPath(candidates[i].name); err == nil {
			p.commands = append(p.commands, &candidates[i])
		}
	}
	return p
}

// NewPlayer creates a player for the current operating system.
// If no audio tool is installed the player reports itself unavailable.
func NewPlayer() Player {
	candidates := platformPlayers()
	if len(candidates) == 0 {
		return &noopPlayer{}
	}
	return newCommandPlayer(candidates, exec.LookPath, runCommand)
}

// Play runs the installed tools in order until one plays the file.
// afplay, for one, exits non-zero on ogg, which hands the file to ffplay.
func (p *commandPlayer) Play(ctx context.Context, soundFile string) error {
	var errs []error
	for _, cmd := range p.commands {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := p.run(ctx, cmd.name, cmd.buildArgs(soundFile)...); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", cmd.name, err))
			continue
		}
		p.lastTool = cmd.name
		return nil
	}
	return errors.Join(errs...)
}

// Available returns true if a tool was found on PATH
func (p *commandPlayer) Available() bool {
	return len(p.commands) > 0
}

// Tool returns the tool that last played a sound, else the first installed
// one, or "" if none was found
func (p *commandPlayer) Tool() string {
	if p.lastTool != "" {
		return p.lastTool
	}
	if len(p.commands) == 0 {
		return ""
	}
	return p.commands[0].name
}

// Tools returns the installed tools in the order they are tried
func (p *commandPlayer) Tools() []string {
	names := make([]string, 0, len(p.commands))
	for _, cmd := range p.commands {
		names = append(names, cmd.name)
	}
	return names
}

// Platform returns the current operating system name
func Platform() string {
	return runtime.GOOS
}

// noopPlayer is a player that does nothing (for unsupported platforms)
type noopPlayer struct{}

func (p *noopPlayer) Play(_ context.Context, _ string) error { return nil }
func (p *noopPlayer) Available() bool                        { return false }

// escapeForPowerShell escapes special characters for PowerShell strings
func escapeForPowerShell(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '\'':
			b.WriteString("''")
		case '`', '$':
			b.WriteRune('`')
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// ffplayCommand is available on every platform where ffmpeg is installed
// and decodes ogg, which afplay and SoundPlayer cannot.
var ffplayCommand = playerCommand{
	name: "ffplay",
	args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"},
}

// supportedAudioExtensions contains file extensions accepted for playback
var supportedAudioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".aiff": true,
	".aif":  true,
	".ogg":  true,
	".oga":  true,
	".flac": true,
	".m4a":  true,
}

var (
	// ErrSoundNotFound is returned when the sound file does not exist
	ErrSoundNotFound = errors.New("sound file not found")
	// ErrSoundIsDirectory is returned when the sound path is a directory
	ErrSoundIsDirectory = errors.New("sound path is a directory")
	// ErrUnsupportedFormat is returned for extensions no player is expected to decode
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// ValidateSoundFile checks that the sound file exists, is a regular file and
// has a supported extension.
func ValidateSoundFile(soundFile string) error {
	if soundFile == "" {
		return ErrSoundNotFound
	}

	info, err := os.Stat(soundFile)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrSoundNotFound
		}
		return fmt.Errorf("cannot access sound file: %w", err)
	}

	if info.IsDir() {
		return ErrSoundIsDirectory
	}

	ext := strings.ToLower(filepath.Ext(soundFile))
	if !supportedAudioExtensions[ext] {
		return fmt.Errorf("%w '%s'", ErrUnsupportedFormat, ext)
	}

	return nil
}

// PlaySound plays soundFile and reports whether it was heard.
// It never returns an error and never panics: every failure is written to
// logger as a warning and turned into false.
func PlaySound(ctx context.Context, player Player, soundFile string, logger *log.Logger) (played bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Printf("Error playing sound: %v", r)
			played = false
		}
	}()

	if err := ValidateSoundFile(soundFile); err != nil {
		switch {
		case errors.Is(err, ErrSoundNotFound):
			logger.Printf("Warning: Sound file not found: %s", soundFile)
		default:
			logger.Printf("Warning: %v: %s", err, soundFile)
		}
		return false
	}

	if player == nil || !player.Available() {
		return false
	}

	if err := player.Play(ctx, soundFile); err != nil {
		logger.Printf("Error playing sound: %v", err)
		return false
	}
	return true
}
