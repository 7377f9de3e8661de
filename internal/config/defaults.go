package config

import (
	"os"
	"path/filepath"

	"github.com/ariel-frischer/cc-notify/internal/notify"
)

const (
	// DefaultInputSound is played for the input event
	DefaultInputSound = "input-needed.ogg"

	// DefaultCompleteSound is played for the complete event
	DefaultCompleteSound = "complete.ogg"
)

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"sounds_dir":     DefaultSoundsDir(),
		"input_sound":    DefaultInputSound,
		"complete_sound": DefaultCompleteSound,
		"message_prefix": notify.DefaultMessagePrefix,
		"timeout":        notify.DefaultTimeout,
		"debug":          false,
	}
}

// DefaultSoundsDir returns the sounds directory next to the running binary,
// following symlinks so an installed link still finds the real install dir.
func DefaultSoundsDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "sounds"
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "sounds")
}
