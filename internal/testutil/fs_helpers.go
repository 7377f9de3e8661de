// Package testutil provides shared test helpers for sound fixtures and
// environment isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Fixture sound names, matching the defaults the CLI resolves
const (
	InputSoundName    = "input-needed.ogg"
	CompleteSoundName = "complete.ogg"
)

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CreateSoundsDir creates a temporary sounds directory holding both event
// sounds and returns it. The files only carry an Ogg magic number; they are
// never decoded because tests play them through a mock player.
func CreateSoundsDir(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "sounds")
	WriteFile(t, filepath.Join(dir, InputSoundName), "OggS")
	WriteFile(t, filepath.Join(dir, CompleteSoundName), "OggS")
	return dir
}

// notifyEnvVars lists every environment variable the notifier reads.
// Clearing the Telegram ones makes it impossible for tests to post real messages.
var notifyEnvVars = []string{
	"TELEGRAM_BOT_TOKEN",
	"TELEGRAM_CHAT_ID",
	"CC_NOTIFY_SOUNDS_DIR",
	"CC_NOTIFY_INPUT_SOUND",
	"CC_NOTIFY_COMPLETE_SOUND",
	"CC_NOTIFY_MESSAGE_PREFIX",
	"CC_NOTIFY_TIMEOUT",
	"CC_NOTIFY_DEBUG",
}

// ClearNotifyEnv unsets every notifier environment variable for the duration
// of the test; t.Setenv restores the original values afterwards.
// Tests calling it must not use t.Parallel().
func ClearNotifyEnv(t *testing.T) {
	t.Helper()

	for _, key := range notifyEnvVars {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
}
