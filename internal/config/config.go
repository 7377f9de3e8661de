package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ariel-frischer/cc-notify/internal/notify"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes the optional tuning variables (CC_NOTIFY_TIMEOUT, ...)
	EnvPrefix = "CC_NOTIFY_"

	// TelegramEnvPrefix prefixes the Telegram credentials (TELEGRAM_BOT_TOKEN, TELEGRAM_CHAT_ID)
	TelegramEnvPrefix = "TELEGRAM_"
)

// Configuration represents the cc-notify configuration.
// There is no config file: every value comes from defaults or the environment.
type Configuration struct {
	SoundsDir     string        `koanf:"sounds_dir"`
	InputSound    string        `koanf:"input_sound" validate:"required"`
	CompleteSound string        `koanf:"complete_sound" validate:"required"`
	MessagePrefix string        `koanf:"message_prefix" validate:"required"`
	Timeout       time.Duration `koanf:"timeout" validate:"min=1s,max=10s"`
	Debug         bool          `koanf:"debug"`
	Telegram      Telegram      `koanf:"telegram"`
}

// Telegram holds the bot credentials. Their format is not checked here;
// the Bot API is the only judge of a valid token.
type Telegram struct {
	BotToken string `koanf:"bot_token"`
	ChatID   string `koanf:"chat_id"`
}

// Load loads configuration from defaults and environment variables
// Priority: Environment variables > Defaults
func Load() (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if err := k.Load(env.Provider(TelegramEnvPrefix, ".", telegramEnvTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load telegram environment: %w", err)
	}
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envTransformValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Fallback returns the default configuration with the Telegram credentials
// still taken from the environment. It is used when Load fails so that a bad
// tuning variable never silences the notification.
func Fallback() *Configuration {
	k := koanf.New(".")
	_ = k.Load(env.Provider(TelegramEnvPrefix, ".", telegramEnvTransform), nil)

	defaults := GetDefaults()
	return &Configuration{
		SoundsDir:     defaults["sounds_dir"].(string),
		InputSound:    DefaultInputSound,
		CompleteSound: DefaultCompleteSound,
		MessagePrefix: notify.DefaultMessagePrefix,
		Timeout:       notify.DefaultTimeout,
		Telegram: Telegram{
			BotToken: k.String("telegram.bot_token"),
			ChatID:   k.String("telegram.chat_id"),
		},
	}
}

// NotifyConfig converts the configuration into the dispatcher's config,
// resolving relative sound names against SoundsDir.
func (c *Configuration) NotifyConfig() notify.Config {
	return notify.Config{
		Sounds: map[notify.Event]string{
			notify.EventInput:    c.soundPath(c.InputSound),
			notify.EventComplete: c.soundPath(c.CompleteSound),
		},
		Telegram: notify.TelegramConfig{
			BotToken: c.Telegram.BotToken,
			ChatID:   c.Telegram.ChatID,
		},
		MessagePrefix: c.MessagePrefix,
		Debug:         c.Debug,
	}
}

// soundPath keeps absolute paths and joins relative ones onto SoundsDir
func (c *Configuration) soundPath(name string) string {
	name = expandHomePath(name)
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(expandHomePath(c.SoundsDir), name)
}

// envTransform converts environment variable names to config keys
// Example: CC_NOTIFY_SOUNDS_DIR -> sounds_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// envTransformValue is envTransform for the tuning variables, dropping empty
// values so an exported-but-empty variable keeps its default
func envTransformValue(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	return envTransform(key), value
}

// telegramEnvTransform nests the Telegram variables under "telegram"
// Example: TELEGRAM_BOT_TOKEN -> telegram.bot_token
func telegramEnvTransform(s string) string {
	return "telegram." + strings.ToLower(strings.TrimPrefix(s, TelegramEnvPrefix))
}
