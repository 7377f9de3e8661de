// Package notify dispatches coding-assistant lifecycle events to sound and
// Telegram notifications.
//
// An Event is either EventInput (the assistant needs the user) or
// EventComplete (the assistant finished). A Dispatcher plays the sound
// configured for the event and, for EventComplete only, posts a short status
// message through the Telegram Bot API when both tokens are configured.
//
// Every side effect is fail-silent: a missing sound file, a missing audio
// tool, an unreachable network or a rejected token never becomes an error.
// Dispatch reports what happened in a Result and nothing else.
//
// # Platform Support
//
//   - Linux: paplay, pw-play or ffplay
//   - macOS: afplay or ffplay
//   - Windows: ffplay or PowerShell SoundPlayer
//
// # Usage
//
//	cfg := notify.Config{
//		Sounds: map[notify.Event]string{
//			notify.EventInput:    "/opt/hooks/sounds/input-needed.ogg",
//			notify.EventComplete: "/opt/hooks/sounds/complete.ogg",
//		},
//		Telegram: notify.TelegramConfig{BotToken: token, ChatID: chatID},
//	}
//	d := notify.NewDispatcher(cfg, notify.NewPlayer(), notify.NewTelegramClient(notify.DefaultTimeout))
//	d.Dispatch(ctx, notify.EventComplete)
package notify
