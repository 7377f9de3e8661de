package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"
)

// TelegramAPIURL is the base URL of the Telegram Bot API
const TelegramAPIURL = "https://api.telegram.org"

// Messenger delivers a text message to a remote chat
type Messenger interface {
	Send(ctx context.Context, cfg TelegramConfig, text string) error
}

// sendMessageRequest is the sendMessage body. ChatID stays a string so the
// configured value reaches the API untouched.
type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// TelegramClient posts messages through the Telegram Bot API
type TelegramClient struct {
	httpClient *http.Client
	apiURL     string
}

// NewTelegramClient creates a client whose requests are bounded by timeout
func NewTelegramClient(timeout time.Duration) *TelegramClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &TelegramClient{
		httpClient: &http.Client{Timeout: timeout},
		apiURL:     TelegramAPIURL,
	}
}

// SetAPIURL sets the API base URL. This is intended for testing purposes.
func (c *TelegramClient) SetAPIURL(url string) {
	c.apiURL = url
}

// sendMessageURL builds the templated endpoint for the bot token
func (c *TelegramClient) sendMessageURL(botToken string) string {
	return fmt.Sprintf("%s/bot%s/sendMessage", c.apiURL, botToken)
}

// Send posts text to cfg.ChatID. Transport errors, timeouts and any non-2xx
// status are returned; the response body is not inspected.
func (c *TelegramClient) Send(ctx context.Context, cfg TelegramConfig, text string) error {
	if !cfg.Active() {
		return fmt.Errorf("telegram not configured")
	}

	body, err := json.Marshal(sendMessageRequest{ChatID: cfg.ChatID, Text: text})
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sendMessageURL(cfg.BotToken), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}

// CompletionMessage renders "<prefix> '<base of dir>' at HH:MM:SS"
func CompletionMessage(prefix, dir string, at time.Time) string {
	if prefix == "" {
		prefix = DefaultMessagePrefix
	}
	return fmt.Sprintf("%s '%s' at %s", prefix, filepath.Base(dir), at.Format("15:04:05"))
}
