// Package notify_test provides mock implementations for player and messenger testing.
// Related: internal/notify/player.go, internal/notify/telegram.go
// Tags: notify, mocks, testing

package notify

import (
	"context"
	"errors"
	"sync"
)

// MockPlayer is a mock implementation of Player for testing.
// It records all Play calls and allows configuring availability and errors.
type MockPlayer struct {
	mu sync.Mutex

	// Configuration
	PlayError error
	PlayFunc  func(string) error
	available bool
	tool      string

	// Call tracking
	PlayCalls     []string
	PlayCallCount int
}

// NewMockPlayer creates a new mock player that is available and never fails
func NewMockPlayer() *MockPlayer {
	return &MockPlayer{
		available: true,
		PlayCalls: make([]string, 0),
	}
}

// WithPlayError configures the mock to return an error on Play
func (m *MockPlayer) WithPlayError(err error) *MockPlayer {
	m.PlayError = err
	return m
}

// WithPlayFunc configures a custom play function
func (m *MockPlayer) WithPlayFunc(fn func(string) error) *MockPlayer {
	m.PlayFunc = fn
	return m
}

// WithAvailable configures whether the player reports itself available
func (m *MockPlayer) WithAvailable(available bool) *MockPlayer {
	m.available = available
	return m
}

// WithTool configures the tool name reported by Tool
func (m *MockPlayer) WithTool(tool string) *MockPlayer {
	m.tool = tool
	return m
}

// Tool returns the configured tool name
func (m *MockPlayer) Tool() string {
	return m.tool
}

// Play records the call and returns the configured error
func (m *MockPlayer) Play(_ context.Context, soundFile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PlayCalls = append(m.PlayCalls, soundFile)
	m.PlayCallCount++

	if m.PlayFunc != nil {
		return m.PlayFunc(soundFile)
	}
	return m.PlayError
}

// Available returns the configured availability
func (m *MockPlayer) Available() bool {
	return m.available
}

// Calls returns the number of Play calls
func (m *MockPlayer) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.PlayCallCount
}

// MockMessenger is a mock implementation of Messenger for testing.
type MockMessenger struct {
	mu sync.Mutex

	SendError error
	SendFunc  func(TelegramConfig, string) error

	SendCalls  []string
	LastConfig TelegramConfig
}

// NewMockMessenger creates a new mock messenger that never fails
func NewMockMessenger() *MockMessenger {
	return &MockMessenger{SendCalls: make([]string, 0)}
}

// WithSendError configures the mock to return an error on Send
func (m *MockMessenger) WithSendError(err error) *MockMessenger {
	m.SendError = err
	return m
}

// WithSendFunc configures a custom send function
func (m *MockMessenger) WithSendFunc(fn func(TelegramConfig, string) error) *MockMessenger {
	m.SendFunc = fn
	return m
}

// Send records the call and returns the configured error
func (m *MockMessenger) Send(_ context.Context, cfg TelegramConfig, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SendCalls = append(m.SendCalls, text)
	m.LastConfig = cfg

	if m.SendFunc != nil {
		return m.SendFunc(cfg, text)
	}
	return m.SendError
}

// Calls returns the number of Send calls
func (m *MockMessenger) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SendCalls)
}

// Common test errors
var (
	ErrMockPlay = errors.New("mock playback error")
	ErrMockSend = errors.New("mock send error")
)
