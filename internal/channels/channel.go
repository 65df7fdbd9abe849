// Package channels provides the channel abstraction for multi-platform
// messaging. A channel connects one chat platform (Telegram, Discord) to the
// card resolution pipeline: it extracts references from incoming messages,
// resolves each against Scryfall, and renders one reply per reference.
package channels

import "context"

// Channel defines the interface that all channel implementations must satisfy.
type Channel interface {
	// Name returns the channel identifier (e.g. "telegram", "discord").
	Name() string

	// Start begins listening for messages. Non-blocking after setup.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the channel.
	Stop(ctx context.Context) error

	// IsRunning returns whether the channel is actively processing messages.
	IsRunning() bool
}

// BaseChannel provides shared functionality for channel implementations,
// which should embed this struct.
type BaseChannel struct {
	name      string
	running   bool
	allowList []string
}

// NewBaseChannel creates a BaseChannel. An empty allowList admits all senders.
func NewBaseChannel(name string, allowList []string) *BaseChannel {
	return &BaseChannel{name: name, allowList: allowList}
}

// Name returns the channel name.
func (c *BaseChannel) Name() string { return c.name }

// IsRunning returns whether the channel is running.
func (c *BaseChannel) IsRunning() bool { return c.running }

// SetRunning updates the running state.
func (c *BaseChannel) SetRunning(running bool) { c.running = running }

// HasAllowList returns whether an allowlist is configured.
func (c *BaseChannel) HasAllowList() bool { return len(c.allowList) > 0 }

// IsAllowed checks a sender ID against the allowlist.
// An empty allowlist admits everyone.
func (c *BaseChannel) IsAllowed(senderID string) bool {
	if len(c.allowList) == 0 {
		return true
	}
	for _, allowed := range c.allowList {
		if allowed == senderID {
			return true
		}
	}
	return false
}
