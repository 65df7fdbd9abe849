package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/nextlevelbuilder/scrybot/internal/channels"
)

// pollingChannel mimics a long-polling channel: Start derives a polling
// context from the one it receives and keeps it for the channel's lifetime.
type pollingChannel struct {
	*channels.BaseChannel
	startErr   error
	pollCtx    context.Context
	pollCancel context.CancelFunc
}

func (c *pollingChannel) Start(ctx context.Context) error {
	if c.startErr != nil {
		return c.startErr
	}
	c.pollCtx, c.pollCancel = context.WithCancel(ctx)
	return nil
}

func (c *pollingChannel) Stop(_ context.Context) error {
	if c.pollCancel != nil {
		c.pollCancel()
	}
	return nil
}

// The context handed to Start must outlive startup: a polling context derived
// from it has to still be live once all channels have started.
func TestStartChannels_ContextSurvivesStartup(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := &pollingChannel{BaseChannel: channels.NewBaseChannel("fake", nil)}
	if err := startChannels(ctx, []channels.Channel{ch}); err != nil {
		t.Fatalf("startChannels: %v", err)
	}

	if ch.pollCtx == nil {
		t.Fatal("Start was never called")
	}
	if err := ch.pollCtx.Err(); err != nil {
		t.Fatalf("polling context canceled immediately after startup: %v", err)
	}
}

func TestStartChannels_ReportsStartupError(t *testing.T) {
	startErr := errors.New("connect failed")
	ok := &pollingChannel{BaseChannel: channels.NewBaseChannel("ok", nil)}
	bad := &pollingChannel{BaseChannel: channels.NewBaseChannel("bad", nil), startErr: startErr}

	err := startChannels(context.Background(), []channels.Channel{ok, bad})
	if !errors.Is(err, startErr) {
		t.Fatalf("startChannels = %v, want the startup error", err)
	}
}
