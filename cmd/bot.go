package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nextlevelbuilder/scrybot/internal/channels"
	"github.com/nextlevelbuilder/scrybot/internal/channels/discord"
	"github.com/nextlevelbuilder/scrybot/internal/channels/telegram"
	"github.com/nextlevelbuilder/scrybot/internal/config"
	"github.com/nextlevelbuilder/scrybot/internal/scryfall"
)

// startChannels starts every channel concurrently and returns the first
// startup error. ctx is handed to each channel unchanged: channels derive
// their polling contexts from it, so it must stay live for the whole process,
// not just the startup phase.
func startChannels(ctx context.Context, chans []channels.Channel) error {
	var g errgroup.Group
	for _, ch := range chans {
		g.Go(func() error {
			return ch.Start(ctx)
		})
	}
	return g.Wait()
}

func runBot() {
	// Setup structured logging
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	// Load config
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	resolver := scryfall.New(cfg.Scryfall.BaseURL)

	var chans []channels.Channel
	if cfg.Telegram.Enabled {
		tg, err := telegram.New(cfg.Telegram, resolver)
		if err != nil {
			slog.Error("failed to create telegram channel", "error", err)
			os.Exit(1)
		}
		chans = append(chans, tg)
	}
	if cfg.Discord.Enabled {
		dc, err := discord.New(cfg.Discord, resolver)
		if err != nil {
			slog.Error("failed to create discord channel", "error", err)
			os.Exit(1)
		}
		chans = append(chans, dc)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := startChannels(ctx, chans); err != nil {
		slog.Error("failed to start channels", "error", err)
		os.Exit(1)
	}

	slog.Info("scrybot running", "channels", len(chans))
	<-ctx.Done()

	slog.Info("shutting down")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, ch := range chans {
		if err := ch.Stop(stopCtx); err != nil {
			slog.Warn("channel stop failed", "channel", ch.Name(), "error", err)
		}
	}
}
