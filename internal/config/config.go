// Package config holds the bot configuration: a json5 file overlaid with
// environment variables.
package config

import (
	"errors"
	"fmt"
)

// NotSetSentinel marks a credential that exists but was never initialized
// (e.g. a templated env file shipped with a placeholder value). Treated the
// same as a missing credential at startup.
const NotSetSentinel = "NotSet"

// Config is the root configuration for the scrybot process.
type Config struct {
	Telegram TelegramConfig `json:"telegram"`
	Discord  DiscordConfig  `json:"discord"`
	Scryfall ScryfallConfig `json:"scryfall"`
}

// TelegramConfig configures the Telegram channel.
type TelegramConfig struct {
	Enabled   bool     `json:"enabled"`
	Token     string   `json:"token"`
	AllowFrom []string `json:"allow_from,omitempty"` // empty = all senders
}

// DiscordConfig configures the Discord channel.
type DiscordConfig struct {
	Enabled   bool     `json:"enabled"`
	Token     string   `json:"token"`
	AllowFrom []string `json:"allow_from,omitempty"` // empty = all senders
}

// ScryfallConfig configures the card lookup client.
type ScryfallConfig struct {
	BaseURL string `json:"base_url,omitempty"` // empty = public API
}

// Validate checks that at least one channel is enabled and that every enabled
// channel has a usable token.
func (c *Config) Validate() error {
	if !c.Telegram.Enabled && !c.Discord.Enabled {
		return errors.New("no channel enabled: set telegram.enabled or discord.enabled")
	}
	if c.Telegram.Enabled {
		if err := checkToken("telegram", c.Telegram.Token); err != nil {
			return err
		}
	}
	if c.Discord.Enabled {
		if err := checkToken("discord", c.Discord.Token); err != nil {
			return err
		}
	}
	return nil
}

func checkToken(channel, token string) error {
	switch token {
	case "":
		return fmt.Errorf("%s channel enabled but no token configured", channel)
	case NotSetSentinel:
		return fmt.Errorf("%s token found but isn't initialized", channel)
	}
	return nil
}
