package config

import (
	"fmt"
	"os"

	"github.com/titanous/json5"
)

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Telegram: TelegramConfig{Enabled: true},
	}
}

// Load reads config from a JSON file, then overlays env vars. A missing file
// is not an error: env vars alone are a valid configuration.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := json5.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides overlays env vars onto the config.
// Env vars take precedence over file values.
func (c *Config) applyEnvOverrides() {
	envStr := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	envStr("SCRYBOT_TELEGRAM_TOKEN", &c.Telegram.Token)
	envStr("SCRYBOT_DISCORD_TOKEN", &c.Discord.Token)
	envStr("SCRYBOT_SCRYFALL_BASE_URL", &c.Scryfall.BaseURL)
}
