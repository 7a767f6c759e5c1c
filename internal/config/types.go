// Package config loads the HUD configuration from a YAML or JSON file with
// environment overrides, and republishes it when the file changes.
package config

import (
	"fmt"
	"strings"
	"time"

	"skillhud/hud"
	"skillhud/internal/ledger"
	"skillhud/internal/logx"
)

const (
	MinFontSize = 0.5
	MaxFontSize = 3.0
)

// Config is the on-disk configuration.
type Config struct {
	TextColor string  `json:"text_color" env:"SKILLHUD_TEXT_COLOR"`
	FontSize  float64 `json:"font_size" env:"SKILLHUD_FONT_SIZE"`
	OriginX   int     `json:"origin_x" env:"SKILLHUD_ORIGIN_X"`
	OriginY   int     `json:"origin_y" env:"SKILLHUD_ORIGIN_Y"`

	Log    LogConfig    `json:"log"`
	Ledger LedgerConfig `json:"ledger"`
}

type LogConfig struct {
	Level   string `json:"level" env:"SKILLHUD_LOG_LEVEL"`
	Console bool   `json:"console" env:"SKILLHUD_LOG_CONSOLE"`
}

type LedgerConfig struct {
	Driver      string   `json:"driver" env:"SKILLHUD_LEDGER_DRIVER"`
	Path        string   `json:"path" env:"SKILLHUD_LEDGER_PATH"`
	BusyTimeout Duration `json:"busy_timeout"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		TextColor: "#FFFFFF",
		FontSize:  1,
		OriginX:   50,
		OriginY:   100,
		Log:       LogConfig{Level: "info", Console: true},
		Ledger:    LedgerConfig{Driver: "memory"},
	}
}

// Normalize clamps values into their supported ranges.
func (c *Config) Normalize() {
	if c.FontSize == 0 {
		c.FontSize = 1
	}
	if c.FontSize < MinFontSize {
		c.FontSize = MinFontSize
	}
	if c.FontSize > MaxFontSize {
		c.FontSize = MaxFontSize
	}
	c.Ledger.Driver = strings.ToLower(strings.TrimSpace(c.Ledger.Driver))
}

// Validate rejects configurations the host cannot start with. A malformed
// text colour is not an error; it renders white.
func (c *Config) Validate() error {
	switch c.Ledger.Driver {
	case "", "memory":
	case "sqlite", "sqlite3":
		if strings.TrimSpace(c.Ledger.Path) == "" {
			return fmt.Errorf("ledger.path is required for driver %q", c.Ledger.Driver)
		}
	default:
		return fmt.Errorf("unknown ledger.driver %q", c.Ledger.Driver)
	}
	if c.Ledger.BusyTimeout < 0 {
		return fmt.Errorf("ledger.busy_timeout must not be negative")
	}
	return nil
}

// Warnings lists values that were accepted but will not render as written.
func (c *Config) Warnings() []string {
	var out []string
	if !hud.ValidHexColor(c.TextColor) {
		out = append(out, fmt.Sprintf("text_color %q is not #RRGGBB; using white", c.TextColor))
	}
	return out
}

// LedgerOptions converts to the ledger package configuration.
func (c *Config) LedgerOptions() ledger.Config {
	return ledger.Config{
		Driver:      c.Ledger.Driver,
		Path:        c.Ledger.Path,
		BusyTimeout: time.Duration(c.Ledger.BusyTimeout),
	}
}

// LogOptions converts to the logx configuration.
func (c *Config) LogOptions() logx.Config {
	return logx.Config{Level: c.Log.Level, Console: c.Log.Console}
}
