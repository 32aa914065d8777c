// Package config loads dragline settings from defaults, an optional YAML
// file, an optional .env file and DRAGLINE_* environment variables, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/dragline/buffer"
	"github.com/iw2rmb/dragline/drag"
	"github.com/iw2rmb/dragline/editor"
)

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Defaults.
const (
	DefaultLogLevel     = "INFO"
	DefaultLogFormat    = LogFormatText
	DefaultTabWidth     = 4
	DefaultHistoryLimit = 1000
	DefaultHandleGlyph  = "⠿"
)

// Config is the resolved application configuration.
type Config struct {
	LogLevel  string    `yaml:"log_level"`
	LogFormat LogFormat `yaml:"log_format"`
	// LogFile receives logs; empty discards them since the TUI owns the
	// terminal.
	LogFile string `yaml:"log_file"`

	LineNumbers  bool   `yaml:"line_numbers"`
	SoftWrap     bool   `yaml:"soft_wrap"`
	HandleGlyph  string `yaml:"handle_glyph"`
	TabWidth     int    `yaml:"tab_width"`
	HistoryLimit int    `yaml:"history_limit"`

	Rules RulesConfig `yaml:"rules"`
}

// RulesConfig enables the optional block rules.
type RulesConfig struct {
	Fences      bool `yaml:"fences"`
	Blockquotes bool `yaml:"blockquotes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
		LineNumbers:  true,
		HandleGlyph:  DefaultHandleGlyph,
		TabWidth:     DefaultTabWidth,
		HistoryLimit: DefaultHistoryLimit,
	}
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.TabWidth <= 0 {
		return fmt.Errorf("%w: tab_width must be positive, got %d", ErrInvalidConfig, c.TabWidth)
	}
	if c.HandleGlyph == "" {
		return fmt.Errorf("%w: handle_glyph is empty", ErrInvalidConfig)
	}
	return nil
}

// BlockRules returns the rules in resolution order. Opt-in rules come first
// so a fence or quote wins over a heading or list marker on the same line.
func (c Config) BlockRules() []drag.BlockRule {
	rules := make([]drag.BlockRule, 0, 4)
	if c.Rules.Fences {
		rules = append(rules, drag.FenceRule{})
	}
	if c.Rules.Blockquotes {
		rules = append(rules, drag.BlockquoteRule{})
	}
	return append(rules, drag.HeadingRule{}, drag.ListRule{TabWidth: c.TabWidth})
}

// Resolver returns a block resolver for the configured rules.
func (c Config) Resolver() *drag.Resolver {
	return drag.NewResolver(c.BlockRules()...)
}

// Editor returns an editor configuration for text. Hosts fill in
// callbacks, the clipboard and the logger.
func (c Config) Editor(text string) editor.Config {
	return editor.Config{
		Text:         text,
		ShowLineNums: c.LineNumbers,
		SoftWrap:     c.SoftWrap,
		TabWidth:     c.TabWidth,
		HandleGlyph:  c.HandleGlyph,
		Style:        editor.DefaultStyle(),
		Rules:        c.BlockRules(),
		HistoryLimit: c.HistoryLimit,
		LineEnding:   buffer.LineEndingAuto,
	}
}

// LoadFile overlays the YAML file at path onto cfg. Keys absent from the
// file keep their current values.
func LoadFile(cfg Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Load resolves the configuration. configPath is optional; when set the
// file must exist. envPath names a .env file, ".env" when empty, and is
// skipped if missing.
func Load(configPath, envPath string) (Config, error) {
	cfg := Default()

	if configPath != "" {
		var err error
		if cfg, err = LoadFile(cfg, configPath); err != nil {
			return Config{}, err
		}
	}

	if err := LoadDotEnv(envPath); err != nil {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	env, err := LoadFromEnv()
	if err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}
	cfg = env.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
