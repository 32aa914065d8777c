package config

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable, e.g. DRAGLINE_TAB_WIDTH.
const EnvPrefix = "DRAGLINE"

// EnvConfig holds environment overrides. Nil fields were not set.
type EnvConfig struct {
	// Env: DRAGLINE_LOG_LEVEL
	LogLevel *string `envconfig:"LOG_LEVEL"`
	// Env: DRAGLINE_LOG_FORMAT (text or json)
	LogFormat *string `envconfig:"LOG_FORMAT"`
	// Env: DRAGLINE_LOG_FILE
	LogFile *string `envconfig:"LOG_FILE"`

	// Env: DRAGLINE_LINE_NUMBERS
	LineNumbers *bool `envconfig:"LINE_NUMBERS"`
	// Env: DRAGLINE_SOFT_WRAP
	SoftWrap *bool `envconfig:"SOFT_WRAP"`
	// Env: DRAGLINE_HANDLE_GLYPH
	HandleGlyph *string `envconfig:"HANDLE_GLYPH"`
	// Env: DRAGLINE_TAB_WIDTH
	TabWidth *int `envconfig:"TAB_WIDTH"`
	// Env: DRAGLINE_HISTORY_LIMIT
	HistoryLimit *int `envconfig:"HISTORY_LIMIT"`

	// Env: DRAGLINE_RULES_FENCES
	RulesFences *bool `envconfig:"RULES_FENCES"`
	// Env: DRAGLINE_RULES_BLOCKQUOTES
	RulesBlockquotes *bool `envconfig:"RULES_BLOCKQUOTES"`
}

// LoadFromEnv reads DRAGLINE_* variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// Apply overlays the set fields onto cfg.
func (e EnvConfig) Apply(cfg Config) Config {
	if e.LogLevel != nil {
		cfg.LogLevel = *e.LogLevel
	}
	if e.LogFormat != nil {
		cfg.LogFormat = LogFormat(*e.LogFormat)
	}
	if e.LogFile != nil {
		cfg.LogFile = *e.LogFile
	}
	if e.LineNumbers != nil {
		cfg.LineNumbers = *e.LineNumbers
	}
	if e.SoftWrap != nil {
		cfg.SoftWrap = *e.SoftWrap
	}
	if e.HandleGlyph != nil {
		cfg.HandleGlyph = *e.HandleGlyph
	}
	if e.TabWidth != nil {
		cfg.TabWidth = *e.TabWidth
	}
	if e.HistoryLimit != nil {
		cfg.HistoryLimit = *e.HistoryLimit
	}
	if e.RulesFences != nil {
		cfg.Rules.Fences = *e.RulesFences
	}
	if e.RulesBlockquotes != nil {
		cfg.Rules.Blockquotes = *e.RulesBlockquotes
	}
	return cfg
}
