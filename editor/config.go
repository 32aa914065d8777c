package editor

import (
	"log/slog"

	"github.com/iw2rmb/dragline/buffer"
	"github.com/iw2rmb/dragline/drag"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	SoftWrap     bool
	// TabWidth is used for rendering and list indentation; zero means 4.
	TabWidth int
	// HandleGlyph is drawn in the gutter of each line; empty means "⠿".
	HandleGlyph string
	Style       Style

	KeyMap KeyMap

	// ReadOnly disables block moves, drags and history.
	ReadOnly bool

	// Rules decides which lines move together; nil means drag.DefaultRules
	// with TabWidth applied to list indentation.
	Rules []drag.BlockRule

	// Clipboard receives copied blocks; nil disables copying.
	Clipboard Clipboard

	// Logger receives drag lifecycle records; nil discards them.
	Logger *slog.Logger

	// OnChange is called after every buffer version change.
	OnChange func(ChangeEvent)
	// OnDrop is called after every drag gesture that reached a release.
	OnDrop func(DropEvent)

	// Forwarded to buffer.Options.
	HistoryLimit int
	LineEnding   buffer.LineEnding
}

const defaultHandleGlyph = "⠿"

func (c Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return 4
	}
	return c.TabWidth
}

func (c Config) handleGlyph() string {
	if c.HandleGlyph == "" {
		return defaultHandleGlyph
	}
	return c.HandleGlyph
}

func (c Config) rules() []drag.BlockRule {
	if c.Rules != nil {
		return c.Rules
	}
	return []drag.BlockRule{drag.HeadingRule{}, drag.ListRule{TabWidth: c.tabWidth()}}
}
