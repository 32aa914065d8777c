package editor

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/dragline/buffer"
	"github.com/iw2rmb/dragline/drag"
)

// Model is a Bubble Tea component that renders a buffer with drag handles
// and lets the user reorder blocks of lines.
//
// Model is a value type like other Bubble Tea components; the drag session
// and its collaborators are shared pointers so copies stay consistent.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model

	view     *viewState
	deco     *decorations
	surface  *pointerSurface
	session  *drag.Session
	resolver *drag.Resolver

	lastBufVersion uint64
	lastCaret      int
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := Model{
		cfg: cfg,
		buf: buffer.New(cfg.Text, buffer.Options{
			HistoryLimit: cfg.HistoryLimit,
			LineEnding:   cfg.LineEnding,
		}),
		focused:  true,
		viewport: viewport.New(0, 0),
		deco:     &decorations{},
		surface:  &pointerSurface{},
		resolver: drag.NewResolver(cfg.rules()...),
	}
	m.view = &viewState{buf: m.buf}

	onDrop := cfg.OnDrop
	buf := m.buf
	m.session = drag.NewSession(drag.SessionConfig{
		Doc:      m.buf,
		Coords:   m.view,
		Renderer: m.deco,
		Surface:  m.surface,
		Resolver: m.resolver,
		Logger:   cfg.Logger,
		OnDrop: func(d drag.Drop) {
			if onDrop == nil {
				return
			}
			onDrop(DropEvent{
				Outcome:     d.Outcome,
				Block:       d.Block,
				Boundary:    d.Boundary,
				HasBoundary: d.HasBoundary,
				Version:     buf.Version(),
			})
		},
	})

	m.lastBufVersion = m.buf.Version()
	m.lastCaret = m.buf.Caret()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Dragging reports whether a drag gesture is in flight.
func (m Model) Dragging() bool { return m.session.Active() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCaret()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCaret()
	}
	return m
}

// Blur unfocuses the editor and abandons any drag in flight.
func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.session.Close()
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Close tears down an active drag: decorations are cleared and pointer
// listeners removed. The document is left untouched.
func (m Model) Close() Model {
	m.session.Close()
	m.rebuildContent()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.updateMouse(msg)
		m.syncFromBuffer()
		// Decorations may have changed without a buffer change.
		m.rebuildContent()
		return m, cmd
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		if m.syncFromBuffer() {
			m.followCaret()
		}
		return m, cmd
	default:
		// Rebuild content in case the host mutated the buffer outside of the editor.
		if m.syncFromBuffer() {
			m.followCaret()
		}
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) syncFromBuffer() (caretChanged bool) {
	ver := m.buf.Version()
	caret := m.buf.Caret()
	if ver == m.lastBufVersion && caret == m.lastCaret {
		return false
	}
	caretChanged = caret != m.lastCaret
	since := m.lastBufVersion
	m.lastBufVersion = ver
	m.lastCaret = caret
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, since))
	}
	return caretChanged
}

func (m *Model) rebuildContent() {
	m.view.layout = buildLayout(m.buf.Lines(), m.contentWidth(), m.cfg.SoftWrap, m.cfg.tabWidth())
	m.view.gutterWidth = m.gutterWidth(m.buf.LineCount())
	m.view.tabWidth = m.cfg.tabWidth()
	m.syncView()
	m.viewport.SetContent(m.renderContent())
}

// syncView copies viewport geometry into the state shared with the drag
// session's coordinate mapper.
func (m *Model) syncView() {
	m.view.yOffset = m.viewport.YOffset
	m.view.width = m.viewport.Width
	m.view.height = m.viewport.Height
}

func (m Model) contentWidth() int {
	w := m.viewport.Width - m.gutterWidth(m.buf.LineCount())
	if w < 0 {
		return 0
	}
	return w
}

func (m *Model) followCaret() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	line := m.buf.CaretLine()
	row := m.view.layout.rowOf(line.Number, m.buf.Caret()-line.From)
	if row < 0 {
		return
	}

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
	} else if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
	m.syncView()
}
