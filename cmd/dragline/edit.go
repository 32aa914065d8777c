package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/dragline/editor"
)

func newEditCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit FILE",
		Short: "Reorder blocks with the mouse",
		Long: `Open FILE in the drag editor. Drag a line's handle to move its block;
alt+up and alt+down move the block under the caret.

Keys:
  ctrl+s  save
  ctrl+b  copy the block under the caret
  ctrl+z  undo, ctrl+y redo
  esc     cancel a drag, or quit
  ctrl+c  quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.newEditModel(args[0])
			if err != nil {
				return err
			}
			defer m.editor.Close()

			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run editor: %w", err)
			}
			return nil
		},
	}
}

type systemClipboard struct{}

func (systemClipboard) WriteText(s string) error { return writeClipboard(s) }

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

type editModel struct {
	editor editor.Model
	path   string
	perm   os.FileMode

	// saved is the text last written to disk.
	saved  string
	status string
}

func (a *app) newEditModel(path string) (editModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return editModel{}, fmt.Errorf("read %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return editModel{}, fmt.Errorf("stat %s: %w", path, err)
	}

	cfg := a.cfg.Editor(string(data))
	cfg.Clipboard = systemClipboard{}
	cfg.Logger = a.logger.With("file", path).Slog()

	ed := editor.New(cfg)
	return editModel{
		editor: ed,
		path:   path,
		perm:   info.Mode().Perm(),
		saved:  ed.Buffer().Text(),
		status: path,
	}, nil
}

func (m editModel) Init() tea.Cmd { return nil }

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// One row is kept for the status line.
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if !m.editor.Dragging() {
				return m, tea.Quit
			}
		case "ctrl+s":
			m.save()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *editModel) save() {
	text := m.editor.Buffer().Text()
	if err := os.WriteFile(m.path, []byte(text), m.perm); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.saved = text
	m.status = "saved " + m.path
}

func (m editModel) modified() bool {
	return m.editor.Buffer().Text() != m.saved
}

func (m editModel) View() string {
	status := m.status
	if m.modified() {
		status += " [modified]"
	}
	return m.editor.View() + "\n" + statusStyle.Render(status)
}
