package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheelMouse(msg) && !m.session.Active() {
		m.viewport, cmd = m.viewport.Update(msg)
		m.syncView()
	}

	if !m.focused || m.buf == nil {
		return m, cmd
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, cmd
		}
		if !m.view.inBounds(msg.X, msg.Y) {
			return m, cmd
		}
		if id, ok := m.view.handleAt(msg.X, msg.Y, m.handleWidth()); ok {
			if !m.cfg.ReadOnly {
				m.session.PointerDown(id)
			}
			return m, cmd
		}
		if m.session.Active() {
			return m, cmd
		}
		if pos, ok := m.view.PositionAt(pointerAt(msg.X, msg.Y)); ok {
			m.buf.SetCaret(pos)
		}

	case tea.MouseActionMotion:
		if m.surface.active() {
			m.surface.move(pointerAt(msg.X, msg.Y))
		}

	case tea.MouseActionRelease:
		if m.surface.active() {
			m.surface.up(pointerAt(msg.X, msg.Y))
		}
	}

	return m, cmd
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}
