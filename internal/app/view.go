package app

import (
	"github.com/llehouerou/tracklist/internal/keymap"
	"github.com/llehouerou/tracklist/internal/ui"
	"github.com/llehouerou/tracklist/internal/ui/headerbar"
	"github.com/llehouerou/tracklist/internal/ui/playerbar"
	"github.com/llehouerou/tracklist/internal/ui/render"
	"github.com/llehouerou/tracklist/internal/ui/styles"
)

const statusHeight = 1

func (m *Model) resize() {
	m.Tracks.SetSize(m.Width, max(m.Height-headerbar.Height-playerbar.Height-statusHeight, 0))
}

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	if m.Width < ui.MinWidth {
		return styles.T().S().Warning.Render(render.Truncate("Terminal too small", m.Width))
	}

	view := headerbar.Render(m.Playlist, m.Width) + "\n" +
		m.Tracks.View() + "\n" +
		playerbar.Render(playerbar.NewState(m.Playlist), m.Width) + "\n" +
		m.renderStatus()

	return m.Popups.RenderOverlay(view)
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	hint := ""
	if keys := m.Keys.KeysFor(keymap.ActionHelp); len(keys) > 0 {
		hint = s.Subtle.Render(keys[0] + " help ")
	}

	style := s.Muted
	switch m.StatusKind {
	case StatusWarning:
		style = s.Warning
	case StatusError:
		style = s.Error
	case StatusInfo:
	}
	width := m.Width - render.Width(hint) - 2
	return render.Row(" "+style.Render(render.Truncate(m.Status, width)), hint, m.Width)
}
