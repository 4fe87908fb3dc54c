package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tracklist/internal/app/handler"
	"github.com/llehouerou/tracklist/internal/ui/action"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Popups.SetSize(msg.Width, msg.Height)
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case action.Msg:
		cmd := m.handleAction(msg)
		return m, cmd
	}

	return m, m.Popups.Update(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return m, cmd
	}

	_, cmd := handler.Chain(m.Keys.Resolve(msg.String()),
		m.handleGlobalKeys,
		m.handlePlaybackKeys,
		m.handleEditKeys,
	)
	return m, cmd
}
