// Package app wires the playlist to the terminal UI: key dispatch, popups,
// undo history and layout.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tracklist/internal/app/popupctl"
	"github.com/llehouerou/tracklist/internal/keymap"
	"github.com/llehouerou/tracklist/internal/playlist"
	"github.com/llehouerou/tracklist/internal/ui/tracklist"
)

// StatusKind selects how the status line is styled.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusWarning
	StatusError
)

// Model is the root bubbletea model.
type Model struct {
	Playlist   *playlist.Playlist
	History    *playlist.History
	Keys       *keymap.Resolver
	Popups     *popupctl.Manager
	Tracks     tracklist.Model
	Status     string
	StatusKind StatusKind
	Width      int
	Height     int
}

// New builds the model around p. The initial state of p is the first
// undo snapshot.
func New(p *playlist.Playlist, historySize int) Model {
	m := Model{
		Playlist: p,
		History:  playlist.NewHistory(historySize),
		Keys:     keymap.NewResolver(keymap.All),
		Popups:   popupctl.New(),
		Tracks:   tracklist.New(p),
	}
	m.Tracks.SetFocused(true)
	m.History.Push(p.Snapshot())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) setStatus(kind StatusKind, msg string) {
	m.Status = msg
	m.StatusKind = kind
}

func (m *Model) clearStatus() {
	m.setStatus(StatusInfo, "")
}
