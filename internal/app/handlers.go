package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tracklist/internal/app/handler"
	"github.com/llehouerou/tracklist/internal/app/popupctl"
	"github.com/llehouerou/tracklist/internal/icons"
	"github.com/llehouerou/tracklist/internal/keymap"
	"github.com/llehouerou/tracklist/internal/playlist"
)

func (m *Model) handleGlobalKeys(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		return handler.Handled(m.Popups.ShowHelp())
	case keymap.ActionRename:
		return handler.Handled(m.Popups.ShowTextInput(popupctl.InputRename, "Rename playlist", m.Playlist.Name()))
	}
	return handler.NotHandled
}

// Moving the cursor is not recorded in the undo history.
func (m *Model) handlePlaybackKeys(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionNextTrack:
		m.report(m.Playlist.Next(), false)
	case keymap.ActionPrevTrack:
		m.report(m.Playlist.Previous(), false)
	case keymap.ActionShuffle:
		if m.Playlist.Len() < 2 {
			m.setStatus(StatusWarning, "Nothing to shuffle.")
			return handler.HandledNoCmd
		}
		m.Playlist.Shuffle()
		m.commit()
		m.setStatus(StatusInfo, icons.Shuffle()+" Shuffled "+m.Playlist.Name()+".")
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) handleEditKeys(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionAdd:
		return handler.Handled(m.Popups.ShowTrackForm(m.Playlist.Current() != nil))
	case keymap.ActionDelete:
		removed := m.Playlist.Current()
		if m.report(m.Playlist.RemoveCurrent(), true) {
			m.setStatus(StatusInfo, fmt.Sprintf("Removed %q.", removed.Name()))
		}
	case keymap.ActionUndo:
		m.restore(m.History.Undo, "Undone.", "Nothing to undo.")
	case keymap.ActionRedo:
		m.restore(m.History.Redo, "Redone.", "Nothing to redo.")
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// report shows a failed condition in the status line. Applied operations
// clear the status and, when record is set, push an undo snapshot.
// Unrecorded moves rewrite the cursor of the state the history is on, so
// undoing the next edit puts the cursor back where the edit happened.
func (m *Model) report(c playlist.Condition, record bool) bool {
	if !c.Ok() {
		m.setStatus(StatusWarning, c.String())
		return false
	}
	m.clearStatus()
	if record {
		m.commit()
	} else {
		m.History.UpdateCurrent(m.Playlist.Snapshot())
		m.Tracks.Follow()
	}
	return true
}

// commit records the playlist state after a successful change.
func (m *Model) commit() {
	m.History.Push(m.Playlist.Snapshot())
	m.Tracks.Follow()
}

func (m *Model) restore(step func() (playlist.Snapshot, bool), done, empty string) {
	s, ok := step()
	if !ok {
		m.setStatus(StatusWarning, empty)
		return
	}
	m.Playlist.Restore(s)
	m.Tracks.Follow()
	m.setStatus(StatusInfo, done)
}
