package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tracklist/internal/app/popupctl"
	"github.com/llehouerou/tracklist/internal/errmsg"
	"github.com/llehouerou/tracklist/internal/playlist"
	"github.com/llehouerou/tracklist/internal/ui/action"
	"github.com/llehouerou/tracklist/internal/ui/helpbindings"
	"github.com/llehouerou/tracklist/internal/ui/textinput"
	"github.com/llehouerou/tracklist/internal/ui/trackform"
)

var errEmptyName = errors.New("name cannot be empty")

func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case helpbindings.Close:
		m.Popups.Hide(popupctl.Help)
	case textinput.Result:
		m.handleTextInputResult(a)
	case trackform.Result:
		m.handleTrackFormResult(a)
	}
	return nil
}

func (m *Model) handleTextInputResult(r textinput.Result) {
	mode := m.Popups.InputMode()
	m.Popups.Hide(popupctl.TextInput)
	if r.Canceled || mode != popupctl.InputRename {
		return
	}
	if r.Text == "" {
		m.setStatus(StatusError, errmsg.Format(errmsg.OpPlaylistRename, errEmptyName))
		return
	}
	if r.Text == m.Playlist.Name() {
		return
	}
	m.Playlist.SetName(r.Text)
	m.commit()
	m.setStatus(StatusInfo, fmt.Sprintf("Renamed playlist to %q.", r.Text))
}

func (m *Model) handleTrackFormResult(r trackform.Result) {
	m.Popups.Hide(popupctl.TrackForm)
	if r.Canceled {
		return
	}
	if r.Err != nil {
		m.setStatus(StatusError, errmsg.Format(r.Op, r.Err))
		return
	}

	var c playlist.Condition
	switch r.Placement {
	case trackform.PlaceBefore:
		c = m.Playlist.InsertBefore(m.Playlist.CurrentNode(), r.Track)
	case trackform.PlaceAfter:
		c = m.Playlist.InsertAfter(m.Playlist.CurrentNode(), r.Track)
	default:
		c = m.Playlist.Add(r.Track)
	}
	if m.report(c, true) {
		m.setStatus(StatusInfo, fmt.Sprintf("Added %q.", r.Track.Name()))
	}
}
