// Package tracklist renders the playlist panel: every track in order with
// the current one highlighted and kept in view.
package tracklist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/llehouerou/tracklist/internal/icons"
	"github.com/llehouerou/tracklist/internal/playlist"
	"github.com/llehouerou/tracklist/internal/ui"
	"github.com/llehouerou/tracklist/internal/ui/render"
	"github.com/llehouerou/tracklist/internal/ui/styles"
)

// Model is the track list panel. It reads the playlist on every View and
// only owns the scroll offset.
type Model struct {
	ui.Base
	playlist *playlist.Playlist
	offset   int
}

// New creates a panel showing p.
func New(p *playlist.Playlist) Model {
	return Model{playlist: p}
}

// SetSize sets the outer panel size and re-follows the current track.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.Follow()
}

// Offset returns the index of the first visible row.
func (m Model) Offset() int {
	return m.offset
}

func (m Model) rows() int {
	return m.ListHeight(ui.PanelOverhead)
}

// Follow scrolls so the current track is visible with ui.ScrollMargin
// rows around it. Call it after any playlist change.
func (m *Model) Follow() {
	rows := m.rows()
	n := m.playlist.Len()
	if rows <= 0 || n == 0 {
		m.offset = 0
		return
	}
	margin := min(ui.ScrollMargin, (rows-1)/2)

	if pos := m.playlist.Position() - 1; pos >= 0 {
		if pos < m.offset+margin {
			m.offset = pos - margin
		}
		if pos >= m.offset+rows-margin {
			m.offset = pos - rows + margin + 1
		}
	}
	m.offset = max(min(m.offset, n-rows), 0)
}

// View renders the bordered panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	inner := m.Width() - ui.BorderHeight

	content := m.header(inner) + "\n" +
		styles.T().S().Subtle.Render(render.Separator(inner)) + "\n" +
		m.body(inner)

	return styles.PanelStyle(m.IsFocused()).Width(inner).Render(content)
}

func (m Model) header(width int) string {
	title := icons.FormatPlaylist(render.Sanitize(m.playlist.Name()))
	count := fmt.Sprintf("%d/%d", m.playlist.Position(), m.playlist.Len())

	title = render.TruncateEllipsis(title, max(width-len(count)-1, 0))
	return render.Row(styles.T().S().Title.Render(title), styles.T().S().Muted.Render(count), width)
}

func (m Model) body(width int) string {
	rows := m.rows()
	tracks := m.playlist.Tracks()
	current := m.playlist.Position() - 1

	if len(tracks) == 0 {
		lines := make([]string, max(rows, 1))
		msg := render.TruncateEllipsis("Playlist is empty. Press a to add a track.", width)
		lines[0] = styles.T().S().Muted.Render(render.Center(msg, width))
		for i := 1; i < len(lines); i++ {
			lines[i] = render.Pad("", width)
		}
		return strings.Join(lines, "\n")
	}

	numWidth := len(strconv.Itoa(len(tracks)))
	lines := make([]string, 0, rows)
	for i := range rows {
		idx := m.offset + i
		if idx >= len(tracks) {
			lines = append(lines, render.Pad("", width))
			continue
		}
		lines = append(lines, renderTrack(tracks[idx], idx, numWidth, idx == current, width))
	}
	return strings.Join(lines, "\n")
}

// renderTrack lays out one row:
//
//	▶  2  New Divide       Linkin Park     Pop          4:00
func renderTrack(t *playlist.Track, idx, numWidth int, playing bool, width int) string {
	marker := "  "
	if playing {
		marker = render.Pad(icons.Play(), 2)
	}
	num := fmt.Sprintf("%*d  ", numWidth, idx+1)
	length := " " + playlist.FormatDuration(t.Length())

	cols := max(width-render.Width(marker)-len(num)-len(length), 0)
	nameW := cols * 2 / 5
	artistW := (cols - nameW) / 2
	albumW := cols - nameW - artistW

	line := marker + num +
		column(t.Name(), nameW) +
		column(t.ArtistName(), artistW) +
		column(t.AlbumName(), albumW) +
		length

	if playing {
		return styles.T().S().Playing.Render(line)
	}
	return styles.T().S().Base.Render(line)
}

// column fits s into w cells followed by a one-space gutter.
func column(s string, w int) string {
	if w <= 1 {
		return render.Pad("", w)
	}
	return render.Fit(render.Sanitize(s), w-1) + " "
}
