// Package playerbar renders the now-playing bar below the track list.
package playerbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tracklist/internal/icons"
	"github.com/llehouerou/tracklist/internal/playlist"
	"github.com/llehouerou/tracklist/internal/ui/render"
	"github.com/llehouerou/tracklist/internal/ui/styles"
)

// Height is the bar height including its border.
const Height = 3

// State holds everything needed to render the bar.
type State struct {
	Playing  bool
	Text     string // playlist.Render output
	Position int    // 1-based, 0 when nothing plays
	Total    int
}

// NewState captures the playlist's current track.
func NewState(p *playlist.Playlist) State {
	return State{
		Playing:  p.Current() != nil,
		Text:     render.Sanitize(p.Render()),
		Position: p.Position(),
		Total:    p.Len(),
	}
}

func barStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(0, 1)
}

// Render draws the bar at the given outer width:
//
//	<  ►  >  Currently playing: ... || Duration: 3:00       1/3
func Render(s State, width int) string {
	inner := max(width-4, 0) // border + padding

	if !s.Playing {
		msg := styles.T().S().Muted.Render(render.Truncate(s.Text, inner))
		return barStyle().Width(width - 2).Render(msg)
	}

	controls := icons.Controls()
	counter := fmt.Sprintf("%d/%d", s.Position, s.Total)
	textWidth := inner - lipgloss.Width(controls) - lipgloss.Width(counter) - 4

	var left string
	if textWidth >= 10 {
		left = styles.T().S().Controls.Render(controls) + "  " +
			styles.T().S().NowPlaying.Render(render.TruncateEllipsis(s.Text, textWidth))
	} else {
		left = styles.T().S().NowPlaying.Render(render.TruncateEllipsis(s.Text, max(inner-lipgloss.Width(counter)-1, 0)))
	}
	line := render.Row(left, styles.T().S().Muted.Render(counter), inner)

	return barStyle().Width(width - 2).Render(line)
}
