// Package headerbar renders the single-line title bar.
package headerbar

import (
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/tracklist/internal/playlist"
	"github.com/llehouerou/tracklist/internal/ui/render"
	"github.com/llehouerou/tracklist/internal/ui/styles"
)

// Height is the fixed height of the header bar.
const Height = 1

const title = "tracklist"

// Summary returns "3 tracks · 10:40" for p.
func Summary(p *playlist.Playlist) string {
	return english.Plural(p.Len(), "track", "") + " · " + playlist.FormatDuration(p.TotalLength())
}

// Render returns the header for the given width: gradient title on the
// left, playlist summary on the right.
func Render(p *playlist.Playlist, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T()
	left := " " + styles.Gradient(title, true, t.Primary, t.Secondary)
	right := t.S().Muted.Render(Summary(p)) + " "

	if render.Width(left)+render.Width(right) >= width {
		return render.Pad(left, width)
	}
	return render.Row(left, right, width)
}
