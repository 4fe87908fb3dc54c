package playlist

import (
	"fmt"
	"time"
)

// Describe formats a track for the now-playing line.
func Describe(t *Track) string {
	return fmt.Sprintf("Currently playing: %s by %s || Album: %s || Duration: %s",
		t.Name(), t.ArtistName(), t.AlbumName(), FormatDuration(t.Length()))
}

// FormatDuration formats a duration as M:SS.
func FormatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}

// TotalLength returns the summed length of all tracks.
func (p *Playlist) TotalLength() time.Duration {
	var total time.Duration
	for n := range p.tracks.All() {
		total += n.Value().Length()
	}
	return total
}
