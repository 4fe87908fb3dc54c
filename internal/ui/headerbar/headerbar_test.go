package headerbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tracklist/internal/playlist"
	"github.com/llehouerou/tracklist/internal/ui/testutil"
)

func withTracks(t *testing.T, durations ...int) *playlist.Playlist {
	t.Helper()
	p := playlist.New("p")
	for _, d := range durations {
		tr, err := playlist.NewTrack("Song", "Artist", "Album", d)
		require.NoError(t, err)
		p.Add(tr)
	}
	return p
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name      string
		durations []int
		want      string
	}{
		{"empty", nil, "0 tracks · 0:00"},
		{"single", []int{180}, "1 track · 3:00"},
		{"several", []int{180, 240, 220}, "3 tracks · 10:40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summary(withTracks(t, tt.durations...)))
		})
	}
}

func TestRender(t *testing.T) {
	out := testutil.StripANSI(Render(withTracks(t, 180, 240), 60))

	assert.Equal(t, 60, testutil.MeasureWidth(out))
	assert.Contains(t, out, "tracklist")
	assert.Contains(t, out, "2 tracks · 7:00")
}

func TestRender_Narrow(t *testing.T) {
	assert.Empty(t, Render(withTracks(t, 180), 10))

	out := testutil.StripANSI(Render(withTracks(t, 180), 22))
	assert.Contains(t, out, "tracklist")
	assert.NotContains(t, out, "track ·")
	assert.Equal(t, 22, testutil.MeasureWidth(out))
}
