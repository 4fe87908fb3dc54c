package playerbar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tracklist/internal/icons"
	"github.com/llehouerou/tracklist/internal/playlist"
	"github.com/llehouerou/tracklist/internal/ui/testutil"
)

func newPlaylist(t *testing.T) *playlist.Playlist {
	t.Helper()
	p := playlist.New("Test")
	for _, name := range []string{"Closer", "New Divide"} {
		tr, err := playlist.NewTrack(name, "Artist", "Album", 185)
		require.NoError(t, err)
		require.True(t, p.Add(tr).Ok())
	}
	return p
}

func TestNewState(t *testing.T) {
	p := newPlaylist(t)
	p.Next()

	s := NewState(p)

	assert.True(t, s.Playing)
	assert.Equal(t, 2, s.Position)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, "Currently playing: New Divide by Artist || Album: Album || Duration: 3:05", s.Text)
}

func TestNewState_Empty(t *testing.T) {
	s := NewState(playlist.New("Empty"))

	assert.False(t, s.Playing)
	assert.Equal(t, playlist.NoCurrent.String(), s.Text)
}

func TestRender_Playing(t *testing.T) {
	icons.Init("none")
	out := testutil.StripANSI(Render(NewState(newPlaylist(t)), 120))
	lines := testutil.Lines(out)

	require.Len(t, lines, Height)
	assert.Contains(t, lines[1], "<  ►  >")
	assert.Contains(t, lines[1], "Currently playing: Closer by Artist")
	assert.True(t, strings.HasSuffix(strings.TrimRight(lines[1], " │"), "1/2"))
	for _, line := range lines {
		assert.Equal(t, 120, testutil.MeasureWidth(line))
	}
}

func TestRender_NotPlaying(t *testing.T) {
	out := testutil.StripANSI(Render(NewState(playlist.New("Empty")), 60))

	assert.Contains(t, out, "No track currently playing.")
	assert.NotContains(t, out, "►")
}

func TestRender_Narrow(t *testing.T) {
	icons.Init("none")
	out := testutil.StripANSI(Render(NewState(newPlaylist(t)), 24))

	assert.NotContains(t, out, "►", "controls are dropped when space runs out")
	assert.Contains(t, out, "1/2")
	for _, line := range testutil.Lines(out) {
		assert.Equal(t, 24, testutil.MeasureWidth(line))
	}
}
