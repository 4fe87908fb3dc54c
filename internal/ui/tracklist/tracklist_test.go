package tracklist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tracklist/internal/icons"
	"github.com/llehouerou/tracklist/internal/playlist"
	"github.com/llehouerou/tracklist/internal/ui/testutil"
)

func newPlaylist(t *testing.T, n int) *playlist.Playlist {
	t.Helper()
	p := playlist.New("Road Trip")
	for i := range n {
		tr, err := playlist.NewTrack(fmt.Sprintf("Song %02d", i+1), "Artist", "Album", 60+i)
		require.NoError(t, err)
		require.True(t, p.Add(tr).Ok())
	}
	return p
}

func TestView_ListsTracks(t *testing.T) {
	icons.Init("none")
	p := newPlaylist(t, 3)
	p.Next()
	m := New(p)
	m.SetSize(80, 10)

	view := m.View()
	lines := testutil.Lines(view)

	require.Len(t, lines, 10)
	assert.Contains(t, lines[1], "Road Trip")
	assert.Contains(t, lines[1], "2/3")
	assert.Contains(t, lines[3], "Song 01")
	assert.Contains(t, lines[4], "► 2  Song 02")
	assert.Contains(t, lines[4], "1:01")
	assert.NotContains(t, lines[3], "►")
	for _, line := range lines {
		assert.Equal(t, 80, testutil.MeasureWidth(line))
	}
}

func TestView_Empty(t *testing.T) {
	m := New(playlist.New("Empty"))
	m.SetSize(60, 8)

	view := testutil.StripANSI(m.View())

	assert.Contains(t, view, "0/0")
	assert.Contains(t, view, "Playlist is empty")
}

func TestView_NoSize(t *testing.T) {
	m := New(newPlaylist(t, 2))
	assert.Empty(t, m.View())
}

func TestFollow_KeepsCurrentVisible(t *testing.T) {
	p := newPlaylist(t, 20)
	m := New(p)
	m.SetSize(80, 8) // 4 rows

	for range 9 {
		p.Next()
	}
	m.Follow()
	assert.Equal(t, 7, m.Offset())
	assert.Contains(t, testutil.StripANSI(m.View()), "Song 10")

	for range 9 {
		p.Previous()
	}
	m.Follow()
	assert.Equal(t, 0, m.Offset())
}

func TestFollow_ClampsAfterRemoval(t *testing.T) {
	p := newPlaylist(t, 10)
	m := New(p)
	m.SetSize(80, 8)
	for range 9 {
		p.Next()
	}
	m.Follow()
	require.Equal(t, 6, m.Offset())

	for range 7 {
		p.RemoveCurrent()
	}
	m.Follow()

	assert.Equal(t, 0, m.Offset())
	assert.Equal(t, 3, p.Len())
}

func TestView_StripsControlCharacters(t *testing.T) {
	icons.Init("none")
	p := playlist.New("Mix")
	tr, err := playlist.NewTrack("Bad\x1b[31mName", "Artist", "Album", 60)
	require.NoError(t, err)
	p.Add(tr)

	m := New(p)
	m.SetSize(80, 10)
	view := m.View()

	assert.NotContains(t, view, "\x1b[31mName")
	assert.Contains(t, testutil.StripANSI(view), "Bad[31mName")
}
