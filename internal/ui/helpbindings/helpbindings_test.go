package helpbindings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tracklist/internal/ui/action"
	"github.com/llehouerou/tracklist/internal/ui/testutil"
)

func newHelp(width, height int) *testutil.PopupHarness {
	m := New()
	m.SetSize(width, height)
	return testutil.NewPopupHarness(&m)
}

func TestHelp_ListsEveryContext(t *testing.T) {
	h := newHelp(80, 60)
	view := h.View()

	for _, want := range []string{"Help", "Global", "Playback", "Playlist", "Next track", "Undo", "q, ctrl+c"} {
		assert.Contains(t, view, want)
	}
	assert.Contains(t, view, "?/esc close")
	assert.NotContains(t, view, "j/k scroll")
}

func TestHelp_Close(t *testing.T) {
	for _, key := range []string{"?", "esc", "q"} {
		t.Run(key, func(t *testing.T) {
			h := newHelp(80, 60)
			h.Press(key)

			msg, ok := h.LastMsg().(action.Msg)
			require.True(t, ok)
			assert.Equal(t, Close{}, msg.Action)
		})
	}
}

func TestHelp_ScrollsWhenShort(t *testing.T) {
	h := newHelp(80, 12)
	assert.Contains(t, h.View(), "j/k scroll")
	assert.Contains(t, h.View(), "Global")

	for range 50 {
		h.Press("j")
	}
	m, ok := h.Popup().(*Model)
	require.True(t, ok)
	assert.Equal(t, m.maxOffset(), m.offset)
	assert.NotContains(t, h.View(), "Global")

	for range 50 {
		h.Press("k")
	}
	assert.Zero(t, m.offset)
}

func TestHelp_EmptyWithoutSize(t *testing.T) {
	m := New()
	assert.Empty(t, m.View())
}
