package textinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tracklist/internal/ui/action"
	"github.com/llehouerou/tracklist/internal/ui/testutil"
)

const renameContext = "rename"

func newPrompt(initial string) *testutil.PopupHarness {
	m := New()
	m.Start("Rename playlist", initial, renameContext, 80, 24)
	return testutil.NewPopupHarness(&m)
}

func result(t *testing.T, h *testutil.PopupHarness) Result {
	t.Helper()
	msg, ok := h.LastMsg().(action.Msg)
	require.True(t, ok, "expected action.Msg, got %T", h.LastMsg())
	assert.Equal(t, source, msg.Source)
	r, ok := msg.Action.(Result)
	require.True(t, ok, "expected Result, got %T", msg.Action)
	return r
}

func TestPrompt_Type(t *testing.T) {
	h := newPrompt("")
	h.Type("Road Trip")
	h.Press("enter")

	r := result(t, h)
	assert.Equal(t, "Road Trip", r.Text)
	assert.False(t, r.Canceled)
	assert.Equal(t, renameContext, r.Context)
}

func TestPrompt_InitialTextAndBackspace(t *testing.T) {
	h := newPrompt("My Playlist")
	for range len("Playlist") {
		h.Press("backspace")
	}
	h.Type("Mix")
	h.Press("enter")

	assert.Equal(t, "My Mix", result(t, h).Text)
}

func TestPrompt_TrimsSpaces(t *testing.T) {
	h := newPrompt("")
	h.Type("  Chill  ")
	h.Press("enter")

	assert.Equal(t, "Chill", result(t, h).Text)
}

func TestPrompt_Cancel(t *testing.T) {
	h := newPrompt("My Playlist")
	h.Type("xyz")
	h.Press("esc")

	r := result(t, h)
	assert.True(t, r.Canceled)
	assert.Equal(t, renameContext, r.Context)
}

func TestPrompt_IgnoresTab(t *testing.T) {
	h := newPrompt("")
	h.Type("a")
	h.Press("tab")
	h.Type("b")
	h.Press("enter")

	assert.Equal(t, "ab", result(t, h).Text)
}

func TestPrompt_View(t *testing.T) {
	h := newPrompt("Summer")

	assert.Contains(t, h.View(), "Rename playlist")
	assert.Contains(t, h.View(), "> Summer")
	assert.Contains(t, h.View(), "Enter: confirm")
}

func TestPrompt_EmptyViewWithoutSize(t *testing.T) {
	m := New()
	m.Start("Title", "", nil, 0, 0)

	assert.Empty(t, m.View())
}
