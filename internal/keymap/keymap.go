package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "playlist"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionRename, []string{"r"}, "Rename playlist", "global"},

	// Playback
	{ActionNextTrack, []string{"n", "right", "pgdown"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"p", "left", "pgup"}, "Previous track", "playback"},
	{ActionShuffle, []string{"s"}, "Shuffle", "playback"},

	// Playlist editing
	{ActionAdd, []string{"a"}, "Add track before/after current", "playlist"},
	{ActionDelete, []string{"d", "delete"}, "Remove current track", "playlist"},
	{ActionUndo, []string{"u", "ctrl+z"}, "Undo", "playlist"},
	{ActionRedo, []string{"U", "ctrl+y"}, "Redo", "playlist"},
}

// Contexts lists binding contexts in display order.
var Contexts = []string{"global", "playback", "playlist"}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
