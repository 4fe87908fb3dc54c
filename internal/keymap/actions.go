// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionHelp   Action = "help"
	ActionRename Action = "rename" // r - rename playlist

	// Playback actions
	ActionNextTrack Action = "next_track"
	ActionPrevTrack Action = "prev_track"
	ActionShuffle   Action = "shuffle"

	// Editing actions
	ActionAdd    Action = "add"    // a - add track next to the current one
	ActionDelete Action = "delete" // d - remove current track
	ActionUndo   Action = "undo"
	ActionRedo   Action = "redo"
)
