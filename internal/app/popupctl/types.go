package popupctl

// Type identifies a popup.
type Type int

const (
	None Type = iota
	Help
	TextInput
	TrackForm
)

// Priority lists popups from the one that receives keys first.
var Priority = []Type{Help, TextInput, TrackForm}

// RenderOrder lists popups from the bottom of the stack to the top.
var RenderOrder = []Type{TrackForm, TextInput, Help}

// InputMode tells the app what a text input result is for.
type InputMode int

const (
	InputNone InputMode = iota
	InputRename
)
