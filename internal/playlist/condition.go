package playlist

// Condition is the outcome of a playlist operation. Anything other than OK
// is advisory: the playlist is left unchanged and the caller may display
// the message or ignore it.
type Condition int

const (
	OK Condition = iota
	NoCurrent
	NoNext
	NoPrevious
	InvalidInsert
	InvalidTrack
	NotFound
)

var conditionMessages = map[Condition]string{
	OK:            "",
	NoCurrent:     "No track currently playing.",
	NoNext:        "No next song available.",
	NoPrevious:    "No previous song available.",
	InvalidInsert: "Invalid node or track. Track not added.",
	InvalidTrack:  "Invalid track. Track not added.",
	NotFound:      "Track not found in playlist.",
}

// Ok reports whether the operation was applied.
func (c Condition) Ok() bool {
	return c == OK
}

// String returns the user-facing message, empty for OK.
func (c Condition) String() string {
	return conditionMessages[c]
}
