package playlist

import "github.com/llehouerou/tracklist/internal/sequence"

// Snapshot is a copy of a playlist's name, track order and cursor.
type Snapshot struct {
	Name    string
	Tracks  []*Track
	Current *Track // nil if nothing is current
}

// Snapshot captures the playlist state.
func (p *Playlist) Snapshot() Snapshot {
	return Snapshot{
		Name:    p.name,
		Tracks:  p.Tracks(),
		Current: p.Current(),
	}
}

// Restore replaces the playlist contents with s. The cursor goes to the
// first node holding s.Current. Nodes handed out before the restore no
// longer belong to the playlist.
func (p *Playlist) Restore(s Snapshot) {
	p.name = s.Name
	p.tracks = sequence.New[*Track]()
	p.current = nil
	for _, t := range s.Tracks {
		n := sequence.NewNode(t)
		_ = p.tracks.InsertLast(n)
		if p.current == nil && t == s.Current {
			p.current = n
		}
	}
	// Keep the cursor invariant even when s.Current is not in s.Tracks.
	if p.current == nil && !p.tracks.IsEmpty() {
		p.current, _ = p.tracks.First()
	}
}

// History maintains a history of playlist states for undo/redo.
type History struct {
	states  []Snapshot
	current int // index of current state (-1 = before any state)
	maxSize int
}

// NewHistory creates a new history with the given maximum size.
func NewHistory(maxSize int) *History {
	return &History{
		states:  make([]Snapshot, 0, maxSize),
		current: -1,
		maxSize: maxSize,
	}
}

// Push saves a snapshot.
// Clears any redo states and trims if over limit.
func (h *History) Push(s Snapshot) {
	s = copySnapshot(s)

	// Clear redo states (everything after current)
	if h.current < len(h.states)-1 {
		h.states = h.states[:h.current+1]
	}

	h.states = append(h.states, s)
	h.current = len(h.states) - 1

	if len(h.states) > h.maxSize {
		excess := len(h.states) - h.maxSize
		h.states = h.states[excess:]
		h.current -= excess
	}
}

// UpdateCurrent overwrites the state the history is positioned on, so a
// later undo lands on what the playlist looked like just before the next
// edit. It is a no-op on an empty history.
func (h *History) UpdateCurrent(s Snapshot) {
	if h.current < 0 {
		return
	}
	h.states[h.current] = copySnapshot(s)
}

// Undo returns the previous state.
// Returns false if nothing to undo.
func (h *History) Undo() (Snapshot, bool) {
	if !h.CanUndo() {
		return Snapshot{}, false
	}
	h.current--
	return copySnapshot(h.states[h.current]), true
}

// Redo returns the next state.
// Returns false if nothing to redo.
func (h *History) Redo() (Snapshot, bool) {
	if !h.CanRedo() {
		return Snapshot{}, false
	}
	h.current++
	return copySnapshot(h.states[h.current]), true
}

// CanUndo returns true if there is a previous state to undo to.
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo returns true if there is a next state to redo to.
func (h *History) CanRedo() bool {
	return h.current < len(h.states)-1
}

// copySnapshot copies the track slice; the tracks themselves are shared.
func copySnapshot(s Snapshot) Snapshot {
	tracks := make([]*Track, len(s.Tracks))
	copy(tracks, s.Tracks)
	s.Tracks = tracks
	return s
}
