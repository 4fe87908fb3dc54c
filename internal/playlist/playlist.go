package playlist

import (
	"math/rand/v2"

	"github.com/llehouerou/tracklist/internal/sequence"
)

// Node is a playlist position. Callers get nodes from CurrentNode and pass
// them back as anchors for InsertBefore and InsertAfter.
type Node = sequence.Node[*Track]

// Playlist holds an ordered collection of tracks and a cursor on the
// current one. The cursor is nil only when the playlist is empty.
type Playlist struct {
	name    string
	tracks  *sequence.List[*Track]
	current *Node
	intn    func(n int) int
}

// Option configures a Playlist.
type Option func(*Playlist)

// WithRand sets the random source used by Shuffle.
func WithRand(r *rand.Rand) Option {
	return func(p *Playlist) {
		p.intn = r.IntN
	}
}

// New creates an empty playlist.
func New(name string, opts ...Option) *Playlist {
	p := &Playlist{
		name:   name,
		tracks: sequence.New[*Track](),
		intn:   rand.IntN,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Playlist) Name() string {
	return p.name
}

func (p *Playlist) SetName(name string) {
	p.name = name
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return p.tracks.Len()
}

// IsEmpty returns true if the playlist has no tracks.
func (p *Playlist) IsEmpty() bool {
	return p.tracks.IsEmpty()
}

// Current returns the track under the cursor, or nil if empty.
func (p *Playlist) Current() *Track {
	if p.current == nil {
		return nil
	}
	return p.current.Value()
}

// CurrentNode returns the cursor node, or nil if empty.
func (p *Playlist) CurrentNode() *Node {
	return p.current
}

// Position returns the 1-based position of the cursor, 0 if empty.
func (p *Playlist) Position() int {
	if p.current == nil {
		return 0
	}
	i := 0
	for n := range p.tracks.All() {
		i++
		if n == p.current {
			return i
		}
	}
	return 0
}

// Tracks returns the tracks in playlist order.
func (p *Playlist) Tracks() []*Track {
	return p.tracks.Values()
}

// HasNext returns true if there's a track after the current one.
func (p *Playlist) HasNext() bool {
	return p.tracks.HasNext(p.current)
}

// HasPrevious returns true if there's a track before the current one.
func (p *Playlist) HasPrevious() bool {
	return p.tracks.HasPrev(p.current)
}

// Add appends a track. The first track added to an empty playlist becomes
// the current one.
func (p *Playlist) Add(t *Track) Condition {
	if t == nil {
		return InvalidTrack
	}
	n := sequence.NewNode(t)
	if err := p.tracks.InsertLast(n); err != nil {
		return InvalidTrack
	}
	if p.current == nil {
		p.current = n
	}
	return OK
}

// Remove removes the first node holding t, compared by identity.
// Removing the current track moves the cursor like RemoveCurrent does.
func (p *Playlist) Remove(t *Track) Condition {
	if t == nil {
		return InvalidTrack
	}
	var match *Node
	for n := range p.tracks.All() {
		if n.Value() == t {
			match = n
			break
		}
	}
	if match == nil {
		return NotFound
	}
	p.removeNode(match)
	return OK
}

// Next moves the cursor one track forward.
func (p *Playlist) Next() Condition {
	if p.current == nil {
		return NoCurrent
	}
	next, err := p.tracks.Next(p.current)
	if err != nil {
		return NoNext
	}
	p.current = next
	return OK
}

// Previous moves the cursor one track back.
func (p *Playlist) Previous() Condition {
	if p.current == nil {
		return NoCurrent
	}
	prev, err := p.tracks.Prev(p.current)
	if err != nil {
		return NoPrevious
	}
	p.current = prev
	return OK
}

// InsertBefore inserts t in front of anchor. When anchor is the current
// node the cursor moves to the inserted track.
func (p *Playlist) InsertBefore(anchor *Node, t *Track) Condition {
	return p.insert(anchor, t, p.tracks.InsertBefore)
}

// InsertAfter inserts t right after anchor. When anchor is the current
// node the cursor moves to the inserted track.
func (p *Playlist) InsertAfter(anchor *Node, t *Track) Condition {
	return p.insert(anchor, t, p.tracks.InsertAfter)
}

func (p *Playlist) insert(anchor *Node, t *Track, splice func(anchor, n *Node) error) Condition {
	if anchor == nil || t == nil {
		return InvalidInsert
	}
	n := sequence.NewNode(t)
	if err := splice(anchor, n); err != nil {
		return InvalidInsert
	}
	if anchor == p.current {
		p.current = n
	}
	return OK
}

// RemoveCurrent removes the current track. The cursor moves to the next
// track, else the previous one, else nil.
func (p *Playlist) RemoveCurrent() Condition {
	if p.current == nil {
		return NoCurrent
	}
	p.removeNode(p.current)
	return OK
}

// removeNode unlinks n, re-anchoring the cursor first when n is current.
func (p *Playlist) removeNode(n *Node) {
	if n == p.current {
		// Neighbors must be read while n is still linked.
		var successor *Node
		if next, err := p.tracks.Next(n); err == nil {
			successor = next
		} else if prev, err := p.tracks.Prev(n); err == nil {
			successor = prev
		}
		p.current = successor
	}
	_ = p.tracks.Remove(n)
}

// Shuffle reorders the tracks uniformly at random. The cursor stays on
// the same track, which usually ends up at a different position.
func (p *Playlist) Shuffle() {
	nodes := make([]*Node, 0, p.tracks.Len())
	for n := range p.tracks.All() {
		nodes = append(nodes, n)
	}
	for i := len(nodes) - 1; i > 0; i-- {
		j := p.intn(i + 1)
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	p.relink(nodes)
}

// relink rebuilds the chain from nodes, reusing them so the cursor stays
// valid.
func (p *Playlist) relink(nodes []*Node) {
	for _, n := range nodes {
		_ = p.tracks.Remove(n)
	}
	for _, n := range nodes {
		_ = p.tracks.InsertLast(n)
	}
}

// Render describes the current track. It has no side effects; styling is
// up to the caller.
func (p *Playlist) Render() string {
	t := p.Current()
	if t == nil {
		return NoCurrent.String()
	}
	return Describe(t)
}
