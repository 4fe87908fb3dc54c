// Package icons holds the glyphs used by the interface. The set is picked
// once at startup from the "icons" config key.
package icons

// Style selects a glyph set.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

type set struct {
	playlist string // prefix, includes its trailing space
	prev     string
	play     string
	next     string
	shuffle  string
}

var sets = map[Style]set{
	StyleNerd: {
		playlist: "\U000F0CB8 ", // nf-md-playlist_music
		prev:     "\U000F04AE",  // nf-md-skip_previous
		play:     "\U000F040A",  // nf-md-play
		next:     "\U000F04AD",  // nf-md-skip_next
		shuffle:  "\U000F049F",  // nf-md-shuffle
	},
	StyleUnicode: {
		playlist: "📋 ",
		prev:     "⏮",
		play:     "▶",
		next:     "⏭",
		shuffle:  "🔀",
	},
	StyleNone: {
		prev:    "<",
		play:    "►",
		next:    ">",
		shuffle: "[S]",
	},
}

var current = sets[StyleNone]

// Init selects the glyph set. Unknown styles fall back to StyleNone.
func Init(style string) {
	s, ok := sets[Style(style)]
	if !ok {
		s = sets[StyleNone]
	}
	current = s
}

// FormatPlaylist prefixes a playlist name with its icon.
func FormatPlaylist(name string) string {
	return current.playlist + name
}

// Controls returns the transport glyphs shown next to the playing track.
func Controls() string {
	return current.prev + "  " + current.play + "  " + current.next
}

// Play returns the marker for the current row.
func Play() string { return current.play }

// Shuffle returns the shuffle glyph.
func Shuffle() string { return current.shuffle }
