//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", "global", 3},
		{"playback context", "playback", 3},
		{"playlist context", "playlist", 4},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d",
					tt.context, len(result), tt.expectMinLength)
			}
			for _, b := range result {
				if b.Context != tt.context {
					t.Errorf("binding %v has context %q, want %q", b.Keys, b.Context, tt.context)
				}
			}
		})
	}
}

func TestAll_EveryContextListed(t *testing.T) {
	known := make(map[string]bool)
	for _, c := range Contexts {
		known[c] = true
	}
	for _, b := range All {
		if !known[b.Context] {
			t.Errorf("binding %v uses unlisted context %q", b.Keys, b.Context)
		}
		if b.Action == "" || len(b.Keys) == 0 || b.Description == "" {
			t.Errorf("incomplete binding: %+v", b)
		}
	}
}

func TestAll_NoDuplicateKeys(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %s and %s", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestSingleLetterKeys(t *testing.T) {
	r := NewResolver(All)

	tests := map[string]Action{
		"n": ActionNextTrack,
		"p": ActionPrevTrack,
		"a": ActionAdd,
		"d": ActionDelete,
		"s": ActionShuffle,
		"q": ActionQuit,
	}
	for key, want := range tests {
		if got := r.Resolve(key); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", key, got, want)
		}
	}
}
