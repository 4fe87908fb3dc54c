package playlist

import (
	"errors"
	"fmt"
	"time"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("invalid track field")

// ValidationError reports a rejected Track field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// MaxDuration is the longest accepted track, in seconds (100 hours).
const MaxDuration = 100 * 60 * 60

// Track is a single playlist entry. Fields are validated on construction
// and on every setter, so a Track never holds an invalid value.
type Track struct {
	name     string
	artist   string
	album    string
	duration int // seconds
}

// NewTrack creates a validated track. Duration is in seconds.
func NewTrack(name, artist, album string, duration int) (*Track, error) {
	t := &Track{}
	if err := t.SetName(name); err != nil {
		return nil, err
	}
	if err := t.SetArtistName(artist); err != nil {
		return nil, err
	}
	if err := t.SetAlbumName(album); err != nil {
		return nil, err
	}
	if err := t.SetDuration(duration); err != nil {
		return nil, err
	}
	return t, nil
}

// Name returns the track title.
func (t *Track) Name() string { return t.name }

// ArtistName returns the performing artist.
func (t *Track) ArtistName() string { return t.artist }

// AlbumName returns the album the track belongs to.
func (t *Track) AlbumName() string { return t.album }

// Duration returns the track length in seconds.
func (t *Track) Duration() int { return t.duration }

// Length returns the track length as a time.Duration.
func (t *Track) Length() time.Duration {
	return time.Duration(t.duration) * time.Second
}

// SetName replaces the title. An empty name is rejected.
func (t *Track) SetName(name string) error {
	if name == "" {
		return &ValidationError{Field: "name", Reason: "cannot be empty"}
	}
	t.name = name
	return nil
}

// SetArtistName replaces the artist. An empty name is rejected.
func (t *Track) SetArtistName(artist string) error {
	if artist == "" {
		return &ValidationError{Field: "artist name", Reason: "cannot be empty"}
	}
	t.artist = artist
	return nil
}

// SetAlbumName replaces the album. An empty name is rejected.
func (t *Track) SetAlbumName(album string) error {
	if album == "" {
		return &ValidationError{Field: "album name", Reason: "cannot be empty"}
	}
	t.album = album
	return nil
}

// SetDuration replaces the length in seconds, which must lie in
// 1..MaxDuration.
func (t *Track) SetDuration(seconds int) error {
	if seconds < 1 {
		return &ValidationError{Field: "duration", Reason: "must be at least 1 second"}
	}
	if seconds > MaxDuration {
		return &ValidationError{Field: "duration", Reason: "must be at most 100 hours"}
	}
	t.duration = seconds
	return nil
}
