//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tracklist/internal/playlist"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return writeNamed(t, "config.toml", content)
}

func writeNamed(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 4 {
		t.Fatalf("getConfigPaths() returned %d paths, want 4", len(paths))
	}

	// Local files come last so they win
	if got := paths[2:]; got[0] != "config.toml" || got[1] != "config.yaml" {
		t.Errorf("local config paths = %q, want config.toml then config.yaml", got)
	}

	if filepath.Base(filepath.Dir(paths[0])) != appName {
		t.Errorf("first config path = %q, want it under a %q directory", paths[0], appName)
	}
}

func TestLoadFrom_NoFiles(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "My Playlist", cfg.PlaylistName)
	assert.Equal(t, DefaultTracks, cfg.Tracks)
	assert.Equal(t, 50, cfg.GetHistorySize())
}

func TestLoadFrom_Values(t *testing.T) {
	path := writeConfig(t, `
playlist_name = "Road Trip"
icons = "unicode"
history_size = 10
shuffle_seed = 42

[[tracks]]
name = "Intro"
artist = "Band"
album = "First"
duration = 95

[[tracks]]
name = "Outro"
artist = "Band"
album = "First"
duration = 120
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "Road Trip", cfg.PlaylistName)
	assert.Equal(t, "unicode", cfg.Icons)
	assert.Equal(t, 10, cfg.GetHistorySize())
	assert.Equal(t, uint64(42), cfg.ShuffleSeed)
	require.Len(t, cfg.Tracks, 2)
	assert.Equal(t, TrackConfig{Name: "Intro", Artist: "Band", Album: "First", Duration: 95}, cfg.Tracks[0])

	tracks, err := cfg.SeedTracks()
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, "Outro", tracks[1].Name())
	assert.Equal(t, 120, tracks[1].Duration())
}

func TestLoadFrom_YAML(t *testing.T) {
	path := writeNamed(t, "config.yaml", `
playlist_name: Gym
history_size: 5
tracks:
  - name: Stronger
    artist: Kanye West
    album: Graduation
    duration: 312
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "Gym", cfg.PlaylistName)
	assert.Equal(t, 5, cfg.GetHistorySize())
	require.Len(t, cfg.Tracks, 1)
	assert.Equal(t, TrackConfig{Name: "Stronger", Artist: "Kanye West", Album: "Graduation", Duration: 312}, cfg.Tracks[0])
}

func TestLoadFrom_TOMLThenYAML(t *testing.T) {
	first := writeConfig(t, "playlist_name = \"First\"\nicons = \"unicode\"\n")
	second := writeNamed(t, "override.yml", "playlist_name: Second\n")

	cfg, err := LoadFrom(first, second)
	require.NoError(t, err)

	assert.Equal(t, "Second", cfg.PlaylistName)
	assert.Equal(t, "unicode", cfg.Icons, "keys missing from the later file are kept")
}

func TestLoadFrom_MalformedYAML(t *testing.T) {
	path := writeNamed(t, "config.yaml", "tracks: [\n")

	_, err := LoadFrom(path)
	require.Error(t, err)
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	first := writeConfig(t, `playlist_name = "First"`)
	second := writeConfig(t, `playlist_name = "Second"`)

	cfg, err := LoadFrom(first, second)
	require.NoError(t, err)

	assert.Equal(t, "Second", cfg.PlaylistName)
}

func TestLoadFrom_EmptyTrackList(t *testing.T) {
	path := writeConfig(t, "tracks = []\n")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Empty(t, cfg.Tracks)
}

func TestLoadFrom_InvalidTrack(t *testing.T) {
	path := writeConfig(t, `
[[tracks]]
name = "Good"
artist = "Band"
album = "First"
duration = 95

[[tracks]]
name = "Bad"
artist = "Band"
album = "First"
duration = 0
`)

	_, err := LoadFrom(path)
	require.Error(t, err)
	require.ErrorIs(t, err, playlist.ErrValidation)
	assert.Contains(t, err.Error(), "tracks[1]")
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	path := writeConfig(t, "playlist_name = \n")

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestGetHistorySize(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		expected int
	}{
		{"zero uses default", 0, 50},
		{"negative uses default", -3, 50},
		{"custom value", 12, 12},
		{"upper bound", 500, 500},
		{"clamped above max", 10000, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{HistorySize: tt.size}
			if got := cfg.GetHistorySize(); got != tt.expected {
				t.Errorf("GetHistorySize() = %d, want %d", got, tt.expected)
			}
		})
	}
}
