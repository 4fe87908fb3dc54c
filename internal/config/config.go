package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/tracklist/internal/playlist"
)

const (
	appName            = "tracklist"
	defaultName        = "My Playlist"
	defaultHistorySize = 50
	maxHistorySize     = 500
)

type Config struct {
	PlaylistName string        `koanf:"playlist_name"`
	Icons        string        `koanf:"icons"`        // "nerd", "unicode", or "none"
	HistorySize  int           `koanf:"history_size"` // undo steps kept (1-500, default: 50)
	ShuffleSeed  uint64        `koanf:"shuffle_seed"` // 0 = random
	Tracks       []TrackConfig `koanf:"tracks"`       // tracks loaded at startup
}

// TrackConfig describes one seed track. Duration is in seconds.
type TrackConfig struct {
	Name     string `koanf:"name"`
	Artist   string `koanf:"artist"`
	Album    string `koanf:"album"`
	Duration int    `koanf:"duration"`
}

// DefaultTracks is used when the config does not set tracks.
var DefaultTracks = []TrackConfig{
	{Name: "Closer", Artist: "Chainsmokers", Album: "Summer Album", Duration: 180},
	{Name: "New Divide", Artist: "Linkin Park", Album: "Pop", Duration: 240},
	{Name: "Lonely", Artist: "Akon", Album: "Old School", Duration: 220},
}

// Load reads the config files in priority order, then any extra files.
func Load(extra ...string) (*Config, error) {
	return LoadFrom(append(getConfigPaths(), extra...)...)
}

// LoadFrom reads the given config files; later files override earlier
// ones. Missing files are skipped. Files ending in .yaml or .yml are
// parsed as YAML, everything else as TOML.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		PlaylistName: defaultName,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if !k.Exists("tracks") {
		cfg.Tracks = append([]TrackConfig(nil), DefaultTracks...)
	}
	if cfg.PlaylistName == "" {
		cfg.PlaylistName = defaultName
	}

	if _, err := cfg.SeedTracks(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getConfigPaths() []string {
	dir := filepath.Join(xdg.ConfigHome, appName)
	return []string{
		// 1. $XDG_CONFIG_HOME/tracklist/config.{toml,yaml}
		filepath.Join(dir, "config.toml"),
		filepath.Join(dir, "config.yaml"),
		// 2. ./config.{toml,yaml} (pwd, highest priority)
		"config.toml",
		"config.yaml",
	}
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	}
	return toml.Parser()
}

// SeedTracks builds validated tracks from the configured entries.
func (c *Config) SeedTracks() ([]*playlist.Track, error) {
	tracks := make([]*playlist.Track, 0, len(c.Tracks))
	for i, tc := range c.Tracks {
		t, err := playlist.NewTrack(tc.Name, tc.Artist, tc.Album, tc.Duration)
		if err != nil {
			return nil, fmt.Errorf("tracks[%d]: %w", i, err)
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// GetHistorySize returns the undo history size with defaults applied.
func (c *Config) GetHistorySize() int {
	if c.HistorySize <= 0 {
		return defaultHistorySize
	}
	return min(c.HistorySize, maxHistorySize)
}
