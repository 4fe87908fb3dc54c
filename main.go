package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/llehouerou/tracklist/internal/app"
	"github.com/llehouerou/tracklist/internal/config"
	"github.com/llehouerou/tracklist/internal/errmsg"
	"github.com/llehouerou/tracklist/internal/icons"
	"github.com/llehouerou/tracklist/internal/playlist"
	"github.com/llehouerou/tracklist/internal/ui/headerbar"
)

type flags struct {
	configPath string
	icons      string
	seed       uint64
}

func newRootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           "tracklist",
		Short:         "Edit and step through a playlist in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			m, err := initialModel(cfg)
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpInitialize, err))
			}
			// Without a terminal there is nothing to drive; print instead.
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return printPlaylist(cmd.OutOrStdout(), m.Playlist)
			}
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run program: %w", err)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "extra config file (.toml or .yaml), read last")
	pf.StringVar(&f.icons, "icons", "", `icon style: "nerd", "unicode" or "none"`)
	pf.Uint64Var(&f.seed, "shuffle-seed", 0, "seed for repeatable shuffles (0 = random)")

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the configured playlist and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			m, err := initialModel(cfg)
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpInitialize, err))
			}
			return printPlaylist(cmd.OutOrStdout(), m.Playlist)
		},
	})

	return root
}

// loadConfig reads the config files and applies flag overrides.
func loadConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	var extra []string
	if f.configPath != "" {
		if _, err := os.Stat(f.configPath); err != nil {
			return nil, errors.New(errmsg.FormatWith(errmsg.OpConfigLoad, f.configPath, err))
		}
		extra = append(extra, f.configPath)
	}
	cfg, err := config.Load(extra...)
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if cmd.Flags().Changed("icons") {
		cfg.Icons = f.icons
	}
	if cmd.Flags().Changed("shuffle-seed") {
		cfg.ShuffleSeed = f.seed
	}
	return cfg, nil
}

func initialModel(cfg *config.Config) (app.Model, error) {
	icons.Init(cfg.Icons)

	var opts []playlist.Option
	if cfg.ShuffleSeed != 0 {
		opts = append(opts, playlist.WithRand(rand.New(rand.NewPCG(cfg.ShuffleSeed, cfg.ShuffleSeed))))
	}
	p := playlist.New(cfg.PlaylistName, opts...)

	tracks, err := cfg.SeedTracks()
	if err != nil {
		return app.Model{}, err
	}
	for _, t := range tracks {
		p.Add(t)
	}

	return app.New(p, cfg.GetHistorySize()), nil
}

func printPlaylist(w io.Writer, p *playlist.Playlist) error {
	fmt.Fprintf(w, "%s (%s)\n\n", p.Name(), headerbar.Summary(p))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tARTIST\tALBUM\tDURATION")
	for i, t := range p.Tracks() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1, t.Name(), t.ArtistName(), t.AlbumName(), playlist.FormatDuration(t.Length()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%s\n", p.Render())
	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
