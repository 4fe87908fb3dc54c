// Scripted walk through the playlist operations, printing each step.
package main

import (
	"log"

	"github.com/llehouerou/tracklist/internal/config"
	"github.com/llehouerou/tracklist/internal/playlist"
)

func main() {
	log.SetFlags(0)

	p := playlist.New("Demo")
	for _, tc := range config.DefaultTracks {
		t, err := playlist.NewTrack(tc.Name, tc.Artist, tc.Album, tc.Duration)
		if err != nil {
			log.Fatalf("Failed to create track %q: %v", tc.Name, err)
		}
		p.Add(t)
	}

	step := func(label string, c playlist.Condition) {
		if !c.Ok() {
			log.Printf("%-14s %s", label, c)
			return
		}
		log.Printf("%-14s %s", label, p.Render())
	}

	log.Printf("%-14s %s", "start", p.Render())
	step("next", p.Next())
	step("next", p.Next())
	step("next", p.Next())
	step("previous", p.Previous())

	extra, err := playlist.NewTrack("Numb", "Linkin Park", "Meteora", 185)
	if err != nil {
		log.Fatalf("Failed to create track: %v", err)
	}
	step("insert after", p.InsertAfter(p.CurrentNode(), extra))
	step("next", p.Next())
	step("remove", p.RemoveCurrent())

	p.Shuffle()
	log.Printf("%-14s %d tracks, %s", "shuffle", p.Len(), p.Render())
	for i, t := range p.Tracks() {
		log.Printf("  %d. %s (%s)", i+1, t.Name(), playlist.FormatDuration(t.Length()))
	}

	for !p.IsEmpty() {
		step("remove", p.RemoveCurrent())
	}
	step("next", p.Next())
	log.Printf("%-14s %s", "end", p.Render())
}
