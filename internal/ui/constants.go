// Package ui holds layout constants and the component base shared by the
// TUI packages.
package ui

// Layout constants.
const (
	// ScrollMargin is how many rows stay visible around the current track.
	ScrollMargin = 2

	// BorderHeight is the vertical space taken by a rounded border.
	BorderHeight = 2

	// HeaderHeight covers a panel header and its separator.
	HeaderHeight = 2

	// PanelOverhead is subtracted from a panel height to get list rows.
	PanelOverhead = BorderHeight + HeaderHeight

	// MinWidth is the narrowest terminal the layout renders in.
	MinWidth = 30
)
