// Package testutil provides helpers for testing TUI components.
package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/tracklist/internal/ui/popup"
)

// StripANSI removes escape sequences so rendered output can be compared
// as plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the display width of s without escape sequences.
func MeasureWidth(s string) int {
	return ansi.StringWidth(s)
}

// Lines splits plain output into lines without trailing blank lines.
func Lines(output string) []string {
	lines := strings.Split(StripANSI(output), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// FindLine returns the first plain line containing substr, or "".
func FindLine(output, substr string) string {
	for _, line := range Lines(output) {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// Key builds the tea.KeyMsg bubbletea delivers for a key name such as
// "a", "enter", "esc", "tab" or "ctrl+c".
func Key(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// PopupHarness drives a popup.Popup the way the app does and records the
// commands it returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness runs Init and records its command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	h.record(p.Init())
	return h
}

func (h *PopupHarness) record(cmd tea.Cmd) {
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
}

// Popup returns the popup under test.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// View returns the popup view with escape sequences removed.
func (h *PopupHarness) View() string {
	return StripANSI(h.popup.View())
}

// Send delivers msg to the popup.
func (h *PopupHarness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	h.record(cmd)
	return cmd
}

// Press delivers each named key in order; see Key.
func (h *PopupHarness) Press(keys ...string) {
	for _, k := range keys {
		h.Send(Key(k))
	}
}

// Type delivers text one rune at a time.
func (h *PopupHarness) Type(text string) {
	for _, r := range text {
		h.Send(Key(string(r)))
	}
}

// Commands returns every recorded command.
func (h *PopupHarness) Commands() []tea.Cmd {
	return h.cmds
}

// LastMsg runs the most recent command and returns its message, or nil.
func (h *PopupHarness) LastMsg() tea.Msg {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]()
}
