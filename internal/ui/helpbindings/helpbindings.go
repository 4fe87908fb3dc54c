// Package helpbindings renders the key binding reference popup.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tracklist/internal/keymap"
	"github.com/llehouerou/tracklist/internal/ui"
	"github.com/llehouerou/tracklist/internal/ui/action"
	"github.com/llehouerou/tracklist/internal/ui/popup"
	"github.com/llehouerou/tracklist/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

var contextLabels = map[string]string{
	"global":   "Global",
	"playback": "Playback",
	"playlist": "Playlist",
}

// Close asks the app to dismiss the help popup.
type Close struct{}

// ActionType implements action.Action.
func (Close) ActionType() string { return "helpbindings.close" }

// Model is the help popup. Content taller than the popup scrolls with j/k.
type Model struct {
	ui.Base
	lines  []string
	offset int
}

// New builds the help content from the key map.
func New() Model {
	return Model{lines: buildLines(keymap.Contexts)}
}

func buildLines(contexts []string) []string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	keyWidth := 0
	for _, b := range keymap.All {
		keyWidth = max(keyWidth, len(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	for i, ctx := range contexts {
		if i > 0 {
			lines = append(lines, "")
		}
		label := contextLabels[ctx]
		if label == "" {
			label = ctx
		}
		lines = append(lines, headerStyle.Render(label))
		for _, b := range keymap.ByContext(ctx) {
			keys := strings.Join(b.Keys, ", ")
			keys += strings.Repeat(" ", keyWidth-len(keys))
			lines = append(lines, keyStyle.Render(keys)+"  "+t.S().Base.Render(b.Description))
		}
	}
	return lines
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "?", "esc", "q":
		return m, action.Cmd("helpbindings", Close{})
	case "j", "down":
		m.offset = min(m.offset+1, m.maxOffset())
	case "k", "up":
		m.offset = max(m.offset-1, 0)
	}
	return m, nil
}

func (m Model) visibleRows() int {
	// title, footer and popup chrome
	return max(m.Height()-10, 5)
}

func (m Model) maxOffset() int {
	return max(len(m.lines)-m.visibleRows(), 0)
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	end := min(m.offset+m.visibleRows(), len(m.lines))
	body := strings.Join(m.lines[m.offset:end], "\n")

	footer := "?/esc close"
	if m.maxOffset() > 0 {
		footer = "j/k scroll · " + footer
	}
	return styles.T().S().Title.Render("Help") + "\n\n" + body + "\n\n" + styles.T().S().Subtle.Render(footer)
}
