// Package textinput provides a single-line prompt popup, used to rename
// the playlist.
package textinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tracklist/internal/ui"
	"github.com/llehouerou/tracklist/internal/ui/action"
	"github.com/llehouerou/tracklist/internal/ui/popup"
	"github.com/llehouerou/tracklist/internal/ui/styles"
)

const source = "textinput"

// Result is sent when the prompt closes.
type Result struct {
	Text     string
	Context  any  // passed through from Start
	Canceled bool // Esc
}

// ActionType implements action.Action.
func (Result) ActionType() string { return "textinput.result" }

var _ popup.Popup = (*Model)(nil)

// Model is a titled one-line prompt.
type Model struct {
	ui.Base
	title   string
	context any
	input   textinput.Model
}

// New returns an idle prompt.
func New() Model {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 120
	return Model{input: in}
}

// Start opens the prompt with a title and initial text.
func (m *Model) Start(title, initial string, context any, width, height int) {
	m.title = title
	m.context = context
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.SetSize(width, height)
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return m.input.Focus()
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width/2, 20)
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, action.Cmd(source, Result{Canceled: true, Context: m.context})
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			return m, action.Cmd(source, Result{Text: text, Context: m.context})
		case "tab", "shift+tab":
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.T().Primary).Render(m.title)
	hint := styles.T().S().Subtle.Render("Enter: confirm, Esc: cancel")
	return title + "\n\n" + m.input.View() + "\n\n" + hint
}
