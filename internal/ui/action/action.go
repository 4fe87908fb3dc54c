// Package action defines the messages popups send back to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a typed result produced by a UI component.
type Action interface {
	ActionType() string
}

// Msg carries an Action together with the component that produced it.
type Msg struct {
	Source string // "textinput", "trackform", ...
	Action Action
}

var _ tea.Msg = Msg{}

// Cmd returns a command delivering a as a Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
