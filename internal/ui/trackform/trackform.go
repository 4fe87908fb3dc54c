// Package trackform provides the add-track popup: four text fields
// followed, when the playlist already has a current track, by a choice
// of inserting before or after it.
package trackform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tracklist/internal/errmsg"
	"github.com/llehouerou/tracklist/internal/playlist"
	"github.com/llehouerou/tracklist/internal/ui"
	"github.com/llehouerou/tracklist/internal/ui/action"
	"github.com/llehouerou/tracklist/internal/ui/popup"
	"github.com/llehouerou/tracklist/internal/ui/styles"
)

const source = "trackform"

// ErrDuration is returned when the duration field is not an integer.
var ErrDuration = errors.New("duration must be a whole number of seconds")

// Placement says where the new track goes.
type Placement int

const (
	PlaceEnd    Placement = iota // playlist had no current track
	PlaceBefore                  // before the current track
	PlaceAfter                   // after the current track
)

// Result is sent when the form closes. When Err is set the form failed at
// Op and no track was built.
type Result struct {
	Track     *playlist.Track
	Placement Placement
	Canceled  bool
	Op        errmsg.Op
	Err       error
}

// ActionType implements action.Action.
func (Result) ActionType() string { return "trackform.result" }

type field int

const (
	fieldName field = iota
	fieldArtist
	fieldAlbum
	fieldDuration
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Artist", "Album", "Duration (s)"}

type step int

const (
	stepFields step = iota
	stepPlacement
)

var _ popup.Popup = (*Model)(nil)

// Model is the add-track form.
type Model struct {
	ui.Base
	inputs       [fieldCount]textinput.Model
	focus        field
	step         step
	askPlacement bool
	track        *playlist.Track
}

// New returns a form. askPlacement selects whether the before/after step
// runs after the fields are filled in.
func New(askPlacement bool) Model {
	m := Model{askPlacement: askPlacement}
	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 120
		m.inputs[i] = in
	}
	m.inputs[fieldDuration].CharLimit = 6
	m.inputs[fieldDuration].Placeholder = "180"
	return m
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return m.inputs[fieldName].Focus()
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	for i := range m.inputs {
		m.inputs[i].Width = max(width/2, 20)
	}
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if ok && key.String() == "esc" {
		return m, action.Cmd(source, Result{Canceled: true})
	}
	if m.step == stepPlacement {
		if ok {
			return m, m.updatePlacement(key)
		}
		return m, nil
	}

	if ok {
		switch key.String() {
		case "tab", "down":
			return m, m.focusField(m.focus + 1)
		case "shift+tab", "up":
			return m, m.focusField(m.focus - 1)
		case "enter":
			if m.focus < fieldDuration {
				return m, m.focusField(m.focus + 1)
			}
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) focusField(f field) tea.Cmd {
	if f < 0 || f >= fieldCount {
		return nil
	}
	m.inputs[m.focus].Blur()
	m.focus = f
	return m.inputs[f].Focus()
}

func (m *Model) submit() tea.Cmd {
	text := strings.TrimSpace(m.inputs[fieldDuration].Value())
	seconds, err := strconv.Atoi(text)
	if err != nil {
		return action.Cmd(source, Result{
			Op:  errmsg.OpTrackDuration,
			Err: fmt.Errorf("%q: %w", text, ErrDuration),
		})
	}

	t, err := playlist.NewTrack(
		strings.TrimSpace(m.inputs[fieldName].Value()),
		strings.TrimSpace(m.inputs[fieldArtist].Value()),
		strings.TrimSpace(m.inputs[fieldAlbum].Value()),
		seconds,
	)
	if err != nil {
		return action.Cmd(source, Result{Op: errmsg.OpTrackCreate, Err: err})
	}

	if !m.askPlacement {
		return action.Cmd(source, Result{Track: t, Placement: PlaceEnd})
	}
	m.track = t
	m.step = stepPlacement
	m.inputs[m.focus].Blur()
	return nil
}

func (m *Model) updatePlacement(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "b":
		return action.Cmd(source, Result{Track: m.track, Placement: PlaceBefore})
	case "a":
		return action.Cmd(source, Result{Track: m.track, Placement: PlaceAfter})
	}
	return nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("Add track")

	if m.step == stepPlacement {
		question := fmt.Sprintf("Insert %q (b)efore or (a)fter the current track?", m.track.Name())
		return title + "\n\n" + t.S().Base.Render(question) + "\n\n" +
			t.S().Subtle.Render("b: before, a: after, Esc: cancel")
	}

	labelWidth := 0
	for _, l := range fieldLabels {
		labelWidth = max(labelWidth, len(l))
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	for i := range m.inputs {
		label := fmt.Sprintf("%-*s  ", labelWidth, fieldLabels[i])
		if field(i) == m.focus {
			b.WriteString(lipgloss.NewStyle().Foreground(t.Primary).Render(label))
		} else {
			b.WriteString(t.S().Muted.Render(label))
		}
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(t.S().Subtle.Render("Tab: next field, Enter: confirm, Esc: cancel"))
	return b.String()
}
