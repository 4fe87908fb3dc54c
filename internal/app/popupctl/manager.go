// Package popupctl owns the modal popups shown over the main view.
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tracklist/internal/ui/helpbindings"
	"github.com/llehouerou/tracklist/internal/ui/popup"
	"github.com/llehouerou/tracklist/internal/ui/textinput"
	"github.com/llehouerou/tracklist/internal/ui/trackform"
)

// Manager tracks the visible popups and routes input to the top one.
type Manager struct {
	popups    map[Type]popup.Popup
	inputMode InputMode
	width     int
	height    int
}

// New creates an empty Manager.
func New() *Manager {
	return &Manager{popups: make(map[Type]popup.Popup)}
}

// SetSize updates the screen size used for layout and popup content.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for _, pop := range p.popups {
		pop.SetSize(width, height)
	}
}

// IsVisible reports whether t is shown.
func (p *Manager) IsVisible(t Type) bool {
	return p.popups[t] != nil
}

// Active returns the popup that receives keys, or None.
func (p *Manager) Active() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// InputMode returns what the open text input is collecting.
func (p *Manager) InputMode() InputMode {
	return p.inputMode
}

// Show displays pop as t and returns its init command.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.width, p.height)
	p.popups[t] = pop
	return pop.Init()
}

// Hide closes t.
func (p *Manager) Hide(t Type) {
	if t == TextInput {
		p.inputMode = InputNone
	}
	delete(p.popups, t)
}

// Get returns the popup shown as t, or nil.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

// ShowHelp opens the key binding reference.
func (p *Manager) ShowHelp() tea.Cmd {
	help := helpbindings.New()
	return p.Show(Help, &help)
}

// ShowTextInput opens a one-line prompt.
func (p *Manager) ShowTextInput(mode InputMode, title, value string) tea.Cmd {
	p.inputMode = mode
	ti := textinput.New()
	ti.Start(title, value, mode, p.width, p.height)
	return p.Show(TextInput, &ti)
}

// ShowTrackForm opens the add-track form.
func (p *Manager) ShowTrackForm(askPlacement bool) tea.Cmd {
	form := trackform.New(askPlacement)
	return p.Show(TrackForm, &form)
}

// HandleKey sends msg to the active popup. It returns false when no popup
// is open.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	return p.forward(msg)
}

// Update forwards non-key messages, such as cursor blinks, to the active
// popup.
func (p *Manager) Update(msg tea.Msg) tea.Cmd {
	_, cmd := p.forward(msg)
	return cmd
}

func (p *Manager) forward(msg tea.Msg) (bool, tea.Cmd) {
	active := p.Active()
	if active == None {
		return false, nil
	}
	var cmd tea.Cmd
	p.popups[active], cmd = p.popups[active].Update(msg)
	return true, cmd
}

// RenderOverlay draws every visible popup over base.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		pop := p.popups[t]
		if pop == nil {
			continue
		}
		if view := pop.View(); view != "" {
			base = popup.Compose(base, popup.RenderBordered(view, p.width, p.height), p.width)
		}
	}
	return base
}
