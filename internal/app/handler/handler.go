// Package handler runs key actions through a chain of handlers until one
// claims them.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tracklist/internal/keymap"
)

// Result is the outcome of one handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled lets the chain continue.
var NotHandled = Result{}

// HandledNoCmd stops the chain without a command.
var HandledNoCmd = Result{Handled: true}

// Handled stops the chain with cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle a resolved action.
type Handler func(a keymap.Action) Result

// Chain offers a to each handler in order and stops at the first that
// handles it.
func Chain(a keymap.Action, handlers ...Handler) (bool, tea.Cmd) {
	if a == "" {
		return false, nil
	}
	for _, h := range handlers {
		if r := h(a); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
