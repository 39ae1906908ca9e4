package app

import (
	"errors"
	"fmt"
	"log/slog"

	"tictactoe/internal/core"
)

// ErrNoState is returned by Update when the state stack is empty.
var ErrNoState = errors.New("app: state stack is empty")

// App owns a stack of states and a FIFO queue of pending stack actions.
// The last element of the stack is the active state.
type App struct {
	states  []core.State
	actions []core.Action
	log     *slog.Logger
}

// New constructs an empty App.
func New(logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{log: logger.With("component", "app")}
}

// AddAction queues an action to be applied at the start of the next Update.
func (a *App) AddAction(action core.Action) {
	if action.IsNone() {
		return
	}
	a.actions = append(a.actions, action)
}

// Len returns the number of states on the stack.
func (a *App) Len() int { return len(a.states) }

// Pending returns the number of queued actions.
func (a *App) Pending() int { return len(a.actions) }

// Top returns the active state, or nil when the stack is empty.
func (a *App) Top() core.State {
	if len(a.states) == 0 {
		return nil
	}
	return a.states[len(a.states)-1]
}

// Update drains the action queue in order and then updates the top state.
func (a *App) Update(in core.Input) error {
	a.drain()

	top := a.Top()
	if top == nil {
		return ErrNoState
	}
	if err := top.Update(in); err != nil {
		return fmt.Errorf("update state: %w", err)
	}
	return nil
}

// Draw renders the top state. An action it returns is queued for the next
// frame rather than applied immediately.
func (a *App) Draw(c core.Canvas) {
	top := a.Top()
	if top == nil {
		return
	}
	a.AddAction(top.Draw(c))
}

func (a *App) drain() {
	for len(a.actions) > 0 {
		action := a.actions[0]
		a.actions[0] = core.Action{}
		a.actions = a.actions[1:]
		a.apply(action)
	}
}

func (a *App) apply(action core.Action) {
	switch action.Kind {
	case core.ActionCreate:
		a.push(action.State)
	case core.ActionDestroy:
		a.pop()
	case core.ActionChange:
		a.pop()
		a.push(action.State)
	default:
		return
	}
	a.log.Debug("state stack changed", "action", action.Kind.String(), "depth", len(a.states))
}

func (a *App) push(s core.State) {
	if s == nil {
		return
	}
	a.states = append(a.states, s)
}

func (a *App) pop() {
	if len(a.states) == 0 {
		return
	}
	last := len(a.states) - 1
	a.states[last] = nil
	a.states = a.states[:last]
}
