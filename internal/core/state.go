package core

// State is one screen on the application's state stack.
type State interface {
	// Update advances the state by one frame.
	Update(in Input) error
	// Draw renders the state and may request a stack transition, which is
	// applied on the next frame.
	Draw(c Canvas) Action
}

// ActionKind tags the variant held by an Action.
type ActionKind uint8

const (
	// ActionNone requests nothing. It is the zero value.
	ActionNone ActionKind = iota
	// ActionCreate pushes a new state on top of the stack.
	ActionCreate
	// ActionDestroy pops the top state.
	ActionDestroy
	// ActionChange replaces the top state.
	ActionChange
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionCreate:
		return "create"
	case ActionDestroy:
		return "destroy"
	case ActionChange:
		return "change"
	default:
		return "unknown"
	}
}

// Action is a deferred request to mutate the state stack. State is set for
// ActionCreate and ActionChange only.
type Action struct {
	Kind  ActionKind
	State State
}

// Create returns an action that pushes s.
func Create(s State) Action { return Action{Kind: ActionCreate, State: s} }

// Destroy returns an action that pops the top state.
func Destroy() Action { return Action{Kind: ActionDestroy} }

// Change returns an action that replaces the top state with s.
func Change(s State) Action { return Action{Kind: ActionChange, State: s} }

// IsNone reports whether the action requests nothing.
func (a Action) IsNone() bool { return a.Kind == ActionNone }
