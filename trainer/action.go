package trainer

type (
	// Action is something the user can ask the game to do. Front-ends query
	// Enabled to show which inputs currently count; Do is a no-op when the
	// game does not allow the action in its current state.
	Action struct {
		doer Doer
	}

	// Doer carries out an action.
	Doer interface {
		Do()
	}

	// Enabler is implemented by doers whose action is only allowed in some
	// states. A Doer without it is always allowed.
	Enabler interface {
		Enabled() bool
	}
)

func MakeAction(doer Doer) Action {
	return Action{doer: doer}
}

// Do performs the action if it is enabled and reports whether it did.
func (a Action) Do() bool {
	if !a.Enabled() {
		return false
	}
	a.doer.Do()
	return true
}

func (a Action) Enabled() bool {
	if a.doer == nil {
		return false
	}
	if e, ok := a.doer.(Enabler); ok {
		return e.Enabled()
	}
	return true
}
