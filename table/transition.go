package table

// Transition is the (next state, action) pair attached to one input byte.
// A missing state packs as StateAnywhere (code 0) and a missing action as
// ActionNone (code 0).
type Transition struct {
	HasState  bool
	State     State
	HasAction bool
	Action    Action
}

// Pack encodes the transition into one byte: the next state occupies the low
// nibble and the action the high nibble, so the runtime can extract either
// with a single mask or shift.
func (t Transition) Pack() uint8 {
	var p uint8
	if t.HasAction {
		p = uint8(t.Action) << 4
	}
	if t.HasState {
		p |= uint8(t.State)
	}
	return p
}

// UnpackTransition is the inverse of Pack.
func UnpackTransition(p uint8) (State, Action) {
	return State(p & 0x0f), Action(p >> 4)
}
