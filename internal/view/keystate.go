package view

// Modifier key names tracked by KeyState. Anything else is ignored.
const (
	KeyShift = "shift"
	KeyAlt   = "alt"
	KeyCtrl  = "ctrl"
)

var trackedKeys = map[string]bool{
	KeyShift: true,
	KeyAlt:   true,
	KeyCtrl:  true,
}

// KeyState records which modifier keys are currently held down. One exists
// per Session and is mutated only by Session.Dispatch.
type KeyState struct {
	held map[string]bool
}

func NewKeyState() *KeyState {
	return &KeyState{held: make(map[string]bool)}
}

// OnKeyDown marks the key as held. Unrecognized names are a no-op.
func (k *KeyState) OnKeyDown(name string) {
	if trackedKeys[name] {
		k.held[name] = true
	}
}

// OnKeyUp clears the key. Unrecognized names are a no-op.
func (k *KeyState) OnKeyUp(name string) {
	delete(k.held, name)
}

func (k *KeyState) IsPressed(name string) bool {
	return k.held[name]
}

// Reset clears all held keys. Called on session teardown.
func (k *KeyState) Reset() {
	clear(k.held)
}
