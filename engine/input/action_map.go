package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-motion/common"
)

// Action names used by the default bindings.
const (
	ActionMoveForward  = "MoveForward"
	ActionMoveBackward = "MoveBackward"
	ActionMoveLeft     = "MoveLeft"
	ActionMoveRight    = "MoveRight"
	ActionQuit         = "Quit"
)

// ActionMap maps raw key codes onto named actions and reports action strengths.
// Key events arrive from the window thread while the tick goroutine reads axes, so all
// state is guarded.
type ActionMap interface {
	// Bind adds key codes to an action. A key may drive several actions.
	//
	// Parameters:
	//   - action: the action name
	//   - keyCodes: virtual key codes (see common.Key*)
	Bind(action string, keyCodes ...uint32)

	// OnPressed registers a callback fired when an action goes from released to pressed.
	// Key repeat does not fire it again.
	//
	// Parameters:
	//   - action: the action name
	//   - callback: function to call on press
	OnPressed(action string, callback func())

	// KeyDown records a key press. Intended to be wired to the window's key down callback.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyDown(keyCode uint32)

	// KeyUp records a key release. Intended to be wired to the window's key up callback.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyUp(keyCode uint32)

	// SetStrength overrides an action's strength directly, for analog sources.
	// The value is clamped to [0, 1]; zero clears the override.
	//
	// Parameters:
	//   - action: the action name
	//   - strength: the analog strength
	SetStrength(action string, strength float32)

	// Strength returns how strongly an action is held, in [0, 1].
	//
	// Parameters:
	//   - action: the action name
	//
	// Returns:
	//   - float32: 1 if any bound key is held, otherwise the analog override
	Strength(action string) float32

	// Axis combines two opposing actions into a single value in [-1, 1].
	//
	// Parameters:
	//   - negative: the action pulling toward -1
	//   - positive: the action pulling toward +1
	//
	// Returns:
	//   - float32: Strength(positive) - Strength(negative)
	Axis(negative, positive string) float32
}

type actionMapImpl struct {
	mu *sync.Mutex

	bindings map[uint32][]string
	held     map[uint32]bool
	analog   map[string]float32
	pressed  map[string][]func()
}

var _ ActionMap = &actionMapImpl{}

// NewActionMap creates an empty ActionMap.
//
// Returns:
//   - ActionMap: the newly created action map
func NewActionMap() ActionMap {
	return &actionMapImpl{
		mu:       &sync.Mutex{},
		bindings: make(map[uint32][]string),
		held:     make(map[uint32]bool),
		analog:   make(map[string]float32),
		pressed:  make(map[string][]func()),
	}
}

// NewDefaultActionMap creates an ActionMap with WASD and arrow movement and Esc bound to quit.
//
// Returns:
//   - ActionMap: the action map with default bindings
func NewDefaultActionMap() ActionMap {
	am := NewActionMap()
	am.Bind(ActionMoveForward, common.KeyW, common.KeyUp)
	am.Bind(ActionMoveBackward, common.KeyS, common.KeyDown)
	am.Bind(ActionMoveLeft, common.KeyA, common.KeyLeft)
	am.Bind(ActionMoveRight, common.KeyD, common.KeyRight)
	am.Bind(ActionQuit, common.KeyEsc)
	return am
}

func (am *actionMapImpl) Bind(action string, keyCodes ...uint32) {
	am.mu.Lock()
	defer am.mu.Unlock()
	for _, k := range keyCodes {
		am.bindings[k] = append(am.bindings[k], action)
	}
}

func (am *actionMapImpl) OnPressed(action string, callback func()) {
	if callback == nil {
		return
	}
	am.mu.Lock()
	defer am.mu.Unlock()
	am.pressed[action] = append(am.pressed[action], callback)
}

func (am *actionMapImpl) KeyDown(keyCode uint32) {
	am.mu.Lock()
	var fire []func()
	if !am.held[keyCode] {
		for _, action := range am.bindings[keyCode] {
			if !am.actionHeld(action) {
				fire = append(fire, am.pressed[action]...)
			}
		}
	}
	am.held[keyCode] = true
	am.mu.Unlock()

	// Callbacks run outside the lock so they may query the map.
	for _, cb := range fire {
		cb()
	}
}

func (am *actionMapImpl) KeyUp(keyCode uint32) {
	am.mu.Lock()
	defer am.mu.Unlock()
	delete(am.held, keyCode)
}

func (am *actionMapImpl) SetStrength(action string, strength float32) {
	am.mu.Lock()
	defer am.mu.Unlock()
	strength = common.Clamp01(strength)
	if strength == 0 {
		delete(am.analog, action)
		return
	}
	am.analog[action] = strength
}

func (am *actionMapImpl) Strength(action string) float32 {
	am.mu.Lock()
	defer am.mu.Unlock()
	return am.strength(action)
}

func (am *actionMapImpl) Axis(negative, positive string) float32 {
	am.mu.Lock()
	defer am.mu.Unlock()
	return am.strength(positive) - am.strength(negative)
}

// strength returns the held strength of an action. Caller must hold the mutex.
func (am *actionMapImpl) strength(action string) float32 {
	if am.actionHeld(action) {
		return 1
	}
	return am.analog[action]
}

// actionHeld reports whether any key bound to the action is held. Caller must hold the mutex.
func (am *actionMapImpl) actionHeld(action string) bool {
	for k, down := range am.held {
		if !down {
			continue
		}
		for _, a := range am.bindings[k] {
			if a == action {
				return true
			}
		}
	}
	return false
}
