package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
//
// Terminals deliver key presses and auto-repeats but never releases, so the
// mapper keeps a direction held for a few frames after its last key event
// and reports fire as released once no fire key has arrived for a while.
type KeyMapper struct {
	holdTicks        int
	fireReleaseTicks int

	left, right int // Frames each direction stays held
	fireHeld    bool
	fireIdle    int // Frames since the last fire key event

	pending core.InputFrame // One-shot actions for the next frame
}

// NewKeyMapper creates a key mapper with the given hold timings.
func NewKeyMapper(cfg config.InputConfig) *KeyMapper {
	return &KeyMapper{
		holdTicks:        max(cfg.HoldTicks, 1),
		fireReleaseTicks: max(cfg.FireReleaseTicks, 1),
		pending:          core.NewInputFrame(),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// Press records a key event. Returns true if the key was a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionLeft:
		km.left, km.right = km.holdTicks, 0
	case core.ActionRight:
		km.right, km.left = km.holdTicks, 0
	case core.ActionFire:
		km.fireHeld = true
		km.fireIdle = 0
		km.pending.Set(core.ActionFire)
	case core.ActionNone:
	default:
		km.pending.Set(action)
	}
	return isQuit
}

// Frame fills frame with the actions for one rendered frame and ages the
// held keys. Call it exactly once per frame.
func (km *KeyMapper) Frame(frame *core.InputFrame) {
	for a := range km.pending.Actions {
		frame.Set(a)
	}
	km.pending.Clear()

	if km.left > 0 {
		frame.Set(core.ActionLeft)
		km.left--
	}
	if km.right > 0 {
		frame.Set(core.ActionRight)
		km.right--
	}

	if km.fireHeld && !frame.Has(core.ActionFire) {
		km.fireIdle++
		if km.fireIdle >= km.fireReleaseTicks {
			km.fireHeld = false
			frame.Set(core.ActionFireRelease)
		}
	}
}

// Reset forgets all held keys.
func (km *KeyMapper) Reset() {
	km.left, km.right = 0, 0
	km.fireHeld = false
	km.fireIdle = 0
	km.pending.Clear()
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
