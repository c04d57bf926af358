package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a":
		return core.ActionTurnLeft, false
	case "right", "d":
		return core.ActionTurnRight, false
	case "up", "w":
		return core.ActionThrust, false
	case " ", "ctrl+@", "f":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
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
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
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

// holdSlot is a key that is held rather than tapped.
type holdSlot int

const (
	holdLeft holdSlot = iota
	holdRight
	holdThrust
	holdSlots
)

var (
	holdPress = [holdSlots]core.Action{
		holdLeft:   core.ActionTurnLeft,
		holdRight:  core.ActionTurnRight,
		holdThrust: core.ActionThrust,
	}
	holdRelease = [holdSlots]core.Action{
		holdLeft:   core.ActionReleaseLeft,
		holdRight:  core.ActionReleaseRight,
		holdThrust: core.ActionReleaseThrust,
	}
)

// HoldTracker turns terminal key presses into press/release pairs.
// Terminals only report presses (repeated while a key is held), so a key
// counts as released once holdTicks ticks pass without another press.
type HoldTracker struct {
	holdTicks int
	remaining [holdSlots]int // Ticks left before release, 0 when not held
}

// NewHoldTracker creates a tracker that releases keys after holdTicks idle ticks.
func NewHoldTracker(holdTicks int) *HoldTracker {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HoldTracker{holdTicks: holdTicks}
}

// Press registers a key press. For hold keys it adds the press action to
// frame only when the key was not already held, so auto-repeat does not
// restart a turn or re-aim thrust. Other actions pass straight through.
func (h *HoldTracker) Press(a core.Action, frame *core.InputFrame) {
	for slot, press := range holdPress {
		if press != a {
			continue
		}
		if h.remaining[slot] == 0 {
			frame.Set(a)
		}
		h.remaining[slot] = h.holdTicks
		return
	}
	frame.Set(a)
}

// Tick advances one tick and adds release actions for keys whose hold expired.
func (h *HoldTracker) Tick(frame *core.InputFrame) {
	for slot := range h.remaining {
		if h.remaining[slot] == 0 {
			continue
		}
		h.remaining[slot]--
		if h.remaining[slot] == 0 {
			frame.Set(holdRelease[slot])
		}
	}
}

// Held reports whether the press action's key is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	for slot, press := range holdPress {
		if press == a {
			return h.remaining[slot] > 0
		}
	}
	return false
}

// Reset forgets all held keys without emitting releases.
func (h *HoldTracker) Reset() {
	h.remaining = [holdSlots]int{}
}
