package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested action.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPut
	ActionTake
	ActionOpen
	ActionClose
)

// keyToAction maps a tcell key event to an action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyEnter:
		return ActionOpen
	case tcell.KeyEscape:
		return ActionClose
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return ActionUp
	case 'j', 'J':
		return ActionDown
	case 'l', 'L':
		return ActionRight
	case 'h', 'H':
		return ActionLeft
	case 'p', 'P':
		return ActionPut
	case 'x', 'X':
		return ActionTake
	case 'e', 'E':
		return ActionOpen
	case 'q', 'Q':
		return ActionClose
	}
	return ActionNone
}

// cursorDelta converts a movement action to a slot index offset in a grid
// with the given column count.
func cursorDelta(a Action, columns int) int {
	switch a {
	case ActionUp:
		return -columns
	case ActionDown:
		return columns
	case ActionLeft:
		return -1
	case ActionRight:
		return 1
	}
	return 0
}
