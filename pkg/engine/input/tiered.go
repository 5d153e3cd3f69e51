// Package input turns device key events into movement intents and routes
// them to the engine as relative move commands.
package input

import (
	"sort"
	"time"

	"glyphgrid/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast
)

// Key identifiers shared by every adapter. They follow the DOM
// KeyboardEvent.code names, which is also what ebiten.Key.String returns.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Intent is the 4th-layer, high-level description of what the player wants to do.
type Intent struct {
	Action Action
	DX, DY int32
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a key identifier such as "ArrowUp".
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing/deduplication.
// Every key-down delivered by the host counts, so this is a pass-through; the
// type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps key codes to actions (3rd-layer bindings). The set is fixed
// for the session.
var bindings = map[string]Action{
	KeyArrowUp:    ActionMoveNorth,
	KeyArrowDown:  ActionMoveSouth,
	KeyArrowLeft:  ActionMoveWest,
	KeyArrowRight: ActionMoveEast,
}

// directions maps movement actions to their cardinal direction
var directions = map[Action]world.Direction{
	ActionMoveNorth: world.North,
	ActionMoveSouth: world.South,
	ActionMoveWest:  world.West,
	ActionMoveEast:  world.East,
}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a debounced
// input and returns a high-level Intent carrying the movement delta.
func MapToIntent(ev DebouncedInput) Intent {
	act, ok := bindings[ev.Code]
	if !ok {
		return Intent{Action: ActionNone}
	}
	dx, dy := directions[act].Delta()
	return Intent{Action: act, DX: int32(dx), DY: int32(dy)}
}

// Route maps a key identifier to a movement intent. It is pure; the boolean
// is false for keys without a binding.
func Route(code string) (Intent, bool) {
	intent := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceKeyboard, Code: code}))
	return intent, intent.Action != ActionNone
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
