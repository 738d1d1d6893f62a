package core

import "strings"

// Key identifies a physical key the match understands, abstracted from the
// host's key naming.
type Key int

const (
	KeyNone  Key = iota
	KeyW         // Left paddle up
	KeyS         // Left paddle down
	KeyUp        // Right paddle up
	KeyDown      // Right paddle down
	KeyReset     // R - zero scores and serve again (press only)
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyW:
		return "w"
	case KeyS:
		return "s"
	case KeyUp:
		return "up-arrow"
	case KeyDown:
		return "down-arrow"
	case KeyReset:
		return "r"
	default:
		return "none"
	}
}

// ParseKey maps a host key name to a Key, case-insensitively.
// Both the short ("up") and long ("up-arrow") arrow names are accepted.
// Unrecognized names map to KeyNone.
func ParseKey(name string) Key {
	switch strings.ToLower(name) {
	case "w":
		return KeyW
	case "s":
		return KeyS
	case "up", "up-arrow", "arrowup":
		return KeyUp
	case "down", "down-arrow", "arrowdown":
		return KeyDown
	case "r":
		return KeyReset
	}
	return KeyNone
}

// MovementKeys lists the keys that drive paddle flags.
var MovementKeys = [...]Key{KeyW, KeyS, KeyUp, KeyDown}

// InputState holds the four paddle flags. Flags are overwritten on press and
// release and read, never cleared, by each tick.
type InputState struct {
	P1Up   bool
	P1Down bool
	P2Up   bool
	P2Down bool
}

// Set updates the flag bound to k. It reports false for keys that are not
// movement keys.
func (s *InputState) Set(k Key, pressed bool) bool {
	switch k {
	case KeyW:
		s.P1Up = pressed
	case KeyS:
		s.P1Down = pressed
	case KeyUp:
		s.P2Up = pressed
	case KeyDown:
		s.P2Down = pressed
	default:
		return false
	}
	return true
}

// Held reports whether the flag bound to k is currently set.
func (s InputState) Held(k Key) bool {
	switch k {
	case KeyW:
		return s.P1Up
	case KeyS:
		return s.P1Down
	case KeyUp:
		return s.P2Up
	case KeyDown:
		return s.P2Down
	}
	return false
}
