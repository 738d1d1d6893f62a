package tui

import (
	"time"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/pingpong/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press
// event. Terminals report presses and auto-repeats but never releases.
const DefaultHoldWindow = 180 * time.Millisecond

// KeyHold synthesizes key releases from a stream of press events.
type KeyHold struct {
	window time.Duration
	last   *intmap.Map[core.Key, time.Time]
}

// NewKeyHold creates a tracker with the given hold window.
func NewKeyHold(window time.Duration) *KeyHold {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &KeyHold{
		window: window,
		last:   intmap.New[core.Key, time.Time](len(core.MovementKeys)),
	}
}

// Press records a press of k at now. It reports true when k was not already
// held, i.e. when the engine should see a press.
func (h *KeyHold) Press(k core.Key, now time.Time) bool {
	_, held := h.last.Get(k)
	h.last.Put(k, now)
	return !held
}

// Release forgets k immediately. It reports whether k was held.
func (h *KeyHold) Release(k core.Key) bool {
	if !h.Held(k) {
		return false
	}
	h.last.Del(k)
	return true
}

// Held reports whether k is currently held.
func (h *KeyHold) Held(k core.Key) bool {
	_, ok := h.last.Get(k)
	return ok
}

// Expire releases every key whose last press is older than the hold window
// and returns them in MovementKeys order.
func (h *KeyHold) Expire(now time.Time) []core.Key {
	var released []core.Key
	for _, k := range core.MovementKeys {
		at, ok := h.last.Get(k)
		if ok && now.Sub(at) >= h.window {
			h.last.Del(k)
			released = append(released, k)
		}
	}
	return released
}

// opposite returns the key that drives the same paddle the other way.
func opposite(k core.Key) core.Key {
	switch k {
	case core.KeyW:
		return core.KeyS
	case core.KeyS:
		return core.KeyW
	case core.KeyUp:
		return core.KeyDown
	case core.KeyDown:
		return core.KeyUp
	}
	return core.KeyNone
}
