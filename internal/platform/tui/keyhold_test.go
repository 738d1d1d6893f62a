package tui

import (
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/pingpong/internal/core"
)

func TestKeyHoldPress(t *testing.T) {
	h := NewKeyHold(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	if !h.Press(core.KeyW, t0) {
		t.Error("first press should report a new hold")
	}
	if h.Press(core.KeyW, t0.Add(30*time.Millisecond)) {
		t.Error("auto-repeat should not report a new hold")
	}
	if !h.Held(core.KeyW) {
		t.Error("W should be held")
	}
	if h.Held(core.KeyS) {
		t.Error("S was never pressed")
	}
}

func TestKeyHoldExpire(t *testing.T) {
	h := NewKeyHold(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.KeyW, t0)
	h.Press(core.KeyDown, t0.Add(80*time.Millisecond))

	if got := h.Expire(t0.Add(99 * time.Millisecond)); len(got) != 0 {
		t.Errorf("Expire before window = %v, want none", got)
	}

	got := h.Expire(t0.Add(100 * time.Millisecond))
	if !slices.Equal(got, []core.Key{core.KeyW}) {
		t.Errorf("Expire at window = %v, want [w]", got)
	}
	if h.Held(core.KeyW) {
		t.Error("W should be released")
	}
	if !h.Held(core.KeyDown) {
		t.Error("Down was pressed later and should still be held")
	}
}

func TestKeyHoldRepeatExtends(t *testing.T) {
	h := NewKeyHold(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.KeyS, t0)
	h.Press(core.KeyS, t0.Add(90*time.Millisecond))

	if got := h.Expire(t0.Add(150 * time.Millisecond)); len(got) != 0 {
		t.Errorf("repeat should extend the hold, got released %v", got)
	}
}

func TestKeyHoldRelease(t *testing.T) {
	h := NewKeyHold(0)
	if h.window != DefaultHoldWindow {
		t.Errorf("window = %v, want default %v", h.window, DefaultHoldWindow)
	}

	if h.Release(core.KeyUp) {
		t.Error("releasing an idle key should report false")
	}
	h.Press(core.KeyUp, time.Now())
	if !h.Release(core.KeyUp) {
		t.Error("releasing a held key should report true")
	}
	if h.Held(core.KeyUp) {
		t.Error("Up should not be held after release")
	}
}

func TestOpposite(t *testing.T) {
	tests := []struct {
		in, want core.Key
	}{
		{core.KeyW, core.KeyS},
		{core.KeyS, core.KeyW},
		{core.KeyUp, core.KeyDown},
		{core.KeyDown, core.KeyUp},
		{core.KeyReset, core.KeyNone},
	}

	for _, tt := range tests {
		if got := opposite(tt.in); got != tt.want {
			t.Errorf("opposite(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
