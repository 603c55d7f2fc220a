package animator

import (
	"strings"
	"testing"

	"github.com/sbostic/fox-for-nora/engine/model"
)

func newTestController(t *testing.T, clips ...model.AnimationClip) (Controller, Animator, int) {
	t.Helper()
	a := NewAnimator(WithClips(clips...))
	idx, err := a.AddInstance()
	if err != nil {
		t.Fatalf("AddInstance() error = %v", err)
	}
	return NewController(a, idx), a, idx
}

func foxClips() []model.AnimationClip {
	return []model.AnimationClip{
		{Name: "Run", Duration: 0.7083},
		{Name: "Walk", Duration: 1.0417},
		{Name: "Survey", Duration: 3.2333},
	}
}

func TestOnPlayerReadyStartsFirstClip(t *testing.T) {
	c, a, idx := newTestController(t, foxClips()...)

	c.OnPlayerReady()

	if !c.Ready() {
		t.Fatal("controller should be ready after playback begins")
	}
	state, ok := a.State(idx)
	if !ok {
		t.Fatal("State() reported an invalid instance")
	}
	if state.ClipIndex != 0 {
		t.Errorf("starting clip = %d, want 0", state.ClipIndex)
	}
	if state.Repeat.Mode != RepeatModeForever {
		t.Errorf("starting repeat mode = %v, want forever", state.Repeat.Mode)
	}
	if state.Blending {
		t.Error("startup fade has zero length and must complete immediately")
	}
	if state.Paused {
		t.Error("startup playback must not be paused")
	}
}

func TestOnPlayerReadyIsIdempotent(t *testing.T) {
	c, a, idx := newTestController(t, foxClips()...)

	c.OnPlayerReady()
	a.Advance(idx, 0.4)
	c.AdjustSpeed(1.2)
	before, _ := a.State(idx)

	// A re-fired readiness signal must change nothing.
	c.OnPlayerReady()
	c.OnPlayerReady()

	after, _ := a.State(idx)
	if after != before {
		t.Errorf("playback state changed by repeat readiness: before %+v, after %+v", before, after)
	}
}

func TestOnPlayerReadyWithoutClips(t *testing.T) {
	a := NewAnimator()
	idx, err := a.AddInstance()
	if err != nil {
		t.Fatalf("AddInstance() error = %v", err)
	}
	c := NewController(a, idx)

	c.OnPlayerReady()
	if c.Ready() {
		t.Fatal("controller must stay not ready with an empty registry")
	}

	// A later readiness signal starts playback once clips exist.
	a.AddClip(model.AnimationClip{Name: "Run", Duration: 0.7083})
	c.OnPlayerReady()
	if !c.Ready() {
		t.Error("controller should become ready once a clip is registered")
	}
}

func TestCommandsBeforeReadyAreIgnored(t *testing.T) {
	c, a, idx := newTestController(t, foxClips()...)

	c.TogglePause()
	c.AdjustSpeed(1.2)
	c.Seek(0.1)
	c.CycleClip()
	c.SetRepeatOnce()
	c.SetRepeatCount(5)
	c.SetRepeatForever()

	state, _ := a.State(idx)
	if state.Time != 0 || state.Speed != 0 || state.Paused {
		t.Errorf("commands before readiness touched the instance: %+v", state)
	}
	if _, ok := c.CurrentClip(); ok {
		t.Error("CurrentClip() should report nothing before readiness")
	}
}

func TestCycleClipWrapsAroundRegistry(t *testing.T) {
	c, a, idx := newTestController(t, foxClips()...)
	c.OnPlayerReady()

	wantOrder := []string{"Walk", "Survey", "Run"}
	for _, want := range wantOrder {
		c.CycleClip()
		clip, ok := c.CurrentClip()
		if !ok {
			t.Fatal("CurrentClip() reported not ready")
		}
		if clip.Name != want {
			t.Errorf("cycled to %q, want %q", clip.Name, want)
		}
	}

	// Cycling starts a crossfade rather than an instant switch.
	if !a.IsBlending(idx) {
		t.Error("cycling should leave a crossfade in progress")
	}
}

func TestCycleClipSingleClipFadesIntoItself(t *testing.T) {
	c, a, idx := newTestController(t, model.AnimationClip{Name: "Run", Duration: 0.7083})
	c.OnPlayerReady()
	a.Advance(idx, 0.3)

	c.CycleClip()

	clip, _ := c.CurrentClip()
	if clip.Name != "Run" {
		t.Errorf("single-clip cycle moved to %q, want Run", clip.Name)
	}
	if !a.IsBlending(idx) {
		t.Error("single-clip cycle should still fade")
	}
}

func TestAdjustSpeedCompoundsThroughController(t *testing.T) {
	c, a, idx := newTestController(t, foxClips()...)
	c.OnPlayerReady()

	c.AdjustSpeed(1.2)
	c.AdjustSpeed(0.8)

	state, _ := a.State(idx)
	if !floatNear(state.Speed, 0.96) {
		t.Errorf("speed = %v, want 0.96", state.Speed)
	}
}

func TestSetRepeatCountReplaysThroughController(t *testing.T) {
	c, a, idx := newTestController(t, foxClips()...)
	c.OnPlayerReady()
	a.Advance(idx, 0.4)
	c.TogglePause()

	c.SetRepeatCount(3)

	state, _ := a.State(idx)
	if state.Time != 0 {
		t.Errorf("replay playhead = %v, want 0", state.Time)
	}
	if state.Paused {
		t.Error("replay must resume paused playback")
	}

	// Switching to forever afterwards keeps the playhead where it is.
	a.Advance(idx, 0.2)
	c.SetRepeatForever()
	state, _ = a.State(idx)
	if !floatNear(state.Time, 0.2) {
		t.Errorf("playhead after forever switch = %v, want 0.2", state.Time)
	}
}

func TestDescribeStatusLine(t *testing.T) {
	c, _, _ := newTestController(t, foxClips()...)

	if got := c.Describe(); got != "no animation" {
		t.Errorf("Describe() before readiness = %q, want %q", got, "no animation")
	}

	c.OnPlayerReady()
	got := c.Describe()
	if !strings.Contains(got, "Run") {
		t.Errorf("Describe() = %q, want the clip name in it", got)
	}
	if strings.Contains(got, "paused") {
		t.Errorf("Describe() = %q, should not report paused", got)
	}

	c.TogglePause()
	if got := c.Describe(); !strings.Contains(got, "paused") {
		t.Errorf("Describe() = %q, want a paused marker", got)
	}
}

func TestNewControllerNilAnimatorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewController(nil, 0) should panic on a wiring error")
		}
	}()
	NewController(nil, 0)
}
