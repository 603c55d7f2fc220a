package animator

import (
	"math"
	"testing"

	"github.com/sbostic/fox-for-nora/engine/model"
)

func newTestAnimator(t *testing.T, clips ...model.AnimationClip) (Animator, int) {
	t.Helper()
	a := NewAnimator(WithClips(clips...))
	idx, err := a.AddInstance()
	if err != nil {
		t.Fatalf("AddInstance() error = %v", err)
	}
	return a, idx
}

func floatNear(a, b float32) bool {
	return math.Abs(float64(a-b)) <= 1e-4
}

func TestAdvanceWrapsForever(t *testing.T) {
	a, idx := newTestAnimator(t, model.AnimationClip{Name: "walk", Duration: 2})
	a.Play(idx, 0, RepeatForever())

	a.Advance(idx, 2.5)

	state, ok := a.State(idx)
	if !ok {
		t.Fatal("State() reported an invalid instance")
	}
	if !floatNear(state.Time, 0.5) {
		t.Errorf("playhead after wrap = %v, want 0.5", state.Time)
	}
	if state.Finished {
		t.Error("repeat-forever playback must never finish")
	}

	// Many passes in one step still land inside the clip.
	a.Advance(idx, 17.25)
	state, _ = a.State(idx)
	if state.Time < 0 || state.Time > 2 {
		t.Errorf("playhead after long advance = %v, want within [0, 2]", state.Time)
	}
}

func TestAdvancePausedFreezesClocks(t *testing.T) {
	a, idx := newTestAnimator(t, model.AnimationClip{Name: "walk", Duration: 2})
	a.Play(idx, 0, RepeatForever())
	a.Advance(idx, 0.5)

	a.TogglePause(idx)
	a.Advance(idx, 1.0)
	a.Advance(idx, 1.0)

	state, _ := a.State(idx)
	if !floatNear(state.Time, 0.5) {
		t.Errorf("paused playhead moved to %v, want 0.5", state.Time)
	}
	if !state.Paused {
		t.Error("instance should report paused")
	}

	// Resuming continues from the frozen position.
	a.TogglePause(idx)
	a.Advance(idx, 0.25)
	state, _ = a.State(idx)
	if !floatNear(state.Time, 0.75) {
		t.Errorf("resumed playhead = %v, want 0.75", state.Time)
	}
}

func TestScaleSpeedCompounds(t *testing.T) {
	a, idx := newTestAnimator(t, model.AnimationClip{Name: "walk", Duration: 10})
	a.Play(idx, 0, RepeatForever())

	a.ScaleSpeed(idx, 1.2)
	a.ScaleSpeed(idx, 0.8)
	state, _ := a.State(idx)
	if !floatNear(state.Speed, 0.96) {
		t.Errorf("speed after x1.2 then x0.8 = %v, want 0.96", state.Speed)
	}

	// Opposite order lands on the same product.
	b, bIdx := newTestAnimator(t, model.AnimationClip{Name: "walk", Duration: 10})
	b.Play(bIdx, 0, RepeatForever())
	b.ScaleSpeed(bIdx, 0.8)
	b.ScaleSpeed(bIdx, 1.2)
	bState, _ := b.State(bIdx)
	if !floatNear(bState.Speed, state.Speed) {
		t.Errorf("speed scaling is order dependent: %v vs %v", bState.Speed, state.Speed)
	}

	// No clamping in either direction.
	for i := 0; i < 5; i++ {
		a.ScaleSpeed(idx, 10)
	}
	state, _ = a.State(idx)
	if !floatNear(state.Speed, 96000) {
		t.Errorf("speed after five x10 = %v, want 96000", state.Speed)
	}

	// Speed scales the playhead advance.
	a.SetSpeed(idx, 2)
	a.SetTime(idx, 0)
	a.Advance(idx, 1)
	state, _ = a.State(idx)
	if !floatNear(state.Time, 2) {
		t.Errorf("playhead at speed 2 after 1s = %v, want 2", state.Time)
	}
}

func TestSeekUnclamped(t *testing.T) {
	a, idx := newTestAnimator(t, model.AnimationClip{Name: "walk", Duration: 2})
	a.Play(idx, 0, RepeatForever())

	a.Seek(idx, -0.5)
	state, _ := a.State(idx)
	if !floatNear(state.Time, -0.5) {
		t.Errorf("playhead after backward seek = %v, want -0.5", state.Time)
	}

	// A negative playhead accumulates back toward zero instead of wrapping.
	a.Advance(idx, 0.2)
	state, _ = a.State(idx)
	if !floatNear(state.Time, -0.3) {
		t.Errorf("playhead after advancing from negative = %v, want -0.3", state.Time)
	}

	// Seeking past the end resolves by wrapping on the next advance.
	a.SetTime(idx, 0)
	a.Seek(idx, 5)
	a.Advance(idx, 0.1)
	state, _ = a.State(idx)
	if state.Time < 0 || state.Time > 2 {
		t.Errorf("playhead after far forward seek = %v, want within [0, 2]", state.Time)
	}
}

func TestRepeatOnceHoldsFinalPose(t *testing.T) {
	a, idx := newTestAnimator(t, model.AnimationClip{Name: "survey", Duration: 1})
	a.Play(idx, 0, RepeatOnce())

	a.Advance(idx, 0.6)
	state, _ := a.State(idx)
	if state.Finished {
		t.Fatal("finished before the pass completed")
	}

	a.Advance(idx, 0.6)
	state, _ = a.State(idx)
	if !state.Finished {
		t.Fatal("single pass did not finish")
	}
	if !floatNear(state.Time, 1) {
		t.Errorf("finished playhead = %v, want held at the clip end 1", state.Time)
	}

	// Further advances hold the final pose.
	a.Advance(idx, 5)
	state, _ = a.State(idx)
	if !floatNear(state.Time, 1) {
		t.Errorf("held playhead moved to %v, want 1", state.Time)
	}
}

func TestRepeatCountPassBookkeeping(t *testing.T) {
	a, idx := newTestAnimator(t, model.AnimationClip{Name: "survey", Duration: 1})
	a.Play(idx, 0, RepeatCount(3))

	// One large step can complete multiple passes.
	a.Advance(idx, 2.5)
	state, _ := a.State(idx)
	if state.Finished {
		t.Fatal("finished after two of three passes")
	}
	if state.Repeat.Remaining != 1 {
		t.Errorf("remaining passes = %d, want 1", state.Repeat.Remaining)
	}
	if !floatNear(state.Time, 0.5) {
		t.Errorf("playhead = %v, want 0.5", state.Time)
	}

	a.Advance(idx, 0.6)
	state, _ = a.State(idx)
	if !state.Finished {
		t.Fatal("third pass did not finish")
	}
	if !floatNear(state.Time, 1) {
		t.Errorf("finished playhead = %v, want 1", state.Time)
	}
}

func TestSetRepeatCountReplaysFromPaused(t *testing.T) {
	a, idx := newTestAnimator(t, model.AnimationClip{Name: "walk", Duration: 2})
	a.Play(idx, 0, RepeatForever())
	a.Advance(idx, 0.7)
	a.TogglePause(idx)

	a.SetRepeat(idx, RepeatCount(3))

	state, _ := a.State(idx)
	if !floatNear(state.Time, 0) {
		t.Errorf("replay playhead = %v, want 0", state.Time)
	}
	if state.Paused {
		t.Error("replay must resume a paused instance")
	}
	if state.Repeat.Mode != RepeatModeCount || state.Repeat.Remaining != 3 {
		t.Errorf("repeat = %+v, want count mode with 3 remaining", state.Repeat)
	}
}

func TestSetRepeatForeverKeepsPlayheadAndPause(t *testing.T) {
	a, idx := newTestAnimator(t, model.AnimationClip{Name: "walk", Duration: 2})
	a.Play(idx, 0, RepeatOnce())
	a.Advance(idx, 0.7)
	a.TogglePause(idx)

	a.SetRepeat(idx, RepeatForever())

	state, _ := a.State(idx)
	if !floatNear(state.Time, 0.7) {
		t.Errorf("playhead = %v, want untouched 0.7", state.Time)
	}
	if !state.Paused {
		t.Error("switching to repeat-forever must not resume a paused instance")
	}
	if state.Repeat.Mode != RepeatModeForever {
		t.Errorf("repeat mode = %v, want forever", state.Repeat.Mode)
	}
}

func TestSetRepeatForeverResumesFinishedInstance(t *testing.T) {
	a, idx := newTestAnimator(t, model.AnimationClip{Name: "survey", Duration: 1})
	a.Play(idx, 0, RepeatOnce())
	a.Advance(idx, 1.5)

	state, _ := a.State(idx)
	if !state.Finished {
		t.Fatal("expected the single pass to finish")
	}

	a.SetRepeat(idx, RepeatForever())
	a.Advance(idx, 0.25)

	state, _ = a.State(idx)
	if state.Finished {
		t.Error("repeat-forever instance still reports finished")
	}
	if !floatNear(state.Time, 0.25) {
		t.Errorf("playhead after resuming from held end = %v, want 0.25", state.Time)
	}
}

func TestCrossfadePromotesIncomingClip(t *testing.T) {
	a, idx := newTestAnimator(t,
		model.AnimationClip{Name: "run", Duration: 2},
		model.AnimationClip{Name: "walk", Duration: 2},
	)
	a.Play(idx, 0, RepeatForever())
	a.Advance(idx, 1.0)

	a.CrossfadeTo(idx, 1, 0.25, RepeatForever())

	a.Advance(idx, 0.1)
	state, _ := a.State(idx)
	if !state.Blending {
		t.Fatal("expected an in-progress crossfade")
	}
	if state.ClipIndex != 0 {
		t.Errorf("primary clip during fade = %d, want 0", state.ClipIndex)
	}
	if !floatNear(state.BlendProgress, 0.4) {
		t.Errorf("fade progress = %v, want 0.4", state.BlendProgress)
	}

	a.Advance(idx, 0.2)
	state, _ = a.State(idx)
	if state.Blending {
		t.Fatal("crossfade did not complete")
	}
	if state.ClipIndex != 1 {
		t.Errorf("promoted clip = %d, want 1", state.ClipIndex)
	}
	// The incoming clip keeps the time it accumulated during the fade.
	if !floatNear(state.Time, 0.3) {
		t.Errorf("promoted playhead = %v, want 0.3", state.Time)
	}
}

func TestSeekDuringCrossfadeSurvivesPromotion(t *testing.T) {
	a, idx := newTestAnimator(t,
		model.AnimationClip{Name: "run", Duration: 2},
		model.AnimationClip{Name: "walk", Duration: 2},
	)
	a.Play(idx, 0, RepeatForever())
	a.CrossfadeTo(idx, 1, 0.25, RepeatForever())
	a.Advance(idx, 0.1)

	// Mid-fade the incoming clip sits at 0.1; the seek moves it to 0.6.
	a.Seek(idx, 0.5)

	a.Advance(idx, 0.2)
	state, _ := a.State(idx)
	if state.Blending {
		t.Fatal("crossfade did not complete")
	}
	if !floatNear(state.Time, 0.8) {
		t.Errorf("promoted playhead = %v, want 0.8 with the mid-fade seek applied", state.Time)
	}
}

func TestCrossfadeZeroDurationSwitchesImmediately(t *testing.T) {
	a, idx := newTestAnimator(t,
		model.AnimationClip{Name: "run", Duration: 2},
		model.AnimationClip{Name: "walk", Duration: 2},
	)
	a.Play(idx, 0, RepeatForever())
	a.SetSpeed(idx, 3)
	a.Advance(idx, 0.5)

	a.CrossfadeTo(idx, 1, 0, RepeatForever())

	state, _ := a.State(idx)
	if state.Blending {
		t.Error("zero-duration fade should not leave a blend in progress")
	}
	if state.ClipIndex != 1 {
		t.Errorf("clip = %d, want 1", state.ClipIndex)
	}
	if !floatNear(state.Time, 0) {
		t.Errorf("playhead = %v, want 0", state.Time)
	}
	if !floatNear(state.Speed, 1) {
		t.Errorf("speed = %v, want reset to 1 for a fresh playback", state.Speed)
	}
}

func TestPauseFreezesCrossfade(t *testing.T) {
	a, idx := newTestAnimator(t,
		model.AnimationClip{Name: "run", Duration: 2},
		model.AnimationClip{Name: "walk", Duration: 2},
	)
	a.Play(idx, 0, RepeatForever())
	a.CrossfadeTo(idx, 1, 0.25, RepeatForever())
	a.Advance(idx, 0.1)

	a.TogglePause(idx)
	a.Advance(idx, 1.0)

	state, _ := a.State(idx)
	if !state.Blending {
		t.Error("paused crossfade should stay in progress")
	}
	if !floatNear(state.BlendProgress, 0.4) {
		t.Errorf("paused fade progress = %v, want frozen at 0.4", state.BlendProgress)
	}
}

func TestInvalidInstanceOpsAreSilent(t *testing.T) {
	a := NewAnimator(WithClips(model.AnimationClip{Name: "walk", Duration: 2}))

	// No instances allocated: every op must be a no-op, never a panic.
	a.Play(3, 0, RepeatForever())
	a.CrossfadeTo(3, 0, 0.25, RepeatForever())
	a.TogglePause(3)
	a.ScaleSpeed(3, 1.2)
	a.Seek(3, 0.1)
	a.SetRepeat(3, RepeatOnce())
	a.Advance(3, 0.016)
	a.CancelBlend(3)

	if _, ok := a.State(3); ok {
		t.Error("State() on an unallocated instance should report invalid")
	}
	if a.IsBlending(-1) {
		t.Error("IsBlending() on a negative index should be false")
	}
	if a.BlendProgress(99) != 0 {
		t.Error("BlendProgress() on an unallocated instance should be 0")
	}
}

func TestPlayInvalidClipIsSilent(t *testing.T) {
	a, idx := newTestAnimator(t, model.AnimationClip{Name: "walk", Duration: 2})
	a.Play(idx, 0, RepeatForever())
	a.Advance(idx, 0.5)

	a.Play(idx, 7, RepeatForever())
	a.CrossfadeTo(idx, -1, 0.25, RepeatForever())

	state, _ := a.State(idx)
	if state.ClipIndex != 0 {
		t.Errorf("clip changed to %d on an out-of-range request, want 0", state.ClipIndex)
	}
	if !floatNear(state.Time, 0.5) {
		t.Errorf("playhead = %v, want untouched 0.5", state.Time)
	}
}

func TestAddInstanceGrowsCapacity(t *testing.T) {
	a := NewAnimator(WithMaxInstances(1))
	for want := 0; want < 3; want++ {
		idx, err := a.AddInstance()
		if err != nil {
			t.Fatalf("AddInstance() error = %v", err)
		}
		if idx != want {
			t.Errorf("AddInstance() = %d, want %d", idx, want)
		}
	}
	if got := a.InstanceCount(); got != 3 {
		t.Errorf("InstanceCount() = %d, want 3", got)
	}
}
