package animator

import (
	"math"
	"sync"

	"github.com/sbostic/fox-for-nora/engine/model"
)

// instanceState holds the playback state for a single animator instance.
// It tracks the playhead, speed, pause flag, repeat bookkeeping, and the
// crossfade state that Advance uses to promote the incoming clip.
type instanceState struct {
	clipIndex int

	time, speed float32
	paused      bool
	finished    bool
	repeat      Repeat

	blending                    bool
	blendTo                     int
	blendToTime                 float32
	blendToRepeat               Repeat
	blendDuration, blendElapsed float32
}

// animator is the implementation of the Animator interface.
// It manages the clip registry and per-instance playback state. All playback
// is CPU-side clock arithmetic; sampling poses from the clip data is the
// presentation layer's concern.
type animator struct {
	mu *sync.Mutex

	maxInstances  int
	instanceCount int

	clips []model.AnimationClip

	instanceStateData []instanceState
}

// PlaybackState is a value snapshot of one instance's playback, used by the
// status display and by tests. Reading it never blocks playback advancement
// for longer than a field copy.
type PlaybackState struct {
	// ClipIndex is the primary clip being played.
	ClipIndex int
	// Time is the playhead position in seconds.
	Time float32
	// Speed is the playback speed multiplier.
	Speed float32
	// Paused reports whether the playhead is frozen.
	Paused bool
	// Finished reports whether a counted repeat has run out of passes.
	Finished bool
	// Repeat is the active end-of-clip behavior.
	Repeat Repeat
	// Blending reports whether a crossfade is in progress.
	Blending bool
	// BlendProgress is the crossfade completion from 0 to 1, or 0 when not blending.
	BlendProgress float32
}

// Animator defines the interface for clip playback.
// It owns an ordered clip registry and a set of playback instances, each with
// an independent playhead, speed, pause flag, repeat setting, and crossfade
// state. Instance indices outside the allocated range are silently ignored;
// a mistimed control input must never crash playback.
type Animator interface {
	// AddClip appends a clip to the registry and returns its index.
	// Registry order is the cycle order.
	//
	// Parameters:
	//   - clip: the clip to register
	//
	// Returns:
	//   - int: the index of the added clip
	AddClip(clip model.AnimationClip) int

	// ClipCount returns the number of registered clips.
	//
	// Returns:
	//   - int: the clip count
	ClipCount() int

	// Clip retrieves a registered clip by index.
	//
	// Parameters:
	//   - index: the clip index
	//
	// Returns:
	//   - model.AnimationClip: the clip, or the zero value if out of range
	//   - bool: true if the index was valid
	Clip(index int) (model.AnimationClip, bool)

	// AddInstance allocates a playback slot and returns its index.
	// The slot starts paused on no clip; call Play or CrossfadeTo to start it.
	//
	// Returns:
	//   - int: the index of the new instance
	//   - error: reserved for allocation failure; currently always nil
	AddInstance() (int, error)

	// InstanceCount returns the number of allocated playback slots.
	//
	// Returns:
	//   - int: the instance count
	InstanceCount() int

	// Play starts a clip on an instance from the beginning.
	// The playhead resets to zero, speed resets to 1, and the instance
	// unpauses.
	//
	// Parameters:
	//   - instanceIndex: the index of the instance to animate
	//   - clipIndex: the index of the clip to play
	//   - repeat: the end-of-clip behavior
	Play(instanceIndex, clipIndex int, repeat Repeat)

	// CrossfadeTo transitions an instance to a new clip over the given
	// duration. The incoming clip starts fresh (playhead zero, speed 1,
	// unpaused) and is promoted to primary once the fade completes, carrying
	// over the time it accumulated during the fade. A duration of zero or
	// less switches immediately.
	//
	// Parameters:
	//   - instanceIndex: the index of the instance
	//   - clipIndex: the clip to fade to
	//   - duration: the fade length in seconds
	//   - repeat: the end-of-clip behavior for the incoming clip
	CrossfadeTo(instanceIndex, clipIndex int, duration float32, repeat Repeat)

	// TogglePause flips the pause flag on an instance. Pausing freezes the
	// playhead and any in-progress crossfade; resuming continues from the
	// frozen position.
	//
	// Parameters:
	//   - instanceIndex: the index of the instance
	TogglePause(instanceIndex int)

	// ScaleSpeed multiplies the playback speed of an instance by a factor.
	// The product is not clamped in either direction: repeated scaling can
	// reach arbitrarily large or small speeds.
	//
	// Parameters:
	//   - instanceIndex: the index of the instance
	//   - factor: the multiplier to apply to the current speed
	ScaleSpeed(instanceIndex int, factor float32)

	// SetSpeed sets the playback speed multiplier of an instance.
	//
	// Parameters:
	//   - instanceIndex: the index of the instance
	//   - speed: the speed multiplier (1.0 = normal)
	SetSpeed(instanceIndex int, speed float32)

	// Seek shifts the playhead of an instance by a signed delta in seconds.
	// The result is not clamped: negative positions and positions past the
	// clip end are allowed and resolve on the next Advance. During a
	// crossfade the delta also shifts the incoming clip's clock, so the seek
	// survives promotion.
	//
	// Parameters:
	//   - instanceIndex: the index of the instance
	//   - delta: the signed playhead shift in seconds
	Seek(instanceIndex int, delta float32)

	// SetTime sets the absolute playhead position of an instance in seconds.
	// During a crossfade the incoming clip's clock is set to the same
	// position, so the assignment survives promotion.
	//
	// Parameters:
	//   - instanceIndex: the index of the instance
	//   - time: the playhead position in seconds
	SetTime(instanceIndex int, time float32)

	// SetRepeat replaces the end-of-clip behavior of an instance.
	// For RepeatModeOnce and RepeatModeCount this is a replay: the playhead
	// resets to zero, the finished flag clears, and the instance unpauses
	// even if it was paused. For RepeatModeForever only the mode changes; the
	// playhead, speed, and pause flag are left untouched.
	//
	// Parameters:
	//   - instanceIndex: the index of the instance
	//   - repeat: the new end-of-clip behavior
	SetRepeat(instanceIndex int, repeat Repeat)

	// Advance steps an instance's playback clocks by dt seconds scaled by the
	// instance speed. Wraps or finishes the playhead according to the repeat
	// setting and promotes a completed crossfade. Paused instances do not
	// advance.
	//
	// Parameters:
	//   - instanceIndex: the index of the instance
	//   - dt: the frame delta time in seconds
	Advance(instanceIndex int, dt float32)

	// IsBlending returns whether an instance is currently crossfading.
	//
	// Parameters:
	//   - instanceIndex: the index of the instance to check
	//
	// Returns:
	//   - bool: true if the instance is currently crossfading
	IsBlending(instanceIndex int) bool

	// BlendProgress returns the current crossfade progress for an instance.
	//
	// Parameters:
	//   - instanceIndex: the index of the instance to check
	//
	// Returns:
	//   - float32: fade progress from 0.0 (start) to 1.0 (complete), or 0.0 if not fading
	BlendProgress(instanceIndex int) float32

	// CancelBlend stops an in-progress crossfade and keeps the current
	// primary clip.
	//
	// Parameters:
	//   - instanceIndex: the index of the instance to cancel fading for
	CancelBlend(instanceIndex int)

	// State returns a value snapshot of an instance's playback.
	//
	// Parameters:
	//   - instanceIndex: the index of the instance
	//
	// Returns:
	//   - PlaybackState: the snapshot, or the zero value if out of range
	//   - bool: true if the index was valid
	State(instanceIndex int) (PlaybackState, bool)
}

var _ Animator = &animator{}

// NewAnimator creates and initializes a new Animator with the specified
// options applied. Instance slots are allocated up front and grown on demand.
//
// Parameters:
//   - options: a variadic list of AnimatorBuilderOption functions to configure the Animator
//
// Returns:
//   - Animator: a new Animator instance
func NewAnimator(options ...AnimatorBuilderOption) Animator {
	a := &animator{
		mu:           &sync.Mutex{},
		maxInstances: 8,
	}
	for _, opt := range options {
		opt(a)
	}
	a.instanceStateData = make([]instanceState, a.maxInstances)
	return a
}

func (a *animator) AddClip(clip model.AnimationClip) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.clips = append(a.clips, clip)
	return len(a.clips) - 1
}

func (a *animator) ClipCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.clips)
}

func (a *animator) Clip(index int) (model.AnimationClip, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if index < 0 || index >= len(a.clips) {
		return model.AnimationClip{}, false
	}
	return a.clips[index], true
}

func (a *animator) AddInstance() (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.instanceCount >= a.maxInstances {
		// Auto-grow: double capacity (minimum 8).
		newMax := a.maxInstances * 2
		if newMax < 8 {
			newMax = 8
		}
		grown := make([]instanceState, newMax)
		copy(grown, a.instanceStateData)
		a.instanceStateData = grown
		a.maxInstances = newMax
	}
	idx := a.instanceCount
	a.instanceCount++
	return idx, nil
}

func (a *animator) InstanceCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.instanceCount
}

func (a *animator) Play(instanceIndex, clipIndex int, repeat Repeat) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if instanceIndex < 0 || instanceIndex >= a.instanceCount {
		return
	}
	if clipIndex < 0 || clipIndex >= len(a.clips) {
		return
	}
	a.startClip(&a.instanceStateData[instanceIndex], clipIndex, repeat)
}

// startClip resets an instance to a fresh playback of clipIndex.
// Caller must hold the mutex.
func (a *animator) startClip(state *instanceState, clipIndex int, repeat Repeat) {
	state.clipIndex = clipIndex
	state.time = 0
	state.speed = 1.0
	state.paused = false
	state.finished = false
	state.repeat = repeat
	state.blending = false
	state.blendElapsed = 0
}

func (a *animator) CrossfadeTo(instanceIndex, clipIndex int, duration float32, repeat Repeat) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if instanceIndex < 0 || instanceIndex >= a.instanceCount {
		return
	}
	if clipIndex < 0 || clipIndex >= len(a.clips) {
		return
	}
	state := &a.instanceStateData[instanceIndex]
	if duration <= 0 {
		a.startClip(state, clipIndex, repeat)
		return
	}
	state.blending = true
	state.blendTo = clipIndex
	state.blendToTime = 0
	state.blendToRepeat = repeat
	state.blendDuration = duration
	state.blendElapsed = 0
	// The incoming clip plays fresh: the fade itself runs at normal speed,
	// unpaused, and the outgoing pose only persists as the fade-out source.
	state.speed = 1.0
	state.paused = false
	state.finished = false
}

func (a *animator) TogglePause(instanceIndex int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if instanceIndex < 0 || instanceIndex >= a.instanceCount {
		return
	}
	state := &a.instanceStateData[instanceIndex]
	state.paused = !state.paused
}

func (a *animator) ScaleSpeed(instanceIndex int, factor float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if instanceIndex < 0 || instanceIndex >= a.instanceCount {
		return
	}
	a.instanceStateData[instanceIndex].speed *= factor
}

func (a *animator) SetSpeed(instanceIndex int, speed float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if instanceIndex < 0 || instanceIndex >= a.instanceCount {
		return
	}
	a.instanceStateData[instanceIndex].speed = speed
}

func (a *animator) Seek(instanceIndex int, delta float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if instanceIndex < 0 || instanceIndex >= a.instanceCount {
		return
	}
	state := &a.instanceStateData[instanceIndex]
	state.time += delta
	// Promotion replaces time with the incoming clip's clock, so a seek
	// issued mid-fade must move that clock as well.
	if state.blending {
		state.blendToTime += delta
	}
}

func (a *animator) SetTime(instanceIndex int, time float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if instanceIndex < 0 || instanceIndex >= a.instanceCount {
		return
	}
	state := &a.instanceStateData[instanceIndex]
	state.time = time
	if state.blending {
		state.blendToTime = time
	}
}

func (a *animator) SetRepeat(instanceIndex int, repeat Repeat) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if instanceIndex < 0 || instanceIndex >= a.instanceCount {
		return
	}
	state := &a.instanceStateData[instanceIndex]
	state.repeat = repeat

	switch repeat.Mode {
	case RepeatModeOnce, RepeatModeCount:
		// Counted modes replay: back to the start, playing, regardless of
		// prior pause or finished state. Speed is kept.
		state.time = 0
		state.finished = false
		state.paused = false
	case RepeatModeForever:
		// Mode change only. A finished instance resumes wrapping from its
		// held position on the next Advance.
		state.finished = false
	}
}

func (a *animator) Advance(instanceIndex int, dt float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if instanceIndex < 0 || instanceIndex >= a.instanceCount {
		return
	}
	state := &a.instanceStateData[instanceIndex]
	if state.paused {
		return
	}

	if !state.finished {
		state.time += dt * state.speed
		a.resolvePlayhead(state)
	}

	if state.blending {
		state.blendElapsed += dt
		state.blendToTime += dt * state.speed

		if state.blendTo >= 0 && state.blendTo < len(a.clips) {
			duration := a.clips[state.blendTo].Duration
			if duration > 0 && state.blendToTime > duration {
				state.blendToTime = float32(math.Mod(float64(state.blendToTime), float64(duration)))
			}
		}

		progress := state.blendElapsed / state.blendDuration
		if progress >= 1.0 {
			state.clipIndex = state.blendTo
			state.time = state.blendToTime
			state.repeat = state.blendToRepeat
			state.finished = false
			state.blending = false
			state.blendElapsed = 0
		}
	}
}

// resolvePlayhead wraps or finishes the primary playhead according to the
// repeat setting. Negative playheads (from backward seeks) are left alone
// until they accumulate past zero. Caller must hold the mutex.
func (a *animator) resolvePlayhead(state *instanceState) {
	if state.clipIndex < 0 || state.clipIndex >= len(a.clips) {
		return
	}
	duration := a.clips[state.clipIndex].Duration
	if duration <= 0 {
		return
	}

	switch state.repeat.Mode {
	case RepeatModeForever:
		if state.time > duration {
			state.time = float32(math.Mod(float64(state.time), float64(duration)))
		}
	case RepeatModeOnce, RepeatModeCount:
		if state.repeat.Remaining == 0 {
			state.time = duration
			state.finished = true
			return
		}
		for state.time > duration {
			state.repeat.Remaining--
			if state.repeat.Remaining == 0 {
				// Hold the final pose.
				state.time = duration
				state.finished = true
				return
			}
			state.time -= duration
		}
	}
}

func (a *animator) IsBlending(instanceIndex int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if instanceIndex < 0 || instanceIndex >= a.instanceCount {
		return false
	}
	return a.instanceStateData[instanceIndex].blending
}

func (a *animator) BlendProgress(instanceIndex int) float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if instanceIndex < 0 || instanceIndex >= a.instanceCount {
		return 0
	}
	state := &a.instanceStateData[instanceIndex]
	if !state.blending {
		return 0
	}
	return state.blendElapsed / state.blendDuration
}

func (a *animator) CancelBlend(instanceIndex int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if instanceIndex < 0 || instanceIndex >= a.instanceCount {
		return
	}
	a.instanceStateData[instanceIndex].blending = false
	a.instanceStateData[instanceIndex].blendElapsed = 0
}

func (a *animator) State(instanceIndex int) (PlaybackState, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if instanceIndex < 0 || instanceIndex >= a.instanceCount {
		return PlaybackState{}, false
	}
	state := &a.instanceStateData[instanceIndex]
	snap := PlaybackState{
		ClipIndex: state.clipIndex,
		Time:      state.time,
		Speed:     state.speed,
		Paused:    state.paused,
		Finished:  state.finished,
		Repeat:    state.repeat,
		Blending:  state.blending,
	}
	if state.blending {
		snap.BlendProgress = state.blendElapsed / state.blendDuration
	}
	return snap, true
}
