package animator

import (
	"fmt"
	"sync"

	"github.com/sbostic/fox-for-nora/engine/model"
)

// controller is the implementation of the Controller interface.
type controller struct {
	mu *sync.Mutex

	anim     Animator
	instance int

	crossfadeSeconds float32

	current int
	ready   bool
}

// Controller defines the interface for the animation command surface.
// It layers the discrete playback commands (pause, speed, seek, cycle,
// repeat) over one Animator instance and tracks which registry clip is
// logically current. Commands issued before playback has begun, or before
// any clips are registered, are silently ignored.
type Controller interface {
	// OnPlayerReady begins playback of the first registry clip, repeating
	// forever, with an immediate (zero-length) fade. It is idempotent:
	// repeat invocations after playback has begun change nothing, so a
	// re-fired readiness signal cannot restart or reset the animation.
	// With no clips registered it does nothing and stays not ready.
	OnPlayerReady()

	// Ready reports whether playback has begun.
	//
	// Returns:
	//   - bool: true once OnPlayerReady has started playback
	Ready() bool

	// TogglePause flips the pause state of the playback.
	TogglePause()

	// AdjustSpeed multiplies the playback speed by a factor. Successive
	// adjustments compound and are never clamped.
	//
	// Parameters:
	//   - factor: the multiplier to apply to the current speed
	AdjustSpeed(factor float32)

	// Seek shifts the playhead by a signed delta in seconds, unclamped.
	//
	// Parameters:
	//   - delta: the signed playhead shift in seconds
	Seek(delta float32)

	// CycleClip advances to the next registry clip, wrapping at the end, and
	// crossfades to it with repeat-forever behavior. With a single clip it
	// fades back into the same clip.
	CycleClip()

	// SetRepeatOnce makes the current clip play a single pass and replays it
	// from the start, resuming a paused playback.
	SetRepeatOnce()

	// SetRepeatCount makes the current clip play n passes and replays it
	// from the start, resuming a paused playback.
	//
	// Parameters:
	//   - n: the number of passes to play
	SetRepeatCount(n uint32)

	// SetRepeatForever makes the current clip wrap indefinitely without
	// moving the playhead or changing the pause state.
	SetRepeatForever()

	// CurrentClip retrieves the clip the controller considers current.
	//
	// Parameters: none
	//
	// Returns:
	//   - model.AnimationClip: the current clip, or the zero value before playback begins
	//   - bool: true if playback has begun
	CurrentClip() (model.AnimationClip, bool)

	// Describe returns a one-line status summary for display: clip name,
	// speed, pause flag, and repeat setting.
	//
	// Returns:
	//   - string: the status line, or "no animation" before playback begins
	Describe() string
}

var _ Controller = &controller{}

// NewController creates a new animation Controller bound to an Animator
// instance. Panics if anim is nil; the controller cannot operate without a
// playback backend.
//
// Parameters:
//   - anim: the Animator owning the playback instance
//   - instance: the playback instance index to control
//   - options: a variadic list of ControllerBuilderOption functions to configure the Controller
//
// Returns:
//   - Controller: a new Controller instance
func NewController(anim Animator, instance int, options ...ControllerBuilderOption) Controller {
	if anim == nil {
		panic("animator controller requires a non-nil animator")
	}
	c := &controller{
		mu:               &sync.Mutex{},
		anim:             anim,
		instance:         instance,
		crossfadeSeconds: 0.25,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *controller) OnPlayerReady() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		return
	}
	if c.anim.ClipCount() == 0 {
		return
	}
	c.current = 0
	c.anim.CrossfadeTo(c.instance, c.current, 0, RepeatForever())
	c.ready = true
}

func (c *controller) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

func (c *controller) TogglePause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	c.anim.TogglePause(c.instance)
}

func (c *controller) AdjustSpeed(factor float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	c.anim.ScaleSpeed(c.instance, factor)
}

func (c *controller) Seek(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	c.anim.Seek(c.instance, delta)
}

func (c *controller) CycleClip() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	count := c.anim.ClipCount()
	if count == 0 {
		return
	}
	c.current = (c.current + 1) % count
	c.anim.CrossfadeTo(c.instance, c.current, c.crossfadeSeconds, RepeatForever())
}

func (c *controller) SetRepeatOnce() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	c.anim.SetRepeat(c.instance, RepeatOnce())
}

func (c *controller) SetRepeatCount(n uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	c.anim.SetRepeat(c.instance, RepeatCount(n))
}

func (c *controller) SetRepeatForever() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	c.anim.SetRepeat(c.instance, RepeatForever())
}

func (c *controller) CurrentClip() (model.AnimationClip, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return model.AnimationClip{}, false
	}
	return c.anim.Clip(c.current)
}

func (c *controller) Describe() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return "no animation"
	}
	clip, ok := c.anim.Clip(c.current)
	if !ok {
		return "no animation"
	}
	state, ok := c.anim.State(c.instance)
	if !ok {
		return clip.Name
	}

	status := fmt.Sprintf("%s  speed x%.2f  repeat %s", clip.Name, state.Speed, state.Repeat)
	if state.Paused {
		status += "  [paused]"
	}
	if state.Finished {
		status += "  [done]"
	}
	return status
}
