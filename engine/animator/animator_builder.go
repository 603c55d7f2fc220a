package animator

import (
	"github.com/sbostic/fox-for-nora/engine/model"
)

// AnimatorBuilderOption is a functional option for configuring an Animator via NewAnimator.
type AnimatorBuilderOption func(*animator)

// WithMaxInstances is an option builder that sets the initial number of
// playback slots. Values below 1 are clamped to 1; slots still grow on
// demand when AddInstance exceeds the capacity.
//
// Parameters:
//   - maxInstances: the initial instance capacity
//
// Returns:
//   - AnimatorBuilderOption: a function that applies the capacity option to an animator
func WithMaxInstances(maxInstances int) AnimatorBuilderOption {
	return func(a *animator) {
		if maxInstances < 1 {
			maxInstances = 1
		}
		a.maxInstances = maxInstances
	}
}

// WithClips is an option builder that registers clips at construction time.
// The order given here is the cycle order.
//
// Parameters:
//   - clips: the clips to register
//
// Returns:
//   - AnimatorBuilderOption: a function that applies the clips option to an animator
func WithClips(clips ...model.AnimationClip) AnimatorBuilderOption {
	return func(a *animator) {
		a.clips = append(a.clips, clips...)
	}
}
