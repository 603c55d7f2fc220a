package scene

import (
	"github.com/sbostic/fox-for-nora/engine/animator"
	"github.com/sbostic/fox-for-nora/engine/camera"
	"github.com/sbostic/fox-for-nora/engine/game_object"
	"github.com/sbostic/fox-for-nora/engine/locomotion"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for simulation and rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithObjects adds initial objects to the scene.
// Objects without IDs will be assigned new IDs.
// Non-ephemeral objects are persisted in the registry.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			if obj.ID() == 0 {
				obj.SetID(s.nextID)
				s.nextID++
			}
			if !obj.Ephemeral() {
				s.registry[obj.ID()] = obj
			}
		}
	}
}

// WithComputeWorkers sets the number of worker goroutines used during the
// parallel playback advance phase of Update. Defaults to runtime.NumCPU()-1.
// Higher values may improve throughput with many animated objects; lower
// values reduce scheduling overhead for simple scenes.
//
// Parameters:
//   - n: the number of compute workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithComputeWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.computeWorkers = n
	}
}

// WithCullingDisabled disables frustum culling for the scene. When set to
// true, DrawCalls skips the bounding-sphere frustum test and projects every
// enabled object. By default culling is enabled (disabled = false).
//
// Parameters:
//   - disabled: true to disable frustum culling, false to enable it (default)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCullingDisabled(disabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.cullingDisabled = disabled
	}
}

// WithAnimationController attaches the animation command controller that
// Update dispatches one-shot playback commands to.
//
// Parameters:
//   - ctrl: the animation controller
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithAnimationController(ctrl animator.Controller) SceneBuilderOption {
	return func(s *scene) {
		s.animController = ctrl
	}
}

// WithLocomotion attaches the locomotion controller that Update drives with
// the frame's held movement keys.
//
// Parameters:
//   - ctrl: the locomotion controller
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLocomotion(ctrl locomotion.Controller) SceneBuilderOption {
	return func(s *scene) {
		s.mover = ctrl
	}
}

// WithFollowController attaches the follow camera controller that Update
// refreshes after movement each frame.
//
// Parameters:
//   - ctrl: the follow controller
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithFollowController(ctrl camera.FollowController) SceneBuilderOption {
	return func(s *scene) {
		s.follow = ctrl
	}
}

// WithGrid sets the ground grid dimensions in world units.
// Values below or equal to zero leave the defaults in place.
//
// Parameters:
//   - extent: half-size of the grid from the origin
//   - step: spacing between grid lines
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithGrid(extent, step float32) SceneBuilderOption {
	return func(s *scene) {
		if extent > 0 {
			s.gridExtent = extent
		}
		if step > 0 {
			s.gridStep = step
		}
	}
}
