package game_object

import (
	"github.com/sbostic/fox-for-nora/engine/animator"
	"github.com/sbostic/fox-for-nora/engine/model"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject is enabled for rendering.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithEphemeral marks the GameObject as ephemeral. Ephemeral objects are not
// persisted in the scene's registry when added via Scene.Add.
//
// Parameters:
//   - ephemeral: true to mark as ephemeral
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Ephemeral flag
func WithEphemeral(ephemeral bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.ephemeral = ephemeral
	}
}

// WithModel sets the Model for this GameObject.
//
// Parameters:
//   - m: the Model to associate
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Model
func WithModel(m model.Model) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.mdl = m
	}
}

// WithAnimator binds an Animator instance to this GameObject.
//
// Parameters:
//   - anim: the Animator to associate
//   - instanceID: the instance index within the Animator
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Animator binding
func WithAnimator(anim animator.Animator, instanceID int) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.animator = anim
		obj.animatorInstanceID = instanceID
	}
}

// WithPosition sets the initial position of the GameObject.
//
// Parameters:
//   - x: the x position
//   - y: the y position
//   - z: the z position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.transform.Translation = [3]float32{x, y, z}
	}
}

// WithScale sets the initial scale of the GameObject.
//
// Parameters:
//   - sx: the x scale factor
//   - sy: the y scale factor
//   - sz: the z scale factor
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial scale
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.transform.Scale = [3]float32{sx, sy, sz}
	}
}

// WithRotation sets the initial rotation quaternion of the GameObject.
//
// Parameters:
//   - q: the rotation quaternion (x, y, z, w)
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial rotation
func WithRotation(q [4]float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.transform.Rotation = q
	}
}

// WithMoveSpeed overrides the movement speed of the GameObject. When unset,
// the speed falls back to the model's move speed.
//
// Parameters:
//   - speed: movement speed in world units per second
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the move speed
func WithMoveSpeed(speed float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.moveSpeed = speed
	}
}
