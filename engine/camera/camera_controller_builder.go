package camera

import "github.com/sbostic/fox-for-nora/engine/game_object"

// FollowControllerOption is a functional option for configuring a FollowController.
type FollowControllerOption func(*followControllerImpl)

// WithFollowTarget sets the GameObject the controller trails.
//
// Parameters:
//   - target: the object to follow
//
// Returns:
//   - FollowControllerOption: option function to apply
func WithFollowTarget(target game_object.GameObject) FollowControllerOption {
	return func(fc *followControllerImpl) {
		fc.target = target
	}
}

// WithBackDistance sets the trailing distance behind the target in world
// units. Default is 300.
//
// Parameters:
//   - distance: the trailing distance
//
// Returns:
//   - FollowControllerOption: option function to apply
func WithBackDistance(distance float32) FollowControllerOption {
	return func(fc *followControllerImpl) {
		fc.backDistance = distance
	}
}

// WithHeight sets the camera height above the target in world units.
// Default is 200.
//
// Parameters:
//   - height: the height offset
//
// Returns:
//   - FollowControllerOption: option function to apply
func WithHeight(height float32) FollowControllerOption {
	return func(fc *followControllerImpl) {
		fc.height = height
	}
}
