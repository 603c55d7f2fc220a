package locomotion

import "github.com/sbostic/fox-for-nora/engine/game_object"

// ControllerBuilderOption is a functional option for configuring a locomotion Controller during construction.
type ControllerBuilderOption func(*controller)

// WithTarget sets the GameObject the controller drives.
//
// Parameters:
//   - target: the object to drive
//
// Returns:
//   - ControllerBuilderOption: functional option to set the target
func WithTarget(target game_object.GameObject) ControllerBuilderOption {
	return func(c *controller) {
		c.target = target
	}
}
