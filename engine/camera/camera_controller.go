package camera

import (
	"github.com/sbostic/fox-for-nora/engine/game_object"
)

// CameraController defines the minimal surface the Camera reads each frame.
// Controllers own positional state (position, target); the Camera reads from
// the controller and computes view/projection matrices.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)
}

// FollowController is a CameraController that rigidly trails a GameObject.
// Each Update it places the camera a fixed distance behind the target along
// the target's facing direction, a fixed height above it, and aims at the
// target. The placement is recomputed fresh every frame with no smoothing or
// damping: when the target spins, the camera swings with it instantly.
type FollowController interface {
	CameraController

	// Update recomputes the camera position and look-at point from the
	// followed object's current transform. Must run after the frame's
	// movement has been applied so the camera sees the post-movement
	// transform. With no followed object the previous placement is kept.
	Update()

	// FollowTarget returns the GameObject being followed, or nil if none.
	//
	// Returns:
	//   - game_object.GameObject: the followed object or nil
	FollowTarget() game_object.GameObject

	// SetFollowTarget replaces the GameObject being followed. Pass nil to
	// detach; Update then holds the last computed placement.
	//
	// Parameters:
	//   - target: the object to follow, or nil
	SetFollowTarget(target game_object.GameObject)

	// BackDistance returns the trailing distance behind the target in world units.
	//
	// Returns:
	//   - float32: the trailing distance
	BackDistance() float32

	// Height returns the camera height above the target in world units.
	//
	// Returns:
	//   - float32: the height offset
	Height() float32
}
