package model

// Transform represents a decomposed transform for placement and animation.
type Transform struct {
	// Translation is the position offset.
	Translation [3]float32

	// Rotation is the orientation as a quaternion (x, y, z, w).
	Rotation [4]float32

	// Scale is the scale factor along each axis.
	Scale [3]float32
}

// NewTransform returns a Transform at the origin with identity rotation and
// unit scale.
//
// Returns:
//   - Transform: the identity transform
func NewTransform() Transform {
	return Transform{
		Rotation: [4]float32{0, 0, 0, 1},
		Scale:    [3]float32{1, 1, 1},
	}
}

// AnimationClip represents a single animation (walk, run, survey, etc.).
type AnimationClip struct {
	// Name is the animation identifier.
	Name string

	// Duration is the total length of the animation in seconds.
	Duration float32
}
