package model

import (
	"github.com/sbostic/fox-for-nora/common"
)

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithAnimations is an option builder that sets the animation clips of the Model.
// The order given here is the cycle order.
//
// Parameters:
//   - animations: the animation clips to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the animations option to a model
func WithAnimations(animations ...AnimationClip) ModelBuilderOption {
	return func(m *model) {
		m.animations = animations
	}
}

// WithMoveSpeed is an option builder that sets the movement speed of the Model
// in world units per second.
//
// Parameters:
//   - speed: the movement speed to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the move speed option to a model
func WithMoveSpeed(speed float32) ModelBuilderOption {
	return func(m *model) {
		m.moveSpeed = speed
	}
}

// WithBoundingRadius is an option builder that manually sets the bounding sphere radius.
// Use this to override the default when a manually tuned conservative bound is preferred.
//
// Parameters:
//   - radius: the bounding radius to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the bounding radius option to a model
func WithBoundingRadius(radius float32) ModelBuilderOption {
	return func(m *model) {
		m.boundingRadius = radius
	}
}

// WithTint is an option builder that sets the foreground color used when
// drawing the Model.
//
// Parameters:
//   - tint: the color to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the tint option to a model
func WithTint(tint common.Color) ModelBuilderOption {
	return func(m *model) {
		m.tint = tint
	}
}

// WithGlyph is an option builder that sets the rune drawn at the Model's
// projected position.
//
// Parameters:
//   - glyph: the body glyph to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the glyph option to a model
func WithGlyph(glyph rune) ModelBuilderOption {
	return func(m *model) {
		m.glyph = glyph
	}
}
