package model

import (
	"github.com/sbostic/fox-for-nora/common"
)

// model is the implementation of the Model interface.
type model struct {
	name           string
	animations     []AnimationClip
	moveSpeed      float32
	boundingRadius float32
	tint           common.Color
	glyph          rune
}

// Model defines the interface for a character template.
// A Model is a shared, immutable description holding the ordered animation
// clips, the movement speed, and the terminal presentation of a character
// kind. GameObjects reference a Model; per-instance playback state lives on
// the animator.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Animations retrieves all animation clips bundled with this model.
	// The slice order is the cycle order used when stepping through clips.
	//
	// Returns:
	//   - []AnimationClip: the animation clips
	Animations() []AnimationClip

	// AnimationCount returns the number of available animation clips.
	//
	// Returns:
	//   - int: the animation count
	AnimationCount() int

	// AnimationNames returns the names of all animation clips.
	//
	// Returns:
	//   - []string: the animation clip names
	AnimationNames() []string

	// GetAnimationIndex returns the index of an animation by name, or -1 if not found.
	//
	// Parameters:
	//   - name: the animation clip name to search for
	//
	// Returns:
	//   - int: the animation index, or -1 if not found
	GetAnimationIndex(name string) int

	// MoveSpeed returns the movement speed for this model in world units per second.
	//
	// Returns:
	//   - float32: the movement speed
	MoveSpeed() float32

	// BoundingRadius returns the bounding sphere radius for this model.
	// Used by frustum culling before projection.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32

	// Tint returns the foreground color used when drawing this model.
	//
	// Returns:
	//   - common.Color: the model color
	Tint() common.Color

	// Glyph returns the rune drawn at the model's projected position.
	//
	// Returns:
	//   - rune: the body glyph
	Glyph() rune
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
// Defaults: move speed 5.0, bounding radius 1.0, glyph 'o', white tint.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{
		moveSpeed:      5.0,
		boundingRadius: 1.0,
		tint:           common.Color{R: 255, G: 255, B: 255},
		glyph:          'o',
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Animations() []AnimationClip {
	return m.animations
}

func (m *model) AnimationCount() int {
	return len(m.animations)
}

func (m *model) AnimationNames() []string {
	names := make([]string, len(m.animations))
	for i, anim := range m.animations {
		names[i] = anim.Name
	}
	return names
}

func (m *model) GetAnimationIndex(name string) int {
	for i, anim := range m.animations {
		if anim.Name == name {
			return i
		}
	}
	return -1
}

func (m *model) MoveSpeed() float32 {
	return m.moveSpeed
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}

func (m *model) Tint() common.Color {
	return m.tint
}

func (m *model) Glyph() rune {
	return m.glyph
}
