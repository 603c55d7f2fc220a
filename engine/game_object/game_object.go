package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/sbostic/fox-for-nora/common"
	"github.com/sbostic/fox-for-nora/engine/animator"
	"github.com/sbostic/fox-for-nora/engine/model"
)

type gameObject struct {
	mu                 *sync.Mutex
	id                 uint64
	enabled            atomic.Bool
	ephemeral          bool
	mdl                model.Model
	animator           animator.Animator
	animatorInstanceID int
	transform          model.Transform
	moveSpeed          float32
}

// GameObject defines the interface for a scene entity. Each object owns its
// own Transform; playback state for its animation lives in the bound Animator
// instance identified by AnimatorInstanceID.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Ephemeral returns whether this object is ephemeral.
	// Ephemeral objects are not persisted in the scene's registry when added.
	//
	// Returns:
	//   - bool: true if ephemeral
	Ephemeral() bool

	// Model returns the Model associated with this object, or nil if not set.
	//
	// Returns:
	//   - model.Model: the associated model or nil
	Model() model.Model

	// Animator returns the Animator associated with this object.
	//
	// Returns:
	//   - animator.Animator: the associated Animator, or nil
	Animator() animator.Animator

	// AnimatorInstanceID returns the instance index within the Animator.
	//
	// Returns:
	//   - int: the instance index, or -1 if unset
	AnimatorInstanceID() int

	// Transform returns a copy of the object's current transform.
	//
	// Returns:
	//   - model.Transform: the current transform
	Transform() model.Transform

	// Position returns the object's current position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Rotation returns the object's current rotation quaternion (x, y, z, w).
	//
	// Returns:
	//   - [4]float32: the rotation quaternion
	Rotation() [4]float32

	// Scale returns the object's current scale.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// MoveSpeed returns the object's movement speed in world units per second.
	// Falls back to the model's move speed when no explicit speed is set.
	//
	// Returns:
	//   - float32: the movement speed
	MoveSpeed() float32

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetModel assigns a Model to this object.
	//
	// Parameters:
	//   - m: the Model to associate
	SetModel(m model.Model)

	// SetAnimator sets the Animator associated with this object.
	//
	// Parameters:
	//   - anim: the Animator to associate
	SetAnimator(anim animator.Animator)

	// SetAnimatorInstanceID sets the instance index within the Animator.
	//
	// Parameters:
	//   - instanceID: the instance index
	SetAnimatorInstanceID(instanceID int)

	// SetTransform replaces the object's transform in a single write.
	//
	// Parameters:
	//   - t: the transform to assign
	SetTransform(t model.Transform)

	// SetPosition updates the object's position, preserving rotation and scale.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotation updates the object's rotation quaternion, preserving position and scale.
	//
	// Parameters:
	//   - q: the rotation quaternion (x, y, z, w)
	SetRotation(q [4]float32)

	// SetScale updates the object's scale, preserving position and rotation.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)

	// SetMoveSpeed overrides the object's movement speed.
	//
	// Parameters:
	//   - speed: movement speed in world units per second
	SetMoveSpeed(speed float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Objects start enabled; use WithEnabled(false) or SetEnabled to build one
// that the scene skips.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu:                 &sync.Mutex{},
		animatorInstanceID: -1,
		transform:          model.NewTransform(),
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Ephemeral() bool {
	return g.ephemeral
}

func (g *gameObject) Model() model.Model {
	return g.mdl
}

func (g *gameObject) Animator() animator.Animator {
	return g.animator
}

func (g *gameObject) AnimatorInstanceID() int {
	return g.animatorInstanceID
}

func (g *gameObject) Transform() model.Transform {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.transform
}

func (g *gameObject) Position() (x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.transform.Translation[0], g.transform.Translation[1], g.transform.Translation[2]
}

func (g *gameObject) Rotation() [4]float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.transform.Rotation
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.transform.Scale[0], g.transform.Scale[1], g.transform.Scale[2]
}

func (g *gameObject) MoveSpeed() float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.mdl == nil {
		return g.moveSpeed
	}
	return common.Coalesce(g.moveSpeed, g.mdl.MoveSpeed())
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetModel(m model.Model) {
	g.mdl = m
}

func (g *gameObject) SetAnimator(anim animator.Animator) {
	g.animator = anim
}

func (g *gameObject) SetAnimatorInstanceID(instanceID int) {
	g.animatorInstanceID = instanceID
}

func (g *gameObject) SetTransform(t model.Transform) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transform = t
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transform.Translation = [3]float32{x, y, z}
}

func (g *gameObject) SetRotation(q [4]float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transform.Rotation = q
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transform.Scale = [3]float32{sx, sy, sz}
}

func (g *gameObject) SetMoveSpeed(speed float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.moveSpeed = speed
}
