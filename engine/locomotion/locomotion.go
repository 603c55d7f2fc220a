package locomotion

import (
	"math"
	"sync"

	"github.com/sbostic/fox-for-nora/common"
	"github.com/sbostic/fox-for-nora/engine/game_object"
	"github.com/sbostic/fox-for-nora/engine/input"
)

type controller struct {
	mu     *sync.Mutex
	target game_object.GameObject
}

// Controller drives a GameObject across the ground plane from held direction
// keys. Diagonals are normalized so the step length is speed * dt in every
// direction, and the target is rotated to face its direction of travel.
// While no direction key is held the target keeps its last facing.
type Controller interface {
	// Update applies one simulation step of movement to the target.
	// Without a target, or with no direction held, it does nothing.
	//
	// Parameters:
	//   - deltaTime: seconds elapsed since the previous update
	//   - snap: the frame's input snapshot
	Update(deltaTime float32, snap input.Snapshot)

	// Target returns the GameObject being driven, or nil if none is set.
	//
	// Returns:
	//   - game_object.GameObject: the driven object or nil
	Target() game_object.GameObject

	// SetTarget replaces the GameObject being driven. Pass nil to detach.
	//
	// Parameters:
	//   - target: the object to drive, or nil
	SetTarget(target game_object.GameObject)
}

var _ Controller = &controller{}

// NewController creates a new locomotion Controller configured with the
// given options.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerBuilderOption) Controller {
	c := &controller{
		mu: &sync.Mutex{},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *controller) Update(deltaTime float32, snap input.Snapshot) {
	c.mu.Lock()
	target := c.target
	c.mu.Unlock()
	if target == nil {
		return
	}

	var dir [3]float32
	if snap.MoveForward {
		dir[2] -= 1
	}
	if snap.MoveBack {
		dir[2] += 1
	}
	if snap.MoveLeft {
		dir[0] -= 1
	}
	if snap.MoveRight {
		dir[0] += 1
	}
	if dir[0] == 0 && dir[2] == 0 {
		return
	}
	dir = common.Vec3Normalize(dir)

	t := target.Transform()
	step := target.MoveSpeed() * deltaTime
	t.Translation = common.Vec3Add(t.Translation, common.Vec3Scale(dir, step))

	yaw := float32(-math.Atan2(float64(dir[0]), float64(dir[2])))
	t.Rotation = common.QuatFromAxisAngle([3]float32{0, 1, 0}, yaw)
	target.SetTransform(t)
}

func (c *controller) Target() game_object.GameObject {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *controller) SetTarget(target game_object.GameObject) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = target
}
