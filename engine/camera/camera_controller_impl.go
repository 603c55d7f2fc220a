package camera

import (
	"sync"

	"github.com/sbostic/fox-for-nora/common"
	"github.com/sbostic/fox-for-nora/engine/game_object"
)

// followControllerImpl is the single implementation of FollowController.
// The camera trails the followed object's facing direction, not a world-fixed
// axis: the offset point is the object's rotated forward vector scaled by the
// negative back distance, with the vertical component replaced by the height
// offset. Nothing is interpolated between frames.
type followControllerImpl struct {
	mu *sync.Mutex

	target game_object.GameObject

	backDistance float32
	height       float32

	position [3]float32
	lookAt   [3]float32
}

// Compile-time interface compliance check
var _ FollowController = &followControllerImpl{}

// NewFollowController creates a new follow controller with the default rig:
// 300 units behind the target and 200 units above it. Before the first Update
// the camera sits at (0, height, -backDistance) looking at the origin, which
// matches a target at the origin with identity rotation.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - FollowController: the newly created controller
func NewFollowController(options ...FollowControllerOption) FollowController {
	fc := &followControllerImpl{
		mu:           &sync.Mutex{},
		backDistance: 300.0,
		height:       200.0,
	}

	for _, option := range options {
		option(fc)
	}

	fc.position = [3]float32{0, fc.height, -fc.backDistance}
	fc.lookAt = [3]float32{0, 0, 0}
	if fc.target != nil {
		fc.update()
	}
	return fc
}

// update recomputes position and look-at from the followed object's transform.
// Caller must hold the mutex.
func (fc *followControllerImpl) update() {
	if fc.target == nil {
		return
	}

	t := fc.target.Transform()
	forward := common.QuatRotateVec3(t.Rotation, [3]float32{0, 0, 1})

	pos := common.Vec3Add(t.Translation, common.Vec3Scale(forward, -fc.backDistance))
	pos[1] = t.Translation[1] + fc.height

	fc.position = pos
	fc.lookAt = t.Translation
}

func (fc *followControllerImpl) Update() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.update()
}

func (fc *followControllerImpl) Position() (x, y, z float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.position[0], fc.position[1], fc.position[2]
}

func (fc *followControllerImpl) Target() (x, y, z float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.lookAt[0], fc.lookAt[1], fc.lookAt[2]
}

func (fc *followControllerImpl) FollowTarget() game_object.GameObject {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.target
}

func (fc *followControllerImpl) SetFollowTarget(target game_object.GameObject) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.target = target
	fc.update()
}

func (fc *followControllerImpl) BackDistance() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.backDistance
}

func (fc *followControllerImpl) Height() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.height
}
