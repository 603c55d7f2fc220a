package locomotion

import (
	"math"
	"testing"

	"github.com/sbostic/fox-for-nora/common"
	"github.com/sbostic/fox-for-nora/engine/game_object"
	"github.com/sbostic/fox-for-nora/engine/input"
)

const testEpsilon = 1e-4

func floatNear(got, want float32) bool {
	return math.Abs(float64(got-want)) < testEpsilon
}

func newTarget(speed float32) game_object.GameObject {
	return game_object.NewGameObject(game_object.WithMoveSpeed(speed))
}

func TestForwardForOneSecondAtSpeedFive(t *testing.T) {
	obj := newTarget(5.0)
	c := NewController(WithTarget(obj))

	c.Update(1.0, input.Snapshot{MoveForward: true})

	x, y, z := obj.Position()
	if !floatNear(x, 0) || !floatNear(y, 0) || !floatNear(z, -5) {
		t.Errorf("position = (%v, %v, %v), want (0, 0, -5)", x, y, z)
	}
}

func TestDirectionPerKey(t *testing.T) {
	tests := []struct {
		name string
		snap input.Snapshot
		want [3]float32
	}{
		{"forward", input.Snapshot{MoveForward: true}, [3]float32{0, 0, -1}},
		{"back", input.Snapshot{MoveBack: true}, [3]float32{0, 0, 1}},
		{"left", input.Snapshot{MoveLeft: true}, [3]float32{-1, 0, 0}},
		{"right", input.Snapshot{MoveRight: true}, [3]float32{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := newTarget(1.0)
			c := NewController(WithTarget(obj))

			c.Update(1.0, tt.snap)

			x, y, z := obj.Position()
			if !floatNear(x, tt.want[0]) || !floatNear(y, tt.want[1]) || !floatNear(z, tt.want[2]) {
				t.Errorf("position = (%v, %v, %v), want %v", x, y, z, tt.want)
			}
		})
	}
}

func TestDiagonalStepIsNormalized(t *testing.T) {
	// W+A travels the -X/-Z bisector with the same step length as a single
	// key, not sqrt(2) times it.
	obj := newTarget(5.0)
	c := NewController(WithTarget(obj))

	c.Update(1.0, input.Snapshot{MoveForward: true, MoveLeft: true})

	x, _, z := obj.Position()
	dist := float32(math.Sqrt(float64(x*x + z*z)))
	if !floatNear(dist, 5.0) {
		t.Errorf("travel distance = %v, want 5.0", dist)
	}
	if !floatNear(x, z) {
		t.Errorf("W+A must bisect -X/-Z, got (%v, _, %v)", x, z)
	}
	if x >= 0 {
		t.Errorf("W+A must travel toward negative X, got %v", x)
	}
}

func TestOppositeKeysCancelExactly(t *testing.T) {
	obj := newTarget(5.0)
	obj.SetRotation(common.QuatFromAxisAngle([3]float32{0, 1, 0}, 0.5))
	c := NewController(WithTarget(obj))
	before := obj.Transform()

	c.Update(1.0, input.Snapshot{MoveForward: true, MoveBack: true, MoveLeft: true, MoveRight: true})

	after := obj.Transform()
	if before.Translation != after.Translation {
		t.Errorf("canceled keys moved the target: %v -> %v", before.Translation, after.Translation)
	}
	if before.Rotation != after.Rotation {
		t.Error("canceled keys must not touch the facing")
	}
}

func TestFacingYawFromTravelDirection(t *testing.T) {
	// The facing yaw is -atan2(dir.x, dir.z) about +Y.
	tests := []struct {
		name    string
		snap    input.Snapshot
		wantYaw float32
	}{
		{"forward", input.Snapshot{MoveForward: true}, -math.Pi},
		{"right", input.Snapshot{MoveRight: true}, -math.Pi / 2},
		{"back-left", input.Snapshot{MoveBack: true, MoveLeft: true}, math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := newTarget(1.0)
			c := NewController(WithTarget(obj))

			c.Update(0.016, tt.snap)

			want := common.QuatFromAxisAngle([3]float32{0, 1, 0}, tt.wantYaw)
			got := obj.Rotation()
			for i := range got {
				if !floatNear(got[i], want[i]) {
					t.Fatalf("rotation = %v, want yaw %v -> %v", got, tt.wantYaw, want)
				}
			}
		})
	}
}

func TestIdleKeepsLastFacing(t *testing.T) {
	obj := newTarget(5.0)
	c := NewController(WithTarget(obj))

	c.Update(0.016, input.Snapshot{MoveRight: true})
	facing := obj.Rotation()

	c.Update(0.016, input.Snapshot{})

	if obj.Rotation() != facing {
		t.Error("an idle frame must keep the last facing")
	}
	x, _, _ := obj.Position()
	wantX := 5.0 * float32(0.016)
	if !floatNear(x, wantX) {
		t.Errorf("idle frame moved the target: x = %v, want %v", x, wantX)
	}
}

func TestUpdateWithoutTargetIsNoOp(t *testing.T) {
	c := NewController()
	c.Update(1.0, input.Snapshot{MoveForward: true})

	obj := newTarget(5.0)
	c.SetTarget(obj)
	if c.Target() != obj {
		t.Error("SetTarget must install the target")
	}
}
