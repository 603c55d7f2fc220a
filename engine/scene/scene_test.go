package scene

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/sbostic/fox-for-nora/common"
	"github.com/sbostic/fox-for-nora/engine/animator"
	"github.com/sbostic/fox-for-nora/engine/camera"
	"github.com/sbostic/fox-for-nora/engine/game_object"
	"github.com/sbostic/fox-for-nora/engine/input"
	"github.com/sbostic/fox-for-nora/engine/locomotion"
	"github.com/sbostic/fox-for-nora/engine/model"
	"github.com/sbostic/fox-for-nora/engine/renderer"
)

const testEpsilon = 1e-4

func floatNear(got, want float32) bool {
	return math.Abs(float64(got-want)) < testEpsilon
}

// recordingRenderer captures draw calls so tests can assert on what the scene
// emitted without a terminal attached.
type recordingRenderer struct {
	mu       sync.Mutex
	segments []common.Segment
	markers  []common.Marker
	overlays []string
	width    int
	height   int
}

var _ renderer.Renderer = &recordingRenderer{}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{width: 80, height: 24}
}

func (r *recordingRenderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = width, height
}

func (r *recordingRenderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *recordingRenderer) Aspect() float32 { return 1.0 }

func (r *recordingRenderer) BeginFrame() error { return nil }

func (r *recordingRenderer) DrawSegments(_ []float32, segments ...common.Segment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.segments = append(r.segments, segments...)
}

func (r *recordingRenderer) DrawMarkers(_ []float32, markers ...common.Marker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.markers = append(r.markers, markers...)
}

func (r *recordingRenderer) DrawOverlayText(_ int, text string, _ common.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overlays = append(r.overlays, text)
}

func (r *recordingRenderer) EndFrame() {}

func (r *recordingRenderer) Present() {}

// testRig bundles the pieces a full scene needs: an animated character, its
// locomotion controller, and a follow camera.
type testRig struct {
	scene  Scene
	object game_object.GameObject
	anim   animator.Animator
	ctrl   animator.Controller
	follow camera.FollowController
	render *recordingRenderer
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()

	mdl := model.NewModel(
		model.WithName("Fox"),
		model.WithAnimations(
			model.AnimationClip{Name: "Run", Duration: 0.7083},
			model.AnimationClip{Name: "Walk", Duration: 1.0417},
			model.AnimationClip{Name: "Survey", Duration: 3.2333},
		),
		model.WithMoveSpeed(5.0),
		model.WithBoundingRadius(75.0),
	)

	anim := animator.NewAnimator(animator.WithClips(mdl.Animations()...))
	instance, err := anim.AddInstance()
	if err != nil {
		t.Fatalf("AddInstance: %v", err)
	}
	ctrl := animator.NewController(anim, instance)

	obj := game_object.NewGameObject(
		game_object.WithModel(mdl),
		game_object.WithAnimator(anim, instance),
	)

	mover := locomotion.NewController(locomotion.WithTarget(obj))
	follow := camera.NewFollowController(camera.WithFollowTarget(obj))
	cam := camera.NewCamera(camera.WithController(follow))
	render := newRecordingRenderer()

	s := NewScene("test", cam, render,
		WithActive(true),
		WithObjects(obj),
		WithComputeWorkers(2),
		WithAnimationController(ctrl),
		WithLocomotion(mover),
		WithFollowController(follow),
	)

	return &testRig{scene: s, object: obj, anim: anim, ctrl: ctrl, follow: follow, render: render}
}

func TestSceneRegistry(t *testing.T) {
	rig := newTestRig(t)

	if rig.scene.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", rig.scene.Count())
	}
	if got := rig.scene.Get(rig.object.ID()); got != rig.object {
		t.Error("Get must return the registered object")
	}

	extra := game_object.NewGameObject()
	id := rig.scene.Add(extra)
	if id == 0 {
		t.Error("Add must assign a non-zero ID")
	}
	if rig.scene.Count() != 2 {
		t.Errorf("Count() = %d after Add, want 2", rig.scene.Count())
	}

	ghost := game_object.NewGameObject(game_object.WithEphemeral(true))
	rig.scene.Add(ghost)
	if rig.scene.Count() != 2 {
		t.Error("ephemeral objects must not enter the registry")
	}

	rig.scene.Remove(id)
	if rig.scene.Get(id) != nil {
		t.Error("Remove must drop the object from the registry")
	}
}

func TestUpdateMovesCharacterThenPlacesCamera(t *testing.T) {
	// Holding W for one second at speed 5 moves the character to (0, 0, -5),
	// and the same frame's camera placement must already trail that new
	// position rather than the previous frame's.
	rig := newTestRig(t)

	rig.scene.Update(1.0, input.Snapshot{MoveForward: true})

	x, y, z := rig.object.Position()
	if !floatNear(x, 0) || !floatNear(y, 0) || !floatNear(z, -5) {
		t.Errorf("position = (%v, %v, %v), want (0, 0, -5)", x, y, z)
	}

	px, py, pz := rig.follow.Position()
	fx, fy, fz := forwardOffset(rig.object)
	if !floatNear(px, fx) || !floatNear(py, fy) || !floatNear(pz, fz) {
		t.Errorf("camera = (%v, %v, %v), want (%v, %v, %v) behind the moved character", px, py, pz, fx, fy, fz)
	}
}

// forwardOffset computes where the follow camera should sit for the object's
// current transform: 300 behind along facing, 200 above.
func forwardOffset(obj game_object.GameObject) (float32, float32, float32) {
	t := obj.Transform()
	forward := common.QuatRotateVec3(t.Rotation, [3]float32{0, 0, 1})
	pos := common.Vec3Add(t.Translation, common.Vec3Scale(forward, -300))
	return pos[0], t.Translation[1] + 200, pos[2]
}

func TestUpdateDiagonalMovementIsNormalized(t *testing.T) {
	rig := newTestRig(t)

	rig.scene.Update(1.0, input.Snapshot{MoveForward: true, MoveLeft: true})

	x, _, z := rig.object.Position()
	dist := float32(math.Sqrt(float64(x*x + z*z)))
	if !floatNear(dist, 5.0) {
		t.Errorf("diagonal travel distance = %v, want 5.0", dist)
	}
	if x >= 0 || z >= 0 {
		t.Errorf("W+A must travel toward -X/-Z, got (%v, %v)", x, z)
	}
}

func TestUpdateDispatchesAnimationCommands(t *testing.T) {
	rig := newTestRig(t)
	rig.ctrl.OnPlayerReady()

	rig.scene.Update(0.016, input.Snapshot{TogglePause: true})
	state, ok := rig.anim.State(rig.object.AnimatorInstanceID())
	if !ok || !state.Paused {
		t.Error("TogglePause snapshot must pause playback")
	}

	rig.scene.Update(0.016, input.Snapshot{TogglePause: true, SpeedUp: true})
	state, _ = rig.anim.State(rig.object.AnimatorInstanceID())
	if state.Paused {
		t.Error("second TogglePause must resume playback")
	}
	if !floatNear(state.Speed, 1.2) {
		t.Errorf("speed = %v after SpeedUp, want 1.2", state.Speed)
	}

	rig.scene.Update(0.016, input.Snapshot{NextClip: true})
	state, _ = rig.anim.State(rig.object.AnimatorInstanceID())
	if !state.Blending {
		t.Error("NextClip must start a crossfade to the next clip")
	}

	rig.scene.Update(0.016, input.Snapshot{ReplayThree: true})
	state, _ = rig.anim.State(rig.object.AnimatorInstanceID())
	if state.Repeat.Mode != animator.RepeatModeCount {
		t.Errorf("repeat mode = %v after ReplayThree, want counted", state.Repeat.Mode)
	}
}

func TestUpdateAdvancesPlayback(t *testing.T) {
	rig := newTestRig(t)
	rig.ctrl.OnPlayerReady()

	// The playhead only moves through the worker-pool advance phase, so a
	// moved playhead proves the barrier ran to completion this frame.
	rig.scene.Update(0.25, input.Snapshot{})

	state, ok := rig.anim.State(rig.object.AnimatorInstanceID())
	if !ok {
		t.Fatal("instance state missing")
	}
	if !floatNear(state.Time, 0.25) {
		t.Errorf("playhead = %v after 0.25s update, want 0.25", state.Time)
	}
}

func TestUpdateWithoutControllersIsSafe(t *testing.T) {
	cam := camera.NewCamera()
	s := NewScene("bare", cam, newRecordingRenderer(), WithActive(true))

	// Every phase is optional; a bare scene must not panic on input.
	s.Update(0.016, input.Snapshot{MoveForward: true, TogglePause: true, NextClip: true})
}

func TestDrawCallsEmitsGridMarkersAndHUD(t *testing.T) {
	rig := newTestRig(t)
	rig.ctrl.OnPlayerReady()
	rig.scene.Update(0.016, input.Snapshot{})

	if err := rig.scene.DrawCalls(); err != nil {
		t.Fatalf("DrawCalls: %v", err)
	}

	if len(rig.render.segments) == 0 {
		t.Error("DrawCalls must emit ground grid segments")
	}
	if len(rig.render.markers) != 2 {
		t.Fatalf("DrawCalls emitted %d markers, want body + heading", len(rig.render.markers))
	}
	if rig.render.markers[0].Position != rig.object.Transform().Translation {
		t.Error("body marker must sit at the object's translation")
	}

	foundStatus := false
	for _, line := range rig.render.overlays {
		if strings.Contains(line, "Run") {
			foundStatus = true
		}
	}
	if !foundStatus {
		t.Errorf("HUD overlays %q must include the active clip name", rig.render.overlays)
	}
}

func TestDrawCallsCullsObjectsOutsideFrustum(t *testing.T) {
	rig := newTestRig(t)
	rig.scene.Update(0.016, input.Snapshot{})

	// Far beyond the camera's far plane.
	rig.object.SetPosition(0, 0, 100000)
	if err := rig.scene.DrawCalls(); err != nil {
		t.Fatalf("DrawCalls: %v", err)
	}
	if len(rig.render.markers) != 0 {
		t.Errorf("object outside the frustum drew %d markers, want 0", len(rig.render.markers))
	}

	rig.scene.SetCullingDisabled(true)
	if err := rig.scene.DrawCalls(); err != nil {
		t.Fatalf("DrawCalls: %v", err)
	}
	if len(rig.render.markers) == 0 {
		t.Error("disabling culling must draw the object regardless of the frustum")
	}
}
