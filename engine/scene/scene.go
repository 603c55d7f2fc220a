package scene

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/sbostic/fox-for-nora/common"
	"github.com/sbostic/fox-for-nora/engine/animator"
	"github.com/sbostic/fox-for-nora/engine/camera"
	"github.com/sbostic/fox-for-nora/engine/game_object"
	"github.com/sbostic/fox-for-nora/engine/input"
	"github.com/sbostic/fox-for-nora/engine/locomotion"
	"github.com/sbostic/fox-for-nora/engine/renderer"
)

// Scene defines the interface for a scene in the engine.
//
// A Scene owns a registry of game objects plus the controllers that react to
// player input each frame: the animation command controller, the locomotion
// controller, and the follow camera controller. Update runs one simulation
// step in a fixed order; DrawCalls projects the scene through the camera and
// issues draw calls into the renderer.
type Scene interface {
	// Name returns the name of the scene.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// SetName sets the name of the scene.
	//
	// Parameters:
	//   - name: the new scene name
	SetName(name string)

	// Active returns whether the scene is active for simulation and rendering.
	//
	// Returns:
	//   - bool: true if the scene is active
	Active() bool

	// SetActive sets whether the scene is active for simulation and rendering.
	//
	// Parameters:
	//   - active: whether the scene is active
	SetActive(active bool)

	// Camera returns the camera attached to the scene.
	//
	// Returns:
	//   - camera.Camera: the attached camera
	Camera() camera.Camera

	// SetCamera attaches a camera to the scene.
	//
	// Parameters:
	//   - cam: the camera to attach
	SetCamera(cam camera.Camera)

	// Renderer returns the renderer attached to the scene.
	//
	// Returns:
	//   - renderer.Renderer: the attached renderer
	Renderer() renderer.Renderer

	// SetRenderer attaches a renderer to the scene.
	//
	// Parameters:
	//   - r: the renderer to attach
	SetRenderer(r renderer.Renderer)

	// CullingDisabled returns whether frustum culling is disabled for the scene.
	//
	// Returns:
	//   - bool: true if culling is disabled
	CullingDisabled() bool

	// SetCullingDisabled toggles frustum culling of scene objects during DrawCalls.
	//
	// Parameters:
	//   - disabled: true to disable frustum culling
	SetCullingDisabled(disabled bool)

	// Add adds a game object to the scene, assigning it an ID if it has none.
	// Ephemeral objects receive an ID but are not persisted in the registry.
	//
	// Parameters:
	//   - obj: the game object to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// Get retrieves a registered game object by ID.
	//
	// Parameters:
	//   - id: the object ID to look up
	//
	// Returns:
	//   - game_object.GameObject: the object, or nil if not registered
	Get(id uint64) game_object.GameObject

	// Remove removes a registered game object by ID. Unknown IDs are ignored.
	//
	// Parameters:
	//   - id: the object ID to remove
	Remove(id uint64)

	// Count returns the number of registered game objects.
	//
	// Returns:
	//   - int: the registry size
	Count() int

	// Update runs one simulation step. The phases run in a fixed order so a
	// frame's camera placement always reflects that same frame's movement:
	//
	//  1. One-shot input commands are dispatched to the animation controller.
	//  2. The locomotion controller applies held movement keys to its target.
	//  3. The follow camera re-derives its placement from the moved target and
	//     the camera recomputes its matrices.
	//  4. Animation playback advances for every animated object, fanned out
	//     across the compute worker pool behind a frame barrier.
	//
	// Parameters:
	//   - deltaTime: the frame time step in seconds
	//   - snap: the captured input state for this frame
	Update(deltaTime float32, snap input.Snapshot)

	// DrawCalls projects the scene through the camera and issues draw calls
	// into the renderer: the ground grid, one marker per visible object plus
	// its heading indicator, and the HUD overlay. The caller owns the frame
	// boundaries (BeginFrame / EndFrame / Present).
	//
	// Returns:
	//   - error: an error if the scene has no renderer or camera attached
	DrawCalls() error
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	registry map[uint64]game_object.GameObject // non-ephemeral objects by ID
	nextID   uint64

	cam camera.Camera
	r   renderer.Renderer

	cullingDisabled bool // when true, skips frustum testing of object bounding spheres

	// Frame controllers. Any of these may be nil; Update skips absent phases.
	animController animator.Controller
	mover          locomotion.Controller
	follow         camera.FollowController

	// Ground grid dimensions in world units.
	gridExtent float32
	gridStep   float32

	// computePool manages a bounded set of reusable goroutines for the
	// parallel playback advance phase of Update. Workers persist across
	// frames, avoiding per-frame goroutine spawn/teardown overhead.
	computePool    worker.DynamicWorkerPool
	computeWorkers int // stored so we can log/inspect the configured count
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera and renderer. Both are
// required and NewScene panics if either is nil.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}

	s := &scene{
		mu:             &sync.RWMutex{},
		name:           name,
		active:         false,
		cam:            cam,
		r:              r,
		registry:       make(map[uint64]game_object.GameObject),
		nextID:         1,
		computeWorkers: max(runtime.NumCPU()-1, 1),
		gridExtent:     500,
		gridStep:       100,
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the compute pool after options so WithComputeWorkers can override the default.
	// Queue size of 256 accommodates typical object counts with headroom.
	s.computePool = worker.NewDynamicWorkerPool(s.computeWorkers, 256, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) SetRenderer(r renderer.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r = r
}

func (s *scene) CullingDisabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cullingDisabled
}

func (s *scene) SetCullingDisabled(disabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cullingDisabled = disabled
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if obj.ID() == 0 {
		obj.SetID(s.nextID)
		s.nextID++
	}
	if !obj.Ephemeral() {
		s.registry[obj.ID()] = obj
	}
	return obj.ID()
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registry, id)
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Update(deltaTime float32, snap input.Snapshot) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Phase 1: one-shot animation commands.
	if s.animController != nil {
		if snap.TogglePause {
			s.animController.TogglePause()
		}
		if snap.SpeedUp {
			s.animController.AdjustSpeed(1.2)
		}
		if snap.SlowDown {
			s.animController.AdjustSpeed(0.8)
		}
		if snap.SeekBack {
			s.animController.Seek(-0.1)
		}
		if snap.SeekForward {
			s.animController.Seek(0.1)
		}
		if snap.NextClip {
			s.animController.CycleClip()
		}
		if snap.ReplayOnce {
			s.animController.SetRepeatOnce()
		}
		if snap.ReplayThree {
			s.animController.SetRepeatCount(3)
		}
		if snap.ReplayFive {
			s.animController.SetRepeatCount(5)
		}
		if snap.LoopForever {
			s.animController.SetRepeatForever()
		}
	}

	// Phase 2: held movement keys move the locomotion target.
	if s.mover != nil {
		s.mover.Update(deltaTime, snap)
	}

	// Phase 3: the camera re-derives its placement from the moved target.
	// Ordering matters: running this before locomotion would leave the camera
	// one frame behind the character.
	if s.follow != nil {
		s.follow.Update()
	}
	if s.cam != nil {
		s.cam.Update()
	}

	// Phase 4: parallel playback advance — submit each animated object's
	// clock step to the compute pool. Workers are reused across frames (no
	// goroutine spawn overhead). A WaitGroup provides per-frame barrier sync
	// since pool.Wait() blocks until workers idle-exit which is unsuitable
	// for frame-rate workloads.
	var wg sync.WaitGroup
	taskID := 0
	for _, obj := range s.registry {
		if !obj.Enabled() {
			continue
		}
		anim := obj.Animator()
		if anim == nil {
			continue
		}

		wg.Add(1)
		instanceID := obj.AnimatorInstanceID()
		id := taskID
		taskID++
		s.computePool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				anim.Advance(instanceID, deltaTime)
				return nil, nil
			},
		})
	}
	wg.Wait()
}

func (s *scene) DrawCalls() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.r == nil {
		return fmt.Errorf("scene %q has no renderer attached", s.name)
	}
	if s.cam == nil {
		return fmt.Errorf("scene %q has no camera attached", s.name)
	}

	vp := s.cam.ViewProjectionMatrix()
	viewProj := vp[:]

	var frustum common.Frustum
	if !s.cullingDisabled {
		frustum = common.ExtractFrustumFromMatrix(viewProj)
	}

	s.r.DrawSegments(viewProj, s.groundGrid()...)

	for _, obj := range s.registry {
		if !obj.Enabled() {
			continue
		}
		t := obj.Transform()

		glyph := 'o'
		tint := common.Color{R: 255, G: 255, B: 255}
		radius := float32(1.0)
		if mdl := obj.Model(); mdl != nil {
			glyph = mdl.Glyph()
			tint = mdl.Tint()
			radius = mdl.BoundingRadius()
		}

		if !s.cullingDisabled && !frustum.ContainsSphere(t.Translation, radius) {
			continue
		}

		// Body marker plus a heading indicator a short way along the facing
		// direction, so the character's orientation reads on a cell grid.
		forward := common.QuatRotateVec3(t.Rotation, [3]float32{0, 0, 1})
		heading := common.Vec3Add(t.Translation, common.Vec3Scale(forward, headingIndicatorOffset))
		s.r.DrawMarkers(viewProj,
			common.Marker{Position: t.Translation, Glyph: glyph, Color: tint},
			common.Marker{Position: heading, Glyph: '*', Color: common.Color{R: 255, G: 255, B: 0}},
		)
	}

	s.drawHUD()
	return nil
}

// headingIndicatorOffset is how far in front of an object its facing marker
// is drawn, in world units.
const headingIndicatorOffset float32 = 40

// groundGrid builds the world-space grid line segments on the y=0 plane.
func (s *scene) groundGrid() []common.Segment {
	gridColor := common.Color{R: 90, G: 90, B: 90}
	var segments []common.Segment
	for offset := -s.gridExtent; offset <= s.gridExtent; offset += s.gridStep {
		segments = append(segments,
			common.Segment{
				From:  [3]float32{offset, 0, -s.gridExtent},
				To:    [3]float32{offset, 0, s.gridExtent},
				Glyph: '.',
				Color: gridColor,
			},
			common.Segment{
				From:  [3]float32{-s.gridExtent, 0, offset},
				To:    [3]float32{s.gridExtent, 0, offset},
				Glyph: '.',
				Color: gridColor,
			},
		)
	}
	return segments
}

// drawHUD writes the playback status line and the control listing overlay.
func (s *scene) drawHUD() {
	status := "no animation"
	if s.animController != nil {
		status = s.animController.Describe()
	}
	s.r.DrawOverlayText(0, status, common.Color{R: 255, G: 255, B: 0})

	_, height := s.r.Size()
	controls := "WASD move | Space pause | Up/Down speed | Left/Right seek | Enter clip | 1/3/5 replay | L loop | Q quit"
	s.r.DrawOverlayText(height-1, controls, common.Color{R: 150, G: 150, B: 150})
}
