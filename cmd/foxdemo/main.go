// Command foxdemo runs an interactive third-person demo in the terminal:
// a fox character with skeletal animation playback controls, WASD
// locomotion, and a follow camera, rendered as glyphs on the cell grid.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/sbostic/fox-for-nora/common"
	"github.com/sbostic/fox-for-nora/engine"
	"github.com/sbostic/fox-for-nora/engine/animator"
	"github.com/sbostic/fox-for-nora/engine/camera"
	"github.com/sbostic/fox-for-nora/engine/game_object"
	"github.com/sbostic/fox-for-nora/engine/input"
	"github.com/sbostic/fox-for-nora/engine/locomotion"
	"github.com/sbostic/fox-for-nora/engine/model"
	"github.com/sbostic/fox-for-nora/engine/renderer"
	"github.com/sbostic/fox-for-nora/engine/scene"
	"github.com/sbostic/fox-for-nora/engine/window"
	"github.com/sbostic/fox-for-nora/internal/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[foxdemo] %v", err)
	}

	// Print before the window takes over the terminal; once the screen is
	// initialized stdout no longer reaches the user.
	printControls()

	// ── Window + Renderer ───────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithHoldExpiryMillis(cfg.Input.HoldExpiryMillis),
	)
	r := renderer.NewRenderer(renderer.BackendTypeTerminal, win)

	// ── Fox model + animation ───────────────────────────────────────────
	foxModel := model.NewModel(
		model.WithName("Fox"),
		model.WithAnimations(
			model.AnimationClip{Name: "Run", Duration: 0.7083},
			model.AnimationClip{Name: "Walk", Duration: 1.0417},
			model.AnimationClip{Name: "Survey", Duration: 3.2333},
		),
		model.WithMoveSpeed(cfg.Player.MoveSpeed),
		model.WithBoundingRadius(75),
		model.WithTint(common.Color{R: 224, G: 142, B: 40}),
		model.WithGlyph('F'),
	)

	anim := animator.NewAnimator(animator.WithClips(foxModel.Animations()...))
	instance, err := anim.AddInstance()
	if err != nil {
		log.Fatalf("[foxdemo] failed to allocate playback instance: %v", err)
	}
	ctrl := animator.NewController(anim, instance,
		animator.WithCrossfadeDuration(float32(cfg.Animation.CrossfadeMillis)/1000),
	)

	fox := game_object.NewGameObject(
		game_object.WithModel(foxModel),
		game_object.WithAnimator(anim, instance),
		game_object.WithPosition(0, 0, 0),
	)

	// ── Camera + controllers ────────────────────────────────────────────
	follow := camera.NewFollowController(
		camera.WithFollowTarget(fox),
		camera.WithBackDistance(cfg.Camera.BackDistance),
		camera.WithHeight(cfg.Camera.Height),
	)
	cam := camera.NewCamera(
		camera.WithFov(float32(45.0*math.Pi/180.0)),
		camera.WithAspect(r.Aspect()),
		camera.WithNear(0.1),
		camera.WithFar(2000),
		camera.WithController(follow),
	)
	mover := locomotion.NewController(locomotion.WithTarget(fox))

	// ── Scene + Engine ──────────────────────────────────────────────────
	sc := scene.NewScene("fox demo", cam, r,
		scene.WithActive(true),
		scene.WithObjects(fox),
		scene.WithAnimationController(ctrl),
		scene.WithLocomotion(mover),
		scene.WithFollowController(follow),
	)

	eng := engine.NewEngine(
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithRenderFrameLimit(cfg.Engine.RenderFrameLimit),
		engine.WithWindow(win),
		engine.WithScene(0, sc),
	)

	// ── Input ───────────────────────────────────────────────────────────
	in := input.NewManager()
	win.SetKeyDownCallback(in.KeyDown)
	win.SetKeyUpCallback(in.KeyUp)

	eng.SetTickCallback(func(deltaTime float32) {
		snap := in.Capture()
		if snap.Quit {
			eng.Quit()
			_ = win.Close()
			return
		}
		sc.Update(deltaTime, snap)
	})

	// The clips are registered, so the player counts as loaded.
	ctrl.OnPlayerReady()

	// ── Config watcher ──────────────────────────────────────────────────
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := config.Watch(ctx, *configPath, func(next *config.Config) {
		eng.SetTickRate(next.Engine.TickRate)
		fox.SetMoveSpeed(next.Player.MoveSpeed)
		// Re-announcing readiness is a no-op on an already-ready controller,
		// so a reload never restarts playback.
		ctrl.OnPlayerReady()
	}); err != nil {
		log.Printf("[foxdemo] config watch disabled: %v", err)
	}

	eng.Run()
}

func printControls() {
	fmt.Println("controls:")
	fmt.Println("  WASD   - move the fox around")
	fmt.Println("  space  - pause / resume the current animation")
	fmt.Println("  up     - speed x1.2")
	fmt.Println("  down   - speed x0.8")
	fmt.Println("  left   - rewind 0.1s")
	fmt.Println("  right  - skip ahead 0.1s")
	fmt.Println("  enter  - cycle to the next animation (250ms crossfade)")
	fmt.Println("  1/3/5  - replay the current animation 1/3/5 times")
	fmt.Println("  L      - loop the current animation forever")
	fmt.Println("  esc/q  - quit")
}
