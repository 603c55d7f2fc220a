package renderer

import (
	"fmt"
	"sync"

	"github.com/sbostic/fox-for-nora/common"
	"github.com/sbostic/fox-for-nora/engine/window"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend
}

// Renderer defines the interface for the rendering system.
//
// This is a high-level API designed to simplify rendering tasks into a streamlined and idiomatic flow.
// Draw calls take world-space geometry plus a view-projection matrix; the Renderer projects to
// normalized device coordinates, maps them onto the backend's cell grid, and rasterizes with a
// per-cell depth test. The Renderer also implements a backend which allows for multiple backend
// implementations to exist.
type Renderer interface {
	// Resize configures the underlying backend to handle a new output size.
	// This should be called when the window size changes.
	//
	// Parameters:
	//   - width: the new width of the output in cells
	//   - height: the new height of the output in cells
	Resize(width, height int)

	// Size returns the current output dimensions in cells.
	//
	// Returns:
	//   - int: output width in cells
	//   - int: output height in cells
	Size() (int, int)

	// Aspect returns the projection aspect ratio for the current output.
	// Terminal cells are roughly twice as tall as they are wide, so this is
	// width / (2 * height) rather than the raw cell ratio.
	//
	// Returns:
	//   - float32: the aspect ratio to feed the camera's perspective projection
	Aspect() float32

	// BeginFrame starts a new frame, clearing the output and depth buffer.
	// Must be called before any draw calls for the frame.
	//
	// Returns:
	//   - error: an error if the backend cannot start a frame
	BeginFrame() error

	// DrawSegments projects and rasterizes world-space line segments.
	// Segments with an endpoint behind the camera are skipped.
	//
	// Parameters:
	//   - viewProj: the 4x4 column-major view-projection matrix
	//   - segments: the segments to draw
	DrawSegments(viewProj []float32, segments ...common.Segment)

	// DrawMarkers projects and plots world-space point markers.
	// Markers behind the camera are skipped.
	//
	// Parameters:
	//   - viewProj: the 4x4 column-major view-projection matrix
	//   - markers: the markers to draw
	DrawMarkers(viewProj []float32, markers ...common.Marker)

	// DrawOverlayText writes a line of HUD text over the scene, bypassing the
	// depth buffer. Text past the right edge is clipped.
	//
	// Parameters:
	//   - line: the row to write at, counted from the top
	//   - text: the text to write
	//   - color: the foreground color
	DrawOverlayText(line int, text string, color common.Color)

	// EndFrame closes the current frame. Draw calls between EndFrame and the
	// next BeginFrame are dropped.
	EndFrame()

	// Present flushes the composed frame to the output.
	Present()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer with the specified backend type and options.
// The renderer draws into the same screen the window polls events from, so the
// window must already be attached to the terminal.
//
// Parameters:
//   - backendType: the backend implementation to use
//   - window: the window providing the output surface
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, window window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
	}

	for _, opt := range options {
		opt(r)
	}

	if r.backend == nil {
		switch backendType {
		case BackendTypeTerminal:
			fallthrough
		default:
			backend, err := newTerminalRendererBackend(window.Screen(), window.Width(), window.Height())
			if err != nil {
				panic(fmt.Sprintf("failed to create terminal renderer backend: %v", err))
			}
			r.backend = backend
		}
	}

	return r
}

func (r *renderer) Resize(width, height int) {
	r.backend.Resize(width, height)
}

func (r *renderer) Size() (int, int) {
	return r.backend.Size()
}

func (r *renderer) Aspect() float32 {
	width, height := r.backend.Size()
	if height < 1 {
		height = 1
	}
	return float32(width) / (2.0 * float32(height))
}

func (r *renderer) BeginFrame() error {
	return r.backend.BeginFrame()
}

func (r *renderer) DrawSegments(viewProj []float32, segments ...common.Segment) {
	width, height := r.backend.Size()
	for _, seg := range segments {
		fromX, fromY, fromDepth, ok := projectToCells(viewProj, seg.From, width, height)
		if !ok {
			continue
		}
		toX, toY, toDepth, ok := projectToCells(viewProj, seg.To, width, height)
		if !ok {
			continue
		}
		r.rasterizeLine(fromX, fromY, fromDepth, toX, toY, toDepth, seg.Glyph, seg.Color)
	}
}

func (r *renderer) DrawMarkers(viewProj []float32, markers ...common.Marker) {
	width, height := r.backend.Size()
	for _, m := range markers {
		x, y, depth, ok := projectToCells(viewProj, m.Position, width, height)
		if !ok {
			continue
		}
		r.backend.PlotDepth(x, y, depth, m.Glyph, m.Color)
	}
}

func (r *renderer) DrawOverlayText(line int, text string, color common.Color) {
	col := 0
	for _, ch := range text {
		r.backend.PlotOverlay(col, line, ch, color)
		col++
	}
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}

// rasterizeLine walks the cell grid between two projected endpoints, plotting
// one glyph per step with linearly interpolated depth.
func (r *renderer) rasterizeLine(x0, y0 int, d0 float32, x1, y1 int, d1 float32, glyph rune, color common.Color) {
	dx := x1 - x0
	dy := y1 - y0
	steps := absInt(dx)
	if absInt(dy) > steps {
		steps = absInt(dy)
	}
	if steps == 0 {
		r.backend.PlotDepth(x0, y0, minFloat32(d0, d1), glyph, color)
		return
	}

	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		x := x0 + int(float32(dx)*t+signOffset(dx))
		y := y0 + int(float32(dy)*t+signOffset(dy))
		depth := d0 + (d1-d0)*t
		r.backend.PlotDepth(x, y, depth, glyph, color)
	}
}

// projectToCells transforms a world-space point through the view-projection
// matrix and maps the resulting normalized device coordinates onto the cell
// grid. Points on or behind the camera plane report not-ok.
//
// Parameters:
//   - viewProj: the 4x4 column-major view-projection matrix
//   - p: the world-space point
//   - width: the grid width in cells
//   - height: the grid height in cells
//
// Returns:
//   - int: cell column
//   - int: cell row
//   - float32: normalized depth, smaller is closer
//   - bool: false if the point is behind the camera
func projectToCells(viewProj []float32, p [3]float32, width, height int) (int, int, float32, bool) {
	cx, cy, cz, cw := common.TransformVec4(viewProj, p[0], p[1], p[2], 1)
	if cw <= 0 {
		return 0, 0, 0, false
	}
	ndcX := cx / cw
	ndcY := cy / cw
	ndcZ := cz / cw

	col := int((ndcX + 1) * 0.5 * float32(width-1))
	row := int((1 - ndcY) * 0.5 * float32(height-1))
	return col, row, ndcZ, true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// signOffset gives the rounding bias for line stepping so cells round toward
// the travel direction instead of truncating.
func signOffset(delta int) float32 {
	if delta < 0 {
		return -0.5
	}
	return 0.5
}
