package renderer

import (
	"errors"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/sbostic/fox-for-nora/common"
)

// terminalRendererBackend is the backend contract for the terminal cell grid.
//
// The backend keeps a per-cell depth buffer so scene glyphs composite in
// painter-correct order regardless of draw-call order; overlay plots bypass
// the depth test and always land on top.
type terminalRendererBackend interface {
	// BeginFrame clears the cell grid and resets the depth buffer.
	//
	// Returns:
	//   - error: an error if the backend has no screen to draw into
	BeginFrame() error

	// EndFrame closes the current frame. Plots after EndFrame and before the
	// next BeginFrame are dropped.
	EndFrame()

	// Present flushes the composed frame to the terminal.
	Present()

	// Resize reconfigures the backend for a new cell grid size.
	//
	// Parameters:
	//   - width: the new grid width in cells
	//   - height: the new grid height in cells
	Resize(width, height int)

	// Size returns the current cell grid dimensions.
	//
	// Returns:
	//   - int: grid width in cells
	//   - int: grid height in cells
	Size() (int, int)

	// PlotDepth writes one glyph at a cell if it wins the depth test against
	// whatever is already there. Out-of-bounds cells are ignored.
	//
	// Parameters:
	//   - x: cell column
	//   - y: cell row
	//   - depth: normalized depth, smaller is closer
	//   - glyph: the rune to draw
	//   - color: the foreground color
	PlotDepth(x, y int, depth float32, glyph rune, color common.Color)

	// PlotOverlay writes one glyph at a cell ignoring the depth buffer.
	// Used for HUD text drawn over the scene.
	//
	// Parameters:
	//   - x: cell column
	//   - y: cell row
	//   - glyph: the rune to draw
	//   - color: the foreground color
	PlotOverlay(x, y int, glyph rune, color common.Color)
}

type terminalRendererBackendImpl struct {
	mu     *sync.Mutex
	screen tcell.Screen

	width  int
	height int

	// depth holds one normalized depth value per cell, row-major.
	// Reset to +Inf at BeginFrame.
	depth []float32

	inFrame bool
}

var _ terminalRendererBackend = &terminalRendererBackendImpl{}

// newTerminalRendererBackend creates the terminal backend over an initialized
// tcell screen. The screen is shared with the window's event loop; the backend
// only writes cell content and never polls events from it.
//
// Parameters:
//   - screen: the terminal screen to draw into
//   - width: the initial grid width in cells
//   - height: the initial grid height in cells
//
// Returns:
//   - terminalRendererBackend: the configured backend
//   - error: an error if the screen is nil
func newTerminalRendererBackend(screen tcell.Screen, width, height int) (terminalRendererBackend, error) {
	if screen == nil {
		return nil, errors.New("terminal backend requires an initialized screen")
	}
	b := &terminalRendererBackendImpl{
		mu:     &sync.Mutex{},
		screen: screen,
	}
	b.configure(width, height)
	return b, nil
}

// configure sets the grid dimensions and reallocates the depth buffer.
// Caller must hold the mutex (or own the backend exclusively, as in the constructor).
func (b *terminalRendererBackendImpl) configure(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	b.width = width
	b.height = height
	b.depth = make([]float32, width*height)
}

func (b *terminalRendererBackendImpl) BeginFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.screen == nil {
		return errors.New("terminal backend has no screen")
	}

	b.screen.Clear()
	inf := float32(math.Inf(1))
	for i := range b.depth {
		b.depth[i] = inf
	}
	b.inFrame = true
	return nil
}

func (b *terminalRendererBackendImpl) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inFrame = false
}

func (b *terminalRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.screen == nil {
		return
	}
	b.screen.Show()
}

func (b *terminalRendererBackendImpl) Resize(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.configure(width, height)
}

func (b *terminalRendererBackendImpl) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *terminalRendererBackendImpl) PlotDepth(x, y int, depth float32, glyph rune, color common.Color) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.inFrame || x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	idx := y*b.width + x
	if depth >= b.depth[idx] {
		return
	}
	b.depth[idx] = depth
	b.screen.SetContent(x, y, glyph, nil, styleFor(color))
}

func (b *terminalRendererBackendImpl) PlotOverlay(x, y int, glyph rune, color common.Color) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.inFrame || x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.screen.SetContent(x, y, glyph, nil, styleFor(color))
}

// styleFor converts an RGB color into a tcell style with the default background.
func styleFor(color common.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(color.R), int32(color.G), int32(color.B)))
}
