package window

import (
	"fmt"
	"runtime"

	"github.com/gdamore/tcell/v2"
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
// The current platform layer hosts the window inside a terminal, so widths
// and heights are measured in character cells rather than pixels.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in cells
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press events.
	// Terminal auto-repeat delivers repeated press events while a key is
	// physically held; the input layer collapses those into held state.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	// Terminals deliver no release events, so the platform layer synthesizes
	// one when a key's repeat stream goes quiet for the hold-expiry window.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// Screen returns the underlying tcell screen for rendering.
	// The renderer backend draws into the same screen the window polls
	// events from.
	//
	// Returns:
	//   - tcell.Screen: the terminal screen, or nil if not initialized
	Screen() tcell.Screen

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and restores the terminal.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current window width in cells.
	//
	// Returns:
	//   - int: width in cells
	Width() int

	// Height returns the current window height in cells.
	//
	// Returns:
	//   - int: height in cells
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, terminal state, and event callbacks.
type engineWindow struct {
	// title is the window title handed to the terminal emulator.
	title string

	// width is the current window width in cells.
	width int

	// height is the current window height in cells.
	height int

	// holdExpiryMillis is how long a key's repeat stream may go quiet before
	// the platform layer synthesizes a key-up event for it.
	holdExpiryMillis int

	// internalWindow holds the platform-specific window data (tcellWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the window is resized.
	onResize func(width, height int)

	// onKeyDown is called when a key is pressed.
	onKeyDown func(keyCode uint32)

	// onKeyUp is called when a key is released (synthesized on terminals).
	onKeyUp func(keyCode uint32)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window (already attached to the terminal)
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:            "Default Window Title",
		holdExpiryMillis: 150,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) Screen() tcell.Screen {
	return platformScreen(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
