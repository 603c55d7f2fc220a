package window

import (
	"fmt"
	"sync"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/sbostic/fox-for-nora/common"
)

// tcellWindow holds the terminal-specific window state.
type tcellWindow struct {
	parent *engineWindow
	screen tcell.Screen

	mu      sync.Mutex
	running bool

	// events receives polled tcell events from the poll goroutine.
	events chan tcell.Event

	// holdDeadlines tracks, per key code, when the key counts as released.
	// Terminals report no key-up events; auto-repeat refreshes the deadline
	// and the sweep in platformProcessMessages synthesizes the release.
	holdDeadlines map[uint32]time.Time
	holdExpiry    time.Duration
}

// newPlatformWindow attaches to the terminal, starts the event poll
// goroutine, and stores the tcell state as the internal window.
//
// tcell reference: https://pkg.go.dev/github.com/gdamore/tcell/v2
func newPlatformWindow(w *engineWindow) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %v", err)
	}
	screen.SetTitle(w.title)
	screen.HideCursor()

	tw := &tcellWindow{
		parent:        w,
		screen:        screen,
		running:       true,
		events:        make(chan tcell.Event, 64),
		holdDeadlines: make(map[uint32]time.Time),
		holdExpiry:    time.Duration(w.holdExpiryMillis) * time.Millisecond,
	}
	w.internalWindow = tw
	w.width, w.height = screen.Size()

	// Poll in a dedicated goroutine; PollEvent blocks and returns nil once
	// the screen is finalized, which ends the goroutine.
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(tw.events)
				return
			}
			tw.events <- ev
		}
	}()

	return nil
}

// platformScreen returns the underlying tcell screen, or nil if the window
// has not been initialized.
func platformScreen(w *engineWindow) tcell.Screen {
	if w.internalWindow == nil {
		return nil
	}
	tw := w.internalWindow.(*tcellWindow)
	return tw.screen
}

// platformIsRunningCheck returns whether the terminal window is still active.
//
// Parameters:
//   - w: the engineWindow to check
//
// Returns:
//   - bool: true if the window is still running
func platformIsRunningCheck(w *engineWindow) bool {
	if w.internalWindow == nil {
		return false
	}
	tw := w.internalWindow.(*tcellWindow)
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.running
}

// platformCloseWindow stops the message loop and restores the terminal.
// Returns an error if the internal window has not been initialized.
//
// Parameters:
//   - w: the engineWindow to close
//
// Returns:
//   - error: error if the window is not initialized
func platformCloseWindow(w *engineWindow) error {
	if w.internalWindow == nil {
		return fmt.Errorf("window is not initialized")
	}
	tw := w.internalWindow.(*tcellWindow)
	tw.mu.Lock()
	alreadyStopped := !tw.running
	tw.running = false
	tw.mu.Unlock()
	if !alreadyStopped {
		tw.screen.Fini()
	}
	return nil
}

// platformProcessMessages drains pending terminal events without blocking
// and sweeps expired key holds. This is the terminal equivalent of the
// platform PeekMessage loop.
func platformProcessMessages(w *engineWindow) bool {
	if w.internalWindow == nil {
		return false
	}
	tw := w.internalWindow.(*tcellWindow)

	for {
		select {
		case ev, ok := <-tw.events:
			if !ok {
				return platformIsRunningCheck(w)
			}
			tw.handleEvent(ev)
		default:
			tw.sweepExpiredHolds()
			return platformIsRunningCheck(w)
		}
	}
}

// handleEvent dispatches a single terminal event to the window callbacks.
func (tw *tcellWindow) handleEvent(ev tcell.Event) {
	w := tw.parent
	switch ev := ev.(type) {
	case *tcell.EventKey:
		// Ctrl+C is the emergency stop and closes at the platform layer.
		// Escape flows through the key path as an ordinary quit command.
		if ev.Key() == tcell.KeyCtrlC {
			tw.mu.Lock()
			tw.running = false
			tw.mu.Unlock()
			return
		}
		code, ok := decodeKey(ev)
		if !ok {
			return
		}
		tw.mu.Lock()
		tw.holdDeadlines[code] = time.Now().Add(tw.holdExpiry)
		tw.mu.Unlock()
		if w.onKeyDown != nil {
			w.onKeyDown(code)
		}
	case *tcell.EventResize:
		width, height := ev.Size()
		w.width = width
		w.height = height
		tw.screen.Sync()
		if w.onResize != nil {
			w.onResize(width, height)
		}
	}
}

// sweepExpiredHolds synthesizes key-up events for keys whose auto-repeat
// stream has gone quiet past the hold expiry.
func (tw *tcellWindow) sweepExpiredHolds() {
	now := time.Now()
	var released []uint32

	tw.mu.Lock()
	for code, deadline := range tw.holdDeadlines {
		if now.After(deadline) {
			released = append(released, code)
			delete(tw.holdDeadlines, code)
		}
	}
	tw.mu.Unlock()

	if tw.parent.onKeyUp == nil {
		return
	}
	for _, code := range released {
		tw.parent.onKeyUp(code)
	}
}

// decodeKey maps a tcell key event onto the shared virtual key codes.
// Printable runes map to their uppercase ASCII value; special keys map to
// the non-printable code block.
//
// Parameters:
//   - ev: the key event to decode
//
// Returns:
//   - uint32: the virtual key code
//   - bool: true if the event maps to a known key
func decodeKey(ev *tcell.EventKey) (uint32, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		r := unicode.ToUpper(ev.Rune())
		if r > unicode.MaxASCII {
			return 0, false
		}
		return uint32(r), true
	case tcell.KeyEscape:
		return common.KeyEsc, true
	case tcell.KeyEnter:
		return common.KeyEnter, true
	case tcell.KeyUp:
		return common.KeyUp, true
	case tcell.KeyDown:
		return common.KeyDown, true
	case tcell.KeyLeft:
		return common.KeyLeft, true
	case tcell.KeyRight:
		return common.KeyRight, true
	default:
		return 0, false
	}
}
