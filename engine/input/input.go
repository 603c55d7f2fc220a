package input

import (
	"sync"

	"github.com/sbostic/fox-for-nora/common"
)

// Snapshot is the per-frame input state handed to the simulation tick.
// Direction fields carry level state (true every frame while the key is
// held); command fields are edge-triggered (true for exactly one capture
// after the key goes down).
type Snapshot struct {
	// MoveForward is held while the forward key (W) is down.
	MoveForward bool
	// MoveBack is held while the backward key (S) is down.
	MoveBack bool
	// MoveLeft is held while the left key (A) is down.
	MoveLeft bool
	// MoveRight is held while the right key (D) is down.
	MoveRight bool

	// TogglePause fires once per space press.
	TogglePause bool
	// SpeedUp fires once per up-arrow press.
	SpeedUp bool
	// SlowDown fires once per down-arrow press.
	SlowDown bool
	// SeekBack fires once per left-arrow press.
	SeekBack bool
	// SeekForward fires once per right-arrow press.
	SeekForward bool
	// NextClip fires once per enter press.
	NextClip bool
	// ReplayOnce fires once per 1 press.
	ReplayOnce bool
	// ReplayThree fires once per 3 press.
	ReplayThree bool
	// ReplayFive fires once per 5 press.
	ReplayFive bool
	// LoopForever fires once per L press.
	LoopForever bool
	// Quit fires once per escape or Q press.
	Quit bool
}

// manager is the implementation of the Manager interface.
type manager struct {
	mu *sync.Mutex

	held    map[uint32]bool
	pressed map[uint32]bool
}

// Manager defines the interface for input state collection.
// The window layer feeds it key transitions from its event goroutine; the
// tick loop drains it once per frame via Capture. Holding a key reports a
// single press edge followed by continuous held state until the key is
// released.
type Manager interface {
	// KeyDown records a key transition to the down state. Repeated down
	// events for an already-held key (terminal auto-repeat) do not produce
	// additional press edges.
	//
	// Parameters:
	//   - keyCode: the virtual key code that went down
	KeyDown(keyCode uint32)

	// KeyUp records a key transition to the up state.
	//
	// Parameters:
	//   - keyCode: the virtual key code that was released
	KeyUp(keyCode uint32)

	// Capture returns the current frame's input snapshot and clears the
	// pending press edges. Held state persists across captures until the
	// corresponding KeyUp.
	//
	// Returns:
	//   - Snapshot: the input state for the frame
	Capture() Snapshot
}

var _ Manager = &manager{}

// NewManager creates a new input Manager with empty key state.
//
// Returns:
//   - Manager: a new Manager instance
func NewManager() Manager {
	return &manager{
		mu:      &sync.Mutex{},
		held:    make(map[uint32]bool),
		pressed: make(map[uint32]bool),
	}
}

func (m *manager) KeyDown(keyCode uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.held[keyCode] {
		m.pressed[keyCode] = true
	}
	m.held[keyCode] = true
}

func (m *manager) KeyUp(keyCode uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.held, keyCode)
}

func (m *manager) Capture() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		MoveForward: m.held[common.KeyW],
		MoveBack:    m.held[common.KeyS],
		MoveLeft:    m.held[common.KeyA],
		MoveRight:   m.held[common.KeyD],

		TogglePause: m.pressed[common.KeySpace],
		SpeedUp:     m.pressed[common.KeyUp],
		SlowDown:    m.pressed[common.KeyDown],
		SeekBack:    m.pressed[common.KeyLeft],
		SeekForward: m.pressed[common.KeyRight],
		NextClip:    m.pressed[common.KeyEnter],
		ReplayOnce:  m.pressed[common.Key1],
		ReplayThree: m.pressed[common.Key3],
		ReplayFive:  m.pressed[common.Key5],
		LoopForever: m.pressed[common.KeyL],
		Quit:        m.pressed[common.KeyEsc] || m.pressed[common.KeyQ],
	}

	clear(m.pressed)
	return snap
}
