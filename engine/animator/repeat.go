package animator

import "fmt"

// RepeatMode identifies how playback behaves when the playhead reaches the
// end of a clip.
type RepeatMode int

const (
	// RepeatModeForever wraps the playhead back to the start indefinitely.
	RepeatModeForever RepeatMode = iota
	// RepeatModeOnce plays the clip a single time, then holds the final pose.
	RepeatModeOnce
	// RepeatModeCount plays the clip a fixed number of times, then holds the
	// final pose.
	RepeatModeCount
)

// Repeat pairs a RepeatMode with the number of passes left for counted modes.
type Repeat struct {
	// Mode selects the end-of-clip behavior.
	Mode RepeatMode
	// Remaining is the number of full passes not yet completed. Only
	// meaningful for RepeatModeOnce and RepeatModeCount.
	Remaining uint32
}

// RepeatForever returns a Repeat that wraps indefinitely.
//
// Returns:
//   - Repeat: the repeat-forever value
func RepeatForever() Repeat {
	return Repeat{Mode: RepeatModeForever}
}

// RepeatOnce returns a Repeat that plays a single pass.
//
// Returns:
//   - Repeat: the repeat-once value
func RepeatOnce() Repeat {
	return Repeat{Mode: RepeatModeOnce, Remaining: 1}
}

// RepeatCount returns a Repeat that plays n passes.
//
// Parameters:
//   - n: the number of passes to play
//
// Returns:
//   - Repeat: the counted repeat value
func RepeatCount(n uint32) Repeat {
	return Repeat{Mode: RepeatModeCount, Remaining: n}
}

// String returns a short human-readable description of the repeat setting.
//
// Returns:
//   - string: the description used in status output
func (r Repeat) String() string {
	switch r.Mode {
	case RepeatModeForever:
		return "forever"
	case RepeatModeOnce:
		return "once"
	case RepeatModeCount:
		return fmt.Sprintf("x%d", r.Remaining)
	default:
		return "unknown"
	}
}
