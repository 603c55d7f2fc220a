package window

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title handed to the terminal emulator.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithHoldExpiryMillis sets how long a held key's repeat stream may go quiet
// before the platform layer synthesizes a key-up event for it. Terminals
// deliver no release events, so this window is the only release signal.
// Values below 1 fall back to the 150 ms default.
//
// Parameters:
//   - millis: the hold expiry in milliseconds
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHoldExpiryMillis(millis int) WindowBuilderOption {
	return func(w *engineWindow) {
		if millis < 1 {
			millis = 150
		}
		w.holdExpiryMillis = millis
	}
}
