package common

// Virtual key codes for input handling. Printable keys use their ASCII
// values; non-printable keys use values above the ASCII range so the
// terminal platform layer can map its own event codes onto them.
const (
	KeyW     = 87 // W key (ASCII)
	KeyA     = 65 // A key (ASCII)
	KeyS     = 83 // S key (ASCII)
	KeyD     = 68 // D key (ASCII)
	KeyQ     = 81 // Q key (ASCII)
	KeyL     = 76 // L key (ASCII)
	KeySpace = 32 // Spacebar (ASCII)

	Key0 = 48 // 0 key (ASCII)
	Key1 = 49 // 1 key (ASCII)
	Key2 = 50 // 2 key (ASCII)
	Key3 = 51 // 3 key (ASCII)
	Key4 = 52 // 4 key (ASCII)
	Key5 = 53 // 5 key (ASCII)
	Key6 = 54 // 6 key (ASCII)
	Key7 = 55 // 7 key (ASCII)
	Key8 = 56 // 8 key (ASCII)
	Key9 = 57 // 9 key (ASCII)
)

// Non-printable keys
const (
	KeyEsc   = 256 // Escape key
	KeyEnter = 257 // Enter/Return key
	KeyRight = 262 // Right arrow key
	KeyLeft  = 263 // Left arrow key
	KeyDown  = 264 // Down arrow key
	KeyUp    = 265 // Up arrow key
)
