package machine

// HostSurface is the boundary between the machine core and whatever draws
// it: a graphical window, a terminal monitor, or nothing at all in a
// headless test. The core never imports a windowing or TUI package itself;
// cmd/ wires a concrete implementation in.
type HostSurface interface {
	// WriteScreen mirrors a byte written to screen RAM ($0400-$07E7).
	// offset is relative to the start of that window (0..999).
	WriteScreen(offset int, value byte)

	// WriteColorRAM mirrors a (4-bit-masked) byte written to color RAM
	// ($D800-$DBE7). offset is relative to the start of that window.
	WriteColorRAM(offset int, value byte)

	// SetBorderColor and SetBackgroundColor mirror $D020/$D021, already
	// masked to their low 4 bits.
	SetBorderColor(value byte)
	SetBackgroundColor(value byte)
}

// KeyboardSource is polled once per scheduler tick for a pending keypress.
// PollKey returns 0xFF when nothing is pending; any other value is a raw
// KERNAL key code to inject and is expected to be consumed (not repeated)
// by the implementation once returned.
type KeyboardSource interface {
	PollKey() byte
}

// NullHostSurface discards everything; used by tests and headless runs.
type NullHostSurface struct{}

func (NullHostSurface) WriteScreen(offset int, value byte)    {}
func (NullHostSurface) WriteColorRAM(offset int, value byte)  {}
func (NullHostSurface) SetBorderColor(value byte)             {}
func (NullHostSurface) SetBackgroundColor(value byte)         {}

// NullKeyboardSource never has a key pending.
type NullKeyboardSource struct{}

func (NullKeyboardSource) PollKey() byte { return 0xFF }
