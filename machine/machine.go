package machine

// Machine is the top-level value owning the CPU, the bus (and through it
// the ROM images and peripherals), and the scheduler. Keeping them as
// plain fields on one value, rather than threading pointers back and
// forth, avoids the CPU-needs-the-bus/bus-needs-the-CPU cycle: the bus
// owns memory and peripherals outright, and the CPU only ever sees it
// through the addrSource interface.
type Machine struct {
	CPU       *CPU
	Bus       *Bus
	Scheduler *Scheduler
}

// NewMachine assembles a Machine from a loaded ROM set and a host surface.
func NewMachine(rom *ROMSet, host HostSurface) *Machine {
	bus := NewBus(rom, host)
	cpu := NewCPU(bus)
	return &Machine{
		CPU:       cpu,
		Bus:       bus,
		Scheduler: NewScheduler(),
	}
}

// Reset reproduces emu.c's bring-up sequence: the processor port soft
// switches are seeded to BASIC+KERNAL+I/O visible with CHAR-ROM banked
// out, CIA #1's timer is pre-loaded with the values the KERNAL's cursor
// blink IRQ expects, and the CPU loads its reset vector.
func (m *Machine) Reset() {
	m.Bus.RAM[0] = 0xFF
	m.Bus.RAM[1] = 0x17

	m.Bus.CIA1.reset()
	m.Bus.CIA1.talatchLo = 37
	m.Bus.CIA1.talatchHi = 64
	m.Bus.CIA1.timerA = 1968
	m.Bus.CIA1.ctrlB = 8
	m.Bus.CIA1.ctrlA = 17

	m.Bus.CIA2.reset()
	m.Bus.VIC.reset()

	m.CPU.Reset()
}

// Step retires exactly one CPU instruction, feeds its cycle cost to the
// scheduler (which may then take an IRQ), and returns the instruction's
// cycle cost. The 7 cycles of an IRQ entry taken by the scheduler are added
// to CPU.CycleCount but are not included in the return value.
func (m *Machine) Step() byte {
	cycles := m.CPU.Step()
	m.Scheduler.Tick(cycles, m.CPU, m.Bus)
	return cycles
}

// InjectKey forwards a host keypress into the KERNAL's keyboard buffer.
func (m *Machine) InjectKey(key byte) {
	m.Bus.InjectKey(key)
}

// PollKeyboard asks src for a pending key and injects it if present.
func (m *Machine) PollKeyboard(src KeyboardSource) {
	if src == nil {
		return
	}
	if k := src.PollKey(); k != 0xFF {
		m.InjectKey(k)
	}
}

// LoopDetected reports whether the CPU is sitting at a three-byte
// "JMP $xxxx" (absolute) that jumps to itself, the idle loop a KERNAL uses
// to wait for an interrupt. A branch to itself (e.g. "BNE *") is not
// detected. It's a diagnostic only: spec's
// error-handling model has no other use for it, and callers are free to
// ignore it entirely.
func (m *Machine) LoopDetected() bool {
	pc := m.CPU.PC
	op := m.Bus.Read(pc)
	switch op {
	case 0x4C: // JMP abs
		target := uint16(m.Bus.Read(pc+1)) | uint16(m.Bus.Read(pc+2))<<8
		return target == pc
	}
	return false
}
