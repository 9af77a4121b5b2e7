package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRaisesIRQOnUnmaskedRasterMatch(t *testing.T) {
	m := testMachine(t)
	m.Bus.RAM[1] = 0x05 // bank the KERNAL out so the vector written below is read back
	m.Bus.Write(0xFFFE, 0x00)
	m.Bus.Write(0xFFFF, 0x90)
	m.CPU.setFlag(FlagI, false)

	m.Bus.VIC.Write(0x12, 0x01) // raster compare = line 1
	m.Bus.VIC.Write(0x1A, 0x01) // unmask raster IRQ

	quantum := m.Scheduler.cyclesPerLine()
	m.Scheduler.Tick(byte(quantum)+1, m.CPU, m.Bus)

	assert.Equal(t, uint16(0x9000), m.CPU.PC)
	assert.True(t, m.CPU.IRQInFlight)
}

func TestSchedulerDoesNotRefireWhileIRQInFlight(t *testing.T) {
	m := testMachine(t)
	m.Bus.Write(0xFFFE, 0x00)
	m.Bus.Write(0xFFFF, 0x90)
	m.CPU.setFlag(FlagI, false)
	m.Bus.VIC.Write(0x1A, 0x01)
	m.Bus.VIC.ifr = 0x01

	m.Scheduler.Tick(10, m.CPU, m.Bus)
	firstPC := m.CPU.PC
	m.Bus.VIC.ifr = 0x01 // pretend it re-asserted before RTI

	m.Scheduler.Tick(10, m.CPU, m.Bus)
	assert.Equal(t, firstPC, m.CPU.PC, "no second IRQ entry while the first is unacknowledged")
}

func TestSchedulerClearsLatchOnRTI(t *testing.T) {
	m := testMachine(t)
	m.CPU.IRQInFlight = true
	m.CPU.SP = 0xFC
	m.CPU.push(0x00)
	m.CPU.pushWord(0x1234)
	m.CPU.PC = 0x0200
	load(m.Bus, 0x0200, 0x40) // RTI

	m.Step()
	assert.False(t, m.CPU.IRQInFlight)
}

func TestJiffyQuantumMatchesCPUClockOverFrameRate(t *testing.T) {
	s := NewScheduler()
	assert.Equal(t, uint32(985248/50), s.jiffyQuantum())
}
