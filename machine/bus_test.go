package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func romsWithMarkers() *ROMSet {
	roms := blankROMs()
	roms.Basic[0] = 0xB5
	roms.Kernal[0] = 0xEE
	roms.Char[0] = 0xC4
	return roms
}

func TestBasicROMVisibleWhenSoftSwitchSet(t *testing.T) {
	bus := NewBus(romsWithMarkers(), NullHostSurface{})
	bus.RAM[1] = 0x01 // BASIC visible, KERNAL and I/O not

	assert.Equal(t, byte(0xB5), bus.Read(basicROMMin))
}

func TestBasicWindowFallsThroughToRAMWhenDisabled(t *testing.T) {
	bus := NewBus(romsWithMarkers(), NullHostSurface{})
	bus.RAM[1] = 0x00 // everything off
	bus.RAM[basicROMMin] = 0x7A

	assert.Equal(t, byte(0x7A), bus.Read(basicROMMin))
}

func TestWriteThroughToRAMEvenWhenROMShadowed(t *testing.T) {
	bus := NewBus(romsWithMarkers(), NullHostSurface{})
	bus.RAM[1] = 0x03 // BASIC+KERNAL visible

	bus.Write(basicROMMin, 0x55)
	assert.Equal(t, byte(0xB5), bus.Read(basicROMMin), "ROM still shadows while enabled")

	bus.RAM[1] = 0x00 // disable ROM
	assert.Equal(t, byte(0x55), bus.Read(basicROMMin), "underlying RAM write survives")
}

func TestCharROMVsIOSelection(t *testing.T) {
	bus := NewBus(romsWithMarkers(), NullHostSurface{})
	bus.RAM[1] = 0x00 // bit2 clear -> char ROM visible
	assert.Equal(t, byte(0xC4), bus.Read(0xD000))

	bus.RAM[1] = 0x04 // bit2 set -> I/O visible, VIC register instead
	bus.VIC.Write(0x00, 0x99)
	assert.Equal(t, byte(0), bus.Read(0xD000)) // $D000 isn't a modeled VIC register
}

func TestColorRAMIsMaskedToFourBits(t *testing.T) {
	bus := NewBus(blankROMs(), NullHostSurface{})
	bus.RAM[1] = 0x04 // bit2 set -> I/O visible, so $D800 reads color RAM
	bus.Write(colorRAMMin, 0xFE)
	assert.Equal(t, byte(0x0E), bus.Read(colorRAMMin))
}

func TestScreenRAMMirrorsToHostSurface(t *testing.T) {
	var got struct {
		offset int
		value  byte
	}
	host := &recordingHost{onScreen: func(offset int, v byte) { got.offset, got.value = offset, v }}
	bus := NewBus(blankROMs(), host)

	bus.Write(screenRAMMin+5, 0x41)
	assert.Equal(t, 5, got.offset)
	assert.Equal(t, byte(0x41), got.value)
}

func TestKeyboardDataPortReadsNoKeyPressed(t *testing.T) {
	bus := NewBus(blankROMs(), NullHostSurface{})
	bus.RAM[1] = 0x04 // bit2 set -> I/O visible instead of CHAR ROM
	assert.Equal(t, byte(0xFF), bus.Read(0xDC01))
}

func TestInjectKeyWritesBufferHeadAndCount(t *testing.T) {
	bus := NewBus(blankROMs(), NullHostSurface{})
	bus.InjectKey(0x41)
	assert.Equal(t, byte(0x41), bus.Read(keyboardBufHead))
	assert.Equal(t, byte(1), bus.Read(keyboardBufCount))
}

type recordingHost struct {
	NullHostSurface
	onScreen func(offset int, v byte)
}

func (h *recordingHost) WriteScreen(offset int, v byte) {
	if h.onScreen != nil {
		h.onScreen(offset, v)
	}
}
