package machine

import "fmt"

// addrModeID tags how an instruction's operand should be printed. Kept as
// its own table, in the exact 16x16 layout buildOpTable uses, rather than
// a field alongside the addressing-mode function: the two function values
// used for actual dispatch aren't comparable in Go, so a disassembler
// needs a parallel description of the same table instead of inspecting it.
type addrModeID byte

const (
	dmIMP addrModeID = iota
	dmIMM
	dmREL
	dmZP0
	dmZPX
	dmZPY
	dmABS
	dmABX
	dmABY
	dmIND
	dmIZX
	dmIZY
)

var disasmMode = [256]addrModeID{
	dmIMP, dmIZX, dmIMP, dmIMP, dmIMP, dmZP0, dmZP0, dmIMP, dmIMP, dmIMM, dmIMP, dmIMP, dmIMP, dmABS, dmABS, dmIMP,
	dmREL, dmIZY, dmIMP, dmIMP, dmIMP, dmZPX, dmZPX, dmIMP, dmIMP, dmABY, dmIMP, dmIMP, dmIMP, dmABX, dmABX, dmIMP,

	dmABS, dmIZX, dmIMP, dmIMP, dmZP0, dmZP0, dmZP0, dmIMP, dmIMP, dmIMM, dmIMP, dmIMP, dmABS, dmABS, dmABS, dmIMP,
	dmREL, dmIZY, dmIMP, dmIMP, dmIMP, dmZPX, dmZPX, dmIMP, dmIMP, dmABY, dmIMP, dmIMP, dmIMP, dmABX, dmABX, dmIMP,

	dmIMP, dmIZX, dmIMP, dmIMP, dmIMP, dmZP0, dmZP0, dmIMP, dmIMP, dmIMM, dmIMP, dmIMP, dmABS, dmABS, dmABS, dmIMP,
	dmREL, dmIZY, dmIMP, dmIMP, dmIMP, dmZPX, dmZPX, dmIMP, dmIMP, dmABY, dmIMP, dmIMP, dmIMP, dmABX, dmABX, dmIMP,

	dmIMP, dmIZX, dmIMP, dmIMP, dmIMP, dmZP0, dmZP0, dmIMP, dmIMP, dmIMM, dmIMP, dmIMP, dmIND, dmABS, dmABS, dmIMP,
	dmREL, dmIZY, dmIMP, dmIMP, dmIMP, dmZPX, dmZPX, dmIMP, dmIMP, dmABY, dmIMP, dmIMP, dmIMP, dmABX, dmABX, dmIMP,

	dmIMP, dmIZX, dmIMP, dmIMP, dmZP0, dmZP0, dmZP0, dmIMP, dmIMP, dmIMP, dmIMP, dmIMP, dmABS, dmABS, dmABS, dmIMP,
	dmREL, dmIZY, dmIMP, dmIMP, dmZPX, dmZPX, dmZPY, dmIMP, dmIMP, dmABY, dmIMP, dmIMP, dmIMP, dmABX, dmIMP, dmIMP,

	dmIMM, dmIZX, dmIMM, dmIMP, dmZP0, dmZP0, dmZP0, dmIMP, dmIMP, dmIMM, dmIMP, dmIMP, dmABS, dmABS, dmABS, dmIMP,
	dmREL, dmIZY, dmIMP, dmIMP, dmZPX, dmZPX, dmZPY, dmIMP, dmIMP, dmABY, dmIMP, dmIMP, dmABX, dmABX, dmABY, dmIMP,

	dmIMM, dmIZX, dmIMP, dmIMP, dmZP0, dmZP0, dmZP0, dmIMP, dmIMP, dmIMM, dmIMP, dmIMP, dmABS, dmABS, dmABS, dmIMP,
	dmREL, dmIZY, dmIMP, dmIMP, dmIMP, dmZPX, dmZPX, dmIMP, dmIMP, dmABY, dmIMP, dmIMP, dmIMP, dmABX, dmABX, dmIMP,

	dmIMM, dmIZX, dmIMP, dmIMP, dmZP0, dmZP0, dmZP0, dmIMP, dmIMP, dmIMM, dmIMP, dmIMP, dmABS, dmABS, dmABS, dmIMP,
	dmREL, dmIZY, dmIMP, dmIMP, dmIMP, dmZPX, dmZPX, dmIMP, dmIMP, dmABY, dmIMP, dmIMP, dmIMP, dmABX, dmABX, dmIMP,
}

// Disassemble renders instructions from start to end (inclusive) into a
// map keyed by the address each one begins at, for a monitor or debug
// panel to page through. It reads through the bus, so it sees whatever
// ROM/RAM is currently banked in.
func (c *CPU) Disassemble(start, end uint16) map[uint16]string {
	out := make(map[uint16]string)
	addr := uint32(start)
	for addr <= uint32(end) {
		lineAddr := uint16(addr)
		op := c.read(uint16(addr))
		addr++
		inst := c.opTable[op]

		switch disasmMode[op] {
		case dmIMP:
			out[lineAddr] = fmt.Sprintf("$%04X: %s {IMP}", lineAddr, inst.name)
		case dmIMM:
			v := c.read(uint16(addr))
			addr++
			out[lineAddr] = fmt.Sprintf("$%04X: %s #$%02X {IMM}", lineAddr, inst.name, v)
		case dmREL:
			v := c.read(uint16(addr))
			addr++
			target := uint16(addr) + uint16(int8(v))
			out[lineAddr] = fmt.Sprintf("$%04X: %s $%04X {REL}", lineAddr, inst.name, target)
		case dmZP0:
			v := c.read(uint16(addr))
			addr++
			out[lineAddr] = fmt.Sprintf("$%04X: %s $%02X {ZP0}", lineAddr, inst.name, v)
		case dmZPX:
			v := c.read(uint16(addr))
			addr++
			out[lineAddr] = fmt.Sprintf("$%04X: %s $%02X,X {ZPX}", lineAddr, inst.name, v)
		case dmZPY:
			v := c.read(uint16(addr))
			addr++
			out[lineAddr] = fmt.Sprintf("$%04X: %s $%02X,Y {ZPY}", lineAddr, inst.name, v)
		case dmABS:
			lo := uint16(c.read(uint16(addr)))
			addr++
			hi := uint16(c.read(uint16(addr)))
			addr++
			out[lineAddr] = fmt.Sprintf("$%04X: %s $%04X {ABS}", lineAddr, inst.name, hi<<8|lo)
		case dmABX:
			lo := uint16(c.read(uint16(addr)))
			addr++
			hi := uint16(c.read(uint16(addr)))
			addr++
			out[lineAddr] = fmt.Sprintf("$%04X: %s $%04X,X {ABX}", lineAddr, inst.name, hi<<8|lo)
		case dmABY:
			lo := uint16(c.read(uint16(addr)))
			addr++
			hi := uint16(c.read(uint16(addr)))
			addr++
			out[lineAddr] = fmt.Sprintf("$%04X: %s $%04X,Y {ABY}", lineAddr, inst.name, hi<<8|lo)
		case dmIND:
			lo := uint16(c.read(uint16(addr)))
			addr++
			hi := uint16(c.read(uint16(addr)))
			addr++
			out[lineAddr] = fmt.Sprintf("$%04X: %s ($%04X) {IND}", lineAddr, inst.name, hi<<8|lo)
		case dmIZX:
			v := c.read(uint16(addr))
			addr++
			out[lineAddr] = fmt.Sprintf("$%04X: %s ($%02X,X) {IZX}", lineAddr, inst.name, v)
		case dmIZY:
			v := c.read(uint16(addr))
			addr++
			out[lineAddr] = fmt.Sprintf("$%04X: %s ($%02X),Y {IZY}", lineAddr, inst.name, v)
		}
	}
	return out
}
