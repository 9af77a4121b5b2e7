package machine

// StatusFlag is one bit of the CPU status register.
type StatusFlag byte

// Bit positions match the 6502's P register, lowest bit first.
const (
	FlagC StatusFlag = 1 << iota // carry
	FlagZ                        // zero
	FlagI                        // interrupt disable
	FlagD                        // decimal mode (not honored by arithmetic, see Non-goals)
	FlagB                        // break, only meaningful in a pushed copy of status
	FlagU                        // unused, always reads as 1
	FlagV                        // overflow
	FlagN                        // negative
)

func (c *CPU) getFlag(f StatusFlag) bool {
	return c.Status&byte(f) != 0
}

func (c *CPU) setFlag(f StatusFlag, v bool) {
	if v {
		c.Status |= byte(f)
	} else {
		c.Status &^= byte(f)
	}
}

func (c *CPU) setZN(v byte) {
	c.setFlag(FlagZ, v == 0)
	c.setFlag(FlagN, v&0x80 != 0)
}
