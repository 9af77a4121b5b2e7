package machine

// buildOpTable populates the 256-entry opcode dispatch table: the 151
// documented 6502 opcodes plus a two-cycle no-op catch-all for the rest,
// matching the Non-goal that illegal opcodes need not behave authentically.
func (c *CPU) buildOpTable() {
	c.opTable = [256]instruction{
		{"BRK", amIMP, opBRK, 7}, {"ORA", amIZX, opORA, 6}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"???", amIMP, opXXX, 2}, {"ORA", amZP0, opORA, 3}, {"ASL", amZP0, opASL, 5}, {"???", amIMP, opXXX, 2},
		{"PHP", amIMP, opPHP, 3}, {"ORA", amIMM, opORA, 2}, {"ASL", amIMP, opASL, 2}, {"???", amIMP, opXXX, 2},
		{"???", amIMP, opXXX, 2}, {"ORA", amABS, opORA, 4}, {"ASL", amABS, opASL, 6}, {"???", amIMP, opXXX, 2},

		{"BPL", amREL, opBPL, 2}, {"ORA", amIZY, opORA, 5}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"???", amIMP, opXXX, 2}, {"ORA", amZPX, opORA, 4}, {"ASL", amZPX, opASL, 6}, {"???", amIMP, opXXX, 2},
		{"CLC", amIMP, opCLC, 2}, {"ORA", amABY, opORA, 4}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"???", amIMP, opXXX, 2}, {"ORA", amABX, opORA, 4}, {"ASL", amABX, opASL, 7}, {"???", amIMP, opXXX, 2},

		{"JSR", amABS, opJSR, 6}, {"AND", amIZX, opAND, 6}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"BIT", amZP0, opBIT, 3}, {"AND", amZP0, opAND, 3}, {"ROL", amZP0, opROL, 5}, {"???", amIMP, opXXX, 2},
		{"PLP", amIMP, opPLP, 4}, {"AND", amIMM, opAND, 2}, {"ROL", amIMP, opROL, 2}, {"???", amIMP, opXXX, 2},
		{"BIT", amABS, opBIT, 4}, {"AND", amABS, opAND, 4}, {"ROL", amABS, opROL, 6}, {"???", amIMP, opXXX, 2},

		{"BMI", amREL, opBMI, 2}, {"AND", amIZY, opAND, 5}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"???", amIMP, opXXX, 2}, {"AND", amZPX, opAND, 4}, {"ROL", amZPX, opROL, 6}, {"???", amIMP, opXXX, 2},
		{"SEC", amIMP, opSEC, 2}, {"AND", amABY, opAND, 4}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"???", amIMP, opXXX, 2}, {"AND", amABX, opAND, 4}, {"ROL", amABX, opROL, 7}, {"???", amIMP, opXXX, 2},

		{"RTI", amIMP, opRTI, 6}, {"EOR", amIZX, opEOR, 6}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"???", amIMP, opXXX, 2}, {"EOR", amZP0, opEOR, 3}, {"LSR", amZP0, opLSR, 5}, {"???", amIMP, opXXX, 2},
		{"PHA", amIMP, opPHA, 3}, {"EOR", amIMM, opEOR, 2}, {"LSR", amIMP, opLSR, 2}, {"???", amIMP, opXXX, 2},
		{"JMP", amABS, opJMP, 3}, {"EOR", amABS, opEOR, 4}, {"LSR", amABS, opLSR, 6}, {"???", amIMP, opXXX, 2},

		{"BVC", amREL, opBVC, 2}, {"EOR", amIZY, opEOR, 5}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"???", amIMP, opXXX, 2}, {"EOR", amZPX, opEOR, 4}, {"LSR", amZPX, opLSR, 6}, {"???", amIMP, opXXX, 2},
		{"CLI", amIMP, opCLI, 2}, {"EOR", amABY, opEOR, 4}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"???", amIMP, opXXX, 2}, {"EOR", amABX, opEOR, 4}, {"LSR", amABX, opLSR, 7}, {"???", amIMP, opXXX, 2},

		{"RTS", amIMP, opRTS, 6}, {"ADC", amIZX, opADC, 6}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"???", amIMP, opXXX, 2}, {"ADC", amZP0, opADC, 3}, {"ROR", amZP0, opROR, 5}, {"???", amIMP, opXXX, 2},
		{"PLA", amIMP, opPLA, 4}, {"ADC", amIMM, opADC, 2}, {"ROR", amIMP, opROR, 2}, {"???", amIMP, opXXX, 2},
		{"JMP", amIND, opJMP, 5}, {"ADC", amABS, opADC, 4}, {"ROR", amABS, opROR, 6}, {"???", amIMP, opXXX, 2},

		{"BVS", amREL, opBVS, 2}, {"ADC", amIZY, opADC, 5}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"???", amIMP, opXXX, 2}, {"ADC", amZPX, opADC, 4}, {"ROR", amZPX, opROR, 6}, {"???", amIMP, opXXX, 2},
		{"SEI", amIMP, opSEI, 2}, {"ADC", amABY, opADC, 4}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"???", amIMP, opXXX, 2}, {"ADC", amABX, opADC, 4}, {"ROR", amABX, opROR, 7}, {"???", amIMP, opXXX, 2},

		{"???", amIMP, opXXX, 2}, {"STA", amIZX, opSTA, 6}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"STY", amZP0, opSTY, 3}, {"STA", amZP0, opSTA, 3}, {"STX", amZP0, opSTX, 3}, {"???", amIMP, opXXX, 2},
		{"DEY", amIMP, opDEY, 2}, {"???", amIMP, opXXX, 2}, {"TXA", amIMP, opTXA, 2}, {"???", amIMP, opXXX, 2},
		{"STY", amABS, opSTY, 4}, {"STA", amABS, opSTA, 4}, {"STX", amABS, opSTX, 4}, {"???", amIMP, opXXX, 2},

		{"BCC", amREL, opBCC, 2}, {"STA", amIZY, opSTA, 6}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"STY", amZPX, opSTY, 4}, {"STA", amZPX, opSTA, 4}, {"STX", amZPY, opSTX, 4}, {"???", amIMP, opXXX, 2},
		{"TYA", amIMP, opTYA, 2}, {"STA", amABY, opSTA, 5}, {"TXS", amIMP, opTXS, 2}, {"???", amIMP, opXXX, 2},
		{"???", amIMP, opXXX, 2}, {"STA", amABX, opSTA, 5}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},

		{"LDY", amIMM, opLDY, 2}, {"LDA", amIZX, opLDA, 6}, {"LDX", amIMM, opLDX, 2}, {"???", amIMP, opXXX, 2},
		{"LDY", amZP0, opLDY, 3}, {"LDA", amZP0, opLDA, 3}, {"LDX", amZP0, opLDX, 3}, {"???", amIMP, opXXX, 2},
		{"TAY", amIMP, opTAY, 2}, {"LDA", amIMM, opLDA, 2}, {"TAX", amIMP, opTAX, 2}, {"???", amIMP, opXXX, 2},
		{"LDY", amABS, opLDY, 4}, {"LDA", amABS, opLDA, 4}, {"LDX", amABS, opLDX, 4}, {"???", amIMP, opXXX, 2},

		{"BCS", amREL, opBCS, 2}, {"LDA", amIZY, opLDA, 5}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"LDY", amZPX, opLDY, 4}, {"LDA", amZPX, opLDA, 4}, {"LDX", amZPY, opLDX, 4}, {"???", amIMP, opXXX, 2},
		{"CLV", amIMP, opCLV, 2}, {"LDA", amABY, opLDA, 4}, {"TSX", amIMP, opTSX, 2}, {"???", amIMP, opXXX, 2},
		{"LDY", amABX, opLDY, 4}, {"LDA", amABX, opLDA, 4}, {"LDX", amABY, opLDX, 4}, {"???", amIMP, opXXX, 2},

		{"CPY", amIMM, opCPY, 2}, {"CMP", amIZX, opCMP, 6}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"CPY", amZP0, opCPY, 3}, {"CMP", amZP0, opCMP, 3}, {"DEC", amZP0, opDEC, 5}, {"???", amIMP, opXXX, 2},
		{"INY", amIMP, opINY, 2}, {"CMP", amIMM, opCMP, 2}, {"DEX", amIMP, opDEX, 2}, {"???", amIMP, opXXX, 2},
		{"CPY", amABS, opCPY, 4}, {"CMP", amABS, opCMP, 4}, {"DEC", amABS, opDEC, 6}, {"???", amIMP, opXXX, 2},

		{"BNE", amREL, opBNE, 2}, {"CMP", amIZY, opCMP, 5}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"???", amIMP, opXXX, 2}, {"CMP", amZPX, opCMP, 4}, {"DEC", amZPX, opDEC, 6}, {"???", amIMP, opXXX, 2},
		{"CLD", amIMP, opCLD, 2}, {"CMP", amABY, opCMP, 4}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"???", amIMP, opXXX, 2}, {"CMP", amABX, opCMP, 4}, {"DEC", amABX, opDEC, 7}, {"???", amIMP, opXXX, 2},

		{"CPX", amIMM, opCPX, 2}, {"SBC", amIZX, opSBC, 6}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"CPX", amZP0, opCPX, 3}, {"SBC", amZP0, opSBC, 3}, {"INC", amZP0, opINC, 5}, {"???", amIMP, opXXX, 2},
		{"INX", amIMP, opINX, 2}, {"SBC", amIMM, opSBC, 2}, {"NOP", amIMP, opNOP, 2}, {"???", amIMP, opXXX, 2},
		{"CPX", amABS, opCPX, 4}, {"SBC", amABS, opSBC, 4}, {"INC", amABS, opINC, 6}, {"???", amIMP, opXXX, 2},

		{"BEQ", amREL, opBEQ, 2}, {"SBC", amIZY, opSBC, 5}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"???", amIMP, opXXX, 2}, {"SBC", amZPX, opSBC, 4}, {"INC", amZPX, opINC, 6}, {"???", amIMP, opXXX, 2},
		{"SED", amIMP, opSED, 2}, {"SBC", amABY, opSBC, 4}, {"???", amIMP, opXXX, 2}, {"???", amIMP, opXXX, 2},
		{"???", amIMP, opXXX, 2}, {"SBC", amABX, opSBC, 4}, {"INC", amABX, opINC, 7}, {"???", amIMP, opXXX, 2},
	}
}
