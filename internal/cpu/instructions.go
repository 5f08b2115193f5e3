package cpu

import (
	"fmt"
)

func init() {
	defineControlInstructions()
	defineLoadInstructions()
	defineArithmeticInstructions()
	defineJumpInstructions()
	defineRegisterBlocks()
}

// defineControlInstructions defines the miscellaneous control
// opcodes.
func defineControlInstructions() {
	DefineInstruction(0x00, "NOP", 4, func(c *CPU) {})
	DefineInstruction(0x10, "STOP", 4, func(c *CPU) {
		// stop is treated as a halt that also consumes its
		// operand byte
		c.PC++
		c.halted = true
	})
	DefineInstruction(0x27, "DAA", 4, (*CPU).daa)
	DefineInstruction(0x2F, "CPL", 4, (*CPU).complement)
	DefineInstruction(0x37, "SCF", 4, (*CPU).setCarryFlag)
	DefineInstruction(0x3F, "CCF", 4, (*CPU).complementCarryFlag)
	DefineInstruction(0x76, "HALT", 4, func(c *CPU) {
		c.halted = true
	})
	DefineInstruction(0xF3, "DI", 4, func(c *CPU) {
		c.irq.IME = false
	})
	DefineInstruction(0xFB, "EI", 4, func(c *CPU) {
		c.irq.IME = true
	})
	DefineInstruction(0xCB, "CB", 0, func(c *CPU) {
		ins := InstructionSetCB[c.readOperand()]
		c.ticks += int(ins.cycles)
		ins.fn(c)
	})

	// accumulator rotates always clear the zero flag
	DefineInstruction(0x07, "RLCA", 4, func(c *CPU) {
		c.A = c.rotateLeftCarry(c.A)
		c.clearFlag(FlagZero)
	})
	DefineInstruction(0x0F, "RRCA", 4, func(c *CPU) {
		c.A = c.rotateRightCarry(c.A)
		c.clearFlag(FlagZero)
	})
	DefineInstruction(0x17, "RLA", 4, func(c *CPU) {
		c.A = c.rotateLeft(c.A)
		c.clearFlag(FlagZero)
	})
	DefineInstruction(0x1F, "RRA", 4, func(c *CPU) {
		c.A = c.rotateRight(c.A)
		c.clearFlag(FlagZero)
	})
}

// defineLoadInstructions defines the 8-bit and 16-bit load
// opcodes outside the regular register blocks.
func defineLoadInstructions() {
	DefineInstruction(0x01, "LD BC, d16", 12, func(c *CPU) { c.BC.SetUint16(c.readOperand16()) })
	DefineInstruction(0x11, "LD DE, d16", 12, func(c *CPU) { c.DE.SetUint16(c.readOperand16()) })
	DefineInstruction(0x21, "LD HL, d16", 12, func(c *CPU) { c.HL.SetUint16(c.readOperand16()) })
	DefineInstruction(0x31, "LD SP, d16", 12, func(c *CPU) { c.SP = c.readOperand16() })

	DefineInstruction(0x02, "LD (BC), A", 8, func(c *CPU) { c.b.Write(c.BC.Uint16(), c.A) })
	DefineInstruction(0x12, "LD (DE), A", 8, func(c *CPU) { c.b.Write(c.DE.Uint16(), c.A) })
	DefineInstruction(0x22, "LD (HL+), A", 8, func(c *CPU) {
		c.b.Write(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x32, "LD (HL-), A", 8, func(c *CPU) {
		c.b.Write(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})

	DefineInstruction(0x0A, "LD A, (BC)", 8, func(c *CPU) { c.A = c.b.Read(c.BC.Uint16()) })
	DefineInstruction(0x1A, "LD A, (DE)", 8, func(c *CPU) { c.A = c.b.Read(c.DE.Uint16()) })
	DefineInstruction(0x2A, "LD A, (HL+)", 8, func(c *CPU) {
		c.A = c.b.Read(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x3A, "LD A, (HL-)", 8, func(c *CPU) {
		c.A = c.b.Read(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})

	DefineInstruction(0x08, "LD (a16), SP", 20, func(c *CPU) {
		address := c.readOperand16()
		c.b.Write(address, uint8(c.SP))
		c.b.Write(address+1, uint8(c.SP>>8))
	})

	DefineInstruction(0xE0, "LDH (a8), A", 12, func(c *CPU) {
		c.b.Write(0xFF00+uint16(c.readOperand()), c.A)
	})
	DefineInstruction(0xF0, "LDH A, (a8)", 12, func(c *CPU) {
		c.A = c.b.Read(0xFF00 + uint16(c.readOperand()))
	})
	DefineInstruction(0xE2, "LD (C), A", 8, func(c *CPU) {
		c.b.Write(0xFF00+uint16(c.C), c.A)
	})
	DefineInstruction(0xF2, "LD A, (C)", 8, func(c *CPU) {
		c.A = c.b.Read(0xFF00 + uint16(c.C))
	})
	DefineInstruction(0xEA, "LD (a16), A", 16, func(c *CPU) {
		c.b.Write(c.readOperand16(), c.A)
	})
	DefineInstruction(0xFA, "LD A, (a16)", 16, func(c *CPU) {
		c.A = c.b.Read(c.readOperand16())
	})

	DefineInstruction(0xF8, "LD HL, SP+r8", 12, func(c *CPU) {
		c.HL.SetUint16(c.addSPSigned())
	})
	DefineInstruction(0xF9, "LD SP, HL", 8, func(c *CPU) {
		c.SP = c.HL.Uint16()
	})

	// stack
	DefineInstruction(0xC1, "POP BC", 12, func(c *CPU) { c.BC.SetUint16(c.pop()) })
	DefineInstruction(0xD1, "POP DE", 12, func(c *CPU) { c.DE.SetUint16(c.pop()) })
	DefineInstruction(0xE1, "POP HL", 12, func(c *CPU) { c.HL.SetUint16(c.pop()) })
	DefineInstruction(0xF1, "POP AF", 12, func(c *CPU) {
		c.AF.SetUint16(c.pop())
		c.F &= 0xF0 // the low 4 bits of F always read as zero
	})
	DefineInstruction(0xC5, "PUSH BC", 16, func(c *CPU) { c.push(c.BC.Uint16()) })
	DefineInstruction(0xD5, "PUSH DE", 16, func(c *CPU) { c.push(c.DE.Uint16()) })
	DefineInstruction(0xE5, "PUSH HL", 16, func(c *CPU) { c.push(c.HL.Uint16()) })
	DefineInstruction(0xF5, "PUSH AF", 16, func(c *CPU) { c.push(c.AF.Uint16()) })
}

// defineArithmeticInstructions defines the 16-bit arithmetic and
// immediate ALU opcodes.
func defineArithmeticInstructions() {
	DefineInstruction(0x03, "INC BC", 8, func(c *CPU) { c.BC.SetUint16(c.BC.Uint16() + 1) })
	DefineInstruction(0x13, "INC DE", 8, func(c *CPU) { c.DE.SetUint16(c.DE.Uint16() + 1) })
	DefineInstruction(0x23, "INC HL", 8, func(c *CPU) { c.HL.SetUint16(c.HL.Uint16() + 1) })
	DefineInstruction(0x33, "INC SP", 8, func(c *CPU) { c.SP++ })
	DefineInstruction(0x0B, "DEC BC", 8, func(c *CPU) { c.BC.SetUint16(c.BC.Uint16() - 1) })
	DefineInstruction(0x1B, "DEC DE", 8, func(c *CPU) { c.DE.SetUint16(c.DE.Uint16() - 1) })
	DefineInstruction(0x2B, "DEC HL", 8, func(c *CPU) { c.HL.SetUint16(c.HL.Uint16() - 1) })
	DefineInstruction(0x3B, "DEC SP", 8, func(c *CPU) { c.SP-- })

	DefineInstruction(0x09, "ADD HL, BC", 8, func(c *CPU) { c.addHL(c.BC.Uint16()) })
	DefineInstruction(0x19, "ADD HL, DE", 8, func(c *CPU) { c.addHL(c.DE.Uint16()) })
	DefineInstruction(0x29, "ADD HL, HL", 8, func(c *CPU) { c.addHL(c.HL.Uint16()) })
	DefineInstruction(0x39, "ADD HL, SP", 8, func(c *CPU) { c.addHL(c.SP) })

	DefineInstruction(0xE8, "ADD SP, r8", 16, func(c *CPU) { c.SP = c.addSPSigned() })

	DefineInstruction(0xC6, "ADD A, d8", 8, func(c *CPU) { c.add(c.readOperand(), false) })
	DefineInstruction(0xCE, "ADC A, d8", 8, func(c *CPU) { c.add(c.readOperand(), true) })
	DefineInstruction(0xD6, "SUB d8", 8, func(c *CPU) { c.sub(c.readOperand(), false) })
	DefineInstruction(0xDE, "SBC A, d8", 8, func(c *CPU) { c.sub(c.readOperand(), true) })
	DefineInstruction(0xE6, "AND d8", 8, func(c *CPU) { c.and(c.readOperand()) })
	DefineInstruction(0xEE, "XOR d8", 8, func(c *CPU) { c.xor(c.readOperand()) })
	DefineInstruction(0xF6, "OR d8", 8, func(c *CPU) { c.or(c.readOperand()) })
	DefineInstruction(0xFE, "CP d8", 8, func(c *CPU) { c.compare(c.readOperand()) })
}

// defineJumpInstructions defines the jump, call, return and
// restart opcodes.
func defineJumpInstructions() {
	DefineInstruction(0x18, "JR r8", 8, func(c *CPU) { c.jumpRelative(true) })
	DefineInstruction(0x20, "JR NZ, r8", 8, func(c *CPU) { c.jumpRelative(!c.isFlagSet(FlagZero)) })
	DefineInstruction(0x28, "JR Z, r8", 8, func(c *CPU) { c.jumpRelative(c.isFlagSet(FlagZero)) })
	DefineInstruction(0x30, "JR NC, r8", 8, func(c *CPU) { c.jumpRelative(!c.isFlagSet(FlagCarry)) })
	DefineInstruction(0x38, "JR C, r8", 8, func(c *CPU) { c.jumpRelative(c.isFlagSet(FlagCarry)) })

	DefineInstruction(0xC3, "JP a16", 12, func(c *CPU) { c.jump(true) })
	DefineInstruction(0xC2, "JP NZ, a16", 12, func(c *CPU) { c.jump(!c.isFlagSet(FlagZero)) })
	DefineInstruction(0xCA, "JP Z, a16", 12, func(c *CPU) { c.jump(c.isFlagSet(FlagZero)) })
	DefineInstruction(0xD2, "JP NC, a16", 12, func(c *CPU) { c.jump(!c.isFlagSet(FlagCarry)) })
	DefineInstruction(0xDA, "JP C, a16", 12, func(c *CPU) { c.jump(c.isFlagSet(FlagCarry)) })
	DefineInstruction(0xE9, "JP HL", 4, func(c *CPU) { c.PC = c.HL.Uint16() })

	DefineInstruction(0xCD, "CALL a16", 12, func(c *CPU) { c.call(true) })
	DefineInstruction(0xC4, "CALL NZ, a16", 12, func(c *CPU) { c.call(!c.isFlagSet(FlagZero)) })
	DefineInstruction(0xCC, "CALL Z, a16", 12, func(c *CPU) { c.call(c.isFlagSet(FlagZero)) })
	DefineInstruction(0xD4, "CALL NC, a16", 12, func(c *CPU) { c.call(!c.isFlagSet(FlagCarry)) })
	DefineInstruction(0xDC, "CALL C, a16", 12, func(c *CPU) { c.call(c.isFlagSet(FlagCarry)) })

	DefineInstruction(0xC9, "RET", 16, func(c *CPU) { c.PC = c.pop() })
	DefineInstruction(0xD9, "RETI", 16, func(c *CPU) {
		c.PC = c.pop()
		c.irq.IME = true
	})
	DefineInstruction(0xC0, "RET NZ", 8, func(c *CPU) { c.retConditional(!c.isFlagSet(FlagZero)) })
	DefineInstruction(0xC8, "RET Z", 8, func(c *CPU) { c.retConditional(c.isFlagSet(FlagZero)) })
	DefineInstruction(0xD0, "RET NC", 8, func(c *CPU) { c.retConditional(!c.isFlagSet(FlagCarry)) })
	DefineInstruction(0xD8, "RET C", 8, func(c *CPU) { c.retConditional(c.isFlagSet(FlagCarry)) })

	for i := uint16(0); i < 8; i++ {
		vector := i * 8
		DefineInstruction(uint8(0xC7+i*8), fmt.Sprintf("RST %02XH", vector), 16, func(c *CPU) {
			c.rst(vector)
		})
	}
}

// defineRegisterBlocks defines the four regular register blocks:
// INC r, DEC r and LD r, d8 in the 0x00-0x3F range, LD r, r' in
// the 0x40-0x7F range and the ALU block in the 0x80-0xBF range.
func defineRegisterBlocks() {
	for i := uint8(0); i < 8; i++ {
		index := i
		incCycles, loadCycles := uint8(4), uint8(8)
		if index == 6 { // the (HL) operand pays for the memory access
			incCycles, loadCycles = 12, 12
		}

		DefineInstruction(0x04+i*8, fmt.Sprintf("INC %s", operandNames[i]), incCycles, func(c *CPU) {
			c.writeOperandIndex(index, c.increment(c.readOperandIndex(index)))
		})
		DefineInstruction(0x05+i*8, fmt.Sprintf("DEC %s", operandNames[i]), incCycles, func(c *CPU) {
			c.writeOperandIndex(index, c.decrement(c.readOperandIndex(index)))
		})
		DefineInstruction(0x06+i*8, fmt.Sprintf("LD %s, d8", operandNames[i]), loadCycles, func(c *CPU) {
			c.writeOperandIndex(index, c.readOperand())
		})
	}

	// LD r, r'
	for to := uint8(0); to < 8; to++ {
		for from := uint8(0); from < 8; from++ {
			opcode := 0x40 | to<<3 | from
			if opcode == 0x76 { // HALT lives in the middle of the block
				continue
			}

			toIndex, fromIndex := to, from
			cycles := uint8(4)
			if to == 6 || from == 6 {
				cycles = 8
			}
			DefineInstruction(opcode, fmt.Sprintf("LD %s, %s", operandNames[to], operandNames[from]), cycles, func(c *CPU) {
				c.writeOperandIndex(toIndex, c.readOperandIndex(fromIndex))
			})
		}
	}

	// ALU block
	aluOps := [8]struct {
		name string
		fn   func(*CPU, uint8)
	}{
		{"ADD A,", func(c *CPU, v uint8) { c.add(v, false) }},
		{"ADC A,", func(c *CPU, v uint8) { c.add(v, true) }},
		{"SUB", func(c *CPU, v uint8) { c.sub(v, false) }},
		{"SBC A,", func(c *CPU, v uint8) { c.sub(v, true) }},
		{"AND", (*CPU).and},
		{"XOR", (*CPU).xor},
		{"OR", (*CPU).or},
		{"CP", (*CPU).compare},
	}
	for op := uint8(0); op < 8; op++ {
		for i := uint8(0); i < 8; i++ {
			opcode := 0x80 | op<<3 | i
			index := i
			alu := aluOps[op]
			cycles := uint8(4)
			if i == 6 {
				cycles = 8
			}
			DefineInstruction(opcode, fmt.Sprintf("%s %s", alu.name, operandNames[i]), cycles, func(c *CPU) {
				alu.fn(c, c.readOperandIndex(index))
			})
		}
	}
}
