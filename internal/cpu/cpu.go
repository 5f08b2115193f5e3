// Package cpu provides the processor. One Step fetches the byte
// at the instruction pointer, dispatches it through the opcode
// table to its handler and returns the cycle cost of the
// instruction.
package cpu

import (
	"fmt"

	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/mmu"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
	"github.com/dotmatrix-emu/dotmatrix/pkg/utils"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
)

// CPU represents the processor. It is responsible for executing
// instructions and servicing interrupts.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	b   *mmu.MMU
	irq *interrupts.Service

	halted bool
	// ticks accumulates the cycle cost of the instruction being
	// executed; branch handlers add their extra cycles to it.
	ticks int

	Log log.Logger
}

// NewCPU creates a new CPU with the given MMU, set to the
// hardware-documented power-on register state.
func NewCPU(b *mmu.MMU, irq *interrupts.Service, l log.Logger) *CPU {
	c := &CPU{
		b:   b,
		irq: irq,
		Log: l,
	}
	// create register pairs
	c.AF = &RegisterPair{&c.A, &c.F}
	c.BC = &RegisterPair{&c.B, &c.C}
	c.DE = &RegisterPair{&c.D, &c.E}
	c.HL = &RegisterPair{&c.H, &c.L}

	c.AF.SetUint16(0x01B0)
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100

	return c
}

// Step executes one instruction and returns the number of cycles
// it consumed. A halted CPU consumes a fixed 4 cycles per step;
// it leaves halt as soon as any interrupt is both requested and
// enabled, independent of the master enable flag.
func (c *CPU) Step() int {
	if c.halted {
		if c.irq.HasInterrupts() {
			c.halted = false
		} else {
			return 4
		}
	}

	opcode := c.readOperand()
	ins := InstructionSet[opcode]
	if ins.fn == nil {
		// undefined opcodes resolve to a 4 cycle no-op so the
		// frame loop stays live against malformed cartridges
		c.Log.Debugf("cpu: undefined opcode 0x%02X at 0x%04X", opcode, c.PC-1)
		return 4
	}

	c.ticks = int(ins.cycles)
	ins.fn(c)
	return c.ticks
}

// HandleInterrupts services the highest priority pending and
// enabled interrupt, if the master enable flag permits: the
// request bit and the master enable flag are cleared, the
// program counter is pushed and control jumps to the vector. At
// most one interrupt is serviced per call.
func (c *CPU) HandleInterrupts() {
	// a pending interrupt always ends halt, even with IME clear
	if c.halted && c.irq.HasInterrupts() {
		c.halted = false
	}

	if !c.irq.IME {
		return
	}

	vector := c.irq.Vector()
	if vector == 0 {
		return
	}

	c.irq.IME = false
	c.push(c.PC)
	c.PC = vector
}

// readOperand reads the byte at the program counter and advances
// it.
func (c *CPU) readOperand() uint8 {
	value := c.b.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads a little-endian 16-bit operand.
func (c *CPU) readOperand16() uint16 {
	lower := c.readOperand()
	upper := c.readOperand()
	return utils.BytesToUint16(upper, lower)
}

// push pushes a 16-bit value onto the stack, high byte first,
// decrementing the stack pointer before each write.
func (c *CPU) push(value uint16) {
	upper, lower := utils.Uint16ToBytes(value)
	c.SP--
	c.b.Write(c.SP, upper)
	c.SP--
	c.b.Write(c.SP, lower)
}

// pop pops a 16-bit value off the stack, reading the low byte
// first and incrementing the stack pointer after each read.
func (c *CPU) pop() uint16 {
	lower := c.b.Read(c.SP)
	c.SP++
	upper := c.b.Read(c.SP)
	c.SP++
	return utils.BytesToUint16(upper, lower)
}

// registerIndex returns the register for the given operand index,
// in the encoding order B, C, D, E, H, L, (HL), A. Index 6 is the
// memory operand and has no backing register.
func (c *CPU) registerIndex(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("invalid register index: %d", index))
}

// readOperandIndex reads the operand with the given index,
// resolving index 6 to the byte at (HL).
func (c *CPU) readOperandIndex(index uint8) uint8 {
	if index == 6 {
		return c.b.Read(c.HL.Uint16())
	}
	return *c.registerIndex(index)
}

// writeOperandIndex writes the operand with the given index,
// resolving index 6 to the byte at (HL).
func (c *CPU) writeOperandIndex(index uint8, value uint8) {
	if index == 6 {
		c.b.Write(c.HL.Uint16(), value)
		return
	}
	*c.registerIndex(index) = value
}

// operandNames holds the operand names in encoding order.
var operandNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
