package cpu

import (
	"fmt"

	"github.com/dotmatrix-emu/dotmatrix/pkg/utils"
)

// The CB-prefixed table is entirely regular: eight rotate/shift
// rows followed by the BIT, RES and SET blocks, each iterating the
// eight operands.
func init() {
	rotOps := [8]struct {
		name string
		fn   func(*CPU, uint8) uint8
	}{
		{"RLC", (*CPU).rotateLeftCarry},
		{"RRC", (*CPU).rotateRightCarry},
		{"RL", (*CPU).rotateLeft},
		{"RR", (*CPU).rotateRight},
		{"SLA", (*CPU).shiftLeftArithmetic},
		{"SRA", (*CPU).shiftRightArithmetic},
		{"SWAP", (*CPU).swap},
		{"SRL", (*CPU).shiftRightLogical},
	}
	for op := uint8(0); op < 8; op++ {
		for i := uint8(0); i < 8; i++ {
			index := i
			rot := rotOps[op]
			cycles := uint8(8)
			if i == 6 {
				cycles = 16
			}
			DefineInstructionCB(op<<3|i, fmt.Sprintf("%s %s", rot.name, operandNames[i]), cycles, func(c *CPU) {
				c.writeOperandIndex(index, rot.fn(c, c.readOperandIndex(index)))
			})
		}
	}

	for bit := uint8(0); bit < 8; bit++ {
		for i := uint8(0); i < 8; i++ {
			b, index := bit, i

			bitCycles := uint8(8)
			if i == 6 {
				bitCycles = 12 // BIT only reads (HL)
			}
			DefineInstructionCB(0x40|bit<<3|i, fmt.Sprintf("BIT %d, %s", bit, operandNames[i]), bitCycles, func(c *CPU) {
				c.bitTest(b, c.readOperandIndex(index))
			})

			cycles := uint8(8)
			if i == 6 {
				cycles = 16
			}
			DefineInstructionCB(0x80|bit<<3|i, fmt.Sprintf("RES %d, %s", bit, operandNames[i]), cycles, func(c *CPU) {
				c.writeOperandIndex(index, utils.ClearBit(c.readOperandIndex(index), b))
			})
			DefineInstructionCB(0xC0|bit<<3|i, fmt.Sprintf("SET %d, %s", bit, operandNames[i]), cycles, func(c *CPU) {
				c.writeOperandIndex(index, utils.SetBit(c.readOperandIndex(index), b))
			})
		}
	}
}
