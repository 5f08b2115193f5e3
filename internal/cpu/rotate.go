package cpu

import "github.com/dotmatrix-emu/dotmatrix/pkg/utils"

// rotateLeftCarry rotates value left, bit 7 moving into both the
// carry flag and bit 0.
func (c *CPU) rotateLeftCarry(value uint8) uint8 {
	carry := value >> 7
	result := value<<1 | carry
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.setFlagState(FlagCarry, carry == 1)
	return result
}

// rotateRightCarry rotates value right, bit 0 moving into both
// the carry flag and bit 7.
func (c *CPU) rotateRightCarry(value uint8) uint8 {
	carry := value & 1
	result := value>>1 | carry<<7
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.setFlagState(FlagCarry, carry == 1)
	return result
}

// rotateLeft rotates value left through the carry flag.
func (c *CPU) rotateLeft(value uint8) uint8 {
	var carryIn uint8
	if c.isFlagSet(FlagCarry) {
		carryIn = 1
	}
	result := value<<1 | carryIn
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.setFlagState(FlagCarry, value&0x80 != 0)
	return result
}

// rotateRight rotates value right through the carry flag.
func (c *CPU) rotateRight(value uint8) uint8 {
	var carryIn uint8
	if c.isFlagSet(FlagCarry) {
		carryIn = 0x80
	}
	result := value>>1 | carryIn
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.setFlagState(FlagCarry, value&1 != 0)
	return result
}

// shiftLeftArithmetic shifts value left into the carry flag, bit
// 0 becoming 0.
func (c *CPU) shiftLeftArithmetic(value uint8) uint8 {
	result := value << 1
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.setFlagState(FlagCarry, value&0x80 != 0)
	return result
}

// shiftRightArithmetic shifts value right into the carry flag,
// bit 7 keeping its value.
func (c *CPU) shiftRightArithmetic(value uint8) uint8 {
	result := value>>1 | value&0x80
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.setFlagState(FlagCarry, value&1 != 0)
	return result
}

// swap swaps the nibbles of value.
func (c *CPU) swap(value uint8) uint8 {
	result := value<<4 | value>>4
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
	return result
}

// shiftRightLogical shifts value right into the carry flag, bit 7
// becoming 0.
func (c *CPU) shiftRightLogical(value uint8) uint8 {
	result := value >> 1
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.setFlagState(FlagCarry, value&1 != 0)
	return result
}

// bitTest tests the given bit of value.
func (c *CPU) bitTest(bit uint8, value uint8) {
	c.setFlagState(FlagZero, !utils.TestBit(value, bit))
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}
