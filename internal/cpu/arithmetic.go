package cpu

// add adds value (and the carry flag, if withCarry) to the
// accumulator.
func (c *CPU) add(value uint8, withCarry bool) {
	carry := 0
	if withCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}

	result := int(c.A) + int(value) + carry
	c.setFlagState(FlagCarry, result > 0xFF)
	c.setFlagState(FlagHalfCarry, int(c.A&0xF)+int(value&0xF)+carry > 0xF)
	c.clearFlag(FlagSubtract)

	c.A = uint8(result)
	c.shouldZeroFlag(c.A)
}

// sub subtracts value (and the carry flag, if withCarry) from the
// accumulator.
func (c *CPU) sub(value uint8, withCarry bool) {
	carry := 0
	if withCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}

	result := int(c.A) - int(value) - carry
	c.setFlagState(FlagCarry, result < 0)
	c.setFlagState(FlagHalfCarry, int(c.A&0xF)-int(value&0xF)-carry < 0)
	c.setFlag(FlagSubtract)

	c.A = uint8(result)
	c.shouldZeroFlag(c.A)
}

// compare subtracts value from the accumulator for the flags
// only; the accumulator is left untouched.
func (c *CPU) compare(value uint8) {
	result := int(c.A) - int(value)
	c.setFlagState(FlagCarry, result < 0)
	c.setFlagState(FlagHalfCarry, int(c.A&0xF)-int(value&0xF) < 0)
	c.setFlag(FlagSubtract)
	c.shouldZeroFlag(uint8(result))
}

// increment increments value by 1, leaving the carry flag alone.
func (c *CPU) increment(value uint8) uint8 {
	result := value + 1
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	c.setFlagState(FlagHalfCarry, value&0xF == 0xF)
	return result
}

// decrement decrements value by 1, leaving the carry flag alone.
func (c *CPU) decrement(value uint8) uint8 {
	result := value - 1
	c.shouldZeroFlag(result)
	c.setFlag(FlagSubtract)
	c.setFlagState(FlagHalfCarry, value&0xF == 0)
	return result
}

// addHL adds value to the HL register pair. The zero flag is
// left alone, the half carry is taken from bit 11.
func (c *CPU) addHL(value uint16) {
	hl := c.HL.Uint16()
	result := uint32(hl) + uint32(value)
	c.setFlagState(FlagCarry, result > 0xFFFF)
	c.setFlagState(FlagHalfCarry, hl&0xFFF+value&0xFFF > 0xFFF)
	c.clearFlag(FlagSubtract)
	c.HL.SetUint16(uint16(result))
}

// addSPSigned reads a signed 8-bit operand and returns SP plus
// it, setting the carry flags from the unsigned low byte
// addition.
func (c *CPU) addSPSigned() uint16 {
	operand := int8(c.readOperand())

	c.clearFlag(FlagZero)
	c.clearFlag(FlagSubtract)
	c.setFlagState(FlagHalfCarry, c.SP&0xF+uint16(operand)&0xF > 0xF)
	c.setFlagState(FlagCarry, c.SP&0xFF+uint16(operand)&0xFF > 0xFF)

	return c.SP + uint16(int16(operand))
}

// daa decimal-adjusts the accumulator after a BCD addition or
// subtraction.
func (c *CPU) daa() {
	if !c.isFlagSet(FlagSubtract) {
		if c.isFlagSet(FlagCarry) || c.A > 0x99 {
			c.A += 0x60
			c.setFlag(FlagCarry)
		}
		if c.isFlagSet(FlagHalfCarry) || c.A&0xF > 0x9 {
			c.A += 0x06
		}
	} else {
		if c.isFlagSet(FlagCarry) {
			c.A -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			c.A -= 0x06
		}
	}
	c.shouldZeroFlag(c.A)
	c.clearFlag(FlagHalfCarry)
}
