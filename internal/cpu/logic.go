package cpu

// and ANDs value into the accumulator.
func (c *CPU) and(value uint8) {
	c.A &= value
	c.shouldZeroFlag(c.A)
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
}

// xor XORs value into the accumulator.
func (c *CPU) xor(value uint8) {
	c.A ^= value
	c.shouldZeroFlag(c.A)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
}

// or ORs value into the accumulator.
func (c *CPU) or(value uint8) {
	c.A |= value
	c.shouldZeroFlag(c.A)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
}

// complement flips every bit of the accumulator.
func (c *CPU) complement() {
	c.A = ^c.A
	c.setFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

// setCarryFlag sets the carry flag.
func (c *CPU) setCarryFlag() {
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.setFlag(FlagCarry)
}

// complementCarryFlag flips the carry flag.
func (c *CPU) complementCarryFlag() {
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.setFlagState(FlagCarry, !c.isFlagSet(FlagCarry))
}
