package cpu

// Flag is a bit position in the F register. The low 4 bits of F
// are unused and always read as zero.
type Flag = uint8

const (
	// FlagZero is set when the result of an operation is zero.
	FlagZero Flag = 7
	// FlagSubtract is set when the last operation was a subtraction.
	FlagSubtract Flag = 6
	// FlagHalfCarry is set when the last operation carried out of bit 3.
	FlagHalfCarry Flag = 5
	// FlagCarry is set when the last operation carried out of bit 7.
	FlagCarry Flag = 4
)

// clearFlag clears a flag in the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F &^= 1 << flag
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F |= 1 << flag
}

// setFlagState sets or clears a flag depending on state.
func (c *CPU) setFlagState(flag Flag, state bool) {
	if state {
		c.setFlag(flag)
	} else {
		c.clearFlag(flag)
	}
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&(1<<flag) != 0
}

// shouldZeroFlag sets FlagZero if the given value is 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	c.setFlagState(FlagZero, value == 0)
}
