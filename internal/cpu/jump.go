package cpu

// jump reads a 16-bit address operand and jumps to it if the
// condition holds. A taken jump costs 4 extra cycles.
func (c *CPU) jump(condition bool) {
	address := c.readOperand16()
	if condition {
		c.PC = address
		c.ticks += 4
	}
}

// jumpRelative reads a signed 8-bit offset and adds it to the
// program counter if the condition holds. A taken jump costs 4
// extra cycles.
func (c *CPU) jumpRelative(condition bool) {
	offset := int8(c.readOperand())
	if condition {
		c.PC = uint16(int32(c.PC) + int32(offset))
		c.ticks += 4
	}
}

// call reads a 16-bit address operand and, if the condition
// holds, pushes the return address and jumps. A taken call costs
// 12 extra cycles.
func (c *CPU) call(condition bool) {
	address := c.readOperand16()
	if condition {
		c.push(c.PC)
		c.PC = address
		c.ticks += 12
	}
}

// retConditional pops the return address if the condition holds.
// A taken return costs 12 extra cycles.
func (c *CPU) retConditional(condition bool) {
	if condition {
		c.PC = c.pop()
		c.ticks += 12
	}
}

// rst pushes the return address and jumps to the fixed vector.
func (c *CPU) rst(vector uint16) {
	c.push(c.PC)
	c.PC = vector
}
