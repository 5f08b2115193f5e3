package cpu

// Instruction represents a single instruction of the CPU: its
// mnemonic, its base cycle cost and the handler that executes it.
// Branching handlers add any extra cycles themselves.
type Instruction struct {
	name   string
	cycles uint8
	fn     func(*CPU)
}

// InstructionSet holds the 256 base instructions, indexed by
// opcode byte. Entries left empty resolve to a 4 cycle no-op at
// execution time.
var InstructionSet [256]Instruction

// InstructionSetCB holds the 256 CB-prefixed instructions.
var InstructionSetCB [256]Instruction

// DefineInstruction defines the instruction for the given opcode
// in the InstructionSet.
func DefineInstruction(opcode uint8, name string, cycles uint8, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{
		name:   name,
		cycles: cycles,
		fn:     fn,
	}
}

// DefineInstructionCB defines the instruction for the given
// opcode in the InstructionSetCB.
func DefineInstructionCB(opcode uint8, name string, cycles uint8, fn func(*CPU)) {
	InstructionSetCB[opcode] = Instruction{
		name:   name,
		cycles: cycles,
		fn:     fn,
	}
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Cycles returns the base cycle cost of the instruction.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}
