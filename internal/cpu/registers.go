package cpu

// Register represents a single 8-bit register. The CPU has 8 of
// them: A, B, C, D, E, H, L, and F. The F register is special in
// that it holds the flags.
type Register = uint8

// RegisterPair represents a pair of registers used to hold a
// 16-bit value. Both views write through to the same two bytes,
// so the pair and half-byte views are always consistent.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers represents the CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}
