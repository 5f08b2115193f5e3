package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	assert.Equal(t, uint8(0b100), SetBit(0, 2))
	assert.Equal(t, uint8(0b001), ClearBit(0b101, 2))
	assert.True(t, TestBit(0b1000, 3))
	assert.False(t, TestBit(0b1000, 2))
	assert.Equal(t, uint8(1), GetBit(0b1000, 3))
	assert.Equal(t, uint8(0), GetBit(0b1000, 0))
}

func TestBytes(t *testing.T) {
	assert.Equal(t, uint16(0xABCD), BytesToUint16(0xAB, 0xCD))

	hi, lo := Uint16ToBytes(0xABCD)
	assert.Equal(t, uint8(0xAB), hi)
	assert.Equal(t, uint8(0xCD), lo)
}
