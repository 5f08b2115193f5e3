package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
)

// registers is a minimal register file for the timer to advance
// against.
type registers map[uint16]uint8

func (r registers) IO(address uint16) uint8         { return r[address] }
func (r registers) SetIO(address uint16, val uint8) { r[address] = val }

func testTimer() (*Controller, registers, *interrupts.Service) {
	r := registers{}
	irq := interrupts.NewService()
	return NewController(r, irq), r, irq
}

func TestTimer_DividerAccumulates(t *testing.T) {
	c, r, _ := testTimer()

	c.Advance(255)
	assert.Equal(t, uint8(0), r[types.DIV])

	c.Advance(1)
	assert.Equal(t, uint8(1), r[types.DIV])
}

func TestTimer_DividerChunkIndependent(t *testing.T) {
	// advancing in many small steps must equal one large step
	c1, r1, _ := testTimer()
	c2, r2, _ := testTimer()

	for i := 0; i < 1024; i++ {
		c1.Advance(4)
	}
	c2.Advance(4096)

	assert.Equal(t, r2[types.DIV], r1[types.DIV])
	assert.Equal(t, uint8(16), r1[types.DIV])
}

func TestTimer_DisabledCounterHolds(t *testing.T) {
	c, r, irq := testTimer()
	r[types.TAC] = 0x00 // disabled

	c.Advance(100000)
	assert.Equal(t, uint8(0), r[types.TIMA])
	assert.Zero(t, irq.Flag)
}

func TestTimer_CounterTicksAtSelectedFrequency(t *testing.T) {
	c, r, _ := testTimer()
	r[types.TAC] = 0x05 // enabled, 16 cycles per tick
	c.SetClockFrequency()

	c.Advance(16 * 10)
	assert.Equal(t, uint8(10), r[types.TIMA])
}

func TestTimer_OverflowReloadsAndRequests(t *testing.T) {
	c, r, irq := testTimer()
	r[types.TAC] = 0x05
	r[types.TMA] = 0xAB
	r[types.TIMA] = 0xFF
	c.SetClockFrequency()

	c.Advance(16)
	assert.Equal(t, uint8(0xAB), r[types.TIMA])
	assert.Equal(t, interrupts.TimerFlag, irq.Flag&interrupts.TimerFlag)
}

func TestTimer_LargeStepTicksMultipleTimes(t *testing.T) {
	c, r, _ := testTimer()
	r[types.TAC] = 0x05
	c.SetClockFrequency()

	// one large advance carries the remainder across ticks
	c.Advance(16*3 + 8)
	assert.Equal(t, uint8(3), r[types.TIMA])

	c.Advance(8)
	assert.Equal(t, uint8(4), r[types.TIMA])
}

func TestTimer_SetClockFrequencyReloads(t *testing.T) {
	c, r, _ := testTimer()
	r[types.TAC] = 0x04 // enabled, 1024 cycles per tick
	c.Advance(1000)     // 24 cycles short of a tick

	r[types.TAC] = 0x05 // switch to 16 cycles per tick
	c.SetClockFrequency()

	c.Advance(16)
	assert.Equal(t, uint8(1), r[types.TIMA])
}
