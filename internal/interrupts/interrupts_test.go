package interrupts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_RequestSetsFlag(t *testing.T) {
	s := NewService()

	s.Request(TimerFlag)
	assert.Equal(t, TimerFlag, s.Flag)

	s.Request(VBlankFlag)
	assert.Equal(t, TimerFlag|VBlankFlag, s.Flag)
}

func TestService_HasInterrupts(t *testing.T) {
	s := NewService()

	s.Request(TimerFlag)
	assert.False(t, s.HasInterrupts(), "request without enable should not count")

	s.Enable = TimerFlag
	assert.True(t, s.HasInterrupts())
}

func TestService_VectorPriority(t *testing.T) {
	s := NewService()
	s.Enable = 0xFF
	s.Request(TimerFlag)
	s.Request(VBlankFlag)
	s.Request(JoypadFlag)

	// lower bit index wins
	assert.Equal(t, uint16(0x40), s.Vector())
	assert.Equal(t, uint16(0x50), s.Vector())
	assert.Equal(t, uint16(0x60), s.Vector())
	assert.Equal(t, uint16(0), s.Vector())
}

func TestService_VectorClearsOnlyServicedFlag(t *testing.T) {
	s := NewService()
	s.Enable = 0xFF
	s.Request(LCDFlag)
	s.Request(TimerFlag)

	assert.Equal(t, uint16(0x48), s.Vector())
	assert.Equal(t, TimerFlag, s.Flag)
}

func TestService_VectorHonoursEnable(t *testing.T) {
	s := NewService()
	s.Enable = TimerFlag
	s.Request(VBlankFlag)
	s.Request(TimerFlag)

	// V-Blank is pending but masked, the timer is serviced instead
	assert.Equal(t, uint16(0x50), s.Vector())
	// the masked request is left pending
	assert.Equal(t, VBlankFlag, s.Flag)
}

func TestService_Vectors(t *testing.T) {
	for _, tc := range []struct {
		flag   uint8
		vector uint16
	}{
		{VBlankFlag, 0x40},
		{LCDFlag, 0x48},
		{TimerFlag, 0x50},
		{JoypadFlag, 0x60},
	} {
		s := NewService()
		s.Enable = tc.flag
		s.Request(tc.flag)
		assert.Equal(t, tc.vector, s.Vector())
	}
}
