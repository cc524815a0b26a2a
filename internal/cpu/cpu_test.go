package cpu

import (
	"testing"

	"github.com/dotmatrix-emu/dotmatrix/internal/bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCPU wires a fresh engine to a bus whose ROM starts with the
// given program at address 0.
func newTestCPU(program []byte) (*CPU, *bus.Bus) {
	return New(), bus.New(program)
}

// stepInstr ticks the engine through one complete instruction and
// returns the number of machine cycles it took.
func stepInstr(t *testing.T, c *CPU, b *bus.Bus) int {
	t.Helper()
	ticks := 0
	for {
		require.NoError(t, c.Tick(b))
		ticks++
		if !c.executing && c.state == stateFetchOpcode {
			return ticks
		}
	}
}

func TestTiming(t *testing.T) {
	tests := []struct {
		name    string
		program []byte
		setup   func(c *CPU, b *bus.Bus)
		ticks   int
	}{
		{"NOP", []byte{0x00}, nil, 1},
		{"LD A,d8", []byte{0x3E, 0x42}, nil, 2},
		{"LD BC,d16", []byte{0x01, 0x34, 0x12}, nil, 3},
		{"LD A,(HL)", []byte{0x7E}, func(c *CPU, b *bus.Bus) { c.HL = 0xC000 }, 2},
		{"LD (HL),d8", []byte{0x36, 0x42}, func(c *CPU, b *bus.Bus) { c.HL = 0xC000 }, 3},
		{"INC (HL)", []byte{0x34}, func(c *CPU, b *bus.Bus) { c.HL = 0xC000 }, 3},
		{"LD (a16),SP", []byte{0x08, 0x00, 0xC0}, nil, 5},
		{"LDH (a8),A", []byte{0xE0, 0x80}, nil, 3},
		{"JP a16", []byte{0xC3, 0x00, 0x01}, nil, 4},
		{"JP (HL)", []byte{0xE9}, nil, 1},
		{"JR r8", []byte{0x18, 0x10}, nil, 3},
		{"JR NZ taken", []byte{0x20, 0x10}, nil, 3},
		{"JR NZ untaken", []byte{0x20, 0x10}, func(c *CPU, b *bus.Bus) { c.setFlag(FlagZero) }, 2},
		{"CALL a16", []byte{0xCD, 0x00, 0x01}, func(c *CPU, b *bus.Bus) { c.SP = 0xD000 }, 6},
		{"CALL NZ untaken", []byte{0xC4, 0x00, 0x01}, func(c *CPU, b *bus.Bus) { c.setFlag(FlagZero) }, 3},
		{"RET", []byte{0xC9}, func(c *CPU, b *bus.Bus) {
			c.SP = 0xCFFC
			require.NoError(t, b.Write16(0xCFFC, 0x0004))
		}, 4},
		{"RET NZ taken", []byte{0xC0}, func(c *CPU, b *bus.Bus) {
			c.SP = 0xCFFC
			require.NoError(t, b.Write16(0xCFFC, 0x0004))
		}, 5},
		{"RET NZ untaken", []byte{0xC0}, func(c *CPU, b *bus.Bus) { c.setFlag(FlagZero) }, 2},
		{"PUSH BC", []byte{0xC5}, func(c *CPU, b *bus.Bus) { c.SP = 0xD000 }, 4},
		{"POP BC", []byte{0xC1}, func(c *CPU, b *bus.Bus) { c.SP = 0xCFFC }, 3},
		{"RST 08H", []byte{0xCF}, func(c *CPU, b *bus.Bus) { c.SP = 0xD000 }, 4},
		{"ADD SP,r8", []byte{0xE8, 0x01}, nil, 4},
		{"LD HL,SP+r8", []byte{0xF8, 0x01}, nil, 3},
		{"EI", []byte{0xFB}, nil, 1},
		{"CB SWAP A", []byte{0xCB, 0x37}, nil, 2},
		{"CB SET 0,(HL)", []byte{0xCB, 0xC6}, func(c *CPU, b *bus.Bus) { c.HL = 0xC000 }, 4},
		{"CB BIT 0,(HL)", []byte{0xCB, 0x46}, func(c *CPU, b *bus.Bus) { c.HL = 0xC000 }, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, b := newTestCPU(tt.program)
			if tt.setup != nil {
				tt.setup(c, b)
			}
			assert.Equal(t, tt.ticks, stepInstr(t, c, b))
		})
	}
}

func TestLoadQuadrant(t *testing.T) {
	t.Run("register to register", func(t *testing.T) {
		c, b := newTestCPU([]byte{0x41}) // LD B,C
		c.SetC(0x37)
		stepInstr(t, c, b)
		assert.Equal(t, uint8(0x37), c.B())
	})

	t.Run("memory to register", func(t *testing.T) {
		c, b := newTestCPU([]byte{0x46}) // LD B,(HL)
		c.HL = 0xC010
		require.NoError(t, b.Write8(0xC010, 0x99))
		stepInstr(t, c, b)
		assert.Equal(t, uint8(0x99), c.B())
	})

	t.Run("register to memory", func(t *testing.T) {
		c, b := newTestCPU([]byte{0x70}) // LD (HL),B
		c.HL = 0xC010
		c.SetB(0x5A)
		stepInstr(t, c, b)
		v, err := b.Read8(0xC010)
		require.NoError(t, err)
		assert.Equal(t, uint8(0x5A), v)
	})
}

func TestPostIncrementLoads(t *testing.T) {
	c, b := newTestCPU([]byte{0x22, 0x3A}) // LD (HL+),A ; LD A,(HL-)
	c.HL = 0xC000
	c.SetA(0x42)

	stepInstr(t, c, b)
	assert.Equal(t, uint16(0xC001), c.HL)
	v, err := b.Read8(0xC000)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), v)

	require.NoError(t, b.Write8(0xC001, 0x24))
	stepInstr(t, c, b)
	assert.Equal(t, uint8(0x24), c.A())
	assert.Equal(t, uint16(0xC000), c.HL)
}

func TestCallReturnRoundTrip(t *testing.T) {
	program := make([]byte, 0x20)
	copy(program, []byte{
		0x31, 0x00, 0xD0, // LD SP,0xD000
		0xCD, 0x10, 0x00, // CALL 0x0010
		0x00, // NOP, the return target
	})
	program[0x10] = 0xC9 // RET

	c, b := newTestCPU(program)

	stepInstr(t, c, b) // LD SP
	assert.Equal(t, uint16(0xD000), c.SP)

	stepInstr(t, c, b) // CALL
	assert.Equal(t, uint16(0x0010), c.PC)
	assert.Equal(t, uint16(0xCFFE), c.SP)
	ret, err := b.Read16(0xCFFE)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0006), ret)

	stepInstr(t, c, b) // RET
	assert.Equal(t, uint16(0x0006), c.PC)
	assert.Equal(t, uint16(0xD000), c.SP)
}

func TestBreakpoint(t *testing.T) {
	c, b := newTestCPU([]byte{0x00, 0x00, 0x00, 0x00})
	c.SetBreakpoint(0x0002)

	stepInstr(t, c, b)
	stepInstr(t, c, b)

	err := c.Tick(b)
	assert.Equal(t, BreakpointEvent{Addr: 0x0002}, err)
	assert.Equal(t, uint16(0x0002), c.PC, "PC untouched by the breakpoint")
	assert.True(t, c.Paused())

	// the next tick steps over the breakpoint exactly once
	require.NoError(t, c.Tick(b))
	assert.Equal(t, uint16(0x0003), c.PC)
	assert.False(t, c.Paused())

	// it re-arms for the next visit
	c.PC = 0x0002
	c.state = stateFetchOpcode
	err = c.Tick(b)
	assert.Equal(t, BreakpointEvent{Addr: 0x0002}, err)
}

func TestFaultRollsBackEngineState(t *testing.T) {
	// LD (0xFFFE),SP: the low byte lands in the last HRAM cell, the
	// high byte faults on unmapped 0xFFFF.
	c, b := newTestCPU([]byte{0x08, 0xFE, 0xFF})
	c.SP = 0xABCD

	var err error
	for i := 0; i < 4; i++ {
		err = c.Tick(b)
	}

	var addrErr bus.InvalidAddressError
	require.ErrorAs(t, err, &addrErr)
	assert.Equal(t, uint16(0xFFFF), addrErr.Addr)

	// engine state rolled back to the start of the faulting tick
	assert.Equal(t, uint16(0x0003), c.PC)
	assert.True(t, c.Paused())
	assert.Equal(t, stateWriteback, c.state)

	// the bus write issued before the fault stays committed
	v, rerr := b.Read8(0xFFFE)
	require.NoError(t, rerr)
	assert.Equal(t, uint8(0xCD), v)
}

func TestIllegalOpcode(t *testing.T) {
	c, b := newTestCPU([]byte{0xD3})

	err := c.Tick(b)
	var illegal IllegalOpcodeError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, uint8(0xD3), illegal.Opcode)
	assert.Equal(t, uint16(0x0000), illegal.Addr)

	// the fetch is rolled back together with the rest of the engine
	assert.Equal(t, uint16(0x0000), c.PC)
	assert.True(t, c.Paused())
}

func TestHalt(t *testing.T) {
	c, b := newTestCPU([]byte{0x76, 0x00})
	c.SetIME(true)

	require.NoError(t, c.Tick(b))
	assert.True(t, c.Halted())
	assert.Equal(t, uint16(0x0001), c.PC)

	// a halted engine idles without touching the bus
	for i := 0; i < 10; i++ {
		require.NoError(t, c.Tick(b))
	}
	assert.Equal(t, uint16(0x0001), c.PC)
}

func TestJumpToISR(t *testing.T) {
	c, b := newTestCPU([]byte{0x76})
	c.SetIME(true)
	c.SP = 0xD000

	require.NoError(t, c.Tick(b))
	require.True(t, c.Halted())

	require.NoError(t, c.JumpToISR(b, 0x0040))
	assert.False(t, c.Halted())
	assert.Equal(t, uint16(0x0040), c.PC)
	assert.Equal(t, uint16(0xCFFE), c.SP)

	ret, err := b.Read16(0xCFFE)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0001), ret)
}

func TestStopSuppressesNextHalt(t *testing.T) {
	c, b := newTestCPU([]byte{0x10, 0x76, 0x00})

	require.NoError(t, c.Tick(b)) // STOP, absorbed
	assert.True(t, c.StopPending())

	require.NoError(t, c.Tick(b)) // HALT, swallowed once
	assert.False(t, c.Halted())
	assert.Equal(t, uint16(0x0002), c.PC)

	require.NoError(t, c.Tick(b)) // NOP executes normally
	assert.Equal(t, uint16(0x0003), c.PC)
}

func TestInterruptEnableDisable(t *testing.T) {
	c, b := newTestCPU([]byte{0xFB, 0xF3})

	stepInstr(t, c, b)
	assert.True(t, c.IME())
	stepInstr(t, c, b)
	assert.False(t, c.IME())
}

func TestPopAFMasksLowNibble(t *testing.T) {
	c, b := newTestCPU([]byte{0xF1})
	c.SP = 0xCFFC
	require.NoError(t, b.Write16(0xCFFC, 0xFFFF))

	stepInstr(t, c, b)
	assert.Equal(t, uint16(0xFFF0), c.AF)
	assert.Equal(t, uint16(0xCFFE), c.SP)
}

func TestCBWritesThroughHL(t *testing.T) {
	c, b := newTestCPU([]byte{0xCB, 0xC6, 0xCB, 0x86}) // SET 0,(HL) ; RES 0,(HL)
	c.HL = 0xC000

	stepInstr(t, c, b)
	v, err := b.Read8(0xC000)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), v)

	stepInstr(t, c, b)
	v, err = b.Read8(0xC000)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x00), v)
}

func TestBreakpointManagement(t *testing.T) {
	c := New()

	c.SetBreakpoint(0x0100)
	c.SetBreakpoint(0x0200)
	assert.True(t, c.BreakpointAt(0x0100))
	assert.Len(t, c.Breakpoints(), 2)

	c.ClearBreakpoint(0x0100)
	assert.False(t, c.BreakpointAt(0x0100))
	assert.Len(t, c.Breakpoints(), 1)
}
