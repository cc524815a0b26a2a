package bus

import (
	"testing"

	"github.com/dotmatrix-emu/dotmatrix/internal/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testROM() []byte {
	rom := make([]byte, 0x8000)
	for i := range rom {
		rom[i] = uint8(i)
	}
	return rom
}

func TestROMMapping(t *testing.T) {
	b := New(testROM())

	v, err := b.Read8(0x0000)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x00), v)

	// 0x4123 falls in the switchable bank, backed by rom[0x4123]
	v, err = b.Read8(0x4123)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x23), v)
}

func TestRAMRoundTrips(t *testing.T) {
	b := New(nil)

	for _, addr := range []uint16{0xA000, 0xBFFF, 0xC000, 0xCFFF, 0xD000, 0xDFFF, 0xFF80, 0xFFFE} {
		require.NoError(t, b.Write8(addr, 0x5A), "0x%04X", addr)
		v, err := b.Read8(addr)
		require.NoError(t, err, "0x%04X", addr)
		assert.Equal(t, uint8(0x5A), v, "0x%04X", addr)
	}
}

func TestEchoRAM(t *testing.T) {
	b := New(nil)

	require.NoError(t, b.Write8(0xC123, 0x42))
	v, err := b.Read8(0xE123)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), v)

	require.NoError(t, b.Write8(0xF456, 0x24))
	v, err = b.Read8(0xD456)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x24), v)
}

func TestVideoWindows(t *testing.T) {
	b := New(nil)

	// tile data
	require.NoError(t, b.Write16(0x8000, 0xAA55))
	v, err := b.Read16(0x8000)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xAA55), v)

	// tile maps
	require.NoError(t, b.Write8(0x9800, 0x01))
	require.NoError(t, b.Write8(0x9C00, 0x02))

	// OAM and registers
	require.NoError(t, b.Write8(0xFE00, 0x90))
	require.NoError(t, b.Write8(0xFF42, 0x07))

	v8, err := b.Read8(0xFE00)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x90), v8)
	v8, err = b.Read8(0xFF42)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x07), v8)
}

func TestInvalidAddress(t *testing.T) {
	b := New(nil)

	// 0xFEA0-0xFF0F and 0xFFFF are unmapped
	for _, addr := range []uint16{0xFEA0, 0xFF00, 0xFF0F, 0xFFFF} {
		_, err := b.Read8(addr)
		assert.ErrorIs(t, err, InvalidAddressError{Addr: addr}, "0x%04X", addr)

		err = b.Write8(addr, 0)
		assert.ErrorIs(t, err, InvalidAddressError{Addr: addr}, "0x%04X", addr)
	}
}

func TestWrite16AcrossRangeEdge(t *testing.T) {
	b := New(nil)

	// 0xFFFE is the last HRAM byte; the high byte lands on unmapped
	// 0xFFFF. The low byte must stay committed.
	err := b.Write16(0xFFFE, 0xBEEF)
	assert.ErrorIs(t, err, InvalidAddressError{Addr: 0xFFFF})

	v, err := b.Read8(0xFFFE)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xEF), v)
}

func TestRead16AcrossContiguousRanges(t *testing.T) {
	b := New(nil)

	// 0xCFFF/0xD000 belong to two different work-RAM blocks
	require.NoError(t, b.Write8(0xCFFF, 0x34))
	require.NoError(t, b.Write8(0xD000, 0x12))

	v, err := b.Read16(0xCFFF)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v)
}

func TestWithDevice(t *testing.T) {
	dev := mem.NewBlock(0x10)
	b := New(nil, WithDevice(0xFF00, 0x10, dev))

	require.NoError(t, b.Write8(0xFF04, 0xAB))
	assert.Equal(t, uint8(0xAB), dev.Read8(0x04))

	v, err := b.Read8(0xFF04)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAB), v)
}

func TestOverlapPanics(t *testing.T) {
	assert.Panics(t, func() {
		New(nil, WithDevice(0xFF40, 0x10, mem.NewBlock(0x10)))
	})
}

func TestSignedRead(t *testing.T) {
	b := New(nil)

	require.NoError(t, b.Write8(0xC000, 0xFE))
	v, err := b.ReadS8(0xC000)
	require.NoError(t, err)
	assert.Equal(t, int8(-2), v)
}
