package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func disasm(code ...uint8) (string, uint8) {
	return Disassemble(func(addr uint16) uint8 {
		return code[addr]
	}, 0)
}

func TestDisassemble(t *testing.T) {
	tests := []struct {
		code []uint8
		want string
		size uint8
	}{
		{[]uint8{0x00}, "NOP", 1},
		{[]uint8{0x3E, 0x42}, "LD A,$42", 2},
		{[]uint8{0xC3, 0x50, 0x01}, "JP $0150", 3},
		{[]uint8{0x20, 0xFE}, "JR NZ,$FE", 2},
		{[]uint8{0xE0, 0x40}, "LDH ($40),A", 2},
		{[]uint8{0x76}, "HALT", 1},
		{[]uint8{0xCB, 0x37}, "SWAP A", 2},
		{[]uint8{0xCB, 0x7E}, "BIT 7,(HL)", 2},
		{[]uint8{0xCB, 0xC6}, "SET 0,(HL)", 2},
		{[]uint8{0xD3}, "ILLEGAL", 1},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			text, size := disasm(tt.code...)
			assert.Equal(t, tt.want, text)
			assert.Equal(t, tt.size, size)
		})
	}
}
