package cpu

import (
	"fmt"
	"strings"
)

var cbRegNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
var cbOpNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

// cbMnemonic renders the mnemonic of a CB-prefixed opcode.
func cbMnemonic(op uint8) string {
	reg := cbRegNames[op&0x7]
	switch op >> 6 {
	case 0:
		return cbOpNames[(op>>3)&0x7] + " " + reg
	case 1:
		return fmt.Sprintf("BIT %d,%s", (op>>3)&0x7, reg)
	case 2:
		return fmt.Sprintf("RES %d,%s", (op>>3)&0x7, reg)
	default:
		return fmt.Sprintf("SET %d,%s", (op>>3)&0x7, reg)
	}
}

// Disassemble renders the instruction at addr, reading its bytes
// through the given accessor, and returns the text together with the
// instruction length. Intended for debugger front ends; it never
// touches engine state.
func Disassemble(read func(uint16) uint8, addr uint16) (string, uint8) {
	op := read(addr)
	info := Opcodes[op]

	if op == 0xCB {
		return cbMnemonic(read(addr + 1)), 2
	}

	text := info.Mnemonic
	switch info.Size {
	case 2:
		v := read(addr + 1)
		for _, ph := range []string{"d8", "a8", "r8"} {
			text = strings.Replace(text, ph, fmt.Sprintf("$%02X", v), 1)
		}
	case 3:
		v := uint16(read(addr+1)) | uint16(read(addr+2))<<8
		for _, ph := range []string{"d16", "a16"} {
			text = strings.Replace(text, ph, fmt.Sprintf("$%04X", v), 1)
		}
	}
	return text, info.Size
}
