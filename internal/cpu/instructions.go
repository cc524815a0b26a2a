package cpu

// Location describes where an instruction operand lives: in a register,
// in the immediate bytes following the opcode, or behind one of the
// memory addressing modes.
type Location uint8

const (
	LocNone Location = iota
	LocRegister
	LocImmediate
	LocMemA16 // (a16)
	LocMemIO  // ($FF00 + a8)
	LocMemC   // ($FF00 + C)
	LocMemBC  // (BC)
	LocMemDE  // (DE)
	LocMemHL  // (HL)
	LocMemSP  // (SP)
)

// InMemory reports whether the operand requires a bus access to
// resolve.
func (l Location) InMemory() bool {
	return l >= LocMemA16
}

// OpcodeInfo is the static decode metadata of one opcode: its mnemonic,
// operand locations, encoded length and clock-cycle counts for the
// taken and untaken paths. The table is immutable, process-wide
// configuration shared read-only by every engine instance.
type OpcodeInfo struct {
	Mnemonic string
	Dst      Location
	Src      Location
	Size     uint8
	Taken    uint8
	Untaken  uint8
}

// Opcodes is the base (non-prefixed) opcode table.
var Opcodes = [256]OpcodeInfo{
	// 0x00
	{"NOP", LocNone, LocNone, 1, 4, 4},
	{"LD BC,d16", LocRegister, LocImmediate, 3, 12, 12},
	{"LD (BC),A", LocMemBC, LocRegister, 1, 8, 8},
	{"INC BC", LocRegister, LocRegister, 1, 8, 8},
	{"INC B", LocRegister, LocRegister, 1, 4, 4},
	{"DEC B", LocRegister, LocRegister, 1, 4, 4},
	{"LD B,d8", LocRegister, LocImmediate, 2, 8, 8},
	{"RLCA", LocRegister, LocRegister, 1, 4, 4},
	{"LD (a16),SP", LocMemA16, LocRegister, 3, 20, 20},
	{"ADD HL,BC", LocRegister, LocRegister, 1, 8, 8},
	{"LD A,(BC)", LocRegister, LocMemBC, 1, 8, 8},
	{"DEC BC", LocRegister, LocRegister, 1, 8, 8},
	{"INC C", LocRegister, LocRegister, 1, 4, 4},
	{"DEC C", LocRegister, LocRegister, 1, 4, 4},
	{"LD C,d8", LocRegister, LocImmediate, 2, 8, 8},
	{"RRCA", LocRegister, LocRegister, 1, 4, 4},
	// 0x10
	{"STOP", LocNone, LocNone, 1, 4, 4},
	{"LD DE,d16", LocRegister, LocImmediate, 3, 12, 12},
	{"LD (DE),A", LocMemDE, LocRegister, 1, 8, 8},
	{"INC DE", LocRegister, LocRegister, 1, 8, 8},
	{"INC D", LocRegister, LocRegister, 1, 4, 4},
	{"DEC D", LocRegister, LocRegister, 1, 4, 4},
	{"LD D,d8", LocRegister, LocImmediate, 2, 8, 8},
	{"RLA", LocRegister, LocRegister, 1, 4, 4},
	{"JR r8", LocNone, LocImmediate, 2, 12, 12},
	{"ADD HL,DE", LocRegister, LocRegister, 1, 8, 8},
	{"LD A,(DE)", LocRegister, LocMemDE, 1, 8, 8},
	{"DEC DE", LocRegister, LocRegister, 1, 8, 8},
	{"INC E", LocRegister, LocRegister, 1, 4, 4},
	{"DEC E", LocRegister, LocRegister, 1, 4, 4},
	{"LD E,d8", LocRegister, LocImmediate, 2, 8, 8},
	{"RRA", LocRegister, LocRegister, 1, 4, 4},
	// 0x20
	{"JR NZ,r8", LocNone, LocImmediate, 2, 12, 8},
	{"LD HL,d16", LocRegister, LocImmediate, 3, 12, 12},
	{"LD (HL+),A", LocMemHL, LocRegister, 1, 8, 8},
	{"INC HL", LocRegister, LocRegister, 1, 8, 8},
	{"INC H", LocRegister, LocRegister, 1, 4, 4},
	{"DEC H", LocRegister, LocRegister, 1, 4, 4},
	{"LD H,d8", LocRegister, LocImmediate, 2, 8, 8},
	{"DAA", LocRegister, LocRegister, 1, 4, 4},
	{"JR Z,r8", LocNone, LocImmediate, 2, 12, 8},
	{"ADD HL,HL", LocRegister, LocRegister, 1, 8, 8},
	{"LD A,(HL+)", LocRegister, LocMemHL, 1, 8, 8},
	{"DEC HL", LocRegister, LocRegister, 1, 8, 8},
	{"INC L", LocRegister, LocRegister, 1, 4, 4},
	{"DEC L", LocRegister, LocRegister, 1, 4, 4},
	{"LD L,d8", LocRegister, LocImmediate, 2, 8, 8},
	{"CPL", LocRegister, LocRegister, 1, 4, 4},
	// 0x30
	{"JR NC,r8", LocNone, LocImmediate, 2, 12, 8},
	{"LD SP,d16", LocRegister, LocImmediate, 3, 12, 12},
	{"LD (HL-),A", LocMemHL, LocRegister, 1, 8, 8},
	{"INC SP", LocRegister, LocRegister, 1, 8, 8},
	{"INC (HL)", LocMemHL, LocMemHL, 1, 12, 12},
	{"DEC (HL)", LocMemHL, LocMemHL, 1, 12, 12},
	{"LD (HL),d8", LocMemHL, LocImmediate, 2, 12, 12},
	{"SCF", LocNone, LocNone, 1, 4, 4},
	{"JR C,r8", LocNone, LocImmediate, 2, 12, 8},
	{"ADD HL,SP", LocRegister, LocRegister, 1, 8, 8},
	{"LD A,(HL-)", LocRegister, LocMemHL, 1, 8, 8},
	{"DEC SP", LocRegister, LocRegister, 1, 8, 8},
	{"INC A", LocRegister, LocRegister, 1, 4, 4},
	{"DEC A", LocRegister, LocRegister, 1, 4, 4},
	{"LD A,d8", LocRegister, LocImmediate, 2, 8, 8},
	{"CCF", LocNone, LocNone, 1, 4, 4},
	// 0x40
	{"LD B,B", LocRegister, LocRegister, 1, 4, 4},
	{"LD B,C", LocRegister, LocRegister, 1, 4, 4},
	{"LD B,D", LocRegister, LocRegister, 1, 4, 4},
	{"LD B,E", LocRegister, LocRegister, 1, 4, 4},
	{"LD B,H", LocRegister, LocRegister, 1, 4, 4},
	{"LD B,L", LocRegister, LocRegister, 1, 4, 4},
	{"LD B,(HL)", LocRegister, LocMemHL, 1, 8, 8},
	{"LD B,A", LocRegister, LocRegister, 1, 4, 4},
	{"LD C,B", LocRegister, LocRegister, 1, 4, 4},
	{"LD C,C", LocRegister, LocRegister, 1, 4, 4},
	{"LD C,D", LocRegister, LocRegister, 1, 4, 4},
	{"LD C,E", LocRegister, LocRegister, 1, 4, 4},
	{"LD C,H", LocRegister, LocRegister, 1, 4, 4},
	{"LD C,L", LocRegister, LocRegister, 1, 4, 4},
	{"LD C,(HL)", LocRegister, LocMemHL, 1, 8, 8},
	{"LD C,A", LocRegister, LocRegister, 1, 4, 4},
	// 0x50
	{"LD D,B", LocRegister, LocRegister, 1, 4, 4},
	{"LD D,C", LocRegister, LocRegister, 1, 4, 4},
	{"LD D,D", LocRegister, LocRegister, 1, 4, 4},
	{"LD D,E", LocRegister, LocRegister, 1, 4, 4},
	{"LD D,H", LocRegister, LocRegister, 1, 4, 4},
	{"LD D,L", LocRegister, LocRegister, 1, 4, 4},
	{"LD D,(HL)", LocRegister, LocMemHL, 1, 8, 8},
	{"LD D,A", LocRegister, LocRegister, 1, 4, 4},
	{"LD E,B", LocRegister, LocRegister, 1, 4, 4},
	{"LD E,C", LocRegister, LocRegister, 1, 4, 4},
	{"LD E,D", LocRegister, LocRegister, 1, 4, 4},
	{"LD E,E", LocRegister, LocRegister, 1, 4, 4},
	{"LD E,H", LocRegister, LocRegister, 1, 4, 4},
	{"LD E,L", LocRegister, LocRegister, 1, 4, 4},
	{"LD E,(HL)", LocRegister, LocMemHL, 1, 8, 8},
	{"LD E,A", LocRegister, LocRegister, 1, 4, 4},
	// 0x60
	{"LD H,B", LocRegister, LocRegister, 1, 4, 4},
	{"LD H,C", LocRegister, LocRegister, 1, 4, 4},
	{"LD H,D", LocRegister, LocRegister, 1, 4, 4},
	{"LD H,E", LocRegister, LocRegister, 1, 4, 4},
	{"LD H,H", LocRegister, LocRegister, 1, 4, 4},
	{"LD H,L", LocRegister, LocRegister, 1, 4, 4},
	{"LD H,(HL)", LocRegister, LocMemHL, 1, 8, 8},
	{"LD H,A", LocRegister, LocRegister, 1, 4, 4},
	{"LD L,B", LocRegister, LocRegister, 1, 4, 4},
	{"LD L,C", LocRegister, LocRegister, 1, 4, 4},
	{"LD L,D", LocRegister, LocRegister, 1, 4, 4},
	{"LD L,E", LocRegister, LocRegister, 1, 4, 4},
	{"LD L,H", LocRegister, LocRegister, 1, 4, 4},
	{"LD L,L", LocRegister, LocRegister, 1, 4, 4},
	{"LD L,(HL)", LocRegister, LocMemHL, 1, 8, 8},
	{"LD L,A", LocRegister, LocRegister, 1, 4, 4},
	// 0x70
	{"LD (HL),B", LocMemHL, LocRegister, 1, 8, 8},
	{"LD (HL),C", LocMemHL, LocRegister, 1, 8, 8},
	{"LD (HL),D", LocMemHL, LocRegister, 1, 8, 8},
	{"LD (HL),E", LocMemHL, LocRegister, 1, 8, 8},
	{"LD (HL),H", LocMemHL, LocRegister, 1, 8, 8},
	{"LD (HL),L", LocMemHL, LocRegister, 1, 8, 8},
	{"HALT", LocNone, LocNone, 1, 4, 4},
	{"LD (HL),A", LocMemHL, LocRegister, 1, 8, 8},
	{"LD A,B", LocRegister, LocRegister, 1, 4, 4},
	{"LD A,C", LocRegister, LocRegister, 1, 4, 4},
	{"LD A,D", LocRegister, LocRegister, 1, 4, 4},
	{"LD A,E", LocRegister, LocRegister, 1, 4, 4},
	{"LD A,H", LocRegister, LocRegister, 1, 4, 4},
	{"LD A,L", LocRegister, LocRegister, 1, 4, 4},
	{"LD A,(HL)", LocRegister, LocMemHL, 1, 8, 8},
	{"LD A,A", LocRegister, LocRegister, 1, 4, 4},
	// 0x80
	{"ADD A,B", LocRegister, LocRegister, 1, 4, 4},
	{"ADD A,C", LocRegister, LocRegister, 1, 4, 4},
	{"ADD A,D", LocRegister, LocRegister, 1, 4, 4},
	{"ADD A,E", LocRegister, LocRegister, 1, 4, 4},
	{"ADD A,H", LocRegister, LocRegister, 1, 4, 4},
	{"ADD A,L", LocRegister, LocRegister, 1, 4, 4},
	{"ADD A,(HL)", LocRegister, LocMemHL, 1, 8, 8},
	{"ADD A,A", LocRegister, LocRegister, 1, 4, 4},
	{"ADC A,B", LocRegister, LocRegister, 1, 4, 4},
	{"ADC A,C", LocRegister, LocRegister, 1, 4, 4},
	{"ADC A,D", LocRegister, LocRegister, 1, 4, 4},
	{"ADC A,E", LocRegister, LocRegister, 1, 4, 4},
	{"ADC A,H", LocRegister, LocRegister, 1, 4, 4},
	{"ADC A,L", LocRegister, LocRegister, 1, 4, 4},
	{"ADC A,(HL)", LocRegister, LocMemHL, 1, 8, 8},
	{"ADC A,A", LocRegister, LocRegister, 1, 4, 4},
	// 0x90
	{"SUB B", LocRegister, LocRegister, 1, 4, 4},
	{"SUB C", LocRegister, LocRegister, 1, 4, 4},
	{"SUB D", LocRegister, LocRegister, 1, 4, 4},
	{"SUB E", LocRegister, LocRegister, 1, 4, 4},
	{"SUB H", LocRegister, LocRegister, 1, 4, 4},
	{"SUB L", LocRegister, LocRegister, 1, 4, 4},
	{"SUB (HL)", LocRegister, LocMemHL, 1, 8, 8},
	{"SUB A", LocRegister, LocRegister, 1, 4, 4},
	{"SBC A,B", LocRegister, LocRegister, 1, 4, 4},
	{"SBC A,C", LocRegister, LocRegister, 1, 4, 4},
	{"SBC A,D", LocRegister, LocRegister, 1, 4, 4},
	{"SBC A,E", LocRegister, LocRegister, 1, 4, 4},
	{"SBC A,H", LocRegister, LocRegister, 1, 4, 4},
	{"SBC A,L", LocRegister, LocRegister, 1, 4, 4},
	{"SBC A,(HL)", LocRegister, LocMemHL, 1, 8, 8},
	{"SBC A,A", LocRegister, LocRegister, 1, 4, 4},
	// 0xA0
	{"AND B", LocRegister, LocRegister, 1, 4, 4},
	{"AND C", LocRegister, LocRegister, 1, 4, 4},
	{"AND D", LocRegister, LocRegister, 1, 4, 4},
	{"AND E", LocRegister, LocRegister, 1, 4, 4},
	{"AND H", LocRegister, LocRegister, 1, 4, 4},
	{"AND L", LocRegister, LocRegister, 1, 4, 4},
	{"AND (HL)", LocRegister, LocMemHL, 1, 8, 8},
	{"AND A", LocRegister, LocRegister, 1, 4, 4},
	{"XOR B", LocRegister, LocRegister, 1, 4, 4},
	{"XOR C", LocRegister, LocRegister, 1, 4, 4},
	{"XOR D", LocRegister, LocRegister, 1, 4, 4},
	{"XOR E", LocRegister, LocRegister, 1, 4, 4},
	{"XOR H", LocRegister, LocRegister, 1, 4, 4},
	{"XOR L", LocRegister, LocRegister, 1, 4, 4},
	{"XOR (HL)", LocRegister, LocMemHL, 1, 8, 8},
	{"XOR A", LocRegister, LocRegister, 1, 4, 4},
	// 0xB0
	{"OR B", LocRegister, LocRegister, 1, 4, 4},
	{"OR C", LocRegister, LocRegister, 1, 4, 4},
	{"OR D", LocRegister, LocRegister, 1, 4, 4},
	{"OR E", LocRegister, LocRegister, 1, 4, 4},
	{"OR H", LocRegister, LocRegister, 1, 4, 4},
	{"OR L", LocRegister, LocRegister, 1, 4, 4},
	{"OR (HL)", LocRegister, LocMemHL, 1, 8, 8},
	{"OR A", LocRegister, LocRegister, 1, 4, 4},
	{"CP B", LocRegister, LocRegister, 1, 4, 4},
	{"CP C", LocRegister, LocRegister, 1, 4, 4},
	{"CP D", LocRegister, LocRegister, 1, 4, 4},
	{"CP E", LocRegister, LocRegister, 1, 4, 4},
	{"CP H", LocRegister, LocRegister, 1, 4, 4},
	{"CP L", LocRegister, LocRegister, 1, 4, 4},
	{"CP (HL)", LocRegister, LocMemHL, 1, 8, 8},
	{"CP A", LocRegister, LocRegister, 1, 4, 4},
	// 0xC0
	{"RET NZ", LocNone, LocRegister, 1, 20, 8},
	{"POP BC", LocRegister, LocMemSP, 1, 12, 12},
	{"JP NZ,a16", LocNone, LocImmediate, 3, 16, 12},
	{"JP a16", LocNone, LocImmediate, 3, 16, 16},
	{"CALL NZ,a16", LocNone, LocImmediate, 3, 24, 12},
	{"PUSH BC", LocMemSP, LocRegister, 1, 16, 16},
	{"ADD A,d8", LocRegister, LocImmediate, 2, 8, 8},
	{"RST 00H", LocMemSP, LocRegister, 1, 16, 16},
	{"RET Z", LocNone, LocRegister, 1, 20, 8},
	{"RET", LocNone, LocRegister, 1, 16, 16},
	{"JP Z,a16", LocNone, LocImmediate, 3, 16, 12},
	{"PREFIX CB", LocRegister, LocRegister, 2, 8, 8},
	{"CALL Z,a16", LocNone, LocImmediate, 3, 24, 12},
	{"CALL a16", LocNone, LocImmediate, 3, 24, 24},
	{"ADC A,d8", LocRegister, LocImmediate, 2, 8, 8},
	{"RST 08H", LocMemSP, LocRegister, 1, 16, 16},
	// 0xD0
	{"RET NC", LocNone, LocRegister, 1, 20, 8},
	{"POP DE", LocRegister, LocMemSP, 1, 12, 12},
	{"JP NC,a16", LocNone, LocImmediate, 3, 16, 12},
	{"ILLEGAL", LocNone, LocNone, 1, 4, 4},
	{"CALL NC,a16", LocNone, LocImmediate, 3, 24, 12},
	{"PUSH DE", LocMemSP, LocRegister, 1, 16, 16},
	{"SUB d8", LocRegister, LocImmediate, 2, 8, 8},
	{"RST 10H", LocMemSP, LocRegister, 1, 16, 16},
	{"RET C", LocNone, LocRegister, 1, 20, 8},
	{"RETI", LocNone, LocRegister, 1, 16, 16},
	{"JP C,a16", LocNone, LocImmediate, 3, 16, 12},
	{"ILLEGAL", LocNone, LocNone, 1, 4, 4},
	{"CALL C,a16", LocNone, LocImmediate, 3, 24, 12},
	{"ILLEGAL", LocNone, LocNone, 1, 4, 4},
	{"SBC A,d8", LocRegister, LocImmediate, 2, 8, 8},
	{"RST 18H", LocMemSP, LocRegister, 1, 16, 16},
	// 0xE0
	{"LDH (a8),A", LocMemIO, LocRegister, 2, 12, 12},
	{"POP HL", LocRegister, LocMemSP, 1, 12, 12},
	{"LD (C),A", LocMemC, LocRegister, 1, 8, 8},
	{"ILLEGAL", LocNone, LocNone, 1, 4, 4},
	{"ILLEGAL", LocNone, LocNone, 1, 4, 4},
	{"PUSH HL", LocMemSP, LocRegister, 1, 16, 16},
	{"AND d8", LocRegister, LocImmediate, 2, 8, 8},
	{"RST 20H", LocMemSP, LocRegister, 1, 16, 16},
	{"ADD SP,r8", LocRegister, LocImmediate, 2, 16, 16},
	{"JP (HL)", LocNone, LocRegister, 1, 4, 4},
	{"LD (a16),A", LocMemA16, LocRegister, 3, 16, 16},
	{"ILLEGAL", LocNone, LocNone, 1, 4, 4},
	{"ILLEGAL", LocNone, LocNone, 1, 4, 4},
	{"ILLEGAL", LocNone, LocNone, 1, 4, 4},
	{"XOR d8", LocRegister, LocImmediate, 2, 8, 8},
	{"RST 28H", LocMemSP, LocRegister, 1, 16, 16},
	// 0xF0
	{"LDH A,(a8)", LocRegister, LocMemIO, 2, 12, 12},
	{"POP AF", LocRegister, LocMemSP, 1, 12, 12},
	{"LD A,(C)", LocRegister, LocMemC, 1, 8, 8},
	{"DI", LocNone, LocNone, 1, 4, 4},
	{"ILLEGAL", LocNone, LocNone, 1, 4, 4},
	{"PUSH AF", LocMemSP, LocRegister, 1, 16, 16},
	{"OR d8", LocRegister, LocImmediate, 2, 8, 8},
	{"RST 30H", LocMemSP, LocRegister, 1, 16, 16},
	{"LD HL,SP+r8", LocRegister, LocImmediate, 2, 12, 12},
	{"LD SP,HL", LocRegister, LocRegister, 1, 8, 8},
	{"LD A,(a16)", LocRegister, LocMemA16, 3, 16, 16},
	{"EI", LocNone, LocNone, 1, 4, 4},
	{"ILLEGAL", LocNone, LocNone, 1, 4, 4},
	{"ILLEGAL", LocNone, LocNone, 1, 4, 4},
	{"CP d8", LocRegister, LocImmediate, 2, 8, 8},
	{"RST 38H", LocMemSP, LocRegister, 1, 16, 16},
}
