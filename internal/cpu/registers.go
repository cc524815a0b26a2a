package cpu

// Registers is the register file: six 16-bit registers. The 8-bit
// registers are views into the high and low bytes of the pairs, not
// separate storage. The low nibble of F always reads as zero.
type Registers struct {
	AF uint16
	BC uint16
	DE uint16
	HL uint16
	SP uint16
	PC uint16
}

func (r *Registers) A() uint8 { return uint8(r.AF >> 8) }
func (r *Registers) F() uint8 { return uint8(r.AF & 0x00F0) }
func (r *Registers) B() uint8 { return uint8(r.BC >> 8) }
func (r *Registers) C() uint8 { return uint8(r.BC) }
func (r *Registers) D() uint8 { return uint8(r.DE >> 8) }
func (r *Registers) E() uint8 { return uint8(r.DE) }
func (r *Registers) H() uint8 { return uint8(r.HL >> 8) }
func (r *Registers) L() uint8 { return uint8(r.HL) }

func (r *Registers) SetA(v uint8) { r.AF = r.AF&0x00FF | uint16(v)<<8 }
func (r *Registers) SetF(v uint8) { r.AF = r.AF&0xFF00 | uint16(v&0xF0) }
func (r *Registers) SetB(v uint8) { r.BC = r.BC&0x00FF | uint16(v)<<8 }
func (r *Registers) SetC(v uint8) { r.BC = r.BC&0xFF00 | uint16(v) }
func (r *Registers) SetD(v uint8) { r.DE = r.DE&0x00FF | uint16(v)<<8 }
func (r *Registers) SetE(v uint8) { r.DE = r.DE&0xFF00 | uint16(v) }
func (r *Registers) SetH(v uint8) { r.HL = r.HL&0x00FF | uint16(v)<<8 }
func (r *Registers) SetL(v uint8) { r.HL = r.HL&0xFF00 | uint16(v) }

// reg8 returns the 8-bit register selected by a 3-bit opcode field.
// Index 6 selects (HL) and never reaches here.
func (r *Registers) reg8(index uint8) uint8 {
	switch index {
	case 0:
		return r.B()
	case 1:
		return r.C()
	case 2:
		return r.D()
	case 3:
		return r.E()
	case 4:
		return r.H()
	case 5:
		return r.L()
	case 7:
		return r.A()
	}
	panic("invalid register index")
}

// setReg8 writes the 8-bit register selected by a 3-bit opcode field.
func (r *Registers) setReg8(index uint8, v uint8) {
	switch index {
	case 0:
		r.SetB(v)
	case 1:
		r.SetC(v)
	case 2:
		r.SetD(v)
	case 3:
		r.SetE(v)
	case 4:
		r.SetH(v)
	case 5:
		r.SetL(v)
	case 7:
		r.SetA(v)
	default:
		panic("invalid register index")
	}
}
