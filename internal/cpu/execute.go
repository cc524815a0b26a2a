package cpu

// queueWrite8 defers an 8-bit memory write to the writeback phase.
func (c *CPU) queueWrite8(addr uint16, v uint8) {
	c.writeOp = writebackOp{kind: write8, addr: addr, value: uint16(v)}
}

// queueWrite16 defers a 16-bit memory write to the writeback phase.
func (c *CPU) queueWrite16(addr, v uint16) {
	c.writeOp = writebackOp{kind: write16, addr: addr, value: v}
}

// queuePush defers a stack push to the writeback phase.
func (c *CPU) queuePush(v uint16) {
	c.writeOp = writebackOp{kind: writePush, value: v}
}

// queueReturn defers popping the return address into PC to the
// writeback phase.
func (c *CPU) queueReturn() {
	c.writeOp = writebackOp{kind: writeReturn}
}

// jr adds the signed immediate offset to PC when cond holds.
func (c *CPU) jr(cond bool) {
	if cond {
		c.branchTaken = true
		c.PC += uint16(int16(int8(uint8(c.operand))))
	}
}

// jp jumps to the immediate address when cond holds.
func (c *CPU) jp(cond bool) {
	if cond {
		c.branchTaken = true
		c.PC = c.operand
	}
}

// call pushes the return address and jumps when cond holds.
func (c *CPU) call(cond bool) {
	if cond {
		c.branchTaken = true
		c.queuePush(c.PC)
		c.PC = c.operand
	}
}

// ret queues the pop into PC when cond holds.
func (c *CPU) ret(cond bool) {
	if cond {
		c.branchTaken = true
		c.queueReturn()
	}
}

// rst pushes the return address and jumps to a fixed vector.
func (c *CPU) rst(vector uint16) {
	c.queuePush(c.PC)
	c.PC = vector
}

// aluOperand returns the 8-bit value an ALU or CB operation works on:
// the fetched memory operand for (HL) addressing, the immediate for d8,
// or the register selected by the low bits of the opcode.
func (c *CPU) aluOperand() uint8 {
	if c.info.Src == LocMemHL || c.info.Src == LocImmediate {
		return uint8(c.operand)
	}
	return c.reg8(c.opcode & 0x7)
}

// executeOp runs the semantic effect of the current base-table opcode.
func (c *CPU) executeOp() error {
	op := c.opcode

	switch {
	case op >= 0x40 && op <= 0x7F && op != 0x76:
		// the LD r,r' quadrant, including the (HL) forms
		v := c.aluOperand()
		if dst := (op >> 3) & 0x7; dst == 6 {
			c.queueWrite8(c.HL, v)
		} else {
			c.setReg8(dst, v)
		}
		return nil
	case op >= 0x80 && op <= 0xBF:
		c.aluOp((op>>3)&0x7, c.aluOperand())
		return nil
	}

	switch op {
	case 0x00: // NOP
	case 0x01:
		c.BC = c.operand
	case 0x02:
		c.queueWrite8(c.BC, c.A())
	case 0x03:
		c.BC++
	case 0x04:
		c.SetB(c.inc8(c.B()))
	case 0x05:
		c.SetB(c.dec8(c.B()))
	case 0x06:
		c.SetB(uint8(c.operand))
	case 0x07: // RLCA
		c.SetA(c.rlc(c.A()))
		c.clearFlag(FlagZero)
	case 0x08:
		c.queueWrite16(c.operand, c.SP)
	case 0x09:
		c.addHL(c.BC)
	case 0x0A:
		c.SetA(uint8(c.operand))
	case 0x0B:
		c.BC--
	case 0x0C:
		c.SetC(c.inc8(c.C()))
	case 0x0D:
		c.SetC(c.dec8(c.C()))
	case 0x0E:
		c.SetC(uint8(c.operand))
	case 0x0F: // RRCA
		c.SetA(c.rrc(c.A()))
		c.clearFlag(FlagZero)
	case 0x10: // STOP
		c.stopPending = true
		return errSpeedSwitch
	case 0x11:
		c.DE = c.operand
	case 0x12:
		c.queueWrite8(c.DE, c.A())
	case 0x13:
		c.DE++
	case 0x14:
		c.SetD(c.inc8(c.D()))
	case 0x15:
		c.SetD(c.dec8(c.D()))
	case 0x16:
		c.SetD(uint8(c.operand))
	case 0x17: // RLA
		c.SetA(c.rl(c.A()))
		c.clearFlag(FlagZero)
	case 0x18:
		c.jr(true)
	case 0x19:
		c.addHL(c.DE)
	case 0x1A:
		c.SetA(uint8(c.operand))
	case 0x1B:
		c.DE--
	case 0x1C:
		c.SetE(c.inc8(c.E()))
	case 0x1D:
		c.SetE(c.dec8(c.E()))
	case 0x1E:
		c.SetE(uint8(c.operand))
	case 0x1F: // RRA
		c.SetA(c.rr(c.A()))
		c.clearFlag(FlagZero)
	case 0x20:
		c.jr(!c.isFlagSet(FlagZero))
	case 0x21:
		c.HL = c.operand
	case 0x22: // LD (HL+),A
		c.queueWrite8(c.HL, c.A())
		c.HL++
	case 0x23:
		c.HL++
	case 0x24:
		c.SetH(c.inc8(c.H()))
	case 0x25:
		c.SetH(c.dec8(c.H()))
	case 0x26:
		c.SetH(uint8(c.operand))
	case 0x27:
		c.daa()
	case 0x28:
		c.jr(c.isFlagSet(FlagZero))
	case 0x29:
		c.addHL(c.HL)
	case 0x2A: // LD A,(HL+)
		c.SetA(uint8(c.operand))
		c.HL++
	case 0x2B:
		c.HL--
	case 0x2C:
		c.SetL(c.inc8(c.L()))
	case 0x2D:
		c.SetL(c.dec8(c.L()))
	case 0x2E:
		c.SetL(uint8(c.operand))
	case 0x2F: // CPL
		c.SetA(^c.A())
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	case 0x30:
		c.jr(!c.isFlagSet(FlagCarry))
	case 0x31:
		c.SP = c.operand
	case 0x32: // LD (HL-),A
		c.queueWrite8(c.HL, c.A())
		c.HL--
	case 0x33:
		c.SP++
	case 0x34:
		c.queueWrite8(c.HL, c.inc8(uint8(c.operand)))
	case 0x35:
		c.queueWrite8(c.HL, c.dec8(uint8(c.operand)))
	case 0x36:
		c.queueWrite8(c.HL, uint8(c.operand))
	case 0x37: // SCF
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	case 0x38:
		c.jr(c.isFlagSet(FlagCarry))
	case 0x39:
		c.addHL(c.SP)
	case 0x3A: // LD A,(HL-)
		c.SetA(uint8(c.operand))
		c.HL--
	case 0x3B:
		c.SP--
	case 0x3C:
		c.SetA(c.inc8(c.A()))
	case 0x3D:
		c.SetA(c.dec8(c.A()))
	case 0x3E:
		c.SetA(uint8(c.operand))
	case 0x3F: // CCF
		c.setFlagTo(FlagCarry, !c.isFlagSet(FlagCarry))
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	case 0x76: // HALT
		c.shouldHalt = true
		if !c.ime {
			c.haltBug = true
		}
	case 0xC0:
		c.ret(!c.isFlagSet(FlagZero))
	case 0xC1:
		c.BC = c.operand
	case 0xC2:
		c.jp(!c.isFlagSet(FlagZero))
	case 0xC3:
		c.jp(true)
	case 0xC4:
		c.call(!c.isFlagSet(FlagZero))
	case 0xC5:
		c.queuePush(c.BC)
	case 0xC6:
		c.add(uint8(c.operand), false)
	case 0xC7:
		c.rst(0x00)
	case 0xC8:
		c.ret(c.isFlagSet(FlagZero))
	case 0xC9:
		c.queueReturn()
	case 0xCA:
		c.jp(c.isFlagSet(FlagZero))
	case 0xCC:
		c.call(c.isFlagSet(FlagZero))
	case 0xCD:
		c.call(true)
	case 0xCE:
		c.add(uint8(c.operand), true)
	case 0xCF:
		c.rst(0x08)
	case 0xD0:
		c.ret(!c.isFlagSet(FlagCarry))
	case 0xD1:
		c.DE = c.operand
	case 0xD2:
		c.jp(!c.isFlagSet(FlagCarry))
	case 0xD4:
		c.call(!c.isFlagSet(FlagCarry))
	case 0xD5:
		c.queuePush(c.DE)
	case 0xD6:
		c.sub(uint8(c.operand), false)
	case 0xD7:
		c.rst(0x10)
	case 0xD8:
		c.ret(c.isFlagSet(FlagCarry))
	case 0xD9: // RETI
		c.queueReturn()
		c.ime = true
	case 0xDA:
		c.jp(c.isFlagSet(FlagCarry))
	case 0xDC:
		c.call(c.isFlagSet(FlagCarry))
	case 0xDE:
		c.sub(uint8(c.operand), true)
	case 0xDF:
		c.rst(0x18)
	case 0xE0:
		c.queueWrite8(0xFF00+c.operand, c.A())
	case 0xE1:
		c.HL = c.operand
	case 0xE2:
		c.queueWrite8(0xFF00+uint16(c.C()), c.A())
	case 0xE5:
		c.queuePush(c.HL)
	case 0xE6:
		c.and(uint8(c.operand))
	case 0xE7:
		c.rst(0x20)
	case 0xE8:
		c.SP = c.addSP(int8(uint8(c.operand)))
	case 0xE9:
		c.PC = c.HL
	case 0xEA:
		c.queueWrite8(c.operand, c.A())
	case 0xEE:
		c.xor(uint8(c.operand))
	case 0xEF:
		c.rst(0x28)
	case 0xF0:
		c.SetA(uint8(c.operand))
	case 0xF1: // POP AF, the F low nibble always reads back as zero
		c.AF = c.operand & 0xFFF0
	case 0xF2:
		c.SetA(uint8(c.operand))
	case 0xF3:
		c.ime = false
	case 0xF5:
		c.queuePush(c.AF)
	case 0xF6:
		c.or(uint8(c.operand))
	case 0xF7:
		c.rst(0x30)
	case 0xF8:
		c.HL = c.addSP(int8(uint8(c.operand)))
	case 0xF9:
		c.SP = c.HL
	case 0xFA:
		c.SetA(uint8(c.operand))
	case 0xFB:
		c.ime = true
	case 0xFE:
		c.compare(uint8(c.operand))
	case 0xFF:
		c.rst(0x38)
	default:
		return IllegalOpcodeError{Opcode: op, Addr: c.PC - 1}
	}
	return nil
}

// aluOp dispatches one of the eight accumulator operations encoded in
// bits 3-5 of the ALU quadrant.
func (c *CPU) aluOp(fn, v uint8) {
	switch fn {
	case 0:
		c.add(v, false)
	case 1:
		c.add(v, true)
	case 2:
		c.sub(v, false)
	case 3:
		c.sub(v, true)
	case 4:
		c.and(v)
	case 5:
		c.xor(v)
	case 6:
		c.or(v)
	case 7:
		c.compare(v)
	}
}
