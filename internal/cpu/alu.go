package cpu

// 8-bit arithmetic and logic on the accumulator, plus the 16-bit adds.
// Each helper leaves the flag register consistent with hardware,
// including the always-zero low nibble of F.

// add adds v (plus the carry flag if withCarry) to A.
func (c *CPU) add(v uint8, withCarry bool) {
	a := c.A()
	var carry uint8
	if withCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	result := uint16(a) + uint16(v) + uint16(carry)

	c.SetA(uint8(result))
	c.shouldZeroFlag(uint8(result))
	c.clearFlag(FlagSubtract)
	c.setFlagTo(FlagHalfCarry, a&0xF+v&0xF+carry > 0xF)
	c.setFlagTo(FlagCarry, result > 0xFF)
}

// sub subtracts v (plus the carry flag if withCarry) from A.
func (c *CPU) sub(v uint8, withCarry bool) {
	a := c.A()
	var carry uint8
	if withCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	result := uint8(uint16(a) - uint16(v) - uint16(carry))

	c.SetA(result)
	c.shouldZeroFlag(result)
	c.setFlag(FlagSubtract)
	c.setFlagTo(FlagHalfCarry, uint16(a&0xF) < uint16(v&0xF)+uint16(carry))
	c.setFlagTo(FlagCarry, uint16(a) < uint16(v)+uint16(carry))
}

// compare subtracts v from A, discarding the result.
func (c *CPU) compare(v uint8) {
	a := c.A()
	c.sub(v, false)
	c.SetA(a)
}

func (c *CPU) and(v uint8) {
	result := c.A() & v
	c.SetA(result)
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
}

func (c *CPU) xor(v uint8) {
	result := c.A() ^ v
	c.SetA(result)
	c.SetF(0)
	c.shouldZeroFlag(result)
}

func (c *CPU) or(v uint8) {
	result := c.A() | v
	c.SetA(result)
	c.SetF(0)
	c.shouldZeroFlag(result)
}

// inc8 increments an 8-bit value; the carry flag is untouched.
func (c *CPU) inc8(v uint8) uint8 {
	result := v + 1
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	c.setFlagTo(FlagHalfCarry, v&0xF == 0xF)
	return result
}

// dec8 decrements an 8-bit value; the carry flag is untouched.
func (c *CPU) dec8(v uint8) uint8 {
	result := v - 1
	c.shouldZeroFlag(result)
	c.setFlag(FlagSubtract)
	c.setFlagTo(FlagHalfCarry, v&0xF == 0)
	return result
}

// addHL adds v to HL; the zero flag is untouched.
func (c *CPU) addHL(v uint16) {
	hl := c.HL
	result := uint32(hl) + uint32(v)

	c.HL = uint16(result)
	c.clearFlag(FlagSubtract)
	c.setFlagTo(FlagHalfCarry, hl&0xFFF+v&0xFFF > 0xFFF)
	c.setFlagTo(FlagCarry, result > 0xFFFF)
}

// addSP computes SP plus a signed offset; the half-carry and carry
// flags come from the low-byte addition.
func (c *CPU) addSP(off int8) uint16 {
	sp := c.SP
	b := uint16(uint8(off))
	result := sp + uint16(int16(off))

	c.SetF(0)
	c.setFlagTo(FlagHalfCarry, sp&0xF+b&0xF > 0xF)
	c.setFlagTo(FlagCarry, sp&0xFF+b&0xFF > 0xFF)
	return result
}

// daa decimal-adjusts A after a BCD addition or subtraction.
func (c *CPU) daa() {
	a := c.A()
	carry := c.isFlagSet(FlagCarry)
	var adjust uint8

	if !c.isFlagSet(FlagSubtract) {
		if c.isFlagSet(FlagHalfCarry) || a&0xF > 0x9 {
			adjust |= 0x06
		}
		if carry || a > 0x99 {
			adjust |= 0x60
			carry = true
		}
		a += adjust
	} else {
		if c.isFlagSet(FlagHalfCarry) {
			adjust |= 0x06
		}
		if carry {
			adjust |= 0x60
		}
		a -= adjust
	}

	c.SetA(a)
	c.shouldZeroFlag(a)
	c.clearFlag(FlagHalfCarry)
	c.setFlagTo(FlagCarry, carry)
}

// Rotates, shifts and bit operations shared by the CB table and the
// accumulator shorthands (which additionally clear the zero flag).

func (c *CPU) rlc(v uint8) uint8 {
	result := v<<1 | v>>7
	c.SetF(0)
	c.shouldZeroFlag(result)
	c.setFlagTo(FlagCarry, v&0x80 != 0)
	return result
}

func (c *CPU) rrc(v uint8) uint8 {
	result := v>>1 | v<<7
	c.SetF(0)
	c.shouldZeroFlag(result)
	c.setFlagTo(FlagCarry, v&0x1 != 0)
	return result
}

// rl rotates left through the carry flag.
func (c *CPU) rl(v uint8) uint8 {
	result := v << 1
	if c.isFlagSet(FlagCarry) {
		result |= 0x1
	}
	c.SetF(0)
	c.shouldZeroFlag(result)
	c.setFlagTo(FlagCarry, v&0x80 != 0)
	return result
}

// rr rotates right through the carry flag.
func (c *CPU) rr(v uint8) uint8 {
	result := v >> 1
	if c.isFlagSet(FlagCarry) {
		result |= 0x80
	}
	c.SetF(0)
	c.shouldZeroFlag(result)
	c.setFlagTo(FlagCarry, v&0x1 != 0)
	return result
}

func (c *CPU) sla(v uint8) uint8 {
	result := v << 1
	c.SetF(0)
	c.shouldZeroFlag(result)
	c.setFlagTo(FlagCarry, v&0x80 != 0)
	return result
}

// sra shifts right keeping the sign bit.
func (c *CPU) sra(v uint8) uint8 {
	result := v>>1 | v&0x80
	c.SetF(0)
	c.shouldZeroFlag(result)
	c.setFlagTo(FlagCarry, v&0x1 != 0)
	return result
}

func (c *CPU) swap(v uint8) uint8 {
	result := v<<4 | v>>4
	c.SetF(0)
	c.shouldZeroFlag(result)
	return result
}

func (c *CPU) srl(v uint8) uint8 {
	result := v >> 1
	c.SetF(0)
	c.shouldZeroFlag(result)
	c.setFlagTo(FlagCarry, v&0x1 != 0)
	return result
}

// bit tests bit n of v; the carry flag is untouched.
func (c *CPU) bit(n, v uint8) {
	c.setFlagTo(FlagZero, v&(1<<n) == 0)
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}
