package cpu

// executeCB runs the semantic effect of a CB-prefixed opcode. The
// secondary table is fully regular: two bits select the operation
// group, three bits the bit index or rotate/shift variant, three bits
// the operand register, with index 6 meaning (HL).
func (c *CPU) executeCB() error {
	op := c.opcode
	v := c.aluOperand()

	var result uint8
	writeResult := true

	switch op >> 6 {
	case 0: // rotates and shifts
		switch (op >> 3) & 0x7 {
		case 0:
			result = c.rlc(v)
		case 1:
			result = c.rrc(v)
		case 2:
			result = c.rl(v)
		case 3:
			result = c.rr(v)
		case 4:
			result = c.sla(v)
		case 5:
			result = c.sra(v)
		case 6:
			result = c.swap(v)
		case 7:
			result = c.srl(v)
		}
	case 1: // BIT n,r
		c.bit((op>>3)&0x7, v)
		writeResult = false
	case 2: // RES n,r
		result = v &^ (1 << ((op >> 3) & 0x7))
	case 3: // SET n,r
		result = v | 1<<((op>>3)&0x7)
	}

	if writeResult {
		if c.info.Src == LocMemHL {
			c.queueWrite8(c.HL, result)
		} else {
			c.setReg8(op&0x7, result)
		}
	}
	return nil
}
