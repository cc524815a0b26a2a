package cpu

type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.SetF(c.F() | 1<<flag)
}

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.SetF(c.F() &^ (1 << flag))
}

// setFlagTo sets or clears a flag according to v.
func (c *CPU) setFlagTo(flag Flag, v bool) {
	if v {
		c.setFlag(flag)
	} else {
		c.clearFlag(flag)
	}
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F()&(1<<flag) != 0
}

// shouldZeroFlag sets FlagZero if the given value is 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	c.setFlagTo(FlagZero, value == 0)
}
