// Package cpu implements the SM83 execution engine as a cycle-stepped
// state machine. Every call to Tick performs exactly one state
// transition and at most one bus access, and consumes one machine cycle
// (4 clock cycles) of the current instruction's budget.
package cpu

import (
	"errors"
)

const (
	// ClockSpeed is the clock speed of the CPU in Hz.
	ClockSpeed = 4194304
)

// Memory is the bus surface the engine drives. All accesses can fail
// with a recoverable error (e.g. an unmapped address) which the engine
// surfaces to the driver after rolling back its own state.
type Memory interface {
	Read8(addr uint16) (uint8, error)
	ReadS8(addr uint16) (int8, error)
	Read16(addr uint16) (uint16, error)
	Write8(addr uint16, v uint8) error
	Write16(addr uint16, v uint16) error
}

type state uint8

const (
	stateFetchOpcode state = iota
	stateFetchByte0
	stateFetchByte1
	stateFetchMemory
	stateWriteback
	stateDelay
)

type writebackKind uint8

const (
	writeNone writebackKind = iota
	write8
	write16
	writePush
	writeReturn // pop into PC
)

// writebackOp is a memory or stack mutation deferred until after the
// instruction's register-level effects have been computed.
type writebackOp struct {
	kind  writebackKind
	addr  uint16
	value uint16
}

// CPU is the execution engine. All fields are value types so that the
// whole engine state can be snapshotted with a plain copy; the
// breakpoint set is shared between snapshot and live state on purpose,
// it is debugger bookkeeping, not machine state.
type CPU struct {
	Registers

	halted      bool
	haltBug     bool
	shouldHalt  bool
	stopPending bool
	ime         bool

	state           state
	delay           uint8
	info            OpcodeInfo
	opcode          uint8
	cbMode          bool
	operand         uint16
	writeOp         writebackOp
	executing       bool
	branchTaken     bool
	remainingCycles uint8

	paused      bool
	breakpoints map[uint16]struct{}

	// A double-speed switch is followed by a STOP/HALT that must be
	// swallowed once.
	ignoreNextHalt bool
}

// New returns a powered-on CPU with cleared registers, ready to fetch
// from address 0.
func New() *CPU {
	return &CPU{
		info:        Opcodes[0],
		breakpoints: make(map[uint16]struct{}),
	}
}

// Tick advances the state machine by one machine cycle. The engine
// snapshots itself first: on a fatal error the pre-tick state is
// restored in full and the engine pauses, but bus writes already issued
// during the failed tick stay committed.
func (c *CPU) Tick(mem Memory) error {
	if c.halted {
		return nil
	}

	saved := *c

	c.remainingCycles -= 4

	var err error
	switch c.state {
	case stateFetchOpcode:
		err = c.fetchOpcode(mem)
	case stateFetchByte0, stateFetchByte1:
		err = c.fetchImmediate(mem)
	case stateFetchMemory:
		err = c.fetchMemory(mem)
	case stateWriteback:
		err = c.writeback(mem)
	case stateDelay:
		if c.delay == 0 {
			c.state = stateFetchOpcode
			c.executing = false
		} else {
			c.delay--
		}
	}

	switch {
	case errors.Is(err, errSpeedSwitch):
		// Some ROMs request a speed switch on DMG hardware too, where
		// it must be ignored; either way the next halt is swallowed.
		c.ignoreNextHalt = true
		err = nil
	case err != nil:
		// Restore the pre-tick engine state and pause. Bus writes made
		// earlier in this tick are not undone. For a breakpoint the
		// fetch never happened, so the restore is a no-op beyond the
		// cycle bookkeeping.
		*c = saved
		c.paused = true
		return err
	}

	if c.shouldHalt && c.ignoreNextHalt {
		c.ignoreNextHalt = false
		c.shouldHalt = false
	}
	if c.shouldHalt && !c.executing {
		c.shouldHalt = false
		c.halted = true
	}
	return nil
}

// fetchOpcode begins a new instruction: breakpoint check, opcode fetch,
// metadata lookup and full reset of the per-instruction state.
func (c *CPU) fetchOpcode(mem Memory) error {
	if !c.paused {
		if _, ok := c.breakpoints[c.PC]; ok {
			return BreakpointEvent{Addr: c.PC}
		}
	}
	c.paused = false

	op, err := c.fetchPC(mem)
	if err != nil {
		return err
	}

	c.opcode = op
	c.info = Opcodes[op]
	c.operand = 0
	c.cbMode = op == 0xCB
	c.writeOp = writebackOp{}
	c.executing = true
	c.branchTaken = false
	c.remainingCycles = c.info.Untaken - 4

	switch {
	case c.info.Size > 1:
		c.state = stateFetchByte0
	case c.info.Src.InMemory():
		c.state = stateFetchMemory
	default:
		return c.execute()
	}
	return nil
}

// fetchImmediate fetches one little-endian byte of the immediate
// operand. The byte following a CB prefix becomes the effective opcode
// from the secondary table; if it addresses (HL) the source is forced
// to memory and the extra round trip costs 8 cycles.
func (c *CPU) fetchImmediate(mem Memory) error {
	d8, err := c.fetchPC(mem)
	if err != nil {
		return err
	}

	switch c.state {
	case stateFetchByte0:
		c.operand |= uint16(d8)

		if c.cbMode {
			c.opcode = uint8(c.operand)
			if c.operand&0x7 == 0x6 {
				c.info.Src = LocMemHL
				c.remainingCycles += 8
			}
		}

		switch {
		case c.info.Size > 2:
			c.state = stateFetchByte1
		case c.info.Src.InMemory():
			c.state = stateFetchMemory
		default:
			return c.execute()
		}
	case stateFetchByte1:
		c.operand |= uint16(d8) << 8

		if c.info.Src.InMemory() {
			c.state = stateFetchMemory
		} else {
			return c.execute()
		}
	}
	return nil
}

// fetchMemory resolves a memory-addressed source operand. The stack
// addressing mode pops a full word and advances SP.
func (c *CPU) fetchMemory(mem Memory) error {
	switch c.info.Src {
	case LocMemC:
		v, err := mem.Read8(0xFF00 + uint16(c.C()))
		if err != nil {
			return err
		}
		c.operand = uint16(v)
	case LocMemIO:
		v, err := mem.Read8(0xFF00 + c.operand)
		if err != nil {
			return err
		}
		c.operand = uint16(v)
	case LocMemBC:
		v, err := mem.Read8(c.BC)
		if err != nil {
			return err
		}
		c.operand = uint16(v)
	case LocMemDE:
		v, err := mem.Read8(c.DE)
		if err != nil {
			return err
		}
		c.operand = uint16(v)
	case LocMemHL:
		v, err := mem.Read8(c.HL)
		if err != nil {
			return err
		}
		c.operand = uint16(v)
	case LocMemA16:
		v, err := mem.Read8(c.operand)
		if err != nil {
			return err
		}
		c.operand = uint16(v)
	case LocMemSP:
		v, err := mem.Read16(c.SP)
		if err != nil {
			return err
		}
		c.SP += 2
		c.operand = v
	}

	// a memory fetch is always followed by the execution step
	return c.execute()
}

// execute runs the instruction's register-level effect and decides
// where to go next: a queued writeback, a delay sized to the remaining
// cycle budget, or straight back to the next fetch.
func (c *CPU) execute() error {
	var err error
	if c.cbMode {
		err = c.executeCB()
	} else {
		err = c.executeOp()
	}
	if err != nil {
		return err
	}

	if c.branchTaken {
		c.remainingCycles += c.info.Taken - c.info.Untaken
	}

	if c.writeOp.kind != writeNone {
		c.state = stateWriteback
	} else {
		c.scheduleRemainder()
	}
	return nil
}

// writeback performs the single queued memory effect of the
// instruction, including the pop-into-PC case of a return.
func (c *CPU) writeback(mem Memory) error {
	c.scheduleRemainder()

	switch c.writeOp.kind {
	case write8:
		return mem.Write8(c.writeOp.addr, uint8(c.writeOp.value))
	case write16:
		return mem.Write16(c.writeOp.addr, c.writeOp.value)
	case writePush:
		c.SP -= 2
		return mem.Write16(c.SP, c.writeOp.value)
	case writeReturn:
		v, err := mem.Read16(c.SP)
		if err != nil {
			return err
		}
		c.PC = v
		c.SP += 2
	}
	return nil
}

// scheduleRemainder either burns the remaining cycle budget in a delay
// state or starts the next instruction immediately.
func (c *CPU) scheduleRemainder() {
	if c.remainingCycles > 0 {
		c.state = stateDelay
		c.delay = (c.remainingCycles - 1) / 4
	} else {
		c.state = stateFetchOpcode
		c.executing = false
	}
}

// fetchPC reads the byte at PC and advances it.
func (c *CPU) fetchPC(mem Memory) (uint8, error) {
	v, err := mem.Read8(c.PC)
	if err != nil {
		return 0, err
	}
	c.PC++
	return v, nil
}

// JumpToISR pushes PC onto the stack and jumps to the interrupt vector.
// It is invoked by the interrupt controller once per recognized,
// enabled interrupt, and wakes a halted CPU.
func (c *CPU) JumpToISR(mem Memory, vector uint16) error {
	c.SP -= 2
	if err := mem.Write16(c.SP, c.PC); err != nil {
		return err
	}
	c.PC = vector
	c.halted = false
	return nil
}

// IME returns the interrupt master enable flag.
func (c *CPU) IME() bool {
	return c.ime
}

// SetIME sets the interrupt master enable flag; exposed for the
// external interrupt controller.
func (c *CPU) SetIME(v bool) {
	c.ime = v
}

// Halted reports whether the CPU is waiting for an interrupt.
func (c *CPU) Halted() bool {
	return c.halted
}

// StopPending reports whether a STOP was executed and not yet serviced.
func (c *CPU) StopPending() bool {
	return c.stopPending
}

// Pause stops the engine from being stepped; the driver must not
// dispatch further ticks until Resume.
func (c *CPU) Pause() {
	c.paused = true
}

// Resume clears the paused state.
func (c *CPU) Resume() {
	c.paused = false
}

// Paused reports whether the engine is paused.
func (c *CPU) Paused() bool {
	return c.paused
}

// SetBreakpoint arms a breakpoint at the given address.
func (c *CPU) SetBreakpoint(addr uint16) {
	c.breakpoints[addr] = struct{}{}
}

// ClearBreakpoint disarms the breakpoint at the given address.
func (c *CPU) ClearBreakpoint(addr uint16) {
	delete(c.breakpoints, addr)
}

// BreakpointAt reports whether a breakpoint is armed at the address.
func (c *CPU) BreakpointAt(addr uint16) bool {
	_, ok := c.breakpoints[addr]
	return ok
}

// Breakpoints returns the armed breakpoint addresses.
func (c *CPU) Breakpoints() []uint16 {
	addrs := make([]uint16, 0, len(c.breakpoints))
	for addr := range c.breakpoints {
		addrs = append(addrs, addr)
	}
	return addrs
}
