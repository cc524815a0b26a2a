package cpu

import (
	"errors"
	"fmt"
)

// BreakpointEvent is returned by Tick when the opcode fetch address
// matches an armed breakpoint. The engine pauses itself and the fetch
// does not happen; execution resumes on the next Tick.
type BreakpointEvent struct {
	Addr uint16
}

func (e BreakpointEvent) Error() string {
	return fmt.Sprintf("breakpoint at 0x%04X", e.Addr)
}

// IllegalOpcodeError is a fatal decode condition: the fetched opcode
// has no defined semantics.
type IllegalOpcodeError struct {
	Opcode uint8
	Addr   uint16
}

func (e IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X at 0x%04X", e.Opcode, e.Addr)
}

// errSpeedSwitch signals a pending double-speed switch. It is absorbed
// by Tick and never surfaces to the driver.
var errSpeedSwitch = errors.New("speed switch requested")
