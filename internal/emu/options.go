package emu

import (
	"github.com/dotmatrix-emu/dotmatrix/internal/bus"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
)

// Opt is a function that modifies an Emulator instance at construction.
type Opt func(*Emulator)

// WithLogger replaces the default logger.
func WithLogger(l log.Logger) Opt {
	return func(e *Emulator) {
		e.log = l
	}
}

// WithBreakpoint arms breakpoints before the first tick.
func WithBreakpoint(addrs ...uint16) Opt {
	return func(e *Emulator) {
		for _, addr := range addrs {
			e.CPU.SetBreakpoint(addr)
		}
	}
}

// WithDevice maps an external peripheral into an I/O window of the
// session's bus.
func WithDevice(base, length uint16, dev bus.Device) Opt {
	return func(e *Emulator) {
		e.busOpts = append(e.busOpts, bus.WithDevice(base, length, dev))
	}
}
