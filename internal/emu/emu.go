// Package emu ties one CPU, bus and video unit into an emulated
// session and drives them frame by frame. It is deliberately thin: the
// core guarantees only that ticks are atomic and strictly ordered, so
// pacing, input and presentation belong to the caller.
package emu

import (
	"errors"

	"github.com/cespare/xxhash"
	"github.com/dotmatrix-emu/dotmatrix/internal/bus"
	"github.com/dotmatrix-emu/dotmatrix/internal/cpu"
	"github.com/dotmatrix-emu/dotmatrix/internal/ppu"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
)

// TicksPerScanline is the number of machine ticks between two
// horizontal sync events (456 clock cycles).
const TicksPerScanline = 114

// Emulator is one emulated session. The bus and CPU are created once
// and live for the session's duration.
type Emulator struct {
	CPU *cpu.CPU
	Bus *bus.Bus

	log     log.Logger
	busOpts []bus.Opt
	frame   [ppu.FrameSize]uint8
	cycles  uint64
}

// New creates a session around a flat ROM image.
func New(rom []byte, opts ...Opt) *Emulator {
	e := &Emulator{
		CPU: cpu.New(),
		log: log.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Bus = bus.New(rom, e.busOpts...)
	return e
}

// Step advances the session by one machine cycle.
func (e *Emulator) Step() error {
	if err := e.CPU.Tick(e.Bus); err != nil {
		return err
	}
	e.cycles += 4
	return nil
}

// RunFrame executes one full frame worth of machine ticks, issuing a
// horizontal sync to the video unit at every scanline boundary. It
// stops early when a breakpoint or fault pauses the engine; the caller
// must resume explicitly before the next frame.
func (e *Emulator) RunFrame() error {
	for line := 0; line < ppu.ScanlineCount; line++ {
		for i := 0; i < TicksPerScanline; i++ {
			if err := e.Step(); err != nil {
				var bp cpu.BreakpointEvent
				if errors.As(err, &bp) {
					e.log.Debugf("breakpoint hit at 0x%04X", bp.Addr)
				} else {
					e.log.Errorf("emulation fault: %v", err)
				}
				return err
			}
		}
		e.Bus.Video().HSync()
	}
	return nil
}

// Frame rasterizes and returns the current RGB frame. The buffer is
// reused between calls.
func (e *Emulator) Frame() []uint8 {
	e.Bus.Video().Rasterize(e.frame[:])
	return e.frame[:]
}

// FrameDigest returns a hash of the current frame, useful for
// regression-testing rendered output.
func (e *Emulator) FrameDigest() uint64 {
	return xxhash.Sum64(e.Frame())
}

// Cycles returns the number of clock cycles executed so far.
func (e *Emulator) Cycles() uint64 {
	return e.cycles
}
