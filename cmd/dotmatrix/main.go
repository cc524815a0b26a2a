// Command dotmatrix runs a ROM headlessly for a number of frames and
// optionally writes the final frame to a PNG. It is the reference
// driver for the emulation core; interactive front ends wrap the same
// emu API.
package main

import (
	"errors"
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/dotmatrix-emu/dotmatrix/internal/cpu"
	"github.com/dotmatrix-emu/dotmatrix/internal/emu"
	"github.com/dotmatrix-emu/dotmatrix/internal/ppu"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
	"github.com/dotmatrix-emu/dotmatrix/pkg/utils"
	"github.com/pkg/profile"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	frames := flag.Int("frames", 60, "The number of frames to run")
	breakAt := flag.String("break", "", "Pause at this address (hex)")
	out := flag.String("out", "", "Write the final frame to this PNG file")
	cpuProfile := flag.Bool("profile", false, "Write a cpu profile to the working directory")
	flag.Parse()

	logger := log.New()

	if *cpuProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if *romFile == "" {
		logger.Errorf("no rom file given")
		os.Exit(1)
	}
	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Errorf("loading rom: %v", err)
		os.Exit(1)
	}

	opts := []emu.Opt{emu.WithLogger(logger)}
	if *breakAt != "" {
		addr, err := strconv.ParseUint(strings.TrimPrefix(*breakAt, "0x"), 16, 16)
		if err != nil {
			logger.Errorf("invalid breakpoint %q: %v", *breakAt, err)
			os.Exit(1)
		}
		opts = append(opts, emu.WithBreakpoint(uint16(addr)))
	}

	e := emu.New(rom, opts...)

	for i := 0; i < *frames; i++ {
		if err := e.RunFrame(); err != nil {
			var bp cpu.BreakpointEvent
			if errors.As(err, &bp) {
				text, _ := cpu.Disassemble(func(addr uint16) uint8 {
					v, _ := e.Bus.Read8(addr)
					return v
				}, bp.Addr)
				logger.Infof("paused at 0x%04X: %s", bp.Addr, text)
			} else {
				logger.Errorf("stopped after %d cycles: %v", e.Cycles(), err)
			}
			break
		}
	}

	logger.Infof("ran %d cycles, frame digest %016x", e.Cycles(), e.FrameDigest())

	if *out != "" {
		if err := writePNG(*out, e.Frame()); err != nil {
			logger.Errorf("writing %s: %v", *out, err)
			os.Exit(1)
		}
		logger.Infof("wrote %s", *out)
	}
}

func writePNG(path string, frame []uint8) error {
	img := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			i := (y*ppu.ScreenWidth + x) * 3
			img.SetRGBA(x, y, color.RGBA{frame[i], frame[i+1], frame[i+2], 0xFF})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
