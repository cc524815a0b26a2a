// Package ppu implements the memory-mapped video unit. Tile data, tile
// maps, sprite attributes and registers are reachable through the bus
// device contract; the background layer is rasterized into a pixel
// buffer on demand.
package ppu

import (
	"github.com/dotmatrix-emu/dotmatrix/pkg/utils"
)

const (
	// ScreenWidth is the width of the visible display in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the visible display in pixels.
	ScreenHeight = 144
	// ScanlineCount is the total number of scanlines per frame,
	// including the vertical blank period.
	ScanlineCount = 154
	// FrameSize is the size in bytes of a rasterized RGB frame.
	FrameSize = ScreenWidth * ScreenHeight * 3
)

// Register offsets into the register bank, relative to 0xFF40.
const (
	RegLCDC = 0x00
	RegSTAT = 0x01
	RegSCY  = 0x02
	RegSCX  = 0x03
	RegLY   = 0x04
	RegBGP  = 0x07
)

// LCDC bits.
const (
	lcdcDisplayEnable = 7
	lcdcTileData      = 4
	lcdcBGTileMap     = 3
)

// shades maps a palette colour to a 4-level gray shade, lightest first.
var shades = [4]uint8{0xFF, 0xAA, 0x55, 0x00}

// PPU holds the video unit state: 384 tiles, 40 sprite attribute
// records, two background tile maps and the register bank. Everything is
// allocated once at power-on and mutated in place by bus-routed writes.
type PPU struct {
	tiles [384]Tile
	oam   [40]Sprite
	map0  [1024]uint8
	map1  [1024]uint8

	regs [48]uint8
}

// New returns a powered-on PPU with cleared memory.
func New() *PPU {
	return &PPU{}
}

// Rasterize renders the background layer into buf, which must hold at
// least FrameSize bytes of RGB pixels. It is pull-based and idempotent:
// it always reflects the current register and tile-memory state, and is
// safe to call any number of times per frame.
func (p *PPU) Rasterize(buf []uint8) {
	if !utils.TestBit(p.regs[RegLCDC], lcdcDisplayEnable) {
		for i := range buf[:FrameSize] {
			buf[i] = shades[0]
		}
		return
	}

	scy := uint(p.regs[RegSCY])
	scx := uint(p.regs[RegSCX])

	for py := uint(0); py < ScreenHeight; py++ {
		for px := uint(0); px < ScreenWidth; px++ {
			y := (py + scy) % 256
			x := (px + scx) % 256

			t := p.backgroundTile((y>>3)<<5 | x>>3)
			shade := p.shade(t.Pixel(uint8(x&0x7), uint8(y&0x7)))

			pid := py*(ScreenWidth*3) + px*3
			buf[pid] = shade
			buf[pid+1] = shade
			buf[pid+2] = shade
		}
	}
}

// HSync advances the scanline counter, wrapping after the vertical blank
// period. It is the unit's only time-driven mutation, invoked by the
// external scheduler once per scanline boundary.
func (p *PPU) HSync() {
	p.regs[RegLY] = (p.regs[RegLY] + 1) % ScanlineCount
}

// LY returns the current scanline counter.
func (p *PPU) LY() uint8 {
	return p.regs[RegLY]
}

// backgroundTile resolves the tile for a tile-map slot, selecting the
// map with LCDC bit 3 and the index interpretation with LCDC bit 4
// (unsigned from the start of the table, or signed around tile 128).
func (p *PPU) backgroundTile(slot uint) *Tile {
	var id uint8
	if utils.TestBit(p.regs[RegLCDC], lcdcBGTileMap) {
		id = p.map1[slot]
	} else {
		id = p.map0[slot]
	}

	if utils.TestBit(p.regs[RegLCDC], lcdcTileData) {
		return &p.tiles[id]
	}
	return &p.tiles[128+int(int8(id))]
}

// shade maps a 2-bit colour index through the background palette
// register to a gray shade.
func (p *PPU) shade(colour uint8) uint8 {
	return shades[(p.regs[RegBGP]>>(colour*2))&0x3]
}
