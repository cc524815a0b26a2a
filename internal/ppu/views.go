package ppu

import (
	"github.com/dotmatrix-emu/dotmatrix/internal/mem"
)

// The bus sees the PPU through three windows, each addressed by
// pre-translated local offsets: VRAM (tile data and the two tile maps),
// OAM (sprite attributes) and the register bank.

// Local VRAM layout.
const (
	vramMap0 = 0x1800
	vramMap1 = 0x1C00
)

// VRAM is the tile-data and tile-map window of the PPU.
type VRAM struct {
	p *PPU
}

// VRAM returns the bus-facing view of the 8 KiB video RAM window.
func (p *PPU) VRAM() VRAM {
	return VRAM{p}
}

// tile splits a tile-data offset into the tile record and the byte
// offset within it.
func (v VRAM) tile(off uint16) ([]uint8, uint16) {
	return v.p.tiles[off>>4][:], off & 0xF
}

func (v VRAM) Read8(off uint16) uint8 {
	switch {
	case off < vramMap0:
		buf, bid := v.tile(off)
		return mem.Read[uint8](buf, bid)
	case off < vramMap1:
		return mem.Read[uint8](v.p.map0[:], off-vramMap0)
	default:
		return mem.Read[uint8](v.p.map1[:], off-vramMap1)
	}
}

func (v VRAM) ReadS8(off uint16) int8 {
	return int8(v.Read8(off))
}

func (v VRAM) Read16(off uint16) uint16 {
	switch {
	case off < vramMap0:
		buf, bid := v.tile(off)
		return mem.Read[uint16](buf, bid)
	case off < vramMap1:
		return mem.Read[uint16](v.p.map0[:], off-vramMap0)
	default:
		return mem.Read[uint16](v.p.map1[:], off-vramMap1)
	}
}

func (v VRAM) Write8(off uint16, val uint8) {
	switch {
	case off < vramMap0:
		buf, bid := v.tile(off)
		mem.Write(buf, bid, val)
	case off < vramMap1:
		mem.Write(v.p.map0[:], off-vramMap0, val)
	default:
		mem.Write(v.p.map1[:], off-vramMap1, val)
	}
}

func (v VRAM) Write16(off uint16, val uint16) {
	switch {
	case off < vramMap0:
		buf, bid := v.tile(off)
		mem.Write(buf, bid, val)
	case off < vramMap1:
		mem.Write(v.p.map0[:], off-vramMap0, val)
	default:
		mem.Write(v.p.map1[:], off-vramMap1, val)
	}
}

// OAM is the sprite attribute window of the PPU.
type OAM struct {
	p *PPU
}

// OAM returns the bus-facing view of the sprite attribute table.
func (p *PPU) OAM() OAM {
	return OAM{p}
}

// sprite splits an OAM offset into the sprite record and the byte
// offset within it.
func (o OAM) sprite(off uint16) ([]uint8, uint16) {
	return o.p.oam[off>>2][:], off & 0x3
}

func (o OAM) Read8(off uint16) uint8 {
	buf, bid := o.sprite(off)
	return mem.Read[uint8](buf, bid)
}

func (o OAM) ReadS8(off uint16) int8 {
	return int8(o.Read8(off))
}

func (o OAM) Read16(off uint16) uint16 {
	buf, bid := o.sprite(off)
	return mem.Read[uint16](buf, bid)
}

func (o OAM) Write8(off uint16, val uint8) {
	buf, bid := o.sprite(off)
	mem.Write(buf, bid, val)
}

func (o OAM) Write16(off uint16, val uint16) {
	buf, bid := o.sprite(off)
	mem.Write(buf, bid, val)
}

// Registers is the register-bank window of the PPU.
type Registers struct {
	p *PPU
}

// Registers returns the bus-facing view of the 48-byte register bank.
func (p *PPU) Registers() Registers {
	return Registers{p}
}

func (r Registers) Read8(off uint16) uint8 {
	return mem.Read[uint8](r.p.regs[:], off)
}

func (r Registers) ReadS8(off uint16) int8 {
	return mem.Read[int8](r.p.regs[:], off)
}

func (r Registers) Read16(off uint16) uint16 {
	return mem.Read[uint16](r.p.regs[:], off)
}

func (r Registers) Write8(off uint16, val uint8) {
	mem.Write(r.p.regs[:], off, val)
}

func (r Registers) Write16(off uint16, val uint16) {
	mem.Write(r.p.regs[:], off, val)
}
