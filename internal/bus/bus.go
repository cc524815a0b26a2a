// Package bus owns every memory block and memory-mapped device of an
// emulated session and dispatches each access by address range to the
// owning component, translating the global address into that component's
// local offset.
package bus

import (
	"fmt"
	"sort"

	"github.com/dotmatrix-emu/dotmatrix/internal/mem"
	"github.com/dotmatrix-emu/dotmatrix/internal/ppu"
)

// Device is the contract every component plugged into the bus must
// satisfy. Devices receive pre-translated local offsets, never global
// addresses; offsets are guaranteed to fall inside the device's
// assigned range.
type Device interface {
	Read8(off uint16) uint8
	ReadS8(off uint16) int8
	Read16(off uint16) uint16
	Write8(off uint16, v uint8)
	Write16(off uint16, v uint16)
}

// InvalidAddressError reports an access that falls outside every mapped
// range. It is recoverable by design: a debugger front end must be able
// to report it and keep the session alive.
type InvalidAddressError struct {
	Addr uint16
}

func (e InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid memory address: 0x%04X", e.Addr)
}

// mapping assigns one address range, exclusively, to one device. Echo
// RAM ranges alias a work-RAM block under a different base.
type mapping struct {
	base   uint16
	length uint16
	dev    Device
}

func (m *mapping) contains(addr uint16) bool {
	return addr >= m.base && addr-m.base < m.length
}

// Bus is the 16-bit address space of the machine. It is created once
// per emulated session; the partition of the address space is fixed at
// construction.
type Bus struct {
	rom0  *mem.Block // 0x0000-0x3FFF, always resident
	romN  *mem.Block // 0x4000-0x7FFF, switchable window
	eram  *mem.Block // 0xA000-0xBFFF
	wram0 *mem.Block // 0xC000-0xCFFF, echoed at 0xE000
	wram1 *mem.Block // 0xD000-0xDFFF, echoed at 0xF000
	hram  *mem.Block // 0xFF80-0xFFFE
	snd   *mem.Block // 0xFF10-0xFF3F, stand-in for the audio unit

	video *ppu.PPU

	table []mapping
}

// Opt configures a Bus at construction.
type Opt func(*Bus)

// WithDevice maps an extra device window, letting external peripherals
// (timer, serial, joypad, interrupt controller) claim their I/O ranges
// through the same contract as everything else. Overlapping an existing
// range is a wiring defect and panics.
func WithDevice(base, length uint16, dev Device) Opt {
	return func(b *Bus) {
		b.table = append(b.table, mapping{base: base, length: length, dev: dev})
	}
}

// New builds the address space around a flat ROM image: the first 16 KiB
// become the fixed bank 0, the remainder is concatenated into the
// switchable region. Bank-switching logic lives with the cartridge
// loader and is not handled here.
func New(rom []byte, opts ...Opt) *Bus {
	b := &Bus{
		rom0:  mem.NewBlock(0x4000),
		eram:  mem.NewBlock(0x2000),
		wram0: mem.NewBlock(0x1000),
		wram1: mem.NewBlock(0x1000),
		hram:  mem.NewBlock(0x7F),
		snd:   mem.NewBlock(0x30),
		video: ppu.New(),
	}

	b.rom0.Load(rom)
	switchable := uint32(0x4000)
	if len(rom) > 0x4000 {
		switchable = uint32(len(rom) - 0x4000)
	}
	b.romN = mem.NewBlock(switchable)
	if len(rom) > 0x4000 {
		b.romN.Load(rom[0x4000:])
	}

	b.table = []mapping{
		{0x0000, 0x4000, b.rom0},
		{0x4000, 0x4000, b.romN},
		{0x8000, 0x2000, b.video.VRAM()},
		{0xA000, 0x2000, b.eram},
		{0xC000, 0x1000, b.wram0},
		{0xD000, 0x1000, b.wram1},
		{0xE000, 0x1000, b.wram0}, // echo of 0xC000
		{0xF000, 0x0E00, b.wram1}, // echo of 0xD000
		{0xFE00, 0x00A0, b.video.OAM()},
		{0xFF10, 0x0030, b.snd},
		{0xFF40, 0x0030, b.video.Registers()},
		{0xFF80, 0x007F, b.hram},
	}

	for _, opt := range opts {
		opt(b)
	}
	b.verify()

	return b
}

// verify sorts the partition table and checks that no two ranges claim
// the same address. A violation is a construction defect, not a runtime
// condition.
func (b *Bus) verify() {
	sort.Slice(b.table, func(i, j int) bool {
		return b.table[i].base < b.table[j].base
	})
	for i := 1; i < len(b.table); i++ {
		prev, cur := &b.table[i-1], &b.table[i]
		if uint32(prev.base)+uint32(prev.length) > uint32(cur.base) {
			panic(fmt.Sprintf("bus: ranges 0x%04X and 0x%04X overlap", prev.base, cur.base))
		}
	}
}

// find resolves the mapping owning addr.
func (b *Bus) find(addr uint16) (*mapping, bool) {
	i := sort.Search(len(b.table), func(i int) bool {
		return b.table[i].base > addr
	})
	if i == 0 {
		return nil, false
	}
	m := &b.table[i-1]
	return m, m.contains(addr)
}

// Video exposes the video unit for the rendering front end; the PPU is
// still owned, exclusively, by the bus.
func (b *Bus) Video() *ppu.PPU {
	return b.video
}

// Read8 reads an unsigned byte from the global address space.
func (b *Bus) Read8(addr uint16) (uint8, error) {
	m, ok := b.find(addr)
	if !ok {
		return 0, InvalidAddressError{Addr: addr}
	}
	return m.dev.Read8(addr - m.base), nil
}

// ReadS8 reads a signed byte from the global address space.
func (b *Bus) ReadS8(addr uint16) (int8, error) {
	m, ok := b.find(addr)
	if !ok {
		return 0, InvalidAddressError{Addr: addr}
	}
	return m.dev.ReadS8(addr - m.base), nil
}

// Read16 reads a little-endian word. A word that straddles a range edge
// is composed from two byte reads, each dispatched on its own.
func (b *Bus) Read16(addr uint16) (uint16, error) {
	m, ok := b.find(addr)
	if ok && m.contains(addr+1) {
		return m.dev.Read16(addr - m.base), nil
	}
	lo, err := b.Read8(addr)
	if err != nil {
		return 0, err
	}
	hi, err := b.Read8(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// Write8 writes an unsigned byte to the global address space.
func (b *Bus) Write8(addr uint16, v uint8) error {
	m, ok := b.find(addr)
	if !ok {
		return InvalidAddressError{Addr: addr}
	}
	m.dev.Write8(addr-m.base, v)
	return nil
}

// Write16 writes a little-endian word. A word that straddles a range
// edge is committed low byte first; a fault on the high byte leaves the
// low byte written, memory side effects are never rolled back.
func (b *Bus) Write16(addr uint16, v uint16) error {
	m, ok := b.find(addr)
	if ok && m.contains(addr+1) {
		m.dev.Write16(addr-m.base, v)
		return nil
	}
	if err := b.Write8(addr, uint8(v)); err != nil {
		return err
	}
	return b.Write8(addr+1, uint8(v>>8))
}
