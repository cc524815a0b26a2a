package ppu

// Tile is one 8x8 background tile: 8 rows of two interleaved bit planes,
// 16 bytes in total.
type Tile [16]uint8

// Pixel returns the 2-bit colour index of the pixel at (x, y) within the
// tile. The low plane holds bit 0 of the index, the high plane bit 1.
func (t *Tile) Pixel(x, y uint8) uint8 {
	lo := t[y*2]
	hi := t[y*2+1]
	return ((hi>>(7-x))&0x1)<<1 | (lo>>(7-x))&0x1
}

// Sprite is one object attribute record: Y, X, tile index and flags.
type Sprite [4]uint8
