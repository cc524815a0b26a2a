package mem

// Block is a flat, zero-filled byte region. It models ROM banks, RAM
// banks, HRAM and the stand-in I/O windows, and satisfies the bus device
// contract over local offsets.
type Block struct {
	data []byte
}

// NewBlock returns a zero-filled Block of the given size.
func NewBlock(size uint32) *Block {
	return &Block{data: make([]byte, size)}
}

// Load seats an image into the block, truncating it to the block size.
// Used by the bus to load ROM contents at construction.
func (b *Block) Load(img []byte) {
	copy(b.data, img)
}

// Size returns the size of the block in bytes.
func (b *Block) Size() uint32 {
	return uint32(len(b.data))
}

func (b *Block) Read8(off uint16) uint8 {
	return Read[uint8](b.data, off)
}

func (b *Block) ReadS8(off uint16) int8 {
	return Read[int8](b.data, off)
}

func (b *Block) Read16(off uint16) uint16 {
	return Read[uint16](b.data, off)
}

func (b *Block) Write8(off uint16, v uint8) {
	Write(b.data, off, v)
}

func (b *Block) Write16(off uint16, v uint16) {
	Write(b.data, off, v)
}
