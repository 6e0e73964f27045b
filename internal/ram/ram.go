// Package ram provides a basic RAM implementation.
package ram

import "fmt"

// RAM represents a fixed size, zero initialised block of RAM. The
// size is always a power of two, so that an address can be reduced
// to an offset into the block by masking.
type RAM struct {
	data []uint8
	mask uint16
}

// NewRAM returns a new RAM of the given size. The size must be a
// power of two no larger than 64kB.
func NewRAM(size uint32) *RAM {
	if size == 0 || size > 0x10000 || size&(size-1) != 0 {
		panic(fmt.Sprintf("ram: invalid size: %d", size))
	}
	return &RAM{
		data: make([]uint8, size),
		mask: uint16(size - 1),
	}
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address&r.mask]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address&r.mask] = value
}

// Reset clears the RAM back to zero.
func (r *RAM) Reset() {
	for i := range r.data {
		r.data[i] = 0
	}
}

// Size returns the size of the RAM in bytes.
func (r *RAM) Size() int {
	return len(r.data)
}

// Bytes returns a copy of the contents of the RAM.
func (r *RAM) Bytes() []uint8 {
	b := make([]uint8, len(r.data))
	copy(b, r.data)
	return b
}
