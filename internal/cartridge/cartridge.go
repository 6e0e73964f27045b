// Package cartridge provides the program image of a Game Boy
// cartridge. Only a single fixed image is supported: writes into the
// image window are accepted and ignored, as there is no memory bank
// controller to intercept them.
package cartridge

import (
	"errors"
	"fmt"
)

const (
	// MinImageSize is the smallest image that fills the ROM window
	// (0x0000 - 0x7FFF).
	MinImageSize = 0x8000

	headerStart = 0x0100
	headerEnd   = 0x0150
)

// ErrImageTooSmall is returned when an image does not cover the whole
// of the ROM window.
var ErrImageTooSmall = errors.New("cartridge: image too small")

// Image represents the program image of a cartridge.
type Image struct {
	rom    []byte
	header Header
}

// NewImage returns an empty image. Every address of an empty image
// reads as 0 until Load is called.
func NewImage() *Image {
	return &Image{}
}

// Load replaces the image wholesale with a copy of rom, and parses the
// cartridge header (0x0100 - 0x014F). On error the previous image is
// left untouched.
func (c *Image) Load(rom []byte) error {
	if len(rom) < MinImageSize {
		return fmt.Errorf("%w: %d bytes, need at least %d", ErrImageTooSmall, len(rom), MinImageSize)
	}

	img := make([]byte, len(rom))
	copy(img, rom)

	c.rom = img
	c.header = parseHeader(img[headerStart:headerEnd])
	return nil
}

// Read returns the value at the given address.
func (c *Image) Read(address uint16) uint8 {
	if int(address) >= len(c.rom) {
		return 0
	}
	return c.rom[address]
}

// Write is a no-op, as the image is read-only.
func (c *Image) Write(address uint16, value uint8) {}

// Header returns the parsed cartridge header.
func (c *Image) Header() Header {
	return c.header
}

// Title returns the cartridge title.
func (c *Image) Title() string {
	return c.header.Title
}

// Size returns the size of the loaded image in bytes.
func (c *Image) Size() int {
	return len(c.rom)
}

// Loaded returns true once an image has been loaded.
func (c *Image) Loaded() bool {
	return len(c.rom) > 0
}
