package lcd

import (
	"github.com/thelolagemann/gbmmu/internal/types"
	"github.com/thelolagemann/gbmmu/pkg/bits"
)

// Controller is the decoded LCD control register (types.LCDC):
//
//	Bit 7 - LCD Enable                     (0=Off, 1=On)
//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Display Enable          (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
//	Bit 0 - BG/Window Display/Priority     (0=Off, 1=On)
type Controller struct {
	Enabled bool
	// WindowTileMapAddress is the start address of the window tile map.
	WindowTileMapAddress uint16
	WindowEnabled        bool
	// TileDataAddress is the start address of the BG & window tile
	// data. 0x8800 selects signed tile indices.
	TileDataAddress uint16
	// BackgroundTileMapAddress is the start address of the background
	// tile map.
	BackgroundTileMapAddress uint16
	// SpriteSize is the height of a sprite, either 8 or 16.
	SpriteSize        uint8
	SpriteEnabled     bool
	BackgroundEnabled bool
}

// NewController returns a new LCD controller in its power on state
// (LCDC = 0x00).
func NewController() *Controller {
	c := &Controller{}
	c.Write(0x00)
	return c
}

// Write decodes value into the controller.
func (c *Controller) Write(value uint8) {
	c.Enabled = bits.Test(value, 7)
	c.WindowTileMapAddress = 0x9800
	if bits.Test(value, 6) {
		c.WindowTileMapAddress = 0x9C00
	}
	c.WindowEnabled = bits.Test(value, 5)
	c.TileDataAddress = 0x8800
	if bits.Test(value, 4) {
		c.TileDataAddress = 0x8000
	}
	c.BackgroundTileMapAddress = 0x9800
	if bits.Test(value, 3) {
		c.BackgroundTileMapAddress = 0x9C00
	}
	c.SpriteSize = 8 + bits.Val(value, 2)*8
	c.SpriteEnabled = bits.Test(value, 1)
	c.BackgroundEnabled = bits.Test(value, 0)
}

// Read encodes the controller back into the register value.
func (c *Controller) Read() uint8 {
	var value uint8
	if c.Enabled {
		value |= types.Bit7
	}
	if c.WindowTileMapAddress == 0x9C00 {
		value |= types.Bit6
	}
	if c.WindowEnabled {
		value |= types.Bit5
	}
	if c.TileDataAddress == 0x8000 {
		value |= types.Bit4
	}
	if c.BackgroundTileMapAddress == 0x9C00 {
		value |= types.Bit3
	}
	if c.SpriteSize == 16 {
		value |= types.Bit2
	}
	if c.SpriteEnabled {
		value |= types.Bit1
	}
	if c.BackgroundEnabled {
		value |= types.Bit0
	}
	return value
}

// UsingSignedTileData returns true if the LCD controller is using signed tile
// data.
func (c *Controller) UsingSignedTileData() bool {
	return c.TileDataAddress == 0x8800
}
