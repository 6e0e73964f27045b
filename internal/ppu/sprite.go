package ppu

// SpriteCount is the number of sprites held in OAM.
const SpriteCount = 40

// Sprite is a decoded OAM entry. OAM (0xFE00 - 0xFE9F) is divided in
// 40 entries of 4 bytes each, each entry representing a sprite.
type Sprite struct {
	Y      uint8
	X      uint8
	TileID uint8
	SpriteAttributes
}

// SpriteAttributes represents the attributes of a sprite.
type SpriteAttributes struct {
	// Bit 7 - OBJ-to-BG priority (0=OBJ Above BG, 1=OBJ Behind BG color 1-3)
	Priority bool
	// Bit 6 - Y flip          (0=Normal, 1=Vertically mirrored)
	FlipY bool
	// Bit 5 - X flip          (0=Normal, 1=Horizontally mirrored)
	FlipX bool
	// Bit 4 - Palette number  (0=OBP0, 1=OBP1)
	UseSecondPalette bool
}

// Update updates the byte of the sprite addressed by address.
func (s *Sprite) Update(address uint16, value uint8) {
	switch address & 3 {
	case 0:
		s.Y = value
	case 1:
		s.X = value
	case 2:
		s.TileID = value
	case 3:
		s.Priority = value&0x80 != 0
		s.FlipY = value&0x40 != 0
		s.FlipX = value&0x20 != 0
		s.UseSecondPalette = value&0x10 != 0
	}
}
