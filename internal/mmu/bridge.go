package mmu

import "github.com/thelolagemann/gbmmu/internal/types"

// Video is the display controller as seen by the MMU. The controller
// owns VRAM and OAM, but the MMU writes them directly, informing the
// controller of each write through UpdateTile and UpdateSprite.
type Video interface {
	VRAM() *[types.VRAMSize]uint8
	OAM() *[types.OAMSize]uint8

	// UpdateTile is called after a write to the tile data area
	// (0x8000 - 0x97FF).
	UpdateTile(address uint16, value uint8)
	// UpdateSprite is called after a write to OAM, including each
	// byte copied by a DMA transfer.
	UpdateSprite(address uint16, value uint8)

	// Read and Write access the register blocks at 0xFF40 - 0xFF7F.
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Interrupts is the interrupt controller's register file.
type Interrupts interface {
	IE() uint8
	SetIE(value uint8)
	IF() uint8
	SetIF(value uint8)
}

// Input is the joypad register (types.P1).
type Input interface {
	Read() uint8
	Write(value uint8)
}

func readZero(uint16) uint8 { return 0 }

func discard(uint16, uint8) {}

// attach builds the accessor for every region.
func (m *MMU) attach() {
	m.regions[Boot] = types.Address{Read: m.readBoot, Write: m.cart.Write}
	m.regions[ROM] = types.Address{Read: m.cart.Read, Write: m.cart.Write}
	m.regions[VRAM] = types.Address{Read: m.readVRAM, Write: m.writeVRAM}
	m.regions[CartRAM] = types.Address{Read: m.cartRAM.Read, Write: m.cartRAM.Write}
	m.regions[WRAM] = types.Address{Read: m.wRAM.Read, Write: m.wRAM.Write}
	m.regions[Echo] = m.regions[WRAM]
	m.regions[OAM] = types.Address{Read: m.readOAM, Write: m.writeOAM}
	m.regions[Unusable] = types.Address{Read: readZero, Write: discard}
	m.regions[P1] = types.Address{
		Read:  func(uint16) uint8 { return m.input.Read() },
		Write: func(_ uint16, v uint8) { m.input.Write(v) },
	}
	m.regions[IF] = types.Address{
		Read:  func(uint16) uint8 { return m.interrupts.IF() },
		Write: func(_ uint16, v uint8) { m.interrupts.SetIF(v) },
	}
	m.regions[DMA] = types.Address{
		Read:  func(uint16) uint8 { return m.dma.value },
		Write: func(_ uint16, v uint8) { m.transferOAM(v) },
	}
	m.regions[Display] = types.Address{Read: m.video.Read, Write: m.video.Write}
	if m.bootDisableRegister {
		m.regions[Display].Write = func(address uint16, v uint8) {
			if address == types.BDIS {
				m.DisableBootROM()
				return
			}
			m.video.Write(address, v)
		}
	}
	m.regions[IO] = types.Address{Read: readZero, Write: discard}
	m.regions[HRAM] = types.Address{Read: m.hRAM.Read, Write: m.hRAM.Write}
	m.regions[IE] = types.Address{
		Read:  func(uint16) uint8 { return m.interrupts.IE() },
		Write: func(_ uint16, v uint8) { m.interrupts.SetIE(v) },
	}
}

func (m *MMU) readBoot(address uint16) uint8 {
	if m.bootActive {
		return m.bootROM.Read(address)
	}
	return m.cart.Read(address)
}

func (m *MMU) readVRAM(address uint16) uint8 {
	return m.vRAM[address&0x1FFF]
}

func (m *MMU) writeVRAM(address uint16, value uint8) {
	m.vRAM[address&0x1FFF] = value
	if address < types.TileMapStart {
		m.video.UpdateTile(address, value)
	}
}

func (m *MMU) readOAM(address uint16) uint8 {
	return m.oam[address&0xFF]
}

func (m *MMU) writeOAM(address uint16, value uint8) {
	m.oam[address&0xFF] = value
	m.video.UpdateSprite(address, value)
}
