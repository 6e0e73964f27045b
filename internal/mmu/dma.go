package mmu

import "github.com/thelolagemann/gbmmu/internal/types"

// dma is the state of the OAM DMA engine.
type dma struct {
	value     uint8 // last value written to types.DMA
	transfers uint64
}

// transferOAM copies 160 bytes from value<<8 to OAM. Each byte is
// read through the full decoder, so the source may be any region,
// and written straight into OAM, informing the display controller of
// every byte. The whole transfer completes before returning.
func (m *MMU) transferOAM(value uint8) {
	m.dma.value = value
	m.dma.transfers++

	source := uint16(value) << 8
	for i := uint16(0); i < types.OAMSize; i++ {
		b := m.ReadByte(source + i)
		m.oam[i] = b
		m.video.UpdateSprite(types.OAMStart+i, b)
	}

	m.Log.Debugf("mmu: dma transfer %04X-%04X -> OAM", source, source+types.OAMSize-1)
}

// DMATransfers returns the number of OAM DMA transfers performed since
// the last reset.
func (m *MMU) DMATransfers() uint64 {
	return m.dma.transfers
}
