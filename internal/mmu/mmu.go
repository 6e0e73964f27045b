// Package mmu provides the memory management unit for the Game Boy.
// Every memory reference made by the CPU goes through the MMU, which
// decodes the address and routes it to the boot ROM overlay, the
// cartridge, one of its RAM blocks, or a peripheral register.
package mmu

import (
	"fmt"

	"github.com/thelolagemann/gbmmu/internal/boot"
	"github.com/thelolagemann/gbmmu/internal/cartridge"
	"github.com/thelolagemann/gbmmu/internal/ram"
	"github.com/thelolagemann/gbmmu/internal/types"
	"github.com/thelolagemann/gbmmu/pkg/bits"
	"github.com/thelolagemann/gbmmu/pkg/log"
)

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB address space. It is
// not safe for concurrent use; the CPU and every peripheral are
// expected to access it from a single goroutine.
type MMU struct {
	// one accessor per Region, indexed through decodeTable
	regions [regionCount]types.Address

	// 0x0000 - 0x00FF - BOOT ROM (256B)
	bootROM    *boot.ROM
	bootActive bool
	noBoot     bool

	// 0x0000 - 0x7FFF - ROM (32kB)
	cart *cartridge.Image

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	video Video
	vRAM  *[types.VRAMSize]uint8
	oam   *[types.OAMSize]uint8

	// 0xA000 - 0xBFFF - Cartridge RAM (8kB)
	cartRAM *ram.RAM

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM *ram.RAM

	// 0xFF00 - joypad, 0xFF0F/0xFFFF - interrupt flag/enable
	input      Input
	interrupts Interrupts

	// 0xFF46 - OAM DMA
	dma dma
	// intercept writes to 0xFF50 (types.BDIS)
	bootDisableRegister bool

	// 0xFF80 - 0xFFFE - High RAM (127B)
	hRAM *ram.RAM

	Log log.Logger
}

// New returns a new MMU, wired to the given display controller,
// interrupt controller and joypad. The VRAM and OAM buffers are taken
// from video once, here, and shared for the lifetime of the MMU.
func New(video Video, interrupts Interrupts, input Input, opts ...Opt) *MMU {
	m := &MMU{
		bootROM:    boot.NewDMGBootROM(),
		cart:       cartridge.NewImage(),
		video:      video,
		vRAM:       video.VRAM(),
		oam:        video.OAM(),
		cartRAM:    ram.NewRAM(types.CartRAMSize),
		wRAM:       ram.NewRAM(types.WRAMSize),
		hRAM:       ram.NewRAM(types.HRAMSize),
		input:      input,
		interrupts: interrupts,
		Log:        log.New(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.attach()
	m.Reset()

	return m
}

// Reset clears the RAM owned by the MMU and re-activates the boot
// ROM overlay. The program image is kept.
func (m *MMU) Reset() {
	m.cartRAM.Reset()
	m.wRAM.Reset()
	m.hRAM.Reset()
	m.dma = dma{}
	m.bootActive = !m.noBoot

	m.Log.Debugf("mmu: reset (boot rom %s, overlay active: %t)", m.bootROM.Model(), m.bootActive)
}

// Load replaces the program image wholesale with rom.
func (m *MMU) Load(rom []byte) error {
	if err := m.cart.Load(rom); err != nil {
		return fmt.Errorf("mmu: loading program image: %w", err)
	}

	h := m.cart.Header()
	m.Log.Infof("mmu: loaded cartridge %s", h.String())
	if h.CartridgeType.Banked() {
		m.Log.Infof("mmu: cartridge type %02X expects a memory bank controller, only the first 32kB are mapped", uint8(h.CartridgeType))
	}
	if !h.ValidHeaderChecksum() {
		m.Log.Errorf("mmu: cartridge header checksum mismatch (%02X)", h.HeaderChecksum)
	}
	return nil
}

// Cartridge returns the program image.
func (m *MMU) Cartridge() *cartridge.Image {
	return m.cart
}

// BootROM returns the boot ROM that is overlaid while the overlay is
// active.
func (m *MMU) BootROM() *boot.ROM {
	return m.bootROM
}

// BootROMActive returns true if reads from 0x0000 - 0x00FF are served
// by the boot ROM.
func (m *MMU) BootROMActive() bool {
	return m.bootActive
}

// SetBootROMActive maps (true) or unmaps (false) the boot ROM overlay.
func (m *MMU) SetBootROMActive(active bool) {
	if m.bootActive != active {
		m.Log.Debugf("mmu: boot rom overlay active: %t", active)
	}
	m.bootActive = active
}

// DisableBootROM unmaps the boot ROM overlay, so that the program
// image is visible at 0x0000 - 0x00FF.
func (m *MMU) DisableBootROM() {
	m.SetBootROMActive(false)
}

// ReadByte returns the value at the given address.
func (m *MMU) ReadByte(address uint16) uint8 {
	return m.regions[decodeTable[address]].Read(address)
}

// WriteByte writes the value to the given address.
func (m *MMU) WriteByte(address uint16, value uint8) {
	m.regions[decodeTable[address]].Write(address, value)
}

// ReadWord returns the little endian 16-bit value at address, with
// the high byte read from address+1 (wrapping at 0xFFFF).
func (m *MMU) ReadWord(address uint16) uint16 {
	return bits.Word(m.ReadByte(address+1), m.ReadByte(address))
}

// WriteWord writes the low byte of value to address, followed by the
// high byte to address+1 (wrapping at 0xFFFF).
func (m *MMU) WriteWord(address uint16, value uint16) {
	hi, lo := bits.Split(value)
	m.WriteByte(address, lo)
	m.WriteByte(address+1, hi)
}
