// Package interrupts provides the interrupt controller's register
// file: the interrupt enable (IE) and interrupt flag (IF) registers.
package interrupts

import (
	"github.com/thelolagemann/gbmmu/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0),
	// which is requested every time the PPU enters
	// VBlank mode.
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1), which
	// is requested by the LCD STAT register (types.STAT),
	// when certain conditions are met.
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// which is requested when the timer overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3),
	// which is requested when a serial transfer is
	// completed.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4),
	// which is requested when any of types.P1 bits 0-3
	// go from high to low.
	JoypadFlag = types.Bit4
)

// Service is the interrupt service, used to request
// interrupts and to get the current interrupt vector.
//
// When an interrupt is requested, the corresponding bit
// in the Flag register is set. When an interrupt is
// enabled, the corresponding bit in the Enable register
// is set. When an interrupt is requested and enabled,
// the CPU will jump to the interrupt vector, and the
// corresponding bit in the Flag register will be cleared.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// IE returns the interrupt enable register.
func (s *Service) IE() uint8 {
	return s.Enable
}

// SetIE sets the interrupt enable register.
func (s *Service) SetIE(v uint8) {
	s.Enable = v
}

// IF returns the interrupt flag register. The upper 3 bits
// are unused and always read as set.
func (s *Service) IF() uint8 {
	return s.Flag | 0xE0
}

// SetIF sets the interrupt flag register. Only the first
// 5 bits are used.
func (s *Service) SetIF(v uint8) {
	s.Flag = v & 0x1F
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag != 0
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// Vector returns the highest priority interrupt vector that is
// both requested and enabled, or 0 if there is none. The
// corresponding bit in the Flag register is cleared.
func (s *Service) Vector() uint16 {
	if s.Enable&s.Flag == 0 {
		return 0
	}
	for i := uint8(0); i < 5; i++ {
		flag := uint8(1 << i)

		if s.Flag&flag != 0 && s.Enable&flag != 0 {
			s.Flag ^= flag
			return uint16(0x0040) + uint16(i)*8
		}
	}

	return 0
}
