// Package joypad provides an implementation of the Game Boy
// joypad. The joypad is used to read the state of the buttons
// and the direction keys.
package joypad

import (
	"github.com/thelolagemann/gbmmu/internal/interrupts"
	"github.com/thelolagemann/gbmmu/internal/types"
)

// Button represents a physical button on the Game Boy.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right button.
	ButtonRight
	// ButtonLeft is the Left button.
	ButtonLeft
	// ButtonUp is the Up button.
	ButtonUp
	// ButtonDown is the Down button.
	ButtonDown
)

// State represents the state of the joypad. Select either
// action or direction buttons by writing to the register,
// and then read out bits 0-3 to get the state of the buttons.
//
//	Bit 7 - Not used
//	Bit 6 - Not used
//	Bit 5 - P15 Select Button Keys      (0=Select)
//	Bit 4 - P14 Select Direction Keys   (0=Select)
//	Bit 3 - P13 Input Down  or Start    (0=Pressed) (Read Only)
//	Bit 2 - P12 Input Up    or Select   (0=Pressed) (Read Only)
//	Bit 1 - P11 Input Left  or Button B (0=Pressed) (Read Only)
//	Bit 0 - P10 Input Right or Button A (0=Pressed) (Read Only)
type State struct {
	// State is the current state of the joypad. The lower 4 bits
	// hold the action buttons, and the upper 4 bits hold the
	// direction buttons. A 1 in a bit indicates that the button
	// is pressed; the register inverts it on read.
	State Button

	selected uint8
	request  func(flag uint8)
}

// New returns a new joypad state. request is called with
// interrupts.JoypadFlag whenever a button is pressed, and may
// be nil.
func New(request func(flag uint8)) *State {
	return &State{
		selected: types.Bit4 | types.Bit5,
		request:  request,
	}
}

// Read returns the value of the P1 register.
func (s *State) Read() uint8 {
	d := uint8(0xC0) | s.selected
	if s.selected&types.Bit4 == 0 {
		d |= s.State >> 4 & 0xf
	}
	if s.selected&types.Bit5 == 0 {
		d |= s.State & 0xf
	}

	// buttons are active low
	return d ^ 0xf
}

// Write selects the action and/or direction buttons. Only
// bits 4 and 5 are writable.
func (s *State) Write(v uint8) {
	s.selected = v & (types.Bit4 | types.Bit5)
}

// Press presses a button.
func (s *State) Press(button Button) {
	s.State |= types.Bit0 << button
	if s.request != nil {
		s.request(interrupts.JoypadFlag)
	}
}

// Release releases a button.
func (s *State) Release(button Button) {
	s.State &^= types.Bit0 << button
}
