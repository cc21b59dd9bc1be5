// Package leds drives the two PWM-dimmed LEDs and the digital LED.
package leds

import (
	"github.com/harveysanders/joystickatv/hal"
	"github.com/harveysanders/joystickatv/joystick"
	"github.com/harveysanders/joystickatv/mathx"
)

const (
	// DeadZoneCenter and DeadZoneRadius bound the readings treated as "no
	// input". The window is inclusive and centered away from
	// joystick.Center.
	DeadZoneCenter = 2060
	DeadZoneRadius = 100
)

// Bank groups the board LEDs. Red tracks the X axis, Blue the Y axis.
type Bank struct {
	Red   hal.PWM
	Blue  hal.PWM
	Green hal.Pin
}

// Gate reports whether the PWM LEDs should follow the joystick.
type Gate interface {
	RGBEnabled() bool
}

// Policy applies the per-tick LED rules.
type Policy struct {
	bank Bank
	gate Gate
}

func NewPolicy(bank Bank, gate Gate) *Policy {
	return &Policy{bank: bank, gate: gate}
}

// Centered reports whether both axes sit inside the dead zone.
func Centered(s joystick.Sample) bool {
	return inDeadZone(s.X) && inDeadZone(s.Y)
}

func inDeadZone(v uint16) bool {
	return mathx.Between(int(v), DeadZoneCenter-DeadZoneRadius, DeadZoneCenter+DeadZoneRadius)
}

// Update switches both PWM LEDs off when the stick is centered. Otherwise,
// if the gate is open, each LED's duty follows its axis deviation. With the
// gate closed and the stick deflected the duties are left as they were.
func (p *Policy) Update(s joystick.Sample) {
	switch {
	case Centered(s):
		p.bank.Blue.Set(0)
		p.bank.Red.Set(0)
	case p.gate.RGBEnabled():
		p.bank.Blue.Set(uint16(joystick.Deviation(s.Y, true)))
		p.bank.Red.Set(uint16(joystick.Deviation(s.X, false)))
	}
}
