// Package hal is the thin platform layer between the joystick firmware and
// the board. Everything above it sees 12-bit ADC readings, PWM levels in
// [0, PWMWrap] and pin numbers; clock dividers, slice tops and the 16-bit
// scaling TinyGo applies to ADC samples stay on this side.
//
// The rp2 build (rp2040, rp2350) talks to the machine package. Every other
// build gets in-memory fakes so the rest of the module can be tested on a
// host.
package hal

import (
	"errors"
	"time"
)

const (
	// ADCMax is the largest reading the 12-bit converter produces.
	ADCMax = 4095

	// PWMWrap is the PWM counter wrap. Levels passed to PWM.Set share the
	// ADC's range so a deviation can be written as a duty cycle directly.
	PWMWrap = 4095
	// PWMClockDiv is the PWM clock divider. Together with PWMWrap it gives
	// roughly a 1 kHz carrier at 125 MHz.
	PWMClockDiv = 30.52

	// I2CFrequency is the display bus clock in Hz.
	I2CFrequency = 400_000
	// DisplayAddress is the 7-bit I2C address of the OLED.
	DisplayAddress = 0x3C
	// DisplayWidth and DisplayHeight are the OLED resolution in pixels.
	DisplayWidth  = 128
	DisplayHeight = 64
)

var (
	ErrUnknownPin   = errors.New("unknown pin")
	ErrNoPWMChannel = errors.New("pin has no pwm channel")
)

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// Edge selects which transitions raise an interrupt.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
	EdgeBoth
)

// Pin is a digital GPIO.
type Pin interface {
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Number() int
}

// IRQPin is a Pin that can raise edge interrupts. The handler is called in
// interrupt context with the number of the pin that fired; it must not
// block or allocate.
type IRQPin interface {
	Pin
	SetIRQ(edge Edge, handler func(pin int)) error
	ClearIRQ() error
}

// ADC is a multiplexed converter. Select picks the input used by every
// following Read until the next Select.
type ADC interface {
	Select(channel int)
	Read() uint16
}

// PWM is one PWM output. Levels above PWMWrap are clamped.
type PWM interface {
	Set(level uint16)
	Level() uint16
}

// Clock reports time elapsed since boot.
type Clock interface {
	Now() time.Duration
}

func clampLevel(level uint16) uint16 {
	if level > PWMWrap {
		return PWMWrap
	}
	return level
}
