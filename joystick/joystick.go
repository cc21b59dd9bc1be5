// Package joystick samples the two analog axes of the joystick and maps raw
// readings to their distance from center.
package joystick

import (
	"github.com/harveysanders/joystickatv/hal"
	"github.com/harveysanders/joystickatv/mathx"
)

const (
	// Center is the reading treated as zero deflection.
	Center = 2047

	// ChannelY and ChannelX are the ADC inputs wired to each axis.
	ChannelY = 0
	ChannelX = 1
)

// Sample is one raw reading of both axes, each in [0, hal.ADCMax].
type Sample struct {
	X uint16
	Y uint16
}

// Deviation returns how far v is from Center. The sign is always dropped.
// yAxis is accepted for symmetry with the callers but both axes use the
// same mapping.
func Deviation(v uint16, yAxis bool) int32 {
	_ = yAxis
	return mathx.Abs(int32(v) - Center)
}

// Sampler reads both axes from a multiplexed ADC.
type Sampler struct {
	adc hal.ADC
}

func NewSampler(adc hal.ADC) *Sampler {
	return &Sampler{adc: adc}
}

// Read takes one unfiltered sample: Y first, then X. The X channel stays
// selected afterwards.
func (s *Sampler) Read() Sample {
	var smp Sample
	s.adc.Select(ChannelY)
	smp.Y = s.adc.Read()
	s.adc.Select(ChannelX)
	smp.X = s.adc.Read()
	return smp
}

// ReadSelected converts whichever channel was selected last.
func (s *Sampler) ReadSelected() uint16 {
	return s.adc.Read()
}
