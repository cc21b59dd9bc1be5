//go:build rp2040 || rp2350

package hal

import (
	"errors"
	"machine"
	"runtime/interrupt"
	"strconv"
	"time"

	"tinygo.org/x/drivers"
)

// ----------------------------- GPIO ------------------------------------------

// NewPin returns the GPIO with the given GP number.
func NewPin(n int) (IRQPin, error) {
	if n < 0 || n > maxGPIO {
		return nil, ErrUnknownPin
	}
	return &rp2Pin{p: machine.Pin(n), n: n}, nil
}

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) ConfigureInput(pull Pull) error {
	var mode machine.PinMode
	switch pull {
	case PullUp:
		mode = machine.PinInputPullup
	case PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }
func (r *rp2Pin) Number() int    { return r.n }

func (r *rp2Pin) SetIRQ(edge Edge, handler func(pin int)) error {
	return r.p.SetInterrupt(toPinChange(edge), func(p machine.Pin) { handler(int(p)) })
}

func (r *rp2Pin) ClearIRQ() error {
	var zero machine.PinChange
	return r.p.SetInterrupt(zero, nil)
}

func toPinChange(e Edge) machine.PinChange {
	switch e {
	case EdgeRising:
		return machine.PinRising
	case EdgeFalling:
		return machine.PinFalling
	case EdgeBoth:
		return machine.PinToggle
	default:
		var zero machine.PinChange
		return zero
	}
}

// ------------------------------ ADC ------------------------------------------

type rp2ADC struct {
	inputs   []machine.ADC
	selected int
}

// NewADC powers up the converter and configures the given pins as analog
// inputs. Channel i of the returned ADC is pins[i].
func NewADC(pins ...machine.Pin) (ADC, error) {
	machine.InitADC()
	a := &rp2ADC{}
	for i, p := range pins {
		in := machine.ADC{Pin: p}
		if err := in.Configure(machine.ADCConfig{}); err != nil {
			return nil, errors.New("configure adc channel " + strconv.Itoa(i) + ": " + err.Error())
		}
		a.inputs = append(a.inputs, in)
	}
	return a, nil
}

func (a *rp2ADC) Select(channel int) { a.selected = channel }

// Read returns a 12-bit sample. TinyGo scales every reading to 16 bits.
//
// Button handlers read the ADC from interrupt context, and machine.ADC.Get
// serializes conversions internally. The conversion therefore runs with
// interrupts masked so a handler can never find it half done.
func (a *rp2ADC) Read() uint16 {
	if a.selected < 0 || a.selected >= len(a.inputs) {
		return 0
	}
	state := interrupt.Disable()
	v := a.inputs[a.selected].Get()
	interrupt.Restore(state)
	return v >> 4
}

// ------------------------------ PWM ------------------------------------------

// PWMGroup is the part of a TinyGo PWM slice (machine.PWM0..PWM7) used here.
type PWMGroup interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Set(channel uint8, value uint32)
	Top() uint32
}

type rp2PWM struct {
	group PWMGroup
	ch    uint8
	level uint16
}

// NewPWM configures group for the PWMWrap/PWMClockDiv carrier and returns
// the output on pin. Both LEDs may share a slice; configuring it twice is
// harmless.
func NewPWM(group PWMGroup, pin machine.Pin) (PWM, error) {
	if err := group.Configure(machine.PWMConfig{Period: pwmPeriod()}); err != nil {
		return nil, errors.New("configure pwm: " + err.Error())
	}
	ch, err := group.Channel(pin)
	if err != nil {
		return nil, errors.New(ErrNoPWMChannel.Error() + ": " + err.Error())
	}
	p := &rp2PWM{group: group, ch: ch}
	p.Set(0)
	return p, nil
}

// pwmPeriod converts the wrap and clock divider into the period TinyGo
// expects, in nanoseconds.
func pwmPeriod() uint64 {
	return uint64(float64(PWMWrap+1) * PWMClockDiv * 1e9 / float64(machine.CPUFrequency()))
}

// Set scales level from [0, PWMWrap] onto the slice's own top.
func (p *rp2PWM) Set(level uint16) {
	p.level = clampLevel(level)
	p.group.Set(p.ch, uint32(p.level)*p.group.Top()/PWMWrap)
}

func (p *rp2PWM) Level() uint16 { return p.level }

// ------------------------------ I2C ------------------------------------------

// NewI2C configures I2C1 for the display at I2CFrequency.
func NewI2C(sda, scl machine.Pin) (drivers.I2C, error) {
	bus := machine.I2C1
	err := bus.Configure(machine.I2CConfig{
		Frequency: I2CFrequency,
		SDA:       sda,
		SCL:       scl,
	})
	if err != nil {
		return nil, errors.New("configure i2c: " + err.Error())
	}
	return bus, nil
}

// ----------------------------- Clock -----------------------------------------

var boot = time.Now()

type rp2Clock struct{}

// NewClock returns the uptime clock. Time zero is package initialization,
// which happens before main runs.
func NewClock() Clock { return rp2Clock{} }

func (rp2Clock) Now() time.Duration { return time.Since(boot) }
