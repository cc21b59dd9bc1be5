// Package control holds the interaction state toggled by the two buttons
// and the edge handler that toggles it.
//
// The handler runs in interrupt context on the board. Flags are atomics so
// the polling loop reads them without locking; the handler body is
// serialized by mu for hosts where callbacks can race each other.
package control

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/harveysanders/joystickatv/hal"
	"github.com/harveysanders/joystickatv/joystick"
	"github.com/harveysanders/joystickatv/leds"
)

// DebounceWindow is the minimum gap between edges for the later edge to
// be acted on.
const DebounceWindow = 2500 * time.Millisecond

// DebounceMode selects which edges move the debounce reference point.
type DebounceMode uint8

const (
	// DebounceRejected moves the reference only on swallowed edges. This
	// is the behaviour the board has always shipped with.
	DebounceRejected DebounceMode = iota
	// DebounceAll moves the reference on every edge, so no two accepted
	// edges are ever closer than DebounceWindow.
	DebounceAll
)

// State is the process-wide interaction state.
type State struct {
	ledOn         atomic.Bool
	rgbEnabled    atomic.Bool
	borderActive  atomic.Bool
	lastInterrupt atomic.Int64 // time.Duration since boot
}

// NewState returns the power-on state: PWM LEDs enabled, digital LED off,
// rectangle border.
func NewState() *State {
	s := &State{}
	s.rgbEnabled.Store(true)
	return s
}

func (s *State) LEDOn() bool        { return s.ledOn.Load() }
func (s *State) RGBEnabled() bool   { return s.rgbEnabled.Load() }
func (s *State) BorderActive() bool { return s.borderActive.Load() }

// LastInterrupt is the uptime of the last edge that was swallowed.
func (s *State) LastInterrupt() time.Duration {
	return time.Duration(s.lastInterrupt.Load())
}

// Snapshot is a copy of the flags at one instant.
type Snapshot struct {
	LEDOn        bool
	RGBEnabled   bool
	BorderActive bool
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		LEDOn:        s.LEDOn(),
		RGBEnabled:   s.RGBEnabled(),
		BorderActive: s.BorderActive(),
	}
}

// Machine routes button edges to state transitions.
type Machine struct {
	state   *State
	clock   hal.Clock
	sampler *joystick.Sampler
	bank    leds.Bank

	clickPin  int
	buttonPin int
	mode      DebounceMode

	mu sync.Mutex
}

// NewMachine returns a Machine acting on state. clickPin and buttonPin are
// the pin numbers of the joystick click and button A.
func NewMachine(state *State, clock hal.Clock, sampler *joystick.Sampler, bank leds.Bank, clickPin, buttonPin int) *Machine {
	return &Machine{
		state:     state,
		clock:     clock,
		sampler:   sampler,
		bank:      bank,
		clickPin:  clickPin,
		buttonPin: buttonPin,
	}
}

// SetDebounceMode must be called before Configure.
func (m *Machine) SetDebounceMode(mode DebounceMode) { m.mode = mode }

// Configure sets both buttons up as pulled-up inputs that call HandleEdge
// on a falling edge, and drives the digital LED from the current state.
func (m *Machine) Configure(click, buttonA hal.IRQPin) error {
	for _, p := range []hal.IRQPin{click, buttonA} {
		if err := p.ConfigureInput(hal.PullUp); err != nil {
			return err
		}
		if err := p.SetIRQ(hal.EdgeFalling, m.HandleEdge); err != nil {
			return err
		}
	}
	return m.bank.Green.ConfigureOutput(m.state.LEDOn())
}

// HandleEdge is the shared button callback. An edge arriving less than
// DebounceWindow after the last recorded one is swallowed and becomes the
// new reference point. With DebounceRejected an accepted edge does not move
// the reference, so the window is anchored to the last rejected edge. In
// both modes an edge within the first DebounceWindow after boot is
// rejected, and both pins share one reference.
func (m *Machine) HandleEdge(pin int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	if now-m.state.LastInterrupt() < DebounceWindow {
		m.state.lastInterrupt.Store(int64(now))
		return
	}
	if m.mode == DebounceAll {
		m.state.lastInterrupt.Store(int64(now))
	}

	switch pin {
	case m.clickPin:
		on := !m.state.ledOn.Load()
		m.state.ledOn.Store(on)
		m.bank.Green.Set(on)
		m.state.borderActive.Store(!m.state.borderActive.Load())
	case m.buttonPin:
		enabled := !m.state.rgbEnabled.Load()
		m.state.rgbEnabled.Store(enabled)
		m.bank.Red.Set(m.freshLevel(enabled, false))
		m.bank.Blue.Set(m.freshLevel(enabled, true))
	}
}

// freshLevel converts the currently selected ADC channel. Both LEDs read
// the same channel, whichever the sampler left selected.
func (m *Machine) freshLevel(enabled, yAxis bool) uint16 {
	if !enabled {
		return 0
	}
	return uint16(joystick.Deviation(m.sampler.ReadSelected(), yAxis))
}
