// Package app composes the sampler, LED policy, button state machine and
// renderer into the fixed-rate polling loop.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/harveysanders/joystickatv/control"
	"github.com/harveysanders/joystickatv/hal"
	"github.com/harveysanders/joystickatv/joystick"
	"github.com/harveysanders/joystickatv/leds"
	"github.com/harveysanders/joystickatv/render"
)

var (
	ErrInvalidTick   = errors.New("tick period must be positive")
	ErrInvalidSquare = errors.New("square size must be positive")
)

type Config struct {
	TickPeriod   time.Duration
	SquareSize   int
	DebounceMode control.DebounceMode
	// SampleLogEvery logs the raw sample at debug level every n ticks.
	// Zero disables it.
	SampleLogEvery int
}

func DefaultConfig() Config {
	return Config{
		TickPeriod:     100 * time.Millisecond,
		SquareSize:     render.SquareSize,
		DebounceMode:   control.DebounceRejected,
		SampleLogEvery: 10,
	}
}

// Hardware is everything the loop touches on the board.
type Hardware struct {
	ADC     hal.ADC
	Clock   hal.Clock
	Canvas  render.Canvas
	LEDs    leds.Bank
	Click   hal.IRQPin
	ButtonA hal.IRQPin
}

type App struct {
	cfg    Config
	logger *slog.Logger

	state    *control.State
	sampler  *joystick.Sampler
	policy   *leds.Policy
	renderer *render.Renderer

	last  control.Snapshot
	ticks uint64
}

// New wires the components together and arms the button interrupts. The
// PWM outputs must already be configured.
func New(cfg Config, hw Hardware, logger *slog.Logger) (*App, error) {
	if cfg.TickPeriod <= 0 {
		return nil, ErrInvalidTick
	}
	if cfg.SquareSize <= 0 {
		return nil, ErrInvalidSquare
	}

	state := control.NewState()
	sampler := joystick.NewSampler(hw.ADC)
	m := control.NewMachine(state, hw.Clock, sampler, hw.LEDs, hw.Click.Number(), hw.ButtonA.Number())
	m.SetDebounceMode(cfg.DebounceMode)
	if err := m.Configure(hw.Click, hw.ButtonA); err != nil {
		return nil, errors.New("configure buttons: " + err.Error())
	}
	logger.Info("buttons:configured",
		slog.Int("click", hw.Click.Number()),
		slog.Int("buttonA", hw.ButtonA.Number()),
	)

	return &App{
		cfg:      cfg,
		logger:   logger,
		state:    state,
		sampler:  sampler,
		policy:   leds.NewPolicy(hw.LEDs, state),
		renderer: render.New(hw.Canvas, cfg.SquareSize),
		last:     state.Snapshot(),
	}, nil
}

// State exposes the interaction flags.
func (a *App) State() *control.State { return a.state }

// Tick runs one iteration of the loop: sample, LEDs, frame.
func (a *App) Tick() {
	s := a.sampler.Read()
	a.policy.Update(s)
	if err := a.renderer.Frame(s, a.state.BorderActive()); err != nil {
		a.logger.Warn("render:send-failed", slog.String("reason", err.Error()))
	}

	a.ticks++
	a.logStateChanges()
	if a.cfg.SampleLogEvery > 0 && a.ticks%uint64(a.cfg.SampleLogEvery) == 0 {
		a.logger.Debug("joystick:sample",
			slog.Uint64("x", uint64(s.X)),
			slog.Uint64("y", uint64(s.Y)),
			slog.Bool("centered", leds.Centered(s)),
		)
	}
}

// logStateChanges reports flag flips made by the button handler since the
// previous tick. The handler itself runs in interrupt context and must not
// log.
func (a *App) logStateChanges() {
	cur := a.state.Snapshot()
	if cur == a.last {
		return
	}
	if cur.BorderActive != a.last.BorderActive || cur.LEDOn != a.last.LEDOn {
		a.logger.Info("click:toggled",
			slog.Bool("circleBorder", cur.BorderActive),
			slog.Bool("ledOn", cur.LEDOn),
		)
	}
	if cur.RGBEnabled != a.last.RGBEnabled {
		a.logger.Info("buttonA:toggled", slog.Bool("rgbEnabled", cur.RGBEnabled))
	}
	a.last = cur
}

// Run ticks every TickPeriod until ctx is done. On the board ctx is never
// cancelled.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("loop:start", slog.Duration("tick", a.cfg.TickPeriod))
	for ctx.Err() == nil {
		a.Tick()
		time.Sleep(a.cfg.TickPeriod)
	}
	return ctx.Err()
}
