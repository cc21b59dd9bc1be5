//go:build rp2040 || rp2350

package main

import (
	"context"
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/joystickatv/app"
	"github.com/harveysanders/joystickatv/hal"
	"github.com/harveysanders/joystickatv/leds"
	"github.com/harveysanders/joystickatv/oled"
)

// Board wiring.
const (
	i2cSDA = machine.GP14
	i2cSCL = machine.GP15

	joystickY = machine.ADC0 // GP26, ADC channel 0
	joystickX = machine.ADC1 // GP27, ADC channel 1

	joystickClick = 22
	buttonA       = 5

	ledGreen = 11
	ledBlue  = machine.GP12
	ledRed   = machine.GP13
)

// ledPWM drives both GP12 and GP13.
var ledPWM = machine.PWM6

// logLevel is set with -ldflags "-X main.logLevel=debug".
var logLevel string

func main() {
	// Give the serial monitor a moment to attach.
	time.Sleep(time.Second)

	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: parseLevel(logLevel),
	}))

	bus, err := hal.NewI2C(i2cSDA, i2cSCL)
	if err != nil {
		fatal(logger, "i2c:configure", err)
	}
	canvas, err := oled.NewSSD1306(bus)
	if err != nil {
		fatal(logger, "display:configure", err)
	}
	logger.Info("display:ready", slog.Int("addr", hal.DisplayAddress))

	adc, err := hal.NewADC(joystickY, joystickX)
	if err != nil {
		fatal(logger, "adc:configure", err)
	}

	bank, err := configureLEDs()
	if err != nil {
		fatal(logger, "leds:configure", err)
	}

	click, err := hal.NewPin(joystickClick)
	if err != nil {
		fatal(logger, "buttons:click", err)
	}
	btnA, err := hal.NewPin(buttonA)
	if err != nil {
		fatal(logger, "buttons:a", err)
	}

	a, err := app.New(app.DefaultConfig(), app.Hardware{
		ADC:     adc,
		Clock:   hal.NewClock(),
		Canvas:  canvas,
		LEDs:    bank,
		Click:   click,
		ButtonA: btnA,
	}, logger)
	if err != nil {
		fatal(logger, "app:configure", err)
	}

	// Run only returns if its context ends, which never happens here.
	fatal(logger, "loop:exit", a.Run(context.Background()))
}

func configureLEDs() (leds.Bank, error) {
	blue, err := hal.NewPWM(ledPWM, ledBlue)
	if err != nil {
		return leds.Bank{}, err
	}
	red, err := hal.NewPWM(ledPWM, ledRed)
	if err != nil {
		return leds.Bank{}, err
	}
	// The button state machine configures green as an output.
	green, err := hal.NewPin(ledGreen)
	if err != nil {
		return leds.Bank{}, err
	}
	return leds.Bank{Red: red, Blue: blue, Green: green}, nil
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// fatal logs err and halts. Nothing after a failed bring-up can run.
func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, slog.String("reason", err.Error()))
	panic(msg + ": " + err.Error())
}
