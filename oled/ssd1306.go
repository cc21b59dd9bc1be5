//go:build rp2040 || rp2350

package oled

import (
	"github.com/harveysanders/joystickatv/hal"
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"
)

// NewSSD1306 brings up the 128x64 panel on bus and blanks it.
func NewSSD1306(bus drivers.I2C) (*Canvas, error) {
	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Width:    hal.DisplayWidth,
		Height:   hal.DisplayHeight,
		Address:  hal.DisplayAddress,
		VccState: ssd1306.SWITCHCAPVCC,
	})

	c := New(dev)
	if err := bringUp(c); err != nil {
		return nil, err
	}
	return c, nil
}
