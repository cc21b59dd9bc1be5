package oled

import "errors"

// bringUp pushes whatever the controller powered up with, then a blank
// frame, so the panel starts dark.
func bringUp(c *Canvas) error {
	if err := c.Send(); err != nil {
		return errors.New("display first send: " + err.Error())
	}
	c.Fill(false)
	if err := c.Send(); err != nil {
		return errors.New("display clear: " + err.Error())
	}
	return nil
}
