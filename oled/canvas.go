// Package oled is the monochrome drawing surface mirrored to the OLED.
// Drawing happens in the driver's buffer; nothing reaches the panel until
// Send.
package oled

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func colorOf(on bool) color.RGBA {
	if on {
		return white
	}
	return black
}

// Canvas wraps a display driver with the primitives the renderer uses.
type Canvas struct {
	d drivers.Displayer
}

func New(d drivers.Displayer) *Canvas {
	return &Canvas{d: d}
}

func (c *Canvas) Size() (width, height int16) { return c.d.Size() }

// Fill sets every pixel of the buffer.
func (c *Canvas) Fill(on bool) {
	if cb, ok := c.d.(interface{ ClearBuffer() }); ok && !on {
		cb.ClearBuffer()
		return
	}
	w, h := c.d.Size()
	_ = tinydraw.FilledRectangle(c.d, 0, 0, w, h, colorOf(on))
}

// Rect draws a width x height rectangle whose top-left pixel is at row top,
// column left. Degenerate sizes draw nothing.
func (c *Canvas) Rect(top, left, width, height int16, on, fill bool) {
	if width <= 0 || height <= 0 {
		return
	}
	if fill {
		_ = tinydraw.FilledRectangle(c.d, left, top, width, height, colorOf(on))
		return
	}
	_ = tinydraw.Rectangle(c.d, left, top, width, height, colorOf(on))
}

// Circle draws the outline of a circle of radius r around (cx, cy).
func (c *Canvas) Circle(cx, cy, r int16, on bool) {
	tinydraw.Circle(c.d, cx, cy, r, colorOf(on))
}

// Send flushes the buffer to the panel.
func (c *Canvas) Send() error {
	return c.d.Display()
}
