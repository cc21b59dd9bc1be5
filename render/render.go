// Package render draws one frame per tick: a border and a square that
// follows the joystick.
package render

import "github.com/harveysanders/joystickatv/joystick"

const (
	// SquareSize is the side of the cursor square in pixels.
	SquareSize = 8
	// BorderRadius is the radius of the circular border.
	BorderRadius = 30
	// BorderInset is the offset of the rectangular border from the top and
	// left edges. The right edge matches it; the bottom edge sits two rows
	// lower.
	BorderInset = 3

	// placementCenter is the reading that places the square at rest. It is
	// one above joystick.Center.
	placementCenter = 2048
)

// Canvas is the drawing surface. Rect takes the top row before the left
// column.
type Canvas interface {
	Size() (width, height int16)
	Fill(on bool)
	Rect(top, left, width, height int16, on, fill bool)
	Circle(cx, cy, r int16, on bool)
	Send() error
}

type Renderer struct {
	c       Canvas
	width   int
	height  int
	size    int
	centerX int
	centerY int
}

// New returns a Renderer for a square of the given size. The rest position
// is computed once from the canvas size.
func New(c Canvas, size int) *Renderer {
	w, h := c.Size()
	return &Renderer{
		c:       c,
		width:   int(w),
		height:  int(h),
		size:    size,
		centerX: (int(w) - size) / 2,
		centerY: (int(h) - size) / 2,
	}
}

// Center returns the rest position of the square.
func (r *Renderer) Center() (x, y int) { return r.centerX, r.centerY }

// Position maps a sample to the square's top-left corner. Y is inverted so
// pushing the stick up moves the square up.
func (r *Renderer) Position(s joystick.Sample) (x, y int) {
	x = r.centerX + (int(s.X)-placementCenter)*r.centerX/placementCenter
	y = r.centerY + (placementCenter-int(s.Y))*r.centerY/placementCenter
	return x, y
}

// Frame draws the border and the square for s, sends the buffer to the
// panel and blanks the buffer for the next frame. The buffer is blanked even
// when the send fails.
func (r *Renderer) Frame(s joystick.Sample, borderActive bool) error {
	x, y := r.Position(s)

	r.drawBorder(borderActive)
	r.drawSquare(y, x)

	err := r.c.Send()
	r.c.Fill(false)
	return err
}

func (r *Renderer) drawBorder(circle bool) {
	if circle {
		r.c.Circle(int16(r.width/2), int16(r.height/2), BorderRadius, true)
		return
	}
	r.c.Rect(BorderInset, BorderInset, int16(r.width-2*BorderInset), int16(r.height-4), true, false)
}

func (r *Renderer) drawSquare(top, left int) {
	r.c.Rect(int16(top), int16(left), int16(r.size), int16(r.size), true, false)
}
