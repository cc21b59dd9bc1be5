//go:build !rp2040 && !rp2350

package render

import (
	"errors"
	"testing"

	"github.com/harveysanders/joystickatv/hal"
	"github.com/harveysanders/joystickatv/joystick"
	"github.com/harveysanders/joystickatv/oled"
)

// recCanvas records draw calls in order.
type recCanvas struct {
	calls   []string
	rects   [][4]int16
	circles [][3]int16
	sendErr error
}

func (c *recCanvas) Size() (int16, int16) { return hal.DisplayWidth, hal.DisplayHeight }
func (c *recCanvas) Fill(on bool) {
	if on {
		c.calls = append(c.calls, "fill:on")
		return
	}
	c.calls = append(c.calls, "fill:off")
}
func (c *recCanvas) Rect(top, left, width, height int16, _, _ bool) {
	c.calls = append(c.calls, "rect")
	c.rects = append(c.rects, [4]int16{top, left, width, height})
}
func (c *recCanvas) Circle(cx, cy, r int16, _ bool) {
	c.calls = append(c.calls, "circle")
	c.circles = append(c.circles, [3]int16{cx, cy, r})
}
func (c *recCanvas) Send() error {
	c.calls = append(c.calls, "send")
	return c.sendErr
}

func TestCenterAndRestPosition(t *testing.T) {
	r := New(&recCanvas{}, SquareSize)
	if x, y := r.Center(); x != 60 || y != 28 {
		t.Fatalf("center = (%d,%d), want (60,28)", x, y)
	}
	if x, y := r.Position(joystick.Sample{X: 2048, Y: 2048}); x != 60 || y != 28 {
		t.Fatalf("position = (%d,%d), want (60,28)", x, y)
	}
}

func TestPositionExtremes(t *testing.T) {
	r := New(&recCanvas{}, SquareSize)
	cases := []struct {
		s    joystick.Sample
		x, y int
	}{
		{joystick.Sample{X: 0, Y: 4095}, 0, 1},      // full left, full up
		{joystick.Sample{X: 4095, Y: 0}, 119, 56},   // full right, full down
		{joystick.Sample{X: 0, Y: 0}, 0, 56},        // full left, full down
		{joystick.Sample{X: 2047, Y: 2047}, 60, 28}, // at rest
		{joystick.Sample{X: 2049, Y: 2049}, 60, 28},
		{joystick.Sample{X: 1024, Y: 3072}, 30, 14},
		{joystick.Sample{X: 2000, Y: 2100}, 59, 28}, // truncates toward zero
	}
	for _, c := range cases {
		x, y := r.Position(c.s)
		if x != c.x || y != c.y {
			t.Errorf("Position(%+v) = (%d,%d), want (%d,%d)", c.s, x, y, c.x, c.y)
		}
	}
}

func TestFrameOrderRectangleBorder(t *testing.T) {
	c := &recCanvas{}
	r := New(c, SquareSize)
	if err := r.Frame(joystick.Sample{X: 2048, Y: 2048}, false); err != nil {
		t.Fatalf("Frame: %v", err)
	}

	want := []string{"rect", "rect", "send", "fill:off"}
	if len(c.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", c.calls, want)
	}
	for i := range want {
		if c.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", c.calls, want)
		}
	}
	if c.rects[0] != [4]int16{3, 3, 122, 60} {
		t.Errorf("border = %v, want [3 3 122 60]", c.rects[0])
	}
	// top = square_y, left = square_x
	if c.rects[1] != [4]int16{28, 60, 8, 8} {
		t.Errorf("square = %v, want [28 60 8 8]", c.rects[1])
	}
}

func TestFrameCircleBorder(t *testing.T) {
	c := &recCanvas{}
	r := New(c, SquareSize)
	if err := r.Frame(joystick.Sample{X: 4095, Y: 0}, true); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if len(c.circles) != 1 || c.circles[0] != [3]int16{64, 32, BorderRadius} {
		t.Fatalf("circles = %v, want one at (64,32) r=30", c.circles)
	}
	if c.calls[0] != "circle" || c.calls[1] != "rect" {
		t.Fatalf("calls = %v, want border before square", c.calls)
	}
	if c.rects[0] != [4]int16{56, 119, 8, 8} {
		t.Errorf("square = %v, want [56 119 8 8]", c.rects[0])
	}
}

func TestFrameClearsAfterSendError(t *testing.T) {
	boom := errors.New("nack")
	c := &recCanvas{sendErr: boom}
	r := New(c, SquareSize)
	if err := r.Frame(joystick.Sample{X: 2048, Y: 2048}, false); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if c.calls[len(c.calls)-1] != "fill:off" {
		t.Fatalf("calls = %v, buffer not cleared after failed send", c.calls)
	}
}

func TestFramePixels(t *testing.T) {
	d := hal.NewMemoryDisplay(hal.DisplayWidth, hal.DisplayHeight)
	r := New(oled.New(d), SquareSize)
	if err := r.Frame(joystick.Sample{X: 0, Y: 4095}, false); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if d.Frames() != 1 {
		t.Fatalf("frames = %d, want 1", d.Frames())
	}
	// Square in the top-left corner, border inset by 3.
	for _, p := range [][2]int16{{0, 1}, {7, 1}, {0, 8}, {7, 8}, {3, 3}, {124, 3}, {3, 62}, {124, 62}} {
		if !d.SentPixel(0, p[0], p[1]) {
			t.Errorf("sent pixel (%d,%d) off, want on", p[0], p[1])
		}
	}
	if d.SentPixel(0, 3, 63) || d.SentPixel(0, 125, 3) {
		t.Error("border drawn outside its rectangle")
	}
	if d.Lit() != 0 {
		t.Fatal("buffer should be blank after the frame")
	}
}
