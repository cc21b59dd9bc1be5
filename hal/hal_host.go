//go:build !rp2040 && !rp2350

package hal

import (
	"image/color"
	"sync"
	"time"
)

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements IRQPin for host-side tests.
type FakePin struct {
	mu      sync.Mutex
	number  int
	level   bool
	output  bool
	pull    Pull
	irqEdge Edge
	irqFunc func(pin int)
}

func NewFakePin(n int) *FakePin { return &FakePin{number: n} }

func (p *FakePin) ConfigureInput(pull Pull) error {
	p.mu.Lock()
	p.output = false
	p.pull = pull
	// An idle pulled-up input reads high.
	p.level = pull == PullUp
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.output = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *FakePin) Number() int { return p.number }

func (p *FakePin) IsOutput() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.output
}

func (p *FakePin) Pull() Pull {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pull
}

func (p *FakePin) SetIRQ(edge Edge, handler func(pin int)) error {
	p.mu.Lock()
	p.irqEdge = edge
	p.irqFunc = handler
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ClearIRQ() error {
	p.mu.Lock()
	p.irqEdge = EdgeNone
	p.irqFunc = nil
	p.mu.Unlock()
	return nil
}

// IRQEdge reports the edge the pin was armed with.
func (p *FakePin) IRQEdge() Edge {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.irqEdge
}

// Press drives a pulled-up button low and back high, calling the handler
// for each transition that matches the armed edge.
func (p *FakePin) Press() {
	p.drive(false)
	p.drive(true)
}

func (p *FakePin) drive(level bool) {
	p.mu.Lock()
	old := p.level
	p.level = level
	h := p.irqFunc
	want := false
	switch p.irqEdge {
	case EdgeFalling:
		want = old && !level
	case EdgeRising:
		want = !old && level
	case EdgeBoth:
		want = old != level
	}
	p.mu.Unlock()
	if want && h != nil {
		h(p.number)
	}
}

// ------------------------------ ADC (host) -----------------------------------

// FakeADC returns fixed per-channel values and records which channel each
// read came from.
type FakeADC struct {
	mu       sync.Mutex
	values   map[int]uint16
	selected int
	reads    []int
}

func NewFakeADC() *FakeADC { return &FakeADC{values: make(map[int]uint16)} }

// Put sets the value returned for channel. Values are clamped to ADCMax.
func (a *FakeADC) Put(channel int, v uint16) {
	if v > ADCMax {
		v = ADCMax
	}
	a.mu.Lock()
	a.values[channel] = v
	a.mu.Unlock()
}

func (a *FakeADC) Select(channel int) {
	a.mu.Lock()
	a.selected = channel
	a.mu.Unlock()
}

func (a *FakeADC) Read() uint16 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reads = append(a.reads, a.selected)
	return a.values[a.selected]
}

func (a *FakeADC) Selected() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selected
}

// Reads returns the channels read so far, in order.
func (a *FakeADC) Reads() []int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]int(nil), a.reads...)
}

// ------------------------------ PWM (host) -----------------------------------

// FakePWM stores the last level and counts writes.
type FakePWM struct {
	mu     sync.Mutex
	level  uint16
	writes int
}

func (p *FakePWM) Set(level uint16) {
	p.mu.Lock()
	p.level = clampLevel(level)
	p.writes++
	p.mu.Unlock()
}

func (p *FakePWM) Level() uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *FakePWM) Writes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes
}

// ----------------------------- Clock (host) ----------------------------------

// FakeClock is a manually advanced uptime clock starting at boot.
type FakeClock struct {
	mu  sync.Mutex
	now time.Duration
}

func (c *FakeClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	c.mu.Unlock()
}

func (c *FakeClock) Set(d time.Duration) {
	c.mu.Lock()
	c.now = d
	c.mu.Unlock()
}

// ---------------------------- Display (host) ---------------------------------

// MemoryDisplay is a monochrome drivers.Displayer backed by a bitmap. Every
// Display call snapshots the bitmap so tests can inspect what reached the
// panel.
type MemoryDisplay struct {
	mu     sync.Mutex
	width  int16
	height int16
	buf    []bool
	sent   [][]bool
}

func NewMemoryDisplay(width, height int16) *MemoryDisplay {
	return &MemoryDisplay{
		width:  width,
		height: height,
		buf:    make([]bool, int(width)*int(height)),
	}
}

func (d *MemoryDisplay) Size() (x, y int16) { return d.width, d.height }

func (d *MemoryDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return
	}
	d.mu.Lock()
	d.buf[int(y)*int(d.width)+int(x)] = c.R != 0 || c.G != 0 || c.B != 0
	d.mu.Unlock()
}

func (d *MemoryDisplay) Display() error {
	d.mu.Lock()
	d.sent = append(d.sent, append([]bool(nil), d.buf...))
	d.mu.Unlock()
	return nil
}

func (d *MemoryDisplay) ClearBuffer() {
	d.mu.Lock()
	for i := range d.buf {
		d.buf[i] = false
	}
	d.mu.Unlock()
}

// Pixel reports the in-memory (unsent) state of a pixel.
func (d *MemoryDisplay) Pixel(x, y int16) bool {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf[int(y)*int(d.width)+int(x)]
}

// Lit counts pixels that are on in the in-memory bitmap.
func (d *MemoryDisplay) Lit() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, on := range d.buf {
		if on {
			n++
		}
	}
	return n
}

// Frames returns the number of Display calls.
func (d *MemoryDisplay) Frames() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.sent)
}

// SentPixel reports a pixel of the frame sent by the given Display call.
func (d *MemoryDisplay) SentPixel(frame int, x, y int16) bool {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sent[frame][int(y)*int(d.width)+int(x)]
}

// SentLit counts lit pixels in the frame sent by the given Display call.
func (d *MemoryDisplay) SentLit(frame int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, on := range d.sent[frame] {
		if on {
			n++
		}
	}
	return n
}
