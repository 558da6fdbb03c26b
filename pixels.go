package stockbook

import (
	"iter"
	"strconv"
)

// Pixel is a single pixel of a Stamp.
type Pixel struct {
	X, Y  int
	Color Color
}

func (p Pixel) String() string {
	return "(" + strconv.Itoa(p.X) + ", " + strconv.Itoa(p.Y) + ", " + p.Color.String() + ")"
}

// Pixels enumerates the pixels of a Stamp from both ends.
//
// Next walks row-major order from the top-left corner and NextBack walks it
// backwards from the bottom-right corner. Calls may be interleaved freely: every
// pixel is produced exactly once, and once Len reaches zero both ends report
// exhaustion forever.
//
// This type is created by Stamp.Pixels. It is not safe for concurrent use.
type Pixels[S Size] struct {
	stamp     Stamp[S]
	front     cursor
	back      cursor
	remaining int
}

// cursor is a position in a width x height grid.
type cursor struct {
	x, y int
}

func newPixels[S Size](s Stamp[S]) *Pixels[S] {
	wh := s.Size()
	return &Pixels[S]{
		stamp:     s,
		back:      cursor{x: max(wh[0]-1, 0), y: max(wh[1]-1, 0)},
		remaining: wh[0] * wh[1],
	}
}

// Len returns the number of pixels left to produce from both ends combined.
func (p *Pixels[S]) Len() int {
	return p.remaining
}

// Next returns the next pixel from the front.
func (p *Pixels[S]) Next() (Pixel, bool) {
	if p.remaining == 0 {
		return Pixel{}, false
	}
	p.remaining--
	px := p.pixel(p.front)
	p.front.forward(p.stamp.Size())
	return px, true
}

// NextBack returns the next pixel from the back.
func (p *Pixels[S]) NextBack() (Pixel, bool) {
	if p.remaining == 0 {
		return Pixel{}, false
	}
	p.remaining--
	px := p.pixel(p.back)
	p.back.backward(p.stamp.Size())
	return px, true
}

// All returns an iterator that drains the remaining pixels from the front.
func (p *Pixels[S]) All() iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		for {
			px, ok := p.Next()
			if !ok || !yield(px) {
				return
			}
		}
	}
}

// Backward returns an iterator that drains the remaining pixels from the back.
func (p *Pixels[S]) Backward() iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		for {
			px, ok := p.NextBack()
			if !ok || !yield(px) {
				return
			}
		}
	}
}

// pixel reads the pixel under c. remaining > 0 guarantees c is within bounds.
func (p *Pixels[S]) pixel(c cursor) Pixel {
	return Pixel{X: c.x, Y: c.y, Color: p.stamp.ColorAtUnchecked(c.x, c.y)}
}

// forward moves c one pixel in row-major order, wrapping to (0, 0) after the
// last pixel.
func (c *cursor) forward(wh [2]int) {
	c.x++
	if c.x == wh[0] {
		c.x = 0
		c.y++
		if c.y == wh[1] {
			c.y = 0
		}
	}
}

// backward moves c one pixel in reverse row-major order, wrapping to the
// bottom-right corner after (0, 0).
func (c *cursor) backward(wh [2]int) {
	if c.x > 0 {
		c.x--
		return
	}
	c.x = max(wh[0]-1, 0)
	if c.y > 0 {
		c.y--
	} else {
		c.y = max(wh[1]-1, 0)
	}
}
