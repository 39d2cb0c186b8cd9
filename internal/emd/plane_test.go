package emd

import "math/rand"

// memPlane is an in-memory PixelPlane used by the tests.
type memPlane struct {
	w, h int
	pix  []uint8
}

func newMemPlane(w, h int) *memPlane {
	return &memPlane{w: w, h: h, pix: make([]uint8, w*h)}
}

// newRandomPlane fills a plane with deterministic noise that includes the
// saturated values 0 and 255.
func newRandomPlane(w, h int, seed int64) *memPlane {
	p := newMemPlane(w, h)
	r := rand.New(rand.NewSource(seed))
	for i := range p.pix {
		switch r.Intn(10) {
		case 0:
			p.pix[i] = 0
		case 1:
			p.pix[i] = 255
		default:
			p.pix[i] = uint8(r.Intn(256))
		}
	}
	return p
}

func (p *memPlane) Width() int  { return p.w }
func (p *memPlane) Height() int { return p.h }

func (p *memPlane) Gray(x, y int) (uint8, error) {
	if x < 0 || x >= p.w || y < 0 || y >= p.h {
		return 0, &OutOfBoundsError{X: x, Y: y, Width: p.w, Height: p.h}
	}
	return p.pix[y*p.w+x], nil
}

func (p *memPlane) SetGray(x, y int, v uint8) error {
	if x < 0 || x >= p.w || y < 0 || y >= p.h {
		return &OutOfBoundsError{X: x, Y: y, Width: p.w, Height: p.h}
	}
	p.pix[y*p.w+x] = v
	return nil
}

func (p *memPlane) clone() *memPlane {
	c := &memPlane{w: p.w, h: p.h, pix: make([]uint8, len(p.pix))}
	copy(c.pix, p.pix)
	return c
}
