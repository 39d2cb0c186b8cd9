package imaging

import (
	"image"

	"github.com/ironsheep/emd-stegano/internal/emd"
)

// GrayPlane adapts an *image.Gray to emd.PixelPlane.
//
// Reads are safe for concurrent use; writes must be synchronized by the caller.
type GrayPlane struct {
	img *image.Gray
}

var _ emd.PixelPlane = (*GrayPlane)(nil)

// NewGrayPlane wraps img without copying it.
func NewGrayPlane(img *image.Gray) *GrayPlane {
	return &GrayPlane{img: img}
}

// Width returns the plane width in pixels.
func (p *GrayPlane) Width() int { return p.img.Bounds().Dx() }

// Height returns the plane height in pixels.
func (p *GrayPlane) Height() int { return p.img.Bounds().Dy() }

// Gray returns the sample at (x, y).
func (p *GrayPlane) Gray(x, y int) (uint8, error) {
	if err := p.check(x, y); err != nil {
		return 0, err
	}
	origin := p.img.Bounds().Min
	return p.img.Pix[p.img.PixOffset(origin.X+x, origin.Y+y)], nil
}

// SetGray stores v at (x, y).
func (p *GrayPlane) SetGray(x, y int, v uint8) error {
	if err := p.check(x, y); err != nil {
		return err
	}
	origin := p.img.Bounds().Min
	p.img.Pix[p.img.PixOffset(origin.X+x, origin.Y+y)] = v
	return nil
}

// Image returns the underlying image. Changes made through the plane are
// visible in it.
func (p *GrayPlane) Image() *image.Gray {
	return p.img
}

// Clone returns a deep copy of the plane.
func (p *GrayPlane) Clone() *GrayPlane {
	c := &image.Gray{
		Pix:    make([]uint8, len(p.img.Pix)),
		Stride: p.img.Stride,
		Rect:   p.img.Rect,
	}
	copy(c.Pix, p.img.Pix)
	return &GrayPlane{img: c}
}

func (p *GrayPlane) check(x, y int) error {
	w, h := p.Width(), p.Height()
	if x < 0 || x >= w || y < 0 || y >= h {
		return &emd.OutOfBoundsError{X: x, Y: y, Width: w, Height: h}
	}
	return nil
}
