package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/histogram"
)

// CompareResult contains the distortion between a cover and a stego plane.
type CompareResult struct {
	TotalPixels   int     `json:"total_pixels"`
	PixelsChanged int     `json:"pixels_changed"`
	MaxDelta      int     `json:"max_delta"`
	MSE           float64 `json:"mse"`

	// PSNR is the peak signal-to-noise ratio in dB. It is +Inf for identical
	// planes; Identical is set in that case so JSON callers need not parse it.
	PSNR      float64 `json:"-"`
	Identical bool    `json:"identical"`
}

// Compare measures how far stego drifted from cover.
//
// PSNR = 20 * log10(255 / sqrt(MSE)) over all samples.
func Compare(cover, stego *GrayPlane) (*CompareResult, error) {
	w, h := cover.Width(), cover.Height()
	if stego.Width() != w || stego.Height() != h {
		return nil, fmt.Errorf("plane sizes differ: %dx%d vs %dx%d", w, h, stego.Width(), stego.Height())
	}

	res := &CompareResult{TotalPixels: w * h}
	var sum float64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a, _ := cover.Gray(x, y)
			b, _ := stego.Gray(x, y)
			d := absDiff(a, b)
			if d == 0 {
				continue
			}
			res.PixelsChanged++
			if d > res.MaxDelta {
				res.MaxDelta = d
			}
			sum += float64(d * d)
		}
	}

	if res.TotalPixels > 0 {
		res.MSE = sum / float64(res.TotalPixels)
	}
	if res.MSE == 0 {
		res.Identical = true
		res.PSNR = math.Inf(1)
		return res, nil
	}
	res.PSNR = 20 * math.Log10(255/math.Sqrt(res.MSE))
	return res, nil
}

// DiffMap renders the samples that differ between cover and stego: changed
// pixels are white, unchanged pixels black. A one-level change is invisible in
// the stego image itself, so this is the only practical way to see where the
// carrier groups were touched.
func DiffMap(cover, stego *GrayPlane) (*image.Gray, error) {
	w, h := cover.Width(), cover.Height()
	if stego.Width() != w || stego.Height() != h {
		return nil, fmt.Errorf("plane sizes differ: %dx%d vs %dx%d", w, h, stego.Width(), stego.Height())
	}

	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a, _ := cover.Gray(x, y)
			b, _ := stego.Gray(x, y)
			if a != b {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return out, nil
}

// BoundaryStats counts samples sitting on a saturation boundary, where only
// one modification direction is available.
type BoundaryStats struct {
	Black int `json:"black"` // samples at 0
	White int `json:"white"` // samples at 255
}

// Boundary counts the saturated samples of a plane.
func Boundary(p *GrayPlane) BoundaryStats {
	hist := histogram.NewRGBAHistogram(p.Image())
	return BoundaryStats{
		Black: hist.R.Bins[0],
		White: hist.R.Bins[255],
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
