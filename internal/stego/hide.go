package stego

import (
	"fmt"
	"math"

	"github.com/ironsheep/emd-stegano/internal/emd"
	"github.com/ironsheep/emd-stegano/internal/imaging"
	"github.com/ironsheep/emd-stegano/internal/payload"
)

// HideRequest describes one embedding.
type HideRequest struct {
	// Input is the cover image path.
	Input string

	// Output is the stego image path. When empty it is derived from Input
	// with Suffix.
	Output string
	Suffix string

	// N is the group size.
	N int

	// Secret is the payload, embedded as-is unless Compress is set.
	Secret   []byte
	Compress bool

	// DiffMap, when set, is a path that receives a black image with every
	// modified pixel in white.
	DiffMap string

	// Trace receives every carrier group visited.
	Trace func(emd.GroupEvent)
}

// HideReport is the outcome of Hide.
type HideReport struct {
	Output     string                 `json:"output"`
	Params     emd.Params             `json:"params"`
	Stats      *emd.HideStats         `json:"stats"`
	Length     int                    `json:"length"` // byte length to extract
	Compressed bool                   `json:"compressed"`
	Converted  bool                   `json:"converted"` // cover was not grayscale
	Lossy      bool                   `json:"lossy"`     // output format alters samples
	Distortion *imaging.CompareResult `json:"distortion"`
	PSNR       string                 `json:"psnr_db"`
	DiffMap    string                 `json:"diff_map,omitempty"`
}

// Hide embeds req.Secret into the cover and writes the stego image.
//
// Nothing is written when the cover is too small: the codec reports a
// *emd.CapacityError before touching the plane.
func Hide(req HideRequest) (*HideReport, error) {
	opts := []emd.Option{}
	if req.Trace != nil {
		opts = append(opts, emd.WithTrace(req.Trace))
	}
	codec, err := emd.New(req.N, opts...)
	if err != nil {
		return nil, err
	}

	secret := req.Secret
	if req.Compress {
		secret = payload.Compress(secret)
	}

	img, err := imaging.Load(req.Input)
	if err != nil {
		return nil, err
	}
	cover := img.Plane.Clone()

	stats, err := codec.Hide(img.Plane, secret)
	if err != nil {
		return nil, err
	}

	output := req.Output
	if output == "" {
		output = imaging.DefaultOutputPath(req.Input, req.Suffix)
	}
	if err := imaging.Save(img.Plane.Image(), output); err != nil {
		return nil, err
	}

	cmp, err := imaging.Compare(cover, img.Plane)
	if err != nil {
		return nil, err
	}

	report := &HideReport{
		Output:     output,
		Params:     codec.Params(),
		Stats:      stats,
		Length:     len(secret),
		Compressed: req.Compress,
		Converted:  img.Converted,
		Lossy:      imaging.IsLossy(output),
		Distortion: cmp,
		PSNR:       FormatPSNR(cmp.PSNR),
	}

	if req.DiffMap != "" {
		diff, err := imaging.DiffMap(cover, img.Plane)
		if err != nil {
			return nil, err
		}
		if err := imaging.Save(diff, req.DiffMap); err != nil {
			return nil, fmt.Errorf("diff map: %w", err)
		}
		report.DiffMap = req.DiffMap
	}

	return report, nil
}

// FormatPSNR renders a PSNR value in dB; identical images read "inf".
func FormatPSNR(psnr float64) string {
	if math.IsInf(psnr, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", psnr)
}
