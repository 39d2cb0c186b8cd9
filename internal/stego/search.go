package stego

import (
	"context"

	"github.com/ironsheep/emd-stegano/internal/emd"
	"github.com/ironsheep/emd-stegano/internal/imaging"
)

// SearchRequest describes a blind sweep over group sizes.
type SearchRequest struct {
	Input     string
	Length    int
	MinN      int
	MaxN      int // exclusive
	Tolerance float64
	Workers   int
}

// SearchReport lists every group size whose extracted stream held text.
type SearchReport struct {
	Converted bool              `json:"converted"`
	Results   []emd.SweepResult `json:"results"`
}

// Search runs emd.Sweep over the image at req.Input.
func Search(ctx context.Context, req SearchRequest) (*SearchReport, error) {
	img, err := imaging.Load(req.Input)
	if err != nil {
		return nil, err
	}

	results, err := emd.Sweep(ctx, img.Plane, emd.SweepOptions{
		MinGroupSize: req.MinN,
		MaxGroupSize: req.MaxN,
		Length:       req.Length,
		Tolerance:    req.Tolerance,
		Workers:      req.Workers,
	})
	if err != nil {
		return nil, err
	}

	return &SearchReport{Converted: img.Converted, Results: results}, nil
}
