package stego

import (
	"fmt"

	"github.com/ironsheep/emd-stegano/internal/emd"
	"github.com/ironsheep/emd-stegano/internal/imaging"
)

// DefaultInfoMaxN is the largest group size listed by Info when none is given.
const DefaultInfoMaxN = 8

// CapacityRow is the capacity of an image at one group size.
type CapacityRow struct {
	emd.Params
	Groups int `json:"groups"` // usable carrier groups
	Bytes  int `json:"bytes"`  // whole bytes that fit
}

// InfoReport describes an image as a cover.
type InfoReport struct {
	*imaging.ImageInfo
	Capacity []CapacityRow `json:"capacity"`
}

// Info reports metadata for the image at path together with its capacity
// for every group size from 1 to maxN.
func Info(path string, maxN int) (*InfoReport, error) {
	if maxN < 1 {
		return nil, fmt.Errorf("%w: max group size %d", emd.ErrInvalidGroupSize, maxN)
	}

	info, err := imaging.LoadImageInfo(path)
	if err != nil {
		return nil, err
	}

	rows := make([]CapacityRow, 0, maxN)
	for n := 1; n <= maxN; n++ {
		p, err := emd.NewParams(n)
		if err != nil {
			return nil, err
		}
		rows = append(rows, CapacityRow{
			Params: p,
			Groups: p.GroupCapacity(info.Width, info.Height),
			Bytes:  p.ByteCapacity(info.Width, info.Height),
		})
	}

	return &InfoReport{ImageInfo: info, Capacity: rows}, nil
}
