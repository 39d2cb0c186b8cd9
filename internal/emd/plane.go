package emd

// PixelPlane is a 2D single-channel 8-bit sample buffer addressed by (x, y)
// with (0,0) at the top-left corner.
//
// Implementations must return an *OutOfBoundsError from Gray and SetGray when
// (x, y) lies outside [0,Width) x [0,Height). The codec assumes every sample is
// already a grayscale intensity.
type PixelPlane interface {
	Width() int
	Height() int
	Gray(x, y int) (uint8, error)
	SetGray(x, y int, v uint8) error
}

// readGroup copies the n samples starting at origin.
func readGroup(plane PixelPlane, origin Point, n int) ([]uint8, error) {
	group := make([]uint8, n)
	for i := range group {
		v, err := plane.Gray(origin.X+i, origin.Y)
		if err != nil {
			return nil, err
		}
		group[i] = v
	}
	return group, nil
}

// writeGroup stores only the samples that differ from before.
func writeGroup(plane PixelPlane, origin Point, before, after []uint8) error {
	for i := range after {
		if before[i] == after[i] {
			continue
		}
		if err := plane.SetGray(origin.X+i, origin.Y, after[i]); err != nil {
			return err
		}
	}
	return nil
}
