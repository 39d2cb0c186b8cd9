package emd

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SweepOptions configures a blind search over group sizes.
type SweepOptions struct {
	MinGroupSize int     // first n tried (inclusive)
	MaxGroupSize int     // last n tried (exclusive)
	Length       int     // printable window length in bytes
	Tolerance    float64 // printable fraction; DefaultTolerance when zero
	Workers      int     // concurrent group sizes; NumCPU when zero
}

// SweepResult is a group size whose extracted stream contained printable text.
type SweepResult struct {
	Params  Params `json:"params"`
	Scanned int    `json:"scanned"` // bytes extracted and scanned at this n
	Match   Match  `json:"match"`
}

// Sweep extracts, for every n in [MinGroupSize, MaxGroupSize), as many whole
// bytes as the plane's groups can carry and scans them with FindPrintable.
// Results are returned in increasing n. Group sizes whose capacity is below
// Length are skipped.
//
// The plane is only read, so group sizes are processed concurrently.
func Sweep(ctx context.Context, plane PixelPlane, opts SweepOptions) ([]SweepResult, error) {
	if opts.MinGroupSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGroupSize, opts.MinGroupSize)
	}
	if opts.Length < 1 {
		return nil, fmt.Errorf("%w: window length %d", ErrInvalidLength, opts.Length)
	}
	if opts.Tolerance == 0 {
		opts.Tolerance = DefaultTolerance
	}
	if opts.Workers < 1 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.MaxGroupSize <= opts.MinGroupSize {
		return nil, nil
	}

	found := make([]*SweepResult, opts.MaxGroupSize-opts.MinGroupSize)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for n := opts.MinGroupSize; n < opts.MaxGroupSize; n++ {
		n := n
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			codec, err := New(n)
			if err != nil {
				return err
			}
			p := codec.Params()
			size := p.ByteCapacity(plane.Width(), plane.Height())
			if size < opts.Length {
				return nil
			}
			data, err := codec.Extract(plane, size)
			if err != nil {
				return fmt.Errorf("n=%d: %w", n, err)
			}
			if m, ok := FindPrintable(data, opts.Length, opts.Tolerance); ok {
				found[n-opts.MinGroupSize] = &SweepResult{Params: p, Scanned: size, Match: m}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]SweepResult, 0, len(found))
	for _, r := range found {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results, nil
}
