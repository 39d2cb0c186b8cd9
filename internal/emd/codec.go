package emd

import "fmt"

// GroupEvent describes one carrier group visited by Hide or Extract. It is
// delivered to the trace callback installed with WithTrace.
type GroupEvent struct {
	Index     int     // digit index
	Origin    Point   // first pixel of the group
	Digit     int     // digit written (Hide) or read (Extract)
	Before    []uint8 // samples before embedding; nil for Extract
	After     []uint8 // samples after embedding, or as read by Extract
	Fallbacks int     // boundary fallbacks used by Embed
}

// Option configures a Codec.
type Option func(*Codec)

// WithTrace installs a callback invoked for every carrier group. The slices in
// the event are owned by the callee once delivered.
func WithTrace(fn func(GroupEvent)) Option {
	return func(c *Codec) {
		c.trace = fn
	}
}

// Codec hides and extracts secrets with a fixed group size.
type Codec struct {
	params Params
	trace  func(GroupEvent)
}

// New creates a Codec for group size n.
func New(n int, opts ...Option) (*Codec, error) {
	p, err := NewParams(n)
	if err != nil {
		return nil, err
	}
	c := &Codec{params: p}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Params returns the codec configuration.
func (c *Codec) Params() Params {
	return c.params
}

// HideStats summarises one Hide call.
type HideStats struct {
	Bytes             int `json:"bytes"`
	Bits              int `json:"bits"`
	Digits            int `json:"digits"`
	Unchanged         int `json:"unchanged"`          // groups already carrying their digit
	Adjusted          int `json:"adjusted"`           // groups that needed a change
	BoundaryFallbacks int `json:"boundary_fallbacks"` // forced moves off a saturated sample
}

// Hide embeds secret into plane, mutating it in place.
//
// It fails with a *CapacityError before touching any sample when the plane
// cannot hold every required digit. Digits are written in increasing index
// order into non-overlapping groups.
func (c *Codec) Hide(plane PixelPlane, secret []byte) (*HideStats, error) {
	p := c.params
	bitStream := BytesToBits(secret)
	required := p.RequiredDigits(len(bitStream))

	width, height := plane.Width(), plane.Height()
	usable := p.GroupCapacity(width, height) * p.N
	if width*height < required*p.N || usable < required*p.N {
		return nil, &CapacityError{Required: required * p.N, Available: usable}
	}

	digits := DigitsFromBits(bitStream, p.BitsPerDigit)
	groupsPerRow := GroupsPerRow(width, p.N)
	stats := &HideStats{
		Bytes:  len(secret),
		Bits:   len(bitStream),
		Digits: len(digits),
	}

	for i, digit := range digits {
		origin := GroupOrigin(i, groupsPerRow, p.N)
		before, err := readGroup(plane, origin, p.N)
		if err != nil {
			return stats, fmt.Errorf("failed to read group %d: %w", i, err)
		}

		after := make([]uint8, len(before))
		copy(after, before)
		fallbacks := p.Embed(after, digit)

		if err := writeGroup(plane, origin, before, after); err != nil {
			return stats, fmt.Errorf("failed to write group %d: %w", i, err)
		}

		if p.DigitOf(before) == digit {
			stats.Unchanged++
		} else {
			stats.Adjusted++
		}
		stats.BoundaryFallbacks += fallbacks

		if c.trace != nil {
			c.trace(GroupEvent{
				Index:     i,
				Origin:    origin,
				Digit:     digit,
				Before:    before,
				After:     after,
				Fallbacks: fallbacks,
			})
		}
	}

	return stats, nil
}

// Extract reads length bytes back out of plane.
//
// It reads ceil(length*8 / BitsPerDigit) groups in increasing index order. No
// capacity check is made up front: a group past the plane extent surfaces as an
// *OutOfBoundsError from the plane.
func (c *Codec) Extract(plane PixelPlane, length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	p := c.params
	bitCount := length * ByteLength
	required := p.RequiredDigits(bitCount)
	if required == 0 {
		return []byte{}, nil
	}

	width, height := plane.Width(), plane.Height()
	groupsPerRow := GroupsPerRow(width, p.N)
	if groupsPerRow == 0 {
		return nil, &OutOfBoundsError{X: p.N - 1, Y: 0, Width: width, Height: height}
	}

	digits := make([]int, 0, required)
	for i := 0; i < required; i++ {
		origin := GroupOrigin(i, groupsPerRow, p.N)
		group, err := readGroup(plane, origin, p.N)
		if err != nil {
			return nil, fmt.Errorf("failed to read group %d: %w", i, err)
		}
		digit := p.DigitOf(group)
		digits = append(digits, digit)

		if c.trace != nil {
			c.trace(GroupEvent{Index: i, Origin: origin, Digit: digit, After: group})
		}
	}

	return BitsToBytes(BitsFromDigits(digits, p.BitsPerDigit, bitCount)), nil
}
