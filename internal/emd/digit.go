package emd

import (
	"fmt"
	"math/bits"
)

// Params is an EMD configuration. N is fixed for the lifetime of one hide or
// extract operation; Base and BitsPerDigit are derived from it.
type Params struct {
	N            int `json:"n"`              // pixels per carrier group
	Base         int `json:"base"`           // 2n+1
	BitsPerDigit int `json:"bits_per_digit"` // floor(log2(Base))
}

// NewParams derives the EMD configuration for group size n.
func NewParams(n int) (Params, error) {
	if n < 1 {
		return Params{}, fmt.Errorf("%w: got %d", ErrInvalidGroupSize, n)
	}
	base := 2*n + 1
	return Params{
		N:            n,
		Base:         base,
		BitsPerDigit: bits.Len(uint(base)) - 1,
	}, nil
}

// RequiredDigits returns ceil(bitCount / BitsPerDigit).
func (p Params) RequiredDigits(bitCount int) int {
	return (bitCount + p.BitsPerDigit - 1) / p.BitsPerDigit
}

// GroupCapacity returns the number of carrier groups a width x height plane holds.
func (p Params) GroupCapacity(width, height int) int {
	if height < 0 {
		return 0
	}
	return GroupsPerRow(width, p.N) * height
}

// ByteCapacity returns the number of whole bytes a width x height plane can carry.
func (p Params) ByteCapacity(width, height int) int {
	return p.GroupCapacity(width, height) * p.BitsPerDigit / ByteLength
}

// DigitOf returns the digit carried by group: (Σ k*group[k-1]) mod Base for
// k = 1..len(group). The result is always in [0, Base).
func (p Params) DigitOf(group []uint8) int {
	sum := 0
	for i, v := range group {
		sum += (i + 1) * int(v)
	}
	return sum % p.Base
}

// Embed adjusts group in place so that DigitOf(group) == target and returns the
// number of boundary fallbacks that were needed.
//
// With no fallback at most one sample changes, by exactly 1. When the sample
// that should move is saturated (255 for an increment, 0 for a decrement) it is
// moved one step the other way and the search runs again on the mutated group;
// each such step is a fallback. The corrective step may land on another sample
// or on the forced one again, which then ends 2 away from its start.
//
// len(group) must equal p.N and target must be in [0, p.Base).
func (p Params) Embed(group []uint8, target int) int {
	if target < 0 || target >= p.Base {
		panic(fmt.Sprintf("emd: digit %d out of range for base %d", target, p.Base))
	}

	fallbacks := 0
	// A forced sample ends at 1 or 254 and cannot be forced again, so at most
	// N fallbacks precede the final direct adjustment.
	for step := 0; step <= p.N; step++ {
		current := p.DigitOf(group)
		if current == target {
			return fallbacks
		}

		s := mod(target-current, p.Base)
		if s <= p.N {
			pos := s - 1
			if group[pos] < 255 {
				group[pos]++
				return fallbacks
			}
			group[pos]--
		} else {
			pos := p.Base - s - 1
			if group[pos] > 0 {
				group[pos]--
				return fallbacks
			}
			group[pos]++
		}
		fallbacks++
	}
	panic(fmt.Sprintf("emd: embedding did not converge after %d boundary fallbacks", fallbacks))
}

func mod(a, m int) int {
	return ((a % m) + m) % m
}
