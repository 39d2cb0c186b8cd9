package emd

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity is matched by errors.Is for every *CapacityError.
	ErrCapacity = errors.New("insufficient carrier pixels")

	// ErrOutOfBounds is matched by errors.Is for every *OutOfBoundsError.
	ErrOutOfBounds = errors.New("pixel access out of bounds")

	// ErrInvalidGroupSize is returned for a group size n < 1.
	ErrInvalidGroupSize = errors.New("group size must be at least 1")

	// ErrInvalidLength is returned for a negative byte length.
	ErrInvalidLength = errors.New("byte length must not be negative")
)

// CapacityError reports that a plane has fewer usable carrier pixels than a
// secret needs at the chosen group size.
type CapacityError struct {
	Required  int // carrier pixels needed: required digits * n
	Available int // carrier pixels usable at this n
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("image too small: %d pixels available, %d required", e.Available, e.Required)
}

// Is reports whether target is ErrCapacity.
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacity
}

// OutOfBoundsError reports an access to a sample outside the plane.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinates (%d,%d) outside %dx%d plane", e.X, e.Y, e.Width, e.Height)
}

// Is reports whether target is ErrOutOfBounds.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
