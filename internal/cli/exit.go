package cli

import (
	"errors"
	"io/fs"

	"github.com/ironsheep/emd-stegano/internal/emd"
	"github.com/ironsheep/emd-stegano/internal/imaging"
	"github.com/ironsheep/emd-stegano/internal/payload"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitUsage        = 2
	ExitInvalidImage = 3
	ExitCapacity     = 4
	ExitOutOfBounds  = 5
	ExitIO           = 6
)

// ExitCode maps err to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	switch {
	case errors.Is(err, ErrUsage),
		errors.Is(err, payload.ErrSource),
		errors.Is(err, emd.ErrInvalidGroupSize),
		errors.Is(err, emd.ErrInvalidLength):
		return ExitUsage
	case errors.Is(err, imaging.ErrInvalidImage):
		return ExitInvalidImage
	case errors.Is(err, emd.ErrCapacity):
		return ExitCapacity
	case errors.Is(err, emd.ErrOutOfBounds):
		return ExitOutOfBounds
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) || errors.Is(err, payload.ErrCorrupt) {
		return ExitIO
	}
	return ExitFailure
}
