package payload

import (
	"errors"
	"fmt"
	"os"
)

// ErrSource is returned when the payload source is missing or ambiguous.
var ErrSource = errors.New("exactly one of text or file must be given")

// Source describes where the secret bytes come from.
type Source struct {
	// Text is an inline message, embedded as its UTF-8 bytes.
	Text string

	// File is a path whose raw contents are embedded.
	File string
}

// Read returns the payload bytes for src. Exactly one of Text or File must be
// set; an empty Text with no File is treated as missing.
func Read(src Source) ([]byte, error) {
	switch {
	case src.Text != "" && src.File != "":
		return nil, fmt.Errorf("%w: got both", ErrSource)
	case src.Text != "":
		return []byte(src.Text), nil
	case src.File != "":
		data, err := os.ReadFile(src.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload file: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: got neither", ErrSource)
}

// WriteFile stores extracted bytes at path, replacing any existing file.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write payload file: %w", err)
	}
	return nil
}
