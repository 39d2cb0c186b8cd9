package imaging

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Save writes img to path, choosing the encoder from the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// IsLossy reports whether the format chosen by path's extension would alter
// individual sample values on encode.
func IsLossy(path string) bool {
	switch formatName(path) {
	case "jpeg", "gif":
		return true
	}
	return false
}

// DefaultOutputPath inserts suffix between the base name and the extension:
// "cover.png" with "_EMD" becomes "cover_EMD.png".
func DefaultOutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + suffix + ext
}
