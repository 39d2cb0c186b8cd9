package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/disintegration/imaging"
)

// ErrInvalidImage is returned when a file does not decode as an image.
var ErrInvalidImage = errors.New("not an image file")

// Image is a decoded image file reduced to a grayscale plane.
type Image struct {
	// Plane holds the 8-bit grayscale samples.
	Plane *GrayPlane

	// Format is the format detected from the file extension, or "unknown".
	Format string

	// ColorModel names the decoded color representation, e.g. "gray", "rgba".
	ColorModel string

	// Converted is true when the source was not already 8-bit grayscale.
	Converted bool
}

// Load decodes the image at path and converts it to grayscale.
//
// # Errors
//
//   - Returns a wrapped os error if the file cannot be opened
//   - Returns an error matching ErrInvalidImage if decoding fails
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	src, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidImage, path, err)
	}

	model := colorModelName(src)
	return &Image{
		Plane:      NewGrayPlane(toGray(src)),
		Format:     formatName(path),
		ColorModel: model,
		Converted:  model != "gray",
	}, nil
}

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Pixels is Width * Height.
	Pixels int `json:"pixels"`

	// Format is the format detected from the file extension.
	Format string `json:"format"`

	// ColorModel names the decoded color representation.
	ColorModel string `json:"color_model"`

	// Grayscale is true when no conversion is needed before embedding.
	Grayscale bool `json:"grayscale"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`

	// Boundary counts samples at 0 or 255 after grayscale conversion.
	Boundary BoundaryStats `json:"boundary"`
}

// LoadImageInfo loads an image and returns metadata about it.
//
// # Format Detection
//
// The format is determined by file extension:
//   - ".png" -> "png"
//   - ".jpg", ".jpeg" -> "jpeg"
//   - ".gif" -> "gif"
//   - ".bmp" -> "bmp"
//   - ".tif", ".tiff" -> "tiff"
//   - Other extensions -> "unknown"
func LoadImageInfo(path string) (*ImageInfo, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	w, h := img.Plane.Width(), img.Plane.Height()
	return &ImageInfo{
		Width:         w,
		Height:        h,
		Pixels:        w * h,
		Format:        img.Format,
		ColorModel:    img.ColorModel,
		Grayscale:     !img.Converted,
		FileSizeBytes: stat.Size(),
		Boundary:      Boundary(img.Plane),
	}, nil
}

// formatName maps the file extension to a short format name.
func formatName(path string) string {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return "unknown"
	}
	switch format {
	case imaging.JPEG:
		return "jpeg"
	case imaging.PNG:
		return "png"
	case imaging.GIF:
		return "gif"
	case imaging.BMP:
		return "bmp"
	case imaging.TIFF:
		return "tiff"
	}
	return "unknown"
}

func colorModelName(img image.Image) string {
	switch img.(type) {
	case *image.Gray:
		return "gray"
	case *image.Gray16:
		return "gray16"
	case *image.RGBA, *image.NRGBA:
		return "rgba"
	case *image.RGBA64, *image.NRGBA64:
		return "rgba64"
	case *image.YCbCr:
		return "ycbcr"
	case *image.CMYK:
		return "cmyk"
	case *image.Paletted:
		return "paletted"
	}
	return "other"
}

// toGray copies src into a new 8-bit grayscale image anchored at (0,0).
func toGray(src image.Image) *image.Gray {
	b := src.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), src, b.Min, draw.Src)
	return gray
}
