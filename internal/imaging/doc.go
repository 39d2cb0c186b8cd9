// Package imaging is the image backend for EMD steganography.
//
// It decodes image files, reduces them to the single 8-bit grayscale plane the
// codec operates on, writes stego images back in the input's format, and
// measures how far a stego image drifted from its cover.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// A GrayPlane always reports coordinates relative to its own top-left corner,
// whatever the bounds of the underlying image.
//
// # Grayscale Conversion
//
// Color images are converted with the ITU-R BT.601 luma weights used by the
// standard library's color.GrayModel:
//
//	Y = 0.299*R + 0.587*G + 0.114*B
//
// Images that already decode as 8-bit grayscale are copied unchanged.
//
// # Output Formats
//
// The codec changes samples by ±1, which survives only lossless encodings.
// PNG, BMP and TIFF outputs are exact. JPEG and GIF outputs are written but
// flagged by IsLossy because their encoders destroy the embedded digits.
//
// # Error Handling
//
// Files that cannot be decoded return an error matching ErrInvalidImage.
// Sample access outside a plane returns an *emd.OutOfBoundsError.
package imaging
