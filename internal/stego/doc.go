// Package stego runs complete steganography operations on image files.
//
// Each operation loads an image, converts it to a grayscale plane, runs the
// EMD codec, and returns a report struct with JSON tags. The command-line
// front end prints these reports; the MCP server returns them as tool
// results.
//
// # Operations
//
//   - Info: dimensions, format, saturation counts, and a capacity table
//   - Hide: embed a payload and save the stego image in the output format
//   - Extract: read a known number of bytes for a known group size
//   - Search: sweep group sizes looking for printable text
package stego
