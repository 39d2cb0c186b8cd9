package emd

import (
	"unicode"
	"unicode/utf8"
)

// DefaultTolerance is the fraction of printable characters a window needs to
// be accepted by FindPrintable.
const DefaultTolerance = 0.90

// Match is a printable window found by FindPrintable.
type Match struct {
	Bytes    []byte `json:"bytes"`
	Offset   int    `json:"offset"`    // byte offset in the shifted stream
	BitShift int    `json:"bit_shift"` // bits dropped from the front before packing
}

// FindPrintable looks for the first window of length bytes whose printable
// character count divided by length reaches tolerance.
//
// The bit stream of data is re-packed at each shift 0..7 so that text which
// does not start on a byte boundary is still found. Windows are decoded as
// UTF-8 permissively: invalid sequences are dropped and simply lower the score.
// No match is a normal outcome on images that carry nothing.
func FindPrintable(data []byte, length int, tolerance float64) (Match, bool) {
	if length < 1 {
		return Match{}, false
	}

	bitStream := BytesToBits(data)
	for shift := 0; shift < ByteLength && shift < len(bitStream); shift++ {
		raw := data
		if shift > 0 {
			raw = BitsToBytes(bitStream[shift:])
		}
		for i := 0; i+length <= len(raw); i++ {
			window := raw[i : i+length]
			if printableCount(window) >= tolerance*float64(length) {
				found := make([]byte, length)
				copy(found, window)
				return Match{Bytes: found, Offset: i, BitShift: shift}, true
			}
		}
	}
	return Match{}, false
}

// printableCount counts printable runes in b, skipping invalid UTF-8 bytes.
func printableCount(b []byte) float64 {
	count := 0
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		if r == utf8.RuneError && size == 1 {
			continue
		}
		if unicode.IsPrint(r) {
			count++
		}
	}
	return float64(count)
}
