package emd

// ByteLength is the number of bits in a byte.
const ByteLength = 8

// BytesToBits expands each byte into 8 bits, most significant first.
// Each element of the result is 0 or 1.
func BytesToBits(data []byte) []byte {
	bits := make([]byte, 0, len(data)*ByteLength)
	for _, b := range data {
		for i := ByteLength - 1; i >= 0; i-- {
			bits = append(bits, (b>>i)&1)
		}
	}
	return bits
}

// BitsToBytes packs complete groups of 8 bits into bytes. A trailing partial
// group is dropped, not padded.
func BitsToBytes(bits []byte) []byte {
	out := make([]byte, 0, len(bits)/ByteLength)
	for i := 0; i+ByteLength <= len(bits); i += ByteLength {
		var b byte
		for j := 0; j < ByteLength; j++ {
			b = (b << 1) | (bits[i+j] & 1)
		}
		out = append(out, b)
	}
	return out
}

// DigitsFromBits splits bits into big-endian groups of bitsPerDigit bits and
// returns their unsigned values. Only the final group is zero-padded when short.
func DigitsFromBits(bits []byte, bitsPerDigit int) []int {
	if bitsPerDigit < 1 {
		return nil
	}
	digits := make([]int, 0, (len(bits)+bitsPerDigit-1)/bitsPerDigit)
	for i := 0; i < len(bits); i += bitsPerDigit {
		v := 0
		for j := 0; j < bitsPerDigit; j++ {
			v <<= 1
			if i+j < len(bits) {
				v |= int(bits[i+j] & 1)
			}
		}
		digits = append(digits, v)
	}
	return digits
}

// BitsFromDigits expands every digit to exactly bitsPerDigit bits and truncates
// the concatenation to exactBitCount bits, discarding the padding introduced by
// DigitsFromBits.
//
// Digits read from a cover that never carried a secret can exceed
// 2^bitsPerDigit-1; only their low bitsPerDigit bits are kept so every digit
// contributes the same width.
func BitsFromDigits(digits []int, bitsPerDigit, exactBitCount int) []byte {
	bits := make([]byte, 0, len(digits)*bitsPerDigit)
	for _, d := range digits {
		for i := bitsPerDigit - 1; i >= 0; i-- {
			bits = append(bits, byte(d>>i)&1)
		}
	}
	if exactBitCount < 0 {
		exactBitCount = 0
	}
	if exactBitCount < len(bits) {
		bits = bits[:exactBitCount]
	}
	return bits
}
