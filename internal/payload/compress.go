package payload

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// ErrCorrupt is returned when bytes to decompress are not a valid zstd frame.
var ErrCorrupt = errors.New("payload is not valid zstd data")

// zstd.Encoder and zstd.Decoder are safe for concurrent use with
// EncodeAll/DecodeAll, so a single pair serves the whole process.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedBestCompression),
		zstd.WithEncoderCRC(false),
		zstd.WithZeroFrames(true),
	)
	if err != nil {
		panic("payload: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("payload: zstd decoder initialization failed: " + err.Error())
	}
}

// Compress returns data as a single zstd frame. The frame omits the content
// checksum; every byte of it costs carrier pixels.
func Compress(data []byte) []byte {
	return zstdEncoder.EncodeAll(data, nil)
}

// Decompress reverses Compress. Extracting with a wrong group size or length
// yields bytes that are not a zstd frame, which surfaces here as an error.
func Decompress(data []byte) ([]byte, error) {
	out, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return out, nil
}
