package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Name selects S2 block compression.
const S2Name = "s2"

// S2Compressor writes a single S2 block. The block header records the
// decoded length, which is checked before allocating.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor returns the S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

func (S2Compressor) Name() string { return S2Name }
func (S2Compressor) Ext() string  { return ".s2" }

// Compress encodes data as one S2 block.
func (S2Compressor) Compress(data []byte) ([]byte, error) {
	return s2.EncodeBetter(nil, data), nil
}

// Decompress decodes one S2 block.
func (S2Compressor) Decompress(data []byte) ([]byte, error) {
	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n > MaxDecodedSize {
		return nil, fmt.Errorf("s2: %d bytes: %w", n, ErrTooLarge)
	}
	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	return out, nil
}
