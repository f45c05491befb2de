package compress

// NoOpName selects a plain copy.
const NoOpName = "copy"

// NoOpCompressor copies data unchanged.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor returns the pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

func (NoOpCompressor) Name() string { return NoOpName }
func (NoOpCompressor) Ext() string  { return "" }

// Compress returns a copy of data.
func (NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}

// Decompress returns a copy of data.
func (NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) > MaxDecodedSize {
		return nil, ErrTooLarge
	}
	return append([]byte(nil), data...), nil
}
