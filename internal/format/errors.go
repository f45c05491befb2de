package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a field.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrInvalidLength indicates a length or count field was negative.
	ErrInvalidLength = errors.New("format: invalid length")
	// ErrSizeOverflow indicates encoded metadata does not fit the envelope.
	ErrSizeOverflow = errors.New("format: envelope size overflow")
	// ErrStreamTooLong indicates a value-stream has more than MaxStreamValues values.
	ErrStreamTooLong = errors.New("format: value-stream too long")
	// ErrChecksumMismatch indicates the stored checksum differs from the computed one.
	ErrChecksumMismatch = errors.New("format: checksum mismatch")
)
