package lua

import "github.com/joshuapare/hadeskit/internal/format"

var (
	// ErrTruncated indicates a value or declared length ran past the end of the input.
	ErrTruncated = format.ErrTruncated

	// ErrInvalidLength indicates a negative string length or table count.
	ErrInvalidLength = format.ErrInvalidLength

	// ErrStreamTooLong indicates a Stream with more than 255 values was marshaled.
	ErrStreamTooLong = format.ErrStreamTooLong
)
