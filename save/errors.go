package save

import (
	"errors"

	"github.com/joshuapare/hadeskit/internal/format"
)

var (
	// ErrTruncated indicates a field or declared length ran past the end of the file.
	ErrTruncated = format.ErrTruncated

	// ErrInvalidLength indicates a negative length or count field.
	ErrInvalidLength = format.ErrInvalidLength

	// ErrSizeOverflow indicates the encoded metadata does not fit the envelope.
	ErrSizeOverflow = format.ErrSizeOverflow

	// ErrStreamTooLong indicates the script state has more than 255 values.
	ErrStreamTooLong = format.ErrStreamTooLong

	// ErrChecksumMismatch is returned by Verify.
	ErrChecksumMismatch = format.ErrChecksumMismatch

	// ErrInvalidConfig indicates a Config that cannot describe an envelope.
	ErrInvalidConfig = errors.New("save: invalid config")
)
