// Package buf implements the byte cursor used by the save and value-stream
// codecs: a bounds-checked positional Reader and an appending Writer, both
// little-endian.
package buf

import (
	"fmt"

	"github.com/joshuapare/hadeskit/internal/format"
)

// Reader decodes fixed-width and length-prefixed fields from a byte slice.
// Reads never panic: running past the end yields format.ErrTruncated and a
// negative length field yields format.ErrInvalidLength.
type Reader struct {
	b   []byte
	off int
}

// NewReader returns a Reader positioned at the start of b.
func NewReader(b []byte) *Reader {
	return &Reader{b: b}
}

// Offset returns the current read position.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.b) - r.off }

// take consumes n bytes and returns them without copying.
func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("length %d at offset %d: %w", n, r.off, format.ErrInvalidLength)
	}
	s, ok := Slice(r.b, r.off, n)
	if !ok {
		return nil, fmt.Errorf(
			"need %d bytes at offset %d, have %d: %w",
			n, r.off, r.Remaining(), format.ErrTruncated,
		)
	}
	r.off += n
	return s, nil
}

// Byte reads one byte.
func (r *Reader) Byte() (byte, error) {
	s, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return s[0], nil
}

// I32 reads a little-endian int32.
func (r *Reader) I32() (int32, error) {
	s, err := r.take(format.I32Size)
	if err != nil {
		return 0, err
	}
	return format.ReadI32(s, 0), nil
}

// U32 reads a little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	s, err := r.take(format.I32Size)
	if err != nil {
		return 0, err
	}
	return format.ReadU32(s, 0), nil
}

// F64 reads a little-endian IEEE-754 double.
func (r *Reader) F64() (float64, error) {
	s, err := r.take(format.F64Size)
	if err != nil {
		return 0, err
	}
	return format.ReadF64(s, 0), nil
}

// Bool reads a one-byte boolean. Any non-zero byte is true.
func (r *Reader) Bool() (bool, error) {
	v, err := r.Byte()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// Length reads an int32 length or count field and rejects negative values.
func (r *Reader) Length() (int, error) {
	at := r.off
	n, err := r.I32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("length %d at offset %d: %w", n, at, format.ErrInvalidLength)
	}
	return int(n), nil
}

// Fixed reads exactly n bytes into a new slice.
func (r *Reader) Fixed(n int) ([]byte, error) {
	s, err := r.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, s)
	return out, nil
}

// Bytes reads n bytes without copying. The result aliases the underlying
// buffer and must not outlive it.
func (r *Reader) Bytes(n int) ([]byte, error) {
	return r.take(n)
}

// Text reads a character-count-prefixed string in the given charset.
// The returned string holds the raw bytes; nothing is replaced or validated.
func (r *Reader) Text(cs Charset) (string, error) {
	at := r.off
	units, err := r.Length()
	if err != nil {
		return "", err
	}
	n, ok := cs.span(r.b[r.off:], units)
	if !ok {
		return "", fmt.Errorf(
			"%s text of %d chars at offset %d: %w",
			cs, units, at, format.ErrTruncated,
		)
	}
	s, err := r.take(n)
	if err != nil {
		return "", err
	}
	return string(s), nil
}

// TextArray reads an int32 count followed by that many texts.
func (r *Reader) TextArray(cs Charset) ([]string, error) {
	at := r.off
	count, err := r.Length()
	if err != nil {
		return nil, err
	}
	// every text carries at least its 4-byte prefix
	need, ok := MulOverflowSafe(count, format.I32Size)
	if !ok || need > r.Remaining() {
		return nil, fmt.Errorf(
			"text array of %d entries at offset %d: %w",
			count, at, format.ErrTruncated,
		)
	}
	out := make([]string, count)
	for i := range out {
		if out[i], err = r.Text(cs); err != nil {
			return nil, fmt.Errorf("text array entry %d: %w", i, err)
		}
	}
	return out, nil
}

// Checksum returns the Adler-32 of [off, off+n) without moving the cursor.
func (r *Reader) Checksum(off, n int) (uint32, error) {
	s, ok := Slice(r.b, off, n)
	if !ok {
		return 0, fmt.Errorf(
			"checksum range [%d,+%d) of %d bytes: %w",
			off, n, len(r.b), format.ErrTruncated,
		)
	}
	return format.Checksum(s), nil
}
