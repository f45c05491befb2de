package buf

import "github.com/joshuapare/hadeskit/internal/format"

// Writer appends little-endian fields to a growable buffer.
type Writer struct {
	b []byte
}

// NewWriter returns a Writer with room for capacity bytes before growing.
func NewWriter(capacity int) *Writer {
	return &Writer{b: make([]byte, 0, capacity)}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.b) }

// Bytes returns the written bytes. The slice aliases the Writer's buffer.
func (w *Writer) Bytes() []byte { return w.b }

// Byte appends one byte.
func (w *Writer) Byte(v byte) { w.b = append(w.b, v) }

// I32 appends a little-endian int32.
func (w *Writer) I32(v int32) { w.b = format.AppendI32(w.b, v) }

// U32 appends a little-endian uint32.
func (w *Writer) U32(v uint32) { w.b = format.AppendU32(w.b, v) }

// F64 appends a little-endian IEEE-754 double.
func (w *Writer) F64(v float64) { w.b = format.AppendF64(w.b, v) }

// Bool appends 1 for true and 0 for false.
func (w *Writer) Bool(v bool) {
	if v {
		w.b = append(w.b, 1)
		return
	}
	w.b = append(w.b, 0)
}

// Raw appends p unchanged.
func (w *Writer) Raw(p []byte) { w.b = append(w.b, p...) }

// Fixed appends exactly n bytes of p, truncating or zero-filling as needed.
func (w *Writer) Fixed(p []byte, n int) {
	if len(p) >= n {
		w.b = append(w.b, p[:n]...)
		return
	}
	w.b = append(w.b, p...)
	w.b = append(w.b, make([]byte, n-len(p))...)
}

// Text appends the character count of s followed by its bytes.
func (w *Writer) Text(cs Charset, s string) {
	w.I32(int32(cs.Units(s)))
	w.b = append(w.b, s...)
}

// TextArray appends an int32 count followed by each text.
func (w *Writer) TextArray(cs Charset, ss []string) {
	w.I32(int32(len(ss)))
	for _, s := range ss {
		w.Text(cs, s)
	}
}

// NewWriterAppend returns a Writer that appends to dst.
func NewWriterAppend(dst []byte) *Writer {
	return &Writer{b: dst}
}
