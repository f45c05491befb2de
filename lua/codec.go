package lua

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/joshuapare/hadeskit/internal/buf"
	"github.com/joshuapare/hadeskit/internal/format"
)

// Options configures decoding. The zero value is ready to use.
type Options struct {
	// Logger receives a warning for every unknown tag. Nil discards.
	Logger *slog.Logger
}

// Stats reports the lossy parts of a decode.
type Stats struct {
	// UnknownTags counts tags that were decoded as Nil. Re-encoding writes
	// those as 0x2D, so the original bytes are not reproduced.
	UnknownTags int

	// TrailingBytes counts bytes left after the last value of the stream.
	TrailingBytes int
}

// Lossy reports whether re-encoding cannot reproduce the input content.
func (s Stats) Lossy() bool { return s.UnknownTags > 0 }

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return discard
	}
	return o.Logger
}

type decoder struct {
	r     *buf.Reader
	log   *slog.Logger
	stats Stats
}

// Unmarshal decodes a value-stream: a one-byte count followed by that many
// values. Any error aborts the decode; no partial Stream is returned.
func Unmarshal(data []byte, opts *Options) (Stream, error) {
	s, _, err := UnmarshalStats(data, opts)
	return s, err
}

// UnmarshalStats is Unmarshal that also reports lossiness.
func UnmarshalStats(data []byte, opts *Options) (Stream, Stats, error) {
	d := &decoder{r: buf.NewReader(data), log: opts.logger()}
	count, err := d.r.Byte()
	if err != nil {
		return nil, Stats{}, fmt.Errorf("lua: stream count: %w", err)
	}
	s := make(Stream, 0, count)
	for i := range int(count) {
		v, err := d.value()
		if err != nil {
			return nil, Stats{}, fmt.Errorf("lua: stream value %d: %w", i, err)
		}
		s = append(s, v)
	}
	if n := d.r.Remaining(); n > 0 {
		d.stats.TrailingBytes = n
		d.log.Debug("lua: trailing bytes after value-stream", "bytes", n, "offset", d.r.Offset())
	}
	return s, d.stats, nil
}

// DecodeValue decodes one tagged value from the start of data and returns
// it with the number of bytes consumed.
func DecodeValue(data []byte) (Value, int, error) {
	d := &decoder{r: buf.NewReader(data), log: discard}
	v, err := d.value()
	if err != nil {
		return nil, 0, fmt.Errorf("lua: %w", err)
	}
	return v, d.r.Offset(), nil
}

func (d *decoder) value() (Value, error) {
	at := d.r.Offset()
	tag, err := d.r.Byte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case format.TagNil:
		return Nil{}, nil
	case format.TagFalse:
		return Bool(false), nil
	case format.TagTrue:
		return Bool(true), nil
	case format.TagNumber:
		f, err := d.r.F64()
		if err != nil {
			return nil, fmt.Errorf("number at offset %d: %w", at, err)
		}
		return Number(f), nil
	case format.TagString:
		s, err := d.r.Text(buf.ASCII)
		if err != nil {
			return nil, fmt.Errorf("string at offset %d: %w", at, err)
		}
		return String(s), nil
	case format.TagTable:
		return d.table(at)
	default:
		d.stats.UnknownTags++
		d.log.Warn("lua: unknown value tag decoded as nil",
			"tag", fmt.Sprintf("0x%02X", tag), "offset", at)
		return Nil{}, nil
	}
}

func (d *decoder) table(at int) (*Table, error) {
	arrayCount, err := d.r.I32()
	if err != nil {
		return nil, fmt.Errorf("table at offset %d: %w", at, err)
	}
	hashCount, err := d.r.I32()
	if err != nil {
		return nil, fmt.Errorf("table at offset %d: %w", at, err)
	}
	if arrayCount < 0 || hashCount < 0 {
		return nil, fmt.Errorf("table at offset %d has counts %d+%d: %w",
			at, arrayCount, hashCount, format.ErrInvalidLength)
	}
	total := int(arrayCount) + int(hashCount)
	need, ok := buf.MulOverflowSafe(total, format.MinPairSize)
	if !ok || need > d.r.Remaining() {
		return nil, fmt.Errorf("table at offset %d declares %d pairs, %d bytes left: %w",
			at, total, d.r.Remaining(), format.ErrTruncated)
	}

	t := newTable(arrayCount, hashCount, total)
	for range total {
		k, err := d.value()
		if err != nil {
			return nil, err
		}
		v, err := d.value()
		if err != nil {
			return nil, err
		}
		// duplicate keys collapse to the last occurrence
		t.Set(k, v)
	}
	return t, nil
}

// Marshal encodes s as a value-stream. Streams longer than 255 values fail
// with ErrStreamTooLong.
func Marshal(s Stream) ([]byte, error) {
	return AppendStream(nil, s)
}

// AppendStream appends the encoding of s to dst.
func AppendStream(dst []byte, s Stream) ([]byte, error) {
	if len(s) > format.MaxStreamValues {
		return nil, fmt.Errorf("lua: %d values: %w", len(s), format.ErrStreamTooLong)
	}
	w := buf.NewWriterAppend(dst)
	w.Byte(byte(len(s)))
	for _, v := range s {
		encodeValue(w, v)
	}
	return w.Bytes(), nil
}

// AppendValue appends the tagged encoding of v to dst. A nil interface
// encodes as Nil.
func AppendValue(dst []byte, v Value) []byte {
	w := buf.NewWriterAppend(dst)
	encodeValue(w, v)
	return w.Bytes()
}

func encodeValue(w *buf.Writer, v Value) {
	if v == nil {
		v = Nil{}
	}
	w.Byte(v.tag())
	switch x := v.(type) {
	case Number:
		w.F64(float64(x))
	case String:
		w.Text(buf.ASCII, string(x))
	case *Table:
		encodeTable(w, x)
	}
}

func encodeTable(w *buf.Writer, t *Table) {
	if t == nil {
		w.I32(0)
		w.I32(0)
		return
	}
	w.I32(t.ArrayCount)
	w.I32(t.HashCount)
	for _, p := range t.pairs {
		encodeValue(w, p.key)
		encodeValue(w, p.value)
	}
}
