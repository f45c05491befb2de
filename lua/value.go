package lua

import (
	"math"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/hadeskit/internal/format"
)

// Kind identifies the variant of a Value.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindTable:
		return "table"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is one of Nil, Bool, Number, String or *Table. The set is closed:
// the unexported method keeps other packages from adding variants.
type Value interface {
	Kind() Kind
	String() string
	tag() byte
}

// Nil is the absent value. Unknown wire tags also decode to Nil.
type Nil struct{}

// Bool is a boolean value.
type Bool bool

// Number is a double-precision number.
type Number float64

// String holds the raw bytes of a string value. The bytes are not required
// to be valid UTF-8; use Text for display.
type String string

func (Nil) Kind() Kind    { return KindNil }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }

func (Nil) tag() byte { return format.TagNil }

func (b Bool) tag() byte {
	if b {
		return format.TagTrue
	}
	return format.TagFalse
}

func (Number) tag() byte { return format.TagNumber }
func (String) tag() byte { return format.TagString }

func (Nil) String() string { return "nil" }

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

func (n Number) String() string {
	f := float64(n)
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String returns the value quoted for display.
func (s String) String() string { return strconv.Quote(s.Text()) }

// Text returns s as printable text. Valid UTF-8 is returned unchanged; any
// other byte string is decoded as Windows-1252, which maps every byte.
func (s String) Text() string {
	if utf8.ValidString(string(s)) {
		return string(s)
	}
	out, err := charmap.Windows1252.NewDecoder().String(string(s))
	if err != nil {
		return string(s)
	}
	return out
}
