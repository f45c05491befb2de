package lua

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/joshuapare/hadeskit/internal/format"
)

// canonicalNaN stands in for every NaN payload so that all NaNs hash alike.
const canonicalNaN = 0x7FF8000000000000

// Equal reports whether a and b are structurally equal. A nil interface is
// treated as Nil. Numbers compare by bit pattern with every NaN equal to
// every other NaN, so 0 and -0 are distinct. Tables are equal when their
// declared counts match and they hold equal pairs.
func Equal(a, b Value) bool {
	if a == nil {
		a = Nil{}
	}
	if b == nil {
		b = Nil{}
	}
	switch x := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && numberBits(x) == numberBits(y)
	case String:
		y, ok := b.(String)
		return ok && x == y
	case *Table:
		y, ok := b.(*Table)
		return ok && x.equal(y)
	default:
		return false
	}
}

// Hash returns a 64-bit structural hash of v consistent with Equal.
// Table hashes do not depend on pair order. Tables must not contain
// themselves.
func Hash(v Value) uint64 {
	switch x := v.(type) {
	case nil, Nil:
		return xxhash.Sum64([]byte{format.TagNil})
	case Bool:
		return xxhash.Sum64([]byte{x.tag()})
	case Number:
		var b [1 + format.F64Size]byte
		b[0] = format.TagNumber
		binary.LittleEndian.PutUint64(b[1:], numberBits(x))
		return xxhash.Sum64(b[:])
	case String:
		d := xxhash.New()
		_, _ = d.Write([]byte{format.TagString})
		_, _ = d.WriteString(string(x))
		return d.Sum64()
	case *Table:
		return x.hash()
	default:
		return 0
	}
}

func numberBits(n Number) uint64 {
	f := float64(n)
	if math.IsNaN(f) {
		return canonicalNaN
	}
	return math.Float64bits(f)
}

// mixPair hashes one (key, value) pair. Pair hashes are summed, so the
// table hash is independent of iteration order.
func mixPair(k, v uint64) uint64 {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], k)
	binary.LittleEndian.PutUint64(b[8:], v)
	return xxhash.Sum64(b[:])
}

// hash returns the memoized hash of a key table, computing it otherwise.
// Tables beneath t that are keys are not rehashed.
func (t *Table) hash() uint64 {
	if t != nil && t.hashed {
		return t.sum
	}
	var b [1 + 3*8]byte
	b[0] = format.TagTable
	if t != nil {
		var acc uint64
		for _, p := range t.pairs {
			acc += mixPair(Hash(p.key), Hash(p.value))
		}
		binary.LittleEndian.PutUint64(b[1:], acc)
		binary.LittleEndian.PutUint64(b[9:], uint64(len(t.pairs)))
		binary.LittleEndian.PutUint32(b[17:], uint32(t.ArrayCount))
		binary.LittleEndian.PutUint32(b[21:], uint32(t.HashCount))
	}
	return xxhash.Sum64(b[:])
}

// freeze memoizes the hashes of t and every table beneath it. It is called
// once t becomes a key, after which none of them may change.
func (t *Table) freeze() uint64 {
	if t.hashed {
		return t.sum
	}
	for _, p := range t.pairs {
		if k, ok := p.key.(*Table); ok && k != nil {
			k.freeze()
		}
		if v, ok := p.value.(*Table); ok && v != nil {
			v.freeze()
		}
	}
	t.sum, t.hashed = t.hash(), true
	return t.sum
}
