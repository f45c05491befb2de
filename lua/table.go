package lua

import (
	"strconv"

	"github.com/joshuapare/hadeskit/internal/format"
)

// Table is a decoded table value: the declared array/hash partition sizes
// and the key/value pairs.
//
// Pairs are kept in insertion order and indexed by structural hash, so keys
// that are Equal collapse into one pair. ArrayCount and HashCount are what
// the encoder writes; they are never recomputed from the pairs, so callers
// that add or remove pairs are responsible for keeping them consistent.
//
// A table used as a key of another table must not be modified afterwards,
// nor may any table nested inside it: their hashes are memoized.
type Table struct {
	ArrayCount int32
	HashCount  int32

	pairs []pair
	index map[uint64][]int

	sum    uint64
	hashed bool
}

type pair struct {
	key   Value
	value Value
}

// NewTable returns an empty table with the given declared counts.
func NewTable(arrayCount, hashCount int32) *Table {
	return newTable(arrayCount, hashCount, 0)
}

func newTable(arrayCount, hashCount int32, capacity int) *Table {
	return &Table{
		ArrayCount: arrayCount,
		HashCount:  hashCount,
		pairs:      make([]pair, 0, capacity),
		index:      make(map[uint64][]int, capacity),
	}
}

func (*Table) Kind() Kind { return KindTable }

func (*Table) tag() byte { return format.TagTable }

// String summarizes the table without descending into it.
func (t *Table) String() string {
	return "table(" + strconv.Itoa(t.Len()) + ")"
}

// Len returns the number of stored pairs.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.pairs)
}

func (t *Table) lookup(key Value) (int, uint64, bool) {
	h := Hash(key)
	for _, i := range t.index[h] {
		if Equal(t.pairs[i].key, key) {
			return i, h, true
		}
	}
	return -1, h, false
}

// Get returns the value stored under key.
func (t *Table) Get(key Value) (Value, bool) {
	if t == nil {
		return nil, false
	}
	i, _, ok := t.lookup(key)
	if !ok {
		return nil, false
	}
	return t.pairs[i].value, true
}

// Set stores value under key, replacing any pair with an Equal key in place.
// Declared counts are left unchanged.
func (t *Table) Set(key, value Value) {
	if key == nil {
		key = Nil{}
	}
	if value == nil {
		value = Nil{}
	}
	if t.index == nil {
		t.index = make(map[uint64][]int)
	}
	t.hashed = false
	i, h, ok := t.lookup(key)
	if ok {
		t.pairs[i].value = value
		return
	}
	if k, isTable := key.(*Table); isTable && k != nil {
		k.freeze()
	}
	t.index[h] = append(t.index[h], len(t.pairs))
	t.pairs = append(t.pairs, pair{key: key, value: value})
}

// Delete removes the pair stored under key and reports whether it existed.
// Declared counts are left unchanged.
func (t *Table) Delete(key Value) bool {
	if t == nil {
		return false
	}
	i, _, ok := t.lookup(key)
	if !ok {
		return false
	}
	t.hashed = false
	t.pairs = append(t.pairs[:i], t.pairs[i+1:]...)
	t.reindex()
	return true
}

func (t *Table) reindex() {
	t.index = make(map[uint64][]int, len(t.pairs))
	for i, p := range t.pairs {
		h := Hash(p.key)
		t.index[h] = append(t.index[h], i)
	}
}

// Range calls fn for every pair in iteration order until fn returns false.
func (t *Table) Range(fn func(key, value Value) bool) {
	if t == nil {
		return
	}
	for _, p := range t.pairs {
		if !fn(p.key, p.value) {
			return
		}
	}
}

// Keys returns the keys in iteration order.
func (t *Table) Keys() []Value {
	keys := make([]Value, 0, t.Len())
	t.Range(func(k, _ Value) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Find returns the value paired with the string key.
func (t *Table) Find(key string) (Value, bool) {
	return t.Get(String(key))
}

// FindEntry descends through nested tables by successive string keys and
// returns a handle to the final pair. It reports false when any segment is
// missing or an intermediate value is not a table.
func (t *Table) FindEntry(path ...string) (*Entry, bool) {
	if t == nil || len(path) == 0 {
		return nil, false
	}
	cur := t
	last := len(path) - 1
	for i, seg := range path {
		key := String(seg)
		v, ok := cur.Get(key)
		if !ok {
			return nil, false
		}
		if i == last {
			return &Entry{table: cur, key: key}, true
		}
		next, ok := v.(*Table)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return nil, false
}

func (t *Table) equal(o *Table) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil {
		return false
	}
	if t.ArrayCount != o.ArrayCount || t.HashCount != o.HashCount || len(t.pairs) != len(o.pairs) {
		return false
	}
	for _, p := range t.pairs {
		v, ok := o.Get(p.key)
		if !ok || !Equal(p.value, v) {
			return false
		}
	}
	return true
}

// Entry is a handle to one pair of a table: the owning table plus the key.
// It stays valid when sibling pairs are added or removed.
type Entry struct {
	table *Table
	key   Value
}

// Key returns the pair's key.
func (e *Entry) Key() Value { return e.key }

// Table returns the table that owns the pair.
func (e *Entry) Table() *Table { return e.table }

// Value returns the current value, or Nil if the pair was deleted.
func (e *Entry) Value() Value {
	v, ok := e.table.Get(e.key)
	if !ok {
		return Nil{}
	}
	return v
}

// Set replaces the pair's value in place. Siblings and the table's declared
// counts are not touched.
func (e *Entry) Set(v Value) {
	e.table.Set(e.key, v)
}
