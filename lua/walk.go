package lua

import (
	"errors"
	"math"
)

// SkipTable, returned by a WalkFunc for a table, skips that table's pairs.
var SkipTable = errors.New("lua: skip table")

// WalkFunc is called for every pair reached by Walk. path holds the keys
// from the walk root down to and including key.
type WalkFunc func(path []Value, value Value) error

// Walk visits every pair under t depth-first, in iteration order. Tables are
// reported before their contents.
func Walk(t *Table, fn WalkFunc) error {
	err := walk(t, nil, fn)
	if errors.Is(err, SkipTable) {
		return nil
	}
	return err
}

func walk(t *Table, prefix []Value, fn WalkFunc) error {
	var err error
	t.Range(func(k, v Value) bool {
		path := append(prefix[:len(prefix):len(prefix)], k)
		if err = fn(path, v); err != nil {
			if errors.Is(err, SkipTable) {
				err = nil
			}
			return err == nil
		}
		if child, ok := v.(*Table); ok {
			err = walk(child, path, fn)
		}
		return err == nil
	})
	return err
}

// ToNative converts v into plain Go values suitable for JSON encoding.
// String-keyed tables become map[string]any; tables keyed 1..n become []any;
// any other table becomes a list of {"key","value"} objects. Non-finite
// numbers become their string form.
func ToNative(v Value) any {
	switch x := v.(type) {
	case nil, Nil:
		return nil
	case Bool:
		return bool(x)
	case Number:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return x.String()
		}
		return f
	case String:
		return x.Text()
	case *Table:
		return tableToNative(x)
	default:
		return nil
	}
}

func tableToNative(t *Table) any {
	if obj, ok := stringKeyed(t); ok {
		return obj
	}
	if list, ok := sequence(t); ok {
		return list
	}
	pairs := make([]map[string]any, 0, t.Len())
	t.Range(func(k, v Value) bool {
		pairs = append(pairs, map[string]any{"key": ToNative(k), "value": ToNative(v)})
		return true
	})
	return pairs
}

func stringKeyed(t *Table) (map[string]any, bool) {
	obj := make(map[string]any, t.Len())
	ok := true
	t.Range(func(k, v Value) bool {
		s, isString := k.(String)
		if !isString {
			ok = false
			return false
		}
		obj[s.Text()] = ToNative(v)
		return true
	})
	return obj, ok
}

func sequence(t *Table) ([]any, bool) {
	n := t.Len()
	if n == 0 {
		return nil, false
	}
	list := make([]any, n)
	for i := range n {
		v, ok := t.Get(Number(i + 1))
		if !ok {
			return nil, false
		}
		list[i] = ToNative(v)
	}
	return list, true
}
