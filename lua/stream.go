package lua

// Stream is a value-stream: the ordered top-level values of an embedded
// script state. A saved game holds a single table here in practice.
type Stream []Value

// Find returns the value under key in the first top-level table that has it.
func (s Stream) Find(key string) (Value, bool) {
	for _, v := range s {
		if t, ok := v.(*Table); ok {
			if found, ok := t.Find(key); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// FindEntry resolves path against each top-level table in order and returns
// the first match.
func (s Stream) FindEntry(path ...string) (*Entry, bool) {
	for _, v := range s {
		if t, ok := v.(*Table); ok {
			if e, ok := t.FindEntry(path...); ok {
				return e, true
			}
		}
	}
	return nil, false
}

// Equal reports whether s and o hold pairwise Equal values.
func (s Stream) Equal(o Stream) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if !Equal(s[i], o[i]) {
			return false
		}
	}
	return true
}
