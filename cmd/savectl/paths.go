package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joshuapare/hadeskit/lua"
)

var errEmptyPath = errors.New("empty path")

// splitPath splits a key path such as GameState.Resources.Gems.
func splitPath(path, sep string) ([]string, error) {
	if path == "" {
		return nil, errEmptyPath
	}
	if sep == "" {
		return []string{path}, nil
	}
	parts := strings.Split(path, sep)
	for i, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("path %q: empty key at position %d", path, i)
		}
	}
	return parts, nil
}

// parseValue converts raw into a value of the named kind. An empty kind
// keeps the kind of current.
func parseValue(raw, kind string, current lua.Value) (lua.Value, error) {
	if kind == "" {
		switch current.(type) {
		case lua.Number:
			kind = "number"
		case lua.Bool:
			kind = "bool"
		case lua.String:
			kind = "string"
		case *lua.Table:
			return nil, errors.New("cannot replace a table; pick a leaf")
		default:
			return nil, errors.New("current value is nil; pass --type")
		}
	}

	switch strings.ToLower(kind) {
	case "number":
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", raw, err)
		}
		return lua.Number(f), nil
	case "bool", "boolean":
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("bool %q: %w", raw, err)
		}
		return lua.Bool(b), nil
	case "string":
		return lua.String(raw), nil
	case "nil":
		return lua.Nil{}, nil
	default:
		return nil, fmt.Errorf("unknown type %q (want number, bool, string or nil)", kind)
	}
}

// keyLabel renders a table key for tree output: identifiers bare, anything
// else bracketed.
func keyLabel(k lua.Value) string {
	if s, ok := k.(lua.String); ok && isIdent(string(s)) {
		return string(s)
	}
	return "[" + k.String() + "]"
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// writeTree prints v and, for tables, its pairs indented below it. depth
// limits nesting; zero means unlimited.
func writeTree(w io.Writer, label string, v lua.Value, depth int) {
	writeNode(w, label, v, 0, depth)
}

func writeNode(w io.Writer, label string, v lua.Value, level, depth int) {
	indent := strings.Repeat("  ", level)
	t, ok := v.(*lua.Table)
	if !ok {
		fmt.Fprintf(w, "%s%s = %s\n", indent, label, v)
		return
	}
	fmt.Fprintf(w, "%s%s = %s {array=%d hash=%d}\n", indent, label, t, t.ArrayCount, t.HashCount)
	if depth > 0 && level+1 >= depth {
		return
	}
	t.Range(func(k, child lua.Value) bool {
		writeNode(w, keyLabel(k), child, level+1, depth)
		return true
	})
}

// plain renders a leaf for get: strings without quotes.
func plain(v lua.Value) string {
	if s, ok := v.(lua.String); ok {
		return s.Text()
	}
	return v.String()
}
