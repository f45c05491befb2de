// Package lua decodes and encodes the value-stream blob that a save file
// embeds as its script state.
//
// # Wire Format
//
// A value-stream is a one-byte count followed by that many values. Every
// value starts with a one-byte tag:
//
//	Tag   Variant      Payload
//	0x2D  Nil          none
//	0x30  Bool false   none
//	0x31  Bool true    none
//	0x4E  Number       float64, little-endian
//	0x53  String       int32 length + that many bytes
//	0x54  Table        int32 array count, int32 hash count, then
//	                   (array+hash) key/value pairs, each a tagged value
//
// Any other tag decodes as Nil. Decoding therefore never fails on an unknown
// tag, but re-encoding writes 0x2D in its place; Stats.UnknownTags reports
// how many were seen.
//
// # Tables
//
// A Table keeps the declared counts it was decoded with and writes them back
// verbatim. Pairs are indexed by structural equality (see Equal and Hash):
// when a table on the wire repeats a key, the last pair wins. Pairs are
// written back in insertion order, which for a decoded table is file order
// minus collapsed duplicates. Round trips are content-equal, not necessarily
// byte-equal.
//
// # Editing
//
// FindEntry resolves a path of string keys through nested tables and returns
// an Entry handle:
//
//	e, ok := state.FindEntry("GameState", "Resources", "Gems")
//	if ok {
//	    e.Set(lua.Number(2000))
//	}
//
// Set replaces the value in place; siblings and declared counts are not
// touched.
//
// # Thread Safety
//
// Values are not safe for concurrent mutation.
package lua
