// Package format holds the wire constants of the save envelope and the
// value-stream blob embedded in it. Higher-level packages (lua, save) build
// on these; nothing here allocates or performs I/O.
package format

// Value-stream tags. Every encoded value starts with exactly one of these.
const (
	TagNil    byte = 0x2D // '-'
	TagFalse  byte = 0x30 // '0'
	TagTrue   byte = 0x31 // '1'
	TagNumber byte = 0x4E // 'N'
	TagString byte = 0x53 // 'S'
	TagTable  byte = 0x54 // 'T'
)

const (
	// SignatureSize is the length of the opaque signature at offset 0.
	SignatureSize = 4

	// SignatureOffset is the file offset of the signature.
	SignatureOffset = 0x00

	// ChecksumOffset is the file offset of the 32-bit checksum word.
	ChecksumOffset = 0x04

	// HeaderSize is the size of signature + checksum. Metadata starts here.
	//
	//	Offset  Size  Description
	//	0x00    4     Signature (copied through unchanged)
	//	0x04    4     Adler-32 of the metadata region
	//	0x08    ...   Metadata
	HeaderSize = 0x08

	// MetadataRegionSize is the size of the metadata region including its
	// zero padding, as written by the game.
	MetadataRegionSize = 3145720

	// DefaultEnvelopeSize is the total size of a save file on disk.
	DefaultEnvelopeSize = HeaderSize + MetadataRegionSize

	// MaxStreamValues is the largest number of top-level values a
	// value-stream can hold; the count is a single byte.
	MaxStreamValues = 0xFF
)

// Sizes of fixed-width fields.
const (
	I32Size  = 4
	F64Size  = 8
	BoolSize = 1
	TagSize  = 1

	// MinPairSize is the smallest encoding of a table (key, value) pair:
	// two payload-less tags.
	MinPairSize = 2 * TagSize
)
