// Package compress provides the codecs used for save file backups. Each
// codec is a whole-buffer transform identified by a short name and a file
// extension.
package compress

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
)

// MaxDecodedSize bounds the output of Decompress. Save files are a few
// megabytes; anything far larger is a corrupt or hostile backup.
const MaxDecodedSize = 64 << 20

var (
	// ErrUnknownCodec is returned by Get for a name with no codec.
	ErrUnknownCodec = errors.New("compress: unknown codec")
	// ErrTooLarge is returned when decompressed output exceeds MaxDecodedSize.
	ErrTooLarge = errors.New("compress: decoded size exceeds limit")
)

// Compressor compresses a complete buffer. The returned slice is newly
// allocated and owned by the caller.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor. Corrupt input yields an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions with the name and extension used to pick
// it from configuration and from backup file names.
type Codec interface {
	Compressor
	Decompressor
	// Name is the identifier accepted by Get.
	Name() string
	// Ext is the file extension appended to backups, including the dot,
	// or "" for uncompressed copies.
	Ext() string
}

var builtinCodecs = map[string]Codec{
	NoOpName: NewNoOpCompressor(),
	ZstdName: NewZstdCompressor(),
	S2Name:   NewS2Compressor(),
	LZ4Name:  NewLZ4Compressor(),
}

// Get returns the built-in codec with the given name.
func Get(name string) (Codec, error) {
	if c, ok := builtinCodecs[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownCodec, name, Names())
}

// Names lists the built-in codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtinCodecs))
	for name := range builtinCodecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForPath picks a codec from the extension of path. Unrecognized
// extensions map to the no-op codec.
func ForPath(path string) Codec {
	ext := filepath.Ext(path)
	if ext == "" {
		return builtinCodecs[NoOpName]
	}
	for _, c := range builtinCodecs {
		if c.Ext() == ext {
			return c
		}
	}
	return builtinCodecs[NoOpName]
}
