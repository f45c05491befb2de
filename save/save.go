package save

import (
	"fmt"
	"math"

	"github.com/joshuapare/hadeskit/internal/buf"
	"github.com/joshuapare/hadeskit/internal/format"
	"github.com/joshuapare/hadeskit/lua"
)

// Header is the first 8 bytes of a save.
type Header struct {
	Signature [format.SignatureSize]byte
	Checksum  uint32
}

// Metadata is everything between the header and the padding.
type Metadata struct {
	Version            int32
	Location           string
	Runs               int32
	ActiveMetaPoints   int32
	ActiveShrinePoints int32
	GodModeEnabled     bool
	HellModeEnabled    bool
	LuaKeys            []string
	CurrentMapName     string
	StartNextMap       string
	LuaState           lua.Stream
}

// Save is a decoded save file. It is owned by one caller; concurrent
// mutation is not supported.
type Save struct {
	Header   Header
	Metadata Metadata

	computed    uint32
	metadataEnd int
	stats       lua.Stats
}

// Decode parses a save. Bytes after the metadata are padding and are not
// examined. Any error aborts the decode; no partial Save is returned. The
// result does not reference data.
func Decode(data []byte, cfg Config) (*Save, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := cfg.logger()
	r := buf.NewReader(data)
	s := &Save{}
	m := &s.Metadata

	sig, err := r.Fixed(format.SignatureSize)
	if err != nil {
		return nil, fieldErr("signature", err)
	}
	s.Header.Signature = [format.SignatureSize]byte(sig)
	if s.Header.Checksum, err = r.U32(); err != nil {
		return nil, fieldErr("checksum", err)
	}

	if m.Version, err = r.I32(); err != nil {
		return nil, fieldErr("version", err)
	}
	if m.Location, err = r.Text(buf.UTF8); err != nil {
		return nil, fieldErr("location", err)
	}
	if m.Runs, err = r.I32(); err != nil {
		return nil, fieldErr("runs", err)
	}
	if m.ActiveMetaPoints, err = r.I32(); err != nil {
		return nil, fieldErr("active meta points", err)
	}
	if m.ActiveShrinePoints, err = r.I32(); err != nil {
		return nil, fieldErr("active shrine points", err)
	}
	if m.GodModeEnabled, err = r.Bool(); err != nil {
		return nil, fieldErr("god mode", err)
	}
	if m.HellModeEnabled, err = r.Bool(); err != nil {
		return nil, fieldErr("hell mode", err)
	}
	if m.LuaKeys, err = r.TextArray(buf.UTF8); err != nil {
		return nil, fieldErr("lua keys", err)
	}
	if m.CurrentMapName, err = r.Text(buf.UTF8); err != nil {
		return nil, fieldErr("current map name", err)
	}
	if m.StartNextMap, err = r.Text(buf.UTF8); err != nil {
		return nil, fieldErr("start next map", err)
	}

	blobLen, err := r.Length()
	if err != nil {
		return nil, fieldErr("script state length", err)
	}
	blob, err := r.Bytes(blobLen)
	if err != nil {
		return nil, fmt.Errorf("save: script state: %w", err)
	}
	m.LuaState, s.stats, err = lua.UnmarshalStats(blob, &lua.Options{Logger: log})
	if err != nil {
		return nil, fmt.Errorf("save: script state: %w", err)
	}
	s.metadataEnd = r.Offset()

	end := s.metadataEnd
	if cfg.ChecksumPadding {
		end = len(data)
	}
	if s.computed, err = r.Checksum(format.HeaderSize, end-format.HeaderSize); err != nil {
		return nil, fmt.Errorf("save: checksum region: %w", err)
	}

	if !s.ChecksumOK() {
		log.Debug("save: stored checksum differs",
			"stored", fmt.Sprintf("%#08x", s.Header.Checksum),
			"computed", fmt.Sprintf("%#08x", s.computed))
	}
	if len(data) != cfg.size() {
		log.Debug("save: unexpected envelope size", "size", len(data), "want", cfg.size())
	}
	if s.stats.Lossy() {
		log.Warn("save: script state has unknown tags", "count", s.stats.UnknownTags)
	}
	return s, nil
}

// Encode serializes s into exactly cfg.Size bytes: header, metadata and zero
// padding. The stored checksum is recomputed; s is not modified. If the
// metadata does not fit, Encode returns ErrSizeOverflow and no bytes.
func (s *Save) Encode(cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &s.Metadata

	blob, err := lua.Marshal(m.LuaState)
	if err != nil {
		return nil, fmt.Errorf("save: script state: %w", err)
	}
	if len(blob) > math.MaxInt32 {
		return nil, fmt.Errorf("save: script state of %d bytes: %w", len(blob), ErrSizeOverflow)
	}

	w := buf.NewWriter(format.HeaderSize + len(blob) + 256)
	w.Fixed(s.Header.Signature[:], format.SignatureSize)
	w.U32(0) // checksum, filled in below
	w.I32(m.Version)
	w.Text(buf.UTF8, m.Location)
	w.I32(m.Runs)
	w.I32(m.ActiveMetaPoints)
	w.I32(m.ActiveShrinePoints)
	w.Bool(m.GodModeEnabled)
	w.Bool(m.HellModeEnabled)
	w.TextArray(buf.UTF8, m.LuaKeys)
	w.Text(buf.UTF8, m.CurrentMapName)
	w.Text(buf.UTF8, m.StartNextMap)
	w.I32(int32(len(blob)))
	w.Raw(blob)

	size := cfg.size()
	end := w.Len()
	if end > size {
		return nil, fmt.Errorf("save: %d bytes of metadata in a %d-byte envelope: %w",
			end-format.HeaderSize, size, ErrSizeOverflow)
	}

	out := make([]byte, size)
	copy(out, w.Bytes())
	region := out[format.HeaderSize:end]
	if cfg.ChecksumPadding {
		region = out[format.HeaderSize:]
	}
	format.PutU32(out, format.ChecksumOffset, format.Checksum(region))

	cfg.logger().Debug("save: encoded", "metadata", end-format.HeaderSize, "padding", size-end)
	return out, nil
}

func fieldErr(field string, err error) error {
	return fmt.Errorf("save: %s: %w", field, err)
}

// FindEntry resolves a path of string keys in the script state.
func (s *Save) FindEntry(path ...string) (*lua.Entry, bool) {
	return s.Metadata.LuaState.FindEntry(path...)
}

// Stats reports lossy parts of the script state decode.
func (s *Save) Stats() lua.Stats { return s.stats }

// MetadataEnd returns the offset where padding begins in the decoded file.
func (s *Save) MetadataEnd() int { return s.metadataEnd }
