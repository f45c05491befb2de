package save

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hadeskit/internal/format"
	"github.com/joshuapare/hadeskit/lua"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	want := fixtureSave()
	out, err := want.Encode(testConfig())
	require.NoError(t, err)
	require.Len(t, out, testSize)
	assert.Equal(t, []byte("SGB1"), out[:4])

	got, err := Decode(out, testConfig())
	require.NoError(t, err)
	assert.Equal(t, want.Header.Signature, got.Header.Signature)
	assert.Equal(t, scalars(want.Metadata), scalars(got.Metadata))
	assert.True(t, want.Metadata.LuaState.Equal(got.Metadata.LuaState))
	assert.True(t, got.ChecksumOK())
	assert.NoError(t, got.Verify())
	assert.False(t, got.Stats().Lossy())

	// checksum covers exactly the metadata
	end := got.MetadataEnd()
	assert.Equal(t, format.Checksum(out[format.HeaderSize:end]), format.ReadU32(out, format.ChecksumOffset))
	assert.Equal(t, got.Header.Checksum, got.ComputedChecksum())
	assert.True(t, bytes.Equal(make([]byte, testSize-end), out[end:]), "padding must be zero")

	again, err := got.Encode(testConfig())
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestSignatureCopiedThrough(t *testing.T) {
	s := fixtureSave()
	s.Header.Signature = [4]byte{0x00, 0xFF, 0x7F, 0x80}
	out, err := s.Encode(testConfig())
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xFF, 0x7F, 0x80}, out[:format.SignatureSize])

	got, err := Decode(out, testConfig())
	require.NoError(t, err)
	copy(out, "XXXX")
	assert.Equal(t, [4]byte{0x00, 0xFF, 0x7F, 0x80}, got.Header.Signature, "decoded signature must not alias the input")
	assert.NoError(t, got.Verify())
}

func TestEncodeDefaultSize(t *testing.T) {
	out, err := fixtureSave().Encode(DefaultConfig())
	require.NoError(t, err)
	assert.Len(t, out, 8+3145720)

	zero, err := fixtureSave().Encode(Config{})
	require.NoError(t, err)
	assert.Equal(t, out, zero)
}

func TestMetadataLayout(t *testing.T) {
	s := fixtureSave()
	s.Metadata.Location = "Élysée"
	out, err := s.Encode(testConfig())
	require.NoError(t, err)

	assert.Equal(t, int32(16), format.ReadI32(out, 8))
	// character count, not byte count
	assert.Equal(t, int32(6), format.ReadI32(out, 12))
	assert.Equal(t, "Élysée", string(out[16:16+len("Élysée")]))

	got, err := Decode(out, testConfig())
	require.NoError(t, err)
	assert.Equal(t, "Élysée", got.Metadata.Location)
	assert.Equal(t, int32(42), got.Metadata.Runs)
}

func TestEncodeOverflow(t *testing.T) {
	s := fixtureSave()
	s.Metadata.LuaState = lua.Stream{lua.String(strings.Repeat("x", testSize))}

	out, err := s.Encode(testConfig())
	require.ErrorIs(t, err, ErrSizeOverflow)
	assert.Nil(t, out)
}

func TestEncodeExactFit(t *testing.T) {
	probe, err := fixtureSave().Encode(testConfig())
	require.NoError(t, err)
	decoded, err := Decode(probe, testConfig())
	require.NoError(t, err)
	end := decoded.MetadataEnd()

	out, err := fixtureSave().Encode(Config{Size: end})
	require.NoError(t, err, "zero padding is allowed")
	assert.Len(t, out, end)

	_, err = fixtureSave().Encode(Config{Size: end - 1})
	assert.ErrorIs(t, err, ErrSizeOverflow)
}

func TestEncodeStreamTooLong(t *testing.T) {
	s := fixtureSave()
	s.Metadata.LuaState = make(lua.Stream, 256)
	_, err := s.Encode(testConfig())
	assert.ErrorIs(t, err, ErrStreamTooLong)
}

func TestInvalidConfig(t *testing.T) {
	cfg := Config{Size: 4}
	_, err := fixtureSave().Encode(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = Decode(make([]byte, 64), cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.NoError(t, DefaultConfig().Validate())
}

func TestDecodeTruncatedAtEveryPrefix(t *testing.T) {
	out, err := fixtureSave().Encode(testConfig())
	require.NoError(t, err)
	decoded, err := Decode(out, testConfig())
	require.NoError(t, err)

	for n := 0; n < decoded.MetadataEnd(); n++ {
		s, err := Decode(out[:n], testConfig())
		require.ErrorIs(t, err, ErrTruncated, "prefix %d", n)
		require.Nil(t, s)
	}

	// padding is never read
	s, err := Decode(out[:decoded.MetadataEnd()], testConfig())
	require.NoError(t, err)
	assert.True(t, s.ChecksumOK())
}

func TestDecodeNegativeLength(t *testing.T) {
	out, err := fixtureSave().Encode(testConfig())
	require.NoError(t, err)
	format.PutI32(out, 12, -1) // location length

	_, err = Decode(out, testConfig())
	require.ErrorIs(t, err, ErrInvalidLength)
	assert.Contains(t, err.Error(), "location")
}

func TestVerifyMismatchIsOptIn(t *testing.T) {
	out, err := fixtureSave().Encode(testConfig())
	require.NoError(t, err)
	out[format.ChecksumOffset] ^= 0xFF

	s, err := Decode(out, testConfig())
	require.NoError(t, err, "decode never fails on a bad checksum")
	assert.False(t, s.ChecksumOK())
	err = s.Verify()
	require.ErrorIs(t, err, ErrChecksumMismatch)
	assert.Contains(t, err.Error(), "stored")
}

func TestChecksumPadding(t *testing.T) {
	withPad := Config{Size: testSize, ChecksumPadding: true}
	out, err := fixtureSave().Encode(withPad)
	require.NoError(t, err)
	assert.Equal(t, format.Checksum(out[format.HeaderSize:]), format.ReadU32(out, format.ChecksumOffset))

	s, err := Decode(out, withPad)
	require.NoError(t, err)
	assert.True(t, s.ChecksumOK())

	s, err = Decode(out, testConfig())
	require.NoError(t, err)
	assert.False(t, s.ChecksumOK(), "metadata-only checksum differs when padding was covered")

	// a dirty padding byte only matters when padding is checksummed
	plain, err := fixtureSave().Encode(testConfig())
	require.NoError(t, err)
	plain[testSize-1] = 1
	s, err = Decode(plain, testConfig())
	require.NoError(t, err)
	assert.True(t, s.ChecksumOK())
	s, err = Decode(plain, withPad)
	require.NoError(t, err)
	assert.False(t, s.ChecksumOK())
}

func TestEditLeafAndReencode(t *testing.T) {
	out, err := fixtureSave().Encode(testConfig())
	require.NoError(t, err)
	s, err := Decode(out, testConfig())
	require.NoError(t, err)

	e, ok := s.FindEntry("GameState", "Resources", "Gems")
	require.True(t, ok)
	e.Set(lua.Number(2000))

	_, ok = s.FindEntry("GameState", "Resources", "Missing")
	assert.False(t, ok)

	edited, err := s.Encode(testConfig())
	require.NoError(t, err)
	got, err := Decode(edited, testConfig())
	require.NoError(t, err)
	require.NoError(t, got.Verify())

	gems, ok := got.FindEntry("GameState", "Resources", "Gems")
	require.True(t, ok)
	assert.Equal(t, lua.Number(2000), gems.Value())
	mp, ok := got.FindEntry("GameState", "Resources", "MetaPoints")
	require.True(t, ok)
	assert.Equal(t, lua.Number(1200), mp.Value())
	assert.Equal(t, scalars(fixtureSave().Metadata), scalars(got.Metadata))
}

func TestUnknownTagIsLossyNotFatal(t *testing.T) {
	s := fixtureSave()
	tbl := lua.NewTable(0, 1)
	tbl.Set(lua.String("k"), lua.Bool(true))
	s.Metadata.LuaState = lua.Stream{tbl}

	out, err := s.Encode(testConfig())
	require.NoError(t, err)
	probe, err := Decode(out, testConfig())
	require.NoError(t, err)
	// the last metadata byte is the Bool tag
	out[probe.MetadataEnd()-1] = 0x7A

	var logs bytes.Buffer
	cfg := testConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(&logs, nil))
	got, err := Decode(out, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stats().UnknownTags)
	assert.True(t, got.Stats().Lossy())
	v, ok := got.Metadata.LuaState.Find("k")
	require.True(t, ok)
	assert.Equal(t, lua.Nil{}, v)
	assert.Contains(t, logs.String(), "unknown")
}
