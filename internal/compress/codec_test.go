package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// saveLike resembles an envelope: a short header and metadata followed by
// a long run of zero padding.
func saveLike() []byte {
	b := make([]byte, 256<<10)
	copy(b, []byte("SGB1\x98\x03\xe6\x11"))
	for i := 8; i < 4096; i++ {
		b[i] = byte(i * 7)
	}
	return b
}

func TestRoundTripAllCodecs(t *testing.T) {
	inputs := map[string][]byte{
		"save-like": saveLike(),
		"small":     []byte("GameState.Resources.Gems"),
		"empty":     {},
	}
	for _, name := range Names() {
		c, err := Get(name)
		require.NoError(t, err)
		for label, in := range inputs {
			t.Run(name+"/"+label, func(t *testing.T) {
				packed, err := c.Compress(in)
				require.NoError(t, err)
				got, err := c.Decompress(packed)
				require.NoError(t, err)
				assert.True(t, bytes.Equal(in, got), "round trip mismatch")
			})
		}
	}
}

func TestCompressionShrinksPadding(t *testing.T) {
	in := saveLike()
	for _, name := range []string{ZstdName, S2Name, LZ4Name} {
		c, err := Get(name)
		require.NoError(t, err)
		packed, err := c.Compress(in)
		require.NoError(t, err)
		assert.Less(t, len(packed), len(in)/4, name)
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("gzip")
	require.ErrorIs(t, err, ErrUnknownCodec)
	assert.Contains(t, err.Error(), "gzip")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"copy", "lz4", "s2", "zstd"}, Names())
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"Profile1.sav.bak", NoOpName},
		{"Profile1.sav.bak.zst", ZstdName},
		{"Profile1.sav.bak.s2", S2Name},
		{"/saves/Profile1.sav.bak.lz4", LZ4Name},
		{"Profile1.sav.bak.gz", NoOpName},
		{"noext", NoOpName},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ForPath(tt.path).Name())
		})
	}
}

func TestDecompressCorrupt(t *testing.T) {
	garbage := []byte("definitely not compressed data at all")
	for _, name := range []string{ZstdName, S2Name, LZ4Name} {
		c, err := Get(name)
		require.NoError(t, err)
		_, err = c.Decompress(garbage)
		assert.Error(t, err, name)
	}
}

func TestNoOpCopies(t *testing.T) {
	in := []byte{1, 2, 3}
	out, err := NewNoOpCompressor().Compress(in)
	require.NoError(t, err)
	out[0] = 9
	assert.Equal(t, byte(1), in[0])
}
