package save

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/joshuapare/hadeskit/internal/format"
)

// DefaultSize is the total size of a save file as the game writes it.
const DefaultSize = format.DefaultEnvelopeSize

// Config controls the envelope layout.
type Config struct {
	// Size is the total envelope size in bytes. Zero means DefaultSize.
	Size int

	// ChecksumPadding extends the checksummed region from the end of the
	// metadata to the end of the envelope, matching the game's writer.
	ChecksumPadding bool

	// Logger receives debug and warning records. Nil discards.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration for saves written by the game.
func DefaultConfig() Config {
	return Config{Size: DefaultSize}
}

// Validate reports whether c can describe an envelope.
func (c Config) Validate() error {
	if c.Size != 0 && c.Size < format.HeaderSize {
		return fmt.Errorf("%w: size %d is smaller than the %d-byte header", ErrInvalidConfig, c.Size, format.HeaderSize)
	}
	return nil
}

func (c Config) size() int {
	if c.Size == 0 {
		return DefaultSize
	}
	return c.Size
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return discard
	}
	return c.Logger
}
