package save

import "fmt"

// ComputedChecksum returns the checksum Decode computed over the region the
// stored checksum covers.
func (s *Save) ComputedChecksum() uint32 { return s.computed }

// ChecksumOK reports whether the stored checksum matches the computed one.
// Only meaningful for a Save returned by Decode or Open.
func (s *Save) ChecksumOK() bool {
	return s.Header.Checksum == s.computed
}

// Verify returns ErrChecksumMismatch, wrapped with both values, when the
// stored checksum does not match.
func (s *Save) Verify() error {
	if s.ChecksumOK() {
		return nil
	}
	return fmt.Errorf("save: stored %#08x, computed %#08x: %w",
		s.Header.Checksum, s.computed, ErrChecksumMismatch)
}
