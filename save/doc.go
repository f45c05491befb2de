// Package save decodes and re-encodes game save files.
//
// # File Structure
//
// A save is a fixed-size envelope, little-endian throughout:
//
//	[0..4)   signature (opaque, copied through)
//	[4..8)   Adler-32 of the metadata region
//	[8..)    metadata: version, location, runs, two point counters,
//	         two flags, a key list, two map names, then the embedded
//	         script state as a length-prefixed value-stream
//	[...)    zero padding up to the configured size
//
// Text fields are prefixed with a character count, not a byte count. See
// package lua for the value-stream format.
//
// # Loading and Saving
//
//	s, err := save.Open("Profile1.sav", save.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	e, ok := s.FindEntry("GameState", "Resources", "Gems")
//	if ok {
//	    e.Set(lua.Number(2000))
//	}
//	if _, err := s.WriteFile("Profile1.sav", save.DefaultConfig(), save.WriteOptions{Backup: "zstd"}); err != nil {
//	    log.Fatal(err)
//	}
//
// Encoding happens before the destination is opened, so a save that no
// longer fits the envelope fails with ErrSizeOverflow and leaves the file
// untouched.
//
// # Checksums
//
// The stored checksum is not verified on load. Decode records the checksum
// of the same region so a caller can opt in with ChecksumOK or Verify.
package save
