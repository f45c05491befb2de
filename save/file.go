package save

import (
	"fmt"

	"github.com/joshuapare/hadeskit/internal/compress"
	"github.com/joshuapare/hadeskit/internal/mmfile"
	"github.com/joshuapare/hadeskit/internal/writer"
)

// WriteOptions controls WriteFile.
type WriteOptions struct {
	// Backup names the codec used to keep the replaced file: "" for no
	// backup, or one of BackupCodecs. The backup is stored as
	// <path>.bak with the codec's extension.
	Backup string
}

// BackupCodecs lists the names accepted by WriteOptions.Backup.
func BackupCodecs() []string { return compress.Names() }

// Open maps the file at path and decodes it. The mapping is released
// before Open returns.
func Open(path string, cfg Config) (*Save, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = release() }()

	s, err := Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// WriteFile encodes s and atomically replaces path with the result. It
// returns the backup path, or "" when no backup was made. Nothing on disk
// changes if encoding fails.
func (s *Save) WriteFile(path string, cfg Config, opts WriteOptions) (string, error) {
	var codec compress.Codec
	if opts.Backup != "" {
		c, err := compress.Get(opts.Backup)
		if err != nil {
			return "", fmt.Errorf("save: backup: %w", err)
		}
		codec = c
	}

	data, err := s.Encode(cfg)
	if err != nil {
		return "", err
	}

	w := &writer.FileWriter{Path: path, Backup: codec}
	if err := w.WriteSave(data); err != nil {
		return "", fmt.Errorf("save: write %s: %w", path, err)
	}
	if w.BackupPath() != "" {
		cfg.logger().Info("save: backup written", "path", w.BackupPath(), "codec", codec.Name())
	}
	return w.BackupPath(), nil
}

// RestoreBackup writes the backup at backupPath back to dst, choosing the
// codec from the backup's extension.
func RestoreBackup(backupPath, dst string) error {
	if err := writer.Restore(backupPath, dst); err != nil {
		return fmt.Errorf("save: restore %s: %w", backupPath, err)
	}
	return nil
}
