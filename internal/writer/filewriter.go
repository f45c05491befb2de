// Package writer provides the sinks an encoded save is written to.
package writer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joshuapare/hadeskit/internal/compress"
)

// BackupSuffix is appended to the save path, before any codec extension,
// to name its backup.
const BackupSuffix = ".bak"

// FileWriter writes save bytes to a filesystem path atomically. When Backup
// is set, the file being replaced is first stored next to it, compressed
// with Backup.
type FileWriter struct {
	Path   string
	Backup compress.Codec

	backupPath string
}

// BackupPathFor returns where a backup of path made with c is stored.
func BackupPathFor(path string, c compress.Codec) string {
	return path + BackupSuffix + c.Ext()
}

// BackupPath returns the backup written by the last WriteSave, or "" if
// none was made.
func (w *FileWriter) BackupPath() string { return w.backupPath }

// WriteSave stores the previous file as a backup if requested, then
// replaces Path with buf via temp file + rename.
func (w *FileWriter) WriteSave(buf []byte) error {
	w.backupPath = ""
	perm := fs.FileMode(0o644)

	info, err := os.Stat(w.Path)
	switch {
	case err == nil:
		perm = info.Mode().Perm()
		if w.Backup != nil {
			if err := w.backup(perm); err != nil {
				return err
			}
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf("stat %s: %w", w.Path, err)
	}
	return WriteAtomic(w.Path, buf, perm)
}

func (w *FileWriter) backup(perm fs.FileMode) error {
	prev, err := os.ReadFile(w.Path)
	if err != nil {
		return fmt.Errorf("read for backup: %w", err)
	}
	packed, err := w.Backup.Compress(prev)
	if err != nil {
		return fmt.Errorf("compress backup (%s): %w", w.Backup.Name(), err)
	}
	dst := BackupPathFor(w.Path, w.Backup)
	if err := WriteAtomic(dst, packed, perm); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	w.backupPath = dst
	return nil
}

// Restore decompresses the backup at backupPath, choosing the codec from
// its extension, and writes it atomically to dst.
func Restore(backupPath, dst string) error {
	packed, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	c := compress.ForPath(backupPath)
	data, err := c.Decompress(packed)
	if err != nil {
		return fmt.Errorf("decompress backup (%s): %w", c.Name(), err)
	}
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(dst); err == nil {
		perm = info.Mode().Perm()
	}
	return WriteAtomic(dst, data, perm)
}

// WriteAtomic writes buf to path via a temp file in the same directory,
// fsync and rename. On any failure path is left as it was.
func WriteAtomic(path string, buf []byte, perm fs.FileMode) error {
	// same directory so the rename stays on one filesystem
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".hadeskit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if chmodErr := tmpFile.Chmod(perm); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil

	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}
