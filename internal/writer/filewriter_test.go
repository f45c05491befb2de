package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hadeskit/internal/compress"
)

func TestWriteSaveCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Profile1.sav")
	w := &FileWriter{Path: path}
	require.NoError(t, w.WriteSave([]byte("new")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
	assert.Empty(t, w.BackupPath())
	assertNoTemps(t, filepath.Dir(path))
}

func TestWriteSaveKeepsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Profile1.sav")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, (&FileWriter{Path: path}).WriteSave([]byte("new")))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestBackupAndRestoreEachCodec(t *testing.T) {
	for _, name := range compress.Names() {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "Profile1.sav")
			orig := append([]byte("SGB1 original contents"), make([]byte, 4096)...)
			require.NoError(t, os.WriteFile(path, orig, 0o644))

			codec, err := compress.Get(name)
			require.NoError(t, err)
			w := &FileWriter{Path: path, Backup: codec}
			require.NoError(t, w.WriteSave([]byte("edited")))

			assert.Equal(t, BackupPathFor(path, codec), w.BackupPath())
			assert.FileExists(t, w.BackupPath())

			require.NoError(t, Restore(w.BackupPath(), path))
			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, orig, got)
			assertNoTemps(t, dir)
		})
	}
}

func TestNoBackupForNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Profile1.sav")
	w := &FileWriter{Path: path, Backup: compress.NewZstdCompressor()}
	require.NoError(t, w.WriteSave([]byte("first")))
	assert.Empty(t, w.BackupPath())
	assert.NoFileExists(t, path+".bak.zst")
}

func TestFailedRenameLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "occupied")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), nil, 0o644))

	err := WriteAtomic(target, []byte("x"), 0o644)
	require.Error(t, err)
	assertNoTemps(t, dir)
	assert.DirExists(t, target)
}

func TestRestoreMissingBackup(t *testing.T) {
	dir := t.TempDir()
	err := Restore(filepath.Join(dir, "gone.bak"), filepath.Join(dir, "Profile1.sav"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func assertNoTemps(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".hadeskit-tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
