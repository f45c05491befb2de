package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/joshuapare/hadeskit/save"
)

// fileConfig is the content of savectl.ini:
//
//	[save]
//	dir = ~/Saved Games/Hades
//	size = 3145728
//	checksum_padding = false
//	backup = zstd
//
//	[log]
//	level = debug
//	file = /tmp/savectl.log
type fileConfig struct {
	Dir             string
	Size            int
	ChecksumPadding bool
	Backup          string
	LogLevel        string
	LogFile         string
}

func defaultFileConfig() fileConfig {
	return fileConfig{Size: save.DefaultSize}
}

// defaultConfigPath returns the config location used when --config is not
// given, or "" when the platform has no user config dir.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "savectl", "savectl.ini")
}

// loadConfig reads path, or the default location when path is empty. A
// missing default file yields the defaults; a missing explicit file is an
// error.
func loadConfig(path string) (fileConfig, error) {
	fc := defaultFileConfig()
	if path == "" {
		path = defaultConfigPath()
		if path == "" {
			return fc, nil
		}
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return fc, nil
		}
	}

	f, err := ini.Load(path)
	if err != nil {
		return fc, fmt.Errorf("config %s: %w", path, err)
	}

	sec := f.Section("save")
	fc.Dir = expandHome(sec.Key("dir").String())
	if sec.HasKey("size") {
		if fc.Size, err = sec.Key("size").Int(); err != nil {
			return fc, fmt.Errorf("config %s: [save] size: %w", path, err)
		}
	}
	if sec.HasKey("checksum_padding") {
		if fc.ChecksumPadding, err = sec.Key("checksum_padding").Bool(); err != nil {
			return fc, fmt.Errorf("config %s: [save] checksum_padding: %w", path, err)
		}
	}
	fc.Backup = sec.Key("backup").In("", append([]string{""}, save.BackupCodecs()...))
	if raw := sec.Key("backup").String(); raw != fc.Backup {
		return fc, fmt.Errorf("config %s: [save] backup %q: want one of %v", path, raw, save.BackupCodecs())
	}

	logSec := f.Section("log")
	fc.LogLevel = logSec.Key("level").String()
	fc.LogFile = expandHome(logSec.Key("file").String())

	if err := (save.Config{Size: fc.Size}).Validate(); err != nil {
		return fc, fmt.Errorf("config %s: %w", path, err)
	}
	return fc, nil
}

func expandHome(p string) string {
	if p != "~" && !hasHomePrefix(p) {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}

func hasHomePrefix(p string) bool {
	return len(p) > 1 && p[0] == '~' && (p[1] == '/' || p[1] == filepath.Separator)
}

// resolveSavePath returns path unchanged when it exists or is absolute;
// otherwise it is looked up in the configured save directory.
func resolveSavePath(path string) string {
	if filepath.IsAbs(path) || settings.Dir == "" {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	candidate := filepath.Join(settings.Dir, path)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return path
}
