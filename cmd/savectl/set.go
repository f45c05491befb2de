package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hadeskit/save"
)

var (
	setType   string
	setBackup string
	setDryRun bool
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setType, "type", "", "Value type (number, bool, string, nil); default keeps the current type")
	cmd.Flags().StringVar(&setBackup, "backup", "", "Backup codec for the replaced file (copy, zstd, lz4, s2); default from config")
	cmd.Flags().BoolVar(&setDryRun, "dry-run", false, "Encode the edit but do not write it")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <save> <path> <value>",
		Short: "Replace one value in the script state",
		Long: `The set command replaces the value at a key path and rewrites the save.
The file is replaced atomically; if the edited save no longer fits the
envelope nothing is written.

Example:
  savectl set Profile1.sav GameState.Resources.Gems 2000
  savectl set Profile1.sav GameState.Flags false --backup zstd
  savectl set Profile1.sav CurrentRun.Hero Zagreus --type string --dry-run`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	s, path, err := openSave(args[0])
	if err != nil {
		return err
	}
	keys, err := splitPath(args[1], pathSep)
	if err != nil {
		return err
	}
	e, ok := s.FindEntry(keys...)
	if !ok {
		return fmt.Errorf("path not found: %s", args[1])
	}
	old := e.Value()
	v, err := parseValue(args[2], setType, old)
	if err != nil {
		return fmt.Errorf("failed to parse value: %w", err)
	}
	e.Set(v)

	backup := setBackup
	if backup == "" {
		backup = settings.Backup
	}

	var backupPath string
	if setDryRun {
		if _, err := s.Encode(saveConfig()); err != nil {
			return fmt.Errorf("failed to encode save: %w", err)
		}
	} else {
		backupPath, err = s.WriteFile(path, saveConfig(), save.WriteOptions{Backup: backup})
		if err != nil {
			return fmt.Errorf("failed to write save: %w", err)
		}
	}

	if jsonOut {
		return printJSON(map[string]any{
			"save":    path,
			"path":    args[1],
			"old":     old.String(),
			"new":     v.String(),
			"type":    v.Kind().String(),
			"dry_run": setDryRun,
			"backup":  backupPath,
		})
	}

	printInfo("\nSetting value in %s:\n", path)
	printInfo("  Path: %s\n", args[1])
	printInfo("  Old: %s\n", old)
	printInfo("  New: %s\n", v)
	if setDryRun {
		printInfo("\nDry run: save encodes cleanly, nothing written\n")
		return nil
	}
	printInfo("\n✓ Value set successfully\n")
	if backupPath != "" {
		printInfo("Backup created: %s\n", backupPath)
	}
	return nil
}
