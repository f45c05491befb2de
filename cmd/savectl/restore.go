package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hadeskit/save"
)

func init() {
	rootCmd.AddCommand(newRestoreCmd())
}

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <backup> <save>",
		Short: "Restore a save from a backup written by set",
		Long: `The restore command decompresses a backup, choosing the codec from its
extension (.zst, .lz4, .s2, or none for a plain copy), and atomically
replaces the save with it.

Example:
  savectl restore Profile1.sav.bak.zst Profile1.sav`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(args)
		},
	}
	return cmd
}

func runRestore(args []string) error {
	backupPath := resolveSavePath(args[0])
	dst := resolveSavePath(args[1])

	printVerbose("Restoring %s from %s\n", dst, backupPath)
	if err := save.RestoreBackup(backupPath, dst); err != nil {
		return err
	}

	s, err := save.Open(dst, saveConfig())
	if err != nil {
		return fmt.Errorf("restored file does not decode: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"backup":      backupPath,
			"save":        dst,
			"checksum_ok": s.ChecksumOK(),
		})
	}
	printInfo("✓ Restored %s from %s\n", dst, backupPath)
	return nil
}
