package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hadeskit/lua"
)

var getShowType bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowType, "type", false, "Show type information")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <save> <path>",
		Short: "Print one value from the script state",
		Long: `The get command resolves a key path in the script state and prints the
value found there.

Example:
  savectl get Profile1.sav GameState.Resources.Gems
  savectl get Profile1.sav GameState.Resources.Gems --type
  savectl get Profile1.sav GameState/Flags --sep /`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	s, _, err := openSave(args[0])
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
	v := e.Value()

	if jsonOut {
		return printJSON(map[string]any{
			"path":  args[1],
			"type":  v.Kind().String(),
			"value": lua.ToNative(v),
		})
	}

	if _, isTable := v.(*lua.Table); isTable {
		if !quiet {
			writeTree(os.Stdout, keyLabel(e.Key()), v, 1)
		}
		return nil
	}
	if getShowType {
		printInfo("%s (%s)\n", plain(v), v.Kind())
		return nil
	}
	printInfo("%s\n", plain(v))
	return nil
}
