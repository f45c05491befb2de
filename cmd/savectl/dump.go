package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hadeskit/lua"
)

var dumpDepth int

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpDepth, "depth", 0, "Maximum nesting to print (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <save> [path]",
		Short: "Print the script state, or the subtree at path",
		Long: `The dump command prints the embedded script state as an indented tree.
With a path, only that subtree is printed.

Example:
  savectl dump Profile1.sav
  savectl dump Profile1.sav GameState.Resources
  savectl dump Profile1.sav --depth 2
  savectl dump Profile1.sav GameState --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	s, _, err := openSave(args[0])
	if err != nil {
		return err
	}

	if len(args) == 2 {
		keys, err := splitPath(args[1], pathSep)
		if err != nil {
			return err
		}
		e, ok := s.FindEntry(keys...)
		if !ok {
			return fmt.Errorf("path not found: %s", args[1])
		}
		if jsonOut {
			return printJSON(lua.ToNative(e.Value()))
		}
		if !quiet {
			writeTree(os.Stdout, keyLabel(e.Key()), e.Value(), dumpDepth)
		}
		return nil
	}

	if jsonOut {
		out := make([]any, len(s.Metadata.LuaState))
		for i, v := range s.Metadata.LuaState {
			out[i] = lua.ToNative(v)
		}
		return printJSON(out)
	}
	if !quiet {
		for i, v := range s.Metadata.LuaState {
			writeTree(os.Stdout, "["+strconv.Itoa(i)+"]", v, dumpDepth)
		}
	}
	return nil
}
