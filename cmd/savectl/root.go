package main

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/joshuapare/hadeskit/cmd/savectl/logger"
	"github.com/joshuapare/hadeskit/save"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// Global flags
	verbose         bool
	quiet           bool
	jsonOut         bool
	configPath      string
	sizeFlag        int
	checksumPadding bool
	pathSep         string

	// settings is the config file merged with flag overrides.
	settings = defaultFileConfig()
)

var rootCmd = &cobra.Command{
	Use:   "savectl",
	Short: "Inspect and edit game save files",
	Long: `savectl reads, verifies and edits save files: a fixed-size envelope
holding scalar metadata and the embedded script state. Edits rewrite the
file atomically and can keep a compressed backup of the previous version.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: user config dir/savectl/savectl.ini)")
	rootCmd.PersistentFlags().IntVar(&sizeFlag, "size", save.DefaultSize, "Total envelope size in bytes")
	rootCmd.PersistentFlags().
		BoolVar(&checksumPadding, "checksum-padding", false, "Checksum covers the zero padding too")
	rootCmd.PersistentFlags().StringVar(&pathSep, "sep", ".", "Separator between keys in a path")
}

// setup loads the config file, applies flag overrides and starts logging.
func setup(cmd *cobra.Command, _ []string) error {
	fc, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("size") {
		fc.Size = sizeFlag
	}
	if flags.Changed("checksum-padding") {
		fc.ChecksumPadding = checksumPadding
	}
	settings = fc

	opts := logger.Options{
		Enabled: verbose || fc.LogLevel != "" || fc.LogFile != "",
		File:    fc.LogFile,
	}
	if fc.LogLevel != "" {
		if opts.Level, err = logger.ParseLevel(fc.LogLevel); err != nil {
			return err
		}
	}
	if verbose {
		opts.Level = min(opts.Level, logger.LevelDebug)
	}
	return logger.Init(opts)
}

func execute() {
	defer logger.Close()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		logger.Close()
		os.Exit(1)
	}
}

// saveConfig returns the envelope settings for the current invocation.
func saveConfig() save.Config {
	return save.Config{
		Size:            settings.Size,
		ChecksumPadding: settings.ChecksumPadding,
		Logger:          logger.L,
	}
}

// openSave resolves path against the configured save directory and opens it.
func openSave(path string) (*save.Save, string, error) {
	path = resolveSavePath(path)
	printVerbose("Opening save: %s\n", path)
	s, err := save.Open(path, saveConfig())
	if err != nil {
		return nil, path, fmt.Errorf("failed to open save: %w", err)
	}
	return s, path, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as indented JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
