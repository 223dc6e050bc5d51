package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bytewin/internal/config"
	"github.com/joshuapare/bytewin/internal/logger"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	configPath string

	// cfg holds defaults from the config file, loaded before any command runs.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "bytewin",
	Short: "Compare two binary files around an offset",
	Long: `bytewin compares two binary files byte-by-byte inside a window around
an offset and prints a side-by-side hex table, marking every position where the
files differ. It is meant for tracking down mismatches between a generated
artifact and a known-good reference file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(logger.Options{Verbose: verbose && !quiet})
		return loadConfig()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output on stderr")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file (default $"+config.EnvPath+" or <user config dir>/bytewin/config.toml)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file into cfg. An explicitly named file must
// exist; the default location is optional.
func loadConfig() error {
	path := configPath
	required := path != ""
	if !required {
		path = config.DefaultPath()
	}
	loaded, err := config.Load(path, required)
	if err != nil {
		return err
	}
	logger.L.Debug("config loaded", "path", path, "context", loaded.Context, "clamp", loaded.Clamp)
	cfg = loaded
	return nil
}

// Helper functions for output

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}
