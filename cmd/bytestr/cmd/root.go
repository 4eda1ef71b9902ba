package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/bytestr/core/config"
	mdwlog "github.com/msto63/bytestr/core/log"
	"github.com/msto63/bytestr/utils/bytestr"
)

var (
	cfgFile string
	verbose bool
)

// app holds what PersistentPreRunE prepared for the running command
var app struct {
	settings *config.Settings
	logger   *mdwlog.Logger
	styles   styles
}

var rootCmd = &cobra.Command{
	Use:   "bytestr",
	Short: "Inspect and exercise growable byte strings",
	Long: `bytestr builds byte-string buffers from the command line and runs
buffer operations on them.

Commands:
  inspect  - show length, capacity and terminator of a buffer
  find     - first occurrence of a needle
  rfind    - last occurrence of a needle
  substr   - copy a byte range
  concat   - join buffers
  compare  - lexicographic ordering of two buffers
  words    - split input into whitespace-delimited words
  grow     - count reallocations for a run of appends

Settings are read from bytestr.toml or bytestr.yaml in the working
directory or the user config directory, and can be overridden with
BYTESTR_* environment variables.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and reports a failure on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if app.logger != nil {
			app.logger.LogError(err)
		}
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./bytestr.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setup(cmd *cobra.Command, args []string) error {
	var (
		settings *config.Settings
		err      error
	)
	if cfgFile != "" {
		settings, err = config.Load(cfgFile)
	} else {
		settings, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return err
	}

	logCfg := settings.LoggerConfig("bytestr")
	logCfg.Output = cmd.ErrOrStderr()
	logger := mdwlog.NewWithConfig(logCfg).
		WithCorrelationID(uuid.New().String()).
		WithField("command", cmd.Name())
	if verbose {
		logger = logger.WithLevel(mdwlog.LevelDebug)
	}

	app.settings = settings
	app.logger = logger
	app.styles = newStyles(settings.Output.Color)

	logger.Debug("settings loaded", mdwlog.Fields{
		"source":   settings.Source(),
		"settings": settings.String(),
	})
	return nil
}

// newBuffer builds a buffer from a command argument with the configured
// initial capacity reserved
func newBuffer(s string) *bytestr.Buffer {
	b := bytestr.FromString(s)
	b.Reserve(app.settings.Buffer.InitialCapacity)
	return b
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
