package cmd

import (
	"fmt"
	"os"

	"github.com/burrow-io/burrow-site/config"
	"github.com/burrow-io/burrow-site/logging"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	exitGeneral    = 1
	exitValidation = 2
)

var rootCmd = &cobra.Command{
	Use:   "burrow-site",
	Short: "burrow-site - build configuration for the Burrow site",
	Long: `burrow-site validates the Burrow site's build configuration and provides the
tooling that consumes it: sitemap generation and a preview server for the built output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML build configuration (defaults to the built-in configuration)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var verr *config.ValidationError
	if errors.As(err, &verr) {
		return exitValidation
	}
	return exitGeneral
}

// loadBuildConfiguration resolves the configuration selected by --config.
func loadBuildConfiguration(cmd *cobra.Command) (config.BuildConfiguration, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.LoadConfiguration()
	}
	return config.LoadFile(path)
}

func commandLogger(cmd *cobra.Command, component string) zerolog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.WithComponent(logging.New(logging.Config{
		Level:  level,
		Output: cmd.ErrOrStderr(),
	}), component)
}
