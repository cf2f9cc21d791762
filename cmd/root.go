package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"amalgam/pkg/amalgam"
	"amalgam/pkg/logging"
	"amalgam/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var debug bool

// RootCmd is the base command when called without any subcommands.
// It amalgamates the library rooted at the current directory.
var RootCmd = &cobra.Command{
	Use:   "amalgam",
	Short: "Amalgam builds the single-header cpputils distribution",
	Long: `Amalgam concatenates the cpputils headers, in their declared order, and all
sources into one file, dropping the library's own includes and pragma-once guards.
It must be launched from the library root.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Setup(debug, "amalgam", version.Version); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newAmalgamator()
		if err != nil {
			return err
		}

		outputPath, err := a.Run(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Result written to %s\n", outputPath)
		return nil
	},
}

// newAmalgamator builds an amalgamator for the current working directory.
func newAmalgamator() (*amalgam.Amalgamator, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return amalgam.New(amalgam.DefaultConfig(workDir), logging.L()), nil
}

// Execute runs the root command and returns its error. SIGINT cancels the
// command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		logging.L().Debug("Command failed", zap.Error(err))
		return err
	}
	return nil
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable development logging")
}
