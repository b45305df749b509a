package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/cheta/cmd/reactions"
)

// LogLevelEnv selects the log level (debug, info, warn, error)
const LogLevelEnv = "CHETA_LOG_LEVEL"

const usageLine = "Usage: cheta reactions"

// rootCmd represents the base command; anything but a known subcommand prints usage
var rootCmd = &cobra.Command{
	Use:           "cheta",
	Short:         "Pick the next YouTube reaction video for you",
	Long:          `Fetch recent videos from your configured channels, let Gemini rank them against your preferences and open the top pick in the browser.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Flags are never defined here, so anything that looks like one is just another argument
	DisableFlagParsing: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd, os.Getenv(LogLevelEnv))
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		return nil
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
		Args:   cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		},
	})
	rootCmd.AddCommand(reactions.NewReactionsCommand(reactions.NewServiceFactory()))
}

// Execute runs the root command and reports errors on stderr
func Execute() error {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

// newLogger builds the text logger on the command's stderr
func newLogger(cmd *cobra.Command, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", LogLevelEnv, level, err)
		}
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})), nil
}
