package reactions

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// NewReactionsCommand creates the reactions command
func NewReactionsCommand(factory Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "reactions",
		Short: "Open the reaction video you are most likely to enjoy",
		Long: `Fetch the latest videos of every configured channel, ask Gemini to pick the best
match for your preferences and open it in the default web browser.`,
		// Trailing arguments are ignored
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			engine, opener, err := factory.CreateServices(ctx)
			if err != nil {
				return err
			}

			rec, err := engine.Run(ctx)
			if err != nil {
				return fmt.Errorf("failed to get recommendation: %w", err)
			}

			slog.Info("opening URL", slog.String("url", rec.URL))
			if err := opener.Open(ctx, rec.URL); err != nil {
				// The pick is already logged; a missing browser is not fatal
				slog.Warn("failed to open browser", slog.String("url", rec.URL), slog.Any("error", err))
			}

			return nil
		},
	}
}
