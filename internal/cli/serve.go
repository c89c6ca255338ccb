package cli

import (
	"context"
	"time"

	"github.com/kchason/CDO-Utility-Local-UUID/internal/app"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the demo batch server",
	Long: `Start the HTTP server that issues batches of sample identifiers.

The server reads config/config.yaml (or /config/config.yaml outside of
LOCAL=true) and honors the same CASE_DEMO_NONRANDOM_UUID_BASE opt-in as the
library: with it set, issued batches are reproducible across restarts.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		application := app.New()    // Initialize the application
		wait := application.Start() // Start and wait for the termination signal
		<-wait                      // Wait for the termination signal

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		application.Stop(ctx) // Stop the application gracefully

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
