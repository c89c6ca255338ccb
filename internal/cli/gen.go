package cli

import (
	"fmt"

	localuuid "github.com/kchason/CDO-Utility-Local-UUID"
	"github.com/spf13/cobra"
)

var genCount int

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Print newly generated UUIDs, one per line",
	Long: `Print newly generated UUIDs, one per line.

With CASE_DEMO_NONRANDOM_UUID_BASE set to an existing directory, re-running
the same invocation from the same working directory prints the exact same
sequence.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if genCount < 1 {
			return fmt.Errorf("count must be at least 1, got %d", genCount)
		}

		provider := localuuid.NewProvider(localuuid.Options{})
		for i := 0; i < genCount; i++ {
			fmt.Fprintln(cmd.OutOrStdout(), provider.Generate())
		}

		return nil
	},
}

func init() {
	genCmd.Flags().IntVarP(&genCount, "count", "n", 1, "number of UUIDs to generate")
	rootCmd.AddCommand(genCmd)
}
