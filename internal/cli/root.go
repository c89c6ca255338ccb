package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "localuuid",
	Short: "localuuid generates random or reproducible UUIDs",
	Long: `localuuid is a small utility around UUID generation for demo data.

By default every UUID is random (version 4). When the environment variable
CASE_DEMO_NONRANDOM_UUID_BASE names an existing directory, UUIDs become a
deterministic (version 5) sequence derived from the working directory, the
command line, and an incrementing counter, so repeated runs emit identical
identifiers. This keeps version-controlled sample output from churning on
every regeneration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. It is called once by main.main().
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
