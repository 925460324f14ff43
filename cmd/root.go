// =============================================================================
// autoAmortize - Root Command
// =============================================================================
//
// Defines the root command for the Cobra CLI. All subcommands attach here.
//
// COBRA CLI STRUCTURE:
//   rootCmd (autoamortize)
//   ├── processCmd (autoamortize process)
//   ├── inspectCmd (autoamortize inspect)
//   └── versionCmd (autoamortize version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
// Overridden with the --config flag.
var cfgFile string

// verbose enables extra diagnostic output when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "autoamortize",
	Short: "autoAmortize - Turn a prepayment amortization schedule into journal entries",

	Long: `autoAmortize reads a month-by-month prepayment amortization schedule
(XLSX or CSV) and generates double-entry journal lines for one target month,
written as a CSV ready for import into accounting software.

The tool copes with real-world spreadsheets: the header row is located
automatically even when preceded by titles and blank rows, and month columns
are recognized in any common labeling ("May2024", "May-24", "01/05/2024",
native date cells, ...).

Example Usage:
  autoamortize process --path schedule.xlsx        # interactive run
  autoamortize process --path s.csv --month May-24 # month given up front
  autoamortize inspect --path schedule.xlsx        # show what was detected`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (optional; defaults apply when absent)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
