// =============================================================================
// autoAmortize - Inspect Command
// =============================================================================
//
// Diagnostic command: run the detection pipeline on a schedule and report
// what was found, without prompting or writing anything. Useful when a
// schedule fails to process - the column map shows exactly which labels were
// recognized as months and which stayed descriptive.
//
// COMMAND USAGE:
//   autoamortize inspect --path <schedule>
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fahim-tazz/autoAmortize/internal/config"
)

// inspectPath is the path to the schedule file to inspect.
var inspectPath string

// inspectCmd represents the 'inspect' command.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show how a schedule file is detected, without processing it",
	Long: `The inspect command loads a schedule exactly like process does - header
detection, row cleanup, month-column classification - and prints the result:
the detected header row, every column with its classification, the month
range and the surviving row count. No prompts, no output files.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect()
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(
		&inspectPath,
		"path",
		"",
		"Path to the schedule file (.xlsx or .csv)",
	)
	inspectCmd.MarkFlagRequired("path")
}

// runInspect loads the schedule and reports the detection results.
func runInspect() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	loaded, err := loadSchedule(inspectPath, cfg.HeaderKeywords)
	if err != nil {
		return err
	}
	table := loaded.Table

	fmt.Printf("Header row:      %d\n", loaded.HeaderRow+1)
	fmt.Printf("Items column:    %q\n", table.Columns[table.ItemColumn()].Label)
	if idx := table.InvoiceColumn(); idx >= 0 {
		fmt.Printf("Invoice column:  %q\n", table.Columns[idx].Label)
	} else {
		fmt.Println("Invoice column:  (none)")
	}
	fmt.Printf("Rows:            %d\n", len(table.Rows))

	printColumnMap(table)

	first, last, err := table.MonthRange()
	if err != nil {
		return fmt.Errorf("%w: the header has no columns like \"May-24\" or \"01/05/2024\"", err)
	}
	fmt.Printf("Month range:     %s to %s\n", table.Columns[first].Month.Short(), table.Columns[last].Month.Short())
	return nil
}
