// =============================================================================
// autoAmortize - Process Command
// =============================================================================
//
// The main command: load a schedule, pick a target month, and write the
// journal entry CSV.
//
// COMMAND USAGE:
//   autoamortize process --path <schedule> [flags]
//
// FLAGS:
//   --path                 : Path to the schedule file (.xlsx or .csv)
//   --month                : Target month (MMM-YY); prompted for when omitted
//   --prepayments-account  : Prepayments ledger code; prompted for when omitted
//   --dry-run              : Show the entries without writing an output file
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Load and normalize the schedule (header detection, month columns)
//   3. Resolve the target month (flag, or interactive prompt with re-ask)
//   4. Collect ledger codes (prepayments once, expense per item)
//   5. Build the debit/credit entry pairs
//   6. Write the numbered output CSV
//
// Anything not supplied by flag or config is asked for interactively, so the
// command works both scripted and as a guided session.
//
// =============================================================================

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fahim-tazz/autoAmortize/internal/config"
	"github.com/fahim-tazz/autoAmortize/internal/csvwriter"
	"github.com/fahim-tazz/autoAmortize/internal/journal"
	"github.com/fahim-tazz/autoAmortize/internal/schedule"
	"github.com/fahim-tazz/autoAmortize/pkg/utils"
)

// processPath is the path to the schedule file.
var processPath string

// processMonth is the target month given up front (MMM-YY and friends).
var processMonth string

// processPrepayAccount is the prepayments ledger code given up front.
var processPrepayAccount string

// processDryRun previews the entries without writing an output file.
var processDryRun bool

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Generate journal entries for one month of an amortization schedule",
	Long: `The process command loads a prepayment amortization schedule, finds its
header row and month columns, and writes the double-entry journal lines for
one target month as a CSV in the output directory.

For every schedule row with a non-zero amount in the target month, two lines
are produced: a debit on the item's expense ledger account and a matching
credit on the prepayments ledger account, dated to the last day of the month.

The target month and the ledger codes can be given as flags; anything omitted
is asked for interactively.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess()
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(
		&processPath,
		"path",
		"",
		"Path to the schedule file (.xlsx or .csv)",
	)
	processCmd.MarkFlagRequired("path")

	processCmd.Flags().StringVar(
		&processMonth,
		"month",
		"",
		"Target month to process (e.g. May-24); prompted for when omitted",
	)

	processCmd.Flags().StringVar(
		&processPrepayAccount,
		"prepayments-account",
		"",
		"Prepayments ledger code; prompted for when omitted",
	)

	processCmd.Flags().BoolVar(
		&processDryRun,
		"dry-run",
		false,
		"Show the generated entries without writing an output file",
	)
}

// runProcess orchestrates the whole pipeline.
func runProcess() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	loaded, err := loadSchedule(processPath, cfg.HeaderKeywords)
	if err != nil {
		return err
	}
	table := loaded.Table
	fmt.Printf("Schedule loaded: %d item(s), header found on row %d\n", len(table.Rows), loaded.HeaderRow+1)

	if verbose {
		printColumnMap(table)
	}

	first, last, err := table.MonthRange()
	if err != nil {
		return fmt.Errorf("%w: the header has no columns like \"May-24\" or \"01/05/2024\"", err)
	}
	fmt.Printf("Amortizations cover %s to %s\n", table.Columns[first].Month.Short(), table.Columns[last].Month.Short())

	stdin := bufio.NewScanner(os.Stdin)

	target, err := resolveTargetMonth(stdin, table, first, last)
	if err != nil {
		return err
	}

	prepayAccount := strings.ToUpper(strings.TrimSpace(processPrepayAccount))
	if prepayAccount == "" {
		prepayAccount = strings.ToUpper(cfg.PrepaymentsAccount)
	}
	if prepayAccount == "" {
		prepayAccount, err = prompt(stdin, "Please enter your Prepayments Ledger Code:")
		if err != nil {
			return err
		}
		prepayAccount = strings.ToUpper(prepayAccount)
	}

	entries, err := journal.Build(table, target, prepayAccount, func(item string) (string, error) {
		code, err := prompt(stdin, fmt.Sprintf("Please enter the expense ledger code for\t%s:", item))
		if err != nil {
			return "", err
		}
		return strings.ToUpper(code), nil
	})
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Printf("No items amortize in %s; nothing to write.\n", target)
		return nil
	}

	if processDryRun {
		fmt.Printf("Dry run: %d entries for %s\n", len(entries), target)
		for _, e := range entries {
			fmt.Printf("  %s  %-50s  %-10s  %-8s  %10.2f\n", e.Date.Format("02/01/2006"), e.Description, e.Reference, e.Account, e.Amount)
		}
		return nil
	}

	outPath, err := utils.NextOutputPath(cfg.OutputDir, cfg.OutputNameFormat)
	if err != nil {
		return err
	}
	if err := csvwriter.WriteFile(outPath, entries); err != nil {
		return err
	}

	fmt.Printf("Entries written to %s\n", outPath)
	return nil
}

// resolveTargetMonth picks the target month from the --month flag when given,
// otherwise prompts for it, re-asking on unreadable input or a month the
// schedule does not cover.
func resolveTargetMonth(stdin *bufio.Scanner, table *schedule.Table, first, last int) (schedule.MonthKey, error) {
	if processMonth != "" {
		target, err := schedule.ParseTargetMonth(processMonth)
		if err != nil {
			return schedule.MonthKey{}, err
		}
		if _, ok := table.MonthColumn(target); !ok {
			return schedule.MonthKey{}, fmt.Errorf("the input document only has amortizations from %s to %s", table.Columns[first].Month.Short(), table.Columns[last].Month.Short())
		}
		return target, nil
	}

	for {
		input, err := prompt(stdin, "Please enter the month and year to process (MMM-YY):")
		if err != nil {
			return schedule.MonthKey{}, err
		}
		target, err := schedule.ParseTargetMonth(input)
		if err != nil {
			fmt.Printf("Sorry, %s is not a valid month. Please use format MMM-YY, MMM-YYYY or MMMYY, MMMYYYY.\n", strings.TrimSpace(input))
			continue
		}
		if _, ok := table.MonthColumn(target); !ok {
			fmt.Printf("Sorry, the input document only has amortizations from %s to %s.\nPlease enter a month within that range.\n", table.Columns[first].Month.Short(), table.Columns[last].Month.Short())
			continue
		}
		return target, nil
	}
}

// prompt prints a question and reads one trimmed line from stdin.
func prompt(stdin *bufio.Scanner, question string) (string, error) {
	fmt.Println(question)
	if !stdin.Scan() {
		if err := stdin.Err(); err != nil {
			return "", err
		}
		return "", errors.New("input closed before the question was answered")
	}
	return strings.TrimSpace(stdin.Text()), nil
}

// printColumnMap dumps how each header column classified.
func printColumnMap(table *schedule.Table) {
	fmt.Println("Column map:")
	for i, col := range table.Columns {
		if col.IsMonth() {
			fmt.Printf("  %2d  %-30q  month %s\n", i, col.Label, col.Month)
		} else {
			fmt.Printf("  %2d  %-30q  descriptive\n", i, col.Label)
		}
	}
}
