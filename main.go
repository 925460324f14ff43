// =============================================================================
// autoAmortize - Main Entry Point
// =============================================================================
//
// autoAmortize converts a prepayment-amortization schedule (XLSX or CSV) into
// double-entry journal lines for a single target month, ready for import into
// accounting software.
//
// USAGE:
//   autoamortize process --path schedule.xlsx   - Generate journal lines
//   autoamortize inspect --path schedule.xlsx   - Show detected header/months
//   autoamortize version                        - Display the version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/fahim-tazz/autoAmortize/cmd"
)

func main() {
	cmd.Execute()
}
