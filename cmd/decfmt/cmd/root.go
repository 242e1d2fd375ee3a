package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "decfmt",
	Short: "Inspect and convert IEEE 754-2019 decimal32/64/128 values",
	Long: `decfmt parses and formats decimal32, decimal64 and decimal128 values
using the binary-integer-significand (BID) encoding.

Subcommands:
  parse   - parse a decimal literal and print its packed hex word
  format  - format a packed hex word as text
  tui     - interactive decimal-format explorer`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func printError(msg string, err error) {
	fmt.Println("error:", msg+":", err)
}
