package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/corvidae/decimal754/internal/tui/explorer"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive decimal-format explorer",
	Long: `Launches a terminal UI that parses whatever you type as a decimal
literal and shows its packed encoding alongside all four text
presentations (general, fixed, scientific, hex), live.

  tab     switch between decimal32/64/128
  ctrl+r  cycle the ambient rounding mode
  esc     quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(explorer.NewModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "tui error:", err)
		return err
	}
	return nil
}
