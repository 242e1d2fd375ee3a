package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	decimal "github.com/corvidae/decimal754"
)

var (
	parseWidthFlag int
	parseRoundFlag string
)

var parseCmd = &cobra.Command{
	Use:   "parse <value>",
	Short: "Parse a decimal literal and print its packed hex word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		width := parseWidthFlag
		if !cmd.Flags().Changed("width") {
			width = cfg.Width
		}
		if err := parseWidth(width); err != nil {
			return err
		}
		round := parseRoundFlag
		if !cmd.Flags().Changed("round") {
			round = cfg.Rounding
		}
		mode, err := parseRoundingMode(round)
		if err != nil {
			return err
		}
		decimal.SetRoundingMode(mode)
		return runParse(args[0], width)
	},
}

func init() {
	parseCmd.Flags().IntVar(&parseWidthFlag, "width", 64, "decimal width: 32, 64 or 128")
	parseCmd.Flags().StringVar(&parseRoundFlag, "round", "", "rounding mode: nearest-even|nearest-away|zero|+inf|-inf")
	rootCmd.AddCommand(parseCmd)
}

func runParse(s string, width int) error {
	switch width {
	case 32:
		d, err := decimal.ParseDecimal32(s)
		if err != nil {
			return fmt.Errorf("parse: %w", err)
		}
		fmt.Printf("bits:  0x%08x\n", d.Bits())
		describe(d)
	case 64:
		d, err := decimal.ParseDecimal64(s)
		if err != nil {
			return fmt.Errorf("parse: %w", err)
		}
		fmt.Printf("bits:  0x%016x\n", d.Bits())
		describe(d)
	case 128:
		d, err := decimal.ParseDecimal128(s)
		if err != nil {
			return fmt.Errorf("parse: %w", err)
		}
		hi, lo := d.Bits()
		fmt.Printf("bits:  0x%016x%016x\n", hi, lo)
		describe(d)
	}
	return nil
}

// textual is the subset of the three Decimal* types runParse/describe
// need: shortest-string rendering and classification.
type textual interface {
	String() string
	IsNaN() bool
	IsInf() bool
	IsZero() bool
	Signbit() bool
}

func describe(d textual) {
	fmt.Println("text: ", d.String())
	switch {
	case d.IsNaN():
		fmt.Println("class: NaN")
	case d.IsInf():
		fmt.Println("class: infinity")
	case d.IsZero():
		fmt.Println("class: zero")
	default:
		fmt.Println("class: finite")
	}
	fmt.Println("sign: ", signName(d.Signbit()))
}

func signName(neg bool) string {
	if neg {
		return "negative"
	}
	return "positive"
}
