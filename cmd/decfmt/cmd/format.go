package cmd

import (
	"fmt"

	decimal "github.com/corvidae/decimal754"
	"github.com/spf13/cobra"
)

var (
	formatWidthFlag int
	formatModeFlag  string
	formatPrecFlag  int
)

var formatCmd = &cobra.Command{
	Use:   "format <hex>",
	Short: "Format a packed hex word as text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		width := formatWidthFlag
		if !cmd.Flags().Changed("width") {
			width = cfg.Width
		}
		if err := parseWidth(width); err != nil {
			return err
		}
		mode := formatModeFlag
		if !cmd.Flags().Changed("mode") {
			mode = cfg.Format
		}
		format, err := parseFormat(mode)
		if err != nil {
			return err
		}
		prec := formatPrecFlag
		if !cmd.Flags().Changed("prec") {
			prec = cfg.Precision
		}
		return runFormat(args[0], width, format, prec)
	},
}

func init() {
	formatCmd.Flags().IntVar(&formatWidthFlag, "width", 64, "decimal width: 32, 64 or 128")
	formatCmd.Flags().StringVar(&formatModeFlag, "mode", "general", "format: general|fixed|scientific|hex")
	formatCmd.Flags().IntVar(&formatPrecFlag, "prec", -1, "precision (-1 for shortest round-trip)")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(hexWord string, width int, format decimal.Format, prec int) error {
	hi, lo, err := parseHexWord(hexWord)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	switch width {
	case 32:
		d := decimal.Decimal32FromBits(uint32(lo))
		return printFormatted(d, format, prec, 15)
	case 64:
		d := decimal.Decimal64FromBits(lo)
		return printFormatted(d, format, prec, 25)
	case 128:
		d := decimal.Decimal128FromBits(hi, lo)
		return printFormatted(d, format, prec, 41)
	}
	return nil
}

// formattable is the subset common to AppendFormat callers.
type formattable interface {
	AppendFormat(dst []byte, format decimal.Format, precision int) (int, decimal.ErrorCode)
}

func printFormatted(d formattable, format decimal.Format, prec, maxChars int) error {
	buf := make([]byte, maxChars)
	n, ec := d.AppendFormat(buf, format, prec)
	if ec != decimal.OK {
		return fmt.Errorf("format: %s", ec)
	}
	fmt.Println(string(buf[:n]))
	return nil
}
