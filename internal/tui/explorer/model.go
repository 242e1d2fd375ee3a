// Package explorer implements decfmt's interactive decimal-format
// explorer: a single text input whose contents are parsed live into a
// decimal32/64/128 value, with the packed encoding and all four text
// presentations (general/fixed/scientific/hex) re-rendered on every
// keystroke, and the ambient rounding mode cyclable in place.
package explorer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	decimal "github.com/corvidae/decimal754"
)

var widths = []int{32, 64, 128}

var roundingModes = []decimal.RoundingMode{
	decimal.ToNearestEven,
	decimal.ToNearestAway,
	decimal.ToZero,
	decimal.ToPositiveInf,
	decimal.ToNegativeInf,
}

func roundingModeName(m decimal.RoundingMode) string {
	switch m {
	case decimal.ToNearestEven:
		return "nearest-even"
	case decimal.ToNearestAway:
		return "nearest-away"
	case decimal.ToZero:
		return "zero"
	case decimal.ToPositiveInf:
		return "+inf"
	case decimal.ToNegativeInf:
		return "-inf"
	default:
		return "?"
	}
}

// Model is the bubbletea model backing `decfmt tui`.
type Model struct {
	input      textinput.Model
	width      int // index into widths
	roundIdx   int // index into roundingModes
	err        error
	bitsLine   string
	generalStr string
	fixedStr   string
	sciStr     string
	hexStr     string
}

// NewModel constructs the explorer's initial state: an empty input,
// decimal64 selected, and the ambient rounding mode at nearest-even.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "1.5, -3.25e7, inf, nan(123)"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	m := Model{input: ti, width: 1, roundIdx: 0}
	decimal.SetRoundingMode(roundingModes[m.roundIdx])
	m.reparse()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.width = (m.width + 1) % len(widths)
			m.reparse()
			return m, nil
		case "ctrl+r":
			m.roundIdx = (m.roundIdx + 1) % len(roundingModes)
			decimal.SetRoundingMode(roundingModes[m.roundIdx])
			m.reparse()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.reparse()
	return m, cmd
}

func (m *Model) reparse() {
	s := m.input.Value()
	if s == "" {
		m.err = nil
		m.bitsLine, m.generalStr, m.fixedStr, m.sciStr, m.hexStr = "", "", "", "", ""
		return
	}
	switch widths[m.width] {
	case 32:
		d, err := decimal.ParseDecimal32(s)
		m.err = err
		m.bitsLine = fmt.Sprintf("0x%08x", d.Bits())
		m.render32(d)
	case 64:
		d, err := decimal.ParseDecimal64(s)
		m.err = err
		m.bitsLine = fmt.Sprintf("0x%016x", d.Bits())
		m.render64(d)
	case 128:
		d, err := decimal.ParseDecimal128(s)
		m.err = err
		hi, lo := d.Bits()
		m.bitsLine = fmt.Sprintf("0x%016x%016x", hi, lo)
		m.render128(d)
	}
}

// appendFormatter is the subset of the three Decimal* types render32/64/128
// need to share the buffer-then-format dance across all four presentations.
type appendFormatter interface {
	AppendFormat(dst []byte, format decimal.Format, precision int) (int, decimal.ErrorCode)
}

func renderOne(d appendFormatter, buf []byte, format decimal.Format, precision int) string {
	n, ec := d.AppendFormat(buf, format, precision)
	if ec != decimal.OK {
		return ec.String()
	}
	return string(buf[:n])
}

func (m *Model) render32(d decimal.Decimal32) {
	var buf [15]byte
	m.generalStr = renderOne(d, buf[:], decimal.General, -1)
	m.fixedStr = renderOne(d, buf[:], decimal.Fixed, 6)
	m.sciStr = renderOne(d, buf[:], decimal.Scientific, 6)
	m.hexStr = renderOne(d, buf[:], decimal.Hex, -1)
}

func (m *Model) render64(d decimal.Decimal64) {
	var buf [25]byte
	m.generalStr = renderOne(d, buf[:], decimal.General, -1)
	m.fixedStr = renderOne(d, buf[:], decimal.Fixed, 6)
	m.sciStr = renderOne(d, buf[:], decimal.Scientific, 6)
	m.hexStr = renderOne(d, buf[:], decimal.Hex, -1)
}

func (m *Model) render128(d decimal.Decimal128) {
	var buf [41]byte
	m.generalStr = renderOne(d, buf[:], decimal.General, -1)
	m.fixedStr = renderOne(d, buf[:], decimal.Fixed, 6)
	m.sciStr = renderOne(d, buf[:], decimal.Scientific, 6)
	m.hexStr = renderOne(d, buf[:], decimal.Hex, -1)
}

func (m Model) View() string {
	var body string
	body += titleStyle.Render("decfmt explorer") + "\n\n"
	body += inputStyle.Render(m.input.View()) + "\n\n"

	body += renderTabs(widths, widths[m.width]) + "\n"
	body += labelStyle.Render("rounding:") + valueStyle.Render(roundingModeName(roundingModes[m.roundIdx])) + "\n\n"

	if m.err != nil {
		body += errorStyle.Render("error: "+m.err.Error()) + "\n"
	} else {
		body += labelStyle.Render("bits:") + valueStyle.Render(m.bitsLine) + "\n"
		body += labelStyle.Render("general:") + valueStyle.Render(m.generalStr) + "\n"
		body += labelStyle.Render("fixed:") + valueStyle.Render(m.fixedStr) + "\n"
		body += labelStyle.Render("scientific:") + valueStyle.Render(m.sciStr) + "\n"
		body += labelStyle.Render("hex:") + valueStyle.Render(m.hexStr) + "\n"
	}

	body += "\n" + helpStyle.Render("tab: switch width  ctrl+r: cycle rounding  esc: quit")
	return body
}

func renderTabs(ws []int, active int) string {
	out := ""
	for _, w := range ws {
		label := fmt.Sprintf("d%d", w)
		if w == active {
			out += activeTabStyle.Render(label)
		} else {
			out += tabStyle.Render(label)
		}
	}
	return out
}
