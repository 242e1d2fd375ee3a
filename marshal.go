package decimal

import "fmt"

// This file wraps AppendFormat/ParseDecimal in the idiomatic Go
// interfaces a value type with text conversion is expected to offer:
// encoding.TextMarshaler/TextUnmarshaler, fmt.Scanner, and a single
// canonical MarshalJSON/UnmarshalJSON (a quoted General/shortest
// string), deliberately narrower than a JSONMode-style compact/string/
// object switch.

// MarshalText implements encoding.TextMarshaler.
func (d Decimal32) MarshalText() ([]byte, error) {
	var buf [decimal32MaxChars]byte
	n, ec := d.AppendFormat(buf[:], General, -1)
	if ec != OK {
		return nil, ec
	}
	return append([]byte(nil), buf[:n]...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal32) UnmarshalText(text []byte) error {
	v, err := ParseDecimal32(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON implements json.Marshaler as a quoted canonical string.
func (d Decimal32) MarshalJSON() ([]byte, error) {
	return quoteJSON(d.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler from a quoted string.
func (d *Decimal32) UnmarshalJSON(data []byte) error {
	s, err := unquoteJSON(data)
	if err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// Scan implements fmt.Scanner so Decimal32 works with fmt.Sscan et al.
func (d *Decimal32) Scan(state fmt.ScanState, verb rune) error {
	tok, err := state.Token(true, isDecimalScanByte)
	if err != nil {
		return err
	}
	return d.UnmarshalText(tok)
}

func (d Decimal64) MarshalText() ([]byte, error) {
	var buf [decimal64MaxChars]byte
	n, ec := d.AppendFormat(buf[:], General, -1)
	if ec != OK {
		return nil, ec
	}
	return append([]byte(nil), buf[:n]...), nil
}

func (d *Decimal64) UnmarshalText(text []byte) error {
	v, err := ParseDecimal64(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Decimal64) MarshalJSON() ([]byte, error) {
	return quoteJSON(d.String()), nil
}

func (d *Decimal64) UnmarshalJSON(data []byte) error {
	s, err := unquoteJSON(data)
	if err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

func (d *Decimal64) Scan(state fmt.ScanState, verb rune) error {
	tok, err := state.Token(true, isDecimalScanByte)
	if err != nil {
		return err
	}
	return d.UnmarshalText(tok)
}

func (d Decimal128) MarshalText() ([]byte, error) {
	var buf [decimal128MaxChars]byte
	n, ec := d.AppendFormat(buf[:], General, -1)
	if ec != OK {
		return nil, ec
	}
	return append([]byte(nil), buf[:n]...), nil
}

func (d *Decimal128) UnmarshalText(text []byte) error {
	v, err := ParseDecimal128(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Decimal128) MarshalJSON() ([]byte, error) {
	return quoteJSON(d.String()), nil
}

func (d *Decimal128) UnmarshalJSON(data []byte) error {
	s, err := unquoteJSON(data)
	if err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

func (d *Decimal128) Scan(state fmt.ScanState, verb rune) error {
	tok, err := state.Token(true, isDecimalScanByte)
	if err != nil {
		return err
	}
	return d.UnmarshalText(tok)
}

func isDecimalScanByte(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r == '+' || r == '-' || r == '.' || r == '(' || r == ')':
		return true
	default:
		return false
	}
}

func quoteJSON(s string) []byte {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	out = append(out, s...)
	out = append(out, '"')
	return out
}

func unquoteJSON(data []byte) (string, error) {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return "", InvalidArgument
	}
	return string(data[1 : len(data)-1]), nil
}
