package decimal

import "fmt"

// ErrorCode is the first-class, comparable result code returned by the
// parser and formatter: errors here are ordinary return values, never
// panics or a process-wide exception channel. It is the package's
// primary error type and implements error directly, so callers never
// need a wrapping step to use it as one. cmd/decfmt's flag-parsing
// boundary, which sits above this package and doesn't need a comparable
// sentinel, instead follows calebcase/bsv's oops.New/oops.Trace idiom to
// attach a stack trace to its own validation errors.
type ErrorCode int8

const (
	// OK reports success: at least one digit was parsed (parser) or the
	// output fit in the caller's buffer (formatter).
	OK ErrorCode = iota
	// InvalidArgument reports a parser input with no digit before the end
	// of the range or before an exponent marker.
	InvalidArgument
	// ValueTooLarge reports an output buffer too small to hold the
	// formatted result. A parsed exponent that forces the result to
	// +-infinity is reported as ResultOutOfRange instead.
	ValueTooLarge
	// ResultOutOfRange reports that parsing rounded a finite value to
	// +-infinity or to zero because its exponent fell outside the
	// format's range.
	ResultOutOfRange
	// NotSupported names the result of a recognized NaN or signaling-NaN
	// token. No function in this package returns it: the parser packs such
	// a token straight into a NaN word and reports OK.
	NotSupported
)

// String returns the canonical name of c.
func (c ErrorCode) String() string {
	switch c {
	case OK:
		return "OK"
	case InvalidArgument:
		return "InvalidArgument"
	case ValueTooLarge:
		return "ValueTooLarge"
	case ResultOutOfRange:
		return "ResultOutOfRange"
	case NotSupported:
		return "NotSupported"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int8(c))
	}
}

// Error implements the error interface, so an ErrorCode can be returned
// anywhere a plain Go error is expected without an extra wrapping step.
func (c ErrorCode) Error() string { return c.String() }
