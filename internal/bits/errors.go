package bits

import "fmt"

// ParseError reports input text that does not parse as an integer.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bits: %q is not an integer", e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RangeError reports a valid integer outside the representable 8-bit range.
type RangeError struct {
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("bits: value %d outside range [%d, %d]", e.Value, MinValue, MaxValue)
}
