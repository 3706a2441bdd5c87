// Package baseconv converts non-negative integers to and from arbitrary
// bases 2..36, plus the fixed-base renderings used by the conversion cards.
package baseconv

import (
	"fmt"
	"strconv"
)

const (
	// MinBase and MaxBase bound the supported digit alphabets.
	MinBase = 2
	MaxBase = 36

	digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// ToBase renders n in the given base using uppercase digits and no leading
// zeros. n must be non-negative: signed inputs are masked to their unsigned
// byte before they reach this converter.
func ToBase(n, base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", fmt.Errorf("baseconv: base %d outside [%d, %d]", base, MinBase, MaxBase)
	}
	if n < 0 {
		return "", fmt.Errorf("baseconv: negative value %d not supported, mask to unsigned first", n)
	}
	if n == 0 {
		return "0", nil
	}

	// Base 2 of a max int needs one digit per bit.
	var buf [strconv.IntSize]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = digits[n%base]
		n /= base
	}
	return string(buf[i:]), nil
}

// Parse is the inverse of ToBase. It accepts both upper- and lowercase
// digits.
func Parse(s string, base int) (int, error) {
	if base < MinBase || base > MaxBase {
		return 0, fmt.Errorf("baseconv: base %d outside [%d, %d]", base, MinBase, MaxBase)
	}
	v, err := strconv.ParseInt(s, base, 0)
	if err != nil {
		return 0, fmt.Errorf("baseconv: parsing %q in base %d: %w", s, base, err)
	}
	return int(v), nil
}

// BinaryString renders the unsigned byte v zero-padded to 8 digits.
func BinaryString(v int) string {
	return fmt.Sprintf("%08b", v)
}

// OctalString renders the unsigned byte v in octal at natural width.
func OctalString(v int) string {
	return strconv.FormatInt(int64(v), 8)
}

// HexString renders the unsigned byte v in lowercase hex at natural width.
// The base-N converter above uses uppercase digits; the fixed hex card is
// lowercase, matching the original display.
func HexString(v int) string {
	return strconv.FormatInt(int64(v), 16)
}
