// Package bits implements the 8-bit two's-complement codec at the heart of
// the visualizer: decimal values to bit patterns and back, sign inversion,
// input parsing, and the active-bit sum narrative.
package bits

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Width is the fixed pattern width. The whole program models a single byte.
	Width = 8

	// MinValue and MaxValue bound the accepted decimal input. The range is
	// deliberately wider than a signed byte: 128..255 are accepted as
	// unsigned patterns, -128..-1 as two's-complement patterns.
	MinValue = -128
	MaxValue = 255
)

// Bit is one position of a pattern: its power of two and its value (0 or 1).
type Bit struct {
	Power int
	Value int
}

// Weight returns the unsigned decimal weight of the bit position (2^Power).
func (b Bit) Weight() int { return 1 << b.Power }

// Pattern is an 8-bit pattern, most significant bit first (index 0 has
// Power 7, index 7 has Power 0).
type Pattern [Width]Bit

// FromDecimal converts a decimal value in [MinValue, MaxValue] into its 8-bit
// pattern. Negative values are masked to their two's-complement byte.
func FromDecimal(v int) (Pattern, error) {
	if v < MinValue || v > MaxValue {
		return Pattern{}, &RangeError{Value: v}
	}

	masked := v & 0xFF
	var p Pattern
	for i := range p {
		power := Width - 1 - i
		p[i] = Bit{Power: power, Value: (masked >> power) & 1}
	}
	return p, nil
}

// Decimal interprets the pattern as a decimal value. When the MSB is set the
// pattern is read as two's complement (-128 plus the active lower bits);
// otherwise it is read unsigned. There is no separate signed/unsigned mode:
// the MSB alone selects the interpretation.
func (p Pattern) Decimal() int {
	if p[0].Value == 1 {
		v := -(1 << (Width - 1))
		for _, b := range p[1:] {
			if b.Value == 1 {
				v += b.Weight()
			}
		}
		return v
	}

	v := 0
	for _, b := range p {
		if b.Value == 1 {
			v += b.Weight()
		}
	}
	return v
}

// Unsigned returns the pattern's plain unsigned value in [0, 255].
func (p Pattern) Unsigned() int {
	v := 0
	for _, b := range p {
		if b.Value == 1 {
			v += b.Weight()
		}
	}
	return v
}

// Toggle returns a copy of the pattern with the bit at the given power
// flipped. Powers outside [0, 7] leave the pattern unchanged.
func (p Pattern) Toggle(power int) Pattern {
	if power < 0 || power >= Width {
		return p
	}
	idx := Width - 1 - power
	p[idx].Value = 1 - p[idx].Value
	return p
}

// String renders the pattern MSB-first, e.g. "11001000".
func (p Pattern) String() string {
	var sb strings.Builder
	sb.Grow(Width)
	for _, b := range p {
		sb.WriteByte('0' + byte(b.Value))
	}
	return sb.String()
}

// ParseDecimal parses the decimal input field. Empty input counts as zero.
// Non-integer text yields a *ParseError, integers outside the 8-bit range a
// *RangeError; in both cases the caller keeps its previous value.
func ParseDecimal(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &ParseError{Text: text, Err: err}
	}
	if v < MinValue || v > MaxValue {
		return 0, &RangeError{Value: v}
	}
	return v, nil
}

// Invert negates v (two's-complement sign flip). Inverting -128 is rejected
// because +128 is not representable.
func Invert(v int) (int, error) {
	inverted := -v
	if inverted < MinValue || inverted > MaxValue {
		return 0, &RangeError{Value: inverted}
	}
	return inverted, nil
}

// Term is one summand of the active-bit narrative.
type Term struct {
	Power    int
	Negative bool // the -2^7 two's-complement term
}

// String renders the term as "2^n" or "(-2^7)".
func (t Term) String() string {
	if t.Negative {
		return fmt.Sprintf("(-2^%d)", t.Power)
	}
	return fmt.Sprintf("2^%d", t.Power)
}

// Terms is the active-bit sum narrative for a pattern: the summands that make
// up its decimal value under the MSB-selected interpretation.
type Terms struct {
	Signed bool // MSB was set, first term is -2^7
	Terms  []Term
	Total  int
}

// Expression renders the narrative as "2^7 + 2^3 = 136" style text.
// A pattern with no active bits renders as "0".
func (t Terms) Expression() string {
	if len(t.Terms) == 0 {
		return "0"
	}
	parts := make([]string, len(t.Terms))
	for i, term := range t.Terms {
		parts[i] = term.String()
	}
	return fmt.Sprintf("%s = %d", strings.Join(parts, " + "), t.Total)
}

// SumTerms builds the active-bit narrative for a pattern. With the MSB set
// the first term is -2^7 and the remaining terms are the active lower bits;
// otherwise every active bit contributes its unsigned weight.
func SumTerms(p Pattern) Terms {
	t := Terms{Total: p.Decimal()}

	if p[0].Value == 1 {
		t.Signed = true
		t.Terms = append(t.Terms, Term{Power: Width - 1, Negative: true})
		for _, b := range p[1:] {
			if b.Value == 1 {
				t.Terms = append(t.Terms, Term{Power: b.Power})
			}
		}
		return t
	}

	for _, b := range p {
		if b.Value == 1 {
			t.Terms = append(t.Terms, Term{Power: b.Power})
		}
	}
	return t
}
