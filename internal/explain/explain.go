// Package explain builds structured, presentation-free breakdowns of a
// decimal-to-binary conversion: the repeated-division trace and the
// powers-of-two decomposition. Renderers format the returned structures
// however they like.
package explain

import (
	"fmt"
	"strings"
)

const patternWidth = 8

// Step is one repeated-division step: Dividend ÷ 2 = Quotient remainder
// Remainder.
type Step struct {
	Dividend  int
	Quotient  int
	Remainder int
}

// Trace is the division-method explanation for a value.
//
// For non-negative values Steps holds the full division trace; reading the
// remainders from last to first yields the binary string. For negative values
// the method does not apply: Negative is set and MaskedPattern carries the
// 8-bit two's-complement pattern instead.
type Trace struct {
	Value         int
	Steps         []Step
	Negative      bool
	MaskedPattern string
}

// Binary reconstructs the binary string from the trace's remainders,
// last-computed first. Negative traces return the masked pattern.
func (t Trace) Binary() string {
	if t.Negative {
		return t.MaskedPattern
	}
	var sb strings.Builder
	for i := len(t.Steps) - 1; i >= 0; i-- {
		sb.WriteByte('0' + byte(t.Steps[i].Remainder))
	}
	return sb.String()
}

// Division builds the division-method trace for v. v == 0 records the single
// zero step so the trace still reads back as "0".
func Division(v int) Trace {
	t := Trace{Value: v}

	if v < 0 {
		t.Negative = true
		t.MaskedPattern = fmt.Sprintf("%0*b", patternWidth, v&0xFF)
		return t
	}

	if v == 0 {
		t.Steps = []Step{{Dividend: 0, Quotient: 0, Remainder: 0}}
		return t
	}

	for n := v; n > 0; n /= 2 {
		t.Steps = append(t.Steps, Step{
			Dividend:  n,
			Quotient:  n / 2,
			Remainder: n % 2,
		})
	}
	return t
}

// Breakdown is the powers-of-two explanation for a value.
//
// For non-negative values Powers lists the selected exponents in descending
// order; their weights sum to Value. For negative values the two's-complement
// note applies: the 8-bit pattern equals that of the unsigned equivalent, and
// the value reads as -2^7 plus the active lower bits.
type Breakdown struct {
	Value              int
	Powers             []int
	Negative           bool
	UnsignedEquivalent int
	MaskedPattern      string
}

// Sum returns the total of the selected powers' weights.
func (b Breakdown) Sum() int {
	total := 0
	for _, p := range b.Powers {
		total += 1 << p
	}
	return total
}

// Expression renders the decomposition as "200 = 2^7 + 2^6 + 2^3" style text.
// Zero renders without terms; negative values render the two's-complement
// note instead.
func (b Breakdown) Expression() string {
	if b.Negative {
		return fmt.Sprintf("%d = -2^7 + active lower bits (pattern %s, unsigned %d)",
			b.Value, b.MaskedPattern, b.UnsignedEquivalent)
	}
	if len(b.Powers) == 0 {
		return "0 = 0 (no powers of 2 needed)"
	}
	parts := make([]string, len(b.Powers))
	for i, p := range b.Powers {
		parts[i] = fmt.Sprintf("2^%d", p)
	}
	return fmt.Sprintf("%d = %s", b.Value, strings.Join(parts, " + "))
}

// Powers builds the powers-of-two decomposition for v by greedily scanning
// powers 7 down to 0.
func Powers(v int) Breakdown {
	b := Breakdown{Value: v}

	if v < 0 {
		b.Negative = true
		b.UnsignedEquivalent = v & 0xFF
		b.MaskedPattern = fmt.Sprintf("%0*b", patternWidth, v&0xFF)
		return b
	}

	remaining := v
	for p := patternWidth - 1; p >= 0; p-- {
		if weight := 1 << p; remaining >= weight {
			b.Powers = append(b.Powers, p)
			remaining -= weight
		}
	}
	return b
}
