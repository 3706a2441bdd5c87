package explain

import (
	"fmt"
	"strconv"
	"testing"
)

func TestDivision_RemaindersReconstructBinary(t *testing.T) {
	t.Parallel()

	for v := 0; v <= 255; v++ {
		tr := Division(v)
		if tr.Negative {
			t.Fatalf("Division(%d) marked negative", v)
		}
		want := strconv.FormatInt(int64(v), 2)
		if got := tr.Binary(); got != want {
			t.Fatalf("Division(%d).Binary() = %q, want %q", v, got, want)
		}
	}
}

func TestDivision_StepsAreConsistent(t *testing.T) {
	t.Parallel()

	tr := Division(200)
	if got := len(tr.Steps); got != 8 {
		t.Fatalf("step count = %d, want 8", got)
	}
	for i, s := range tr.Steps {
		if s.Quotient != s.Dividend/2 || s.Remainder != s.Dividend%2 {
			t.Fatalf("step %d inconsistent: %+v", i, s)
		}
		if i > 0 && s.Dividend != tr.Steps[i-1].Quotient {
			t.Fatalf("step %d dividend %d != previous quotient %d", i, s.Dividend, tr.Steps[i-1].Quotient)
		}
	}
	if last := tr.Steps[len(tr.Steps)-1]; last.Quotient != 0 {
		t.Fatalf("final quotient = %d, want 0", last.Quotient)
	}
}

func TestDivision_Zero(t *testing.T) {
	t.Parallel()

	tr := Division(0)
	if got := len(tr.Steps); got != 1 {
		t.Fatalf("step count = %d, want 1", got)
	}
	if got := (Step{}); tr.Steps[0] != got {
		t.Fatalf("zero step = %+v, want all zeros", tr.Steps[0])
	}
	if got := tr.Binary(); got != "0" {
		t.Fatalf("Binary() = %q, want %q", got, "0")
	}
}

func TestDivision_Negative(t *testing.T) {
	t.Parallel()

	tr := Division(-56)
	if !tr.Negative {
		t.Fatal("Division(-56) not marked negative")
	}
	if got := len(tr.Steps); got != 0 {
		t.Fatalf("step count = %d, want 0", got)
	}
	if got := tr.MaskedPattern; got != "11001000" {
		t.Fatalf("masked pattern = %q, want 11001000", got)
	}
	if got := tr.Binary(); got != "11001000" {
		t.Fatalf("Binary() = %q, want 11001000", got)
	}
}

func TestPowers_SelectedPowersSumToValue(t *testing.T) {
	t.Parallel()

	for v := 0; v <= 255; v++ {
		b := Powers(v)
		if b.Negative {
			t.Fatalf("Powers(%d) marked negative", v)
		}
		if got := b.Sum(); got != v {
			t.Fatalf("Powers(%d).Sum() = %d", v, got)
		}
		for i := 1; i < len(b.Powers); i++ {
			if b.Powers[i] >= b.Powers[i-1] {
				t.Fatalf("Powers(%d) exponents not strictly descending: %v", v, b.Powers)
			}
		}
	}
}

func TestPowers_Zero(t *testing.T) {
	t.Parallel()

	b := Powers(0)
	if got := len(b.Powers); got != 0 {
		t.Fatalf("power count = %d, want 0", got)
	}
	if got := b.Expression(); got != "0 = 0 (no powers of 2 needed)" {
		t.Fatalf("expression = %q", got)
	}
}

func TestPowers_Expression(t *testing.T) {
	t.Parallel()

	if got, want := Powers(200).Expression(), "200 = 2^7 + 2^6 + 2^3"; got != want {
		t.Fatalf("expression = %q, want %q", got, want)
	}
}

func TestPowers_Negative(t *testing.T) {
	t.Parallel()

	b := Powers(-1)
	if !b.Negative {
		t.Fatal("Powers(-1) not marked negative")
	}
	if got := b.UnsignedEquivalent; got != 255 {
		t.Fatalf("unsigned equivalent = %d, want 255", got)
	}
	if got := b.MaskedPattern; got != "11111111" {
		t.Fatalf("masked pattern = %q, want 11111111", got)
	}
	want := fmt.Sprintf("-1 = -2^7 + active lower bits (pattern %s, unsigned %d)", "11111111", 255)
	if got := b.Expression(); got != want {
		t.Fatalf("expression = %q, want %q", got, want)
	}
}
