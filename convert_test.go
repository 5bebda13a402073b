package apnum

import (
	"strings"
	"testing"
)

func TestNumber_ConvertBaseRoundTrip(t *testing.T) {
	x := NewInt(255, 30, 10)
	hex := x.ConvertBase(16)
	if s := hex.String(); s != "0xFF" {
		t.Fatalf("255 in base 16 = %s, want 0xFF", s)
	}
	back := hex.ConvertBase(10)
	if s := back.String(); s != "255" {
		t.Fatalf("round trip back to base 10 = %s, want 255", s)
	}
}

func TestNumber_ConvertBaseSameBaseIsClone(t *testing.T) {
	x := NewInt(5, 30, 10)
	y := x.ConvertBase(10)
	y.AddInt64(y, 1)
	if x.String() != "5" {
		t.Fatalf("ConvertBase to the same base aliased storage: x = %s", x.String())
	}
}

// TestNumber_ConvertBaseFraction converts 0.5 from base 10 to base 2. The
// fractional half is built from 1/10, which has no finite base-2 expansion
// and is truncated at the storage floor, so 5*(1/10) lands just below 0.5:
// printed to the 100-digit base-2 budget of 30 decimal digits it reads 0.0
// followed by 99 ones, the truncated form of 0.1.
func TestNumber_ConvertBaseFraction(t *testing.T) {
	x := NewFloat(0.5, 30, 10)
	bin := x.ConvertBase(2)
	want := "0b0.0" + strings.Repeat("1", 99)
	if s := bin.String(); s != want {
		t.Fatalf("0.5 in base 2 = %s, want %s", s, want)
	}
}

func TestNumber_ConvertPrecisionTruncates(t *testing.T) {
	x, err := NewString("1.23456789", 20, 10)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	short := x.ConvertPrecision(4)
	if short.PrecisionIn10() != 4 {
		t.Fatalf("PrecisionIn10() = %d, want 4", short.PrecisionIn10())
	}
	if s := short.String(); s != "1.2345" {
		t.Fatalf("ConvertPrecision(4) = %s, want 1.2345", s)
	}
}

func TestNumber_IntFracDigits(t *testing.T) {
	x, err := NewString("12345.678", 30, 10)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	if got := x.IntDigits(); got != 5 {
		t.Fatalf("IntDigits() = %d, want 5", got)
	}
	if got := x.FracDigits(); got != 3 {
		t.Fatalf("FracDigits() = %d, want 3", got)
	}
}
