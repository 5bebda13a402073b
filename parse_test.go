package apnum

import "testing"

func TestParse_DecimalRoundTrip(t *testing.T) {
	x, err := NewString("123.456", 30, 10)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	if s := x.String(); s != "123.456" {
		t.Fatalf("round trip = %q, want %q", s, "123.456")
	}
}

func TestParse_Sign(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"-5", "-5"},
		{"+5", "5"},
		{"5", "5"},
	}
	for _, c := range cases {
		x, err := NewString(c.in, 20, 10)
		if err != nil {
			t.Fatalf("NewString(%q): %v", c.in, err)
		}
		if s := x.String(); s != c.want {
			t.Errorf("NewString(%q) = %q, want %q", c.in, s, c.want)
		}
	}
}

func TestParse_HexPrefix(t *testing.T) {
	x, err := NewString("0xFF", 20, 16)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	if s := x.String(); s != "0xFF" {
		t.Fatalf("NewString(0xFF) = %q, want 0xFF", s)
	}
}

func TestParse_BinPrefix(t *testing.T) {
	x, err := NewString("0b101", 20, 10)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	if s := x.String(); s != "5" {
		t.Fatalf("NewString(0b101) converted to base 10 = %q, want 5", s)
	}
}

func TestParse_OctalPrefix(t *testing.T) {
	x, err := NewString("017", 20, 10)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	if s := x.String(); s != "15" {
		t.Fatalf("NewString(017) converted to base 10 = %q, want 15", s)
	}
}

func TestParse_InvalidOctalDigitRejected(t *testing.T) {
	cases := []string{"08", "09"}
	for _, in := range cases {
		if _, err := NewString(in, 20, 10); err == nil {
			t.Errorf("NewString(%q) did not return an error", in)
		} else if _, ok := err.(*InvalidArgumentError); !ok {
			t.Errorf("NewString(%q) error = %#v, want *InvalidArgumentError", in, err)
		}
	}
}

func TestParse_LeadingZeroDotIsDecimal(t *testing.T) {
	x, err := NewString("0.5", 20, 10)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	if s := x.String(); s != "0.5" {
		t.Fatalf("NewString(0.5) = %q, want 0.5", s)
	}
}

func TestParse_InvalidDigitForBase(t *testing.T) {
	if _, err := NewString("0xGG", 20, 16); err == nil {
		t.Fatal("NewString(0xGG) did not return an error")
	}
}

func TestParse_InvalidCharacter(t *testing.T) {
	if _, err := NewString("12#34", 20, 10); err == nil {
		t.Fatal("NewString(12#34) did not return an error")
	}
}

func TestParse_ExponentNotation(t *testing.T) {
	x, err := NewString("1.5e2", 20, 10)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	if s := x.String(); s != "150" {
		t.Fatalf("NewString(1.5e2) = %q, want 150", s)
	}
}

func TestParse_NegativeExponent(t *testing.T) {
	x, err := NewString("15e-1", 20, 10)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	if s := x.String(); s != "1.5" {
		t.Fatalf("NewString(15e-1) = %q, want 1.5", s)
	}
}
