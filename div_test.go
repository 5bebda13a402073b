package apnum

import "testing"

func TestNumber_QuoExact(t *testing.T) {
	cases := []struct {
		a, b int64
		want string
	}{
		{100, 4, "25"},
		{7, 2, "3.5"},
		{-9, 3, "-3"},
		{9, -3, "-3"},
		{1, 1, "1"},
	}
	for _, c := range cases {
		x := NewInt(c.a, 30, 10)
		y := NewInt(c.b, 30, 10)
		if s := new(Number).Quo(x, y).String(); s != c.want {
			t.Errorf("Quo(%d, %d) = %s, want %s", c.a, c.b, s, c.want)
		}
	}
}

func TestNumber_QuoSelfAlias(t *testing.T) {
	x := NewInt(17, 30, 10)
	z := new(Number).Quo(x, x)
	if z.String() != "1" {
		t.Fatalf("Quo(x, x) = %s, want 1", z.String())
	}
}

func TestNumber_QuoByZeroPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Quo by zero did not panic")
		}
		if _, ok := r.(*OverflowError); !ok {
			t.Fatalf("panic value = %#v, want *OverflowError", r)
		}
	}()
	x := NewInt(1, 30, 10)
	zero := NewInt(0, 30, 10)
	new(Number).Quo(x, zero)
}

func TestNumber_QuoInt64ByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("QuoInt64 by zero did not panic")
		}
	}()
	x := NewInt(1, 30, 10)
	new(Number).QuoInt64(x, 0)
}

func TestNumber_QuoInt64(t *testing.T) {
	x := NewInt(22, 30, 10)
	z := new(Number).QuoInt64(x, 7)
	want := new(Number).Quo(x, NewInt(7, 30, 10))
	if z.Cmp(want) != 0 {
		t.Fatalf("QuoInt64(22, 7) = %s, want %s", z.String(), want.String())
	}
}

func TestNumber_QuoRepeatingApprox(t *testing.T) {
	x := NewInt(1, 10, 10)
	y := NewInt(3, 10, 10)
	z := new(Number).Quo(x, y)
	three := new(Number).MulInt64(z, 3)
	if three.Cmp(NewInt(1, 10, 10)) != 0 {
		t.Fatalf("3 * (1/3) = %s, want ~1 within precision tolerance", three.String())
	}
}
