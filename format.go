package apnum

import (
	"math"
	"strings"
)

// Text returns x formatted in base, with a "0x", "0b" or "0" prefix for base
// 16, 2 or 8 respectively (other bases get no prefix) and a leading '-' for
// negative values. x is converted to
// base first if it is not already stored in that radix. Text returns an
// InvalidArgumentError if base is outside [MinRadix, MaxRadix].
func (x *Number) Text(base int) (string, error) {
	if base < MinRadix || base > MaxRadix {
		return "", invalidArgumentf("base %d is out of range [%d, %d]", base, MinRadix, MaxRadix)
	}
	n := x
	if int64(base) != x.base {
		n = x.ConvertBase(base)
	}
	return n.formatSameBase(), nil
}

// String returns x formatted in its own base. A base outside [MinRadix,
// MaxRadix], such as DefaultBase, has no digit alphabet, so such an x is
// formatted in base 10 instead.
func (x *Number) String() string {
	base := x.Base()
	if base < MinRadix || base > MaxRadix {
		base = 10
	}
	s, _ := x.Text(base)
	return s
}

// BinString returns x formatted in base 2.
func (x *Number) BinString() string {
	s, _ := x.Text(2)
	return s
}

// OctString returns x formatted in base 8.
func (x *Number) OctString() string {
	s, _ := x.Text(8)
	return s
}

// DecString returns x formatted in base 10.
func (x *Number) DecString() string {
	s, _ := x.Text(10)
	return s
}

// HexString returns x formatted in base 16.
func (x *Number) HexString() string {
	s, _ := x.Text(16)
	return s
}

// formatSameBase renders x, which must already hold the base it is to be
// printed in. Trailing fractional zeros are trimmed; a value that turns out
// to be an exact integer after trimming is printed with no decimal point at
// all (spec.md's REDESIGN FLAGS: the upstream formatter instead leaves a
// trailing '.' or a run of zeros behind for such values).
func (x *Number) formatSameBase() string {
	var sb strings.Builder

	v := x
	if v.IsNegative() {
		sb.WriteByte('-')
		v = Abs(v)
	}

	switch v.base {
	case 16:
		sb.WriteString("0x")
	case 2:
		sb.WriteString("0b")
	case 8:
		sb.WriteByte('0')
	}

	if v.IsZero() {
		sb.WriteByte('0')
		return sb.String()
	}

	hi := v.msExp
	if hi < 0 {
		hi = 0
	}
	for exp := hi; exp >= 0; exp-- {
		sb.WriteByte(digitChars[v.digit(exp)])
	}

	lo := v.LsExp()
	if lo > -1 {
		return sb.String()
	}

	// Truncate to v's declared fractional precision (not safePrecision,
	// which carries ExtraPrecision slack beyond what's guaranteed accurate)
	// before trimming trailing zeros, mirroring extract_string's
	// dot_pos+precision_in_10 cutoff.
	maxFrac := int(math.Ceil(v.precision))
	if maxFrac < 0 {
		maxFrac = 0
	}
	fracLen := -lo
	if fracLen > maxFrac {
		fracLen = maxFrac
	}

	frac := make([]byte, 0, fracLen)
	for i, exp := 0, -1; i < fracLen; i, exp = i+1, exp-1 {
		frac = append(frac, digitChars[v.digit(exp)])
	}
	for len(frac) > 0 && frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}
	if len(frac) == 0 {
		return sb.String()
	}

	sb.WriteByte('.')
	sb.Write(frac)
	return sb.String()
}
