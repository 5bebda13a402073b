package apnum

// IsOne reports whether x is exactly 1 (a single digit of value 1 at
// exponent 0).
func (x *Number) IsOne() bool {
	return x.msExp == 0 && len(x.digits) == 1 && x.digits[0] == 1
}

// isUnitDigit reports whether x's mantissa is the single digit 1, regardless
// of exponent -- i.e. x is an exact (possibly non-unit) power of its base.
// Used internally by division's single-digit-divisor fast path.
func (x *Number) isUnitDigit() bool {
	return len(x.digits) == 1 && x.digits[0] == 1
}

// IsZero reports whether x is zero within the tolerance of its own
// precision: its magnitude is below minCompExp, the semantic floor.
func (x *Number) IsZero() bool {
	return x.msExp < x.minCompExp() || x.IsZeroStrict()
}

// IsZeroStrict reports whether x's leading digit is exactly 0, ignoring the
// precision floor.
func (x *Number) IsZeroStrict() bool {
	return x.msValue() == 0
}

// isZeroStrict is the unexported spelling used throughout this package.
func (x *Number) isZeroStrict() bool { return x.IsZeroStrict() }

// IsPositive reports whether x's leading digit is strictly positive.
func (x *Number) IsPositive() bool { return x.msValue() > 0 }

// isPositive is the unexported spelling used throughout this package.
func (x *Number) isPositive() bool { return x.IsPositive() }

// IsNonNeg reports whether x's leading digit is non-negative.
func (x *Number) IsNonNeg() bool { return x.msValue() >= 0 }

// IsNegative reports whether x's leading digit is negative.
func (x *Number) IsNegative() bool { return !x.IsNonNeg() }

func (x *Number) isNegative() bool { return x.IsNegative() }

// Sign returns -1, 0, or +1 depending on whether x is negative, (precision-)
// zero, or positive.
func (x *Number) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.IsPositive():
		return 1
	default:
		return -1
	}
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (within precision tolerance)
//	+1 if x >  y
//
// Cross-base comparisons convert the smaller-base operand to the larger
// base first.
func (x *Number) Cmp(y *Number) int {
	if sameBase(x, y) {
		return x.cmpSameBase(y)
	}
	if x.base > y.base {
		return x.cmpSameBase(y.ConvertBase(int(x.base)))
	}
	return -y.cmpSameBase(x.ConvertBase(int(y.base)))
}

func (x *Number) cmpSameBase(y *Number) int {
	hiExp := x.msExp
	if y.msExp > hiExp {
		hiExp = y.msExp
	}
	loExp := x.LsExp()
	if yLo := y.LsExp(); yLo < loExp {
		loExp = yLo
	}
	if floor := x.minCompExp(); loExp < floor {
		loExp = floor
	}

	var carry int64
	for exp := hiExp; exp >= loExp; exp-- {
		xd, yd := x.digit(exp), y.digit(exp)
		carry = carry*x.base + xd - yd
		if carry > 1 {
			return 1
		}
		if carry < -1 {
			return -1
		}
	}

	if carry == 0 {
		return 0
	}

	// Resolve a near-tie by examining one more digit below the stored
	// range; a residual magnitude below base/2 rounds to equal.
	xd, yd := x.digit(loExp-1), y.digit(loExp-1)
	carry = carry*x.base + xd - yd
	if abs64(carry) < x.base/2 {
		return 0
	}
	if carry > 0 {
		return 1
	}
	return -1
}

// Equal reports whether x and y compare equal (see Cmp).
func (x *Number) Equal(y *Number) bool { return x.Cmp(y) == 0 }

// EqualInt64 reports whether x equals the integer v. Always routed through
// Cmp, including v == 0, so that comparing against an integer literal and
// comparing against an equivalent Number never disagree.
func (x *Number) EqualInt64(v int64) bool {
	y := x.patternNew()
	y.addInt64InPlace(v)
	return x.Cmp(y) == 0
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Abs returns a new Number holding the absolute value of x.
func Abs(x *Number) *Number {
	if x.IsNegative() {
		return new(Number).Neg(x)
	}
	return x.Clone()
}
