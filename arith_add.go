package apnum

import (
	"math"
	"strconv"
)

// Add sets z to the rounded sum x+y and returns z. x and y may use different
// bases; y is converted to x's base first. z may alias x, y, or both.
func (z *Number) Add(x, y *Number) *Number {
	return z.addSub(x, y, 1)
}

// Sub sets z to the rounded difference x-y and returns z. x and y may use
// different bases; y is converted to x's base first. z may alias x, y, or
// both.
func (z *Number) Sub(x, y *Number) *Number {
	return z.addSub(x, y, -1)
}

func (z *Number) addSub(x, y *Number, sign int64) *Number {
	if !sameBase(x, y) {
		y = y.ConvertBase(int(x.base))
	}

	if isSelf(x, y) {
		// a single-pass additive loop cannot safely read and write
		// overlapping storage of the same operand twice.
		if sign == 1 {
			return z.MulInt64(x, 2)
		}
		z.Set(x)
		return z.clear()
	}

	result := x.Clone()
	result.addNumber(sign, y)
	return z.Set(result)
}

// addNumber accumulates sign*no into x in place. Requires x and no to use
// the same base and to be distinct objects.
func (x *Number) addNumber(sign int64, no *Number) {
	if no.isZeroStrict() {
		return
	}

	msExp := no.msExp
	lsExp := no.LsExp()
	if floor := x.minExp(); lsExp < floor {
		lsExp = floor
	}

	var carry int64
	for exp := lsExp; exp <= msExp; exp++ {
		idx := x.safeGetDigit(exp)
		x.digits[idx] = x.digits[idx] + sign*no.digit(exp) + carry
		carry = x.genCarry(&x.digits[idx])
	}

	x.addCarry(carry, msExp+1)
}

// addDigitAt adds v at exponent exp, in place, with carry propagation. A v
// of 0 or an exp below the precision floor is a no-op.
func (x *Number) addDigitAt(v int64, exp int) {
	if v == 0 || x.exceedsPrecision(exp) {
		return
	}
	idx := x.safeGetDigit(exp)
	x.digits[idx] += v
	carry := x.genCarry(&x.digits[idx])
	x.addCarry(carry, exp+1)
}

// addInt64InPlace adds v (an arbitrary, possibly multi-digit, integer) in place by
// repeated decomposition into base digits.
func (x *Number) addInt64InPlace(v int64) {
	exp := 0
	for v != 0 {
		iv := v % x.base
		v /= x.base
		x.addDigitAt(iv, exp)
		exp++
	}
}

// addFloat64InPlace adds v in place: the integer part is added digit-wise,
// then the fractional part is added by repeated multiply-by-base/floor down
// to the precision floor.
func (x *Number) addFloat64InPlace(v float64) {
	iv := int64(v) // truncates toward zero, matching the integer part split
	x.addInt64InPlace(iv)
	x.addFracInPlace(v - float64(iv))
}

func (x *Number) addFracInPlace(frac float64) {
	exp := -1
	for !x.exceedsPrecision(exp) && frac != 0 {
		frac *= float64(x.base)
		iv := int64(math.Floor(frac))
		frac -= float64(iv)
		x.addDigitAt(iv, exp)
		exp--
	}
}

// AddInt64 sets z to x+v and returns z.
func (z *Number) AddInt64(x *Number, v int64) *Number {
	result := x.Clone()
	result.addInt64InPlace(v)
	return z.Set(result)
}

// SubInt64 sets z to x-v and returns z.
func (z *Number) SubInt64(x *Number, v int64) *Number {
	return z.AddInt64(x, -v)
}

// AddFloat64 sets z to x+v and returns z.
func (z *Number) AddFloat64(x *Number, v float64) *Number {
	result := x.Clone()
	result.addFloat64InPlace(v)
	return z.Set(result)
}

// SubFloat64 sets z to x-v and returns z.
func (z *Number) SubFloat64(x *Number, v float64) *Number {
	return z.AddFloat64(x, -v)
}

// Neg sets z to -x and returns z. Implemented as a multiply by -1.
func (z *Number) Neg(x *Number) *Number {
	return z.MulInt64(x, -1)
}

// SetInt64 sets z to v, in place, reusing z's existing base and precision,
// and returns z.
func (z *Number) SetInt64(v int64) *Number {
	z.clear()
	z.addInt64InPlace(v)
	return z
}

// SetFloat64 sets z to v, in place, reusing z's existing base and precision,
// and returns z.
func (z *Number) SetFloat64(v float64) *Number {
	z.clear()
	z.addFloat64InPlace(v)
	return z
}

// Float64 returns the float64 value nearest to x, by way of x's decimal text
// representation. If x's magnitude is too large for float64, Float64
// returns ±Inf along with strconv's range error, mirroring the overflow case
// noted on the teacher's (*Decimal).Float64.
func (x *Number) Float64() (float64, error) {
	s, err := x.Text(10)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}
