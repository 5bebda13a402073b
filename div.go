package apnum

import "math"

// getQStarNumber estimates the next quotient digit q* and its exponent e*
// from the top two digits of m and n (both the same base), using a
// double-precision two-digit estimate. Exact enough provided base <= 2**32.
func getQStarNumber(m, n *Number) (qStar int64, eStar int) {
	expM, expN := m.msExp, n.msExp
	m0, m1 := m.digit(expM), m.digit(expM-1)
	n0, n1 := n.digit(expN), n.digit(expN-1)

	base := float64(m.base)
	mv := float64(m0) + float64(m1)/base
	nv := float64(n0) + float64(n1)/base

	e := expM - expN
	qp := mv / nv
	if qp >= 1 {
		return int64(math.Floor(qp)), e
	}
	return int64(math.Floor(qp * base)), e - 1
}

// getQStarInt is the single-digit-divisor counterpart of getQStarNumber: n
// is an already-positive plain integer (conceptually a one-digit divisor).
func getQStarInt(m *Number, n int64) (qStar int64, eStar int) {
	e := m.msExp
	m0, m1 := m.digit(e), m.digit(e-1)
	base := float64(m.base)
	qp := (float64(m0) + float64(m1)/base) / float64(n)
	for qp < 1 {
		qp *= base
		e--
	}
	return int64(math.Floor(qp)), e
}

// divPositive computes Q = M/N by schoolbook long division with the
// two-digit quotient estimate, for non-negative M and strictly positive N.
// M is consumed (mutated into the final remainder, or, when N's mantissa is
// the single digit 1, shifted into the quotient itself); Q is cleared first.
func divPositive(M, N, Q *Number) {
	Q.clear()

	if N.isUnitDigit() {
		M.msExp -= N.msExp
		Q.Set(M)
		return
	}

	dupN := N.Clone()
	for M.msValue() != 0 {
		qStar, eStar := getQStarNumber(M, dupN)
		if Q.exceedsPrecision(eStar) {
			break
		}

		NQ := dupN.mulScaled(qStar, eStar)
		if NQ.isZeroStrict() {
			break
		}

		M.addNumber(-1, NQ)
		if M.isNegative() {
			if qStar > 1 {
				qStar--
			} else {
				qStar = M.base - 1
				eStar--
			}
			M.addNumber(1, dupN.mulScaled(1, eStar))
		}

		Q.addDigitAt(qStar, eStar)
	}
}

// quoIntPositive is divPositive's single-digit-divisor counterpart: n is a
// plain positive int64 rather than a Number.
func quoIntPositive(M *Number, n int64, Q *Number) {
	Q.clear()

	if n == 1 {
		Q.Set(M)
		return
	}

	for M.msValue() != 0 {
		qStar, eStar := getQStarInt(M, n)
		if Q.exceedsPrecision(eStar) {
			break
		}

		NQ := scaledInt(Q, n, qStar, eStar)
		if NQ.isZeroStrict() {
			break
		}

		M.addNumber(-1, NQ)
		if M.isNegative() {
			if qStar > 1 {
				qStar--
			} else {
				qStar = M.base - 1
				eStar--
			}
			M.addNumber(1, scaledInt(Q, n, 1, eStar))
		}

		Q.addDigitAt(qStar, eStar)
	}
}

// scaledInt builds a Number (sharing ctx's base/precision) equal to
// n * multiplier * base**exp.
func scaledInt(ctx *Number, n, multiplier int64, exp int) *Number {
	r := ctx.patternNew()
	r.addInt64InPlace(n)
	r.msExp += exp
	r.trim()
	r.mulInt64InPlace(multiplier)
	return r
}

// Quo sets z to the rounded quotient x/y and returns z. x and y may use
// different bases; y is converted to x's base first. z may alias x, y, or
// both. Quo panics with OverflowError if y is zero.
func (z *Number) Quo(x, y *Number) *Number {
	if !sameBase(x, y) {
		y = y.ConvertBase(int(x.base))
	}
	if y.isZeroStrict() {
		panic(overflowf("%s: division by zero", opQuo))
	}
	if isSelf(x, y) {
		result := x.patternNew()
		result.addInt64InPlace(1)
		return z.Set(result)
	}

	M := x.Clone()
	negM := M.isNegative()
	if negM {
		M.mulInt64InPlace(-1)
	}

	N := y
	negN := y.isNegative()
	if negN {
		N = y.Clone()
		N.mulInt64InPlace(-1)
	}
	negQ := negM != negN

	Q := x.patternNew()
	divPositive(M, N, Q)
	if negQ {
		Q.mulInt64InPlace(-1)
	}
	return z.Set(Q)
}

// QuoInt64 sets z to x/v and returns z. QuoInt64 panics with OverflowError
// if v is zero.
func (z *Number) QuoInt64(x *Number, v int64) *Number {
	if v == 1 {
		return z.Set(x)
	}
	if v == -1 {
		return z.MulInt64(x, -1)
	}
	if v == 0 {
		panic(overflowf("%s: division by zero", opQuo))
	}

	M := x.Clone()
	negM := M.isNegative()
	if negM {
		M.mulInt64InPlace(-1)
	}

	n := v
	negN := v < 0
	if negN {
		n = -n
	}
	negQ := negM != negN

	Q := x.patternNew()
	quoIntPositive(M, n, Q)
	if negQ {
		Q.mulInt64InPlace(-1)
	}
	return z.Set(Q)
}
