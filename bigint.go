package apnum

import (
	"math/big"
	"math/bits"
)

// Int sets z to the integer part of x, truncated toward zero, and returns z.
// If z is nil, a new big.Int is allocated. The digit representation carries
// sign in its leading digit, so a Horner accumulation of the digits at
// non-negative exponents yields the floor of x; for a negative x with a
// nonzero fractional part that floor is moved up by one.
func (x *Number) Int(z *big.Int) (*big.Int, error) {
	if z == nil {
		z = new(big.Int)
	}
	base := big.NewInt(x.base)
	acc := new(big.Int)
	d := new(big.Int)
	for exp := x.msExp; exp >= 0; exp-- {
		acc.Mul(acc, base)
		d.SetInt64(x.digit(exp))
		acc.Add(acc, d)
	}
	if acc.Sign() < 0 {
		for exp := -1; exp >= x.LsExp(); exp-- {
			if x.digit(exp) != 0 {
				acc.Add(acc, big.NewInt(1))
				break
			}
		}
	}
	z.Set(acc)
	return z, nil
}

// SetBigInt sets z to x, converted into z's own base, and returns z.
func (z *Number) SetBigInt(x *big.Int) *Number {
	z.clear()
	if x.Sign() == 0 {
		return z
	}

	neg := x.Sign() < 0
	tmp := new(big.Int).Abs(x)
	base := big.NewInt(z.base)
	mod := new(big.Int)

	// Rough digit-count estimate (bits in x divided by bits per base-z
	// digit) so the accumulation below rarely has to grow the slice.
	estCap := tmp.BitLen()/bits.Len64(uint64(z.base-1)) + 2
	lsFirst := make([]int64, 0, estCap)
	for tmp.Sign() != 0 {
		tmp.DivMod(tmp, base, mod)
		lsFirst = append(lsFirst, mod.Int64())
	}

	digits := make([]int64, len(lsFirst))
	for i, v := range lsFirst {
		digits[len(digits)-1-i] = v
	}

	z.digits = digits
	z.msExp = len(digits) - 1
	if neg {
		z.mulInt64InPlace(-1)
	}
	z.trim()
	return z
}
