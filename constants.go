package apnum

// DefaultBase is the radix used by the zero-argument and single-argument
// constructors. It is the largest round decimal factor not exceeding
// 2**30/(1+ε), chosen so that digit·multiplier + carry fits comfortably in
// int64 during scalar multiplication (see mulSingleDigit in arith_mul.go).
const DefaultBase = 640000000

// DefaultPrecisionIn10 is the default decimal fractional-digit budget used
// by constructors that don't specify one explicitly.
const DefaultPrecisionIn10 = 2000

// ExtraPrecision is the slack factor applied on top of the nominal precision
// to obtain safePrecision, the storage-level digit cutoff.
const ExtraPrecision = 0.10

// MinRadix and MaxRadix bound the radixes accepted by Text.
const (
	MinRadix = 2
	MaxRadix = 27
)

// digitChars is the alphabet used to render and parse digits in radixes up
// to MaxRadix: 0-9 then A-Q (or a-q).
const digitChars = "0123456789ABCDEFGHIJKLMNOPQ"
