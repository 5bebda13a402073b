package apnum

// parseBasePrefix inspects s (assumed to already have any sign stripped)
// for a base prefix and returns the detected base and the prefix length to
// skip. A bare leading 0 followed by 8 or 9 is rejected immediately
// (spec.md's REDESIGN FLAGS: the upstream implementation instead
// misclassifies it as octal and fails later, during digit validation, with
// a confusing error).
func parseBasePrefix(s string) (base int, prefixLen int, err error) {
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'x':
			return 16, 2, nil
		case 'b':
			return 2, 2, nil
		}
		if s[1] >= '0' && s[1] <= '7' {
			return 8, 1, nil
		}
		if s[1] == '8' || s[1] == '9' {
			return 0, 0, invalidArgumentf("leading 0 followed by %q cannot be octal", s[1])
		}
	}
	return 10, 0, nil
}

// digitValue maps a single alphabet character to its digit value. The
// alphabet is 0-9, then A-Q / a-q, covering radixes up to MaxRadix.
func digitValue(ch byte) (int64, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int64(ch - '0'), true
	case ch >= 'a' && ch <= 'q':
		return int64(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'Q':
		return int64(ch-'A') + 10, true
	default:
		return 0, false
	}
}

// parseMantissa parses the digit sequence (with an optional single '.') at
// the start of s into no, which must already be cleared to zero in its own
// base. It returns the number of bytes of s consumed by the mantissa (not
// including any exponent suffix).
//
// no starts out holding the single sentinel digit 0 (from clear); digits are
// appended to it as parsed, and msExp is set once (either at the '.' or at
// the end of the integer run) counting the sentinel in, so that trim's
// trimHigh step removes the sentinel and restores the correct exponent.
func parseMantissa(no *Number, s string) (int, error) {
	base := no.base
	hasDot := false
	i := 0

	for i < len(s) && (base != 10 || (s[i] != 'e' && s[i] != 'E')) {
		if s[i] == '.' {
			no.msExp = i
			i++
			hasDot = true
			continue
		}

		if hasDot && no.exceedsPrecision(no.LsExp()) {
			break
		}

		x, ok := digitValue(s[i])
		if !ok {
			return 0, invalidArgumentf("invalid character %q in number", s[i])
		}
		if x >= base {
			return 0, invalidArgumentf("digit %q is not valid in base %d", s[i], base)
		}

		no.digits = append(no.digits, x)
		i++
	}

	if !hasDot {
		no.msExp = i
	}

	for i < len(s) && s[i] != 'e' && s[i] != 'E' {
		i++
	}

	no.trim()
	return i, nil
}

// parseExpNumber parses an optional 'e'/'E'-introduced signed exponent from
// the start of s, returning 0 if s does not start with one. Per spec.md
// §4.6, the exponent's digits (always 0-9) are combined using base, not 10
// -- the exponent is interpreted in the mantissa's own base.
func parseExpNumber(s string, base int64) (int, error) {
	if len(s) == 0 || (s[0] != 'e' && s[0] != 'E') {
		return 0, nil
	}

	i := 1
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}

	var exp int64
	for ; i < len(s); i++ {
		x := int64(s[i]) - '0'
		if x < 0 || x > 9 {
			return 0, invalidArgumentf("invalid exponent digit %q", s[i])
		}
		exp = exp*base + x
	}
	if neg {
		exp = -exp
	}
	return int(exp), nil
}

// parseText parses s (optional sign, optional base prefix, mantissa,
// optional exponent) into a fresh Number in the detected source base, with
// precisionIn10 as its decimal precision budget.
func parseText(s string, precisionIn10 int) (*Number, error) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}

	base, prefixLen, err := parseBasePrefix(s[i:])
	if err != nil {
		return nil, err
	}
	rest := s[i+prefixLen:]

	no := newEmpty(int64(base), calcPrecision(precisionIn10, 10, float64(base)))
	consumed, err := parseMantissa(no, rest)
	if err != nil {
		return nil, err
	}

	exp, err := parseExpNumber(rest[consumed:], int64(base))
	if err != nil {
		return nil, err
	}
	no.msExp += exp

	if neg {
		no.mulInt64InPlace(-1)
	}
	return no, nil
}

// SetString sets z to the value of s, parsed with precisionIn10 digits of
// decimal precision and the source radix auto-detected from s's prefix
// (defaulting to decimal), then converted to z's own base. It returns z and
// a nil error on success.
//
// s is an optional '-' or '+', an optional prefix ("0x" for base 16, "0b" for
// base 2, a leading 0 followed by a digit 0-7 for base 8), digits with an optional
// '.', and, in base 10, an optional 'e' or 'E' followed by a signed exponent.
func (z *Number) SetString(s string, precisionIn10 int) (*Number, error) {
	parsed, err := parseText(s, precisionIn10)
	if err != nil {
		return nil, err
	}
	return z.Set(parsed.ConvertBase(z.Base())), nil
}
