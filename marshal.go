package apnum

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"unicode"
)

// MarshalText implements encoding.TextMarshaler.
func (x *Number) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. z's existing base and
// precision are kept; only its value is replaced.
func (z *Number) UnmarshalText(text []byte) error {
	_, err := z.SetString(string(text), z.PrecisionIn10())
	return err
}

// gobPayload is the wire representation used by GobEncode/GobDecode.
type gobPayload struct {
	Base          int64
	MsExp         int
	Precision     float64
	SafePrecision int
	Digits        []int64
}

// GobEncode implements gob.GobEncoder.
func (x *Number) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	payload := gobPayload{
		Base:          x.base,
		MsExp:         x.msExp,
		Precision:     x.precision,
		SafePrecision: x.safePrecision,
		Digits:        x.digits,
	}
	if err := gob.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (z *Number) GobDecode(data []byte) error {
	var payload gobPayload
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&payload); err != nil {
		return err
	}
	z.base = payload.Base
	z.msExp = payload.MsExp
	z.precision = payload.Precision
	z.safePrecision = payload.SafePrecision
	z.digits = payload.Digits
	return nil
}

// Scan implements fmt.Scanner, accepting the same text format as SetString.
func (z *Number) Scan(s fmt.ScanState, verb rune) error {
	switch verb {
	case 'v', 's', 'd', 'g', 'x', 'b', 'o':
	default:
		return invalidArgumentf("unsupported verb %%%c for apnum.Number", verb)
	}
	tok, err := s.Token(true, func(r rune) bool {
		return unicode.IsDigit(r) || unicode.IsLetter(r) || r == '.' || r == '+' || r == '-'
	})
	if err != nil {
		return err
	}
	_, err = z.SetString(string(tok), z.PrecisionIn10())
	return err
}

// Format implements fmt.Formatter. %v and %s print x as String does; %x,
// %b, %o print it in hex, binary, and octal regardless of x's own base.
func (x *Number) Format(f fmt.State, verb rune) {
	var s string
	switch verb {
	case 'v', 's':
		s = x.String()
	case 'x':
		s = x.HexString()
	case 'b':
		s = x.BinString()
	case 'o':
		s = x.OctString()
	default:
		fmt.Fprintf(f, "%%!%c(apnum.Number=%s)", verb, x.String())
		return
	}
	io.WriteString(f, s)
}
