// Copyright 2020 The apnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package apnum implements arbitrary-precision signed real number arithmetic.

A Number is a fixed-point-like value

	Σ digits[i] × B**(msExp - i),  for i = 0 … len(digits)-1

stored as a most-significant exponent, a deque of signed digit values in a
configurable integer radix B (B >= 2), and a precision bound expressed in
fractional digits of that radix. Unlike a big.Float-style binary mantissa,
every element of the digit deque holds one base-B digit; only the leading
digit may be negative, which is how the sign of the whole value is carried
without a separate sign flag.

The zero value of a Number is not ready to use: base and precision must be
known before any digit can be stored, so values are always produced by one
of the constructors:

	func New() *Number                                    // 0, default base/precision
	func NewInt(v int64, precisionIn10, base int) *Number
	func NewFloat(v float64, precisionIn10, base int) *Number
	func NewString(s string, precisionIn10, base int) (*Number, error)

Int, Float, and String are convenience wrappers around the above that use
DefaultPrecisionIn10 and DefaultBase.

Arithmetic methods follow the receiver/operand naming convention used
throughout this package: the receiver z denotes the result, and operands are
named x, y (never z). For instance, given three *Number values a, b and c:

	c.Add(a, b)

computes a+b and stores the result in c, discarding whatever c held before.
Unless documented otherwise, operands may alias the receiver or each other:

	sum.Add(sum, x) // accumulate x into sum

is always safe, including the degenerate case sum.Add(sum, sum) (detected
internally and short-circuited to a multiply by 2), and likewise for Sub,
Mul, and Quo aliasing a value with itself.

Methods that report a property of x rather than compute a new Number (Sign,
IsZero, Cmp and so on) take x as the receiver and return the property
directly, with no z parameter:

	func (x *Number) Sign() int
	func (x *Number) Cmp(y *Number) int

Add, Sub, Mul and Quo take *Number operands. Primitive operands are taken by
separate methods: AddInt64, SubInt64, MulInt64 and QuoInt64 for int64, and
AddFloat64 and SubFloat64 for float64; these work directly on a copy of x,
whose base and precision the result keeps. There are no float64 forms of Mul
and Quo, and no method takes a string operand; text is parsed into a Number
with SetString or NewString first.

All digit storage, exponent bookkeeping, carry propagation, and precision
trimming is internal bookkeeping: Number guarantees the invariants documented
in digits.go are restored before any exported method returns.
*/
package apnum
