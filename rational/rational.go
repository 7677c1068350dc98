// seehuhn.de/go/lattice - exact rasterization on integer lattices
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package rational implements exact rational numbers with 64-bit numerator
// and denominator.
//
// Values are always kept in lowest terms with a positive denominator, and
// zero has a single representation.  Because of this, two values can be
// compared using the == operator.
package rational

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Errors reported by this package.  Division by zero and overflow are
// programming errors and are reported by panicking with these values.
var (
	ErrDivisionByZero  = errors.New("rational: division by zero")
	ErrOverflow        = errors.New("rational: integer overflow")
	ErrInvalidArgument = errors.New("rational: invalid argument")
	ErrSyntax          = errors.New("rational: invalid syntax")
)

// Rational is an exact rational number.
//
// The zero value is the number 0.
type Rational struct {
	neg bool  // true iff the value is strictly negative
	num int64 // magnitude of the numerator
	den int64 // denominator minus one
}

// Try returns the rational number num/den in lowest terms.
// Either argument may be negative.  An error is returned if den is zero.
func Try(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return normalize(num, den), nil
}

// New is like Try, but panics if den is zero.
func New(num, den int64) Rational {
	x, err := Try(num, den)
	if err != nil {
		panic(err)
	}
	return x
}

// Int returns the integer n as a rational number.
func Int(n int64) Rational {
	return normalize(n, 1)
}

// Signed returns the number num/den with the sign given by neg.
// The magnitudes num and den must be non-negative and den must be non-zero.
// If num is zero, the sign is ignored.
func Signed(neg bool, num, den int64) Rational {
	if num < 0 || den < 0 {
		panic(ErrInvalidArgument)
	}
	if neg {
		num = -num
	}
	return New(num, den)
}

// Parse parses a number of the form "m/n" or "m", where m and n are
// decimal integers and only m may carry a sign.
func Parse(s string) (Rational, error) {
	numStr, denStr, hasDen := strings.Cut(strings.TrimSpace(s), "/")
	num, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: numerator %q", ErrSyntax, numStr)
	}
	if !hasDen {
		return Int(num), nil
	}
	if strings.HasPrefix(denStr, "-") || strings.HasPrefix(denStr, "+") {
		return Rational{}, fmt.Errorf("%w: denominator %q", ErrSyntax, denStr)
	}
	den, err := strconv.ParseInt(denStr, 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: denominator %q", ErrSyntax, denStr)
	}
	return Try(num, den)
}

// Num returns the numerator of x, carrying the sign of x.
func (x Rational) Num() int64 {
	if x.neg {
		return -x.num
	}
	return x.num
}

// Den returns the denominator of x.  The result is always positive.
func (x Rational) Den() int64 {
	return x.den + 1
}

// Sign returns -1 if x < 0, 0 if x == 0 and 1 if x > 0.
func (x Rational) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.num == 0:
		return 0
	default:
		return 1
	}
}

// IsZero reports whether x equals 0.
func (x Rational) IsZero() bool {
	return x.num == 0
}

// IsInt reports whether x is an integer.
func (x Rational) IsInt() bool {
	return x.den == 0
}

// Neg returns -x.
func (x Rational) Neg() Rational {
	if x.num == 0 {
		return x
	}
	x.neg = !x.neg
	return x
}

// Abs returns |x|.
func (x Rational) Abs() Rational {
	x.neg = false
	return x
}

// Add returns x + y.
func (x Rational) Add(y Rational) Rational {
	xd, yd := x.Den(), y.Den()
	g := GCD(xd, yd)
	num := add(mul(x.Num(), yd/g), mul(y.Num(), xd/g))
	return normalize(num, mul(xd/g, yd))
}

// Sub returns x - y.
func (x Rational) Sub(y Rational) Rational {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Rational) Mul(y Rational) Rational {
	if x.num == 0 || y.num == 0 {
		return Rational{}
	}

	// Cancel common factors across the two fractions first, so that the
	// products below only overflow if the result does.
	xn, xd := x.num, x.Den()
	yn, yd := y.num, y.Den()
	if g := GCD(xn, yd); g != 1 {
		xn, yd = xn/g, yd/g
	}
	if g := GCD(yn, xd); g != 1 {
		yn, xd = yn/g, xd/g
	}
	return Rational{
		neg: x.neg != y.neg,
		num: mul(xn, yn),
		den: mul(xd, yd) - 1,
	}
}

// Div returns x / y.  Div panics with ErrDivisionByZero if y is zero.
func (x Rational) Div(y Rational) Rational {
	return x.Mul(y.inv())
}

// AddInt returns x + n.
func (x Rational) AddInt(n int64) Rational {
	return normalize(add(x.Num(), mul(n, x.Den())), x.Den())
}

// SubInt returns x - n.
func (x Rational) SubInt(n int64) Rational {
	if n == math.MinInt64 {
		panic(ErrOverflow)
	}
	return x.AddInt(-n)
}

// MulInt returns x * n.
func (x Rational) MulInt(n int64) Rational {
	if x.num == 0 || n == 0 {
		return Rational{}
	}
	d := x.Den()
	g := GCD(abs(n), d)
	return normalize(mul(x.Num(), n/g), d/g)
}

// DivInt returns x / n.  DivInt panics with ErrDivisionByZero if n is zero.
func (x Rational) DivInt(n int64) Rational {
	if n == 0 {
		panic(ErrDivisionByZero)
	}
	g := GCD(x.num, abs(n))
	return normalize(x.Num()/g, mul(x.Den(), n/g))
}

// Cmp compares x and y and returns -1 if x < y, 0 if x == y and 1 if x > y.
func (x Rational) Cmp(y Rational) int {
	if x == y {
		return 0
	}
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	}

	// Same sign: compare the magnitudes by cross multiplication.
	// For two negative numbers the order is reversed.
	c := cmpWide(x.num, y.Den(), y.num, x.Den())
	if x.neg {
		c = -c
	}
	return c
}

// Floor returns the greatest integer less than or equal to x.
func (x Rational) Floor() int64 {
	q, r := x.num/x.Den(), x.num%x.Den()
	if !x.neg {
		return q
	}
	if r == 0 {
		return -q
	}
	return -q - 1
}

// Ceil returns the least integer greater than or equal to x.
func (x Rational) Ceil() int64 {
	q, r := x.num/x.Den(), x.num%x.Den()
	if x.neg {
		return -q
	}
	if r == 0 {
		return q
	}
	return q + 1
}

// FloorTo returns the greatest multiple of 1/den which is less than or
// equal to x.  The argument den must be positive.
func (x Rational) FloorTo(den int64) Rational {
	if den <= 0 {
		panic(ErrInvalidArgument)
	}
	return New(x.MulInt(den).Floor(), den)
}

// CeilTo returns the least multiple of 1/den which is greater than or
// equal to x.  The argument den must be positive.
func (x Rational) CeilTo(den int64) Rational {
	if den <= 0 {
		panic(ErrInvalidArgument)
	}
	return New(x.MulInt(den).Ceil(), den)
}

// Float64 returns the floating point number closest to x.
// This is meant for display only.
func (x Rational) Float64() float64 {
	return float64(x.Num()) / float64(x.Den())
}

// String returns x in the form "m/n", or "m" if x is an integer.
func (x Rational) String() string {
	if x.IsInt() {
		return strconv.FormatInt(x.Num(), 10)
	}
	return strconv.FormatInt(x.Num(), 10) + "/" + strconv.FormatInt(x.Den(), 10)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x Rational) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (x *Rational) UnmarshalText(text []byte) error {
	y, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = y
	return nil
}

// Min returns the smaller of x and y.
func Min(x, y Rational) Rational {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max(x, y Rational) Rational {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// GCD returns the greatest common divisor of a and b, which must both be
// non-negative.  GCD(a, 0) is a.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func (x Rational) inv() Rational {
	if x.num == 0 {
		panic(ErrDivisionByZero)
	}
	return Rational{neg: x.neg, num: x.Den(), den: x.num - 1}
}

// normalize returns num/den in lowest terms.  The denominator must be
// non-zero.
func normalize(num, den int64) Rational {
	if num == 0 {
		return Rational{}
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		panic(ErrOverflow)
	}
	neg := (num < 0) != (den < 0)
	num, den = abs(num), abs(den)
	g := GCD(num, den)
	return Rational{neg: neg, num: num / g, den: den/g - 1}
}

// mul returns a*b and panics if the product does not fit into an int64.
func mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(abs(a)), uint64(abs(b)))
	if hi != 0 || lo > math.MaxInt64 {
		panic(ErrOverflow)
	}
	if (a < 0) != (b < 0) {
		return -int64(lo)
	}
	return int64(lo)
}

// add returns a+b and panics if the sum does not fit into an int64.
func add(a, b int64) int64 {
	c := a + b
	if (c > a) != (b > 0) {
		panic(ErrOverflow)
	}
	return c
}

// cmpWide compares a*b with c*d for non-negative arguments, using
// 128-bit products.
func cmpWide(a, b, c, d int64) int {
	h1, l1 := bits.Mul64(uint64(a), uint64(b))
	h2, l2 := bits.Mul64(uint64(c), uint64(d))
	switch {
	case h1 < h2 || h1 == h2 && l1 < l2:
		return -1
	case h1 > h2 || h1 == h2 && l1 > l2:
		return 1
	}
	return 0
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
