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

package rational

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestCanonicalForm(t *testing.T) {
	for n := int64(-12); n <= 12; n++ {
		for d := int64(-7); d <= 7; d++ {
			if d == 0 {
				continue
			}
			x := New(n, d)
			for k := int64(1); k <= 5; k++ {
				if y := New(k*n, k*d); y != x {
					t.Errorf("New(%d, %d) = %v, want %v", k*n, k*d, y, x)
				}
			}
			if g := GCD(abs(x.Num()), x.Den()); g != 1 {
				t.Errorf("New(%d, %d) = %v is not reduced", n, d, x)
			}
			if x.Den() <= 0 {
				t.Errorf("New(%d, %d) has denominator %d", n, d, x.Den())
			}
		}
	}
}

func TestZero(t *testing.T) {
	var zero Rational
	for d := int64(-5); d <= 5; d++ {
		if d == 0 {
			continue
		}
		x := New(0, d)
		if x != zero {
			t.Errorf("New(0, %d) = %#v, want the zero value", d, x)
		}
		if x.Sign() != 0 || x.Den() != 1 {
			t.Errorf("New(0, %d): sign %d, den %d", d, x.Sign(), x.Den())
		}
	}
	if z := Signed(true, 0, 7); z != zero {
		t.Errorf("Signed(true, 0, 7) = %#v, want zero", z)
	}
	if z := zero.Neg(); z != zero {
		t.Errorf("-0 = %#v, want zero", z)
	}
	if z := New(3, 4).Sub(New(6, 8)); z != zero {
		t.Errorf("3/4 - 6/8 = %#v, want zero", z)
	}
}

func TestDivisionByZero(t *testing.T) {
	if _, err := Try(1, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Try(1, 0): got error %v", err)
	}

	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			r := recover()
			if r != ErrDivisionByZero {
				t.Errorf("%s: recovered %v, want %v", name, r, ErrDivisionByZero)
			}
		}()
		fn()
	}
	mustPanic("New", func() { New(3, 0) })
	mustPanic("Div", func() { New(1, 2).Div(Rational{}) })
	mustPanic("DivInt", func() { New(1, 2).DivInt(0) })
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		name string
		got  Rational
		want Rational
	}{
		{"1/2+1/3", New(1, 2).Add(New(1, 3)), New(5, 6)},
		{"1/2-1/3", New(1, 2).Sub(New(1, 3)), New(1, 6)},
		{"1/3-1/2", New(1, 3).Sub(New(1, 2)), New(-1, 6)},
		{"-1/2+-1/2", New(-1, 2).Add(New(-1, 2)), Int(-1)},
		{"2/3*9/4", New(2, 3).Mul(New(9, 4)), New(3, 2)},
		{"-2/3*9/4", New(-2, 3).Mul(New(9, 4)), New(-3, 2)},
		{"-2/3*-9/4", New(-2, 3).Mul(New(-9, 4)), New(3, 2)},
		{"2/3/4/9", New(2, 3).Div(New(4, 9)), New(3, 2)},
		{"2/3/-4/9", New(2, 3).Div(New(-4, 9)), New(-3, 2)},
		{"1/2+3", New(1, 2).AddInt(3), New(7, 2)},
		{"1/2-3", New(1, 2).SubInt(3), New(-5, 2)},
		{"5/6*4", New(5, 6).MulInt(4), New(10, 3)},
		{"5/6*-3", New(5, 6).MulInt(-3), New(-5, 2)},
		{"5/6/-10", New(5, 6).DivInt(-10), New(-1, 12)},
		{"0/7", Rational{}.DivInt(7), Rational{}},
		{"abs(-3/4)", New(-3, 4).Abs(), New(3, 4)},
		{"-(3/4)", New(3, 4).Neg(), New(-3, 4)},
		{"Signed", Signed(true, 6, 8), New(-3, 4)},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestOverflow(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrOverflow {
			t.Errorf("recovered %v, want %v", r, ErrOverflow)
		}
	}()
	big := Int(math.MaxInt64 / 2)
	_ = big.Mul(Int(3))
	t.Error("no panic")
}

func TestCmp(t *testing.T) {
	values := []Rational{
		Int(-3), New(-5, 2), New(-7, 3), Int(-1), New(-1, 3), Rational{},
		New(1, 1000), New(1, 3), New(1, 2), Int(1), New(7, 3), New(5, 2),
	}
	for i, x := range values {
		for j, y := range values {
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			if got := x.Cmp(y); got != want {
				t.Errorf("%v.Cmp(%v) = %d, want %d", x, y, got, want)
			}
		}
	}

	if Min(New(1, 3), New(1, 2)) != New(1, 3) || Max(New(-1, 3), New(-1, 2)) != New(-1, 3) {
		t.Error("Min/Max")
	}
}

func TestFloorCeil(t *testing.T) {
	cases := []struct {
		x           Rational
		floor, ceil int64
	}{
		{Rational{}, 0, 0},
		{Int(4), 4, 4},
		{Int(-4), -4, -4},
		{New(7, 2), 3, 4},
		{New(-7, 2), -4, -3},
		{New(1, 3), 0, 1},
		{New(-1, 3), -1, 0},
		{New(-6, 3), -2, -2},
	}
	for _, c := range cases {
		if got := c.x.Floor(); got != c.floor {
			t.Errorf("floor(%v) = %d, want %d", c.x, got, c.floor)
		}
		if got := c.x.Ceil(); got != c.ceil {
			t.Errorf("ceil(%v) = %d, want %d", c.x, got, c.ceil)
		}
	}

	// floor(-x) == -ceil(x) and ceil(-x) == -floor(x)
	for n := int64(-30); n <= 30; n++ {
		for d := int64(1); d <= 7; d++ {
			x := New(n, d)
			if x.Neg().Floor() != -x.Ceil() {
				t.Errorf("floor(-%v) = %d, -ceil = %d", x, x.Neg().Floor(), -x.Ceil())
			}
			if x.Neg().Ceil() != -x.Floor() {
				t.Errorf("ceil(-%v) = %d, -floor = %d", x, x.Neg().Ceil(), -x.Floor())
			}
			if f := x.Floor(); Int(f).Cmp(x) > 0 || Int(f+1).Cmp(x) <= 0 {
				t.Errorf("floor(%v) = %d", x, f)
			}
		}
	}
}

func TestFloorToCeilTo(t *testing.T) {
	cases := []struct {
		x, floor2, ceil2 Rational
	}{
		{New(1, 3), Rational{}, New(1, 2)},
		{New(1, 2), New(1, 2), New(1, 2)},
		{New(2, 3), New(1, 2), Int(1)},
		{New(-1, 3), New(-1, 2), Rational{}},
		{New(-5, 4), New(-3, 2), Int(-1)},
		{Int(3), Int(3), Int(3)},
	}
	for _, c := range cases {
		if got := c.x.FloorTo(2); got != c.floor2 {
			t.Errorf("%v.FloorTo(2) = %v, want %v", c.x, got, c.floor2)
		}
		if got := c.x.CeilTo(2); got != c.ceil2 {
			t.Errorf("%v.CeilTo(2) = %v, want %v", c.x, got, c.ceil2)
		}
	}

	// rounding to the nearest integer, halves rounding up
	if got := New(5, 2).FloorTo(2).Ceil(); got != 3 {
		t.Errorf("round(5/2) = %d, want 3", got)
	}
	if got := New(-5, 2).FloorTo(2).Ceil(); got != -2 {
		t.Errorf("round(-5/2) = %d, want -2", got)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Rational
	}{
		{"3/4", New(3, 4)},
		{"-6/8", New(-3, 4)},
		{"12", Int(12)},
		{" 0/5 ", Rational{}},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	for _, in := range []string{"", "1/", "/2", "a/b", "3/-4", "1.5"} {
		if _, err := Parse(in); !errors.Is(err, ErrSyntax) {
			t.Errorf("Parse(%q): got error %v", in, err)
		}
	}
	if _, err := Parse("1/0"); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Parse(\"1/0\"): got error %v", err)
	}
}

func TestJSON(t *testing.T) {
	type radius struct {
		R Rational `json:"r"`
	}
	data, err := json.Marshal(radius{R: New(-13, 33)})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"r":"-13/33"}` {
		t.Errorf("got %s", data)
	}

	var back radius
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.R != New(-13, 33) {
		t.Errorf("round trip gave %v", back.R)
	}
}

func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{0, 0, 0},
		{7, 0, 7},
		{0, 7, 7},
		{12, 18, 6},
		{17, 5, 1},
	}
	for _, c := range cases {
		if got := GCD(c.a, c.b); got != c.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
