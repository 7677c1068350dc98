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

package testcases

import (
	"seehuhn.de/go/lattice/rational"
)

var radiusCases = []TestCase{
	seg2("quarter", 0, 0, 2, 1, Within{Radius: rational.New(1, 4)}, pts(0, 0, 2, 1)),
	seg2("thirteen_over_33", 0, 0, 2, 1, Within{Radius: rational.New(13, 33)},
		pts(0, 0, 1, 0, 1, 1, 2, 1)),
	seg2("zero", 0, 0, 2, 1, Within{}, pts(0, 0, 2, 1)),
	seg2("half", 0, 0, 2, 1, Within{Radius: rational.New(1, 2)}, pts(0, 0, 1, 0, 1, 1, 2, 1)),
	seg2("clamped_high", 0, 0, 2, 1, Within{Radius: rational.Int(1)}, pts(0, 0, 1, 0, 1, 1, 2, 1)),
	seg2("clamped_low", 0, 0, 2, 1, Within{Radius: rational.New(-1, 3)}, pts(0, 0, 2, 1)),
	seg2("third", 0, 0, 3, 1, Within{Radius: rational.New(1, 3)}, pts(0, 0, 1, 0, 2, 1, 3, 1)),
	seg2("tenth", 0, 0, 3, 1, Within{Radius: rational.New(1, 10)}, pts(0, 0, 3, 1)),
	seg2("two_sevenths", -3, 2, 4, -1, Within{Radius: rational.New(2, 7)}, nil),
	seg2("five_elevenths", -4, -5, 6, 3, Within{Radius: rational.New(5, 11)}, nil),
}
