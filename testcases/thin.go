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

var thinCases = []TestCase{
	seg2("horizontal", -1, 0, 1, 0, OnLine{}, pts(-1, 0, 0, 0, 1, 0)),
	seg2("slope_two", 1, 2, 5, 10, OnLine{}, pts(1, 2, 2, 4, 3, 6, 4, 8, 5, 10)),
	seg2("slope_two_reversed", 5, 10, 1, 2, OnLine{}, pts(1, 2, 2, 4, 3, 6, 4, 8, 5, 10)),
	seg2("coprime", 0, 0, 3, 5, OnLine{}, pts(0, 0, 3, 5)),
	seg2("falling", 0, 0, 6, -4, OnLine{}, pts(0, 0, 3, -2, 6, -4)),
	seg2("vertical", 2, -2, 2, 1, OnLine{}, pts(2, -2, 2, -1, 2, 0, 2, 1)),
	seg2("long", -7, 3, 9, -5, OnLine{},
		pts(-7, 3, -5, 2, -3, 1, -1, 0, 1, -1, 3, -2, 5, -3, 7, -4, 9, -5)),
	seg2("steep", 1, -6, 2, 9, OnLine{}, pts(1, -6, 2, 9)),
}
