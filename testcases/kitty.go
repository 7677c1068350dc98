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

// Segments passing exactly through the corner where four cells meet.  Only
// the two cells containing the segment before and after the corner are hit.
var kittyCases = []TestCase{
	seg2("diagonal", 0, 0, 1, 1, HalfCell{}, pts(0, 0, 1, 1)),
	seg2("diagonal_long", -2, -2, 2, 2, HalfCell{}, pts(-2, -2, -1, -1, 0, 0, 1, 1, 2, 2)),
	seg2("anti_diagonal", 0, 0, 2, -2, HalfCell{}, pts(0, 0, 1, -1, 2, -2)),
	seg2("third", 0, 0, 3, 1, HalfCell{}, pts(0, 0, 1, 0, 2, 1, 3, 1)),
	seg2("third_falling", 0, 0, 3, -1, HalfCell{}, pts(0, 0, 1, 0, 2, -1, 3, -1)),
	seg2("steep", 0, 0, 1, 3, HalfCell{}, pts(0, 0, 0, 1, 1, 2, 1, 3)),
	seg2("three_fifths", 0, 0, 5, 3, HalfCell{},
		pts(0, 0, 1, 0, 1, 1, 2, 1, 3, 2, 4, 2, 4, 3, 5, 3)),
	seg2("three_fifths_reversed", 5, 3, 0, 0, HalfCell{},
		pts(0, 0, 1, 0, 1, 1, 2, 1, 3, 2, 4, 2, 4, 3, 5, 3)),
}
