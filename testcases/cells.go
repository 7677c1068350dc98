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

var cellsCases = []TestCase{
	seg2("half", 0, 0, 2, 1, HalfCell{}, pts(0, 0, 1, 0, 1, 1, 2, 1)),
	seg2("half_reversed", 2, 1, 0, 0, HalfCell{}, pts(0, 0, 1, 0, 1, 1, 2, 1)),
	seg2("half_falling", 0, 0, 2, -1, HalfCell{}, pts(0, 0, 1, 0, 1, -1, 2, -1)),
	seg2("half_shifted", 3, -2, 5, -1, HalfCell{}, pts(3, -2, 4, -2, 4, -1, 5, -1)),
	seg2("two_thirds", 0, 0, 3, 2, HalfCell{}, pts(0, 0, 1, 0, 1, 1, 2, 1, 2, 2, 3, 2)),
	seg2("quarter", 0, 0, 4, 1, HalfCell{}, pts(0, 0, 1, 0, 2, 0, 2, 1, 3, 1, 4, 1)),
	seg2("steep_falling", -1, 4, 1, -3, HalfCell{}, nil),
	seg2("long", -9, -2, 11, 5, HalfCell{}, nil),
}
