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

var degenerateCases = []TestCase{
	seg2("point_thin", 3, 4, 3, 4, OnLine{}, pts(3, 4)),
	seg2("point_cells", 3, 4, 3, 4, HalfCell{}, pts(3, 4)),
	seg2("point_within", 3, 4, 3, 4, Within{Radius: rational.New(1, 3)}, pts(3, 4)),
	seg2("vertical_cells", 2, 2, 2, -1, HalfCell{}, pts(2, -1, 2, 0, 2, 1, 2, 2)),
	seg2("horizontal_within", -2, 5, 1, 5, Within{Radius: rational.New(1, 5)},
		pts(-2, 5, -1, 5, 0, 5, 1, 5)),
}
