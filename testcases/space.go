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

var spaceCases = []TestCase{
	seg3("thin_steps", pt3(0, 0, 0), pt3(2, 4, 6), OnLine{},
		[]Point{pt3(0, 0, 0), pt3(1, 2, 3), pt3(2, 4, 6)}),
	seg3("thin_reduced", pt3(0, 0, 0), pt3(4, 2, 6), OnLine{},
		[]Point{pt3(0, 0, 0), pt3(2, 1, 3), pt3(4, 2, 6)}),
	seg3("thin_coprime", pt3(0, 0, 0), pt3(2, 3, 5), OnLine{},
		[]Point{pt3(0, 0, 0), pt3(2, 3, 5)}),
	seg3("thin_plane", pt3(1, 0, 0), pt3(1, 2, 4), OnLine{},
		[]Point{pt3(1, 0, 0), pt3(1, 1, 2), pt3(1, 2, 4)}),
	seg3("cells_diagonal", pt3(0, 0, 0), pt3(1, 1, 1), HalfCell{},
		[]Point{pt3(0, 0, 0), pt3(1, 1, 1)}),
	seg3("cells_column", pt3(0, 0, 0), pt3(0, 0, 3), HalfCell{},
		[]Point{pt3(0, 0, 0), pt3(0, 0, 1), pt3(0, 0, 2), pt3(0, 0, 3)}),
	seg3("cells_flat", pt3(0, 0, 5), pt3(2, 1, 5), HalfCell{},
		[]Point{pt3(0, 0, 5), pt3(1, 0, 5), pt3(1, 1, 5), pt3(2, 1, 5)}),
	seg3("cells_general", pt3(0, 0, 0), pt3(3, 1, 2), HalfCell{}, nil),
	seg3("cells_down", pt3(1, 2, 3), pt3(-1, 0, 0), HalfCell{}, nil),
	seg3("within_diagonal", pt3(0, 0, 0), pt3(1, 1, 1), Within{Radius: rational.New(1, 4)},
		[]Point{pt3(0, 0, 0), pt3(1, 1, 1)}),
	seg3("within_third", pt3(0, 0, 0), pt3(2, 1, 3), Within{Radius: rational.New(1, 3)}, nil),
}

// seg3 is a helper to create a three-dimensional segment case.
func seg3(name string, p1, p2 Point, op Operation, want []Point) TestCase {
	return TestCase{
		Name:  name,
		Dim:   3,
		Shape: Segment{P1: p1, P2: p2, Op: op},
		Want:  want,
	}
}
