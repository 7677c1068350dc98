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

var diskCases = []TestCase{
	{
		Name:  "l2_r0",
		Dim:   2,
		Shape: Ball{Center: pt(4, -7), Radius: 0, Metric: L2},
		Want:  pts(4, -7),
	},
	{
		Name:  "l2_r1",
		Dim:   2,
		Shape: Ball{Center: pt(2, -1), Radius: 1, Metric: L2},
		Want:  pts(2, -1, 1, -1, 3, -1, 2, 0, 2, -2),
	},
	{
		Name:  "l2_r2",
		Dim:   2,
		Shape: Ball{Center: pt(0, 0), Radius: 2, Metric: L2},
		Want: pts(0, 0, 1, 0, -1, 0, 0, 1, 0, -1,
			1, 1, 1, -1, -1, 1, -1, -1,
			2, 0, -2, 0, 0, 2, 0, -2),
	},
	{
		Name:  "l1_r1",
		Dim:   2,
		Shape: Ball{Center: pt(0, 0), Radius: 1, Metric: L1},
		Want:  pts(0, 0, 1, 0, -1, 0, 0, 1, 0, -1),
	},
	{
		Name:  "linf_r1",
		Dim:   2,
		Shape: Ball{Center: pt(0, 0), Radius: 1, Metric: LInf},
		Want:  pts(-1, -1, -1, 0, -1, 1, 0, -1, 0, 0, 0, 1, 1, -1, 1, 0, 1, 1),
	},
	{
		Name:  "l2_r10",
		Dim:   2,
		Shape: Ball{Center: pt(0, 0), Radius: 10, Metric: L2},
	},
	{
		Name:  "l2_r17",
		Dim:   2,
		Shape: Ball{Center: pt(-3, 8), Radius: 17, Metric: L2},
	},
	{
		Name:  "l1_r7",
		Dim:   2,
		Shape: Ball{Center: pt(1, 1), Radius: 7, Metric: L1},
	},
	{
		Name:  "linf_r5",
		Dim:   2,
		Shape: Ball{Center: pt(0, 0), Radius: 5, Metric: LInf},
	},
}

var ballCases = []TestCase{
	{
		Name:  "l2_r0",
		Dim:   3,
		Shape: Ball{Center: pt3(1, 2, 3), Radius: 0, Metric: L2},
		Want:  []Point{pt3(1, 2, 3)},
	},
	{
		Name:  "l2_r1",
		Dim:   3,
		Shape: Ball{Center: pt3(0, 0, 0), Radius: 1, Metric: L2},
		Want: []Point{pt3(0, 0, 0),
			pt3(1, 0, 0), pt3(-1, 0, 0),
			pt3(0, 1, 0), pt3(0, -1, 0),
			pt3(0, 0, 1), pt3(0, 0, -1)},
	},
	{
		Name:  "l1_r1",
		Dim:   3,
		Shape: Ball{Center: pt3(0, 0, 0), Radius: 1, Metric: L1},
		Want: []Point{pt3(0, 0, 0),
			pt3(1, 0, 0), pt3(-1, 0, 0),
			pt3(0, 1, 0), pt3(0, -1, 0),
			pt3(0, 0, 1), pt3(0, 0, -1)},
	},
	{
		Name:  "linf_r1",
		Dim:   3,
		Shape: Ball{Center: pt3(0, 0, 0), Radius: 1, Metric: LInf},
	},
	{
		Name:  "l2_r3",
		Dim:   3,
		Shape: Ball{Center: pt3(1, 2, 3), Radius: 3, Metric: L2},
	},
	{
		Name:  "l2_r10",
		Dim:   3,
		Shape: Ball{Center: pt3(0, 0, 0), Radius: 10, Metric: L2},
	},
	{
		Name:  "l1_r6",
		Dim:   3,
		Shape: Ball{Center: pt3(0, -2, 0), Radius: 6, Metric: L1},
	},
}
