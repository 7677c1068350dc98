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

// Package testcases holds a table of named rasterization scenarios.
//
// The table is shared by the tests of the lattice package and by the
// commands which export the scenarios as images and PDF sheets.  This
// package does not depend on the lattice package, so that the lattice tests
// can use it.
package testcases

import (
	"seehuhn.de/go/lattice/rational"
)

// TestCase defines a single rasterization scenario.
type TestCase struct {
	Name  string  // lowercase a-z, 0-9 and _ only
	Dim   int     // 2 or 3
	Shape Shape   // the geometry to rasterize
	Want  []Point // the expected cells in any order, or nil if not known
}

// Point is a lattice point.  For two-dimensional cases, Z is zero.
type Point struct {
	X, Y, Z int
}

// Shape is the geometry of a test case.
type Shape interface {
	isShape()
}

// Segment is a line segment between two lattice points.
type Segment struct {
	P1, P2 Point
	Op     Operation // which cells near the segment are selected
}

func (Segment) isShape() {}

// Ball is the set of lattice points within Radius of Center.
type Ball struct {
	Center Point
	Radius int
	Metric Metric
}

func (Ball) isShape() {}

// Metric names the distance used for a ball.
type Metric string

// These are the metrics used in the test cases.
const (
	L1   Metric = "L1"
	L2   Metric = "L2"
	LInf Metric = "Linf"
)

// Operation selects the cells reported for a segment.
type Operation interface {
	isOperation()
}

// OnLine selects the lattice points on the segment.
type OnLine struct{}

func (OnLine) isOperation() {}

// HalfCell selects the cells whose interior meets the segment.
type HalfCell struct{}

func (HalfCell) isOperation() {}

// Within selects the cells whose centre is closer than Radius to the
// segment, in the L∞ distance.
type Within struct {
	Radius rational.Rational
}

func (Within) isOperation() {}

// pt is a helper to create a two-dimensional point.
func pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// pt3 is a helper to create a three-dimensional point.
func pt3(x, y, z int) Point {
	return Point{X: x, Y: y, Z: z}
}

// pts is a helper to create a list of two-dimensional points from
// coordinate pairs.
func pts(coords ...int) []Point {
	res := make([]Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		res = append(res, pt(coords[i], coords[i+1]))
	}
	return res
}

// seg2 is a helper to create a two-dimensional segment case.
func seg2(name string, x1, y1, x2, y2 int, op Operation, want []Point) TestCase {
	return TestCase{
		Name:  name,
		Dim:   2,
		Shape: Segment{P1: pt(x1, y1), P2: pt(x2, y2), Op: op},
		Want:  want,
	}
}
