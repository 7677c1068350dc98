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

package lattice

import (
	"cmp"

	"seehuhn.de/go/lattice/rational"
)

// Point2D is a point of the two-dimensional integer lattice.
type Point2D struct {
	X, Y int
}

// Cmp compares p and q in lexicographic order.
// The result is -1 if p < q, 0 if p == q and +1 if p > q.
func (p Point2D) Cmp(q Point2D) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, q.Y)
}

// Rat converts p to a point with rational coordinates.
func (p Point2D) Rat() RationalPoint2D {
	return RationalPoint2D{X: rational.Int(int64(p.X)), Y: rational.Int(int64(p.Y))}
}

// Point3D is a point of the three-dimensional integer lattice.
type Point3D struct {
	X, Y, Z int
}

// Cmp compares p and q in lexicographic order.
func (p Point3D) Cmp(q Point3D) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}
	if c := cmp.Compare(p.Y, q.Y); c != 0 {
		return c
	}
	return cmp.Compare(p.Z, q.Z)
}

// XY returns the projection of p onto the xy-plane.
func (p Point3D) XY() Point2D {
	return Point2D{X: p.X, Y: p.Y}
}

// RationalPoint2D is a point in the plane with rational coordinates.
// Such points arise as intermediate endpoints, for example where a
// segment in space crosses the boundary between two layers of cells.
type RationalPoint2D struct {
	X, Y rational.Rational
}

// lift places the points of a plane into space.  The function place maps
// plane coordinates to a point in space.
func lift(points []Point2D, place func(Point2D) Point3D) []Point3D {
	res := make([]Point3D, len(points))
	for i, p := range points {
		res[i] = place(p)
	}
	return res
}
