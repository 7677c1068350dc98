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
	"slices"

	"seehuhn.de/go/lattice/rational"
)

// This file contains slow, brute-force versions of the rasterizers.  They
// test every lattice point of a bounding box and are used as a reference
// for the fast implementations.

// slowPointsOnSegment returns the lattice points on the segment from p1 to p2.
func slowPointsOnSegment(p1, p2 Point2D) []Point2D {
	var res []Point2D
	for x := min(p1.X, p2.X); x <= max(p1.X, p2.X); x++ {
		for y := min(p1.Y, p2.Y); y <= max(p1.Y, p2.Y); y++ {
			cross := (p2.X-p1.X)*(y-p1.Y) - (p2.Y-p1.Y)*(x-p1.X)
			if cross == 0 {
				res = append(res, Point2D{X: x, Y: y})
			}
		}
	}
	return res
}

// slowPointsOnSegment3D returns the lattice points on the segment from p1
// to p2.
func slowPointsOnSegment3D(p1, p2 Point3D) []Point3D {
	dx, dy, dz := p2.X-p1.X, p2.Y-p1.Y, p2.Z-p1.Z
	var res []Point3D
	for x := min(p1.X, p2.X); x <= max(p1.X, p2.X); x++ {
		for y := min(p1.Y, p2.Y); y <= max(p1.Y, p2.Y); y++ {
			for z := min(p1.Z, p2.Z); z <= max(p1.Z, p2.Z); z++ {
				ux, uy, uz := x-p1.X, y-p1.Y, z-p1.Z
				if dy*uz == dz*uy && dz*ux == dx*uz && dx*uy == dy*ux {
					res = append(res, Point3D{X: x, Y: y, Z: z})
				}
			}
		}
	}
	return res
}

// slowCellsNear returns the cells (i, j) where the segment from p1 to p2
// meets the open square (i-r, i+r)×(j-r, j+r).
func slowCellsNear(p1, p2 RationalPoint2D, r rational.Rational) []Point2D {
	p := []rational.Rational{p1.X, p1.Y}
	q := []rational.Rational{p2.X, p2.Y}
	x0, x1 := searchRange(p1.X, p2.X)
	y0, y1 := searchRange(p1.Y, p2.Y)

	var res []Point2D
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			c := []rational.Rational{rational.Int(int64(x)), rational.Int(int64(y))}
			if segmentMeetsBox(p, q, c, r) {
				res = append(res, Point2D{X: x, Y: y})
			}
		}
	}
	return res
}

// slowCells returns the cells whose centre has L∞ distance less than r from
// the segment from p1 to p2.  For r <= 0, the lattice points on the segment
// are returned instead.
func slowCells(p1, p2 Point2D, r rational.Rational) []Point2D {
	if r.Sign() <= 0 {
		return slowPointsOnSegment(p1, p2)
	}
	return slowCellsNear(p1.Rat(), p2.Rat(), rational.Min(r, half))
}

// slowCells3D is the three-dimensional version of slowCells.
func slowCells3D(p1, p2 Point3D, r rational.Rational) []Point3D {
	if r.Sign() <= 0 {
		return slowPointsOnSegment3D(p1, p2)
	}
	r = rational.Min(r, half)

	p := []rational.Rational{rational.Int(int64(p1.X)), rational.Int(int64(p1.Y)), rational.Int(int64(p1.Z))}
	q := []rational.Rational{rational.Int(int64(p2.X)), rational.Int(int64(p2.Y)), rational.Int(int64(p2.Z))}
	var res []Point3D
	for x := min(p1.X, p2.X); x <= max(p1.X, p2.X); x++ {
		for y := min(p1.Y, p2.Y); y <= max(p1.Y, p2.Y); y++ {
			for z := min(p1.Z, p2.Z); z <= max(p1.Z, p2.Z); z++ {
				c := []rational.Rational{rational.Int(int64(x)), rational.Int(int64(y)), rational.Int(int64(z))}
				if segmentMeetsBox(p, q, c, r) {
					res = append(res, Point3D{X: x, Y: y, Z: z})
				}
			}
		}
	}
	return res
}

// searchRange returns an integer range which contains all cells near the
// interval between a and b.
func searchRange(a, b rational.Rational) (int, int) {
	return int(rational.Min(a, b).Floor()) - 1, int(rational.Max(a, b).Ceil()) + 1
}

// segmentMeetsBox reports whether the closed segment from p to q meets the
// open box of half-width r around c.  The segment is parametrised as
// p + t(q-p) for t in [0, 1], and each coordinate restricts t to an open
// interval.
func segmentMeetsBox(p, q, c []rational.Rational, r rational.Rational) bool {
	lo, hi := rational.Int(-1), rational.Int(2)
	for k := range p {
		d := q[k].Sub(p[k])
		if d.IsZero() {
			if p[k].Sub(c[k]).Abs().Cmp(r) >= 0 {
				return false
			}
			continue
		}
		a := c[k].Sub(r).Sub(p[k]).Div(d)
		b := c[k].Add(r).Sub(p[k]).Div(d)
		if a.Cmp(b) > 0 {
			a, b = b, a
		}
		lo = rational.Max(lo, a)
		hi = rational.Min(hi, b)
	}
	return lo.Cmp(hi) < 0 && lo.Cmp(rational.Int(1)) < 0 && hi.Sign() > 0
}

// slowDisk returns the lattice points within distance r of c.
func slowDisk(c Point2D, r int, m Metric) []Point2D {
	var res []Point2D
	for x := -r; x <= r; x++ {
		for y := -r; y <= r; y++ {
			if inside(m, r, x, y) {
				res = append(res, Point2D{X: c.X + x, Y: c.Y + y})
			}
		}
	}
	return res
}

// slowBall returns the lattice points within distance r of c.
func slowBall(c Point3D, r int, m Metric) []Point3D {
	var res []Point3D
	for x := -r; x <= r; x++ {
		for y := -r; y <= r; y++ {
			for z := -r; z <= r; z++ {
				if inside(m, r, x, y, z) {
					res = append(res, Point3D{X: c.X + x, Y: c.Y + y, Z: c.Z + z})
				}
			}
		}
	}
	return res
}

func inside(m Metric, r int, coords ...int) bool {
	switch m {
	case L1:
		sum := 0
		for _, x := range coords {
			sum += abs(x)
		}
		return sum <= r
	case L2:
		sum := 0
		for _, x := range coords {
			sum += x * x
		}
		return sum <= r*r
	default:
		return slices.Max(coords) <= r && slices.Min(coords) >= -r
	}
}
