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
	"seehuhn.de/go/lattice/rational"
)

// Rasterize3D is the three-dimensional version of [Rasterize].
func Rasterize3D(p1, p2 Point3D, tol Tolerance) []Point3D {
	switch tol := tol.(type) {
	case OnLine:
		return PointsOnSegment3D(p1, p2)
	case Within:
		return CellsWithinSegment3D(p1, p2, tol.Radius)
	default:
		return CellsOnSegment3D(p1, p2)
	}
}

// PointsOnSegment3D returns the lattice points on the segment from p1 to
// p2, including both endpoints, in order along the segment.
func PointsOnSegment3D(p1, p2 Point3D) []Point3D {
	switch {
	case p1.X == p2.X:
		points := PointsOnSegment(Point2D{X: p1.Y, Y: p1.Z}, Point2D{X: p2.Y, Y: p2.Z})
		return lift(points, func(q Point2D) Point3D { return Point3D{X: p1.X, Y: q.X, Z: q.Y} })
	case p1.Y == p2.Y:
		points := PointsOnSegment(Point2D{X: p1.X, Y: p1.Z}, Point2D{X: p2.X, Y: p2.Z})
		return lift(points, func(q Point2D) Point3D { return Point3D{X: q.X, Y: p1.Y, Z: q.Y} })
	case p1.Z == p2.Z:
		points := PointsOnSegment(p1.XY(), p2.XY())
		return lift(points, func(q Point2D) Point3D { return Point3D{X: q.X, Y: q.Y, Z: p1.Z} })
	}

	// No coordinate is constant, so all rates of change with respect to x
	// are defined.
	if p1.X > p2.X {
		p1, p2 = p2, p1
	}
	run := int64(p2.X - p1.X)
	dydx := rational.New(int64(p2.Y-p1.Y), run)
	dzdx := rational.New(int64(p2.Z-p1.Z), run)

	// Moving step units along x lands on lattice points in y and z.
	dy, dz := dydx.Den(), dzdx.Den()
	step := dy / rational.GCD(dy, dz) * dz

	points := make([]Point3D, 0, run/step+1)
	for t := int64(0); t <= run; t += step {
		points = append(points, Point3D{
			X: p1.X + int(t),
			Y: p1.Y + int(dydx.MulInt(t).Floor()),
			Z: p1.Z + int(dzdx.MulInt(t).Floor()),
		})
	}
	return points
}

// CellsOnSegment3D returns the cubic cells whose interior meets the segment
// from p1 to p2.
func CellsOnSegment3D(p1, p2 Point3D) []Point3D {
	if p1.Z == p2.Z {
		return lift(CellsOnSegment(p1.XY(), p2.XY()), onLayer(p1.Z))
	}

	l := newLayers(p1, p2)
	var cells []Point3D
	from := l.start.XY().Rat()
	for layer := range l.depth {
		// where the segment crosses into the next layer
		to := l.at(rational.New(int64(2*layer+1), 2))
		for _, c := range CellsOnRationalSegment(from, to) {
			cells = append(cells, Point3D{X: c.X, Y: c.Y, Z: l.start.Z + layer})
		}
		from = to
	}
	for _, c := range CellsOnRationalSegment(from, l.end.XY().Rat()) {
		cells = append(cells, Point3D{X: c.X, Y: c.Y, Z: l.end.Z})
	}
	return cells
}

// CellsWithinSegment3D returns the lattice points whose L∞ distance from the
// segment from p1 to p2 is less than r.
//
// The radius must be in [0, 1/2].  A radius r <= 0 gives the result of
// [PointsOnSegment3D], a radius r >= 1/2 gives the result of
// [CellsOnSegment3D].
func CellsWithinSegment3D(p1, p2 Point3D, r rational.Rational) []Point3D {
	switch {
	case r.Sign() <= 0:
		if r.Sign() < 0 {
			logClamp(r, rational.Rational{})
		}
		return PointsOnSegment3D(p1, p2)
	case r.Cmp(half) >= 0:
		if r.Cmp(half) > 0 {
			logClamp(r, half)
		}
		return CellsOnSegment3D(p1, p2)
	}

	if p1.Z == p2.Z {
		return lift(CellsWithinSegment(p1.XY(), p2.XY(), r), onLayer(p1.Z))
	}

	l := newLayers(p1, p2)
	depth := rational.Int(int64(l.depth))
	var cells []Point3D
	for layer := 0; layer <= l.depth; layer++ {
		// the part of the segment within distance r of the layer
		z := rational.Int(int64(layer))
		lo := rational.Max(z.Sub(r), rational.Rational{})
		hi := rational.Min(z.Add(r), depth)
		for _, c := range CellsWithinRationalSegment(l.at(lo), l.at(hi), r) {
			cells = append(cells, Point3D{X: c.X, Y: c.Y, Z: l.start.Z + layer})
		}
	}
	return cells
}

// layers describes a segment in space which is not parallel to the
// xy-plane, with the endpoints ordered by increasing z.
type layers struct {
	start, end Point3D
	depth      int
	dxdz, dydz rational.Rational
}

func newLayers(p1, p2 Point3D) *layers {
	if p1.Z > p2.Z {
		p1, p2 = p2, p1
	}
	depth := p2.Z - p1.Z
	return &layers{
		start: p1,
		end:   p2,
		depth: depth,
		dxdz:  rational.New(int64(p2.X-p1.X), int64(depth)),
		dydz:  rational.New(int64(p2.Y-p1.Y), int64(depth)),
	}
}

// at returns the projection of the point of the segment at height dz
// above the start point.
func (l *layers) at(dz rational.Rational) RationalPoint2D {
	return RationalPoint2D{
		X: l.dxdz.Mul(dz).AddInt(int64(l.start.X)),
		Y: l.dydz.Mul(dz).AddInt(int64(l.start.Y)),
	}
}

func onLayer(z int) func(Point2D) Point3D {
	return func(q Point2D) Point3D {
		return Point3D{X: q.X, Y: q.Y, Z: z}
	}
}
