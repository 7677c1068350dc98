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
	"log/slog"

	"seehuhn.de/go/lattice/rational"
)

var half = rational.New(1, 2)

// Tolerance selects how close to a line segment a cell must be in order to
// be reported.  The possible values are [OnLine], [HalfCell] and [Within].
type Tolerance interface {
	isTolerance()
}

// OnLine selects the lattice points lying exactly on the segment.
type OnLine struct{}

// HalfCell selects all cells whose interior meets the segment, i.e. the
// cells within L∞ distance 1/2 of the segment.  This is the default.
type HalfCell struct{}

// Within selects the cells whose centre is within L∞ distance Radius of the
// segment, where points at distance exactly Radius do not count.
// Radius must be in [0, 1/2]; values outside this range are clamped.
type Within struct {
	Radius rational.Rational
}

func (OnLine) isTolerance()   {}
func (HalfCell) isTolerance() {}
func (Within) isTolerance()   {}

// Rasterize returns the lattice points near the segment from p1 to p2,
// as selected by tol.  A nil tolerance is the same as [HalfCell].
func Rasterize(p1, p2 Point2D, tol Tolerance) []Point2D {
	switch tol := tol.(type) {
	case OnLine:
		return PointsOnSegment(p1, p2)
	case Within:
		return CellsWithinSegment(p1, p2, tol.Radius)
	default:
		return CellsOnSegment(p1, p2)
	}
}

// PointsOnSegment returns the lattice points on the segment from p1 to p2,
// including both endpoints.  The points are ordered along the segment,
// starting at the endpoint with the smaller x-coordinate (the smaller
// y-coordinate, for vertical segments).
func PointsOnSegment(p1, p2 Point2D) []Point2D {
	if points, ok := axisAligned(p1, p2); ok {
		return points
	}

	left, right := p1, p2
	if left.X > right.X {
		left, right = right, left
	}
	run := right.X - left.X
	rise := right.Y - left.Y // may be negative

	// (stepX, stepY) is the shortest lattice vector along the segment.
	n := int(rational.GCD(int64(run), int64(abs(rise))))
	stepX, stepY := run/n, rise/n

	points := make([]Point2D, 0, n+1)
	for k := 0; k <= n; k++ {
		points = append(points, Point2D{X: left.X + k*stepX, Y: left.Y + k*stepY})
	}
	return points
}

// CellsOnSegment returns the cells whose interior meets the segment from p1
// to p2.  A segment which passes exactly through the common corner of two
// diagonally adjacent cells does not cover the other two cells at that
// corner.
func CellsOnSegment(p1, p2 Point2D) []Point2D {
	if cells, ok := axisAligned(p1, p2); ok {
		return cells
	}

	s := newSweep(p1, p2)
	slope := rational.New(int64(s.rise), int64(s.run))

	// The sweep works column by column.  Heights are measured relative to
	// the left endpoint, in the direction of the segment.
	height := 0
	for col := range s.run {
		// the height where the segment leaves the column
		exit := slope.Mul(rational.New(int64(2*col+1), 2))
		top := int(exit.CeilTo(2).Floor())
		s.emit(col, height, top)

		if exit.Den() == 2 {
			// Kitty-corner: the segment leaves through the corner shared
			// by cells (col, top) and (col+1, top+1).  Neither
			// (col, top+1) nor (col+1, top) is touched.
			height = top + 1
		} else {
			height = top
		}
	}
	s.emit(s.run, height, s.rise)
	return s.cells
}

// CellsWithinSegment returns the cells whose centre has L∞ distance less
// than r from the segment from p1 to p2.
//
// The radius r must be in [0, 1/2].  A radius r <= 0 gives the result of
// [PointsOnSegment], a radius r >= 1/2 gives the result of [CellsOnSegment].
func CellsWithinSegment(p1, p2 Point2D, r rational.Rational) []Point2D {
	switch {
	case r.Sign() <= 0:
		if r.Sign() < 0 {
			logClamp(r, rational.Rational{})
		}
		return PointsOnSegment(p1, p2)
	case r.Cmp(half) >= 0:
		if r.Cmp(half) > 0 {
			logClamp(r, half)
		}
		return CellsOnSegment(p1, p2)
	}

	if cells, ok := axisAligned(p1, p2); ok {
		return cells
	}

	s := newSweep(p1, p2)
	slope := rational.New(int64(s.rise), int64(s.run))

	// Column col covers x in (col-r, col+r), clipped to [0, run].  The
	// cell at height y is hit if (y-r, y+r) meets the y-range of the
	// segment over this interval.  Each column is independent.
	s.emit(0, 0, int(slope.Mul(r).Add(r).Ceil())-1)
	for col := 1; col < s.run; col++ {
		lo := slope.Mul(r.Neg().AddInt(int64(col))).Sub(r).Floor() + 1
		hi := slope.Mul(r.AddInt(int64(col))).Add(r).Ceil() - 1
		s.emit(col, int(lo), int(hi))
	}
	lo := slope.Mul(r.Neg().AddInt(int64(s.run))).Sub(r).Floor() + 1
	s.emit(s.run, int(lo), s.rise)
	return s.cells
}

// sweep holds the state shared by the column sweeps over a segment with
// integer endpoints which is neither horizontal nor vertical.
type sweep struct {
	left      Point2D
	run, rise int // run > 0, rise > 0
	sign      int // +1 if the segment rises to the right, -1 otherwise
	cells     []Point2D
}

func newSweep(p1, p2 Point2D) *sweep {
	left, right := p1, p2
	if left.X > right.X {
		left, right = right, left
	}
	s := &sweep{
		left: left,
		run:  right.X - left.X,
		rise: right.Y - left.Y,
		sign: 1,
	}
	if s.rise < 0 {
		s.rise = -s.rise
		s.sign = -1
	}
	s.cells = make([]Point2D, 0, s.run+s.rise+1)
	return s
}

// emit adds the cells at heights lo, ..., hi of column col.
func (s *sweep) emit(col, lo, hi int) {
	for h := lo; h <= hi; h++ {
		s.cells = append(s.cells, Point2D{X: s.left.X + col, Y: s.left.Y + s.sign*h})
	}
}

// axisAligned handles vertical and horizontal segments, including segments
// of length zero.  The second return value is false for all other segments.
func axisAligned(p1, p2 Point2D) ([]Point2D, bool) {
	switch {
	case p1.X == p2.X:
		lo, hi := min(p1.Y, p2.Y), max(p1.Y, p2.Y)
		points := make([]Point2D, 0, hi-lo+1)
		for y := lo; y <= hi; y++ {
			points = append(points, Point2D{X: p1.X, Y: y})
		}
		return points, true
	case p1.Y == p2.Y:
		lo, hi := min(p1.X, p2.X), max(p1.X, p2.X)
		points := make([]Point2D, 0, hi-lo+1)
		for x := lo; x <= hi; x++ {
			points = append(points, Point2D{X: x, Y: p1.Y})
		}
		return points, true
	}
	return nil, false
}

func logClamp(r, to rational.Rational) {
	Logger().Debug("radius clamped",
		slog.String("radius", r.String()),
		slog.String("to", to.String()))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
