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

// CellsOnRationalSegment returns the cells whose interior meets the segment
// from p1 to p2.  This is the same as [CellsOnSegment], but the endpoints may
// have rational coordinates.
//
// A segment lying exactly on the boundary between two rows or columns of
// cells touches no cell interior, and the result is empty.
func CellsOnRationalSegment(p1, p2 RationalPoint2D) []Point2D {
	switch {
	case p1.X == p2.X:
		if onBoundary(p1.X) {
			return nil
		}
		lo, hi := rational.Min(p1.Y, p2.Y), rational.Max(p1.Y, p2.Y)
		return column(firstCell(p1.X), firstCell(lo), lastCell(hi))
	case p1.Y == p2.Y:
		if onBoundary(p1.Y) {
			return nil
		}
		lo, hi := rational.Min(p1.X, p2.X), rational.Max(p1.X, p2.X)
		return row(firstCell(p1.Y), firstCell(lo), lastCell(hi))
	}

	s := newRationalSweep(p1, p2)

	leftX := firstCell(s.left.X)
	rightX := lastCell(s.right.X)
	height := firstCell(s.left.Y)
	for col := leftX; col < rightX; col++ {
		// the height where the segment leaves the column
		exit := s.yAt(rational.Int(int64(col)).Add(half))
		top := lastCell(exit)
		s.emit(col, height, top)

		if exit.Den() == 2 {
			// kitty-corner, see CellsOnSegment
			height = top + 1
		} else {
			height = top
		}
	}
	s.emit(rightX, height, lastCell(s.right.Y))
	return s.cells
}

// CellsWithinRationalSegment returns the cells whose centre has L∞ distance
// less than r from the segment from p1 to p2.
//
// The radius must be in [0, 1/2].  For r >= 1/2 the result is the same as
// for [CellsOnRationalSegment].  For r <= 0 the result is empty.
func CellsWithinRationalSegment(p1, p2 RationalPoint2D, r rational.Rational) []Point2D {
	switch {
	case r.Sign() <= 0:
		if r.Sign() < 0 {
			logClamp(r, rational.Rational{})
		}
		return nil
	case r.Cmp(half) >= 0:
		if r.Cmp(half) > 0 {
			logClamp(r, half)
		}
		return CellsOnRationalSegment(p1, p2)
	}

	// Throughout, the cell (i, j) is hit if the segment meets the open
	// square (i-r, i+r)×(j-r, j+r).
	switch {
	case p1.X == p2.X:
		x0, x1 := openRange(p1.X.Sub(r), p1.X.Add(r))
		lo, hi := rational.Min(p1.Y, p2.Y), rational.Max(p1.Y, p2.Y)
		y0, y1 := openRange(lo.Sub(r), hi.Add(r))
		var cells []Point2D
		for x := x0; x <= x1; x++ {
			cells = append(cells, column(x, y0, y1)...)
		}
		return cells
	case p1.Y == p2.Y:
		y0, y1 := openRange(p1.Y.Sub(r), p1.Y.Add(r))
		lo, hi := rational.Min(p1.X, p2.X), rational.Max(p1.X, p2.X)
		x0, x1 := openRange(lo.Sub(r), hi.Add(r))
		var cells []Point2D
		for y := y0; y <= y1; y++ {
			cells = append(cells, row(y, x0, x1)...)
		}
		return cells
	}

	s := newRationalSweep(p1, p2)
	first, last := openRange(s.left.X.Sub(r), s.right.X.Add(r))
	for col := first; col <= last; col++ {
		// The part of the segment inside the band around this column.
		// This is never a single point, since the segment is not vertical.
		c := rational.Int(int64(col))
		a := rational.Max(s.left.X, c.Sub(r))
		b := rational.Min(s.right.X, c.Add(r))
		lo, hi := openRange(s.yAt(a).Sub(r), s.yAt(b).Add(r))
		s.emit(col, lo, hi)
	}
	return s.cells
}

// rationalSweep holds the state of a column sweep over a segment with
// rational endpoints.  The segment is stored with increasing x and, after
// an optional reflection in the x-axis, increasing y.
type rationalSweep struct {
	left, right RationalPoint2D
	slope       rational.Rational // positive
	flip        bool              // y-coordinates have been negated
	cells       []Point2D
}

// newRationalSweep prepares a sweep over a segment which is neither
// horizontal nor vertical.
func newRationalSweep(p1, p2 RationalPoint2D) *rationalSweep {
	if p1.X.Cmp(p2.X) > 0 {
		p1, p2 = p2, p1
	}
	s := &rationalSweep{left: p1, right: p2}
	if p1.Y.Cmp(p2.Y) > 0 {
		s.flip = true
		s.left.Y = s.left.Y.Neg()
		s.right.Y = s.right.Y.Neg()
	}
	s.slope = s.right.Y.Sub(s.left.Y).Div(s.right.X.Sub(s.left.X))
	return s
}

// yAt returns the y-coordinate of the (possibly reflected) segment at x.
func (s *rationalSweep) yAt(x rational.Rational) rational.Rational {
	return s.left.Y.Add(s.slope.Mul(x.Sub(s.left.X)))
}

// emit adds the cells at heights lo, ..., hi of column col, undoing the
// reflection if needed.
func (s *rationalSweep) emit(col, lo, hi int) {
	for y := lo; y <= hi; y++ {
		if s.flip {
			s.cells = append(s.cells, Point2D{X: col, Y: -y})
		} else {
			s.cells = append(s.cells, Point2D{X: col, Y: y})
		}
	}
}

// firstCell returns the smallest i such that the cell interval
// (i-1/2, i+1/2) has points to the right of x.
func firstCell(x rational.Rational) int {
	return int(x.FloorTo(2).Ceil())
}

// lastCell returns the largest i such that the cell interval
// (i-1/2, i+1/2) has points to the left of x.
func lastCell(x rational.Rational) int {
	return int(x.CeilTo(2).Floor())
}

// onBoundary reports whether x lies on the boundary between two cells.
func onBoundary(x rational.Rational) bool {
	return x.Den() == 2
}

// openRange returns the first and last integer in the open interval (a, b).
// If there are none, first > last.
func openRange(a, b rational.Rational) (first, last int) {
	return int(a.Floor()) + 1, int(b.Ceil()) - 1
}

func column(x, y0, y1 int) []Point2D {
	var cells []Point2D
	for y := y0; y <= y1; y++ {
		cells = append(cells, Point2D{X: x, Y: y})
	}
	return cells
}

func row(y, x0, x1 int) []Point2D {
	var cells []Point2D
	for x := x0; x <= x1; x++ {
		cells = append(cells, Point2D{X: x, Y: y})
	}
	return cells
}
