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

// Package preview converts sets of lattice cells into pictures and
// interchange formats.
//
// Cell (i, j) is drawn as the unit square centred at (i, j).  The ideal
// shape which was rasterized, for example the exact line segment, can be
// drawn on top of the cells.
package preview

import (
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lattice"
)

// Sheet describes one picture.
type Sheet struct {
	Title string            // optional, used as a property in GeoJSON output
	Cells []lattice.Point2D // the cells to highlight
	Ideal []vec.Vec2        // polyline drawn on top of the cells, may be empty
}

// Center returns the centre of the cell c.
func Center(c lattice.Point2D) vec.Vec2 {
	return vec.Vec2{X: float64(c.X), Y: float64(c.Y)}
}

// Bounds returns the smallest rectangle which contains all given cells.
// If cells is empty, the zero rectangle is returned.
func Bounds(cells []lattice.Point2D) rect.Rect {
	if len(cells) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: float64(cells[0].X) - 0.5,
		LLy: float64(cells[0].Y) - 0.5,
		URx: float64(cells[0].X) + 0.5,
		URy: float64(cells[0].Y) + 0.5,
	}
	for _, c := range cells[1:] {
		b = include(b, Center(c).Sub(vec.Vec2{X: 0.5, Y: 0.5}))
		b = include(b, Center(c).Add(vec.Vec2{X: 0.5, Y: 0.5}))
	}
	return b
}

// Outline returns a path consisting of one closed square per cell.
// The squares are oriented counter-clockwise.
func Outline(cells []lattice.Point2D) *path.Data {
	p := &path.Data{}
	for _, c := range cells {
		x, y := float64(c.X), float64(c.Y)
		p = p.MoveTo(vec.Vec2{X: x - 0.5, Y: y - 0.5}).
			LineTo(vec.Vec2{X: x + 0.5, Y: y - 0.5}).
			LineTo(vec.Vec2{X: x + 0.5, Y: y + 0.5}).
			LineTo(vec.Vec2{X: x - 0.5, Y: y + 0.5}).
			Close()
	}
	return p
}

// Project returns the cells of the xy-plane which lie below at least one of
// the given cells in space.  The result is sorted.
func Project(cells []lattice.Point3D) []lattice.Point2D {
	res := make([]lattice.Point2D, len(cells))
	for i, c := range cells {
		res[i] = c.XY()
	}
	slices.SortFunc(res, lattice.Point2D.Cmp)
	return slices.Compact(res)
}

// frame returns the area shown on a sheet: the cells and the ideal shape,
// with a margin of one cell.
func (s *Sheet) frame() rect.Rect {
	var b rect.Rect
	switch {
	case len(s.Cells) > 0:
		b = Bounds(s.Cells)
	case len(s.Ideal) > 0:
		b = rect.Rect{LLx: s.Ideal[0].X, LLy: s.Ideal[0].Y, URx: s.Ideal[0].X, URy: s.Ideal[0].Y}
	}
	for _, v := range s.Ideal {
		b = include(b, v)
	}
	b.LLx--
	b.LLy--
	b.URx++
	b.URy++
	return b
}

func include(b rect.Rect, v vec.Vec2) rect.Rect {
	b.LLx = min(b.LLx, v.X)
	b.LLy = min(b.LLy, v.Y)
	b.URx = max(b.URx, v.X)
	b.URy = max(b.URy, v.Y)
	return b
}
