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

// Package scenario evaluates the entries of the test case table using the
// lattice package.
package scenario

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lattice"
	"seehuhn.de/go/lattice/preview"
	"seehuhn.de/go/lattice/testcases"
)

// Result holds the outcome of a test case.
type Result struct {
	Cells2D []lattice.Point2D // the result of a two-dimensional case
	Cells3D []lattice.Point3D // the result of a three-dimensional case
}

// Run computes the cells selected by a test case.
func Run(tc testcases.TestCase) (*Result, error) {
	if tc.Dim != 2 && tc.Dim != 3 {
		return nil, fmt.Errorf("%s: invalid dimension %d", tc.Name, tc.Dim)
	}

	res := &Result{}
	switch shape := tc.Shape.(type) {
	case testcases.Segment:
		tol := tolerance(shape.Op)
		if tc.Dim == 3 {
			res.Cells3D = lattice.Rasterize3D(point3(shape.P1), point3(shape.P2), tol)
		} else {
			res.Cells2D = lattice.Rasterize(point2(shape.P1), point2(shape.P2), tol)
		}
	case testcases.Ball:
		m, err := metric(shape.Metric)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tc.Name, err)
		}
		if tc.Dim == 3 {
			res.Cells3D, err = lattice.PointsInBall(point3(shape.Center), shape.Radius, m)
		} else {
			res.Cells2D, err = lattice.PointsInDisk(point2(shape.Center), shape.Radius, m)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tc.Name, err)
		}
	default:
		return nil, fmt.Errorf("%s: unknown shape %T", tc.Name, tc.Shape)
	}
	return res, nil
}

// Sheet returns a picture of the result.  Results in space are shown as
// their projection onto the xy-plane.
func (r *Result) Sheet(title string, tc testcases.TestCase) *preview.Sheet {
	s := &preview.Sheet{Title: title, Cells: r.Cells2D}
	if r.Cells3D != nil {
		s.Cells = preview.Project(r.Cells3D)
	}
	if seg, ok := tc.Shape.(testcases.Segment); ok {
		s.Ideal = []vec.Vec2{
			{X: float64(seg.P1.X), Y: float64(seg.P1.Y)},
			{X: float64(seg.P2.X), Y: float64(seg.P2.Y)},
		}
	}
	return s
}

func tolerance(op testcases.Operation) lattice.Tolerance {
	switch op := op.(type) {
	case testcases.OnLine:
		return lattice.OnLine{}
	case testcases.Within:
		return lattice.Within{Radius: op.Radius}
	default:
		return lattice.HalfCell{}
	}
}

func metric(m testcases.Metric) (lattice.Metric, error) {
	switch m {
	case testcases.L1:
		return lattice.L1, nil
	case testcases.L2:
		return lattice.L2, nil
	case testcases.LInf:
		return lattice.LInf, nil
	}
	return 0, fmt.Errorf("unknown metric %q", m)
}

func point2(p testcases.Point) lattice.Point2D {
	return lattice.Point2D{X: p.X, Y: p.Y}
}

func point3(p testcases.Point) lattice.Point3D {
	return lattice.Point3D{X: p.X, Y: p.Y, Z: p.Z}
}
