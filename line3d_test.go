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
	"testing"

	"seehuhn.de/go/lattice/rational"
)

// box3 returns all lattice points in [lo, hi]³.
func box3(lo, hi int) []Point3D {
	var res []Point3D
	for x := lo; x <= hi; x++ {
		for y := lo; y <= hi; y++ {
			for z := lo; z <= hi; z++ {
				res = append(res, Point3D{X: x, Y: y, Z: z})
			}
		}
	}
	return res
}

// starts are the first endpoints used for segments in space.
var starts = []Point3D{{0, 0, 0}, {1, -1, 2}, {-2, 1, 0}, {2, 2, -1}}

func TestPointsOnSegment3D(t *testing.T) {
	cases := []struct {
		p1, p2 Point3D
		want   []Point3D
	}{
		{Point3D{0, 0, 0}, Point3D{2, 4, 6}, []Point3D{{0, 0, 0}, {1, 2, 3}, {2, 4, 6}}},
		{Point3D{4, 2, 6}, Point3D{0, 0, 0}, []Point3D{{0, 0, 0}, {2, 1, 3}, {4, 2, 6}}},
		{Point3D{0, 0, 0}, Point3D{2, 3, 5}, []Point3D{{0, 0, 0}, {2, 3, 5}}},
		{Point3D{1, 0, 0}, Point3D{1, 2, 4}, []Point3D{{1, 0, 0}, {1, 1, 2}, {1, 2, 4}}},
		{Point3D{0, 5, 0}, Point3D{3, 5, -3}, []Point3D{{0, 5, 0}, {1, 5, -1}, {2, 5, -2}, {3, 5, -3}}},
		{Point3D{1, 1, 1}, Point3D{1, 1, 1}, []Point3D{{1, 1, 1}}},
	}
	for _, c := range cases {
		got := PointsOnSegment3D(c.p1, c.p2)
		if !slices.Equal(got, c.want) {
			t.Errorf("PointsOnSegment3D(%v, %v) = %v, want %v", c.p1, c.p2, got, c.want)
		}
	}
}

func TestAgainstReference3D(t *testing.T) {
	radii := []rational.Rational{{}, rational.New(1, 5), rational.New(1, 3), rational.New(1, 2)}
	for _, p1 := range starts {
		for _, p2 := range box3(-2, 2) {
			got := sorted(PointsOnSegment3D(p1, p2))
			want := sorted(slowPointsOnSegment3D(p1, p2))
			if !slices.Equal(got, want) {
				t.Fatalf("PointsOnSegment3D(%v, %v) = %v, want %v", p1, p2, got, want)
			}

			got = sorted(CellsOnSegment3D(p1, p2))
			want = sorted(slowCells3D(p1, p2, half))
			if !slices.Equal(got, want) {
				t.Fatalf("CellsOnSegment3D(%v, %v) = %v, want %v", p1, p2, got, want)
			}

			for _, r := range radii {
				got := sorted(CellsWithinSegment3D(p1, p2, r))
				want := sorted(slowCells3D(p1, p2, r))
				if !slices.Equal(got, want) {
					t.Fatalf("CellsWithinSegment3D(%v, %v, %v) = %v, want %v", p1, p2, r, got, want)
				}
				if i := duplicate(got); i >= 0 {
					t.Fatalf("CellsWithinSegment3D(%v, %v, %v): duplicate %v", p1, p2, r, got[i])
				}
			}
		}
	}
}

func TestLongSegment3D(t *testing.T) {
	p1, p2 := Point3D{-3, 7, 2}, Point3D{5, -4, -6}
	got := sorted(CellsOnSegment3D(p1, p2))
	want := sorted(slowCells3D(p1, p2, half))
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if i := duplicate(got); i >= 0 {
		t.Errorf("duplicate %v", got[i])
	}
}

func TestConstantZ(t *testing.T) {
	r := rational.New(2, 7)
	for _, p1 := range box(-2, 2) {
		for _, p2 := range box(-2, 2) {
			q1 := Point3D{X: p1.X, Y: p1.Y, Z: 4}
			q2 := Point3D{X: p2.X, Y: p2.Y, Z: 4}

			got := CellsOnSegment3D(q1, q2)
			want := lift(CellsOnSegment(p1, p2), onLayer(4))
			if !slices.Equal(got, want) {
				t.Fatalf("CellsOnSegment3D(%v, %v) = %v, want %v", q1, q2, got, want)
			}

			got = CellsWithinSegment3D(q1, q2, r)
			want = lift(CellsWithinSegment(p1, p2, r), onLayer(4))
			if !slices.Equal(got, want) {
				t.Fatalf("CellsWithinSegment3D(%v, %v) = %v, want %v", q1, q2, got, want)
			}
		}
	}
}

func TestEndpointOrder3D(t *testing.T) {
	r := rational.New(1, 3)
	for _, p1 := range starts {
		for _, p2 := range box3(-2, 2) {
			if !slices.Equal(sorted(PointsOnSegment3D(p1, p2)), sorted(PointsOnSegment3D(p2, p1))) {
				t.Errorf("PointsOnSegment3D: %v-%v", p1, p2)
			}
			if !slices.Equal(sorted(CellsOnSegment3D(p1, p2)), sorted(CellsOnSegment3D(p2, p1))) {
				t.Errorf("CellsOnSegment3D: %v-%v", p1, p2)
			}
			if !slices.Equal(sorted(CellsWithinSegment3D(p1, p2, r)), sorted(CellsWithinSegment3D(p2, p1, r))) {
				t.Errorf("CellsWithinSegment3D: %v-%v", p1, p2)
			}
		}
	}
}

func TestRasterize3D(t *testing.T) {
	p1, p2 := Point3D{1, -1, 0}, Point3D{-3, 2, 2}
	r := rational.New(1, 4)
	cases := []struct {
		tol  Tolerance
		want []Point3D
	}{
		{nil, CellsOnSegment3D(p1, p2)},
		{HalfCell{}, CellsOnSegment3D(p1, p2)},
		{OnLine{}, PointsOnSegment3D(p1, p2)},
		{Within{Radius: r}, CellsWithinSegment3D(p1, p2, r)},
		{Within{Radius: rational.Int(-1)}, PointsOnSegment3D(p1, p2)},
	}
	for _, c := range cases {
		got := Rasterize3D(p1, p2, c.tol)
		if !slices.Equal(got, c.want) {
			t.Errorf("%T: got %v, want %v", c.tol, got, c.want)
		}
	}
}
