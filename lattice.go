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

// Package lattice computes exactly which points of the integer lattice are
// covered by simple geometric shapes.
//
// Line segments can be rasterized as the lattice points lying on the
// segment ([PointsOnSegment]), as the unit cells the segment passes through
// ([CellsOnSegment]), or as the cells within a rational L∞ distance of the
// segment ([CellsWithinSegment]).  Disks and balls are available for the
// L1, L2 and L∞ metrics ([PointsInDisk], [PointsInBall]).
//
// All decisions are made using exact integer and rational arithmetic, see
// package [seehuhn.de/go/lattice/rational], so that results do not depend
// on floating point rounding.  The cell with integer coordinates (i, j) is
// the open square (i-1/2, i+1/2)×(j-1/2, j+1/2); a shape covers a cell if it
// meets the interior of the cell.  The order of the returned points is
// unspecified except where noted; callers should treat results as sets.
package lattice

import "errors"

// ErrInvalidArgument is returned (wrapped) when a shape is requested with
// parameters outside the valid range, for example a negative radius.
var ErrInvalidArgument = errors.New("lattice: invalid argument")
