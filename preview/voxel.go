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

package preview

import (
	"gonum.org/v1/gonum/spatial/r3"

	"seehuhn.de/go/lattice"
)

// VoxelCenters returns the centres of the given cells in space.
func VoxelCenters(cells []lattice.Point3D) []r3.Vec {
	res := make([]r3.Vec, len(cells))
	for i, c := range cells {
		res[i] = r3.Vec{X: float64(c.X), Y: float64(c.Y), Z: float64(c.Z)}
	}
	return res
}

// VoxelBounds returns the smallest box containing all given cells, each cell
// being the unit cube around its centre.  If cells is empty, the zero box is
// returned.
func VoxelBounds(cells []lattice.Point3D) r3.Box {
	if len(cells) == 0 {
		return r3.Box{}
	}
	half := r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}
	centers := VoxelCenters(cells)
	b := r3.Box{Min: r3.Sub(centers[0], half), Max: r3.Add(centers[0], half)}
	for _, c := range centers[1:] {
		b = b.Union(r3.Box{Min: r3.Sub(c, half), Max: r3.Add(c, half)})
	}
	return b
}
