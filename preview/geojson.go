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
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeoJSON returns the sheet as a GeoJSON feature collection.
//
// Every cell becomes a polygon feature with the properties "x" and "y",
// and the ideal shape, if present, becomes a line string feature.  Cell
// coordinates are used directly as planar coordinates.
func GeoJSON(s *Sheet) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range s.Cells {
		x, y := float64(c.X), float64(c.Y)
		ring := orb.Ring{
			{x - 0.5, y - 0.5},
			{x + 0.5, y - 0.5},
			{x + 0.5, y + 0.5},
			{x - 0.5, y + 0.5},
			{x - 0.5, y - 0.5},
		}
		f := geojson.NewFeature(orb.Polygon{ring})
		f.Properties["kind"] = "cell"
		f.Properties["x"] = c.X
		f.Properties["y"] = c.Y
		fc.Append(f)
	}

	if len(s.Ideal) > 0 {
		line := make(orb.LineString, len(s.Ideal))
		for i, v := range s.Ideal {
			line[i] = orb.Point{v.X, v.Y}
		}
		f := geojson.NewFeature(line)
		f.Properties["kind"] = "ideal"
		if s.Title != "" {
			f.Properties["title"] = s.Title
		}
		fc.Append(f)
	}
	return fc
}
