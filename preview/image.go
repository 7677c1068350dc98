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
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Gray levels used for drawing.
var (
	cellGray  = color.Gray{Y: 0xB0}
	idealGray = color.Gray{Y: 0x00}
)

// Image draws the sheet into a grayscale image, using scale pixels per
// cell.  The background is white, cells are gray and the ideal shape is
// drawn as a black line.
func Image(s *Sheet, scale int) *image.Gray {
	frame := s.frame()
	w := int(math.Round((frame.URx - frame.LLx) * float64(scale)))
	h := int(math.Round((frame.URy - frame.LLy) * float64(scale)))

	img := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	t := &toDevice{frame: frame, scale: float64(scale)}
	r := vector.NewRasterizer(w, h)
	if len(s.Cells) > 0 {
		t.addPath(r, Outline(s.Cells))
		r.Draw(img, img.Bounds(), image.NewUniform(cellGray), image.Point{})
	}

	// The ideal shape is drawn as a chain of thin bands.
	hw := 1 / float64(scale)
	for i := 1; i < len(s.Ideal); i++ {
		r.Reset(w, h)
		t.addBand(r, s.Ideal[i-1], s.Ideal[i], hw)
		r.Draw(img, img.Bounds(), image.NewUniform(idealGray), image.Point{})
	}
	return img
}

// toDevice maps cell coordinates to pixel coordinates.  The y-axis points
// up in cell coordinates and down in pixel coordinates.
type toDevice struct {
	frame rect.Rect
	scale float64
}

func (t *toDevice) apply(v vec.Vec2) (float32, float32) {
	x := (v.X - t.frame.LLx) * t.scale
	y := (t.frame.URy - v.Y) * t.scale
	return float32(x), float32(y)
}

// addPath adds the line segments of p to r.
func (t *toDevice) addPath(r *vector.Rasterizer, p *path.Data) {
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(t.apply(p.Coords[k]))
			k++
		case path.CmdLineTo:
			r.LineTo(t.apply(p.Coords[k]))
			k++
		case path.CmdQuadTo:
			k += 2
		case path.CmdCubeTo:
			k += 3
		case path.CmdClose:
			r.ClosePath()
		}
	}
}

// addBand adds the rectangle of half-width hw around the segment from a to
// b.  For a segment of length zero, a square is used.
func (t *toDevice) addBand(r *vector.Rasterizer, a, b vec.Vec2, hw float64) {
	d := b.Sub(a)
	l := d.Length()
	var n vec.Vec2
	if l > 0 {
		n = vec.Vec2{X: -d.Y, Y: d.X}.Mul(hw / l)
		d = d.Mul(hw / l)
	} else {
		n = vec.Vec2{X: 0, Y: hw}
		d = vec.Vec2{X: hw, Y: 0}
	}
	a, b = a.Sub(d), b.Add(d)

	r.MoveTo(t.apply(a.Add(n)))
	r.LineTo(t.apply(b.Add(n)))
	r.LineTo(t.apply(b.Sub(n)))
	r.LineTo(t.apply(a.Sub(n)))
	r.ClosePath()
}
