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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// PDFCellSize is the size of one cell on a PDF sheet, in PDF points.
const PDFCellSize = 18

// WritePDF writes the sheet to a single-page PDF file.  The cells are shown
// on top of the lattice grid, and the ideal shape is drawn as a black line.
func WritePDF(fname string, s *Sheet) error {
	frame := s.frame()
	w := (frame.URx - frame.LLx) * PDFCellSize
	h := (frame.URy - frame.LLy) * PDFCellSize

	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// From here on, coordinates are in cell units.
	page.Transform(matrix.Matrix{
		PDFCellSize, 0,
		0, PDFCellSize,
		-frame.LLx * PDFCellSize, -frame.LLy * PDFCellSize,
	})

	if len(s.Cells) > 0 {
		page.SetFillColor(color.DeviceGray(0.7))
		outline := Outline(s.Cells)
		k := 0
		for _, cmd := range outline.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(outline.Coords[k].X, outline.Coords[k].Y)
				k++
			case path.CmdLineTo:
				page.LineTo(outline.Coords[k].X, outline.Coords[k].Y)
				k++
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	// grid lines along the cell boundaries
	page.SetStrokeColor(color.DeviceGray(0.5))
	page.SetLineWidth(0.5 / PDFCellSize)
	for x := math.Floor(frame.LLx) + 0.5; x < frame.URx; x++ {
		page.MoveTo(x, frame.LLy)
		page.LineTo(x, frame.URy)
	}
	for y := math.Floor(frame.LLy) + 0.5; y < frame.URy; y++ {
		page.MoveTo(frame.LLx, y)
		page.LineTo(frame.URx, y)
	}
	page.Stroke()

	if len(s.Ideal) > 0 {
		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(1.5 / PDFCellSize)
		page.SetLineCap(graphics.LineCapRound)
		page.MoveTo(s.Ideal[0].X, s.Ideal[0].Y)
		for _, v := range s.Ideal[1:] {
			page.LineTo(v.X, v.Y)
		}
		if len(s.Ideal) == 1 {
			page.LineTo(s.Ideal[0].X, s.Ideal[0].Y)
		}
		page.Stroke()
	}

	return page.Close()
}
