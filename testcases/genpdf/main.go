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

// Command genpdf draws every test case as a PDF sheet, showing the lattice
// grid, the selected cells and the exact shape.  The sheets are written to
// testdata/sheets.
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/lattice/internal/scenario"
	"seehuhn.de/go/lattice/preview"
	"seehuhn.de/go/lattice/testcases"
)

const sheetDir = "testdata/sheets"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Create output directory
	if err := os.MkdirAll(sheetDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(sheetDir, name+".pdf")

			res, err := scenario.Run(tc)
			if err != nil {
				panic(err)
			}
			if err := preview.WritePDF(pdfPath, res.Sheet(name, tc)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			logger.Info("wrote sheet", "file", pdfPath)
		}
	}
}
