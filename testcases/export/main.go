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

// Command export writes the test cases, together with the computed cells,
// to testdata/testcases.json.  For every case it also writes a PNG preview
// and a GeoJSON file to testdata/preview.
package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/lattice"
	"seehuhn.de/go/lattice/internal/scenario"
	"seehuhn.de/go/lattice/preview"
	"seehuhn.de/go/lattice/testcases"
)

const (
	outFile    = "testdata/testcases.json"
	previewDir = "testdata/preview"
	scale      = 16 // pixels per cell
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	lattice.SetLogger(logger)

	if err := os.MkdirAll(previewDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			res, err := scenario.Run(tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, toJSON(name, tc, res))

			sheet := res.Sheet(name, tc)
			if err := writePNG(filepath.Join(previewDir, name+".png"), sheet); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := writeGeoJSON(filepath.Join(previewDir, name+".geojson"), sheet); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			logger.Info("exported", "case", name, "cells", len(sheet.Cells))
		}
	}

	f, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
	logger.Info("wrote test cases", "file", outFile, "count", len(out.TestCases))
}

type jsonTestCase struct {
	Name   string    `json:"name"`
	Dim    int       `json:"dim"`
	Shape  string    `json:"shape"`
	Points [][]int   `json:"points"` // segment endpoints, or the centre of a ball
	Op     string    `json:"op,omitempty"`
	Radius string    `json:"radius,omitempty"`
	Metric string    `json:"metric,omitempty"`
	Cells  [][]int   `json:"cells"`
	Box    []float64 `json:"box,omitempty"` // bounding box of 3D results: min x, y, z, max x, y, z
}

func toJSON(name string, tc testcases.TestCase, res *scenario.Result) jsonTestCase {
	jtc := jsonTestCase{
		Name: name,
		Dim:  tc.Dim,
	}

	switch shape := tc.Shape.(type) {
	case testcases.Segment:
		jtc.Shape = "segment"
		jtc.Points = [][]int{coords(tc.Dim, shape.P1), coords(tc.Dim, shape.P2)}
		switch op := shape.Op.(type) {
		case testcases.OnLine:
			jtc.Op = "on_line"
		case testcases.HalfCell:
			jtc.Op = "half_cell"
		case testcases.Within:
			jtc.Op = "within"
			jtc.Radius = op.Radius.String()
		}
	case testcases.Ball:
		jtc.Shape = "ball"
		jtc.Points = [][]int{coords(tc.Dim, shape.Center)}
		jtc.Radius = fmt.Sprint(shape.Radius)
		jtc.Metric = string(shape.Metric)
	}

	for _, c := range res.Cells2D {
		jtc.Cells = append(jtc.Cells, []int{c.X, c.Y})
	}
	for _, c := range res.Cells3D {
		jtc.Cells = append(jtc.Cells, []int{c.X, c.Y, c.Z})
	}
	if res.Cells3D != nil {
		b := preview.VoxelBounds(res.Cells3D)
		jtc.Box = []float64{b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z}
	}
	return jtc
}

func coords(dim int, p testcases.Point) []int {
	if dim == 3 {
		return []int{p.X, p.Y, p.Z}
	}
	return []int{p.X, p.Y}
}

func writePNG(fname string, s *preview.Sheet) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, preview.Image(s, scale))
}

func writeGeoJSON(fname string, s *preview.Sheet) error {
	data, err := preview.GeoJSON(s).MarshalJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(fname, data, 0644)
}
