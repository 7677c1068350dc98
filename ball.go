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
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/exp/constraints"
)

// Metric selects the distance used for disks and balls.
type Metric int

// These are the supported metrics.
const (
	L1   Metric = iota + 1 // taxicab distance, |dx| + |dy| + |dz|
	L2                     // Euclidean distance
	LInf                   // Chebyshev distance, max(|dx|, |dy|, |dz|)
)

func (m Metric) String() string {
	switch m {
	case L1:
		return "L1"
	case L2:
		return "L2"
	case LInf:
		return "L∞"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// PointsInDisk returns the lattice points whose distance from center,
// measured using the metric m, is at most radius.  Every point is returned
// exactly once.
func PointsInDisk(center Point2D, radius int, m Metric) ([]Point2D, error) {
	if radius < 0 {
		return nil, fmt.Errorf("disk radius %d: %w", radius, ErrInvalidArgument)
	}
	switch m {
	case L1:
		return diskL1(center, radius), nil
	case L2:
		return diskL2(center, radius), nil
	case LInf:
		return diskLInf(center, radius), nil
	default:
		return nil, fmt.Errorf("disk metric %s: %w", m, ErrInvalidArgument)
	}
}

// PointsInBall returns the lattice points whose distance from center,
// measured using the metric m, is at most radius.  Every point is returned
// exactly once.
func PointsInBall(center Point3D, radius int, m Metric) ([]Point3D, error) {
	if radius < 0 {
		return nil, fmt.Errorf("ball radius %d: %w", radius, ErrInvalidArgument)
	}
	switch m {
	case L1:
		return ballL1(center, radius), nil
	case L2:
		return ballL2(center, radius), nil
	case LInf:
		return ballLInf(center, radius), nil
	default:
		return nil, fmt.Errorf("ball metric %s: %w", m, ErrInvalidArgument)
	}
}

func diskLInf(c Point2D, r int) []Point2D {
	points := make([]Point2D, 0, (2*r+1)*(2*r+1))
	for x := -r; x <= r; x++ {
		for y := -r; y <= r; y++ {
			points = append(points, Point2D{X: c.X + x, Y: c.Y + y})
		}
	}
	return points
}

func diskL1(c Point2D, r int) []Point2D {
	points := make([]Point2D, 0, 2*r*r+2*r+1)
	for x := -r; x <= r; x++ {
		w := r - abs(x)
		for y := -w; y <= w; y++ {
			points = append(points, Point2D{X: c.X + x, Y: c.Y + y})
		}
	}
	return points
}

func diskL2(c Point2D, r int) []Point2D {
	rr := r * r

	// All points of the square [-d, d]² are inside the disk.
	d := isqrt(rr / 2)
	points := make([]Point2D, 0, rr*4)
	for x := -d; x <= d; x++ {
		for y := -d; y <= d; y++ {
			points = append(points, Point2D{X: c.X + x, Y: c.Y + y})
		}
	}

	for x := d + 1; x <= r; x++ {
		points = append(points,
			Point2D{X: c.X + x, Y: c.Y},
			Point2D{X: c.X - x, Y: c.Y},
			Point2D{X: c.X, Y: c.Y + x},
			Point2D{X: c.X, Y: c.Y - x})
	}

	// The remaining points have one coordinate x > d and the other one in
	// 1, ..., d.  Each point (x, y) represents its eight reflections.
	for x := d + 1; x < r; x++ {
		for y := 1; x*x+y*y <= rr; y++ {
			points = append(points,
				Point2D{X: c.X + x, Y: c.Y + y},
				Point2D{X: c.X + x, Y: c.Y - y},
				Point2D{X: c.X - x, Y: c.Y + y},
				Point2D{X: c.X - x, Y: c.Y - y},
				Point2D{X: c.X + y, Y: c.Y + x},
				Point2D{X: c.X - y, Y: c.Y + x},
				Point2D{X: c.X + y, Y: c.Y - x},
				Point2D{X: c.X - y, Y: c.Y - x})
		}
	}
	return points
}

func ballLInf(c Point3D, r int) []Point3D {
	n := 2*r + 1
	points := make([]Point3D, 0, n*n*n)
	for x := -r; x <= r; x++ {
		for y := -r; y <= r; y++ {
			for z := -r; z <= r; z++ {
				points = append(points, Point3D{X: c.X + x, Y: c.Y + y, Z: c.Z + z})
			}
		}
	}
	return points
}

func ballL1(c Point3D, r int) []Point3D {
	var points []Point3D
	for x := -r; x <= r; x++ {
		wy := r - abs(x)
		for y := -wy; y <= wy; y++ {
			wz := wy - abs(y)
			for z := -wz; z <= wz; z++ {
				points = append(points, Point3D{X: c.X + x, Y: c.Y + y, Z: c.Z + z})
			}
		}
	}
	return points
}

func ballL2(c Point3D, r int) []Point3D {
	rr := r * r

	// All points of the cube [-d, d]³ are inside the ball.
	d := isqrt(rr / 3)
	n := 2*d + 1
	points := make([]Point3D, 0, n*n*n)
	for x := -d; x <= d; x++ {
		for y := -d; y <= d; y++ {
			for z := -d; z <= d; z++ {
				points = append(points, Point3D{X: c.X + x, Y: c.Y + y, Z: c.Z + z})
			}
		}
	}

	// Every remaining point has largest absolute coordinate m > d.  It is
	// generated from the first axis where |coordinate| == m, with the other
	// two coordinates a, b >= 0 and all sign combinations.
	for m := d + 1; m <= r; m++ {
		rest := rr - m*m
		for axis := range 3 {
			maxA, maxB := m, m
			if axis >= 1 {
				maxA = m - 1
			}
			if axis == 2 {
				maxB = m - 1
			}
			for a := 0; a <= maxA && a*a <= rest; a++ {
				for b := 0; b <= maxB && a*a+b*b <= rest; b++ {
					for _, sm := range [2]int{m, -m} {
						for _, sa := range mirror(a) {
							for _, sb := range mirror(b) {
								var p Point3D
								switch axis {
								case 0:
									p = Point3D{X: sm, Y: sa, Z: sb}
								case 1:
									p = Point3D{X: sa, Y: sm, Z: sb}
								default:
									p = Point3D{X: sa, Y: sb, Z: sm}
								}
								points = append(points, Point3D{X: c.X + p.X, Y: c.Y + p.Y, Z: c.Z + p.Z})
							}
						}
					}
				}
			}
		}
	}
	return points
}

// mirror returns v and -v, or only v if v is zero.
func mirror(v int) []int {
	if v == 0 {
		return []int{0}
	}
	return []int{v, -v}
}

// isqrt returns the largest s with s*s <= n, for n >= 0.
//
// The floating point square root only provides a first guess, the result
// is fixed up using exact integer comparisons.
func isqrt[T constraints.Integer](n T) T {
	s := T(math.Sqrt(float64(n)))
	guess := s
	// The comparisons are done by division, so that they cannot overflow.
	for s > 0 && s > n/s {
		s--
	}
	for s+1 <= n/(s+1) {
		s++
	}
	if s != guess {
		Logger().Debug("sqrt estimate corrected",
			slog.Any("n", n),
			slog.Any("estimate", guess),
			slog.Any("result", s))
	}
	return s
}
