/*
 * geometry.go, part of gomd.
 *
 * Copyright 2026 The gomd Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package md

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// The per-tuple geometry kernels. Each consumes index-aligned coordinate
// sets of equal length N and produces one scalar per index. Displacements
// go through the same minimum-image correction as the distance kernels
// when a box is given.

func dot3(u, v [3]float64) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

func cross3(u, v [3]float64) [3]float64 {
	return [3]float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

// Bonds computes, for each index i, the Euclidean distance between a[i]
// and b[i], minimum-image corrected when box is not nil. Coincident
// points give exactly 0. result, when not nil, must have length N exactly.
func Bonds(a, b, box mat.Matrix, result []float64) ([]float64, error) {
	const caller = "Bonds"
	names := []string{"a", "b"}
	cs, err := checkCoords(caller, names, a, b)
	if err != nil {
		return nil, err
	}
	n, err := sameNVecs(caller, names, cs...)
	if err != nil {
		return nil, err
	}
	bx, err := checkBox(caller, box)
	if err != nil {
		return nil, err
	}
	result, err = checkResult(caller, result, n)
	if err != nil {
		return nil, err
	}
	ra, rb := cs[0].Raw(), cs[1].Raw()
	for i := 0; i < n; i++ {
		d := displacement(ra[3*i:3*i+3], rb[3*i:3*i+3], bx)
		result[i] = math.Sqrt(dot3(d, d))
	}
	return result, nil
}

// Angles computes, for each index i, the angle at the vertex b[i] between
// the arms to a[i] and c[i], in radians in [0, π]. The arccos argument is
// clamped into [-1, 1] to absorb floating point overshoot, so exactly
// parallel or antiparallel arms give 0 or π rather than a domain error.
// A zero-length arm leaves the angle geometrically undefined; the kernel
// returns 0 for it (see vecAngle). result, when not nil, must have length
// N exactly.
func Angles(a, b, c, box mat.Matrix, result []float64) ([]float64, error) {
	const caller = "Angles"
	names := []string{"a", "b", "c"}
	cs, err := checkCoords(caller, names, a, b, c)
	if err != nil {
		return nil, err
	}
	n, err := sameNVecs(caller, names, cs...)
	if err != nil {
		return nil, err
	}
	bx, err := checkBox(caller, box)
	if err != nil {
		return nil, err
	}
	result, err = checkResult(caller, result, n)
	if err != nil {
		return nil, err
	}
	ra, rb, rc := cs[0].Raw(), cs[1].Raw(), cs[2].Raw()
	for i := 0; i < n; i++ {
		u := displacement(rb[3*i:3*i+3], ra[3*i:3*i+3], bx)
		v := displacement(rb[3*i:3*i+3], rc[3*i:3*i+3], bx)
		result[i] = vecAngle(u, v)
	}
	return result, nil
}

// vecAngle returns the angle between u and v in radians. A zero-length
// vector has no direction, so no angle is defined for it; we return 0
// instead of letting a 0/0 propagate NaN into the results.
func vecAngle(u, v [3]float64) float64 {
	normprod := math.Sqrt(dot3(u, u)) * math.Sqrt(dot3(v, v))
	if normprod == 0 {
		return 0
	}
	arg := dot3(u, v) / normprod
	// take care of floating point math errors
	if arg > 1 {
		arg = 1
	} else if arg < -1 {
		arg = -1
	}
	return math.Acos(arg)
}

// Torsions computes, for each index i, the torsion (dihedral) angle of the
// four points a[i], b[i], c[i], d[i]: the signed angle in (-π, π] between
// the plane of the first three points and that of the last three. With
// bond vectors b1=b-a, b2=c-b, b3=d-c and normals n1=b1×b2, n2=b2×b3, the
// angle is atan2(|b2| b1·n2, n1·n2), which is (n1×n2)·b2/|b2| in the
// numerator and stays numerically stable near 0 and π where a plain
// arccos of the normal dot product loses precision. Colinear bond vectors
// zero out both atan2 arguments, so a degenerate torsion comes out as 0.
// result, when not nil, must have length N exactly.
func Torsions(a, b, c, d, box mat.Matrix, result []float64) ([]float64, error) {
	const caller = "Torsions"
	names := []string{"a", "b", "c", "d"}
	cs, err := checkCoords(caller, names, a, b, c, d)
	if err != nil {
		return nil, err
	}
	n, err := sameNVecs(caller, names, cs...)
	if err != nil {
		return nil, err
	}
	bx, err := checkBox(caller, box)
	if err != nil {
		return nil, err
	}
	result, err = checkResult(caller, result, n)
	if err != nil {
		return nil, err
	}
	ra, rb, rc, rd := cs[0].Raw(), cs[1].Raw(), cs[2].Raw(), cs[3].Raw()
	for i := 0; i < n; i++ {
		b1 := displacement(ra[3*i:3*i+3], rb[3*i:3*i+3], bx)
		b2 := displacement(rb[3*i:3*i+3], rc[3*i:3*i+3], bx)
		b3 := displacement(rc[3*i:3*i+3], rd[3*i:3*i+3], bx)
		result[i] = torsionAngle(b1, b2, b3)
	}
	return result, nil
}

func torsionAngle(b1, b2, b3 [3]float64) float64 {
	n1 := cross3(b1, b2)
	n2 := cross3(b2, b3)
	y := math.Sqrt(dot3(b2, b2)) * dot3(b1, n2)
	x := dot3(n1, n2)
	return math.Atan2(y, x)
}
