/*
 * validate.go, part of gomd.
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
	"gonum.org/v1/gonum/mat"

	"github.com/gomd-dev/gomd/v32"
)

// Input validation shared by the five kernels. Everything here runs before
// any numeric work and before anything is written into a caller-supplied
// result buffer: the first violated constraint aborts the call.

// checkCoords asserts that every coordinate argument is a single-precision
// Nx3 matrix (concretely, a *v32.Matrix; any other mat.Matrix carries
// float64 semantics and is a precision mismatch). names gives the argument
// names for error messages, aligned with args.
func checkCoords(caller string, names []string, args ...mat.Matrix) ([]*v32.Matrix, error) {
	out := make([]*v32.Matrix, len(args))
	for i, a := range args {
		if a == nil {
			return nil, errShape(caller, "coordinate argument %s is nil", names[i])
		}
		m, ok := a.(*v32.Matrix)
		if !ok {
			return nil, errPrecision(caller, "coordinate argument %s is a %T, not a single-precision *v32.Matrix", names[i], a)
		}
		out[i] = m
	}
	return out, nil
}

// sameNVecs asserts that all coordinate sets hold the same number of
// vectors and returns that number.
func sameNVecs(caller string, names []string, ms ...*v32.Matrix) (int, error) {
	n := ms[0].NVecs()
	for i, m := range ms[1:] {
		if m.NVecs() != n {
			return 0, errShape(caller, "coordinate argument %s has %d vectors, want %d (as %s)", names[i+1], m.NVecs(), n, names[0])
		}
	}
	return n, nil
}

// checkBox validates an optional periodic box: when non-nil it must be a
// single-precision 1x3 matrix of strictly positive edge lengths. Returns
// the edges widened to float64, or nil for the non-periodic case.
func checkBox(caller string, box mat.Matrix) (*[3]float64, error) {
	if box == nil {
		return nil, nil
	}
	m, ok := box.(*v32.Matrix)
	if !ok {
		return nil, errPrecision(caller, "box is a %T, not a single-precision *v32.Matrix", box)
	}
	if r, c := m.Dims(); r != 1 || c != 3 {
		return nil, errShape(caller, "box must be a 1x3 matrix of edge lengths, got %dx%d", r, c)
	}
	raw := m.Raw()
	var b [3]float64
	for i := 0; i < 3; i++ {
		if raw[i] <= 0 {
			return nil, errShape(caller, "box edge lengths must be positive, got %v", raw[i])
		}
		b[i] = float64(raw[i])
	}
	return &b, nil
}

// checkResult validates an optional caller-supplied vector result buffer,
// allocating a fresh one when nil. The length must match exactly.
func checkResult(caller string, result []float64, want int) ([]float64, error) {
	if result == nil {
		return make([]float64, want), nil
	}
	if len(result) != want {
		return nil, errShape(caller, "result buffer has length %d, want exactly %d", len(result), want)
	}
	return result, nil
}

// checkResultDense validates an optional caller-supplied matrix result
// buffer, allocating a fresh one when nil. The dimensions must match
// exactly.
func checkResultDense(caller string, result *mat.Dense, r, c int) (*mat.Dense, error) {
	if result == nil {
		return mat.NewDense(r, c, nil), nil
	}
	if rr, rc := result.Dims(); rr != r || rc != c {
		return nil, errShape(caller, "result matrix is %dx%d, want exactly %dx%d", rr, rc, r, c)
	}
	return result, nil
}
