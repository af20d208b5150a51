/*
 * pbc.go, part of gomd.
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

import "math"

// MinimumImage returns the minimum-image corrected displacement d for a
// rectangular periodic cell with the given edge lengths: each component is
// reduced by the nearest integer multiple of its box edge, which wraps it
// into [-L/2, L/2]. This is the single periodicity primitive of the
// package; every kernel that takes a box applies it, so a self-distance
// and a bond length computed for the same two points and box agree
// exactly.
func MinimumImage(d, box [3]float64) [3]float64 {
	for i := 0; i < 3; i++ {
		d[i] -= math.Round(d[i]/box[i]) * box[i]
	}
	return d
}

// displacement returns q-p widened to double precision, minimum-image
// corrected when box is not nil. p and q are single rows of the raw
// backing of a coordinate set.
func displacement(p, q []float32, box *[3]float64) [3]float64 {
	d := [3]float64{
		float64(q[0]) - float64(p[0]),
		float64(q[1]) - float64(p[1]),
		float64(q[2]) - float64(p[2]),
	}
	if box != nil {
		d = MinimumImage(d, *box)
	}
	return d
}
