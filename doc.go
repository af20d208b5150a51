/*
 * doc.go, part of gomd.
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

/*
Package md implements the geometric kernels used to analyze particle
coordinates from molecular simulations: pairwise distance matrices,
condensed self-distances, bond lengths, bond angles and torsion (dihedral)
angles, with or without a rectangular periodic box under the minimum-image
convention.

The kernels take coordinate sets as gonum mat.Matrix values, but require
the concrete single-precision type v32.Matrix (simulation coordinates are
stored in single precision; a float64 matrix such as a *mat.Dense is
rejected before any computation). All outputs are double precision: a
*mat.Dense for the distance matrix, []float64 for the per-tuple kernels.
Each kernel optionally writes into a caller-supplied result buffer, which
must match the output size exactly.

All kernels are pure, stateless functions. They validate their inputs
eagerly and fail before writing anything, returning errors of exactly two
kinds: ErrPrecision for wrong numeric precision and ErrShape for any
dimension mismatch. Both can be tested for with errors.Is. Geometric
degeneracies (coincident points, colinear configurations) yield defined
numeric outputs, never errors; see the Angles and Torsions documentation.
*/
package md
