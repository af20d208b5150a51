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

/*Package v32 implements a Matrix type representing a row-major Nx3 matrix of
single-precision floats. It is the type in which gomd stores the cartesian
coordinates of sets of particles: simulation snapshots hold tens of thousands
of positions, and trajectory formats store them in single precision, so the
backing is []float32 rather than the float64 of a gonum Dense. The fixed
number of columns allows some additional restrictions and conveniences over a
general matrix type.

v32.Matrix implements gonum's mat.Matrix (At returns the element widened to
float64), so coordinate sets can be handed directly to gonum-based code.
Conversions to and from mat.Dense are explicit, via Dense and FromDense.
*/
package v32
