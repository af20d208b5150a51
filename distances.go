/*
 * distances.go, part of gomd.
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
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Below this many (i,j) pairs the pairwise loops run on the calling
// goroutine; above it they fan out over row chunks. The threshold only
// changes scheduling, never results: every pair writes its own slot.
const parallelPairs = 1 << 14

// forRowChunks runs fill over [0,rows) split in contiguous chunks, one
// goroutine per chunk, when the total work is large enough, and inline
// otherwise. pairsPerRow is the (mean) number of pairs a row contributes.
func forRowChunks(rows, pairsPerRow int, fill func(lo, hi int)) {
	if rows*pairsPerRow < parallelPairs {
		fill(0, rows)
		return
	}
	workers := runtime.NumCPU()
	if workers > rows {
		workers = rows
	}
	chunk := (rows + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < rows; lo += chunk {
		hi := lo + chunk
		if hi > rows {
			hi = rows
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fill(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// DistanceArray computes the dense MxN matrix of Euclidean distances
// between every vector of ref (M vectors) and every vector of conf (N
// vectors): entry (i,j) holds |conf[j]-ref[i]|. When box is not nil each
// displacement is minimum-image corrected first. The displacements are
// taken and accumulated in double precision even though the inputs are
// single precision.
//
// result, when not nil, must be an MxN matrix and receives the output in
// place; otherwise a fresh matrix is allocated. Either way the filled
// matrix is returned. Passing the same coordinate set as ref and conf
// still computes the full dense matrix, zero diagonal included; use
// SelfDistanceArray to get each pair only once.
func DistanceArray(ref, conf, box mat.Matrix, result *mat.Dense) (*mat.Dense, error) {
	const caller = "DistanceArray"
	cs, err := checkCoords(caller, []string{"ref", "conf"}, ref, conf)
	if err != nil {
		return nil, err
	}
	R, C := cs[0], cs[1]
	b, err := checkBox(caller, box)
	if err != nil {
		return nil, err
	}
	m, n := R.NVecs(), C.NVecs()
	if m == 0 || n == 0 {
		// a Dense matrix cannot be zero-sized
		return nil, errShape(caller, "empty coordinate set: ref has %d vectors, conf has %d", m, n)
	}
	result, err = checkResultDense(caller, result, m, n)
	if err != nil {
		return nil, err
	}
	pr, qr := R.Raw(), C.Raw()
	raw := result.RawMatrix()
	forRowChunks(m, n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			p := pr[3*i : 3*i+3]
			row := raw.Data[i*raw.Stride : i*raw.Stride+n]
			for j := 0; j < n; j++ {
				d := displacement(p, qr[3*j:3*j+3], b)
				row[j] = math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
			}
		}
	})
	return result, nil
}

// SelfDistanceArray computes the distances between all unordered pairs
// within one coordinate set of N vectors, in condensed form: a vector of
// length N(N-1)/2 holding the pairs (i,j), i<j, with i as the outer index
// and j as the inner one. That ordering is part of the contract; entry k
// for a pair is k = i(2N-i-1)/2 + j-i-1 no matter how the loop is
// scheduled. Distances are computed exactly as in DistanceArray,
// minimum-image corrected when box is not nil.
//
// result, when not nil, must have length N(N-1)/2 exactly.
func SelfDistanceArray(coords, box mat.Matrix, result []float64) ([]float64, error) {
	const caller = "SelfDistanceArray"
	cs, err := checkCoords(caller, []string{"coords"}, coords)
	if err != nil {
		return nil, err
	}
	X := cs[0]
	b, err := checkBox(caller, box)
	if err != nil {
		return nil, err
	}
	n := X.NVecs()
	result, err = checkResult(caller, result, n*(n-1)/2)
	if err != nil {
		return nil, err
	}
	raw := X.Raw()
	forRowChunks(n, n/2, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			p := raw[3*i : 3*i+3]
			k := i * (2*n - i - 1) / 2
			for j := i + 1; j < n; j++ {
				d := displacement(p, raw[3*j:3*j+3], b)
				result[k] = math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
				k++
			}
		}
	})
	return result, nil
}
