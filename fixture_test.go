/*
 * fixture_test.go, part of gomd.
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

package md_test

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	md "github.com/gomd-dev/gomd"
	"github.com/gomd-dev/gomd/v32"
)

// The fixture is a compressed snapshot of 400 particle positions drawn
// from a fixed-seed generator, spread over several periods of a
// (21.5, 17.25, 15.125) box. The reference extrema below were computed
// independently, in double precision over the single-precision
// coordinates, the same way the original values for this kind of test
// were obtained from a trajectory frame. These sets are large enough to
// take the concurrent path of the pairwise kernels, so the assertions
// also pin down that scheduling does not affect placement or values.
const (
	fixtureN     = 400
	fixtureSplit = 150
)

func fixtureBox(t *testing.T) *v32.Matrix {
	return newBox(t, 21.5, 17.25, 15.125)
}

func loadFixture(t *testing.T) *v32.Matrix {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", "positions.txt.gz"))
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	defer zr.Close()

	data := make([]float32, 0, 3*fixtureN)
	sc := bufio.NewScanner(zr)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		require.Len(t, fields, 3, "malformed fixture line %q", sc.Text())
		for _, s := range fields {
			v, err := strconv.ParseFloat(s, 32)
			require.NoError(t, err)
			data = append(data, float32(v))
		}
	}
	require.NoError(t, sc.Err())
	m, err := v32.NewMatrix(data)
	require.NoError(t, err)
	require.Equal(t, fixtureN, m.NVecs())
	return m
}

// splitFixture returns the first 150 positions as the reference set and
// the remaining 250 as the configuration set.
func splitFixture(t *testing.T, X *v32.Matrix) (ref, conf *v32.Matrix) {
	raw := X.Raw()
	ref, err := v32.NewMatrix(raw[:3*fixtureSplit])
	require.NoError(t, err)
	conf, err = v32.NewMatrix(raw[3*fixtureSplit:])
	require.NoError(t, err)
	return ref, conf
}

func minMaxDense(d [][]float64) (lo, hi float64) {
	lo, hi = d[0][0], d[0][0]
	for _, row := range d {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

func minMaxVec(d []float64) (lo, hi float64) {
	lo, hi = d[0], d[0]
	for _, v := range d {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func TestFixtureDistanceArray(t *testing.T) {
	X := loadFixture(t)
	ref, conf := splitFixture(t, X)

	d, err := md.DistanceArray(ref, conf, nil, nil)
	require.NoError(t, err)
	r, c := d.Dims()
	require.Equal(t, fixtureSplit, r)
	require.Equal(t, fixtureN-fixtureSplit, c)
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = d.RawRowView(i)
	}
	lo, hi := minMaxDense(rows)
	assert.InDelta(t, 0.792687117601, lo, prec, "wrong minimum distance value")
	assert.InDelta(t, 73.298872095708, hi, prec, "wrong maximum distance value")
	assert.InDelta(t, 37.736652177970, d.At(0, 0), prec)

	d, err = md.DistanceArray(ref, conf, fixtureBox(t), nil)
	require.NoError(t, err)
	for i := range rows {
		rows[i] = d.RawRowView(i)
	}
	lo, hi = minMaxDense(rows)
	assert.InDelta(t, 0.232304557117, lo, prec, "wrong minimum distance value with PBC")
	assert.InDelta(t, 15.554758618105, hi, prec, "wrong maximum distance value with PBC")
	assert.InDelta(t, 8.745197935876, d.At(0, 0), prec)
}

func TestFixtureSelfDistanceArray(t *testing.T) {
	X := loadFixture(t)

	d, err := md.SelfDistanceArray(X, nil, nil)
	require.NoError(t, err)
	require.Len(t, d, fixtureN*(fixtureN-1)/2)
	lo, hi := minMaxVec(d)
	assert.InDelta(t, 0.599135781502, lo, prec, "wrong minimum distance value")
	assert.InDelta(t, 74.132352172210, hi, prec, "wrong maximum distance value")
	assert.InDelta(t, 42.965670074242, d[0], prec, "wrong first condensed entry")

	d, err = md.SelfDistanceArray(X, fixtureBox(t), nil)
	require.NoError(t, err)
	lo, hi = minMaxVec(d)
	assert.InDelta(t, 0.232304557117, lo, prec, "wrong minimum distance value with PBC")
	assert.InDelta(t, 15.554758618105, hi, prec, "wrong maximum distance value with PBC")
	assert.InDelta(t, 7.987694674753, d[0], prec, "wrong first condensed entry with PBC")
}

// With 160000 pairs both kernels take the concurrent path; the condensed
// vector must still equal the strict upper triangle of the dense matrix,
// and a supplied buffer must match a fresh allocation exactly.
func TestFixtureSelfMatchesUpperTriangle(t *testing.T) {
	X := loadFixture(t)
	box := fixtureBox(t)

	dense, err := md.DistanceArray(X, X, box, nil)
	require.NoError(t, err)
	self, err := md.SelfDistanceArray(X, box, nil)
	require.NoError(t, err)

	k := 0
	for i := 0; i < fixtureN; i++ {
		for j := i + 1; j < fixtureN; j++ {
			if dense.At(i, j) != self[k] {
				t.Fatalf("pair (%d,%d): dense %v != condensed %v at k=%d", i, j, dense.At(i, j), self[k], k)
			}
			k++
		}
	}

	buf := make([]float64, len(self))
	_, err = md.SelfDistanceArray(X, box, buf)
	require.NoError(t, err)
	assert.Equal(t, self, buf)
}
