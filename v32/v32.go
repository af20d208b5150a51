/*
 * v32.go, part of gomd.
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

package v32

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const cols int = 3

//Matrix is a set of row vectors in 3D space, stored row-major in a flat
//single-precision backing. Within the package it is understood that a
//"vector" is a row vector, i.e. the cartesian coordinates of a point in 3D
//space. The name of some functions in the library reflect this.
type Matrix struct {
	data []float32
	r    int
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
//The backing slice is used directly, not copied.
func NewMatrix(data []float32) (*Matrix, error) {
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("gomd/v32: input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{data, rows}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	return &Matrix{make([]float32, cols*vecs), vecs}
}

//NewBox returns a 1x3 Matrix holding the edge lengths of a rectangular
//periodic cell. All edges must be strictly positive.
func NewBox(lx, ly, lz float32) (*Matrix, error) {
	if lx <= 0 || ly <= 0 || lz <= 0 {
		return nil, Error{fmt.Sprintf("gomd/v32: box edge lengths must be positive, got (%v, %v, %v)", lx, ly, lz), []string{"NewBox"}, true}
	}
	return &Matrix{[]float32{lx, ly, lz}, 1}, nil
}

//FromDense converts a gonum Dense matrix into a Matrix, narrowing each
//element to single precision. Panics if a does not have exactly 3 columns.
func FromDense(a *mat.Dense) *Matrix {
	r, c := a.Dims()
	if c != cols {
		panic(ErrNotXx3Matrix)
	}
	F := Zeros(r)
	for i := 0; i < r; i++ {
		for j := 0; j < cols; j++ {
			F.data[i*cols+j] = float32(a.At(i, j))
		}
	}
	return F
}

//Dense returns a gonum Dense matrix with the contents of F widened to
//double precision.
func (F *Matrix) Dense() *mat.Dense {
	d := make([]float64, len(F.data))
	for i, v := range F.data {
		d[i] = float64(v)
	}
	return mat.NewDense(F.r, cols, d)
}

//METHODS implementing gonum's mat.Matrix.

//Dims returns the dimensions of the matrix.
func (F *Matrix) Dims() (int, int) {
	return F.r, cols
}

//At returns the element at row i, column j, widened to float64.
func (F *Matrix) At(i, j int) float64 {
	if uint(j) >= uint(cols) {
		panic(ErrIndexOutOfRange)
	}
	return float64(F.data[i*cols+j])
}

//T returns the transpose of the matrix, as gonum requires. The transpose
//is of course not a set of 3D vectors anymore, so it is only a mat.Matrix.
func (F *Matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: F}
}

//METHODS

//NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	return F.r
}

//Raw returns the flat single-precision backing of F, row-major.
//Mutating the returned slice mutates F.
func (F *Matrix) Raw() []float32 {
	return F.data
}

//Row puts the ith row of F in dst, allocating a new slice if dst is nil,
//and returns it.
func (F *Matrix) Row(dst []float32, i int) []float32 {
	if i >= F.r {
		panic(ErrIndexOutOfRange)
	}
	if dst == nil {
		dst = make([]float32, cols)
	}
	copy(dst, F.data[i*cols:(i+1)*cols])
	return dst
}

//VecView returns a view of the ith vector of F. The view shares the
//backing of F, so changes in one are reflected in the other.
func (F *Matrix) VecView(i int) *Matrix {
	if i >= F.r {
		panic(ErrIndexOutOfRange)
	}
	return &Matrix{F.data[i*cols : (i+1)*cols], 1}
}

//Set sets the element at row i, column j to v.
func (F *Matrix) Set(i, j int, v float32) {
	if uint(j) >= uint(cols) {
		panic(ErrIndexOutOfRange)
	}
	F.data[i*cols+j] = v
}

//Copy copies the contents of A into the receiver. Panics if the receiver
//has fewer vectors than A.
func (F *Matrix) Copy(A *Matrix) {
	if F.r < A.r {
		panic(ErrShape)
	}
	copy(F.data, A.data)
}

//Sub puts A-B, element-wise, in the receiver. Panics if dimensions are
//mismatched.
func (F *Matrix) Sub(A, B *Matrix) {
	if A.r != B.r || F.r != A.r {
		panic(ErrShape)
	}
	for i := range F.data {
		F.data[i] = A.data[i] - B.data[i]
	}
}

//Add puts A+B, element-wise, in the receiver. Panics if dimensions are
//mismatched.
func (F *Matrix) Add(A, B *Matrix) {
	if A.r != B.r || F.r != A.r {
		panic(ErrShape)
	}
	for i := range F.data {
		F.data[i] = A.data[i] + B.data[i]
	}
}

//Scale puts v*A in the receiver. Panics if dimensions are mismatched.
func (F *Matrix) Scale(v float32, A *Matrix) {
	if F.r != A.r {
		panic(ErrShape)
	}
	for i := range F.data {
		F.data[i] = v * A.data[i]
	}
}

//Cross puts the cross product of the first vecs of a and b in the first
//vec of F. Panics if any of the three matrices is empty.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() < 1 || b.NVecs() < 1 || F.NVecs() < 1 {
		panic(ErrNoCrossProduct)
	}
	//products are taken in double precision, the result narrowed once.
	ax, ay, az := float64(a.data[0]), float64(a.data[1]), float64(a.data[2])
	bx, by, bz := float64(b.data[0]), float64(b.data[1]), float64(b.data[2])
	F.data[0] = float32(ay*bz - az*by)
	F.data[1] = float32(az*bx - ax*bz)
	F.data[2] = float32(ax*by - ay*bx)
}

//Dot returns the sum of the element-wise products of F and A, accumulated
//in double precision. Panics if dimensions are mismatched.
func (F *Matrix) Dot(A *Matrix) float64 {
	if F.r != A.r {
		panic(ErrShape)
	}
	var sum float64
	for i := range F.data {
		sum += float64(F.data[i]) * float64(A.data[i])
	}
	return sum
}

//Norm returns the Frobenius norm of F (for a single vector, its Euclidean
//norm), accumulated in double precision.
func (F *Matrix) Norm() float64 {
	return math.Sqrt(F.Dot(F))
}

//String returns a neat string representation of a Matrix.
func (F *Matrix) String() string {
	v := make([]string, F.r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	for i := 0; i < F.r; i++ {
		row := F.data[i*cols : (i+1)*cols]
		if i == 0 {
			v[i+1] = fmt.Sprintf("%6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		} else if i == F.r-1 {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2])
		} else {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		}
	}
	if F.r > 0 {
		v[len(v)-2] = strings.Replace(v[len(v)-2], "\n", "", 1)
	}
	return strings.Join(v, "")
}

//Errors

//Error is the error type for the v32 package. It implements the same
//Decorate scheme as the errors of the parent package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the
//error, and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the
//error interface. For errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("gomd/v32: a Matrix must have 3 columns")
	ErrNoCrossProduct  = PanicMsg("gomd/v32: invalid matrix for cross product")
	ErrShape           = PanicMsg("gomd/v32: dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("gomd/v32: index out of range")
)
