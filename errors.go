/*
 * errors.go, part of gomd.
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
	"errors"
	"fmt"
)

// The two failure kinds of the package. Every error returned by a kernel
// wraps one of these, so callers can distinguish them with errors.Is.
// Both indicate a programming error at the call site, not a transient
// condition to retry.
var (
	//ErrPrecision flags a coordinate or box argument that is not a
	//single-precision (*v32.Matrix) coordinate set.
	ErrPrecision = errors.New("gomd: coordinates and box must be single precision (*v32.Matrix)")
	//ErrShape flags wrong rank, wrong column count, mismatched lengths
	//between coordinate arguments, a malformed box, or a result buffer
	//whose size does not match the expected output exactly.
	ErrShape = errors.New("gomd: dimension mismatch")
)

// Error is the interface for errors that all packages in this library
// implement. The Decorate method allows to add and retrieve info from the
// error without changing its type or wrapping it around something else:
// the decoration slice contains the functions in the calling stack, plus,
// for each function, any relevant information, or nothing.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete error type of the package. It wraps one of the
// two kind sentinels (ErrPrecision or ErrShape) so errors.Is works on it.
type CError struct {
	msg  string
	kind error
	deco []string
}

// Error returns a string with an error message.
func (err CError) Error() string { return err.msg }

// Unwrap returns the kind sentinel wrapped by the error, ErrPrecision or
// ErrShape.
func (err CError) Unwrap() error { return err.kind }

// Decorate will add the dec string to the decoration slice of strings of
// the error, and return the resulting slice. If given an empty string it
// just returns the current decoration.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func errPrecision(caller, format string, a ...interface{}) error {
	return CError{fmt.Sprintf("%s: %s", caller, fmt.Sprintf(format, a...)), ErrPrecision, []string{caller}}
}

func errShape(caller, format string, a ...interface{}) error {
	return CError{fmt.Sprintf("%s: %s", caller, fmt.Sprintf(format, a...)), ErrShape, []string{caller}}
}
