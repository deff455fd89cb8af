// Copyright 2026 The fenics-constitutive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/gosl/io"

// NonConvError indicates that an iterative stress-update exceeded its
// iteration cap before meeting the residual tolerance. The last iterate is
// NOT propagated as a valid result.
type NonConvError struct {
	It  int     // number of iterations performed
	Res float64 // residual at the last iterate
}

func (e *NonConvError) Error() string {
	return io.Sf("Newton-Raphson did not converge after %d iterations (residual = %g)", e.It, e.Res)
}

// DomainError indicates that an iterative stress-update produced an invalid
// intermediate value, e.g. a negative or non-finite equivalent stress due to
// overflow of the power-law term.
type DomainError struct {
	Sv float64 // offending equivalent stress value
}

func (e *DomainError) Error() string {
	return io.Sf("equivalent stress left the admissible range during Newton-Raphson: σv=%v", e.Sv)
}
