// Copyright 2026 The fenics-constitutive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tsr implements operations on symmetric tensors represented in the
// Mandel (orthonormalised Voigt) basis: the first three components hold the
// normal terms and the remaining ones hold the off-diagonal terms multiplied
// by sqrt(2), so that the plain dot product of two vectors equals the
// double-dot product of the corresponding tensors.
//
// A 2nd order tensor has ncp = 2 * ndim components:
//  ncp = 4 : {t00, t11, t22, t01*sqrt(2)}                           (2D)
//  ncp = 6 : {t00, t11, t22, t01*sqrt(2), t12*sqrt(2), t02*sqrt(2)} (3D)
package tsr

import "github.com/cpmech/gosl/la"

// constants
var (
	SQ2    = 1.41421356237309504880168872420969808 // sqrt(2)
	SQ2by3 = 0.81649658092772603273242802490196380 // sqrt(2/3)
	SQ3by2 = 1.22474487139158904909864203735294570 // sqrt(3/2)
)

// Im is the 2nd order identity tensor in Mandel basis
var Im = []float64{1, 1, 1, 0, 0, 0}

// IIm is the 4th order identity tensor in Mandel basis
var IIm = [][]float64{
	{1, 0, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 0},
	{0, 0, 1, 0, 0, 0},
	{0, 0, 0, 1, 0, 0},
	{0, 0, 0, 0, 1, 0},
	{0, 0, 0, 0, 0, 1},
}

// Psd is the symmetric-deviatoric projector: Psd = IIm - (Im dyad Im) / 3
var Psd = [][]float64{
	{2.0 / 3.0, -1.0 / 3.0, -1.0 / 3.0, 0, 0, 0},
	{-1.0 / 3.0, 2.0 / 3.0, -1.0 / 3.0, 0, 0, 0},
	{-1.0 / 3.0, -1.0 / 3.0, 2.0 / 3.0, 0, 0, 0},
	{0, 0, 0, 1, 0, 0},
	{0, 0, 0, 0, 1, 0},
	{0, 0, 0, 0, 0, 1},
}

// M_Alloc2 allocates a 2nd order tensor in Mandel basis
func M_Alloc2(ndim int) []float64 {
	return make([]float64, 2*ndim)
}

// M_Alloc4 allocates a 4th order tensor in Mandel basis
func M_Alloc4(ndim int) [][]float64 {
	return la.MatAlloc(2*ndim, 2*ndim)
}
