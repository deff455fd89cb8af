// Copyright 2026 The fenics-constitutive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/num"
)

// SimpleTension implements the analytical solution of a plane-strain simple
// tension test with the Ramberg-Osgood material:
//
//        ↑↑↑↑↑↑↑ σ22
//        -------
//        |     |        σ11 = 0
//        |  E  |        σ22 = applied load
//        |  ν  |        σ33 : out-of-plane stress such that ε33 = 0
//        |  α  |
//        |  n  |
//        -------
//
// For a given load σ22 the out-of-plane stress follows from the implicit
// plane-strain condition
//  ε33(σ33; σ22) = (σ33+σ22)/(3K) + C(q) (2 σ33 - σ22)/3 = 0
// with the Ramberg-Osgood compliance C(q) = 1/(2G) + (3α/(2E)) (q/σy)^(n-1)
// and q = sqrt(σ22² + σ33² - σ22 σ33). Here K = E/(1-2ν) denotes three
// times the bulk modulus.
type SimpleTension struct {

	// input
	E  float64 // Young's modulus
	ν  float64 // Poisson's coefficient
	α  float64 // Ramberg-Osgood shape parameter
	n  float64 // Ramberg-Osgood hardening exponent
	σy float64 // yield stress

	// derived
	kk float64 // kk = E/(1-2ν) = 3 * bulk modulus
	G  float64 // shear modulus
}

// Init initialises this structure
func (o *SimpleTension) Init(prms fun.Prms) {

	// default values
	o.E = 210e3
	o.ν = 0.3
	o.α = 0.01
	o.n = 5.0
	o.σy = 500.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		case "alp":
			o.α = p.V
		case "n":
			o.n = p.V
		case "sigy":
			o.σy = p.V
		}
	}

	// derived
	o.kk = o.E / (1.0 - 2.0*o.ν)
	o.G = o.E / (2.0 * (1.0 + o.ν))
}

// compliance returns the scalar Ramberg-Osgood compliance for equivalent
// stress q
func (o SimpleTension) compliance(q float64) float64 {
	return 1.0/(2.0*o.G) + 3.0*o.α/(2.0*o.E)*math.Pow(q/o.σy, o.n-1.0)
}

// eps33 returns the out-of-plane strain for trial σ33 = x and load σ22 = s
func (o SimpleTension) eps33(x, s float64) float64 {
	q := math.Sqrt(s*s + x*x - s*x)
	return (x+s)/(3.0*o.kk) + o.compliance(q)*(2.0*x-s)/3.0
}

// Sig33 computes the out-of-plane stress for given load σ22 by solving
// ε33(σ33) = 0. The root is bracketed by [0, σ22]: at σ33 = 0 the lateral
// contraction makes ε33 negative (for ν > 0) and at σ33 = σ22 the
// volumetric expansion dominates.
func (o SimpleTension) Sig33(σ22 float64) (σ33 float64, err error) {
	if σ22 == 0 {
		return 0, nil
	}
	var bre num.Brent
	bre.Init(func(x float64) (float64, error) {
		return o.eps33(x, σ22), nil
	})
	silent := true
	return bre.Solve(0, σ22, silent)
}

// Strains returns the in-plane strains for given load σ22
func (o SimpleTension) Strains(σ22 float64) (ε11, ε22 float64, err error) {
	σ33, err := o.Sig33(σ22)
	if err != nil {
		return
	}
	q := math.Sqrt(σ22*σ22 + σ33*σ33 - σ22*σ33)
	c := o.compliance(q)
	ε11 = (σ22+σ33)/(3.0*o.kk) - c*(σ33+σ22)/3.0
	ε22 = (σ22+σ33)/(3.0*o.kk) + c*(2.0*σ22-σ33)/3.0
	return
}

// CheckStress compares a numerically computed stress state (Mandel
// components) with the analytical values for load σ22
func (o SimpleTension) CheckStress(tol, σ22 float64, σ []float64, verbose bool) (err error) {
	σ33, err := o.Sig33(σ22)
	if err != nil {
		return
	}
	err = chk.PrintAnaNum("σ11", tol, 0, σ[0], verbose)
	if err != nil {
		return
	}
	err = chk.PrintAnaNum("σ22", tol, σ22, σ[1], verbose)
	if err != nil {
		return
	}
	err = chk.PrintAnaNum("σ33", tol, σ33, σ[2], verbose)
	if err != nil {
		return
	}
	return chk.PrintAnaNum("σ12", tol, 0, σ[3], verbose)
}
