// Copyright 2026 The fenics-constitutive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/TTitscher/fenics-constitutive/tsr"
)

// RambergOsgood implements the Ramberg-Osgood nonlinear-elastic material,
// often used to model ductile behaviour under monotonic loading. Stress and
// strain are directly related (no internal variables); the strain is
//  ε = tr(σ)/(9K) * Im + ( 1/(2G) + (3α/(2E)) (σv/σy)^(n-1) ) * dev(σ)
// and the inversion of this relation requires, at each evaluation, the
// solution of the implicit power-law equation
//  f(σv) = (2/3) σv ( 1/(2G) + (3α/(2E)) (σv/σy)^(n-1) ) - εd = 0
// for the equivalent stress σv. The equation is smooth, convex and
// monotonically increasing for σv ≥ 0, and is solved by Newton-Raphson with
// the previous converged stress as warm start.
type RambergOsgood struct {
	SmallElasticity

	// constants
	EvMin float64 // εd below this is treated as purely volumetric strain
	FTol  float64 // absolute residual tolerance of the Newton solve
	MaxIt int     // iteration cap of the Newton solve

	// parameters
	α  float64 // shape parameter
	n  float64 // hardening exponent
	σy float64 // yield stress

	// results of the last solve
	Nit int // number of Newton iterations

	// auxiliary
	e []float64 // e = dev(ε)
}

// add model to factory
func init() {
	allocators["ramberg-osgood"] = func() Model { return new(RambergOsgood) }
}

// Init initialises model
func (o *RambergOsgood) Init(ndim int, pstress bool, prms fun.Prms) (err error) {

	// elasticity constants
	err = o.SmallElasticity.Init(ndim, pstress, prms)
	if err != nil {
		return
	}

	// constants
	o.EvMin = 1e-12
	o.FTol = 1e-12
	o.MaxIt = 50

	// parameters
	for _, p := range prms {
		switch p.N {
		case "alp":
			o.α = p.V
		case "n":
			o.n = p.V
		case "sigy":
			o.σy = p.V
		case "E", "nu", "rho":
		default:
			return chk.Err("ramberg-osgood: parameter named %q is incorrect", p.N)
		}
	}
	if o.α < 0 {
		return chk.Err("ramberg-osgood: parameter alp must be non-negative. alp=%g is invalid", o.α)
	}
	if o.n <= 1 {
		return chk.Err("ramberg-osgood: exponent n must be greater than 1. n=%g is invalid", o.n)
	}
	if o.σy <= 0 {
		return chk.Err("ramberg-osgood: yield stress must be positive. sigy=%g is invalid", o.σy)
	}

	// auxiliary
	o.e = make([]float64, o.Nsig)
	return
}

// GetPrms gets (an example) of parameters
func (o RambergOsgood) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E", V: 210000},
		&fun.Prm{N: "nu", V: 0.3},
		&fun.Prm{N: "alp", V: 0.01},
		&fun.Prm{N: "n", V: 5},
		&fun.Prm{N: "sigy", V: 500},
	}
}

// GetRho returns density
func (o RambergOsgood) GetRho() float64 {
	return o.Rho
}

// InitIntVars initialises internal (secondary) variables.
// σ becomes the warm start of the first stress update.
func (o RambergOsgood) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(o.Nsig)
	copy(s.Sig, σ)
	return
}

// Update updates stresses for given strains.
// The current s.Sig (previous converged stress) seeds the Newton solve.
func (o *RambergOsgood) Update(s *State, ε, dummy []float64, eid, ipid int) (err error) {

	// invariants
	_, εv, εd := tsr.M_devε(o.e, ε)

	// purely volumetric strain: exact linear-elastic response
	if εd < o.EvMin {
		for i := 0; i < o.Nsig; i++ {
			s.Sig[i] = o.K*εv*tsr.Im[i] + 2.0*o.G*o.e[i]
		}
		copy(s.EpsE, ε)
		o.Nit = 0
		return
	}

	// equivalent stress from the power-law equation
	σv, err := o.SolveEquivStress(o.InitialGuess(tsr.M_q(s.Sig), εd), εd)
	if err != nil {
		return
	}

	// stress
	m := 2.0 * σv / (3.0 * εd)
	for i := 0; i < o.Nsig; i++ {
		s.Sig[i] = o.K*εv*tsr.Im[i] + m*o.e[i]
	}
	copy(s.EpsE, ε)
	return
}

// CalcD computes D = dσ_new/dε_new consistent with Update. The expression is
// the exact derivative of the stress map, which preserves the quadratic
// convergence of the outer equilibrium solver.
func (o *RambergOsgood) CalcD(D [][]float64, s *State, firstIt bool) (err error) {

	// invariants
	_, _, εd := tsr.M_devε(o.e, s.EpsE)

	// purely volumetric strain
	if εd < o.EvMin {
		return o.SmallElasticity.CalcD(D, s)
	}

	// hardening term: h = σv/(3G) + α n σy/E (σv/σy)^n
	σv := tsr.M_q(s.Sig)
	h := σv/(3.0*o.G) + o.α*o.n*o.σy/o.E*math.Pow(σv/o.σy, o.n)

	// D = b (IIm - 2/(3 εd) (1/εd - 1/h) e dyad e) + (K - b/3) Im dyad Im
	b := 2.0 * σv / (3.0 * εd)
	c := b * 2.0 / (3.0 * εd) * (1.0/εd - 1.0/h)
	for i := 0; i < o.Nsig; i++ {
		for j := 0; j < o.Nsig; j++ {
			D[i][j] = b*tsr.IIm[i][j] - c*o.e[i]*o.e[j] + (o.K-b/3.0)*tsr.Im[i]*tsr.Im[j]
		}
	}
	return
}

// ContD computes D = dσ_new/dε_new continuous. The law is smooth, thus the
// continuous operator coincides with the consistent one.
func (o *RambergOsgood) ContD(D [][]float64, s *State) (err error) {
	return o.CalcD(D, s, false)
}

// InitialGuess returns the starting point for the Newton solve given the
// equivalent stress qprev of the previous converged state. Below yield,
// qprev is a good local start; past yield the asymptotic guess is much
// closer to the root because the power term dominates.
func (o *RambergOsgood) InitialGuess(qprev, εd float64) float64 {
	if qprev <= o.σy || o.α == 0 {
		return qprev
	}
	return o.AsymptoticGuess(εd)
}

// AsymptoticGuess solves the pure power law, with the linear-elastic term
// dropped, exactly:
//  σv = ( σy^(n-1) E εd / α )^(1/n)
// Falls back to the linear-elastic estimate 3 G εd if the closed form
// overflows.
func (o *RambergOsgood) AsymptoticGuess(εd float64) float64 {
	g := math.Pow(math.Pow(o.σy, o.n-1.0)*o.E*εd/o.α, 1.0/o.n)
	if math.IsNaN(g) || math.IsInf(g, 0) {
		return 3.0 * o.G * εd
	}
	return g
}

// SolveEquivStress solves f(σv) = 0 for the equivalent stress by
// Newton-Raphson, starting from σv0. The iteration count is kept in o.Nit.
// Exceeding the iteration cap or leaving the admissible range σv ≥ 0 returns
// an error; the last iterate is never silently accepted.
func (o *RambergOsgood) SolveEquivStress(σv0, εd float64) (σv float64, err error) {
	σv = σv0
	o.Nit = 0
	r := o.fres(σv, εd)
	for {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return 0, &DomainError{Sv: σv}
		}
		if math.Abs(r) <= o.FTol {
			return
		}
		if o.Nit >= o.MaxIt {
			return 0, &NonConvError{It: o.Nit, Res: r}
		}
		σv -= r / o.dfres(σv)
		if σv < 0 || math.IsNaN(σv) || math.IsInf(σv, 0) {
			return 0, &DomainError{Sv: σv}
		}
		r = o.fres(σv, εd)
		o.Nit++
	}
}

// fres returns the residual of the power-law compliance equation
func (o *RambergOsgood) fres(σv, εd float64) float64 {
	return 2.0 / 3.0 * σv * (1.0/(2.0*o.G) + 3.0*o.α/(2.0*o.E)*math.Pow(σv/o.σy, o.n-1.0)) - εd
}

// dfres returns the derivative of fres with respect to σv
func (o *RambergOsgood) dfres(σv float64) float64 {
	return 1.0/(3.0*o.G) + o.n*o.α/o.E*math.Pow(σv/o.σy, o.n-1.0)
}
