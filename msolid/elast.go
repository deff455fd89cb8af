// Copyright 2026 The fenics-constitutive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/TTitscher/fenics-constitutive/tsr"
)

// SmallElasticity implements linear isotropic elasticity for small strains.
// It is embedded in the solid models of this package and provides the
// elastic stiffness
//  Cel = K * Im dyad Im + 2 * G * Psd
// which, in Lamé form, has λ+2G on the normal diagonal, λ off-diagonal and
// 2G on the shear diagonal.
//
// The 2D case (nsig=4) is plane-strain: the out-of-plane normal components
// occupy the third slot and are carried by the models; plane-stress is not
// available.
type SmallElasticity struct {

	// constants
	Nsig int // number of stress components

	// parameters
	E   float64 // Young's modulus
	Nu  float64 // ν: Poisson's coefficient
	Rho float64 // density

	// derived
	Lam float64 // λ: Lamé constant
	G   float64 // shear modulus
	K   float64 // bulk modulus
}

// Init initialises this structure
//  Note: unknown parameters are ignored here; models embedding this
//        structure police their own parameter lists
func (o *SmallElasticity) Init(ndim int, pstress bool, prms fun.Prms) (err error) {

	// number of stress components
	if ndim != 2 && ndim != 3 {
		return chk.Err("elast: ndim=%d is invalid; must be 2 or 3", ndim)
	}
	if pstress {
		return chk.Err("elast: plane-stress analyses are not available; 2D means plane-strain with σzz in the third component")
	}
	o.Nsig = 2 * ndim

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "rho":
			o.Rho = p.V
		}
	}
	if o.E <= 0 {
		return chk.Err("elast: Young's modulus must be positive. E=%g is invalid", o.E)
	}
	if o.Nu <= -1.0 || o.Nu >= 0.5 {
		return chk.Err("elast: Poisson's coefficient must be in (-1, 0.5). nu=%g is invalid", o.Nu)
	}

	// derived
	o.Lam = o.E * o.Nu / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	o.K = o.E / (3.0 * (1.0 - 2.0*o.Nu))
	return
}

// CalcD computes the elastic stiffness D = Cel
func (o SmallElasticity) CalcD(D [][]float64, s *State) (err error) {
	for i := 0; i < o.Nsig; i++ {
		for j := 0; j < o.Nsig; j++ {
			D[i][j] = o.K*tsr.Im[i]*tsr.Im[j] + 2.0*o.G*tsr.Psd[i][j]
		}
	}
	return
}

// LinElast implements linear elasticity as a solid model
type LinElast struct {
	SmallElasticity
	e []float64 // auxiliary: dev(Δε)
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(ndim int, pstress bool, prms fun.Prms) (err error) {
	err = o.SmallElasticity.Init(ndim, pstress, prms)
	if err != nil {
		return
	}
	o.e = make([]float64, o.Nsig)
	return
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E", V: 210000},
		&fun.Prm{N: "nu", V: 0.3},
	}
}

// GetRho returns density
func (o LinElast) GetRho() float64 {
	return o.Rho
}

// InitIntVars initialises internal (secondary) variables
func (o LinElast) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(o.Nsig)
	copy(s.Sig, σ)
	return
}

// Update updates stresses for given total strains. The law is
// path-independent, thus the strain increment Δε is ignored; every model of
// this package follows this total-strain contract so that batch evaluation
// needs the current strain only.
func (o *LinElast) Update(s *State, ε, Δε []float64, eid, ipid int) (err error) {
	_, εv, _ := tsr.M_devε(o.e, ε)
	for i := 0; i < o.Nsig; i++ {
		s.Sig[i] = o.K*εv*tsr.Im[i] + 2.0*o.G*o.e[i]
	}
	copy(s.EpsE, ε)
	return
}

// CalcD computes D = dσ_new/dε_new consistent with Update
func (o *LinElast) CalcD(D [][]float64, s *State, firstIt bool) (err error) {
	return o.SmallElasticity.CalcD(D, s)
}

// ContD computes D = dσ_new/dε_new continuous
func (o *LinElast) ContD(D [][]float64, s *State) (err error) {
	return o.SmallElasticity.CalcD(D, s)
}
