// Copyright 2026 The fenics-constitutive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements constitutive models for solids at the level of
// one integration point: given strains, the models compute stresses and the
// consistent tangent operator D = dσ/dε required by an outer nonlinear solver
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model defines the interface for solid models
type Model interface {
	Init(ndim int, pstress bool, prms fun.Prms) error // initialises model
	InitIntVars(σ []float64) (*State, error)          // initialises AND allocates internal (secondary) variables
	GetPrms() fun.Prms                                // gets (an example) of parameters
	GetRho() float64                                  // returns density
}

// Small defines solid models for small strain analyses
type Small interface {
	Update(s *State, ε, Δε []float64, eid, ipid int) error // updates stresses for given strains
	CalcD(D [][]float64, s *State, firstIt bool) error     // computes D = dσ_new/dε_new consistent with Update
	ContD(D [][]float64, s *State) error                   // computes D = dσ_new/dε_new continuous
}

// New returns a new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'msolid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
