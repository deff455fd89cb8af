// Copyright 2026 The fenics-constitutive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

// State holds the stress state at one integration point, including the data
// needed for computing the consistent tangent operator.
//
// For the nonlinear-elastic models in this package the stress is a function
// of the current total strain only; Sig from the previous converged step is
// kept because it serves as warm start for the scalar root-find.
type State struct {
	Sig  []float64 // σ: current Cauchy stress tensor [nsig]
	EpsE []float64 // ε: strain corresponding to Sig; needed by CalcD
}

// NewState allocates state structure
func NewState(nsig int) *State {
	return &State{
		Sig:  make([]float64, nsig),
		EpsE: make([]float64, nsig),
	}
}

// Set copies states
//  Note: 1) this and other states must have been pre-allocated with the same sizes
//        2) this method does not check for errors
func (o *State) Set(other *State) {
	copy(o.Sig, other.Sig)
	copy(o.EpsE, other.EpsE)
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.Sig))
	other.Set(o)
	return other
}
