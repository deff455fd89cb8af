// Copyright 2026 The fenics-constitutive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
)

// Driver runs strain-driven load histories on solid models and, optionally,
// verifies the consistent operator against central differences of the
// stress update.
type Driver struct {

	// input
	nsig  int   // number of stress components
	mdl   Model // model
	model Small // model specialisation for small strains

	// settings
	CheckD bool    // check consistent matrix D
	TolD   float64 // tolerance on the D check
	VerD   bool    // verbose D check

	// results
	Res []*State    // [nincs+1] states; Res[0] is the initial state
	Eps [][]float64 // [nincs+1] applied total strains
	D   [][]float64 // consistent modulus of the last increment

	// auxiliary
	εtmp []float64
	stmp *State
}

// Init initialises the driver with a model from the database
func (o *Driver) Init(simfnk, modelname string, ndim int, pstress bool, prms fun.Prms) (err error) {
	o.nsig = 2 * ndim
	o.mdl, err = New(modelname)
	if err != nil {
		return
	}
	err = o.mdl.Init(ndim, pstress, prms)
	if err != nil {
		return
	}
	m, ok := o.mdl.(Small)
	if !ok {
		return chk.Err("model %q does not implement the small-strain interface", modelname)
	}
	o.model = m
	o.TolD = 1e-4
	o.D = la.MatAlloc(o.nsig, o.nsig)
	o.εtmp = make([]float64, o.nsig)
	o.stmp = NewState(o.nsig)
	return
}

// Run applies the sequence of total strain states εs, warm-starting each
// update with the stress of the previous increment
func (o *Driver) Run(εs [][]float64) (err error) {

	// initial state
	s, err := o.mdl.InitIntVars(make([]float64, o.nsig))
	if err != nil {
		return
	}
	o.Res = []*State{s.GetCopy()}
	o.Eps = [][]float64{make([]float64, o.nsig)}

	// increments
	σn := make([]float64, o.nsig)
	Δε := make([]float64, o.nsig)
	for k := 0; k < len(εs); k++ {

		// strain increment w.r.t previous state
		for i := 0; i < o.nsig; i++ {
			Δε[i] = εs[k][i] - o.Eps[k][i]
		}

		// update
		copy(σn, s.Sig)
		err = o.model.Update(s, εs[k], Δε, 0, 0)
		if err != nil {
			return chk.Err("Driver: Update failed in increment %d:\n%v", k, err)
		}
		err = o.model.CalcD(o.D, s, false)
		if err != nil {
			return chk.Err("Driver: CalcD failed in increment %d:\n%v", k, err)
		}

		// check consistent operator
		if o.CheckD {
			err = o.checkD(k, σn, εs[k])
			if err != nil {
				return
			}
		}

		// results
		o.Res = append(o.Res, s.GetCopy())
		εcp := make([]float64, o.nsig)
		copy(εcp, εs[k])
		o.Eps = append(o.Eps, εcp)
	}
	return
}

// checkD compares the consistent operator of increment k with central
// differences of the stress update around ε, re-running the update with the
// same warm start σn (the law is path-independent, thus the warm start
// affects the iteration count only, never the result)
func (o *Driver) checkD(k int, σn, ε []float64) (err error) {
	for i := 0; i < o.nsig; i++ {
		for j := 0; j < o.nsig; j++ {
			dnum, _ := num.DerivCentral(func(t float64, args ...interface{}) (σi float64) {
				copy(o.εtmp, ε)
				o.εtmp[j] = t
				copy(o.stmp.Sig, σn)
				e := o.model.Update(o.stmp, o.εtmp, nil, 0, 0)
				if e != nil {
					chk.Panic("checkD: stress update failed during differencing:\n%v", e)
				}
				return o.stmp.Sig[i]
			}, ε[j], 1e-6)
			if o.VerD {
				io.Pf("D[%d][%d]: ana = %23.15e  num = %23.15e\n", i, j, o.D[i][j], dnum)
			}
			if math.Abs(o.D[i][j]-dnum) > o.TolD*(1.0+math.Abs(o.D[i][j])) {
				return chk.Err("Driver: D[%d][%d] is inconsistent in increment %d: ana=%v num=%v", i, j, k, o.D[i][j], dnum)
			}
		}
	}
	return
}
