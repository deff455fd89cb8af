// Copyright 2026 The fenics-constitutive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// point status codes
const (
	PointOK           = iota // converged; outputs are valid
	PointNonConverged        // iteration cap exceeded; outputs zeroed
	PointDomainError         // invalid intermediate value; outputs zeroed
)

// Status holds the outcome of the update of one integration point
type Status struct {
	Code int   // PointOK, PointNonConverged or PointDomainError
	Nit  int   // number of Newton iterations spent on this point
	Err  error // details whenever Code != PointOK
}

// Kernel evaluates one solid model over a whole set of integration points.
// Points are independent, thus the set is split into contiguous chunks
// processed by concurrent workers. Each worker owns a model instance and a
// scratch state, because models carry auxiliary buffers and are therefore
// not safe for concurrent use.
type Kernel struct {

	// constants
	Nsig int // number of stress components

	// workers
	models []Small  // [nworkers] model instances
	states []*State // [nworkers] scratch states
}

// Init initialises the kernel with nworkers instances of the named model.
// Invalid dimensions or material parameters fail here, before any per-point
// work is done.
func (o *Kernel) Init(ndim int, pstress bool, modelname string, prms fun.Prms, nworkers int) (err error) {
	if nworkers < 1 {
		nworkers = 1
	}
	o.Nsig = 2 * ndim
	o.models = make([]Small, nworkers)
	o.states = make([]*State, nworkers)
	for w := 0; w < nworkers; w++ {
		m, err := New(modelname)
		if err != nil {
			return err
		}
		err = m.Init(ndim, pstress, prms)
		if err != nil {
			return err
		}
		sm, ok := m.(Small)
		if !ok {
			return chk.Err("model %q does not implement the small-strain interface", modelname)
		}
		o.models[w] = sm
		o.states[w] = NewState(o.Nsig)
	}
	return
}

// Run updates all integration points: for point i, σprev[i] seeds the solve
// (warm start) and results are written to σ[i] and D[i]. A failing point is
// reported in the returned statuses and does not abort the other points;
// its outputs are zeroed. The caller owns all arrays; rows are written at
// disjoint indices only, thus no locking is needed.
func (o *Kernel) Run(σ [][]float64, D [][][]float64, ε, σprev [][]float64) (stats []Status) {
	npts := len(ε)
	stats = make([]Status, npts)
	if npts == 0 {
		return
	}
	nw := len(o.models)
	if nw > npts {
		nw = npts
	}
	csz := (npts + nw - 1) / nw
	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		lo, hi := w*csz, (w+1)*csz
		if hi > npts {
			hi = npts
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			o.runChunk(w, lo, hi, σ, D, ε, σprev, stats)
		}(w, lo, hi)
	}
	wg.Wait()
	return
}

// runChunk processes points [lo,hi) with worker w
func (o *Kernel) runChunk(w, lo, hi int, σ [][]float64, D [][][]float64, ε, σprev [][]float64, stats []Status) {
	mdl := o.models[w]
	st := o.states[w]
	for i := lo; i < hi; i++ {
		copy(st.Sig, σprev[i])
		err := mdl.Update(st, ε[i], nil, 0, i)
		if err == nil {
			err = mdl.CalcD(D[i], st, false)
		}
		if err != nil {
			la.VecFill(σ[i], 0)
			la.MatFill(D[i], 0)
			stats[i] = Status{Code: statusCode(err), Nit: lastNit(mdl), Err: err}
			continue
		}
		copy(σ[i], st.Sig)
		stats[i] = Status{Code: PointOK, Nit: lastNit(mdl)}
	}
}

// statusCode maps an update error to a point status code
func statusCode(err error) int {
	switch err.(type) {
	case *NonConvError:
		return PointNonConverged
	default:
		return PointDomainError
	}
}

// lastNit extracts the iteration count of the last solve, if the model
// reports one
func lastNit(m Small) int {
	if ro, ok := m.(*RambergOsgood); ok {
		return ro.Nit
	}
	return 0
}
