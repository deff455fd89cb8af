// Copyright 2026 The fenics-constitutive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/TTitscher/fenics-constitutive/ana"
	"github.com/TTitscher/fenics-constitutive/inp"
	"github.com/TTitscher/fenics-constitutive/msolid"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input parameters
	matfile, _ := io.ArgToFilename(0, "data/materials", ".mat", false)
	matname := io.ArgToString(1, "steel-ro")
	maxload := io.ArgToFloat(2, 600.0)
	npts := io.ArgToInt(3, 11)
	verbose := io.ArgToBool(4, true)

	// message
	if verbose {
		io.PfWhite("\nSimple tension sweep with the Ramberg-Osgood constitutive kernel\n\n")
		io.Pf("%v\n", io.ArgsTable(
			"materials file", "matfile", matfile,
			"material name", "matname", matname,
			"maximum load", "maxload", maxload,
			"number of load points", "npts", npts,
			"verbose", "verbose", verbose,
		))
	}

	// materials database
	ndim, pstress := 2, false
	mdb, err := inp.ReadMat(".", matfile, ndim, pstress)
	if err != nil {
		chk.Panic("cannot read materials file:\n%v", err)
	}
	mat := mdb.Get(matname)
	if mat == nil {
		chk.Panic("material %q is not in the database", matname)
	}

	// analytical solution gives the strain path corresponding to the loads
	var sol ana.SimpleTension
	sol.Init(mat.Prms)
	loads := utl.LinSpace(0, maxload, npts)
	εs := make([][]float64, npts-1)
	for k := 1; k < npts; k++ {
		ε11, ε22, err := sol.Strains(loads[k])
		if err != nil {
			chk.Panic("analytical solution failed for load %g:\n%v", loads[k], err)
		}
		εs[k-1] = []float64{ε11, ε22, 0, 0}
	}

	// run the model through the strain path, checking the tangent
	var drv msolid.Driver
	err = drv.Init("main", mat.Model, ndim, pstress, mat.Prms)
	if err != nil {
		chk.Panic("cannot initialise driver:\n%v", err)
	}
	drv.CheckD = true
	err = drv.Run(εs)
	if err != nil {
		chk.Panic("driver failed:\n%v", err)
	}

	// results
	io.Pf("%14s%14s%14s%14s%14s\n", "load", "eps22", "sig22", "sig33", "error")
	for k := 1; k < npts; k++ {
		res := drv.Res[k]
		io.Pf("%14.6g%14.6g%14.6g%14.6g%14.6g\n", loads[k], drv.Eps[k][1], res.Sig[1], res.Sig[2], res.Sig[1]-loads[k])
	}
}
