// Copyright 2026 The fenics-constitutive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func init() {
	io.Verbose = false
}

func Test_tension01(tst *testing.T) {

	//io.Verbose = true
	chk.PrintTitle("tension01. linear limit (alp=0)")

	var sml SimpleTension
	sml.Init([]*fun.Prm{
		&fun.Prm{N: "alp", V: 0},
	})

	// zero load gives zero response
	σ33, err := sml.Sig33(0)
	if err != nil {
		tst.Errorf("Sig33(0) failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "σ33(0)", 1e-17, σ33, 0)

	// with alp=0 the plane-strain relations are the linear-elastic ones:
	//  σ33 = ν σ22   and   ε22 = (1+ν)(1-ν)/E σ22
	E, ν := 210e3, 0.3
	for _, σ22 := range []float64{10, 100, 350, 800} {
		σ33, err = sml.Sig33(σ22)
		if err != nil {
			tst.Errorf("Sig33 failed for σ22=%g:\n%v", σ22, err)
			return
		}
		chk.Scalar(tst, io.Sf("σ33(%g)", σ22), 1e-8, σ33, ν*σ22)
		ε11, ε22, err := sml.Strains(σ22)
		if err != nil {
			tst.Errorf("Strains failed for σ22=%g:\n%v", σ22, err)
			return
		}
		chk.Scalar(tst, io.Sf("ε22(%g)", σ22), 1e-12, ε22, (1.0+ν)*(1.0-ν)/E*σ22)
		chk.Scalar(tst, io.Sf("ε11(%g)", σ22), 1e-12, ε11, -ν*(1.0+ν)/E*σ22)
	}
}

func Test_tension02(tst *testing.T) {

	//io.Verbose = true
	chk.PrintTitle("tension02. nonlinear response")

	var sml SimpleTension
	sml.Init(nil)

	// the root of the plane-strain condition is indeed a root, and the
	// axial strain grows monotonically with the load
	ε22prev := 0.0
	for _, σ22 := range utl.LinSpace(50, 700, 14) {
		σ33, err := sml.Sig33(σ22)
		if err != nil {
			tst.Errorf("Sig33 failed for σ22=%g:\n%v", σ22, err)
			return
		}
		chk.Scalar(tst, io.Sf("ε33(%g)", σ22), 1e-10, sml.eps33(σ33, σ22), 0)
		if σ33 < 0 || σ33 > σ22 {
			tst.Errorf("σ33=%g is outside the bracket [0, %g]", σ33, σ22)
			return
		}
		ε11, ε22, err := sml.Strains(σ22)
		if err != nil {
			tst.Errorf("Strains failed for σ22=%g:\n%v", σ22, err)
			return
		}
		io.Pf("σ22 = %8.3f  σ33 = %10.5f  ε11 = %12.5e  ε22 = %12.5e\n", σ22, σ33, ε11, ε22)
		if ε22 <= ε22prev {
			tst.Errorf("ε22 is not monotonically increasing: ε22(%g)=%g ≤ %g", σ22, ε22, ε22prev)
			return
		}
		ε22prev = ε22
	}

	// past yield the axial strain exceeds the elastic prediction
	E, ν := 210e3, 0.3
	_, ε22, err := sml.Strains(700)
	if err != nil {
		tst.Errorf("Strains failed:\n%v", err)
		return
	}
	if ε22 <= (1.0+ν)*(1.0-ν)/E*700 {
		tst.Errorf("past yield, ε22=%g must exceed the elastic prediction", ε22)
		return
	}
}
