// Copyright 2026 The fenics-constitutive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import "math"

// M_Tr returns the trace of a 2nd order tensor in Mandel basis
func M_Tr(a []float64) float64 {
	return a[0] + a[1] + a[2]
}

// M_Dev computes the deviator of a 2nd order tensor in Mandel basis
//  dev := a - tr(a) * Im / 3
func M_Dev(dev, a []float64) {
	tr := M_Tr(a)
	for i := 0; i < len(a); i++ {
		dev[i] = a[i] - tr*Im[i]/3.0
	}
}

// M_devε computes the deviator of a strain tensor and the strain invariants
//  devε -- (out) deviator of ε
//  eno  -- norm of devε
//  εv   -- volumetric strain invariant: εv = tr(ε)
//  εd   -- equivalent (von Mises) strain invariant: εd = sqrt(2/3) * eno ≥ 0
func M_devε(devε, ε []float64) (eno, εv, εd float64) {
	εv = M_Tr(ε)
	for i := 0; i < len(ε); i++ {
		devε[i] = ε[i] - εv*Im[i]/3.0
		eno += devε[i] * devε[i]
	}
	eno = math.Sqrt(eno)
	εd = SQ2by3 * eno
	return
}

// M_devσ computes the deviator of a stress tensor and the stress invariants
//  devσ -- (out) deviator of σ
//  sno  -- norm of devσ
//  p    -- mean pressure invariant: p = -tr(σ)/3
//  q    -- equivalent (von Mises) stress invariant: q = sqrt(3/2) * sno ≥ 0
func M_devσ(devσ, σ []float64) (sno, p, q float64) {
	tr := M_Tr(σ)
	p = -tr / 3.0
	for i := 0; i < len(σ); i++ {
		devσ[i] = σ[i] - tr*Im[i]/3.0
		sno += devσ[i] * devσ[i]
	}
	sno = math.Sqrt(sno)
	q = SQ3by2 * sno
	return
}

// M_q returns the equivalent (von Mises) stress invariant
//  q = sqrt(3/2) * norm(dev(σ)) ≥ 0
func M_q(σ []float64) float64 {
	tr := M_Tr(σ)
	var devσ_i, sno float64
	for i := 0; i < len(σ); i++ {
		devσ_i = σ[i] - tr*Im[i]/3.0
		sno += devσ_i * devσ_i
	}
	return SQ3by2 * math.Sqrt(sno)
}
