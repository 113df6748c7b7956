// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestBeta(t *testing.T) {
	d := Beta{Alpha: 2, Beta: 2}
	if !aeq(0.5, d.CDF(0.5)) {
		t.Errorf("Beta(2,2).CDF(0.5) = %v, want 0.5", d.CDF(0.5))
	}
	if !aeq(1.5, d.PDF(0.5)) {
		t.Errorf("Beta(2,2).PDF(0.5) = %v, want 1.5", d.PDF(0.5))
	}
	if !aeq(0.5, d.Mean()) || !aeq(0.05, d.Variance()) {
		t.Errorf("Beta(2,2) moments = %v, %v, want 0.5, 0.05", d.Mean(), d.Variance())
	}
	lo, hi := d.Bounds()
	if lo != 0 || hi != 1 {
		t.Errorf("Beta(2,2).Bounds() = %v, %v, want 0, 1", lo, hi)
	}
	for _, p := range []float64{0.01, 0.25, 0.5, 0.75, 0.99} {
		x := d.InvCDF(p)
		if !aeq(p, d.CDF(x)) {
			t.Errorf("CDF(InvCDF(%v)) = %v", p, d.CDF(x))
		}
	}
}

func TestWeibull(t *testing.T) {
	// Shape 1 is the exponential distribution with mean Scale.
	d := Weibull{Scale: 2, Shape: 1}
	if !aeq(1-math.Exp(-1), d.CDF(2)) {
		t.Errorf("Weibull(2,1).CDF(2) = %v, want 1-1/e", d.CDF(2))
	}
	if !aeq(2, d.Mean()) {
		t.Errorf("Weibull(2,1).Mean() = %v, want 2", d.Mean())
	}
	for _, p := range []float64{0.1, 0.5, 0.9} {
		if !aeq(p, d.CDF(d.InvCDF(p))) {
			t.Errorf("CDF(InvCDF(%v)) = %v", p, d.CDF(d.InvCDF(p)))
		}
	}
}

func TestTLocationScale(t *testing.T) {
	d := TLocationScale{Mu: 1, Sigma: 2, Nu: 5}
	if !aeq(1, d.Mean()) {
		t.Errorf("Mean() = %v, want 1", d.Mean())
	}
	// Var = sigma^2 * nu/(nu-2).
	if !aeq(4*5.0/3, d.Variance()) {
		t.Errorf("Variance() = %v, want %v", d.Variance(), 4*5.0/3)
	}
	if !aeq(0.5, d.CDF(1)) {
		t.Errorf("CDF(mu) = %v, want 0.5", d.CDF(1))
	}

	if m := (TLocationScale{Mu: 0, Sigma: 1, Nu: 1}).Mean(); !math.IsNaN(m) {
		t.Errorf("Mean() with nu=1 = %v, want NaN", m)
	}
	if v := (TLocationScale{Mu: 0, Sigma: 1, Nu: 2}).Variance(); !math.IsInf(v, 1) {
		t.Errorf("Variance() with nu=2 = %v, want +Inf", v)
	}
}

func TestNormal(t *testing.T) {
	if !aeq(0.5, StdNormal.CDF(0)) {
		t.Errorf("StdNormal.CDF(0) = %v, want 0.5", StdNormal.CDF(0))
	}
	if !aeq(0.8413447, StdNormal.CDF(1)) {
		t.Errorf("StdNormal.CDF(1) = %v, want 0.8413447", StdNormal.CDF(1))
	}
}

func TestGEV(t *testing.T) {
	// Shape 0 is the Gumbel distribution: CDF at the location is
	// exp(-1).
	g := GEV{Shape: 0, Scale: 1, Loc: 2}
	if !aeq(math.Exp(-1), g.CDF(2)) {
		t.Errorf("Gumbel CDF(loc) = %v, want 1/e", g.CDF(2))
	}
	if !aeq(2+0.5772156649, g.Mean()) {
		t.Errorf("Gumbel Mean() = %v, want loc+gamma", g.Mean())
	}

	for _, shape := range []float64{-0.4, 0, 0.3} {
		d := GEV{Shape: shape, Scale: 1.5, Loc: -1}
		for _, p := range []float64{0.05, 0.5, 0.95} {
			x := d.InvCDF(p)
			if !aeq(p, d.CDF(x)) {
				t.Errorf("shape %v: CDF(InvCDF(%v)) = %v", shape, p, d.CDF(x))
			}
		}
	}

	// Positive shape has a finite lower endpoint at loc - scale/shape.
	d := GEV{Shape: 0.5, Scale: 1, Loc: 0}
	if got := d.CDF(-3); got != 0 {
		t.Errorf("CDF below lower endpoint = %v, want 0", got)
	}
	if got := d.PDF(-3); got != 0 {
		t.Errorf("PDF below lower endpoint = %v, want 0", got)
	}
	// Negative shape has a finite upper endpoint.
	d = GEV{Shape: -0.5, Scale: 1, Loc: 0}
	if got := d.CDF(5); got != 1 {
		t.Errorf("CDF above upper endpoint = %v, want 1", got)
	}
}

func TestGEVRand(t *testing.T) {
	d := GEV{Shape: 0.2, Scale: 1, Loc: 0, Src: rand.NewSource(1)}
	lower := d.Loc - d.Scale/d.Shape
	for i := 0; i < 1000; i++ {
		x := d.Rand()
		if x <= lower || math.IsNaN(x) {
			t.Fatalf("Rand() = %v, outside support (> %v)", x, lower)
		}
	}
}
