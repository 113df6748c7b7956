// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func TestBinomial(t *testing.T) {
	d := Binomial{N: 5, P: 0.2}
	for k, want := range map[float64]float64{
		-1000: 0,
		-1:    0,
		0:     0.32768,
		1:     0.4096,
		2:     0.2048,
		3:     0.0512,
		4:     0.0064,
		5:     math.Pow(d.P, 5),
		6:     0,
		1000:  0,
	} {
		if got := d.PDF(k); !aeq(want, got) {
			t.Errorf("PDF(%v) = %v, want %v", k, got, want)
		}
	}

	// The CDF is the running sum of the PMF.
	sum := 0.0
	for k := 0; k <= d.N; k++ {
		sum += d.PDF(float64(k))
		if got := d.CDF(float64(k)); !aeq(sum, got) {
			t.Errorf("CDF(%d) = %v, want %v", k, got, sum)
		}
	}
	if got := d.CDF(-0.5); got != 0 {
		t.Errorf("CDF(-0.5) = %v, want 0", got)
	}
	if got := d.CDF(100); got != 1 {
		t.Errorf("CDF(100) = %v, want 1", got)
	}

	if !aeq(1, d.Mean()) || !aeq(0.8, d.Variance()) {
		t.Errorf("moments = %v, %v, want 1, 0.8", d.Mean(), d.Variance())
	}

	for _, p := range []float64{0.1, 0.33, 0.5, 0.9, 1} {
		k := d.InvCDF(p)
		if d.CDF(k) < p {
			t.Errorf("InvCDF(%v) = %v, but CDF there is %v", p, k, d.CDF(k))
		}
		if k > 0 && d.CDF(k-1) >= p {
			t.Errorf("InvCDF(%v) = %v is not minimal", p, k)
		}
	}
}

func TestBinomialNormalApprox(t *testing.T) {
	d := Binomial{N: 30, P: 0.5}
	norm := d.NormalApprox()
	for k := 10; k <= 20; k++ {
		b := d.PDF(float64(k))
		n := norm.CDF(float64(k)+0.5) - norm.CDF(float64(k)-0.5)

		// The normal approximation isn't actually very close,
		// even with high N and P near 0.5, so we only check
		// the center of the distribution and we're pretty
		// lax.
		if err := math.Abs(b/n - 1); err > 0.01 {
			t.Errorf("want %v ≅ %v at %d", b, n, k)
		}
	}
}
