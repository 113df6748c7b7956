// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// truncQuadNodes is the number of Gauss-Legendre nodes used to
// integrate moments of a truncated distribution.
const truncQuadNodes = 201

// truncRandMaxRounds bounds the number of rejection-sampling rounds in
// RandN before giving up with ErrTruncRand.
const truncRandMaxRounds = 32

// truncRandMaxBatch bounds the number of parent variates drawn in a
// single rejection round.
const truncRandMaxBatch = 1 << 22

// Truncated is a distribution conditioned on lying within a fixed
// interval [Lo, Hi]. The CDF and PDF are renormalized by the parent
// probability mass of the interval, and the mean and variance are
// computed by numerical integration rather than in closed form.
//
// A Truncated is immutable once constructed by Truncate.
type Truncated struct {
	parent   Dist
	lo, hi   float64
	flo, fhi float64
	mass     float64
	mean     float64
	variance float64
}

// Truncate returns d conditioned on the interval [lo, hi].
//
// It fails with ErrTruncationBounds if lo >= hi or if the interval
// carries no probability mass under d. The moments are integrated
// eagerly, so construction costs a few hundred PDF evaluations.
func Truncate(d Dist, lo, hi float64) (*Truncated, error) {
	if !(lo < hi) {
		return nil, fmt.Errorf("%w: lower %v must be less than upper %v", ErrTruncationBounds, lo, hi)
	}
	flo, fhi := d.CDF(lo), d.CDF(hi)
	mass := fhi - flo
	if !(mass > 0) {
		return nil, fmt.Errorf("%w: [%v, %v] has no probability mass", ErrTruncationBounds, lo, hi)
	}
	t := &Truncated{parent: d, lo: lo, hi: hi, flo: flo, fhi: fhi, mass: mass}

	// Clip the integration range to the parent's effective support
	// so infinite truncation bounds still integrate over a finite
	// interval.
	a, b := lo, hi
	plo, phi := d.Bounds()
	if math.IsInf(a, -1) || a < plo {
		a = plo
	}
	if math.IsInf(b, 1) || b > phi {
		b = phi
	}
	t.mean = quad.Fixed(func(x float64) float64 {
		return x * t.PDF(x)
	}, a, b, truncQuadNodes, nil, 0)
	t.variance = quad.Fixed(func(x float64) float64 {
		dx := x - t.mean
		return dx * dx * t.PDF(x)
	}, a, b, truncQuadNodes, nil, 0)
	return t, nil
}

// Parent returns the untruncated distribution.
func (t *Truncated) Parent() Dist { return t.parent }

func (t *Truncated) PDF(x float64) float64 {
	if x < t.lo || x > t.hi {
		return 0
	}
	return t.parent.PDF(x) / t.mass
}

func (t *Truncated) CDF(x float64) float64 {
	if x < t.lo {
		return 0
	} else if x > t.hi {
		return 1
	}
	p := (t.parent.CDF(x) - t.flo) / t.mass
	return math.Max(0, math.Min(1, p))
}

func (t *Truncated) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	x := t.parent.InvCDF(t.flo + p*t.mass)
	// Inversion through the parent quantile can land just outside
	// the interval at the extremes.
	return math.Max(t.lo, math.Min(t.hi, x))
}

func (t *Truncated) Mean() float64 { return t.mean }

func (t *Truncated) Variance() float64 { return t.variance }

func (t *Truncated) Bounds() (float64, float64) {
	plo, phi := t.parent.Bounds()
	return math.Max(t.lo, plo), math.Min(t.hi, phi)
}

// RandN generates exactly n variates by rejection sampling from the
// parent distribution, which must implement Rander.
//
// Each round draws an oversized batch of roughly 2/mass parent
// variates per variate still owed, where mass is the parent
// probability of the truncation interval, and keeps those inside
// [lo, hi]. Narrow intervals can under-deliver, so rounds repeat on
// the remaining deficit up to a fixed retry budget; only if the
// budget is exhausted does RandN fail with ErrTruncRand.
func (t *Truncated) RandN(n int) ([]float64, error) {
	r, ok := t.parent.(Rander)
	if !ok {
		return nil, fmt.Errorf("%w: parent cannot generate variates", ErrTruncRand)
	}
	out := make([]float64, 0, n)
	for round := 0; round < truncRandMaxRounds && len(out) < n; round++ {
		deficit := n - len(out)
		batch := int(math.Ceil(2 / t.mass * float64(deficit)))
		if batch < deficit {
			batch = deficit
		}
		if batch > truncRandMaxBatch {
			batch = truncRandMaxBatch
		}
		for i := 0; i < batch && len(out) < n; i++ {
			x := r.Rand()
			if x >= t.lo && x <= t.hi {
				out = append(out, x)
			}
		}
	}
	if len(out) < n {
		return nil, fmt.Errorf("%w: accepted %d of %d after %d rounds", ErrTruncRand, len(out), n, truncRandMaxRounds)
	}
	return out, nil
}
