// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
)

// Binomial is a binomial distribution. Although discrete, it
// implements Dist by treating the PMF as a density concentrated on
// the integers, so it can be constructed through the family registry
// alongside the continuous distributions. Truncate assumes a
// continuous parent and does not apply.
type Binomial struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64

	// Src is the source of random numbers used by Rand. If Src is
	// nil, the global random source is used.
	Src rand.Source
}

// PDF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d Binomial) PDF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	return math.Exp(d.logPMF(ki))
}

func (d Binomial) logPMF(k int) float64 {
	if d.P == 0 {
		if k == 0 {
			return 0
		}
		return math.Inf(-1)
	}
	if d.P == 1 {
		if k == d.N {
			return 0
		}
		return math.Inf(-1)
	}
	n := float64(d.N)
	kf := float64(k)
	lchoose, _ := math.Lgamma(n + 1)
	l1, _ := math.Lgamma(kf + 1)
	l2, _ := math.Lgamma(n - kf + 1)
	return lchoose - l1 - l2 + kf*math.Log(d.P) + (n-kf)*math.Log(1-d.P)
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d Binomial) CDF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 {
		return 0
	} else if ki >= d.N {
		return 1
	}
	// P(X <= k) is the regularized incomplete beta function
	// I_{1-p}(n-k, k+1).
	return mathext.RegIncBeta(float64(d.N-ki), float64(ki)+1, 1-d.P)
}

// InvCDF returns the smallest k such that CDF(k) >= p.
func (d Binomial) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	sum := 0.0
	for k := 0; k <= d.N; k++ {
		sum += math.Exp(d.logPMF(k))
		if sum >= p {
			return float64(k)
		}
	}
	return float64(d.N)
}

func (d Binomial) Mean() float64 {
	return float64(d.N) * d.P
}

func (d Binomial) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

func (d Binomial) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

// Rand generates the number of successes in N Bernoulli trials.
func (d Binomial) Rand() float64 {
	var r *rand.Rand
	if d.Src != nil {
		r = rand.New(d.Src)
	}
	k := 0
	for i := 0; i < d.N; i++ {
		var u float64
		if r == nil {
			u = rand.Float64()
		} else {
			u = r.Float64()
		}
		if u < d.P {
			k++
		}
	}
	return float64(k)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PDF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d Binomial) NormalApprox() Normal {
	return Normal{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance()), Src: d.Src}
}
