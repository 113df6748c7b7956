// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// TLocationScale is a Student's t distribution shifted to location Mu
// and scaled by Sigma, with Nu degrees of freedom. It is a common
// heavy-tailed alternative to the normal distribution.
type TLocationScale struct {
	// Mu is the location parameter.
	Mu float64

	// Sigma is the scale parameter. It must be positive.
	Sigma float64

	// Nu is the degrees of freedom. It must be positive.
	Nu float64

	// Src is the source of random numbers used by Rand. If Src is
	// nil, the global random source is used.
	Src rand.Source
}

func (d TLocationScale) dist() distuv.StudentsT {
	return distuv.StudentsT{Mu: d.Mu, Sigma: d.Sigma, Nu: d.Nu, Src: d.Src}
}

func (d TLocationScale) PDF(x float64) float64 { return d.dist().Prob(x) }

func (d TLocationScale) CDF(x float64) float64 { return d.dist().CDF(x) }

func (d TLocationScale) InvCDF(p float64) float64 { return d.dist().Quantile(p) }

// Mean returns Mu for Nu > 1 and NaN otherwise.
func (d TLocationScale) Mean() float64 {
	if d.Nu <= 1 {
		return nan
	}
	return d.Mu
}

// Variance returns Sigma²·Nu/(Nu−2) for Nu > 2 and +Inf otherwise.
func (d TLocationScale) Variance() float64 {
	if d.Nu <= 2 {
		return inf
	}
	return d.Sigma * d.Sigma * d.Nu / (d.Nu - 2)
}

func (d TLocationScale) Bounds() (float64, float64) {
	q := d.dist()
	return q.Quantile(tailEps), q.Quantile(1 - tailEps)
}

func (d TLocationScale) Rand() float64 { return d.dist().Rand() }
