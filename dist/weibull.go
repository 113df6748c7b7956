// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Weibull is a two-parameter Weibull distribution on the support
// (0, +inf).
type Weibull struct {
	// Scale and Shape are the scale (often written a or λ) and
	// shape (b or k) parameters. Both must be positive.
	Scale, Shape float64

	// Src is the source of random numbers used by Rand. If Src is
	// nil, the global random source is used.
	Src rand.Source
}

func (d Weibull) dist() distuv.Weibull {
	return distuv.Weibull{K: d.Shape, Lambda: d.Scale, Src: d.Src}
}

func (d Weibull) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.dist().Prob(x)
}

func (d Weibull) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return d.dist().CDF(x)
}

func (d Weibull) InvCDF(p float64) float64 {
	return d.dist().Quantile(p)
}

func (d Weibull) Mean() float64 { return d.dist().Mean() }

func (d Weibull) Variance() float64 { return d.dist().Variance() }

func (d Weibull) Bounds() (float64, float64) {
	return 0, d.dist().Quantile(1 - tailEps)
}

func (d Weibull) Rand() float64 { return d.dist().Rand() }
