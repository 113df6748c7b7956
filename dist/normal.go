// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type Normal struct {
	Mu, Sigma float64

	// Src is the source of random numbers used by Rand. If Src is
	// nil, the global random source is used.
	Src rand.Source
}

// StdNormal is the standard normal distribution.
var StdNormal = Normal{Mu: 0, Sigma: 1}

func (d Normal) dist() distuv.Normal {
	return distuv.Normal{Mu: d.Mu, Sigma: d.Sigma, Src: d.Src}
}

func (d Normal) PDF(x float64) float64 { return d.dist().Prob(x) }

func (d Normal) CDF(x float64) float64 { return d.dist().CDF(x) }

func (d Normal) InvCDF(p float64) float64 { return d.dist().Quantile(p) }

func (d Normal) Mean() float64 { return d.Mu }

func (d Normal) Variance() float64 { return d.Sigma * d.Sigma }

func (d Normal) Bounds() (float64, float64) {
	q := d.dist()
	return q.Quantile(tailEps), q.Quantile(1 - tailEps)
}

func (d Normal) Rand() float64 { return d.dist().Rand() }
