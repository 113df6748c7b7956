// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"golang.org/x/exp/rand"

	"github.com/dsmath/go-distfit/mathx"
)

// GEV is a generalized extreme value distribution.
//
// Shape > 0 gives a Fréchet-type distribution with a finite lower
// endpoint and a heavy right tail, Shape < 0 a reversed-Weibull-type
// distribution with a finite upper endpoint, and Shape = 0 the Gumbel
// distribution.
type GEV struct {
	// Shape is the shape parameter, often written k or ξ.
	Shape float64

	// Scale is the scale parameter. It must be positive.
	Scale float64

	// Loc is the location parameter.
	Loc float64

	// Src is the source of random numbers used by Rand. If Src is
	// nil, the global random source is used.
	Src rand.Source
}

func (d GEV) PDF(x float64) float64 {
	return mathx.GEVPDF(x, d.Shape, d.Scale, d.Loc)
}

func (d GEV) CDF(x float64) float64 {
	return mathx.GEVCDF(x, d.Shape, d.Scale, d.Loc)
}

func (d GEV) InvCDF(p float64) float64 {
	return mathx.GEVQuantile(p, d.Shape, d.Scale, d.Loc)
}

func (d GEV) Mean() float64 {
	return mathx.GEVMean(d.Shape, d.Scale, d.Loc)
}

func (d GEV) Variance() float64 {
	return mathx.GEVVariance(d.Shape, d.Scale)
}

func (d GEV) Bounds() (float64, float64) {
	return mathx.GEVQuantile(tailEps, d.Shape, d.Scale, d.Loc),
		mathx.GEVQuantile(1-tailEps, d.Shape, d.Scale, d.Loc)
}

// Rand generates a variate by inversion of the CDF.
func (d GEV) Rand() float64 {
	var u float64
	if d.Src == nil {
		u = rand.Float64()
	} else {
		u = rand.New(d.Src).Float64()
	}
	return mathx.GEVQuantile(u, d.Shape, d.Scale, d.Loc)
}
