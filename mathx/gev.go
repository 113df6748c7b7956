// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx provides special functions for the generalized extreme value
// distribution, which gonum's distuv does not implement.
package mathx // import "github.com/dsmath/go-distfit/mathx"

import "math"

// gevShapeTol is the shape magnitude below which the Gumbel limit is
// used. The k→0 limit of the GEV formulas is numerically unstable well
// before k underflows.
const gevShapeTol = 1e-8

// EulerGamma is the Euler-Mascheroni constant.
const EulerGamma = 0.5772156649015329

// GEVLogPDF returns the log of the generalized extreme value density
// with shape k, scale sigma and location mu at x. Outside the support
// it returns -Inf. The parameterization follows the usual convention
// where k > 0 gives a heavy right tail (Fréchet type) and k < 0 a
// bounded right endpoint (reversed Weibull type).
func GEVLogPDF(x, shape, scale, loc float64) float64 {
	if !(scale > 0) {
		return math.Inf(-1)
	}
	z := (x - loc) / scale
	if math.Abs(shape) < gevShapeTol {
		// Gumbel limit.
		return -math.Log(scale) - z - math.Exp(-z)
	}
	w := 1 + shape*z
	if w <= 0 {
		return math.Inf(-1)
	}
	lw := math.Log(w)
	return -math.Log(scale) - (1+1/shape)*lw - math.Exp(-lw/shape)
}

// GEVPDF returns the generalized extreme value density at x.
func GEVPDF(x, shape, scale, loc float64) float64 {
	return math.Exp(GEVLogPDF(x, shape, scale, loc))
}

// GEVCDF returns the generalized extreme value cumulative distribution
// function at x. Below the lower endpoint (k > 0) it is 0; above the
// upper endpoint (k < 0) it is 1.
func GEVCDF(x, shape, scale, loc float64) float64 {
	if !(scale > 0) {
		return math.NaN()
	}
	z := (x - loc) / scale
	if math.Abs(shape) < gevShapeTol {
		return math.Exp(-math.Exp(-z))
	}
	w := 1 + shape*z
	if w <= 0 {
		if shape > 0 {
			return 0
		}
		return 1
	}
	return math.Exp(-math.Pow(w, -1/shape))
}

// GEVQuantile returns the p'th quantile of the generalized extreme
// value distribution. p must be in [0, 1]; p=0 and p=1 map to the
// support endpoints (which may be infinite).
func GEVQuantile(p, shape, scale, loc float64) float64 {
	if p < 0 || p > 1 || !(scale > 0) {
		return math.NaN()
	}
	switch p {
	case 0:
		if shape > 0 {
			return loc - scale/shape
		}
		return math.Inf(-1)
	case 1:
		if shape < 0 {
			return loc - scale/shape
		}
		return math.Inf(1)
	}
	if math.Abs(shape) < gevShapeTol {
		return loc - scale*math.Log(-math.Log(p))
	}
	return loc + scale*(math.Pow(-math.Log(p), -shape)-1)/shape
}

// GEVMean returns the mean, which is finite only for shape < 1.
func GEVMean(shape, scale, loc float64) float64 {
	if math.Abs(shape) < gevShapeTol {
		return loc + scale*EulerGamma
	}
	if shape >= 1 {
		return math.Inf(1)
	}
	return loc + scale*(math.Gamma(1-shape)-1)/shape
}

// GEVVariance returns the variance, which is finite only for
// shape < 1/2.
func GEVVariance(shape, scale float64) float64 {
	if math.Abs(shape) < gevShapeTol {
		return scale * scale * math.Pi * math.Pi / 6
	}
	if shape >= 0.5 {
		return math.Inf(1)
	}
	g1 := math.Gamma(1 - shape)
	g2 := math.Gamma(1 - 2*shape)
	return scale * scale * (g2 - g1*g1) / (shape * shape)
}
