// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x.
	CDF(x float64) float64

	// InvCDF returns the inverse of the CDF for p. That is,
	// InvCDF(CDF(x)) = x. The value of p must be in [0, 1].
	InvCDF(p float64) float64

	// Mean returns the mean of this distribution, which may be
	// infinite or NaN if it does not exist.
	Mean() float64

	// Variance returns the variance of this distribution, which
	// may be infinite or NaN if it does not exist.
	Variance() float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// A Rander is a distribution that can generate random variates.
type Rander interface {
	Rand() float64
}
