// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/dsmath/go-distfit/dist"
)

// Result is a fitted distribution together with the uncertainty of
// its parameter estimates.
type Result struct {
	// Family is the name of the fitted family.
	Family string

	// ParamNames names the entries of Params, Lower and Upper.
	ParamNames []string

	// Params is the maximum likelihood estimate in natural space.
	Params []float64

	// Cov is the estimated covariance of Params, or nil if the
	// information matrix was singular.
	Cov *mat.SymDense

	// Lower and Upper bound the (1−Alpha) confidence interval for
	// each parameter. Entries are NaN when Cov is nil or has a
	// non-positive diagonal entry.
	Lower, Upper []float64

	// Alpha is the significance level the intervals were built at.
	Alpha float64

	// NLL is the negative log-likelihood at Params.
	NLL float64

	// N is the number of observations used, after dropping
	// non-finite values.
	N int

	// Sample is the cleaned sample the fit was computed from.
	Sample []float64

	// Converged reports whether the optimizer met its convergence
	// criteria rather than stopping at an iteration or evaluation
	// limit. Params holds the best point found either way.
	Converged bool
}

// Dist constructs the fitted distribution.
func (r *Result) Dist() (dist.Dist, error) {
	return dist.New(r.Family, r.Params...)
}

// String formats the estimates and intervals, one parameter per line.
func (r *Result) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (n=%d, nll=%.6g)", r.Family, r.N, r.NLL)
	for i, name := range r.ParamNames {
		fmt.Fprintf(&sb, "\n  %s = %.6g [%.6g, %.6g]", name, r.Params[i], r.Lower[i], r.Upper[i])
	}
	return sb.String()
}
