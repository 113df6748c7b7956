// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fit estimates distribution parameters by maximum likelihood.
//
// Fit drives a derivative-free simplex search over a log-transformed
// parameter space (so positivity constraints hold throughout the
// search) and derives confidence intervals from the curvature of the
// likelihood at the optimum using the delta method on the log
// transform.
package fit // import "github.com/dsmath/go-distfit/fit"

import (
	"sort"

	"github.com/dsmath/go-distfit/dist"
)

// A model describes how to fit one distribution family: parameter
// naming, which parameters are constrained positive, and how to build
// a likelihood for a concrete sample.
type model interface {
	name() string
	paramNames() []string

	// positive reports, per parameter, whether it is constrained
	// to (0, +inf). Positive parameters are searched in log space
	// and get log-scale confidence intervals.
	positive() []bool

	// prepare validates the sample against the family's support
	// and builds an immutable likelihood context over it. All
	// sample statistics the likelihood needs (counts, log sums,
	// boundary tallies) are computed here, once, and carried
	// explicitly rather than captured by closures.
	prepare(xs []float64) (likelihood, error)

	// dist constructs the distribution object for a fitted
	// parameter vector.
	dist(params []float64) (dist.Dist, error)
}

// A likelihood evaluates the negative log-likelihood of one fixed
// sample under natural-space parameters.
type likelihood interface {
	// start returns a closed-form moment-based initial guess in
	// natural space.
	start() []float64

	// nll returns the negative log-likelihood at params. It
	// returns +Inf for invalid parameter regions so the minimizer
	// steps back inside the domain.
	nll(params []float64) float64

	// obsLogLik returns the per-observation log-likelihood terms
	// at params. The slice has one entry per observation,
	// including censored boundary observations. It is used to
	// assemble the score cross-product information matrix for
	// confidence intervals.
	obsLogLik(params []float64) []float64
}

var models = map[string]model{
	"beta":           betaModel{},
	"gev":            gevModel{},
	"weibull":        weibullModel{},
	"tlocationscale": tlsModel{},
}

// Families returns the names of all fittable families in sorted
// order.
func Families() []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
