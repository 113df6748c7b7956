// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// scoreStep is the relative step for the central differences used to
// form per-observation scores, cbrt of the machine epsilon.
const scoreStep = 6.0554544523933395e-06

// scoreCovariance estimates the covariance of the parameter estimates
// as the inverse of the outer-product-of-scores information matrix
//
//	I = sum_i g_i g_i^T
//
// where g_i is the gradient of observation i's log-likelihood at
// params, computed by central differences. It returns nil when the
// information matrix is singular or any score is non-finite.
func scoreCovariance(lik likelihood, params []float64) *mat.SymDense {
	p := len(params)
	n := len(lik.obsLogLik(params))
	if n == 0 {
		return nil
	}

	// scores[i*p+j] is d logL_i / d theta_j.
	scores := make([]float64, n*p)
	theta := make([]float64, p)
	for j := 0; j < p; j++ {
		h := scoreStep * math.Max(math.Abs(params[j]), 1)
		copy(theta, params)
		theta[j] = params[j] + h
		hi := lik.obsLogLik(theta)
		theta[j] = params[j] - h
		lo := lik.obsLogLik(theta)
		for i := 0; i < n; i++ {
			g := (hi[i] - lo[i]) / (2 * h)
			if math.IsNaN(g) || math.IsInf(g, 0) {
				return nil
			}
			scores[i*p+j] = g
		}
	}

	info := mat.NewSymDense(p, nil)
	for i := 0; i < n; i++ {
		g := scores[i*p : (i+1)*p]
		for j := 0; j < p; j++ {
			for k := j; k < p; k++ {
				info.SetSym(j, k, info.At(j, k)+g[j]*g[k])
			}
		}
	}

	var chol mat.Cholesky
	if !chol.Factorize(info) {
		return nil
	}
	cov := mat.NewSymDense(p, nil)
	if err := chol.InverseTo(cov); err != nil {
		return nil
	}
	return cov
}
