// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat/distuv"
)

// Config adjusts the behavior of Fit. The zero value is ready to use.
type Config struct {
	// Alpha is the significance level for confidence intervals. 0
	// means 0.05.
	Alpha float64

	// Log, if non-nil, receives a trace of the fit: starting
	// point, optimizer status and final estimates.
	Log *log.Logger

	// MaxIterations and MaxEvaluations bound the simplex search. 0
	// means 1000 iterations and 4000 evaluations.
	MaxIterations  int
	MaxEvaluations int
}

// Fit computes the maximum likelihood estimate of family's parameters
// from the sample xs, with (1−alpha) confidence intervals.
//
// Non-finite observations are dropped first. Fit fails with
// ErrSampleSize if fewer than two observations remain, with
// ErrDegenerateSample if the sample is constant, with ErrDomain if
// any observation lies outside the family's support, and with
// ErrSignificance if alpha is not in (0, 1).
func Fit(family string, xs []float64, alpha float64) (*Result, error) {
	if !(alpha > 0 && alpha < 1) {
		return nil, fmt.Errorf("%w: got %v", ErrSignificance, alpha)
	}
	return Config{Alpha: alpha}.Fit(family, xs)
}

// Fit is like the package-level Fit with this configuration applied.
func (c Config) Fit(family string, xs []float64) (*Result, error) {
	alpha := c.Alpha
	if alpha == 0 {
		alpha = 0.05
	}
	if !(alpha > 0 && alpha < 1) {
		return nil, fmt.Errorf("%w: got %v", ErrSignificance, alpha)
	}
	m, ok := models[family]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}

	sample := clean(xs)
	if len(sample) < 2 {
		return nil, fmt.Errorf("%w: have %d", ErrSampleSize, len(sample))
	}
	if isConstant(sample) {
		return nil, ErrDegenerateSample
	}

	lik, err := m.prepare(sample)
	if err != nil {
		return nil, err
	}

	positive := m.positive()
	start := lik.start()
	if c.Log != nil {
		c.Log.Printf("fit %s: n=%d start=%v", family, len(sample), start)
	}

	// Positive parameters are searched as their logs so the simplex
	// never leaves the feasible region.
	s0 := toSearch(start, positive)
	problem := optimize.Problem{
		Func: func(s []float64) float64 {
			return lik.nll(fromSearch(s, positive))
		},
	}
	maxIter := c.MaxIterations
	if maxIter == 0 {
		maxIter = 1000
	}
	maxEval := c.MaxEvaluations
	if maxEval == 0 {
		maxEval = 4000
	}
	settings := &optimize.Settings{
		MajorIterations: maxIter,
		FuncEvaluations: maxEval,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-10,
			Iterations: 100,
		},
	}

	params := start
	nll := lik.nll(start)
	converged := false
	res, optErr := optimize.Minimize(problem, s0, settings, &optimize.NelderMead{})
	if res != nil && !math.IsNaN(res.F) && res.F <= nll {
		params = fromSearch(res.X, positive)
		nll = res.F
		converged = optErr == nil &&
			res.Status != optimize.IterationLimit &&
			res.Status != optimize.FunctionEvaluationLimit
	}
	if c.Log != nil {
		if res != nil {
			c.Log.Printf("fit %s: status=%v nll=%.6g params=%v", family, res.Status, nll, params)
		} else {
			c.Log.Printf("fit %s: optimize failed: %v", family, optErr)
		}
	}

	r := &Result{
		Family:     family,
		ParamNames: m.paramNames(),
		Params:     params,
		Alpha:      alpha,
		NLL:        nll,
		N:          len(sample),
		Sample:     sample,
		Converged:  converged,
	}
	r.Cov = scoreCovariance(lik, params)
	r.Lower, r.Upper = intervals(params, positive, r.Cov, alpha)
	return r, nil
}

// intervals builds per-parameter Wald confidence intervals. Positive
// parameters get log-scale intervals via the delta method, so the
// bounds stay positive. A missing covariance yields NaN bounds.
func intervals(params []float64, positive []bool, cov *mat.SymDense, alpha float64) (lower, upper []float64) {
	p := len(params)
	lower = make([]float64, p)
	upper = make([]float64, p)
	z := distuv.UnitNormal.Quantile(1 - alpha/2)
	for i := range params {
		se := math.NaN()
		if cov != nil {
			if v := cov.At(i, i); v > 0 {
				se = math.Sqrt(v)
			}
		}
		if math.IsNaN(se) {
			lower[i], upper[i] = math.NaN(), math.NaN()
			continue
		}
		if positive[i] {
			// Interval for log theta mapped back.
			w := z * se / params[i]
			lower[i] = params[i] * math.Exp(-w)
			upper[i] = params[i] * math.Exp(w)
		} else {
			lower[i] = params[i] - z*se
			upper[i] = params[i] + z*se
		}
	}
	return lower, upper
}

func toSearch(params []float64, positive []bool) []float64 {
	s := make([]float64, len(params))
	for i, v := range params {
		if positive[i] {
			s[i] = math.Log(v)
		} else {
			s[i] = v
		}
	}
	return s
}

func fromSearch(s []float64, positive []bool) []float64 {
	params := make([]float64, len(s))
	for i, v := range s {
		if positive[i] {
			params[i] = math.Exp(v)
		} else {
			params[i] = v
		}
	}
	return params
}
