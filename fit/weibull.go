// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/dsmath/go-distfit/dist"
)

type weibullModel struct{}

func (weibullModel) name() string { return "weibull" }

func (weibullModel) paramNames() []string { return []string{"a", "b"} }

func (weibullModel) positive() []bool { return []bool{true, true} }

func (weibullModel) dist(params []float64) (dist.Dist, error) {
	return dist.New("weibull", params...)
}

func (weibullModel) prepare(xs []float64) (likelihood, error) {
	logx := make([]float64, len(xs))
	for i, x := range xs {
		if !(x > 0) {
			return nil, fmt.Errorf("%w: weibull requires positive values, got %v", ErrDomain, x)
		}
		logx[i] = math.Log(x)
	}
	return &weibullLik{xs: xs, logx: logx}, nil
}

type weibullLik struct {
	xs   []float64
	logx []float64
}

// start exploits the fact that log of a Weibull variate follows an
// extreme value distribution with scale 1/b, so the sample standard
// deviation of log x estimates pi/(b·sqrt(6)).
func (l *weibullLik) start() []float64 {
	m, _ := stats.Mean(l.logx)
	s, _ := stats.StandardDeviationSample(l.logx)
	if !(s > 0) {
		s = 1
	}
	b := math.Pi / (s * math.Sqrt(6))
	a := math.Exp(m + 0.5772156649015329/b)
	if !(a > 0) || math.IsInf(a, 0) {
		a = 1
	}
	return []float64{a, b}
}

func (l *weibullLik) nll(params []float64) float64 {
	d := distuv.Weibull{Lambda: params[0], K: params[1]}
	var nll float64
	for _, x := range l.xs {
		nll -= d.LogProb(x)
	}
	return nll
}

func (l *weibullLik) obsLogLik(params []float64) []float64 {
	d := distuv.Weibull{Lambda: params[0], K: params[1]}
	out := make([]float64, len(l.xs))
	for i, x := range l.xs {
		out[i] = d.LogProb(x)
	}
	return out
}
