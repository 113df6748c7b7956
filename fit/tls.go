// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/dsmath/go-distfit/dist"
)

type tlsModel struct{}

func (tlsModel) name() string { return "tlocationscale" }

func (tlsModel) paramNames() []string { return []string{"mu", "sigma", "nu"} }

func (tlsModel) positive() []bool { return []bool{false, true, true} }

func (tlsModel) dist(params []float64) (dist.Dist, error) {
	return dist.New("tlocationscale", params...)
}

func (tlsModel) prepare(xs []float64) (likelihood, error) {
	return &tlsLik{xs: xs}, nil
}

type tlsLik struct {
	xs []float64
}

// start uses robust location and scale estimates: the median and the
// interquartile range scaled to a normal standard deviation, with a
// moderate starting value for the degrees of freedom.
func (l *tlsLik) start() []float64 {
	mu, _ := stats.Median(l.xs)
	iqr, _ := stats.InterQuartileRange(l.xs)
	sigma := iqr / 1.349
	if !(sigma > 0) {
		s, _ := stats.StandardDeviationSample(l.xs)
		sigma = s
	}
	if !(sigma > 0) {
		sigma = 1
	}
	return []float64{mu, sigma, 5}
}

func (l *tlsLik) nll(params []float64) float64 {
	d := distuv.StudentsT{Mu: params[0], Sigma: params[1], Nu: params[2]}
	var nll float64
	for _, x := range l.xs {
		nll -= d.LogProb(x)
	}
	return nll
}

func (l *tlsLik) obsLogLik(params []float64) []float64 {
	d := distuv.StudentsT{Mu: params[0], Sigma: params[1], Nu: params[2]}
	out := make([]float64, len(l.xs))
	for i, x := range l.xs {
		out[i] = d.LogProb(x)
	}
	return out
}
