// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/dsmath/go-distfit/dist"
	"github.com/dsmath/go-distfit/mathx"
)

type gevModel struct{}

func (gevModel) name() string { return "gev" }

func (gevModel) paramNames() []string { return []string{"k", "sigma", "mu"} }

func (gevModel) positive() []bool { return []bool{false, true, false} }

func (gevModel) dist(params []float64) (dist.Dist, error) {
	return dist.New("gev", params...)
}

func (gevModel) prepare(xs []float64) (likelihood, error) {
	return &gevLik{xs: xs}, nil
}

type gevLik struct {
	xs []float64
}

// start seeds the search at the Gumbel (zero shape) member whose
// moments match the sample: sigma = sqrt(6)·s/pi and
// mu = mean − gamma·sigma.
func (l *gevLik) start() []float64 {
	mean, std := stat.MeanStdDev(l.xs, nil)
	sigma := math.Sqrt(6) * std / math.Pi
	if !(sigma > 0) {
		sigma = 1
	}
	return []float64{0, sigma, mean - mathx.EulerGamma*sigma}
}

func (l *gevLik) nll(params []float64) float64 {
	var nll float64
	for _, x := range l.xs {
		ll := mathx.GEVLogPDF(x, params[0], params[1], params[2])
		if math.IsInf(ll, -1) {
			// Out of support for this shape; push the
			// minimizer back inside.
			return math.Inf(1)
		}
		nll -= ll
	}
	return nll
}

func (l *gevLik) obsLogLik(params []float64) []float64 {
	out := make([]float64, len(l.xs))
	for i, x := range l.xs {
		out[i] = mathx.GEVLogPDF(x, params[0], params[1], params[2])
	}
	return out
}
