// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/dsmath/go-distfit/dist"
)

// smallestNormal is the smallest positive normal float64.
const smallestNormal = 0x1p-1022

// Boundary observations are treated as censored at numerically safe
// thresholds: exact zeros as left-censored at sqrt(smallestNormal) and
// exact ones as right-censored at 1 − ulp(1)/2.
var betaCensorLo = math.Sqrt(smallestNormal)

const betaCensorHi = 1 - 0x1p-53

type betaModel struct{}

func (betaModel) name() string { return "beta" }

func (betaModel) paramNames() []string { return []string{"alpha", "beta"} }

func (betaModel) positive() []bool { return []bool{true, true} }

func (betaModel) dist(params []float64) (dist.Dist, error) {
	return dist.New("beta", params...)
}

func (betaModel) prepare(xs []float64) (likelihood, error) {
	for _, x := range xs {
		if x < 0 || x > 1 {
			return nil, fmt.Errorf("%w: beta requires values in [0, 1], got %v", ErrDomain, x)
		}
	}
	lik := &betaLik{xs: xs, n: len(xs)}
	for _, x := range xs {
		switch {
		case x < betaCensorLo:
			lik.nLo++
		case x > betaCensorHi:
			lik.nHi++
		default:
			lik.nInterior++
			lik.sumLogX += math.Log(x)
			lik.sumLog1mX += math.Log1p(-x)
		}
	}
	return lik, nil
}

// betaLik is the immutable likelihood context for a beta sample. The
// sufficient statistics are precomputed so every negative
// log-likelihood evaluation is O(1) in the interior sample size.
type betaLik struct {
	xs        []float64
	n         int
	nInterior int
	nLo, nHi  int
	sumLogX   float64
	sumLog1mX float64
}

// start computes the method-of-moments initial guess from the
// geometric means of x and 1−x. Boundary zeros and ones drive the
// corresponding geometric mean to zero, which the formula tolerates.
func (l *betaLik) start() []float64 {
	var slx, sl1x float64
	for _, x := range l.xs {
		slx += math.Log(x)
		sl1x += math.Log1p(-x)
	}
	n := float64(l.n)
	gx := math.Exp(slx / n)   // geometric mean of x
	g1x := math.Exp(sl1x / n) // geometric mean of 1-x
	denom := 1 - gx - g1x
	a := 0.5 * (1 - g1x) / denom
	b := 0.5 * (1 - gx) / denom
	if !(a > 0) || math.IsInf(a, 0) || math.IsNaN(a) {
		a = 1
	}
	if !(b > 0) || math.IsInf(b, 0) || math.IsNaN(b) {
		b = 1
	}
	return []float64{a, b}
}

func (l *betaLik) nll(params []float64) float64 {
	a, b := params[0], params[1]
	if !(a > 0) || !(b > 0) {
		return math.Inf(1)
	}
	nll := float64(l.nInterior)*mathext.Lbeta(a, b) - (a-1)*l.sumLogX - (b-1)*l.sumLog1mX
	if l.nLo > 0 {
		// Left-censored mass below the zero threshold.
		p := mathext.RegIncBeta(a, b, betaCensorLo)
		if !(p > 0) {
			return math.Inf(1)
		}
		nll -= float64(l.nLo) * math.Log(p)
	}
	if l.nHi > 0 {
		// Right-censored mass above the one threshold, computed
		// in the opposite tail for accuracy.
		p := mathext.RegIncBeta(b, a, 1-betaCensorHi)
		if !(p > 0) {
			return math.Inf(1)
		}
		nll -= float64(l.nHi) * math.Log(p)
	}
	return nll
}

func (l *betaLik) obsLogLik(params []float64) []float64 {
	a, b := params[0], params[1]
	lbeta := mathext.Lbeta(a, b)
	var logLo, logHi float64
	if l.nLo > 0 {
		logLo = math.Log(mathext.RegIncBeta(a, b, betaCensorLo))
	}
	if l.nHi > 0 {
		logHi = math.Log(mathext.RegIncBeta(b, a, 1-betaCensorHi))
	}
	out := make([]float64, l.n)
	for i, x := range l.xs {
		switch {
		case x < betaCensorLo:
			out[i] = logLo
		case x > betaCensorHi:
			out[i] = logHi
		default:
			out[i] = (a-1)*math.Log(x) + (b-1)*math.Log1p(-x) - lbeta
		}
	}
	return out
}
