// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Beta is a beta distribution with shape parameters Alpha and Beta on
// the support [0, 1].
type Beta struct {
	// Alpha and Beta are the shape parameters. Both must be
	// positive.
	Alpha, Beta float64

	// Src is the source of random numbers used by Rand. If Src is
	// nil, the global random source is used.
	Src rand.Source
}

func (d Beta) dist() distuv.Beta {
	return distuv.Beta{Alpha: d.Alpha, Beta: d.Beta, Src: d.Src}
}

func (d Beta) PDF(x float64) float64 {
	if x < 0 || x > 1 {
		return 0
	}
	return d.dist().Prob(x)
}

func (d Beta) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	} else if x >= 1 {
		return 1
	}
	return d.dist().CDF(x)
}

func (d Beta) InvCDF(p float64) float64 {
	return d.dist().Quantile(p)
}

func (d Beta) Mean() float64 {
	return d.Alpha / (d.Alpha + d.Beta)
}

func (d Beta) Variance() float64 {
	s := d.Alpha + d.Beta
	return d.Alpha * d.Beta / (s * s * (s + 1))
}

func (d Beta) Bounds() (float64, float64) {
	return 0, 1
}

func (d Beta) Rand() float64 {
	return d.dist().Rand()
}
