// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// anova decomposes the variance of a response across categorical
// factors using sequential (Type I) sums of squares.
//
// Terms enter the model one at a time in the given order and each
// term's sum of squares is the drop in residual error it buys on top
// of everything before it, so with unbalanced data the decomposition
// depends on the term order. That order dependence is deliberate: the
// per-term sums always add up with the error term to the total.
package anova // import "github.com/dsmath/go-distfit/anova"

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Model selects which terms a factorial model includes.
type Model int

const (
	// Linear includes only main effects.
	Linear Model = iota
	// Interaction includes main effects and pairwise interactions.
	Interaction
	// Full includes interactions of every order.
	Full
)

// SumSquaresType selects the sum-of-squares decomposition. Only the
// sequential decomposition is implemented.
type SumSquaresType int

// Sequential is the Type I decomposition: each term is charged the
// reduction in residual error relative to the model of all preceding
// terms.
const Sequential SumSquaresType = iota

// Options configures Fit. The zero value fits a main-effects model
// with sequential sums of squares.
type Options struct {
	// Model picks a standard term set. Ignored when Terms is set.
	Model Model

	// Terms, if non-nil, gives the model terms explicitly: one row
	// per term, one column per factor, in fitting order.
	Terms [][]bool

	// FactorNames names the factors in the output table. Missing
	// names default to X1, X2, ...
	FactorNames []string

	// SumSquares selects the decomposition.
	SumSquares SumSquaresType
}

// Row is one line of an analysis-of-variance table.
type Row struct {
	Source string
	SS     float64
	DF     int
	MS     float64
	F      float64
	P      float64
}

// Stats describes the full fitted model behind a Table.
type Stats struct {
	// Coeffs are the least-squares coefficients of the full design,
	// intercept first, then each term block in order.
	Coeffs []float64

	// Fitted and Residuals decompose the response.
	Fitted    []float64
	Residuals []float64

	// R2 is the fraction of total variance the model explains.
	R2 float64

	// DFError is the residual degrees of freedom.
	DFError int

	// Levels holds each factor's labels in first-appearance order.
	Levels [][]string
}

// Table is the result of a sequential analysis of variance.
type Table struct {
	Terms []Row
	Error Row
	Total Row
	Model Stats
}

// String renders the table in the usual Source/SS/df/MS/F/p layout.
func (t *Table) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-16s %12s %4s %12s %10s %10s\n", "Source", "Sum Sq.", "d.f.", "Mean Sq.", "F", "Prob>F")
	for _, r := range t.Terms {
		fmt.Fprintf(&sb, "%-16s %12.5g %4d %12.5g %10.4g %10.4g\n", r.Source, r.SS, r.DF, r.MS, r.F, r.P)
	}
	fmt.Fprintf(&sb, "%-16s %12.5g %4d %12.5g\n", t.Error.Source, t.Error.SS, t.Error.DF, t.Error.MS)
	fmt.Fprintf(&sb, "%-16s %12.5g %4d", t.Total.Source, t.Total.SS, t.Total.DF)
	return sb.String()
}

// Fit runs a multi-way analysis of variance of y on the factors.
// factors is column-major: factors[j] holds the j-th factor's label
// for every observation. Rows with non-finite y are dropped together
// with their factor labels.
func Fit(y []float64, factors [][]string, opts *Options) (*Table, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.SumSquares != Sequential {
		return nil, fmt.Errorf("%w: got %d", ErrSumOfSquaresType, opts.SumSquares)
	}
	if len(factors) == 0 {
		return nil, fmt.Errorf("%w: no factors", ErrModelSpec)
	}
	for j, f := range factors {
		if len(f) != len(y) {
			return nil, fmt.Errorf("%w: factor %d has %d rows, response has %d", ErrDimensionMismatch, j, len(f), len(y))
		}
	}

	y, factors = dropMissing(y, factors)
	n := len(y)
	if n < 2 {
		return nil, fmt.Errorf("%w: have %d observations", ErrSampleSize, n)
	}

	terms := opts.Terms
	if terms == nil {
		terms = modelTerms(opts.Model, len(factors))
	}
	d, err := NewDesign(factors, terms)
	if err != nil {
		return nil, err
	}

	dfTotal := n - 1
	dfModel := 0
	for _, df := range d.dfs {
		dfModel += df
	}
	dfError := dfTotal - dfModel
	if dfError < 0 {
		return nil, fmt.Errorf("%w: model needs %d degrees of freedom, have %d", ErrSampleSize, dfModel, dfTotal)
	}

	var sum, sumsq float64
	for _, v := range y {
		sum += v
		sumsq += v * v
	}
	sst := sumsq - sum*sum/float64(n)

	// Sequential decomposition: refit with each term added in turn
	// and charge the term the drop in residual error.
	names := termNames(terms, opts.FactorNames)
	rows := make([]Row, len(terms))
	remaining := sst
	var coeffs []float64
	var fitted []float64
	sse := sst
	for t := range terms {
		x := d.matrix(t + 1)
		c, f, s := leastSquares(x, y)
		ss := remaining - s
		if ss < 0 {
			ss = 0
		}
		rows[t] = Row{Source: names[t], SS: ss, DF: d.dfs[t]}
		remaining = s
		coeffs, fitted, sse = c, f, s
	}

	mse := math.NaN()
	if dfError > 0 {
		mse = sse / float64(dfError)
	}
	for t := range rows {
		rows[t].MS = rows[t].SS / float64(rows[t].DF)
		if dfError > 0 && mse > 0 {
			f := rows[t].MS / mse
			rows[t].F = f
			fdist := distuv.F{D1: float64(rows[t].DF), D2: float64(dfError)}
			rows[t].P = 1 - fdist.CDF(f)
		} else {
			rows[t].F = math.NaN()
			rows[t].P = math.NaN()
		}
	}

	resid := make([]float64, n)
	for i := range y {
		resid[i] = y[i] - fitted[i]
	}
	r2 := math.NaN()
	if sst > 0 {
		r2 = 1 - sse/sst
	}

	return &Table{
		Terms: rows,
		Error: Row{Source: "Error", SS: sse, DF: dfError, MS: mse, F: math.NaN(), P: math.NaN()},
		Total: Row{Source: "Total", SS: sst, DF: dfTotal, MS: math.NaN(), F: math.NaN(), P: math.NaN()},
		Model: Stats{
			Coeffs:    coeffs,
			Fitted:    fitted,
			Residuals: resid,
			R2:        r2,
			DFError:   dfError,
			Levels:    d.Levels,
		},
	}, nil
}

// dropMissing removes observations with non-finite response values,
// keeping y and the factor columns aligned.
func dropMissing(y []float64, factors [][]string) ([]float64, [][]string) {
	keep := make([]int, 0, len(y))
	for i, v := range y {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(y) {
		return y, factors
	}
	cy := make([]float64, len(keep))
	cf := make([][]string, len(factors))
	for j := range factors {
		cf[j] = make([]string, len(keep))
	}
	for k, i := range keep {
		cy[k] = y[i]
		for j := range factors {
			cf[j][k] = factors[j][i]
		}
	}
	return cy, cf
}

// modelTerms expands a Model selector into an explicit terms matrix,
// mains first, then interactions by increasing order.
func modelTerms(m Model, nFactors int) [][]bool {
	maxOrder := 1
	switch m {
	case Interaction:
		maxOrder = 2
	case Full:
		maxOrder = nFactors
	}
	var terms [][]bool
	for order := 1; order <= maxOrder; order++ {
		combinations(nFactors, order, func(idx []int) {
			term := make([]bool, nFactors)
			for _, j := range idx {
				term[j] = true
			}
			terms = append(terms, term)
		})
	}
	return terms
}

// combinations calls f with every size-k subset of 0..n-1 in
// lexicographic order.
func combinations(n, k int, f func([]int)) {
	idx := make([]int, k)
	var rec func(start, at int)
	rec = func(start, at int) {
		if at == k {
			f(idx)
			return
		}
		for j := start; j <= n-(k-at); j++ {
			idx[at] = j
			rec(j+1, at+1)
		}
	}
	rec(0, 0)
}

// termNames labels each term, joining interacting factors with "*".
func termNames(terms [][]bool, factorNames []string) []string {
	name := func(j int) string {
		if j < len(factorNames) && factorNames[j] != "" {
			return factorNames[j]
		}
		return fmt.Sprintf("X%d", j+1)
	}
	out := make([]string, len(terms))
	for t, term := range terms {
		var parts []string
		for j, in := range term {
			if in {
				parts = append(parts, name(j))
			}
		}
		out[t] = strings.Join(parts, "*")
	}
	return out
}

// leastSquares solves min ‖y − Xb‖² by QR, falling back to a
// pseudo-inverse solve when the design is rank deficient, and returns
// the coefficients, fitted values and residual sum of squares.
func leastSquares(x *mat.Dense, y []float64) (coeffs, fitted []float64, sse float64) {
	n, p := x.Dims()
	yv := mat.NewVecDense(n, y)
	b := mat.NewVecDense(p, nil)

	var qr mat.QR
	qr.Factorize(x)
	if err := qr.SolveVecTo(b, false, yv); err != nil {
		pinvSolve(b, x, yv)
	}

	fv := mat.NewVecDense(n, nil)
	fv.MulVec(x, b)
	fitted = make([]float64, n)
	for i := 0; i < n; i++ {
		fitted[i] = fv.AtVec(i)
		r := y[i] - fitted[i]
		sse += r * r
	}
	coeffs = make([]float64, p)
	copy(coeffs, b.RawVector().Data)
	return coeffs, fitted, sse
}

// pinvSolve computes b = X⁺y via a thin SVD, zeroing singular values
// below a relative tolerance.
func pinvSolve(b *mat.VecDense, x *mat.Dense, y *mat.VecDense) {
	var svd mat.SVD
	svd.Factorize(x, mat.SVDThin)
	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	n, p := x.Dims()
	max := float64(n)
	if float64(p) > max {
		max = float64(p)
	}
	tol := 0.0
	if len(s) > 0 {
		tol = s[0] * max * 2.220446049250313e-16
	}

	// b = V · diag(1/s) · Uᵀ y over the retained singular values.
	for j := 0; j < p; j++ {
		b.SetVec(j, 0)
	}
	for k, sv := range s {
		if sv <= tol {
			continue
		}
		var dot float64
		for i := 0; i < n; i++ {
			dot += u.At(i, k) * y.AtVec(i)
		}
		dot /= sv
		for j := 0; j < p; j++ {
			b.SetVec(j, b.AtVec(j)+v.At(j, k)*dot)
		}
	}
}
