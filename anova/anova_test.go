// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anova

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// A balanced 2×2 layout with two replicates per cell. All sums of
// squares are exact by hand:
//
//	SS_A = 882, SS_B = 338, SS_AB = 18, SS_E = 8, SS_T = 1246
var (
	y22 = []float64{10, 12, 20, 22, 30, 28, 44, 46}
	a22 = []string{"a1", "a1", "a1", "a1", "a2", "a2", "a2", "a2"}
	b22 = []string{"b1", "b1", "b2", "b2", "b1", "b1", "b2", "b2"}
)

func TestTwoWayBalanced(t *testing.T) {
	tab, err := Fit(y22, [][]string{a22, b22}, &Options{
		Model:       Interaction,
		FactorNames: []string{"A", "B"},
	})
	require.NoError(t, err)
	require.Len(t, tab.Terms, 3)

	require.Equal(t, "A", tab.Terms[0].Source)
	require.Equal(t, "B", tab.Terms[1].Source)
	require.Equal(t, "A*B", tab.Terms[2].Source)

	require.InDelta(t, 882, tab.Terms[0].SS, 1e-8)
	require.InDelta(t, 338, tab.Terms[1].SS, 1e-8)
	require.InDelta(t, 18, tab.Terms[2].SS, 1e-8)
	require.InDelta(t, 8, tab.Error.SS, 1e-8)
	require.InDelta(t, 1246, tab.Total.SS, 1e-8)

	require.Equal(t, 1, tab.Terms[0].DF)
	require.Equal(t, 1, tab.Terms[1].DF)
	require.Equal(t, 1, tab.Terms[2].DF)
	require.Equal(t, 4, tab.Error.DF)
	require.Equal(t, 7, tab.Total.DF)

	require.InDelta(t, 441, tab.Terms[0].F, 1e-8)
	require.InDelta(t, 169, tab.Terms[1].F, 1e-8)
	require.InDelta(t, 9, tab.Terms[2].F, 1e-8)

	require.Less(t, tab.Terms[0].P, 1e-4)
	require.InDelta(t, 0.0399, tab.Terms[2].P, 1e-3)

	require.InDelta(t, 1-8.0/1246, tab.Model.R2, 1e-10)
	require.Equal(t, [][]string{{"a1", "a2"}, {"b1", "b2"}}, tab.Model.Levels)
	require.Len(t, tab.Model.Residuals, len(y22))
	for i := range y22 {
		require.InDelta(t, y22[i], tab.Model.Fitted[i]+tab.Model.Residuals[i], 1e-10)
	}
}

func TestOneWay(t *testing.T) {
	y := []float64{1, 2, 3, 2, 3, 4, 3, 4, 5}
	g := []string{"g1", "g1", "g1", "g2", "g2", "g2", "g3", "g3", "g3"}
	tab, err := Fit(y, [][]string{g}, nil)
	require.NoError(t, err)
	require.Len(t, tab.Terms, 1)

	require.InDelta(t, 6, tab.Terms[0].SS, 1e-10)
	require.InDelta(t, 6, tab.Error.SS, 1e-10)
	require.InDelta(t, 12, tab.Total.SS, 1e-10)
	require.Equal(t, 2, tab.Terms[0].DF)
	require.Equal(t, 6, tab.Error.DF)
	require.InDelta(t, 3, tab.Terms[0].F, 1e-10)
	// For d1=2 the upper tail is (1 + 2F/d2)^(-d2/2), exactly 1/8.
	require.InDelta(t, 0.125, tab.Terms[0].P, 1e-10)

	// Default factor name.
	require.Equal(t, "X1", tab.Terms[0].Source)
}

func TestAdditivity(t *testing.T) {
	tab, err := Fit(y22, [][]string{a22, b22}, &Options{Model: Interaction})
	require.NoError(t, err)

	ss, df := tab.Error.SS, tab.Error.DF
	for _, r := range tab.Terms {
		ss += r.SS
		df += r.DF
	}
	require.InDelta(t, tab.Total.SS, ss, 1e-8)
	require.Equal(t, tab.Total.DF, df)
}

// An unbalanced layout: with sequential sums of squares the main
// effects depend on their position, but the last-entered interaction
// term does not.
var (
	yUnb = []float64{10, 12, 11, 20, 22, 30, 44, 46, 45, 47}
	aUnb = []string{"a1", "a1", "a1", "a1", "a1", "a2", "a2", "a2", "a2", "a2"}
	bUnb = []string{"b1", "b1", "b1", "b2", "b2", "b1", "b2", "b2", "b2", "b2"}
)

func TestSequentialOrderDependence(t *testing.T) {
	ab, err := Fit(yUnb, [][]string{aUnb, bUnb}, &Options{
		Model:       Interaction,
		FactorNames: []string{"A", "B"},
	})
	require.NoError(t, err)
	ba, err := Fit(yUnb, [][]string{bUnb, aUnb}, &Options{
		Model:       Interaction,
		FactorNames: []string{"B", "A"},
	})
	require.NoError(t, err)

	// A first vs. A second: different sums of squares.
	require.Greater(t, math.Abs(ab.Terms[0].SS-ba.Terms[1].SS), 1e-6)
	// The interaction enters last either way.
	require.InDelta(t, ab.Terms[2].SS, ba.Terms[2].SS, 1e-8)
	require.InDelta(t, ab.Terms[2].P, ba.Terms[2].P, 1e-10)
	// Error and total are order-free.
	require.InDelta(t, ab.Error.SS, ba.Error.SS, 1e-8)
	require.InDelta(t, ab.Total.SS, ba.Total.SS, 1e-8)

	// The decomposition still adds up in both orders.
	for _, tab := range []*Table{ab, ba} {
		ss := tab.Error.SS
		for _, r := range tab.Terms {
			ss += r.SS
		}
		require.InDelta(t, tab.Total.SS, ss, 1e-8)
	}
}

func TestExplicitTerms(t *testing.T) {
	// Main effect of A only; B's variation lands in the error term.
	tab, err := Fit(y22, [][]string{a22, b22}, &Options{
		Terms:       [][]bool{{true, false}},
		FactorNames: []string{"A", "B"},
	})
	require.NoError(t, err)
	require.Len(t, tab.Terms, 1)
	require.InDelta(t, 882, tab.Terms[0].SS, 1e-8)
	require.InDelta(t, 1246-882, tab.Error.SS, 1e-8)
	require.Equal(t, 6, tab.Error.DF)
}

func TestDropsMissingResponses(t *testing.T) {
	y := append([]float64{math.NaN()}, y22...)
	a := append([]string{"a1"}, a22...)
	b := append([]string{"b1"}, b22...)
	tab, err := Fit(y, [][]string{a, b}, &Options{Model: Interaction})
	require.NoError(t, err)
	require.Equal(t, 7, tab.Total.DF)
	require.InDelta(t, 1246, tab.Total.SS, 1e-8)
}

func TestFitErrors(t *testing.T) {
	_, err := Fit(y22, [][]string{a22[:4]}, nil)
	require.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Fit(y22, nil, nil)
	require.ErrorIs(t, err, ErrModelSpec)

	_, err = Fit(y22, [][]string{a22, b22}, &Options{SumSquares: SumSquaresType(3)})
	require.ErrorIs(t, err, ErrSumOfSquaresType)

	// Interaction-before-main violates the term ordering contract.
	_, err = Fit(y22, [][]string{a22, b22}, &Options{
		Terms: [][]bool{{true, true}, {true, false}},
	})
	require.ErrorIs(t, err, ErrTermOrder)

	// A saturated model with no residual degrees of freedom is
	// allowed, but an over-saturated one is not.
	_, err = Fit([]float64{10, 20, 30},
		[][]string{{"a1", "a1", "a2"}, {"b1", "b2", "b1"}},
		&Options{Model: Interaction})
	require.ErrorIs(t, err, ErrSampleSize)
}

func TestSaturatedModel(t *testing.T) {
	// One replicate per cell: zero error degrees of freedom, so F
	// and p are undefined but the decomposition still works.
	y := []float64{10, 20, 30, 44}
	a := []string{"a1", "a1", "a2", "a2"}
	b := []string{"b1", "b2", "b1", "b2"}
	tab, err := Fit(y, [][]string{a, b}, &Options{Model: Interaction})
	require.NoError(t, err)
	require.Equal(t, 0, tab.Error.DF)
	require.InDelta(t, 0, tab.Error.SS, 1e-8)
	require.True(t, math.IsNaN(tab.Terms[0].F))
	require.True(t, math.IsNaN(tab.Terms[0].P))
}

func BenchmarkTwoWay(b *testing.B) {
	factors := [][]string{a22, b22}
	opts := &Options{Model: Interaction}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Fit(y22, factors, opts); err != nil {
			b.Fatal(err)
		}
	}
}
