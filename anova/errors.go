// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anova

import "errors"

var (
	// ErrDimensionMismatch indicates response and factor columns of
	// different lengths.
	ErrDimensionMismatch = errors.New("anova: response and factors have different lengths")

	// ErrModelSpec indicates a malformed model term specification.
	ErrModelSpec = errors.New("anova: invalid model term specification")

	// ErrTermOrder indicates model terms that are not listed in
	// non-decreasing order of interaction order.
	ErrTermOrder = errors.New("anova: terms must be ordered by increasing interaction order")

	// ErrSumOfSquaresType indicates a request for a sum-of-squares
	// decomposition other than the sequential one.
	ErrSumOfSquaresType = errors.New("anova: only sequential (Type I) sums of squares are supported")

	// ErrSampleSize indicates too few observations to estimate the
	// requested model.
	ErrSampleSize = errors.New("anova: not enough observations for the requested model")
)
