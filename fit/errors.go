// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import "errors"

var (
	// ErrSampleSize indicates a sample with fewer than two finite
	// observations after missing values are removed.
	ErrSampleSize = errors.New("fit: sample must contain at least two finite observations")

	// ErrDegenerateSample indicates a constant sample, for which
	// no distinct parameters can be identified.
	ErrDegenerateSample = errors.New("fit: sample is constant")

	// ErrDomain indicates sample values outside the mathematical
	// support of the requested family.
	ErrDomain = errors.New("fit: sample values outside distribution support")

	// ErrSignificance indicates a significance level outside the
	// open interval (0, 1).
	ErrSignificance = errors.New("fit: significance level must be in (0, 1)")

	// ErrUnknownFamily indicates a family name with no fitting
	// support.
	ErrUnknownFamily = errors.New("fit: unknown distribution family")
)
