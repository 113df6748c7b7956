// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "errors"

var (
	// ErrParamRange indicates a parameter outside its valid range,
	// such as a non-positive scale.
	ErrParamRange = errors.New("dist: parameter outside valid range")

	// ErrUnknownFamily indicates a family name with no registered
	// implementation.
	ErrUnknownFamily = errors.New("dist: unknown distribution family")

	// ErrTruncationBounds indicates an invalid truncation
	// interval: the lower bound must be strictly less than the
	// upper bound and the interval must carry positive probability
	// under the parent distribution.
	ErrTruncationBounds = errors.New("dist: invalid truncation interval")

	// ErrTruncRand indicates that rejection sampling from a
	// truncated distribution failed to accept enough variates
	// within its retry budget.
	ErrTruncRand = errors.New("dist: truncated rejection sampling exhausted its retry budget")
)
