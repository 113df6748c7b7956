// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"errors"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Candidates fits every named family to xs concurrently and returns
// the results ordered by negative log-likelihood, best first. With no
// families named it tries all fittable families. Families whose
// support excludes the sample are skipped; any other fitting error
// aborts the whole call.
func Candidates(xs []float64, alpha float64, families ...string) ([]*Result, error) {
	if len(families) == 0 {
		families = Families()
	}

	results := make([]*Result, len(families))
	var g errgroup.Group
	for i, family := range families {
		i, family := i, family
		g.Go(func() error {
			r, err := Fit(family, xs, alpha)
			if errors.Is(err, ErrDomain) {
				return nil
			}
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := results[:0]
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NLL < out[j].NLL })
	return out, nil
}
