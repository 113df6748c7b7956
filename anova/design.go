// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anova

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Design is the expanded design matrix for a factorial model: an
// intercept column followed by one block of deviation-coded columns
// per model term.
type Design struct {
	// Levels holds, per factor, its distinct labels in order of
	// first appearance.
	Levels [][]string

	// Terms is the validated term specification: one row per term,
	// one column per factor, true where the factor participates.
	Terms [][]bool

	// index[j][i] is the level index of observation i on factor j.
	index [][]int

	// blocks[0] is the n×1 intercept; blocks[t+1] is the column
	// block for term t.
	blocks []*mat.Dense

	// dfs[t] is the degrees of freedom (column count) of term t.
	dfs []int

	n int
}

// NewDesign builds the design matrix for the factors and terms.
// factors is column-major: factors[j] lists the j-th factor's label
// for every observation. Each term selects the subset of factors it
// involves; terms must be ordered by non-decreasing interaction order.
//
// Each factor with L levels contributes deviation-coded columns: level
// l < L−1 maps to the l-th unit vector of length L−1 and the last
// level maps to all −1, so every contrast column sums to zero over a
// balanced factor. An interaction block is the elementwise product of
// every combination of its constituent factors' contrast columns.
func NewDesign(factors [][]string, terms [][]bool) (*Design, error) {
	if len(factors) == 0 {
		return nil, fmt.Errorf("%w: no factors", ErrModelSpec)
	}
	n := len(factors[0])
	for j, f := range factors {
		if len(f) != n {
			return nil, fmt.Errorf("%w: factor %d has %d rows, want %d", ErrDimensionMismatch, j, len(f), n)
		}
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: empty factors", ErrSampleSize)
	}

	order := 0
	for t, term := range terms {
		if len(term) != len(factors) {
			return nil, fmt.Errorf("%w: term %d selects %d factors, want %d", ErrModelSpec, t, len(term), len(factors))
		}
		k := 0
		for _, in := range term {
			if in {
				k++
			}
		}
		if k == 0 {
			return nil, fmt.Errorf("%w: term %d selects no factors", ErrModelSpec, t)
		}
		if k < order {
			return nil, fmt.Errorf("%w: term %d has order %d after order %d", ErrTermOrder, t, k, order)
		}
		order = k
	}

	d := &Design{
		Levels: make([][]string, len(factors)),
		Terms:  terms,
		index:  make([][]int, len(factors)),
		n:      n,
	}
	for j, f := range factors {
		d.Levels[j], d.index[j] = grp2idx(f)
		if len(d.Levels[j]) < 2 {
			return nil, fmt.Errorf("%w: factor %d has fewer than two levels", ErrModelSpec, j)
		}
	}

	d.blocks = make([]*mat.Dense, 0, len(terms)+1)
	intercept := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		intercept.Set(i, 0, 1)
	}
	d.blocks = append(d.blocks, intercept)

	for _, term := range terms {
		block, df := d.termBlock(term)
		d.blocks = append(d.blocks, block)
		d.dfs = append(d.dfs, df)
	}
	return d, nil
}

// grp2idx extracts the distinct labels of one factor in order of
// first appearance and maps every observation to its level index.
func grp2idx(labels []string) (levels []string, index []int) {
	seen := make(map[string]int)
	index = make([]int, len(labels))
	for i, l := range labels {
		idx, ok := seen[l]
		if !ok {
			idx = len(levels)
			seen[l] = idx
			levels = append(levels, l)
		}
		index[i] = idx
	}
	return levels, index
}

// termBlock builds the n×df column block of one term as the Hadamard
// products of every combination of the constituent factors' contrast
// columns.
func (d *Design) termBlock(term []bool) (*mat.Dense, int) {
	var parts []*mat.Dense
	df := 1
	for j, in := range term {
		if !in {
			continue
		}
		m := d.mainBlock(j)
		parts = append(parts, m)
		_, c := m.Dims()
		df *= c
	}

	block := mat.NewDense(d.n, df, nil)
	for i := 0; i < d.n; i++ {
		col := 0
		var fill func(k int, prod float64)
		fill = func(k int, prod float64) {
			if k == len(parts) {
				block.Set(i, col, prod)
				col++
				return
			}
			_, c := parts[k].Dims()
			for l := 0; l < c; l++ {
				fill(k+1, prod*parts[k].At(i, l))
			}
		}
		fill(0, 1)
	}
	return block, df
}

// mainBlock is the n×(L−1) deviation-coded matrix of one factor.
func (d *Design) mainBlock(j int) *mat.Dense {
	L := len(d.Levels[j])
	cols := L - 1
	m := mat.NewDense(d.n, cols, nil)
	for i, idx := range d.index[j] {
		if idx == L-1 {
			for c := 0; c < cols; c++ {
				m.Set(i, c, -1)
			}
		} else {
			m.Set(i, idx, 1)
		}
	}
	return m
}

// matrix assembles the cumulative design matrix holding the intercept
// and the first k term blocks, side by side.
func (d *Design) matrix(k int) *mat.Dense {
	cols := 0
	for _, b := range d.blocks[:k+1] {
		_, c := b.Dims()
		cols += c
	}
	x := mat.NewDense(d.n, cols, nil)
	at := 0
	for _, b := range d.blocks[:k+1] {
		_, c := b.Dims()
		x.Slice(0, d.n, at, at+c).(*mat.Dense).Copy(b)
		at += c
	}
	return x
}
