// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
	"sort"
)

// A Family describes a parametric distribution family: its canonical
// name, its parameters and their valid ranges, and how to construct a
// Dist from a parameter vector. New families are added by registering
// an implementation rather than by extending a dispatch switch.
type Family interface {
	// Name returns the canonical (lower-case) family name.
	Name() string

	// ParamNames returns the parameter names in the order expected
	// by New.
	ParamNames() []string

	// Default returns the default parameter vector.
	Default() []float64

	// Check validates a parameter vector against the family's
	// ranges. It fails with an error wrapping ErrParamRange.
	Check(params []float64) error

	// New constructs a distribution from a parameter vector.
	New(params []float64) (Dist, error)
}

// familySpec is the table-driven Family used for the built-in
// families.
type familySpec struct {
	name   string
	params []string
	def    []float64
	check  func(p []float64) error
	make   func(p []float64) Dist
}

func (f *familySpec) Name() string         { return f.name }
func (f *familySpec) ParamNames() []string { return append([]string(nil), f.params...) }
func (f *familySpec) Default() []float64   { return append([]float64(nil), f.def...) }

func (f *familySpec) Check(params []float64) error {
	if len(params) != len(f.params) {
		return fmt.Errorf("%w: %s takes %d parameters, got %d", ErrParamRange, f.name, len(f.params), len(params))
	}
	for _, p := range params {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: %s parameters must be finite", ErrParamRange, f.name)
		}
	}
	return f.check(params)
}

func (f *familySpec) New(params []float64) (Dist, error) {
	if err := f.Check(params); err != nil {
		return nil, err
	}
	return f.make(params), nil
}

func positive(name string, idx ...int) func(p []float64) error {
	return func(p []float64) error {
		for _, i := range idx {
			if !(p[i] > 0) {
				return fmt.Errorf("%w: %s parameter %d must be positive, got %v", ErrParamRange, name, i, p[i])
			}
		}
		return nil
	}
}

var registry = map[string]Family{}

func init() {
	for _, f := range []*familySpec{
		{
			name:   "beta",
			params: []string{"alpha", "beta"},
			def:    []float64{1, 1},
			check:  positive("beta", 0, 1),
			make:   func(p []float64) Dist { return Beta{Alpha: p[0], Beta: p[1]} },
		},
		{
			name:   "gev",
			params: []string{"k", "sigma", "mu"},
			def:    []float64{0, 1, 0},
			check:  positive("gev", 1),
			make:   func(p []float64) Dist { return GEV{Shape: p[0], Scale: p[1], Loc: p[2]} },
		},
		{
			name:   "weibull",
			params: []string{"a", "b"},
			def:    []float64{1, 1},
			check:  positive("weibull", 0, 1),
			make:   func(p []float64) Dist { return Weibull{Scale: p[0], Shape: p[1]} },
		},
		{
			name:   "tlocationscale",
			params: []string{"mu", "sigma", "nu"},
			def:    []float64{0, 1, 5},
			check:  positive("tlocationscale", 1, 2),
			make:   func(p []float64) Dist { return TLocationScale{Mu: p[0], Sigma: p[1], Nu: p[2]} },
		},
		{
			name:   "normal",
			params: []string{"mu", "sigma"},
			def:    []float64{0, 1},
			check:  positive("normal", 1),
			make:   func(p []float64) Dist { return Normal{Mu: p[0], Sigma: p[1]} },
		},
		{
			name:   "binomial",
			params: []string{"n", "p"},
			def:    []float64{1, 0.5},
			check: func(p []float64) error {
				if p[0] < 0 || p[0] != math.Trunc(p[0]) {
					return fmt.Errorf("%w: binomial trial count must be a non-negative integer, got %v", ErrParamRange, p[0])
				}
				if p[1] < 0 || p[1] > 1 {
					return fmt.Errorf("%w: binomial success probability must be in [0, 1], got %v", ErrParamRange, p[1])
				}
				return nil
			},
			make: func(p []float64) Dist { return Binomial{N: int(p[0]), P: p[1]} },
		},
	} {
		registry[f.name] = f
	}
}

// Register adds a family to the registry, replacing any existing
// family with the same name. Register is intended to be called during
// package initialization; it is not safe for concurrent use with
// Lookup or New.
func Register(f Family) {
	registry[f.Name()] = f
}

// Lookup returns the registered family with the given name.
func Lookup(name string) (Family, bool) {
	f, ok := registry[name]
	return f, ok
}

// Families returns the names of all registered families in sorted
// order.
func Families() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New constructs a distribution by family name. With no parameters it
// uses the family's defaults.
//
// It fails with ErrUnknownFamily for unregistered names and with
// ErrParamRange for parameters outside the family's valid ranges.
func New(name string, params ...float64) (Dist, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}
	if len(params) == 0 {
		params = f.Default()
	}
	return f.New(params)
}
