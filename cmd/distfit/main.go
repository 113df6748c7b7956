// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// distfit reads newline-separated numbers from stdin, describes their
// distribution, and optionally fits parametric families to them.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/montanaflynn/stats"

	"github.com/dsmath/go-distfit/fit"
)

var (
	flagDist  = flag.String("dist", "", "fit the named `family` (one of beta, gev, weibull, tlocationscale)")
	flagAll   = flag.Bool("all", false, "fit all families and rank them by log-likelihood")
	flagAlpha = flag.Float64("alpha", 0.05, "significance level for confidence intervals")
)

func main() {
	flag.Parse()

	xs := readInput(os.Stdin)
	describe(xs)

	switch {
	case *flagAll:
		results, err := fit.Candidates(xs, *flagAlpha)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, r := range results {
			fmt.Println()
			fmt.Println(r)
		}
	case *flagDist != "":
		r, err := fit.Fit(*flagDist, xs, *flagAlpha)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println()
		fmt.Println(r)
	}
}

func describe(xs []float64) {
	mean, _ := stats.Mean(xs)
	sum, _ := stats.Sum(xs)
	fmt.Printf("N %d  sum %.6g  mean %.6g", len(xs), sum, mean)
	if gmean, err := stats.GeometricMean(xs); err == nil && !math.IsNaN(gmean) && gmean > 0 {
		fmt.Printf("  gmean %.6g", gmean)
	}
	sd, _ := stats.StandardDeviationSample(xs)
	vr, _ := stats.SampleVariance(xs)
	fmt.Printf("  std dev %.6g  variance %.6g\n", sd, vr)
	fmt.Println()

	labels := map[float64]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []float64{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%g%%ile", p)
		}
		v, err := stats.PercentileNearestRank(xs, p)
		if err != nil {
			continue
		}
		fmt.Printf("%8s %.6g\n", label, v)
	}
}

func readInput(r io.Reader) []float64 {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		value, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return xs
}
