// Package numeric holds the small numeric primitives shared by every unit-operation model:
// half-up rounding, linear spacing and clamped piecewise-linear interpolation.
//
// The functions here reproduce the exact floating-point behavior the plant reports were
// calibrated against, so they deliberately avoid math.Round (half away from zero) and any
// extrapolation.
package numeric

import "math"

// epsilon nudges values sitting just under a rounding boundary (2^-52).
const epsilon = 0x1p-52

// RoundTo rounds v to n decimals, half-up, after adding epsilon.
// Half-up means toward +Inf on exact halves, so RoundTo(-2.5, 0) == -2.
func RoundTo(v float64, n int) float64 {
	scale := math.Pow(10, float64(n))
	return roundHalfUp((v+epsilon)*scale) / scale
}

func roundHalfUp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}

// Linspace returns num evenly spaced points over [start, stop], both ends inclusive.
// num == 1 returns [start]; num <= 0 returns an empty slice.
func Linspace(start, stop float64, num int) []float64 {
	if num <= 0 {
		return []float64{}
	}
	if num == 1 {
		return []float64{start}
	}
	step := (stop - start) / float64(num-1)
	out := make([]float64, num)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Interp1D linearly interpolates y at x over the ascending pairs (xs, ys).
// x at or below xs[0] returns ys[0]; x at or above the last xs returns the last ys.
// Empty tables return 0.
func Interp1D(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if n == 0 || len(ys) == 0 {
		return 0
	}
	if len(ys) < n {
		n = len(ys)
	}
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	i := 0
	for xs[i+1] < x {
		i++
	}
	x0, x1 := xs[i], xs[i+1]
	y0, y1 := ys[i], ys[i+1]
	t := (x - x0) / (x1 - x0)
	return y0 + t*(y1-y0)
}

// Interp1DSlice applies Interp1D to every element of x, preserving order.
func Interp1DSlice(xs, ys, x []float64) []float64 {
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = Interp1D(xs, ys, xi)
	}
	return out
}
