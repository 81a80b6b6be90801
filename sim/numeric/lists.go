package numeric

// RoundAll rounds every element to n decimals.
func RoundAll(xs []float64, n int) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = RoundTo(v, n)
	}
	return out
}

// Thousandths converts kg-based values to tonnes (divide by 1000), rounded to 2 decimals.
func Thousandths(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = RoundTo(v/1000, 2)
	}
	return out
}

// MCAToKgf converts metres of water column to kgf/cm².
func MCAToKgf(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = v * 0.01
	}
	return out
}

// BarToKgf converts a pressure in bar to kgf/cm².
func BarToKgf(v float64) float64 { return v * 1.01972 }

// FiniteOr returns v when it is a finite number, fallback otherwise.
func FiniteOr(v, fallback float64) float64 {
	if v != v || v > maxFloat || v < -maxFloat {
		return fallback
	}
	return v
}

// NonZero substitutes floor for values whose magnitude is below floor, for use as a divisor.
// NaN passes through.
func NonZero(v, floor float64) float64 {
	if v < floor && v > -floor {
		return floor
	}
	return v
}

const maxFloat = 1.7976931348623157e308
