// Package trace records the candidates evaluated by the evaporator multiplier search.
// This package has no dependencies on the solver; it stores pure data types.
package trace

// SearchPhase names the phase of the multiplier search that evaluated a candidate.
type SearchPhase string

const (
	// PhaseFirstFit is the coarse grid that stops at the first in-band candidate.
	PhaseFirstFit SearchPhase = "first-fit"
	// PhaseBestFit is the exhaustive fallback grid that keeps the closest candidate.
	PhaseBestFit SearchPhase = "best-fit"
)

// CandidateRecord captures one (mul1, mul2) evaluation of the evaporator recurrence.
type CandidateRecord struct {
	Phase            SearchPhase
	Mul1             float64
	Mul2             float64
	FinalBrix        float64
	TotalConsumption float64 // kg/h
	InBand           bool
	Distance         float64 // |FinalBrix - band midpoint|
}
