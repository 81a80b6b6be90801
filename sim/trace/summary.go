package trace

import "math"

// TraceSummary aggregates statistics from a SearchTrace.
type TraceSummary struct {
	TotalCandidates   int
	InBandCount       int
	PhaseDistribution map[SearchPhase]int // phase → candidates evaluated
	MinDistance       float64
	MaxDistance       float64
	MinFinalBrix      float64
	MaxFinalBrix      float64
	Chosen            *CandidateRecord
}

// Summarize computes aggregate statistics from a SearchTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SearchTrace) *TraceSummary {
	summary := &TraceSummary{
		PhaseDistribution: make(map[SearchPhase]int),
	}
	if st == nil {
		return summary
	}
	summary.Chosen = st.Chosen
	summary.TotalCandidates = len(st.Candidates)
	if len(st.Candidates) == 0 {
		return summary
	}

	summary.MinDistance, summary.MinFinalBrix = math.Inf(1), math.Inf(1)
	summary.MaxDistance, summary.MaxFinalBrix = math.Inf(-1), math.Inf(-1)
	for _, c := range st.Candidates {
		summary.PhaseDistribution[c.Phase]++
		if c.InBand {
			summary.InBandCount++
		}
		summary.MinDistance = math.Min(summary.MinDistance, c.Distance)
		summary.MaxDistance = math.Max(summary.MaxDistance, c.Distance)
		summary.MinFinalBrix = math.Min(summary.MinFinalBrix, c.FinalBrix)
		summary.MaxFinalBrix = math.Max(summary.MaxFinalBrix, c.FinalBrix)
	}

	return summary
}
