package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/canesim/canesim/sim/trace"
)

// Output formats accepted by --output.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// writeResult encodes a report in the requested format.
func writeResult(w io.Writer, v any, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (use %s or %s)", format, formatJSON, formatYAML)
	}
}

// printTraceSummary reports the evaporator multiplier search.
func printTraceSummary(w io.Writer, st *trace.SearchTrace) {
	s := trace.Summarize(st)
	fmt.Fprintln(w, "=== Evaporator Search ===")
	fmt.Fprintf(w, "Candidates evaluated : %d\n", s.TotalCandidates)
	fmt.Fprintf(w, "In target band       : %d\n", s.InBandCount)

	phases := make([]string, 0, len(s.PhaseDistribution))
	for p := range s.PhaseDistribution {
		phases = append(phases, string(p))
	}
	sort.Strings(phases)
	for _, p := range phases {
		fmt.Fprintf(w, "  %-18s : %d\n", p, s.PhaseDistribution[trace.SearchPhase(p)])
	}

	if s.TotalCandidates > 0 {
		fmt.Fprintf(w, "Final Brix range     : %.2f .. %.2f\n", s.MinFinalBrix, s.MaxFinalBrix)
		fmt.Fprintf(w, "Distance to midpoint : %.4f .. %.4f\n", s.MinDistance, s.MaxDistance)
	}
	if s.Chosen != nil {
		fmt.Fprintf(w, "Chosen (%s)   : mul1=%.4f mul2=%.4f Brix=%.2f\n",
			s.Chosen.Phase, s.Chosen.Mul1, s.Chosen.Mul2, s.Chosen.FinalBrix)
	}
}
