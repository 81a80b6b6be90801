package sim

import "fmt"

// EffectLabels returns chart labels for a per-effect series of length n.
// Labels are numbered by series position as "<prefix> 00", "<prefix> 01"...; with includeInitial
// position 0 is labelled "Inicial" instead.
func EffectLabels(n int, prefix string, includeInitial bool) []string {
	if n <= 0 {
		return []string{}
	}
	labels := make([]string, 0, n)
	start := 0
	if includeInitial {
		labels = append(labels, "Inicial")
		start = 1
	}
	for i := start; i < n; i++ {
		labels = append(labels, fmt.Sprintf("%s %02d", prefix, i))
	}
	return labels
}
