package trace

// TraceLevel controls the verbosity of search tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelCandidates captures every candidate evaluated by the search.
	TraceLevelCandidates TraceLevel = "candidates"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:       true,
	TraceLevelCandidates: true,
	"":                   true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SearchTrace collects candidate records during one evaporator solve.
type SearchTrace struct {
	Config     TraceConfig
	Candidates []CandidateRecord
	Chosen     *CandidateRecord
}

// NewSearchTrace creates a SearchTrace ready for recording.
func NewSearchTrace(config TraceConfig) *SearchTrace {
	return &SearchTrace{
		Config:     config,
		Candidates: make([]CandidateRecord, 0),
	}
}

// Enabled reports whether records should be collected. Safe on a nil trace.
func (st *SearchTrace) Enabled() bool {
	return st != nil && st.Config.Level == TraceLevelCandidates
}

// RecordCandidate appends a candidate record.
func (st *SearchTrace) RecordCandidate(record CandidateRecord) {
	st.Candidates = append(st.Candidates, record)
}

// RecordChoice stores the candidate the search settled on.
func (st *SearchTrace) RecordChoice(record CandidateRecord) {
	st.Chosen = &record
}
