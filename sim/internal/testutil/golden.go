// Package testutil provides shared test infrastructure for the canesim packages.
// It loads the golden evaporator dataset and provides tolerance-based float assertions.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Evaporator []GoldenEvaporatorCase `json:"evaporator"`
}

// GoldenEvaporatorCase is one solver input with the outcome of the reference calculator.
type GoldenEvaporatorCase struct {
	Name          string    `json:"name"`
	InitialBrix   float64   `json:"initial_brix"`
	JuiceFlow     float64   `json:"juice_flow"`
	InletTemp     float64   `json:"inlet_temp"`
	SteamPressure float64   `json:"steam_pressure"`
	Areas         []float64 `json:"areas"`

	Expected GoldenEvaporatorResult `json:"expected"`
}

// GoldenEvaporatorResult represents the expected solver outcome of a golden case.
type GoldenEvaporatorResult struct {
	// Rounded to 2 decimals, compared exactly
	FinalBrix float64 `json:"final_brix"`

	// Chosen multipliers, exact grid points
	Mul1  float64 `json:"mul1"`
	Mul2  float64 `json:"mul2"`
	Phase string  `json:"phase"`

	// Optional series; empty when the reference run did not record them
	EffectBrix       []float64 `json:"effect_brix,omitempty"`
	Flows            []float64 `json:"flows,omitempty"`
	TotalConsumption float64   `json:"total_consumption,omitempty"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertSliceFloat64Equal compares two series element-wise with relative tolerance.
func AssertSliceFloat64Equal(t *testing.T, name string, want, got []float64, relTol float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Errorf("%s: got %d values, want %d", name, len(got), len(want))
		return
	}
	for i := range want {
		AssertFloat64Equal(t, name, want[i], got[i], relTol)
	}
}
