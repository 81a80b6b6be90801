package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canesim/canesim/sim"
	"github.com/canesim/canesim/sim/trace"
)

func TestSimulate_ReferenceScenario(t *testing.T) {
	// GIVEN the reference mill day with one 1000 m² evaporator out of service
	res, err := Simulate(referenceInput(), nil, Options{})

	// THEN every stage matches the plant report
	require.NoError(t, err)

	assert.Equal(t, 396.13, res.Extraction.CanePerHour)
	assert.Equal(t, 419.95, res.Extraction.PrimaryJuiceVolume)
	assert.Equal(t, 46.97, res.RegeneratorExitTemp)
	assert.Equal(t, 113.72, res.HeatExchangerExitTemp)
	assert.InDelta(t, 47.475, res.Sulfitation.SulfurFlow, 1e-9)
	assert.InDelta(t, 206.3282319331787, res.Flash.ExitFlow, 1e-9)
	assert.InDelta(t, 35.07579942864038, res.Decanter.SludgeFlow, 1e-9)
	assert.InDelta(t, 28.314638519384918, res.PressFilter.FiltrateVolume, 1e-9)
	assert.InDelta(t, 19.40570160650306, res.RotaryScreen.ExitBrix, 1e-9)
	assert.InDelta(t, 171.25243250453832, res.RotaryScreen.ExitFlow, 1e-9)

	assert.Equal(t, []float64{3500, 2500, 2000, 2000, 1000}, res.EvaporatorAreas)
	require.NotNil(t, res.Evaporators)
	assert.Equal(t, 60.92, res.Evaporators.FinalBrix)
	assert.GreaterOrEqual(t, res.Evaporators.FinalBrix, 60.0)
	assert.LessOrEqual(t, res.Evaporators.FinalBrix, 63.0)
	assert.Equal(t, trace.PhaseFirstFit, res.Evaporators.Phase)
	assert.Equal(t, 54.55, res.Evaporators.FinalFlow())

	assert.InDelta(t, 19.025858562529947, res.Crystallization.SugarFlow, 1e-9)
	assert.InDelta(t, 9132.412110014375, res.Crystallization.Sacks, 1e-6)
	assert.Equal(t, 69.69, res.Crystallization.SJM)
	assert.InDelta(t, 72.25517485479364, res.Crystallization.MolassesFlow, 1e-9)

	assert.Nil(t, res.Ethanol)
}

func TestSimulate_EthanolPath(t *testing.T) {
	// GIVEN the reference scenario with the distillery enabled
	res, err := Simulate(referenceInput(), nil, Options{Ethanol: true})

	// THEN the surplus juice, molasses and filtrate become hydrated ethanol
	require.NoError(t, err)
	require.NotNil(t, res.Ethanol)

	mix := res.Ethanol.Mixing
	assert.InDelta(t, 733.6576955372993, mix.MustFlow, 1e-6)
	assert.InDelta(t, 76.30707841800081, mix.MustPurity, 1e-9)
	assert.InDelta(t, 408.61548961681126, mix.DilutionWater, 1e-6)
	assert.Equal(t, 22.0, mix.MustBrix)

	ferm := res.Ethanol.Fermentation
	assert.InDelta(t, 698720.0772222623, ferm.WineVolume, 1e-3)
	assert.InDelta(t, 0.09711905662800058, ferm.EthanolFraction, 1e-9)

	dist := res.Ethanol.Distillation
	assert.InDelta(t, 64.08235632494582, dist.HydratedEthanol, 1e-6)
	assert.InDelta(t, 1537.9765517986998, dist.HydratedDaily, 1e-4)
	assert.InDelta(t, 0.9694147820981402, dist.SecondGradeEthanol, 1e-6)
	assert.InDelta(t, 183.78488577277244, dist.Residues, 1e-6)
}

func TestSimulate_InvalidInput_NoStageRuns(t *testing.T) {
	// GIVEN an input without cane tonnage
	in := referenceInput()
	in.ToneladaCana = nil

	// WHEN simulated
	res, err := Simulate(in, nil, Options{})

	// THEN validation fails first
	assert.Nil(t, res)
	ve := requireValidationError(t, err)
	assert.Equal(t, "toneladaCana", ve.Field)
}

func TestSimulate_NilInput(t *testing.T) {
	_, err := Simulate(nil, nil, Options{})

	requireValidationError(t, err)
}

func TestSimulate_PressFilterInfeasible_Aborts(t *testing.T) {
	// GIVEN a sludge loaded with more suspended solids than it can carry
	cfg := DefaultPlantConfig()
	cfg.SuspendedSolids = 2000

	// WHEN simulated
	res, err := Simulate(referenceInput(), cfg, Options{})

	// THEN the press filter stops the run
	assert.Nil(t, res)
	var ie *sim.InfeasibilityError
	require.True(t, errors.As(err, &ie), "expected *sim.InfeasibilityError, got %v", err)
	assert.Equal(t, "Filtro Prensa", ie.Stage)
}

func TestSimulate_UndefinedEvaporatorFeed_InsufficientData(t *testing.T) {
	// GIVEN a decanter that retains the whole juice as sludge
	cfg := DefaultPlantConfig()
	cfg.DecanterRetention = 1

	// WHEN simulated
	_, err := Simulate(referenceInput(), cfg, Options{})

	// THEN the evaporator feed is undefined
	require.Error(t, err)
	assert.True(t, errors.Is(err, sim.ErrInsufficientData), "got %v", err)
}

func TestSimulate_InvalidPlantConfig(t *testing.T) {
	cfg := DefaultPlantConfig()
	cfg.EvaporatorAreas = nil

	_, err := Simulate(referenceInput(), cfg, Options{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "plant config")
}

func TestSimulate_Trace_RecordsSearch(t *testing.T) {
	// GIVEN a candidate-level trace
	st := trace.NewSearchTrace(trace.TraceConfig{Level: trace.TraceLevelCandidates})

	// WHEN the reference scenario runs
	res, err := Simulate(referenceInput(), nil, Options{Trace: st})

	// THEN the chosen candidate is the reported one
	require.NoError(t, err)
	require.NotEmpty(t, st.Candidates)
	require.NotNil(t, st.Chosen)
	assert.True(t, st.Chosen.InBand)
	assert.Equal(t, res.Evaporators.Multipliers[0], st.Chosen.Mul1)
	assert.Equal(t, res.Evaporators.Multipliers[1], st.Chosen.Mul2)
}

func TestSimulate_DefaultMolasses_WhenAbsent(t *testing.T) {
	// GIVEN no molasses quality on the input
	in := referenceInput()
	in.BrixMelF = nil
	in.PurezMelF = nil

	// WHEN simulated
	res, err := Simulate(in, nil, Options{})

	// THEN the plant molasses figures give the same balance
	require.NoError(t, err)
	assert.InDelta(t, 72.25517485479364, res.Crystallization.MolassesFlow, 1e-9)
}

func TestSimulate_Deterministic(t *testing.T) {
	first, err := Simulate(referenceInput(), nil, Options{Ethanol: true})
	require.NoError(t, err)

	second, err := Simulate(referenceInput(), nil, Options{Ethanol: true})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSimulate_ZeroMillingDivisors_RejectedBeforeAnyStage(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *ProcessInput)
		field  string
	}{
		{"moisture", func(in *ProcessInput) { in.UmidadeBagaco = Float(0) }, "umidadeBagaço"},
		{"fiber", func(in *ProcessInput) { in.FibraCana = Float(0) }, "fibraCana"},
		{"primary Brix", func(in *ProcessInput) { in.BrixCaldoPrimario = Float(0) }, "brixCaldoPrimario"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// GIVEN the reference day with a zero divisor of the milling balance
			in := referenceInput()
			tc.mutate(in)

			// WHEN simulated
			res, err := Simulate(in, nil, Options{})

			// THEN the field is named instead of an infinite extraction being reported
			assert.Nil(t, res)
			ve := requireValidationError(t, err)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}
