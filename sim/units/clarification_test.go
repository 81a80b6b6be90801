package units

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canesim/canesim/sim"
)

func TestChemicalDosing_ReferenceFlow(t *testing.T) {
	s := Sulfitation(211, DefaultSulfitationParams())
	assert.InDelta(t, 47.475, s.SulfurFlow, 1e-12)
	assert.InDelta(t, 47.37876188991112, s.OxygenFlow, 1e-12)

	l := Liming(211, DefaultLimingParams())
	assert.InDelta(t, 137.15, l.LimeFlow, 1e-12)
	assert.InDelta(t, 6.17175, l.WaterFlow, 1e-12)
}

func TestClarificationChain_ReferenceJuice(t *testing.T) {
	// GIVEN juice leaving the exchangers at 113.72 °C
	flash := FlashTank(211, 17.08, 113.72, DefaultFlashExitTemp)
	assert.InDelta(t, 206.3282319331787, flash.ExitFlow, 1e-9)
	assert.InDelta(t, 192.74784414870544, flash.ExitVolume, 1e-9)
	assert.InDelta(t, 17.46673233339754, flash.ExitBrix, 1e-9)
	assert.InDelta(t, 211-flash.ExitFlow, flash.Evaporated, 1e-9)

	// WHEN it passes the rotary filter, the decanter and the rotary screen
	rotary := RotaryFilter(flash.ExitFlow, flash.ExitBrix)
	assert.Equal(t, flash.ExitFlow, rotary.ExitFlow)
	assert.InDelta(t, flash.ExitBrix, rotary.ExitBrix, 1e-12)

	dec := Decanter(rotary.ExitFlow, rotary.ExitBrix, DefaultDecanterRetention, 8, 16.11)
	assert.InDelta(t, 35.07579942864038, dec.SludgeFlow, 1e-9)
	assert.InDelta(t, 171.25243250453832, dec.JuiceFlow, 1e-9)
	assert.InDelta(t, 158.83465932930284, dec.JuiceVolume, 1e-9)
	assert.InDelta(t, 19.40570160650306, dec.JuiceBrix, 1e-9)
	assert.InDelta(t, 83.01683869343515, dec.JuicePurity, 1e-9)

	screen := RotaryScreen(dec.JuiceFlow, dec.JuiceBrix)

	// THEN the screen passes mass and solids through
	assert.Equal(t, dec.JuiceFlow, screen.ExitFlow)
	assert.InDelta(t, dec.JuiceBrix, screen.ExitBrix, 1e-12)
	assert.InDelta(t, dec.JuiceVolume, screen.ExitVolume, 1e-9)
}

func TestPressFilter_ReferenceSludge(t *testing.T) {
	res, err := PressFilter(35.07579942864038, DefaultSuspendedSolids, 8, DefaultCakeSolids)

	require.NoError(t, err)
	assert.InDelta(t, 28.314638519384918, res.FiltrateVolume, 1e-9)
	assert.InDelta(t, 9.07390375521131, res.FiltrateBrix, 1e-9)
	assert.InDelta(t, 5.644077904785873, res.CakeFlow, 1e-9)
}

func TestPressFilter_Infeasible(t *testing.T) {
	tests := []struct {
		name   string
		solids float64
		reason string
	}{
		{"suspended solids exceed the feed", 2000, "negative or zero liquid mass"},
		{"cake heavier than the feed", 400, "filtered mass <= 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// WHEN the sludge cannot be dewatered
			res, err := PressFilter(10, tt.solids, 8, 0.3)

			// THEN a typed infeasibility error comes back with an empty result
			require.Error(t, err)
			var inf *sim.InfeasibilityError
			require.True(t, errors.As(err, &inf))
			assert.Equal(t, "Filtro Prensa", inf.Stage)
			assert.Contains(t, inf.Reason, tt.reason)
			assert.Equal(t, PressFilterResult{}, res)
		})
	}
}

func TestCrystallization_ReferenceSyrup(t *testing.T) {
	res := Crystallization(CrystallizationInput{
		SyrupFlow:      54.55,
		SyrupBrix:      60.92,
		SyrupPol:       50.05,
		MolassesBrix:   67.92,
		MolassesPurity: 58.26,
		Availability:   24,
	})

	assert.InDelta(t, 19.025858562529947, res.SugarFlow, 1e-9)
	assert.InDelta(t, 9132.412110014375, res.Sacks, 1e-6)
	assert.Equal(t, 69.69, res.SJM)
	assert.InDelta(t, 72.25517485479364, res.MolassesFlow, 1e-9)
}
