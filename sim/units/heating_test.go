package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeating_Regenerator_ReferenceTrain(t *testing.T) {
	// GIVEN primary juice at 27 °C through the regenerators
	res := Heating(HeatingInput{Kind: Regenerator, InletTemp: 27, Brix: 17.08, Flow: 211})

	// THEN three units heat it in steps
	assert.Equal(t, []float64{27, 34.52, 41.14, 46.97}, res.Temperatures)
	assert.Equal(t, []float64{0, 0.0211, 0.0421, 0.0632}, res.PressureLosses)
	assert.Equal(t, 1.58, res.Velocity)
	assert.Equal(t, 6.61, res.HeatDuty)
	assert.Equal(t, 46.97, res.ExitTemperature(27))
}

func TestHeating_HeatExchanger_ReferenceTrain(t *testing.T) {
	// GIVEN the regenerator exit feeding the exchangers
	res := Heating(HeatingInput{Kind: HeatExchanger, InletTemp: 46.97, Brix: 17.08, Flow: 211})

	// THEN eight units approach the 114 °C steam
	assert.Equal(t, []float64{46.97, 80.17, 96.92, 105.38, 109.65, 111.8, 112.89, 113.44, 113.72}, res.Temperatures)
	assert.Equal(t, []float64{0, 0.0156, 0.0313, 0.0469, 0.0626, 0.0782, 0.0938, 0.1095, 0.1251}, res.PressureLosses)
	assert.Equal(t, 0.84, res.Velocity)
	assert.Equal(t, 22.78, res.HeatDuty)
}

func TestHeating_ApproachesTargetMonotonically(t *testing.T) {
	for _, kind := range []HeaterKind{Regenerator, HeatExchanger} {
		t.Run(kind.String(), func(t *testing.T) {
			g := kind.Geometry()
			res := Heating(HeatingInput{Kind: kind, InletTemp: 30, Brix: 15, Flow: 180})

			require.Len(t, res.Temperatures, g.Units+1)
			for i := 1; i < len(res.Temperatures); i++ {
				assert.Greater(t, res.Temperatures[i], res.Temperatures[i-1])
				assert.Less(t, res.Temperatures[i], g.TargetTemp)
			}
		})
	}
}

func TestHeating_CustomGeometry_Overrides(t *testing.T) {
	// GIVEN a single-unit regenerator
	g := Regenerator.Geometry()
	g.Units = 1

	// WHEN computed
	res := Heating(HeatingInput{Kind: Regenerator, Geometry: &g, InletTemp: 27, Brix: 17.08, Flow: 211})

	// THEN only the first step appears
	assert.Equal(t, []float64{27, 34.52}, res.Temperatures)
}

func TestHeatingResult_ExitTemperature_EmptyFallsBackToInlet(t *testing.T) {
	assert.Equal(t, 42.0, HeatingResult{}.ExitTemperature(42))
}

func TestHeaterKind_String(t *testing.T) {
	assert.Equal(t, "Aquecedor", Regenerator.String())
	assert.Equal(t, "TrocadorCalor", HeatExchanger.String())
	assert.Equal(t, "HeaterKind(7)", HeaterKind(7).String())
}
