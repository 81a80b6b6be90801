package evaporator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canesim/canesim/sim/steam"
)

func TestCascade_ThreeEffects_RowsMatchReference(t *testing.T) {
	// GIVEN the odd grouping at 2.5 bar
	c := Cascade(3, 2.5, DefaultKeyInitial, DefaultKeyFinal, steam.DefaultTable())

	// THEN four rows with a decreasing pressure schedule
	require.Len(t, c.Rows, 4)
	wantP := []float64{2.5, 2.5, 1.753, 1.081}
	wantT := []float64{128.15, 128.15, 116.76, 101.39}
	wantH := []float64{644.8, 644.8, 641.87, 637.85}
	wantL := []float64{512.9, 512.9, 523.15, 535.72}
	for i, row := range c.Rows {
		assert.Equal(t, i+1, row.Effect)
		assert.Equal(t, wantP[i], row.Pressure, "pressure %d", i)
		assert.Equal(t, wantT[i], row.Temperature, "temperature %d", i)
		assert.Equal(t, wantH[i], row.Enthalpy, "enthalpy %d", i)
		assert.Equal(t, wantL[i], row.LatentHeat, "latent heat %d", i)
	}
	assert.Equal(t, 2.24, c.TotalDrop)
	assert.InDeltaSlice(t, []float64{0, 1.0 / 3, 0.3}, c.RelativeDrops, 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0.7466666666666667, 0.672}, c.Drops, 1e-12)
}

func TestCascade_TwoEffects_RowsMatchReference(t *testing.T) {
	c := Cascade(2, 2.5, DefaultKeyInitial, DefaultKeyFinal, steam.DefaultTable())

	require.Len(t, c.Rows, 3)
	assert.Equal(t, 1.56, c.Rows[2].Pressure)
	assert.Equal(t, 113.19, c.Rows[2].Temperature)
	assert.Equal(t, 640.9, c.Rows[2].Enthalpy)
	assert.Equal(t, 526.29, c.Rows[2].LatentHeat)
	assert.Equal(t, 2.09, c.TotalDrop)
	assert.InDeltaSlice(t, []float64{0, 0.45}, c.RelativeDrops, 1e-12)
}

func TestCascade_SingleEffect_NoDrop(t *testing.T) {
	// GIVEN a degenerate sequence length
	for _, seq := range []int{1, 0, -3} {
		c := Cascade(seq, 2.5, DefaultKeyInitial, DefaultKeyFinal, steam.DefaultTable())

		// THEN one step with no pressure drop
		require.Len(t, c.Rows, 2, "seq=%d", seq)
		assert.Equal(t, c.Rows[0].Pressure, c.Rows[1].Pressure)
		assert.Equal(t, []float64{0}, c.RelativeDrops)
	}
}
