package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMixingTank_ReferenceStreams(t *testing.T) {
	// GIVEN the surplus primary juice, final molasses and filtrate
	res := MixingTank(MixingInput{
		JuiceVolume:    419.95 - 211,
		JuiceBrix:      17.08,
		JuicePol:       14.21,
		MolassesFlow:   72.25517485479364,
		MolassesBrix:   67.92,
		MolassesPurity: 58.26,
		FiltrateVolume: 28.314638519384918,
		FiltrateBrix:   9.07390375521131,
		FiltratePol:    6.2,
	})

	// THEN the must is diluted to the target Brix
	assert.InDelta(t, 733.6576955372993, res.MustFlow, 1e-9)
	assert.InDelta(t, 27.65653385261873, res.BlendBrix, 1e-9)
	assert.Equal(t, TargetMustBrix, res.MustBrix)
	assert.InDelta(t, 1.088844, res.MustDensity, 1e-12)
	assert.InDelta(t, 673.7950482688974, res.MustVolume, 1e-9)
	assert.InDelta(t, 76.30707841800081, res.MustPurity, 1e-9)
	assert.InDelta(t, 408.61548961681126, res.DilutionWater, 1e-9)
}

func TestFermentation_ReferenceMust(t *testing.T) {
	res := Fermentation(FermentationInput{
		MustFlow:   733.6576955372993,
		MustBrix:   22,
		MustPurity: 76.30707841800081,
		Conversion: DefaultFermentationConversion,
	})

	assert.InDelta(t, 696.6239169905955, res.WineFlow, 1e-9)
	assert.InDelta(t, 698720.0772222623, res.WineVolume, 1e-6)
	assert.InDelta(t, 67859.03474686983, res.EthanolVolume, 1e-6)
	assert.InDelta(t, 53540.7784152803, res.EthanolMass, 1e-6)
	assert.InDelta(t, 51148.45777405282, res.CO2Mass, 1e-6)
	assert.InDelta(t, 10.756573980317823, res.GL, 1e-9)
	assert.InDelta(t, 0.09711905662800058, res.EthanolFraction, 1e-12)
	assert.InDelta(t, 0.5114283176802327, res.TheoreticalYield, 1e-12)
	assert.InDelta(t, 123163.20567173585, res.SugarMass, 1e-6)
}

func TestFermentation_NoMust_ZeroFractions(t *testing.T) {
	res := Fermentation(FermentationInput{Conversion: DefaultFermentationConversion})

	assert.Zero(t, res.GL)
	assert.Zero(t, res.EthanolFraction)
	assert.Zero(t, res.WineFlow)
}

func TestColumn_ReferenceSplit(t *testing.T) {
	// GIVEN a wine column with all three outlets
	res := Column(ColumnSpec{Name: "AA1", Bottoms: 0.01, Vapor: ptr(0.94), Liquid: ptr(0.05)}, 100, 0.1)

	// THEN ethanol is split in proportion to the outlet fractions
	require.Len(t, res.Outlets, 3)
	assert.InDelta(t, 10, res.Outlet(OutletVapor).Flow, 1e-9)
	assert.InDelta(t, 9.4, res.Outlet(OutletVapor).Ethanol, 1e-9)
	assert.InDelta(t, 0.94, res.Outlet(OutletVapor).Fraction, 1e-12)
	assert.InDelta(t, 10, res.Outlet(OutletLiquid).Flow, 1e-9)
	assert.InDelta(t, 0.5, res.Outlet(OutletLiquid).Ethanol, 1e-9)
	assert.InDelta(t, 10, res.Outlet(OutletBottoms).Flow, 1e-9)
	assert.InDelta(t, 0.1, res.Outlet(OutletBottoms).Ethanol, 1e-9)
}

func TestColumn_AllZeroFractions_EmptyOutlets(t *testing.T) {
	for _, spec := range []ColumnSpec{
		{Name: "X"},
		{Name: "X", Vapor: ptr(0), Liquid: ptr(0)},
	} {
		res := Column(spec, 100, 0.1)

		assert.Equal(t, "X", res.Name)
		assert.Empty(t, res.Outlets)
		assert.Equal(t, Stream{}, res.Outlet(OutletBottoms))
	}
}

func TestColumn_MissingOutlet_Absent(t *testing.T) {
	res := Column(ColumnSpec{Name: "D", Bottoms: 0.02, Liquid: ptr(0.05)}, 10, 0.05)

	_, hasVapor := res.Outlets[OutletVapor]
	assert.False(t, hasVapor)
	assert.Len(t, res.Outlets, 2)
}

func TestDistillation_ReferenceWine(t *testing.T) {
	res := Distillation(DistillationInput{
		WineFlow:       698720.0772222623 / 1000,
		WineFraction:   0.09711905662800058,
		AA1Vapor:       0.94,
		AA1Liquid:      0.05,
		DBottoms:       0.02,
		AvailableHours: 24,
	})

	assert.InDelta(t, 0.9694147820981402, res.SecondGradeEthanol, 1e-9)
	assert.InDelta(t, 64.08235632494582, res.HydratedEthanol, 1e-9)
	assert.InDelta(t, 1537.9765517986998, res.HydratedDaily, 1e-6)
	assert.InDelta(t, 183.78488577277244, res.Residues, 1e-9)
	assert.InDelta(t, 0.012637362637362636, res.ResidueFraction, 1e-12)
	require.Len(t, res.Columns, 3)
	assert.Equal(t, "B", res.Columns[2].Name)
}

func TestDistillation_NoWine_AllZero(t *testing.T) {
	res := Distillation(DistillationInput{AA1Vapor: 0.94, AA1Liquid: 0.05, DBottoms: 0.02, AvailableHours: 24})

	assert.Zero(t, res.HydratedEthanol)
	assert.Zero(t, res.Residues)
	assert.Zero(t, res.ResidueFraction)
}
