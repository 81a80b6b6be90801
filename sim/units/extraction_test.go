package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func referenceExtraction() ExtractionInput {
	return ExtractionInput{
		TonsPerDay:               9507,
		AgriculturalAvailability: 100,
		ClimaticAvailability:     100,
		IndustrialAvailability:   100,
		BagasseMoisture:          52.2,
		CaneFiber:                12.29,
		PrimaryBrix:              17.08,
		PrimaryPol:               14.21,
		FactoryJuiceFlow:         211,
	}
}

func TestExtraction_ReferenceMill(t *testing.T) {
	// GIVEN the reference mill at full availability
	res := Extraction(referenceExtraction())

	// THEN every figure matches the plant report
	assert.Equal(t, 396.13, res.CanePerHour)
	assert.Equal(t, 24.0, res.AvailableHours)
	assert.Equal(t, 93.26, res.BagasseFlow)
	assert.Equal(t, 392.86, res.PrimaryJuiceFlow)
	assert.Equal(t, 419.95, res.PrimaryJuiceVolume)
	assert.Equal(t, 83.2, res.PrimaryPurity)
	assert.Equal(t, 1.07, res.PrimaryDensity)
	assert.Equal(t, 184.87, res.Imbibition)
	assert.Equal(t, 50.24, res.SugarMix)
}

func TestExtraction_LowestAvailabilityBinds(t *testing.T) {
	// GIVEN a climatic stop of 20 %
	in := referenceExtraction()
	in.ClimaticAvailability = 80

	// WHEN computed
	res := Extraction(in)

	// THEN the hourly rate rises and the available hours drop
	assert.Equal(t, 19.2, res.AvailableHours)
	assert.InDelta(t, 9507/(24*0.8), res.CanePerHour, 0.005)
}

func TestAvailabilityFraction(t *testing.T) {
	assert.Equal(t, 0.9, AvailabilityFraction(95, 90, 100))
	assert.Equal(t, 0.5, AvailabilityFraction(50, 90, 100))
	assert.Equal(t, 0.7, AvailabilityFraction(95, 90, 70))
}

func TestJuiceDensityAndSpecificHeat(t *testing.T) {
	assert.Equal(t, 1.01037, JuiceDensity(0))
	assert.InDelta(t, 1.088844, JuiceDensity(22), 1e-12)
	assert.Equal(t, 1.0, SpecificHeat(0))
	assert.InDelta(t, 0.64, SpecificHeat(60), 1e-12)
}
