package units

import (
	"gonum.org/v1/gonum/floats"

	"github.com/canesim/canesim/sim/numeric"
)

// DefaultFirstMillExtraction is the fraction of cane weight leaving the first mill as juice.
const DefaultFirstMillExtraction = 0.7

// imbibitionWater is the fixed imbibition water flow (t/h).
const imbibitionWater = 90.0

// ExtractionInput describes the milling tandem.
type ExtractionInput struct {
	TonsPerDay               float64 // cane crushed per calendar day (t)
	AgriculturalAvailability float64 // %
	ClimaticAvailability     float64 // %
	IndustrialAvailability   float64 // %
	FirstMillExtraction      float64 // 0 selects DefaultFirstMillExtraction
	BagasseMoisture          float64 // %
	CaneFiber                float64 // %
	PrimaryBrix              float64
	PrimaryPol               float64
	FactoryJuiceFlow         float64 // juice sent to the sugar factory (m³/h)
}

// ExtractionResult is the "Extração" report.
type ExtractionResult struct {
	CanePerHour        float64 `json:"Tonelada de Cana por hora" yaml:"Tonelada de Cana por hora"`
	AvailableHours     float64 `json:"Disponibilidade Geral (h)" yaml:"Disponibilidade Geral (h)"`
	BagasseFlow        float64 `json:"Vazão de Bagaço (ton/h)" yaml:"Vazão de Bagaço (ton/h)"`
	PrimaryJuiceFlow   float64 `json:"Vazão de Caldo Primário (ton/h)" yaml:"Vazão de Caldo Primário (ton/h)"`
	PrimaryJuiceVolume float64 `json:"Vazão de Caldo Primário (m³/h)" yaml:"Vazão de Caldo Primário (m³/h)"`
	PrimaryPurity      float64 `json:"Pureza do Caldo Primário (%)" yaml:"Pureza do Caldo Primário (%)"`
	PrimaryDensity     float64 `json:"Densidade do Caldo Primário" yaml:"Densidade do Caldo Primário"`
	Imbibition         float64 `json:"Embebição (%)" yaml:"Embebição (%)"`
	SugarMix           float64 `json:"Mix p/ Açúcar (%)" yaml:"Mix p/ Açúcar (%)"`
}

// AvailabilityFraction returns the binding (minimum) availability as a fraction.
func AvailabilityFraction(agricultural, climatic, industrial float64) float64 {
	return floats.Min([]float64{climatic, industrial, agricultural}) / 100
}

// Extraction computes the milling balance. Denominators (availability, moisture, fiber,
// Brix) are assumed positive; the pipeline validates them before calling.
func Extraction(in ExtractionInput) ExtractionResult {
	firstMill := in.FirstMillExtraction
	if firstMill == 0 {
		firstMill = DefaultFirstMillExtraction
	}

	availability := AvailabilityFraction(in.AgriculturalAvailability, in.ClimaticAvailability, in.IndustrialAvailability)
	availableHours := availability * 24
	tch := in.TonsPerDay / (24 * availability)

	fiberFlow := tch * (in.CaneFiber / 100)
	imbibition := (imbibitionWater / fiberFlow) * 100
	bagasseFlow := fiberFlow / (in.BagasseMoisture / 100)

	firstMillJuice := tch * firstMill
	otherMillsJuice := tch + imbibitionWater - firstMillJuice - bagasseFlow
	primaryJuice := firstMillJuice + otherMillsJuice

	purity := (in.PrimaryPol / in.PrimaryBrix) * 100
	density := JuiceDensity(in.PrimaryBrix)
	primaryVolume := primaryJuice * density
	mix := (in.FactoryJuiceFlow / primaryVolume) * 100

	return ExtractionResult{
		CanePerHour:        numeric.RoundTo(tch, 2),
		AvailableHours:     numeric.RoundTo(availableHours, 2),
		BagasseFlow:        numeric.RoundTo(bagasseFlow, 2),
		PrimaryJuiceFlow:   numeric.RoundTo(primaryJuice, 2),
		PrimaryJuiceVolume: numeric.RoundTo(primaryVolume, 2),
		PrimaryPurity:      numeric.RoundTo(purity, 2),
		PrimaryDensity:     numeric.RoundTo(density, 2),
		Imbibition:         numeric.RoundTo(imbibition, 2),
		SugarMix:           numeric.RoundTo(mix, 2),
	}
}
