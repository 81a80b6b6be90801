// Package units implements the unit-operation models of the mill: extraction, heating,
// chemical dosing, clarification and filtration, crystallization, the ethanol path
// (mixing tank, fermentation, distillation) and the bagasse boilers.
//
// Every model is a pure function of its input struct. Results are typed structs whose
// json/yaml keys are the labels operators read on the plant reports; those keys are part of
// the public contract and must stay stable.
//
// Units follow the plant convention: mass flows in t/h unless the label says otherwise,
// Brix in °Bx, temperatures in °C, pressures in bar.
package units

// JuiceDensity returns the juice density (t/m³) for a given Brix.
func JuiceDensity(brix float64) float64 {
	return 0.000028*brix*brix + 0.002951*brix + 1.01037
}

// SpecificHeat returns the juice specific heat (kcal/kg·°C) for a given Brix.
func SpecificHeat(brix float64) float64 {
	return 1 - 0.006*brix
}
