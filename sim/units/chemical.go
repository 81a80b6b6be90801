package units

// SulfitationParams sets the sulfur dose and molar masses.
type SulfitationParams struct {
	DosePerTonne    float64 `yaml:"dose_per_tonne"`    // g of sulfur per tonne of juice
	SulfurMolarMass float64 `yaml:"sulfur_molar_mass"` // g/mol
	OxygenMolarMass float64 `yaml:"oxygen_molar_mass"` // g/mol
}

// DefaultSulfitationParams returns the plant dosing practice.
func DefaultSulfitationParams() SulfitationParams {
	return SulfitationParams{DosePerTonne: 225, SulfurMolarMass: 32.065, OxygenMolarMass: 32}
}

// SulfitationResult is the "Sulfitacao" report.
type SulfitationResult struct {
	SulfurFlow float64 `json:"Vazão de Enxofre (kg/h)" yaml:"Vazão de Enxofre (kg/h)"`
	OxygenFlow float64 `json:"Vazão de Oxigênio (kg/h)" yaml:"Vazão de Oxigênio (kg/h)"`
}

// Sulfitation burns S + O2 -> SO2 at a fixed dose per tonne of juice.
func Sulfitation(flow float64, p SulfitationParams) SulfitationResult {
	sulfurG := flow * p.DosePerTonne
	sulfurMol := sulfurG / p.SulfurMolarMass
	oxygenG := sulfurMol * p.OxygenMolarMass
	return SulfitationResult{
		SulfurFlow: sulfurG / 1000,
		OxygenFlow: oxygenG / 1000,
	}
}

// LimingParams sets the lime dose and molar masses.
type LimingParams struct {
	DosePerTonne   float64 `yaml:"dose_per_tonne"` // g of lime per tonne of juice
	LimeMolarMass  float64 `yaml:"lime_molar_mass"`
	WaterMolarMass float64 `yaml:"water_molar_mass"`
}

// DefaultLimingParams returns the plant dosing practice.
func DefaultLimingParams() LimingParams {
	return LimingParams{DosePerTonne: 650, LimeMolarMass: 100, WaterMolarMass: 18}
}

// LimingResult is the "Caleacao" report.
type LimingResult struct {
	LimeFlow  float64 `json:"Vazão de Cal (kg/h)" yaml:"Vazão de Cal (kg/h)"`
	WaterFlow float64 `json:"Vazão de Água (kg/h)" yaml:"Vazão de Água (kg/h)"`
}

// Liming converts the lime dose to mass flows; one mole of water per four of lime.
func Liming(flow float64, p LimingParams) LimingResult {
	limeG := flow * p.DosePerTonne
	limeMol := limeG / p.LimeMolarMass
	waterG := (limeMol / 4) * p.WaterMolarMass
	return LimingResult{
		LimeFlow:  limeG / 1000,
		WaterFlow: waterG / 1000,
	}
}
