package units

// BagasseComposition is the dry elemental analysis of bagasse (mass %).
type BagasseComposition struct {
	Carbon   float64 `yaml:"carbon"`
	Hydrogen float64 `yaml:"hydrogen"`
	Oxygen   float64 `yaml:"oxygen"`
	Sulfur   float64 `yaml:"sulfur"`
	Ash      float64 `yaml:"ash"`
}

// DefaultBagasseComposition returns the reference bagasse analysis.
func DefaultBagasseComposition() BagasseComposition {
	return BagasseComposition{Carbon: 44.6, Hydrogen: 44.5, Oxygen: 5.8, Sulfur: 0.1, Ash: 0.6}
}

// CalorificValues holds the heating values of bagasse on dry and wet basis.
type CalorificValues struct {
	DryHHV float64 `json:"PCS Seco (kJ/kg)" yaml:"PCS Seco (kJ/kg)"`
	DryLHV float64 `json:"PCI Seco (kJ/kg)" yaml:"PCI Seco (kJ/kg)"`
	WetHHV float64 `json:"PCS Úmido (MJ/kg)" yaml:"PCS Úmido (MJ/kg)"`
	WetLHV float64 `json:"PCI Úmido (MJ/kg)" yaml:"PCI Úmido (MJ/kg)"`
}

// Calorific computes the Dulong heating values for bagasse of the given moisture (%).
func Calorific(moisture float64, c BagasseComposition) CalorificValues {
	hhv := 338*c.Carbon + 1442*(c.Hydrogen-c.Oxygen/8) + 94*c.Sulfur
	lhv := hhv - 2442*9*(c.Hydrogen/100)
	wet := 1 - moisture/100 - c.Ash/100
	return CalorificValues{
		DryHHV: hhv,
		DryLHV: lhv,
		WetHHV: (hhv / 1000) * wet,
		WetLHV: (lhv / 1000) * wet,
	}
}

// Electrical efficiencies of the steam cycle.
const (
	CogenerationEfficiency = 0.24
	CondensingEfficiency   = 0.30
)

// BoilerInput feeds one bagasse boiler.
type BoilerInput struct {
	Moisture     float64 // bagasse moisture (%)
	BagasseFlow  float64 // t/h
	Efficiency   float64 // boiler efficiency (%)
	EnthalpyRise float64 // feedwater to steam enthalpy rise (MJ/kg)
	Composition  *BagasseComposition
}

// BoilerResult is the "Caldeira" report.
type BoilerResult struct {
	SteamFlow          float64 `json:"Vazão de Vapor (t/h)" yaml:"Vazão de Vapor (t/h)"`
	CogenerationPower  float64 `json:"Potência Elétrica Cogeração (MW)" yaml:"Potência Elétrica Cogeração (MW)"`
	CondensingPower    float64 `json:"Potência Elétrica Condensação (MW)" yaml:"Potência Elétrica Condensação (MW)"`
	CogenerationPerTon float64 `json:"Energia Cogeração (kWh/t bagaço)" yaml:"Energia Cogeração (kWh/t bagaço)"`
	CondensingPerTon   float64 `json:"Energia Condensação (kWh/t bagaço)" yaml:"Energia Condensação (kWh/t bagaço)"`
}

// SteamAndPower converts the bagasse fuel energy into steam raised and electrical power for
// back-pressure cogeneration and condensing turbines. Per-ton figures are zero without bagasse.
func SteamAndPower(in BoilerInput) BoilerResult {
	comp := DefaultBagasseComposition()
	if in.Composition != nil {
		comp = *in.Composition
	}
	cv := Calorific(in.Moisture, comp)

	fuel := (in.BagasseFlow * 1000) / 3600 * cv.WetLHV // MW
	steamEnergy := fuel * (in.Efficiency / 100)

	res := BoilerResult{
		CogenerationPower: steamEnergy * CogenerationEfficiency,
		CondensingPower:   steamEnergy * CondensingEfficiency,
	}
	if in.EnthalpyRise != 0 {
		res.SteamFlow = (steamEnergy / in.EnthalpyRise) * 3600 / 1000
	}
	if in.BagasseFlow != 0 {
		res.CogenerationPerTon = res.CogenerationPower * (1000 / in.BagasseFlow)
		res.CondensingPerTon = res.CondensingPower * (1000 / in.BagasseFlow)
	}
	return res
}
