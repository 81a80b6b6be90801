package units

// TargetMustBrix is the Brix the mixing tank dilutes the must to.
const TargetMustBrix = 22.0

// MixingInput lists the three streams blended into fermentation must.
type MixingInput struct {
	JuiceVolume    float64 // m³/h of primary juice not sent to the sugar factory
	JuiceBrix      float64
	JuicePol       float64
	MolassesFlow   float64 // t/h
	MolassesBrix   float64
	MolassesPurity float64
	FiltrateVolume float64 // m³/h from the press filter
	FiltrateBrix   float64
	FiltratePol    float64
}

// MixingResult is the "TanqueMistura" report.
type MixingResult struct {
	MustFlow      float64 `json:"Vazão de Mosto (ton/h)" yaml:"Vazão de Mosto (ton/h)"`
	BlendBrix     float64 `json:"Brix do Mosto antes da Diluição (º)" yaml:"Brix do Mosto antes da Diluição (º)"`
	MustBrix      float64 `json:"Brix do Mosto (º)" yaml:"Brix do Mosto (º)"`
	MustDensity   float64 `json:"Densidade do Mosto" yaml:"Densidade do Mosto"`
	MustVolume    float64 `json:"Vazão de Mosto (m³/h)" yaml:"Vazão de Mosto (m³/h)"`
	MustPurity    float64 `json:"Pureza do Mosto (%)" yaml:"Pureza do Mosto (%)"`
	DilutionWater float64 `json:"Água de Diluição (ton/h)" yaml:"Água de Diluição (ton/h)"`
}

// MixingTank blends juice, molasses and filtrate by mass-weighted Brix and purity, then
// adds dilution water for the must to reach TargetMustBrix.
func MixingTank(in MixingInput) MixingResult {
	juice := in.JuiceVolume * JuiceDensity(in.JuiceBrix)
	filtrate := in.FiltrateVolume * JuiceDensity(in.FiltrateBrix)
	blend := juice + in.MolassesFlow + filtrate

	blendBrix := (juice*in.JuiceBrix + in.MolassesFlow*in.MolassesBrix + filtrate*in.FiltrateBrix) / blend
	water := (blendBrix * blend) / TargetMustBrix
	must := blend + water
	mustDensity := JuiceDensity(TargetMustBrix)

	juicePurity := (in.JuicePol / in.JuiceBrix) * 100
	filtratePurity := (in.FiltratePol / in.FiltrateBrix) * 100
	mustPurity := (juice*juicePurity + in.MolassesFlow*in.MolassesPurity + filtratePurity*filtrate) / blend

	return MixingResult{
		MustFlow:      must,
		BlendBrix:     blendBrix,
		MustBrix:      TargetMustBrix,
		MustDensity:   mustDensity,
		MustVolume:    must / mustDensity,
		MustPurity:    mustPurity,
		DilutionWater: water,
	}
}

// Stoichiometry of glucose -> 2 ethanol + 2 CO2 and liquid densities (kg/L).
const (
	glucoseMolarMass = 180.156
	ethanolMolarMass = 46.06844
	co2MolarMass     = 44.01
	ethanolDensity   = 0.789
	waterDensity     = 0.997
)

// DefaultFermentationConversion is the fraction of the theoretical yield achieved.
const DefaultFermentationConversion = 0.85

// FermentationInput feeds the fermenters.
type FermentationInput struct {
	MustFlow   float64 // t/h
	MustBrix   float64
	MustPurity float64
	Conversion float64 // 0–1
}

// FermentationResult is the "Fermentacao" report.
type FermentationResult struct {
	WineFlow         float64 `json:"Vazão de Vinho (ton/h)" yaml:"Vazão de Vinho (ton/h)"`
	WineVolume       float64 `json:"Vazão de Vinho (L/h)" yaml:"Vazão de Vinho (L/h)"`
	EthanolVolume    float64 `json:"Vazão de Etanol (L/h)" yaml:"Vazão de Etanol (L/h)"`
	EthanolMass      float64 `json:"Vazão de Etanol (kg/h)" yaml:"Vazão de Etanol (kg/h)"`
	CO2Mass          float64 `json:"Vazão de CO2 (kg/h)" yaml:"Vazão de CO2 (kg/h)"`
	GL               float64 `json:"Teor Alcoólico (ºGL)" yaml:"Teor Alcoólico (ºGL)"`
	EthanolFraction  float64 `json:"Fração de Etanol" yaml:"Fração de Etanol"`
	TheoreticalYield float64 `json:"Rendimento Teórico" yaml:"Rendimento Teórico"`
	SugarMass        float64 `json:"Massa de Açúcar (kg/h)" yaml:"Massa de Açúcar (kg/h)"`
}

// TheoreticalEthanolYield is the ethanol mass obtainable per unit mass of glucose.
func TheoreticalEthanolYield() float64 {
	return (2 * ethanolMolarMass) / glucoseMolarMass
}

// Fermentation converts fermentable sugar to ethanol and CO2. Volumes assume ideal mixing of
// ethanol and water; °GL and the ethanol fraction are zero when there is no liquid.
func Fermentation(in FermentationInput) FermentationResult {
	yield := TheoreticalEthanolYield()

	total := in.MustFlow * 1000
	sugar := total * (in.MustBrix / 100) * (in.MustPurity / 100)

	ethanol := sugar * yield * in.Conversion
	co2 := sugar * ((2 * co2MolarMass) / glucoseMolarMass) * in.Conversion

	ethanolL := ethanol / ethanolDensity
	liquid := total - co2
	water := liquid - ethanol
	waterL := water / waterDensity

	wineL := ethanolL + waterL
	res := FermentationResult{
		WineFlow:         (wineL * waterDensity) / 1000,
		WineVolume:       wineL,
		EthanolVolume:    ethanolL,
		EthanolMass:      ethanol,
		CO2Mass:          co2,
		TheoreticalYield: yield,
		SugarMass:        sugar,
	}
	if waterL > 0 {
		res.GL = (ethanolL / waterL) * 100
	}
	if wineL > 0 {
		res.EthanolFraction = ethanolL / wineL
	}
	return res
}
