package units

import "github.com/canesim/canesim/sim/numeric"

// sackMass is the commercial sugar sack (kg).
const sackMass = 50.0

// CrystallizationInput feeds the vacuum pans with evaporator syrup.
type CrystallizationInput struct {
	SyrupFlow      float64 // t/h
	SyrupBrix      float64
	SyrupPol       float64
	MolassesBrix   float64 // final molasses
	MolassesPurity float64 // final molasses
	Availability   float64 // operating hours per day
}

// CrystallizationResult is the "Cozedores" report.
type CrystallizationResult struct {
	SugarFlow    float64 `json:"Vazão de Açúcar Final" yaml:"Vazão de Açúcar Final"`
	Sacks        float64 `json:"Total de Sacas" yaml:"Total de Sacas"`
	SJM          float64 `json:"SJM (%)" yaml:"SJM (%)"`
	MolassesFlow float64 `json:"Vazão de Mel Final" yaml:"Vazão de Mel Final"`
}

// Crystallization closes the sucrose balance between sugar and final molasses.
// Impurities all leave in the molasses, carrying sucrose at the molasses purity.
func Crystallization(in CrystallizationInput) CrystallizationResult {
	purity := (in.SyrupPol / in.SyrupBrix) * 100

	solids := in.SyrupFlow * (in.SyrupBrix / 100)
	sucrose := solids * (purity / 100)
	impurities := solids - sucrose

	molassesSucrose := impurities * (in.MolassesPurity / (100 - in.MolassesPurity))
	molasses := (molassesSucrose * impurities) / (in.MolassesBrix / 100)

	sugar := sucrose - molassesSucrose

	return CrystallizationResult{
		SugarFlow:    sugar,
		Sacks:        (in.Availability * sugar * 1000) / sackMass,
		SJM:          numeric.RoundTo((sugar/sucrose)*100, 2),
		MolassesFlow: molasses,
	}
}
