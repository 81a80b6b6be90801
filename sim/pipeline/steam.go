package pipeline

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/canesim/canesim/sim"
	"github.com/canesim/canesim/sim/units"
)

// SteamResult is the report of the boiler path.
type SteamResult struct {
	Extraction units.ExtractionResult `json:"Extracao" yaml:"Extracao"`
	Calorific  units.CalorificValues  `json:"PoderesCalorificos" yaml:"PoderesCalorificos"`
	Boilers    []BoilerReport         `json:"Caldeiras" yaml:"Caldeiras"`
}

// BoilerReport is the steam and power raised by one boiler.
type BoilerReport struct {
	Name               string `json:"Nome" yaml:"Nome"`
	units.BoilerResult `yaml:",inline"`
}

// SimulateSteam validates in and runs the milling balance with the plant juice assumptions,
// then burns each boiler's bagasse share. A nil cfg selects DefaultPlantConfig.
func SimulateSteam(in *SteamInput, cfg *PlantConfig) (*SteamResult, error) {
	if in == nil {
		return nil, &sim.ValidationError{Field: "input", Reason: "no input provided"}
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = DefaultPlantConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("plant config: %w", err)
	}

	moisture := value(in.UmidadeBagaco)
	res := &SteamResult{
		Extraction: units.Extraction(units.ExtractionInput{
			TonsPerDay:               value(in.ToneladaCana),
			AgriculturalAvailability: value(in.DisponibilidadeAgricola),
			ClimaticAvailability:     value(in.DisponibilidadeClimatica),
			IndustrialAvailability:   value(in.DisponibilidadeIndustrial),
			FirstMillExtraction:      cfg.FirstMillExtraction,
			BagasseMoisture:          moisture,
			CaneFiber:                value(in.FibraCana),
			PrimaryBrix:              cfg.Steam.JuiceBrix,
			PrimaryPol:               cfg.Steam.JuicePol,
			FactoryJuiceFlow:         cfg.Steam.FactoryJuiceFlow,
		}),
		Calorific: units.Calorific(moisture, cfg.Steam.Bagasse),
	}

	bagasse := []float64{value(in.VazBagacoCald3), value(in.VazBagacoCald4)}
	for i, b := range cfg.Steam.Boilers {
		r := units.SteamAndPower(units.BoilerInput{
			Moisture:     moisture,
			BagasseFlow:  bagasse[i],
			Efficiency:   b.Efficiency,
			EnthalpyRise: b.EnthalpyRise,
			Composition:  &cfg.Steam.Bagasse,
		})
		logrus.Debugf("pipeline: %s raises %.2f t/h steam, %.2f MW cogeneration",
			b.Name, r.SteamFlow, r.CogenerationPower)
		res.Boilers = append(res.Boilers, BoilerReport{Name: b.Name, BoilerResult: r})
	}
	return res, nil
}
