package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/canesim/canesim/sim/evaporator"
	"github.com/canesim/canesim/sim/steam"
	"github.com/canesim/canesim/sim/units"
)

// PlantConfig holds the installed equipment and the operating constants of the mill.
// Loadable from YAML; keys absent from the file keep their DefaultPlantConfig value.
type PlantConfig struct {
	EvaporatorAreas     []float64               `yaml:"evaporator_areas"`
	TargetBrix          evaporator.Band         `yaml:"target_brix"`
	PressureOffset      float64                 `yaml:"pressure_offset"` // added to the gauge steam pressure
	EvaporatorInletTemp float64                 `yaml:"evaporator_inlet_temp"`
	RadiationLoss       float64                 `yaml:"radiation_loss"`
	IncondensableLoss   float64                 `yaml:"incondensable_loss"`
	FirstMillExtraction float64                 `yaml:"first_mill_extraction"`
	FlashExitTemp       float64                 `yaml:"flash_exit_temp"`
	DecanterRetention   float64                 `yaml:"decanter_retention"`
	SuspendedSolids     float64                 `yaml:"suspended_solids"`
	CakeSolids          float64                 `yaml:"cake_solids"`
	MolassesBrix        float64                 `yaml:"molasses_brix"`
	MolassesPurity      float64                 `yaml:"molasses_purity"`
	Sulfitation         units.SulfitationParams `yaml:"sulfitation"`
	Liming              units.LimingParams      `yaml:"liming"`
	Regenerator         *units.HeaterGeometry   `yaml:"regenerator,omitempty"`
	HeatExchanger       *units.HeaterGeometry   `yaml:"heat_exchanger,omitempty"`

	Ethanol EthanolConfig `yaml:"ethanol"`
	Steam   SteamConfig   `yaml:"steam"`

	SteamTable *steam.Table `yaml:"steam_table,omitempty"` // nil selects the built-in table
}

// EthanolConfig holds the fermentation and distillation constants.
type EthanolConfig struct {
	FermentationConversion float64 `yaml:"fermentation_conversion"`
	AA1Vapor               float64 `yaml:"aa1_vapor"`
	AA1Liquid              float64 `yaml:"aa1_liquid"`
	DBottoms               float64 `yaml:"d_bottoms"`
}

// SteamConfig holds the juice assumptions of the boiler path and the boilers themselves.
type SteamConfig struct {
	JuiceBrix        float64                  `yaml:"juice_brix"`
	JuicePol         float64                  `yaml:"juice_pol"`
	FactoryJuiceFlow float64                  `yaml:"factory_juice_flow"`
	Bagasse          units.BagasseComposition `yaml:"bagasse"` // dry mass %
	Boilers          []BoilerConfig           `yaml:"boilers"`
}

// BoilerConfig describes one bagasse boiler.
type BoilerConfig struct {
	Name         string  `yaml:"name"`
	Efficiency   float64 `yaml:"efficiency"`    // %
	EnthalpyRise float64 `yaml:"enthalpy_rise"` // MJ/kg
}

// DefaultPlantConfig returns the configuration of the reference mill.
func DefaultPlantConfig() *PlantConfig {
	return &PlantConfig{
		EvaporatorAreas:     []float64{3500, 2500, 2000, 2000, 1000, 1000},
		TargetBrix:          evaporator.DefaultTargetBand,
		PressureOffset:      1,
		EvaporatorInletTemp: evaporator.DefaultInletTemp,
		RadiationLoss:       evaporator.DefaultRadiationLoss,
		IncondensableLoss:   evaporator.DefaultIncondensableLoss,
		FirstMillExtraction: units.DefaultFirstMillExtraction,
		FlashExitTemp:       units.DefaultFlashExitTemp,
		DecanterRetention:   units.DefaultDecanterRetention,
		SuspendedSolids:     units.DefaultSuspendedSolids,
		CakeSolids:          units.DefaultCakeSolids,
		MolassesBrix:        67.92,
		MolassesPurity:      58.26,
		Sulfitation:         units.DefaultSulfitationParams(),
		Liming:              units.DefaultLimingParams(),
		Ethanol: EthanolConfig{
			FermentationConversion: units.DefaultFermentationConversion,
			AA1Vapor:               0.94,
			AA1Liquid:              0.05,
			DBottoms:               0.02,
		},
		Steam: SteamConfig{
			JuiceBrix:        17,
			JuicePol:         16,
			FactoryJuiceFlow: 211,
			Bagasse:          units.DefaultBagasseComposition(),
			Boilers: []BoilerConfig{
				{Name: "Caldeira 3", Efficiency: 53.1, EnthalpyRise: 2.936},
				{Name: "Caldeira 4", Efficiency: 58.74, EnthalpyRise: 2.936},
			},
		},
	}
}

// LoadPlantConfig reads a YAML plant configuration over the defaults.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadPlantConfig(path string) (*PlantConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plant config: %w", err)
	}
	return ParsePlantConfig(data)
}

// ParsePlantConfig decodes YAML plant configuration over the defaults. Empty input yields
// the defaults.
func ParsePlantConfig(data []byte) (*PlantConfig, error) {
	cfg := DefaultPlantConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing plant config: %w", err)
	}
	return cfg, nil
}

// Validate checks that every constant is physically meaningful.
func (c *PlantConfig) Validate() error {
	if len(c.EvaporatorAreas) == 0 {
		return fmt.Errorf("evaporator_areas must list at least one effect")
	}
	for i, a := range c.EvaporatorAreas {
		if err := validateFinitePositive(fmt.Sprintf("evaporator_areas[%d]", i), a); err != nil {
			return err
		}
	}
	if c.TargetBrix.Low <= 0 || c.TargetBrix.High > 100 || c.TargetBrix.Low > c.TargetBrix.High {
		return fmt.Errorf("target_brix must satisfy 0 < low <= high <= 100, got [%g, %g]", c.TargetBrix.Low, c.TargetBrix.High)
	}
	if err := validateFraction("radiation_loss", c.RadiationLoss); err != nil {
		return err
	}
	if err := validateFraction("incondensable_loss", c.IncondensableLoss); err != nil {
		return err
	}
	if err := validateFraction("first_mill_extraction", c.FirstMillExtraction); err != nil {
		return err
	}
	if err := validateFraction("decanter_retention", c.DecanterRetention); err != nil {
		return err
	}
	if err := validateFraction("cake_solids", c.CakeSolids); err != nil {
		return err
	}
	if c.CakeSolids == 0 {
		return fmt.Errorf("cake_solids must be positive")
	}
	if err := validateFinitePositive("suspended_solids", c.SuspendedSolids); err != nil {
		return err
	}
	if c.MolassesPurity <= 0 || c.MolassesPurity >= 100 {
		return fmt.Errorf("molasses_purity must be in (0, 100), got %g", c.MolassesPurity)
	}
	if c.MolassesBrix <= 0 || c.MolassesBrix > 100 {
		return fmt.Errorf("molasses_brix must be in (0, 100], got %g", c.MolassesBrix)
	}
	if err := validateFraction("ethanol.fermentation_conversion", c.Ethanol.FermentationConversion); err != nil {
		return err
	}
	if err := validateFraction("ethanol.aa1_vapor", c.Ethanol.AA1Vapor); err != nil {
		return err
	}
	if err := validateFraction("ethanol.aa1_liquid", c.Ethanol.AA1Liquid); err != nil {
		return err
	}
	if err := validateFraction("ethanol.d_bottoms", c.Ethanol.DBottoms); err != nil {
		return err
	}
	if len(c.Steam.Boilers) != 2 {
		return fmt.Errorf("steam.boilers must list exactly 2 boilers, got %d", len(c.Steam.Boilers))
	}
	for i, b := range c.Steam.Boilers {
		if b.Efficiency <= 0 || b.Efficiency > 100 {
			return fmt.Errorf("steam.boilers[%d]: efficiency must be in (0, 100], got %g", i, b.Efficiency)
		}
		if err := validateFinitePositive(fmt.Sprintf("steam.boilers[%d].enthalpy_rise", i), b.EnthalpyRise); err != nil {
			return err
		}
	}
	if c.SteamTable != nil {
		if err := c.SteamTable.Validate(); err != nil {
			return fmt.Errorf("steam_table: %w", err)
		}
	}
	return nil
}

// Table returns the configured steam table, or the built-in one.
func (c *PlantConfig) Table() *steam.Table {
	if c.SteamTable != nil {
		return c.SteamTable
	}
	return steam.DefaultTable()
}

// RemoveArea returns a copy of areas without the first effect whose area equals the integer
// prefix of id. An id without an integer prefix, or with no matching effect, removes nothing.
func RemoveArea(areas []float64, id string) []float64 {
	out := append([]float64(nil), areas...)
	n, ok := leadingInt(id)
	if !ok {
		return out
	}
	for i, a := range out {
		if a == float64(n) {
			return append(out[:i], out[i+1:]...)
		}
	}
	return out
}

func validateFinitePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s must be a finite positive number, got %g", name, v)
	}
	return nil
}

func validateFraction(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%s must be in [0, 1], got %g", name, v)
	}
	return nil
}
