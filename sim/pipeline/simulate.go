package pipeline

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/canesim/canesim/sim"
	"github.com/canesim/canesim/sim/evaporator"
	"github.com/canesim/canesim/sim/trace"
	"github.com/canesim/canesim/sim/units"
)

// Options selects the optional parts of a run.
type Options struct {
	Ethanol bool               // also run mixing, fermentation and distillation
	Trace   *trace.SearchTrace // records the evaporator search when non-nil
}

// ConsolidatedResult is the report of one sugar run, keyed by stage.
type ConsolidatedResult struct {
	Extraction      units.ExtractionResult      `json:"Extracao" yaml:"Extracao"`
	Regenerators    units.HeatingResult         `json:"Regeneradores" yaml:"Regeneradores"`
	Sulfitation     units.SulfitationResult     `json:"Sulfitacao" yaml:"Sulfitacao"`
	Liming          units.LimingResult          `json:"Caleacao" yaml:"Caleacao"`
	HeatExchanger   units.HeatingResult         `json:"TrocadorCalor" yaml:"TrocadorCalor"`
	Flash           units.FlashResult           `json:"Flash" yaml:"Flash"`
	RotaryFilter    units.RotaryFilterResult    `json:"FiltroRotativo" yaml:"FiltroRotativo"`
	Decanter        units.DecanterResult        `json:"Decantador" yaml:"Decantador"`
	PressFilter     units.PressFilterResult     `json:"FiltroPrensa" yaml:"FiltroPrensa"`
	RotaryScreen    units.RotaryScreenResult    `json:"PeneiraRotativa" yaml:"PeneiraRotativa"`
	Evaporators     *evaporator.Result          `json:"Evaporadores" yaml:"Evaporadores"`
	Crystallization units.CrystallizationResult `json:"Cozedores" yaml:"Cozedores"`

	RegeneratorExitTemp   float64   `json:"ultimaTemperaturaRegeneradores" yaml:"ultimaTemperaturaRegeneradores"`
	HeatExchangerExitTemp float64   `json:"ultimaTemperaturaTrocadorCalor" yaml:"ultimaTemperaturaTrocadorCalor"`
	EvaporatorAreas       []float64 `json:"listaEvaporadoresFiltrada" yaml:"listaEvaporadoresFiltrada"`

	Ethanol *EthanolResult `json:"Etanol,omitempty" yaml:"Etanol,omitempty"`
}

// EthanolResult is the report of the ethanol path.
type EthanolResult struct {
	Mixing       units.MixingResult       `json:"TanqueMistura" yaml:"TanqueMistura"`
	Fermentation units.FermentationResult `json:"Fermentacao" yaml:"Fermentacao"`
	Distillation units.DistillationResult `json:"Destilacao" yaml:"Destilacao"`
}

// Simulate validates in and runs every stage of the sugar line in plant order. A nil cfg
// selects DefaultPlantConfig. Errors are *sim.ValidationError, *sim.InfeasibilityError, or
// wrap sim.ErrInsufficientData.
func Simulate(in *ProcessInput, cfg *PlantConfig, opts Options) (*ConsolidatedResult, error) {
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

	brix := value(in.BrixCaldoPrimario)
	flow := value(in.VazaoCaldoPrimario)
	res := &ConsolidatedResult{}

	res.EvaporatorAreas = RemoveArea(cfg.EvaporatorAreas, in.AreaEvaporador)

	res.Extraction = units.Extraction(units.ExtractionInput{
		TonsPerDay:               value(in.ToneladaCana),
		AgriculturalAvailability: value(in.DisponibilidadeAgricola),
		ClimaticAvailability:     value(in.DisponibilidadeClimatica),
		IndustrialAvailability:   value(in.DisponibilidadeIndustrial),
		FirstMillExtraction:      cfg.FirstMillExtraction,
		BagasseMoisture:          value(in.UmidadeBagaco),
		CaneFiber:                value(in.FibraCana),
		PrimaryBrix:              brix,
		PrimaryPol:               value(in.PolCaldoPrimario),
		FactoryJuiceFlow:         flow,
	})
	logrus.Debugf("pipeline: extraction %.2f t/h cane, %.2f m³/h primary juice",
		res.Extraction.CanePerHour, res.Extraction.PrimaryJuiceVolume)

	inlet := value(in.TemperaturaCaldoPrimario)
	res.Regenerators = units.Heating(units.HeatingInput{
		Kind: units.Regenerator, Geometry: cfg.Regenerator, InletTemp: inlet, Brix: brix, Flow: flow,
	})
	res.Sulfitation = units.Sulfitation(flow, cfg.Sulfitation)
	res.Liming = units.Liming(flow, cfg.Liming)
	res.RegeneratorExitTemp = res.Regenerators.ExitTemperature(inlet)

	res.HeatExchanger = units.Heating(units.HeatingInput{
		Kind: units.HeatExchanger, Geometry: cfg.HeatExchanger, InletTemp: res.RegeneratorExitTemp, Brix: brix, Flow: flow,
	})
	res.HeatExchangerExitTemp = res.HeatExchanger.ExitTemperature(res.RegeneratorExitTemp)
	logrus.Debugf("pipeline: juice heated %.2f -> %.2f -> %.2f °C",
		inlet, res.RegeneratorExitTemp, res.HeatExchangerExitTemp)

	res.Flash = units.FlashTank(flow, brix, res.HeatExchangerExitTemp, cfg.FlashExitTemp)
	res.RotaryFilter = units.RotaryFilter(res.Flash.ExitFlow, res.Flash.ExitBrix)
	res.Decanter = units.Decanter(res.RotaryFilter.ExitFlow, res.RotaryFilter.ExitBrix,
		cfg.DecanterRetention, value(in.BrixLodo), value(in.PolCaldo))
	logrus.Debugf("pipeline: decanter %.2f t/h juice, %.2f t/h sludge",
		res.Decanter.JuiceFlow, res.Decanter.SludgeFlow)

	pf, err := units.PressFilter(res.Decanter.SludgeFlow, cfg.SuspendedSolids, value(in.BrixLodo), cfg.CakeSolids)
	if err != nil {
		return nil, err
	}
	res.PressFilter = pf

	res.RotaryScreen = units.RotaryScreen(res.Decanter.JuiceFlow, res.Decanter.JuiceBrix)

	evapBrix, evapFlow := res.RotaryScreen.ExitBrix, res.RotaryScreen.ExitFlow
	if !isFinite(evapBrix) || !isFinite(evapFlow) {
		return nil, fmt.Errorf("evaporator feed (Brix %v, flow %v): %w", evapBrix, evapFlow, sim.ErrInsufficientData)
	}

	params := evaporator.NewParams(evapBrix, evapFlow, value(in.PressaoVapor)+cfg.PressureOffset, res.EvaporatorAreas)
	params.Table = cfg.SteamTable
	params.InletTemp = cfg.EvaporatorInletTemp
	params.RadiationLoss = cfg.RadiationLoss
	params.IncondensableLoss = cfg.IncondensableLoss
	params.TargetBand = cfg.TargetBrix
	params.Trace = opts.Trace
	res.Evaporators = evaporator.Solve(params)

	hours := availableHours(value(in.DisponibilidadeAgricola),
		value(in.DisponibilidadeClimatica), value(in.DisponibilidadeIndustrial))
	molassesBrix, molassesPurity := cfg.molasses(in)
	res.Crystallization = units.Crystallization(units.CrystallizationInput{
		SyrupFlow:      res.Evaporators.FinalFlow(),
		SyrupBrix:      res.Evaporators.FinalBrix,
		SyrupPol:       value(in.PolXarope),
		MolassesBrix:   molassesBrix,
		MolassesPurity: molassesPurity,
		Availability:   hours,
	})
	logrus.Debugf("pipeline: %.2f t/h sugar, %.0f sacks per day",
		res.Crystallization.SugarFlow, res.Crystallization.Sacks)

	if opts.Ethanol {
		res.Ethanol = simulateEthanol(in, cfg, res, hours)
	}
	return res, nil
}

// simulateEthanol runs the distillery on the juice not sent to the sugar factory, the final
// molasses and the press filtrate.
func simulateEthanol(in *ProcessInput, cfg *PlantConfig, res *ConsolidatedResult, hours float64) *EthanolResult {
	molassesBrix, molassesPurity := cfg.molasses(in)
	out := &EthanolResult{}
	out.Mixing = units.MixingTank(units.MixingInput{
		JuiceVolume:    res.Extraction.PrimaryJuiceVolume - value(in.VazaoCaldoPrimario),
		JuiceBrix:      value(in.BrixCaldoPrimario),
		JuicePol:       value(in.PolCaldoPrimario),
		MolassesFlow:   res.Crystallization.MolassesFlow,
		MolassesBrix:   molassesBrix,
		MolassesPurity: molassesPurity,
		FiltrateVolume: res.PressFilter.FiltrateVolume,
		FiltrateBrix:   res.PressFilter.FiltrateBrix,
		FiltratePol:    value(in.PolFiltrado),
	})
	out.Fermentation = units.Fermentation(units.FermentationInput{
		MustFlow:   out.Mixing.MustFlow,
		MustBrix:   out.Mixing.MustBrix,
		MustPurity: out.Mixing.MustPurity,
		Conversion: cfg.Ethanol.FermentationConversion,
	})
	out.Distillation = units.Distillation(units.DistillationInput{
		WineFlow:       out.Fermentation.WineVolume / 1000,
		WineFraction:   out.Fermentation.EthanolFraction,
		AA1Vapor:       cfg.Ethanol.AA1Vapor,
		AA1Liquid:      cfg.Ethanol.AA1Liquid,
		DBottoms:       cfg.Ethanol.DBottoms,
		AvailableHours: hours,
	})
	logrus.Debugf("pipeline: %.2f m³/h wine at %.2f ºGL, %.2f m³/h hydrated ethanol",
		out.Fermentation.WineVolume/1000, out.Fermentation.GL, out.Distillation.HydratedEthanol)
	return out
}

// availableHours is the operating time per day at the binding availability.
func availableHours(agricultural, climatic, industrial float64) float64 {
	return units.AvailabilityFraction(agricultural, climatic, industrial) * 24
}

// molasses returns the final molasses quality of the run, falling back to the plant values.
func (c *PlantConfig) molasses(in *ProcessInput) (brix, purity float64) {
	brix, purity = c.MolassesBrix, c.MolassesPurity
	if in.BrixMelF != nil {
		brix = *in.BrixMelF
	}
	if in.PurezMelF != nil {
		purity = *in.PurezMelF
	}
	return brix, purity
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
