// Package evaporator solves the five-effect evaporator train: a forward per-effect
// recurrence driven by two vapor multipliers, and a two-phase grid search over those
// multipliers that aims the final syrup Brix at a target band.
//
// The solver never fails. Numerically degenerate inputs are clamped inside the
// recurrence, and an unreachable band falls back to the closest achievable Brix.
package evaporator

import (
	"github.com/sirupsen/logrus"

	"github.com/canesim/canesim/sim/numeric"
	"github.com/canesim/canesim/sim/steam"
	"github.com/canesim/canesim/sim/trace"
)

// Defaults of the evaporator train.
const (
	DefaultInletTemp         = 99.0  // juice entering the first effect (°C)
	DefaultRadiationLoss     = 0.005 // fraction of drawn vapor
	DefaultIncondensableLoss = 0.015 // fraction of drawn vapor
)

// DefaultTargetBand is the accepted final syrup Brix range.
var DefaultTargetBand = Band{Low: 60, High: 63}

// Band is a closed Brix interval.
type Band struct {
	Low  float64 `yaml:"low" json:"low"`
	High float64 `yaml:"high" json:"high"`
}

// Contains reports whether b lies in [Low, High].
func (b Band) Contains(v float64) bool { return b.Low <= v && v <= b.High }

// Midpoint is the target of the best-fit fallback search.
func (b Band) Midpoint() float64 { return 0.5 * (b.Low + b.High) }

// Params configures one solve.
type Params struct {
	Table             *steam.Table // nil selects steam.DefaultTable()
	InitialBrix       float64
	JuiceFlow         float64 // t/h
	InletTemp         float64 // °C
	SteamPressure     float64 // bar (absolute)
	Areas             []float64
	RadiationLoss     float64
	IncondensableLoss float64
	TargetBand        Band
	Trace             *trace.SearchTrace // optional
}

// NewParams returns Params carrying the train defaults for the given feed.
func NewParams(brix, flow, steamPressure float64, areas []float64) Params {
	return Params{
		InitialBrix:       brix,
		JuiceFlow:         flow,
		InletTemp:         DefaultInletTemp,
		SteamPressure:     steamPressure,
		Areas:             areas,
		RadiationLoss:     DefaultRadiationLoss,
		IncondensableLoss: DefaultIncondensableLoss,
		TargetBand:        DefaultTargetBand,
	}
}

// Result is the "Evaporadores" report. Flow-like series are in t/h despite the kg/h labels.
type Result struct {
	FinalBrix        float64   `json:"Brix Final (º)" yaml:"Brix Final (º)"`
	EffectBrix       []float64 `json:"Brix Efeitos (º)" yaml:"Brix Efeitos (º)"`
	TotalConsumption float64   `json:"Consumo Total de Vapor (kg/h)" yaml:"Consumo Total de Vapor (kg/h)"`
	Consumption      []float64 `json:"Lista Consumo por Efeito (kg/h)" yaml:"Lista Consumo por Efeito (kg/h)"`
	VaporIn          []float64 `json:"Lista Vapor Entrada por Efeito (kg/h)" yaml:"Lista Vapor Entrada por Efeito (kg/h)"`
	VEInjection      float64   `json:"Injeção de Vapor VE (kg/h)" yaml:"Injeção de Vapor VE (kg/h)"`
	EvaporationRate  []float64 `json:"Taxa de Evaporação (%)" yaml:"Taxa de Evaporação (%)"`
	Generated        []float64 `json:"Lista de Vapores Gerados (kg/h)" yaml:"Lista de Vapores Gerados (kg/h)"`
	Flows            []float64 `json:"Vazão de Caldo em Cada Efeito (kg/h)" yaml:"Vazão de Caldo em Cada Efeito (kg/h)"`
	SpecificHeat     []float64 `json:"Lista de Cp do Caldo (kcal/kg)" yaml:"Lista de Cp do Caldo (kcal/kg)"`
	UsefulVapor      []float64 `json:"Lista de Vapor Útil (kg/h)" yaml:"Lista de Vapor Útil (kg/h)"`
	Temperatures     []float64 `json:"Lista de Temperatura em cada Efeito (ºC)" yaml:"Lista de Temperatura em cada Efeito (ºC)"`
	Bleeds           []float64 `json:"Lista de Sangrias em cada efeito (kg/h)" yaml:"Lista de Sangrias em cada efeito (kg/h)"`

	Multipliers [2]float64        `json:"Multiplicadores" yaml:"Multiplicadores"`
	Phase       trace.SearchPhase `json:"Fase da Busca" yaml:"Fase da Busca"`
}

// FinalFlow is the syrup flow leaving the last effect (t/h, rounded to 2 decimals).
func (r *Result) FinalFlow() float64 {
	if len(r.Flows) == 0 {
		return 0
	}
	return r.Flows[len(r.Flows)-1]
}

// Solve searches the multipliers for p and returns the report of the chosen run.
func Solve(p Params) *Result {
	table := p.Table
	if table == nil {
		table = steam.DefaultTable()
	}
	if p.TargetBand == (Band{}) {
		p.TargetBand = DefaultTargetBand
	}

	tr := newTrain(p, table)
	mul1, mul2, phase := search(tr, p.TargetBand, p.Trace)
	best := tr.simulate(mul1, mul2)

	logrus.Debugf("evaporator: %s multipliers (%.4f, %.4f) give final Brix %.4f",
		phase, mul1, mul2, best.finalBrix())

	return report(best, mul1, mul2, phase)
}

func report(r *run, mul1, mul2 float64, phase trace.SearchPhase) *Result {
	return &Result{
		FinalBrix:        numeric.RoundTo(r.finalBrix(), 2),
		EffectBrix:       append([]float64(nil), r.brix[:]...),
		TotalConsumption: numeric.RoundTo(r.totalConsumption(), 6),
		Consumption:      numeric.Thousandths(r.consumption[:]),
		VaporIn:          numeric.Thousandths(r.vaporIn[:]),
		VEInjection:      numeric.RoundTo((r.vaporIn[0]+r.vaporIn[1])/1000, 2),
		EvaporationRate:  append([]float64(nil), r.evapRate[:]...),
		Generated:        numeric.Thousandths(r.generated[:]),
		Flows:            numeric.Thousandths(r.flow[:]),
		SpecificHeat:     numeric.RoundAll(r.cp[:], 2),
		UsefulVapor:      numeric.Thousandths(r.useful[:]),
		Temperatures:     append([]float64(nil), r.temps[:]...),
		Bleeds:           numeric.Thousandths(r.bleed[:]),
		Multipliers:      [2]float64{mul1, mul2},
		Phase:            phase,
	}
}
