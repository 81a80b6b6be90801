package units

import (
	"fmt"
	"math"

	"github.com/canesim/canesim/sim/numeric"
)

// HeaterKind selects one of the two heating trains of the juice line.
type HeaterKind int

const (
	// Regenerator is the three-unit regenerative heater bank ("Aquecedor").
	Regenerator HeaterKind = iota
	// HeatExchanger is the eight-unit shell-and-tube train ("TrocadorCalor").
	HeatExchanger
)

// String returns the report section name of the heater train.
func (k HeaterKind) String() string {
	switch k {
	case Regenerator:
		return "Aquecedor"
	case HeatExchanger:
		return "TrocadorCalor"
	default:
		return fmt.Sprintf("HeaterKind(%d)", int(k))
	}
}

// HeaterGeometry describes one train of identical heating units.
type HeaterGeometry struct {
	Units         int     `yaml:"units"`
	TargetTemp    float64 `yaml:"target_temp"`    // heating steam temperature (°C)
	InnerDiameter float64 `yaml:"inner_diameter"` // tube inner diameter (m)
	PassesPerUnit int     `yaml:"passes_per_unit"`
	Tubes         int     `yaml:"tubes"`       // tubes per pass
	TubeLength    float64 `yaml:"tube_length"` // m
}

// Geometry returns the installed geometry of the heater train.
func (k HeaterKind) Geometry() HeaterGeometry {
	if k == Regenerator {
		return HeaterGeometry{Units: 3, TargetTemp: 90, InnerDiameter: 0.0366, PassesPerUnit: 2, Tubes: 33, TubeLength: 5.185}
	}
	return HeaterGeometry{Units: 8, TargetTemp: 114, InnerDiameter: 0.0366, PassesPerUnit: 6, Tubes: 62, TubeLength: 4.4}
}

// HeatingInput feeds a heater train.
type HeatingInput struct {
	Kind      HeaterKind
	Geometry  *HeaterGeometry // nil selects Kind.Geometry()
	InletTemp float64         // °C
	Brix      float64
	Flow      float64 // t/h
}

// HeatingResult is the report of one heater train.
type HeatingResult struct {
	Temperatures   []float64 `json:"Lista de Temperaturas (ºC)" yaml:"Lista de Temperaturas (ºC)"`
	PressureLosses []float64 `json:"Lista de Perdas (kgf/cm²)" yaml:"Lista de Perdas (kgf/cm²)"`
	Velocity       float64   `json:"Velocidade (m/s)" yaml:"Velocidade (m/s)"`
	HeatDuty       float64   `json:"Calor trocado (kcal)" yaml:"Calor trocado (kcal)"`
}

// ExitTemperature is the juice temperature leaving the last unit, or inlet when the train is empty.
func (r HeatingResult) ExitTemperature(inlet float64) float64 {
	if len(r.Temperatures) == 0 {
		return inlet
	}
	return r.Temperatures[len(r.Temperatures)-1]
}

// approachBase is the empirical base of the exponential approach-to-target law.
const approachBase = 2.81

// Heating models juice heating across a train of equal units.
// Each unit moves the juice temperature toward the steam temperature by
// T_next = T_target − (T_target − T_prev)·2.81^exponent.
func Heating(in HeatingInput) HeatingResult {
	g := in.Kind.Geometry()
	if in.Geometry != nil {
		g = *in.Geometry
	}

	cp := SpecificHeat(in.Brix)
	density := JuiceDensity(in.Brix) * 1000

	flowArea := (math.Pi * g.InnerDiameter * g.InnerDiameter / 4) * float64(g.Tubes)
	massFlow := in.Flow * 1000
	volumeFlow := massFlow / 3600 / density
	surface := math.Pi * g.InnerDiameter * float64(g.Tubes) * float64(g.PassesPerUnit) * g.TubeLength
	velocity := volumeFlow / flowArea

	temps := make([]float64, 0, g.Units+1)
	losses := make([]float64, 0, g.Units+1)
	temps = append(temps, in.InletTemp)
	losses = append(losses, 0)

	passes := g.PassesPerUnit
	for i := 0; i < g.Units; i++ {
		coef := g.TargetTemp * (5 + velocity)
		exponent := (-coef * surface) / (massFlow * cp)
		prev := temps[len(temps)-1]
		temps = append(temps, g.TargetTemp-(g.TargetTemp-prev)*math.Pow(approachBase, exponent))

		loss := (0.0025 * velocity * velocity * float64(passes) * (g.TubeLength + 1)) / g.InnerDiameter
		losses = append(losses, loss)
		passes += g.PassesPerUnit
	}

	latent := (607 - 0.7*g.TargetTemp) / 0.95
	duty := massFlow * cp * (temps[len(temps)-1] - in.InletTemp) / latent / 1000

	return HeatingResult{
		Temperatures:   numeric.RoundAll(temps, 2),
		PressureLosses: numeric.RoundAll(numeric.MCAToKgf(losses), 4),
		Velocity:       numeric.RoundTo(velocity, 2),
		HeatDuty:       numeric.RoundTo(duty, 2),
	}
}
