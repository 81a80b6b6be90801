package evaporator

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/canesim/canesim/sim/numeric"
	"github.com/canesim/canesim/sim/steam"
	"github.com/canesim/canesim/sim/units"
)

// Effects is the number of effects in the evaporator train.
const Effects = 5

// syrupBrix is the theoretical Brix leaving the last effect, used for the EPE profile.
const syrupBrix = 68.0

// Guards applied by the recurrence.
const (
	minDivisor  = 1e-9
	minFlow     = 1e-9
	minArea     = 1e-6
	defaultArea = 1000.0
	minMul      = 0.01
	maxMul      = 10000.0
)

// bleedFraction is the share of each effect's juice flow bled as vapor to the plant.
var bleedFraction = [Effects]float64{100.0 / 350, 14.0 / 350, 14.0 / 350, 0, 0}

// train holds every quantity of the recurrence that does not depend on the multipliers.
type train struct {
	flow0       float64 // kg/h
	brix0       float64
	enthalpy    [Effects + 1]float64
	latent      [Effects + 1]float64
	temps       [Effects + 1]float64 // juice temperature with EPE
	areas       [Effects]float64
	radiation   float64
	incondensed float64
}

// newTrain builds the reference points of the five effects from the odd (3-effect) and
// even (2-effect) pressure cascades anchored at the steam pressure.
func newTrain(p Params, table *steam.Table) *train {
	odd := Cascade(3, p.SteamPressure, DefaultKeyInitial, DefaultKeyFinal, table)
	even := Cascade(2, p.SteamPressure, DefaultKeyInitial, DefaultKeyFinal, table)

	pressures := [Effects]float64{
		p.SteamPressure,
		p.SteamPressure,
		odd.Rows[1].Pressure,
		even.Rows[1].Pressure,
		odd.Rows[2].Pressure,
	}

	tr := &train{
		flow0:       p.JuiceFlow * 1000,
		brix0:       p.InitialBrix,
		radiation:   p.RadiationLoss,
		incondensed: p.IncondensableLoss,
	}
	tr.enthalpy = [Effects + 1]float64{
		table.EnthalpyAtTemperature(p.InletTemp),
		odd.Rows[0].Enthalpy,
		odd.Rows[0].Enthalpy,
		odd.Rows[1].Enthalpy,
		even.Rows[1].Enthalpy,
		odd.Rows[2].Enthalpy,
	}
	tr.latent = [Effects + 1]float64{
		table.LatentHeatAtTemperature(p.InletTemp),
		odd.Rows[0].LatentHeat,
		odd.Rows[0].LatentHeat,
		odd.Rows[1].LatentHeat,
		even.Rows[1].LatentHeat,
		odd.Rows[2].LatentHeat,
	}

	theoretical := numeric.Linspace(p.InitialBrix, syrupBrix, Effects+1)
	var epe [Effects + 1]float64
	for i := 0; i < Effects; i++ {
		mid := (theoretical[i] + theoretical[i+1]) / 2
		epe[i+1] = numeric.FiniteOr((2*p.InitialBrix)/(100-mid), 0)
	}

	tr.temps[0] = p.InletTemp + epe[0]
	for i, pr := range pressures {
		tr.temps[i+1] = numeric.RoundTo(table.TemperatureAt(pr), 2) + epe[i+1]
	}

	for i := 0; i < Effects; i++ {
		a := defaultArea
		if i < len(p.Areas) {
			a = p.Areas[i]
		}
		if math.IsNaN(a) || math.IsInf(a, 0) || math.Abs(a) < minArea {
			a = minArea
		}
		tr.areas[i] = a
	}
	return tr
}

// run is the per-effect state produced by one pass of the recurrence.
type run struct {
	brix        [Effects + 1]float64
	flow        [Effects + 1]float64 // kg/h
	cp          [Effects + 1]float64
	consumption [Effects]float64
	vaporIn     [Effects]float64
	useful      [Effects]float64
	generated   [Effects]float64
	bleed       [Effects]float64
	evapRate    [Effects]float64
	temps       [Effects + 1]float64
}

func (r *run) finalBrix() float64 { return r.brix[Effects] }

func (r *run) totalConsumption() float64 { return floats.Sum(r.consumption[:]) }

// nonNegative keeps v when it is finite and not negative, otherwise returns 0.
func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// simulate runs the forward recurrence for one pair of vapor multipliers.
// Non-finite or negative intermediates are clamped so the run never yields NaN or Inf.
func (tr *train) simulate(mul1, mul2 float64) *run {
	r := &run{temps: tr.temps}
	r.flow[0] = tr.flow0
	r.brix[0] = tr.brix0
	r.cp[0] = units.SpecificHeat(r.brix[0])

	for i := 0; i < Effects; i++ {
		if i <= 1 {
			consumption := r.flow[i] * r.cp[i] * ((tr.temps[i+1] - tr.temps[i]) / numeric.NonZero(tr.enthalpy[i], minDivisor))
			r.consumption[i] = nonNegative(consumption)

			mul := mul1
			if i == 1 {
				mul = mul2
			}
			mul = math.Min(math.Max(mul, minMul), maxMul)
			r.vaporIn[i] = nonNegative(r.consumption[i] * mul)
		}

		radiation := tr.radiation * r.vaporIn[i]
		incondensed := tr.incondensed * r.vaporIn[i]
		r.useful[i] = nonNegative(r.vaporIn[i] - radiation - incondensed - r.consumption[i])

		generated := numeric.FiniteOr((tr.latent[i]/numeric.NonZero(tr.latent[i+1], minDivisor))*r.useful[i], 0)
		if i > 1 {
			flash := r.flow[i] * r.cp[i] * ((tr.temps[i] - tr.temps[i+1]) / numeric.NonZero(tr.latent[i], minDivisor))
			generated += numeric.FiniteOr(flash, 0)
		}
		r.generated[i] = nonNegative(generated)

		r.bleed[i] = r.flow[i] * bleedFraction[i]
		if i <= 2 {
			r.vaporIn[i+2] = nonNegative(r.generated[i] - r.bleed[i])
		}

		next := r.flow[i] - r.generated[i]
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= 0 {
			next = minFlow
		}
		r.flow[i+1] = next

		r.brix[i+1] = numeric.FiniteOr((r.flow[i]*r.brix[i])/r.flow[i+1], 0)
		r.cp[i+1] = units.SpecificHeat(r.brix[i+1])
		r.evapRate[i] = r.generated[i] / tr.areas[i]
	}
	return r
}
