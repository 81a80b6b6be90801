package evaporator

import (
	"github.com/canesim/canesim/sim/numeric"
	"github.com/canesim/canesim/sim/steam"
)

// Cascade keys used for both effect groupings of the train.
const (
	DefaultKeyInitial = 11.0
	DefaultKeyFinal   = 9.0
)

// CascadeRow is one step of a pressure-drop cascade with its saturated properties.
type CascadeRow struct {
	Effect      int     `json:"Efeito" yaml:"Efeito"`
	Pressure    float64 `json:"Pressão (bar)" yaml:"Pressão (bar)"`
	Temperature float64 `json:"Temperatura (°C)" yaml:"Temperatura (°C)"`
	Enthalpy    float64 `json:"Entalpia (kcal/kg)" yaml:"Entalpia (kcal/kg)"`
	LatentHeat  float64 `json:"Calor Latente (kcal/kg)" yaml:"Calor Latente (kcal/kg)"`
}

// CascadeResult is a pressure-drop schedule across a sequence of effects.
type CascadeResult struct {
	Rows          []CascadeRow `json:"rows" yaml:"rows"`
	RelativeDrops []float64    `json:"queda_rel" yaml:"queda_rel"`
	TotalDrop     float64      `json:"queda_total" yaml:"queda_total"`
	Drops         []float64    `json:"queda_entre" yaml:"queda_entre"`
}

// Cascade distributes the pressure drop of a seq-effect group starting at pressure (bar).
// Relative drops decrease linearly from keyInitial to keyFinal; the schedule has seq+1 rows,
// each mapped to temperature, enthalpy and latent heat through the table. Pressures are
// rounded to 3 decimals and properties to 2. A seq below 1 is treated as 1.
func Cascade(seq int, pressure, keyInitial, keyFinal float64, table *steam.Table) CascadeResult {
	if seq < 1 {
		seq = 1
	}
	step := 0.0
	if seq > 1 {
		step = (keyInitial - keyFinal) / float64(seq-1)
	}

	rel := make([]float64, 1, seq)
	for i := 1; i < seq; i++ {
		rel = append(rel, (keyInitial-float64(i)*step)/(10*float64(seq)))
	}
	total := numeric.RoundTo(numeric.BarToKgf(pressure-rel[len(rel)-1]), 2)

	drops := make([]float64, len(rel))
	for i, r := range rel {
		drops[i] = r * total
	}

	pressures := make([]float64, seq+1)
	pressures[0] = pressure
	for i := 0; i < seq; i++ {
		pressures[i+1] = pressures[i] - drops[i]
	}

	rows := make([]CascadeRow, len(pressures))
	for i, p := range pressures {
		props := table.AtPressure(p)
		rows[i] = CascadeRow{
			Effect:      i + 1,
			Pressure:    numeric.RoundTo(p, 3),
			Temperature: numeric.RoundTo(props.Temperature, 2),
			Enthalpy:    numeric.RoundTo(props.Enthalpy, 2),
			LatentHeat:  numeric.RoundTo(props.LatentHeat, 2),
		}
	}

	return CascadeResult{Rows: rows, RelativeDrops: rel, TotalDrop: total, Drops: drops}
}
