// Package steam holds the saturated-steam reference table used by the heating and
// evaporation models. Lookups are clamped linear interpolations keyed by absolute pressure.
package steam

import (
	"fmt"
	"math"

	"github.com/canesim/canesim/sim/numeric"
)

// Table lists saturated-steam properties sorted ascending by Pressure.
// Units: bar (absolute), °C, kcal/kg, kcal/kg.
type Table struct {
	Pressure    []float64 `yaml:"pressure" json:"pressure"`
	Temperature []float64 `yaml:"temperature" json:"temperature"`
	Enthalpy    []float64 `yaml:"enthalpy" json:"enthalpy"`
	LatentHeat  []float64 `yaml:"latent_heat" json:"latent_heat"`
}

// Properties is a single interpolated row of the table.
type Properties struct {
	Pressure    float64
	Temperature float64
	Enthalpy    float64
	LatentHeat  float64
}

var defaultTable = Table{
	Pressure: []float64{
		0.01, 0.02, 0.03, 0.04, 0.05, 0.06, 0.07, 0.08, 0.09, 0.1, 0.15, 0.2, 0.3,
		0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0, 1.1, 1.2, 1.3, 1.4, 1.5, 1.6, 1.8, 2.0,
		2.2, 2.4, 2.6, 2.8, 3.0,
	},
	Temperature: []float64{
		6.7, 17.2, 23.8, 28.6, 32.5, 35.8, 38.9, 41.2, 43.9, 45.4, 53.6, 59.7, 68.7,
		75.9, 81.3, 86.0, 90.0, 93.5, 96.6, 99.6, 101.8, 104.8, 107.5, 109.9, 112.0,
		114.0, 117.6, 120.9, 124.0, 126.8, 129.5, 131.9, 134.2,
	},
	Enthalpy: []float64{
		600.1, 604.8, 607.7, 609.8, 611.5, 612.9, 613.9, 615.1, 616.1, 617.0, 620.5,
		623.1, 626.8, 629.4, 631.3, 632.9, 634.2, 635.3, 636.3, 637.2, 638.0, 638.7,
		639.4, 640.0, 640.6, 641.1, 642.1, 643.0, 643.8, 644.5, 645.1, 645.7, 646.2,
	},
	LatentHeat: []float64{
		593.0, 587.4, 583.9, 581.1, 578.9, 577.1, 575.0, 574.1, 572.9, 571.6, 567.0,
		563.5, 558.2, 553.7, 550.2, 547.0, 544.1, 541.6, 539.3, 537.1, 535.4, 533.1,
		531.0, 529.1, 527.3, 525.6, 522.4, 519.5, 516.7, 514.1, 511.7, 509.4, 507.2,
	},
}

// DefaultTable returns a copy of the built-in table (0.01–3.0 bar).
func DefaultTable() *Table {
	return defaultTable.Clone()
}

// Clone returns a deep copy so callers can never mutate the shared default.
func (t *Table) Clone() *Table {
	return &Table{
		Pressure:    append([]float64(nil), t.Pressure...),
		Temperature: append([]float64(nil), t.Temperature...),
		Enthalpy:    append([]float64(nil), t.Enthalpy...),
		LatentHeat:  append([]float64(nil), t.LatentHeat...),
	}
}

// Validate checks the columns have equal length and are finite, and that pressure and
// temperature are strictly ascending (the temperature-keyed lookups interpolate on it).
func (t *Table) Validate() error {
	n := len(t.Pressure)
	if n < 2 {
		return fmt.Errorf("reference table needs at least 2 rows, got %d", n)
	}
	cols := []struct {
		name string
		data []float64
	}{
		{"pressure", t.Pressure},
		{"temperature", t.Temperature},
		{"enthalpy", t.Enthalpy},
		{"latent_heat", t.LatentHeat},
	}
	for _, col := range cols {
		if len(col.data) != n {
			return fmt.Errorf("reference table column %s has %d rows, pressure has %d", col.name, len(col.data), n)
		}
		for i, v := range col.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("reference table %s[%d] must be a finite number, got %f", col.name, i, v)
			}
		}
	}
	for _, col := range cols[:2] {
		for i := 1; i < n; i++ {
			if col.data[i] <= col.data[i-1] {
				return fmt.Errorf("reference table %s must be strictly ascending at row %d (%f <= %f)",
					col.name, i, col.data[i], col.data[i-1])
			}
		}
	}
	return nil
}

// AtPressure interpolates every property at pressure p (bar).
func (t *Table) AtPressure(p float64) Properties {
	return Properties{
		Pressure:    p,
		Temperature: numeric.Interp1D(t.Pressure, t.Temperature, p),
		Enthalpy:    numeric.Interp1D(t.Pressure, t.Enthalpy, p),
		LatentHeat:  numeric.Interp1D(t.Pressure, t.LatentHeat, p),
	}
}

// TemperatureAt returns the saturation temperature at pressure p.
func (t *Table) TemperatureAt(p float64) float64 {
	return numeric.Interp1D(t.Pressure, t.Temperature, p)
}

// EnthalpyAtTemperature interpolates vapor enthalpy keyed by temperature.
func (t *Table) EnthalpyAtTemperature(temp float64) float64 {
	return numeric.Interp1D(t.Temperature, t.Enthalpy, temp)
}

// LatentHeatAtTemperature interpolates latent heat keyed by temperature.
func (t *Table) LatentHeatAtTemperature(temp float64) float64 {
	return numeric.Interp1D(t.Temperature, t.LatentHeat, temp)
}
