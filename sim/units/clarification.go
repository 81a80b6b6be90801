package units

import "github.com/canesim/canesim/sim"

// DefaultFlashExitTemp is the juice temperature leaving the flash tank (°C).
const DefaultFlashExitTemp = 99.0

// FlashResult is the "Balao Flash" report.
type FlashResult struct {
	ExitFlow   float64 `json:"Vazão de Saída do Balão Flash (ton/h)" yaml:"Vazão de Saída do Balão Flash (ton/h)"`
	ExitVolume float64 `json:"Vazão de Saída do Balão Flash (m³/h)" yaml:"Vazão de Saída do Balão Flash (m³/h)"`
	ExitBrix   float64 `json:"Brix de Saída do Balão Flash (º)" yaml:"Brix de Saída do Balão Flash (º)"`
	Evaporated float64 `json:"Água Evaporada no Balão Flash (ton/h)" yaml:"Água Evaporada no Balão Flash (ton/h)"`
}

// FlashTank flashes superheated juice down to exitTemp, concentrating it by the water evaporated.
func FlashTank(flow, brix, inletTemp, exitTemp float64) FlashResult {
	cp := SpecificHeat(brix)
	drop := inletTemp - exitTemp
	evaporated := flow * cp * (drop / (607 - 0.7*drop))
	exitFlow := flow - evaporated
	exitBrix := (brix * flow) / exitFlow
	return FlashResult{
		ExitFlow:   exitFlow,
		ExitVolume: exitFlow / JuiceDensity(exitBrix),
		ExitBrix:   exitBrix,
		Evaporated: evaporated,
	}
}

// RotaryFilterResult is the "Filtro Rotativo" report.
type RotaryFilterResult struct {
	ExitFlow   float64 `json:"Vazão de Saída do Filtro Rotativo (ton/h)" yaml:"Vazão de Saída do Filtro Rotativo (ton/h)"`
	ExitVolume float64 `json:"Vazão de Saída do Filtro Rotativo (m³/h)" yaml:"Vazão de Saída do Filtro Rotativo (m³/h)"`
	ExitBrix   float64 `json:"Brix de Saída do Filtro Rotativo (º)" yaml:"Brix de Saída do Filtro Rotativo (º)"`
}

// RotaryFilter passes the juice through unchanged in mass and solids.
func RotaryFilter(flow, brix float64) RotaryFilterResult {
	exitFlow := flow
	exitBrix := (brix * flow) / exitFlow
	return RotaryFilterResult{
		ExitFlow:   exitFlow,
		ExitVolume: exitFlow / JuiceDensity(exitBrix),
		ExitBrix:   exitBrix,
	}
}

// DefaultDecanterRetention is the sludge fraction retained by the clarifier.
const DefaultDecanterRetention = 0.17

// DecanterResult is the "Decantador" report.
type DecanterResult struct {
	SludgeFlow  float64 `json:"Vazão de Lodo (ton/h)" yaml:"Vazão de Lodo (ton/h)"`
	JuiceFlow   float64 `json:"Vazão de Caldo na Saída do Decantador (ton/h)" yaml:"Vazão de Caldo na Saída do Decantador (ton/h)"`
	JuiceVolume float64 `json:"Vazão de Caldo na Saída do Decantador (m³/h)" yaml:"Vazão de Caldo na Saída do Decantador (m³/h)"`
	JuiceBrix   float64 `json:"Brix do Caldo na Saída do Decantador (º)" yaml:"Brix do Caldo na Saída do Decantador (º)"`
	JuicePurity float64 `json:"Pureza do Caldo na Saída do Decantador (%)" yaml:"Pureza do Caldo na Saída do Decantador (%)"`
}

// Decanter splits the limed juice into clarified juice and sludge of known Brix.
func Decanter(flow, brix, retention, sludgeBrix, pol float64) DecanterResult {
	sludge := flow * retention
	juice := flow - sludge
	juiceBrix := (brix*flow - sludgeBrix*sludge) / juice
	return DecanterResult{
		SludgeFlow:  sludge,
		JuiceFlow:   juice,
		JuiceVolume: juice / JuiceDensity(juiceBrix),
		JuiceBrix:   juiceBrix,
		JuicePurity: (pol / juiceBrix) * 100,
	}
}

// Press filter defaults: suspended solids in the sludge and solids fraction of the cake.
const (
	DefaultSuspendedSolids = 50.0 // kg/m³
	DefaultCakeSolids      = 0.3
)

// PressFilterResult is the "Filtro Prensa" report.
type PressFilterResult struct {
	FiltrateVolume float64 `json:"Vazão de Filtrado (m³/h)" yaml:"Vazão de Filtrado (m³/h)"`
	FiltrateBrix   float64 `json:"Brix do Filtrado (º)" yaml:"Brix do Filtrado (º)"`
	CakeFlow       float64 `json:"Massa da Torta (ton/h)" yaml:"Massa da Torta (ton/h)"`
}

// PressFilter dewaters the decanter sludge. It returns an *sim.InfeasibilityError when the
// suspended solids leave no liquid, or when the cake would take more mass than the feed.
func PressFilter(massFlow, suspendedSolids, feedBrix, cakeSolids float64) (PressFilterResult, error) {
	feed := massFlow * 1000
	feedVolume := feed / (JuiceDensity(feedBrix) * 1000)
	suspended := suspendedSolids * feedVolume
	liquid := feed - suspended
	if liquid <= 0 {
		return PressFilterResult{}, &sim.InfeasibilityError{
			Stage:  "Filtro Prensa",
			Reason: "negative or zero liquid mass: check suspended solids or sludge flow",
		}
	}
	dissolved := (feedBrix / 100) * liquid
	cake := suspended / cakeSolids
	filtrate := feed - cake
	if filtrate <= 0 {
		return PressFilterResult{}, &sim.InfeasibilityError{
			Stage:  "Filtro Prensa",
			Reason: "filtered mass <= 0: check cake solids fraction or suspended solids",
		}
	}
	filtrateBrix := (100 * dissolved) / filtrate
	return PressFilterResult{
		FiltrateVolume: filtrate / (JuiceDensity(filtrateBrix) * 1000),
		FiltrateBrix:   filtrateBrix,
		CakeFlow:       cake / 1000,
	}, nil
}

// RotaryScreenResult is the "Peneira Rotativa" report.
type RotaryScreenResult struct {
	ExitFlow   float64 `json:"Vazão de Caldo na Saída da Peneira Rotativa (ton/h)" yaml:"Vazão de Caldo na Saída da Peneira Rotativa (ton/h)"`
	ExitVolume float64 `json:"Vazão de Caldo na Saída da Peneira Rotativa (m³/h)" yaml:"Vazão de Caldo na Saída da Peneira Rotativa (m³/h)"`
	ExitBrix   float64 `json:"Brix de Saída da Peneira Rotativa (º)" yaml:"Brix de Saída da Peneira Rotativa (º)"`
}

// RotaryScreen removes fibre fines from the clarified juice; mass and solids pass through.
func RotaryScreen(flow, brix float64) RotaryScreenResult {
	exitFlow := flow
	exitBrix := (brix * flow) / exitFlow
	return RotaryScreenResult{
		ExitFlow:   exitFlow,
		ExitVolume: exitFlow / JuiceDensity(exitBrix),
		ExitBrix:   exitBrix,
	}
}
