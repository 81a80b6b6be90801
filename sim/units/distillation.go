package units

// Outlet names a column product stream.
type Outlet string

const (
	OutletVapor   Outlet = "vapor"
	OutletLiquid  Outlet = "liquid"
	OutletBottoms Outlet = "bottoms"
)

// Stream is one column outlet: total flow, ethanol carried and its ethanol fraction.
type Stream struct {
	Flow     float64 `json:"flow" yaml:"flow"`
	Ethanol  float64 `json:"ethanol" yaml:"ethanol"`
	Fraction float64 `json:"fraction" yaml:"fraction"`
}

// ColumnSpec configures an ideal split column. A nil Vapor or Liquid fraction means the
// column has no such outlet.
type ColumnSpec struct {
	Name    string
	Bottoms float64
	Vapor   *float64
	Liquid  *float64
}

// ColumnResult holds the outlets produced by a column; empty when the split is degenerate.
type ColumnResult struct {
	Name    string            `json:"name" yaml:"name"`
	Outlets map[Outlet]Stream `json:"outlets" yaml:"outlets"`
}

// Outlet returns the named stream, or the zero Stream when the column has no such outlet.
func (c ColumnResult) Outlet(o Outlet) Stream {
	return c.Outlets[o]
}

// Column splits the ethanol entering with flow at fraction among its outlets in proportion
// to the normalized outlet fractions. All-zero fractions yield no outlets.
func Column(spec ColumnSpec, flow, fraction float64) ColumnResult {
	ethanolIn := flow * fraction
	res := ColumnResult{Name: spec.Name, Outlets: map[Outlet]Stream{}}

	vapor, liquid := 0.0, 0.0
	if spec.Vapor != nil {
		vapor = *spec.Vapor
	}
	if spec.Liquid != nil {
		liquid = *spec.Liquid
	}
	total := vapor + liquid + spec.Bottoms
	if total == 0 {
		return res
	}

	if spec.Vapor != nil {
		res.Outlets[OutletVapor] = splitStream(ethanolIn*(vapor/total), vapor)
	}
	if spec.Liquid != nil {
		res.Outlets[OutletLiquid] = splitStream(ethanolIn*(liquid/total), liquid)
	}
	res.Outlets[OutletBottoms] = splitStream(ethanolIn*(spec.Bottoms/total), spec.Bottoms)
	return res
}

func splitStream(ethanol, fraction float64) Stream {
	var s Stream
	if fraction > 0 {
		s.Flow = ethanol / fraction
	}
	s.Ethanol = s.Flow * fraction
	if s.Flow > 0 {
		s.Fraction = s.Ethanol / s.Flow
	}
	return s
}

// DistillationInput configures the AA1 -> D -> B column network.
type DistillationInput struct {
	WineFlow       float64 // m³/h
	WineFraction   float64 // ethanol volume fraction of the wine
	AA1Vapor       float64 // ethanol fraction of AA1 top vapor
	AA1Liquid      float64 // ethanol fraction of AA1 top liquid
	DBottoms       float64 // ethanol fraction of D bottoms
	AvailableHours float64 // operating hours per day
}

// Fixed outlet fractions of the column network.
const (
	aa1Bottoms = 0.01
	dLiquid    = 0.05
	bLiquid    = 0.95
	bBottoms   = 0.01
)

// DistillationResult is the "Destilacao" report.
type DistillationResult struct {
	SecondGradeEthanol float64        `json:"Produto Final (ETANOL-2 Fundo D)" yaml:"Produto Final (ETANOL-2 Fundo D)"`
	HydratedEthanol    float64        `json:"Produto Final (ETHID B)" yaml:"Produto Final (ETHID B)"`
	HydratedDaily      float64        `json:"Produto Final (ETHID B) diário" yaml:"Produto Final (ETHID B) diário"`
	Residues           float64        `json:"Resíduos Totais" yaml:"Resíduos Totais"`
	ResidueFraction    float64        `json:"Frac Etanol Resíduos" yaml:"Frac Etanol Resíduos"`
	Columns            []ColumnResult `json:"Colunas" yaml:"Colunas"`
}

// Distillation runs the wine through AA1, feeds D with AA1 top liquid and B with AA1 top
// vapor plus D bottoms.
func Distillation(in DistillationInput) DistillationResult {
	aa1 := Column(ColumnSpec{Name: "AA1", Bottoms: aa1Bottoms, Vapor: ptr(in.AA1Vapor), Liquid: ptr(in.AA1Liquid)},
		in.WineFlow, in.WineFraction)

	aa1Liquid := aa1.Outlet(OutletLiquid)
	dFrac := 0.0
	if aa1Liquid.Flow > 0 {
		dFrac = aa1Liquid.Ethanol / aa1Liquid.Flow
	}
	d := Column(ColumnSpec{Name: "D", Bottoms: in.DBottoms, Liquid: ptr(dLiquid)}, aa1Liquid.Flow, dFrac)

	aa1Vapor := aa1.Outlet(OutletVapor)
	dBottoms := d.Outlet(OutletBottoms)
	bFeed := aa1Vapor.Flow + dBottoms.Flow
	bFrac := 0.0
	if bFeed > 0 {
		bFrac = (aa1Vapor.Ethanol + dBottoms.Ethanol) / bFeed
	}
	b := Column(ColumnSpec{Name: "B", Bottoms: bBottoms, Liquid: ptr(bLiquid)}, bFeed, bFrac)

	residues := aa1.Outlet(OutletBottoms).Flow + dBottoms.Flow + b.Outlet(OutletBottoms).Flow
	residueFrac := 0.0
	if residues > 0 {
		residueFrac = (aa1.Outlet(OutletBottoms).Ethanol + dBottoms.Ethanol + b.Outlet(OutletBottoms).Ethanol) / residues
	}

	hydrated := b.Outlet(OutletLiquid).Ethanol
	return DistillationResult{
		SecondGradeEthanol: dBottoms.Ethanol,
		HydratedEthanol:    hydrated,
		HydratedDaily:      hydrated * in.AvailableHours,
		Residues:           residues,
		ResidueFraction:    residueFrac,
		Columns:            []ColumnResult{aa1, d, b},
	}
}

func ptr(v float64) *float64 { return &v }
