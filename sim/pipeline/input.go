package pipeline

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/canesim/canesim/sim"
)

// ProcessInput is the intake record of a sugar simulation. Field names on the wire are the
// plant form names. Nil fields are "not provided". Moisture, fiber and primary Brix divide the
// milling balance, so zero is rejected for them.
type ProcessInput struct {
	ToneladaCana              *float64 `yaml:"toneladaCana" json:"toneladaCana" validate:"required,gt=0"`
	UmidadeBagaco             *float64 `yaml:"umidadeBagaço" json:"umidadeBagaço" validate:"required,gt=0,lte=100"`
	FibraCana                 *float64 `yaml:"fibraCana" json:"fibraCana" validate:"required,gt=0,lte=100"`
	DisponibilidadeIndustrial *float64 `yaml:"disponibilidadeIndustrial" json:"disponibilidadeIndustrial" validate:"required,gt=0,lte=100"`
	DisponibilidadeAgricola   *float64 `yaml:"disponibilidadeAgricola" json:"disponibilidadeAgricola" validate:"required,gt=0,lte=100"`
	DisponibilidadeClimatica  *float64 `yaml:"disponibilidadeClimatica" json:"disponibilidadeClimatica" validate:"required,gt=0,lte=100"`
	BrixCaldoPrimario         *float64 `yaml:"brixCaldoPrimario" json:"brixCaldoPrimario" validate:"required,gt=0"`
	PolCaldoPrimario          *float64 `yaml:"polCaldoPrimario" json:"polCaldoPrimario" validate:"required"`
	TemperaturaCaldoPrimario  *float64 `yaml:"temperaturaCaldoPrimario" json:"temperaturaCaldoPrimario" validate:"required"`
	VazaoCaldoPrimario        *float64 `yaml:"vazaoCaldoPrimario" json:"vazaoCaldoPrimario" validate:"required,gt=0"`
	PolCaldo                  *float64 `yaml:"polCaldo" json:"polCaldo" validate:"required"`
	BrixLodo                  *float64 `yaml:"brixLodo" json:"brixLodo" validate:"required"`
	PolFiltrado               *float64 `yaml:"polFiltrado" json:"polFiltrado" validate:"required"`
	PressaoVapor              *float64 `yaml:"pressaoVapor" json:"pressaoVapor" validate:"required"`
	PolXarope                 *float64 `yaml:"polXarope" json:"polXarope" validate:"required"`
	AreaEvaporador            string   `yaml:"areaEvaporador" json:"areaEvaporador" validate:"required"`

	// Final molasses quality; the plant defaults apply when absent.
	BrixMelF  *float64 `yaml:"brixMelF,omitempty" json:"brixMelF,omitempty" validate:"omitempty,gt=0,lte=100"`
	PurezMelF *float64 `yaml:"purezMelF,omitempty" json:"purezMelF,omitempty" validate:"omitempty,gt=0,lt=100"`
}

// numericFields lists the numeric inputs in canonical form order.
func (in *ProcessInput) numericFields() []formField {
	return []formField{
		{"toneladaCana", &in.ToneladaCana},
		{"umidadeBagaço", &in.UmidadeBagaco},
		{"fibraCana", &in.FibraCana},
		{"disponibilidadeIndustrial", &in.DisponibilidadeIndustrial},
		{"disponibilidadeAgricola", &in.DisponibilidadeAgricola},
		{"disponibilidadeClimatica", &in.DisponibilidadeClimatica},
		{"brixCaldoPrimario", &in.BrixCaldoPrimario},
		{"polCaldoPrimario", &in.PolCaldoPrimario},
		{"temperaturaCaldoPrimario", &in.TemperaturaCaldoPrimario},
		{"vazaoCaldoPrimario", &in.VazaoCaldoPrimario},
		{"polCaldo", &in.PolCaldo},
		{"brixLodo", &in.BrixLodo},
		{"polFiltrado", &in.PolFiltrado},
		{"pressaoVapor", &in.PressaoVapor},
		{"polXarope", &in.PolXarope},
		{"brixMelF", &in.BrixMelF},
		{"purezMelF", &in.PurezMelF},
	}
}

// Set assigns one form value by its wire name. An empty value clears the field.
func (in *ProcessInput) Set(name, value string) error {
	if name == "areaEvaporador" {
		in.AreaEvaporador = strings.TrimSpace(value)
		return nil
	}
	return setNumeric(in.numericFields(), name, value)
}

// Validate checks presence first, reporting the first missing field in form order, then
// ranges. It returns a *sim.ValidationError.
func (in *ProcessInput) Validate() error {
	return validateStruct(in)
}

// ProcessInputFromForm coerces raw form values into a ProcessInput.
func ProcessInputFromForm(form map[string]string) (*ProcessInput, error) {
	in := &ProcessInput{}
	if err := applyForm(form, in.Set); err != nil {
		return nil, err
	}
	return in, nil
}

// SteamInput is the intake record of the boiler simulation.
type SteamInput struct {
	ToneladaCana              *float64 `yaml:"toneladaCana" json:"toneladaCana" validate:"required,gt=0"`
	UmidadeBagaco             *float64 `yaml:"umidadeBagaço" json:"umidadeBagaço" validate:"required,gt=0,lte=100"`
	FibraCana                 *float64 `yaml:"fibraCana" json:"fibraCana" validate:"required,gt=0,lte=100"`
	DisponibilidadeIndustrial *float64 `yaml:"disponibilidadeIndustrial" json:"disponibilidadeIndustrial" validate:"required,gt=0,lte=100"`
	DisponibilidadeAgricola   *float64 `yaml:"disponibilidadeAgricola" json:"disponibilidadeAgricola" validate:"required,gt=0,lte=100"`
	DisponibilidadeClimatica  *float64 `yaml:"disponibilidadeClimatica" json:"disponibilidadeClimatica" validate:"required,gt=0,lte=100"`
	VazBagacoCald3            *float64 `yaml:"vazBagacoCald3" json:"vazBagacoCald3" validate:"required,gte=0"`
	VazBagacoCald4            *float64 `yaml:"vazBagacoCald4" json:"vazBagacoCald4" validate:"required,gte=0"`
}

func (in *SteamInput) numericFields() []formField {
	return []formField{
		{"toneladaCana", &in.ToneladaCana},
		{"umidadeBagaço", &in.UmidadeBagaco},
		{"fibraCana", &in.FibraCana},
		{"disponibilidadeIndustrial", &in.DisponibilidadeIndustrial},
		{"disponibilidadeAgricola", &in.DisponibilidadeAgricola},
		{"disponibilidadeClimatica", &in.DisponibilidadeClimatica},
		{"vazBagacoCald3", &in.VazBagacoCald3},
		{"vazBagacoCald4", &in.VazBagacoCald4},
	}
}

// Set assigns one form value by its wire name. An empty value clears the field.
func (in *SteamInput) Set(name, value string) error {
	return setNumeric(in.numericFields(), name, value)
}

// Validate checks presence, then ranges. It returns a *sim.ValidationError.
func (in *SteamInput) Validate() error {
	return validateStruct(in)
}

// SteamInputFromForm coerces raw form values into a SteamInput.
func SteamInputFromForm(form map[string]string) (*SteamInput, error) {
	in := &SteamInput{}
	if err := applyForm(form, in.Set); err != nil {
		return nil, err
	}
	return in, nil
}

type formField struct {
	name string
	ptr  **float64
}

func setNumeric(fields []formField, name, value string) error {
	for _, f := range fields {
		if f.name != name {
			continue
		}
		v, err := parseFormNumber(value)
		if err != nil {
			return &sim.ValidationError{Field: name, Reason: err.Error()}
		}
		*f.ptr = v
		return nil
	}
	return &sim.ValidationError{Field: name, Reason: "unknown field"}
}

// parseFormNumber parses a form number, accepting a decimal comma. Blank means not provided.
func parseFormNumber(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%q is not a number", s)
	}
	return &v, nil
}

// applyForm sets every form entry in sorted key order so the reported error is stable.
func applyForm(form map[string]string, set func(name, value string) error) error {
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := set(k, form[k]); err != nil {
			return err
		}
	}
	return nil
}

// Float returns a pointer to v, for building inputs in code.
func Float(v float64) *float64 { return &v }

// value dereferences an input, reading an absent one as 0.
func value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// leadingInt parses the integer prefix of s the way plant forms label equipment ("1000 m²").
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
