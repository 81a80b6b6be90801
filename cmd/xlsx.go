package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/canesim/canesim/sim"
)

// maxSheetName is the longest sheet name a workbook accepts.
const maxSheetName = 31

type sheetRow struct {
	label  string
	values []any
}

type sheet struct {
	name string
	rows []sheetRow
}

// header labels the value columns. Sheets holding series get one column per position, numbered from 00.
func (s sheet) header() *[]any {
	width := 1
	for _, r := range s.rows {
		width = max(width, len(r.values))
	}
	row := []any{"Campo"}
	if width == 1 {
		row = append(row, "Valor")
		return &row
	}
	for _, l := range sim.EffectLabels(width, "Efeito", false) {
		row = append(row, l)
	}
	return &row
}

// exportWorkbook writes the report to an .xlsx file with one sheet per stage, in report
// order. Stages grouping other stages (the ethanol path) get one sheet per inner stage.
func exportWorkbook(path string, report any) error {
	var root yaml.Node
	if err := root.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	sheets, err := reportSheets(&root)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	first := -1
	for _, s := range sheets {
		idx, err := f.NewSheet(s.name)
		if err != nil {
			return fmt.Errorf("creating sheet %q: %w", s.name, err)
		}
		if first < 0 {
			first = idx
		}
		if err := f.SetSheetRow(s.name, "A1", s.header()); err != nil {
			return err
		}
		for i, r := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			row := append([]any{r.label}, r.values...)
			if err := f.SetSheetRow(s.name, cell, &row); err != nil {
				return fmt.Errorf("writing sheet %q: %w", s.name, err)
			}
		}
	}
	if first >= 0 {
		f.SetActiveSheet(first)
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("removing default sheet: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// reportSheets lays a report mapping out as sheets. Top-level scalar entries are gathered
// on a trailing "Resumo" sheet.
func reportSheets(root *yaml.Node) ([]sheet, error) {
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("report must be a mapping, got node kind %d", root.Kind)
	}

	var sheets []sheet
	var summary []sheetRow
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i].Value, root.Content[i+1]
		switch {
		case isScalarish(val):
			summary = append(summary, flattenNode(key, val)...)
		case isGroup(val):
			for j := 0; j+1 < len(val.Content); j += 2 {
				sheets = append(sheets, sheet{
					name: sheetName(val.Content[j].Value),
					rows: flattenNode("", val.Content[j+1]),
				})
			}
		default:
			sheets = append(sheets, sheet{name: sheetName(key), rows: flattenNode("", val)})
		}
	}
	if len(summary) > 0 {
		sheets = append(sheets, sheet{name: "Resumo", rows: summary})
	}
	return sheets, nil
}

// flattenNode turns a node into labelled rows. Nested keys are joined with " / " and
// sequences of scalars spread across columns.
func flattenNode(label string, n *yaml.Node) []sheetRow {
	switch n.Kind {
	case yaml.ScalarNode:
		return []sheetRow{{label: label, values: []any{scalarValue(n)}}}
	case yaml.SequenceNode:
		if isScalarish(n) {
			values := make([]any, 0, len(n.Content))
			for _, c := range n.Content {
				values = append(values, scalarValue(c))
			}
			return []sheetRow{{label: label, values: values}}
		}
		var rows []sheetRow
		for i, c := range n.Content {
			rows = append(rows, flattenNode(fmt.Sprintf("%s[%d]", label, i), c)...)
		}
		return rows
	case yaml.MappingNode:
		var rows []sheetRow
		for i := 0; i+1 < len(n.Content); i += 2 {
			rows = append(rows, flattenNode(joinLabel(label, n.Content[i].Value), n.Content[i+1])...)
		}
		return rows
	case yaml.AliasNode:
		return flattenNode(label, n.Alias)
	}
	return nil
}

// isScalarish reports a scalar or a sequence of scalars.
func isScalarish(n *yaml.Node) bool {
	if n.Kind == yaml.ScalarNode {
		return true
	}
	if n.Kind != yaml.SequenceNode {
		return false
	}
	for _, c := range n.Content {
		if c.Kind != yaml.ScalarNode {
			return false
		}
	}
	return true
}

// isGroup reports a mapping whose values are all mappings.
func isGroup(n *yaml.Node) bool {
	if n.Kind != yaml.MappingNode || len(n.Content) == 0 {
		return false
	}
	for i := 1; i < len(n.Content); i += 2 {
		if n.Content[i].Kind != yaml.MappingNode {
			return false
		}
	}
	return true
}

func scalarValue(n *yaml.Node) any {
	switch n.Tag {
	case "!!float", "!!int":
		if v, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return v
		}
	case "!!bool":
		if v, err := strconv.ParseBool(n.Value); err == nil {
			return v
		}
	case "!!null":
		return ""
	}
	return n.Value
}

func joinLabel(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + " / " + key
}

// sheetName strips the characters a sheet name may not hold and truncates it.
func sheetName(s string) string {
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return -1
		}
		return r
	}, s)
	if r := []rune(s); len(r) > maxSheetName {
		s = string(r[:maxSheetName])
	}
	if s == "" {
		s = "Etapa"
	}
	return s
}
