package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// ExportBundle mirrors the on-screen result table for file export.
type ExportBundle struct {
	Tool    string     `json:"tool" yaml:"tool"`
	Version string     `json:"version" yaml:"version"`
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// exportResult writes the bundle to path; the format follows the file
// extension (.xlsx, .yaml, .json, .csv).
func exportResult(path, tool string, columns []string, rows [][]string) error {
	bundle := ExportBundle{Tool: tool, Version: version, Columns: columns, Rows: rows}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return exportXLSX(path, bundle)
	case ".yaml", ".yml":
		return exportYAML(path, bundle)
	case ".json":
		return exportJSON(path, bundle)
	case ".csv":
		return exportCSV(path, bundle)
	default:
		return fmt.Errorf("unsupported export format %q, use .xlsx, .yaml, .json or .csv", filepath.Ext(path))
	}
}

func exportXLSX(path string, bundle ExportBundle) error {
	f := excelize.NewFile()
	sheet := "Results"
	f.SetSheetName("Sheet1", sheet)

	all := make([][]interface{}, 0, len(bundle.Rows)+1)
	header := make([]interface{}, len(bundle.Columns))
	for i, c := range bundle.Columns {
		header[i] = c
	}
	all = append(all, header)
	for _, row := range bundle.Rows {
		cells := make([]interface{}, len(row))
		for i, c := range row {
			cells[i] = c
		}
		all = append(all, cells)
	}
	writeSheetRows(f, sheet, all)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func writeSheetRows(f *excelize.File, sheet string, rows [][]interface{}) {
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		_ = f.SetSheetRow(sheet, cell, &row)
	}
}

func exportYAML(path string, bundle ExportBundle) error {
	out, err := yaml.Marshal(bundle)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

func exportJSON(path string, bundle ExportBundle) error {
	out, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

func exportCSV(path string, bundle ExportBundle) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(bundle.Columns); err != nil {
		return err
	}
	for _, row := range bundle.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
