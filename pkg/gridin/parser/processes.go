package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/models"
	"github.com/esmodel-tools/gridin-go/pkg/gridin/tabular"
)

var processColumns = []string{
	"process",
	"is_cf_fix",
	"is_online",
	"is_res",
	"conversion",
	"eff",
	"load_min",
	"load_max",
	"start_cost",
	"min_online",
	"min_offline",
	"max_online",
	"max_offline",
	"initial_state",
	"scenario_independent_online",
}

// ParseProcesses reads the processes sheet into NewProcess records.
// Processes is a mandatory sheet, and an unrecognized conversion value is
// fatal: conversion has no safe default because it changes model
// semantics downstream. Cf is filled later from the cf sheet.
func ParseProcesses(path string) ([]models.Process, error) {
	t, err := readRequired(path, processColumns)
	if err != nil {
		return nil, err
	}

	var processes []models.Process
	for _, row := range t.Rows {
		name := strings.TrimSpace(row["process"])
		if name == "" {
			continue
		}

		conversion, err := mapConversion(row["conversion"])
		if err != nil {
			return nil, &SheetError{Sheet: filepath.Base(path), Err: err}
		}

		processes = append(processes, models.Process{
			Name:                  name,
			Conversion:            conversion,
			IsCfFix:               tabular.Bool(row["is_cf_fix"]),
			IsOnline:              tabular.Bool(row["is_online"]),
			IsRes:                 tabular.Bool(row["is_res"]),
			Eff:                   tabular.Float(row["eff"], 1.0),
			LoadMin:               tabular.Float(row["load_min"], 0.0),
			LoadMax:               tabular.Float(row["load_max"], 1.0),
			StartCost:             tabular.Float(row["start_cost"], 0.0),
			MinOnline:             tabular.Float(row["min_online"], 0.0),
			MaxOnline:             tabular.Float(row["max_online"], 0.0),
			MinOffline:            tabular.Float(row["min_offline"], 0.0),
			MaxOffline:            tabular.Float(row["max_offline"], 0.0),
			InitialState:          tabular.Bool(row["initial_state"]),
			IsScenarioIndependent: tabular.Bool(row["scenario_independent_online"]),
			Cf:                    []models.Value{},
			EffTs:                 []models.Value{},
			EffOpsFun:             []models.Value{},
		})
	}
	return processes, nil
}

// mapConversion maps the conversion column onto the Conversion enum.
// Accepts the numeric codes 1/2/3 and the synonym strings.
func mapConversion(raw string) (models.Conversion, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "unit", "u":
		return models.ConversionUnit, nil
	case "2", "transfer", "t":
		return models.ConversionTransfer, nil
	case "3", "market", "m":
		return models.ConversionMarket, nil
	}
	return "", fmt.Errorf("%w %q, expected 1/2/3 or Unit/Transfer/Market", ErrBadConversion, raw)
}
