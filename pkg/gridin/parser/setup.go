package parser

import (
	"strings"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/models"
	"github.com/esmodel-tools/gridin-go/pkg/gridin/tabular"
)

// ParseSetup reads the setup sheet (parameter/value rows) into the global
// setup record. Unknown parameter names are ignored; parameters absent
// from the sheet leave their field nil so they are omitted from the
// payload. Setup is a mandatory sheet.
func ParseSetup(path string) (*models.Setup, error) {
	t, err := readRequired(path, []string{"parameter", "value"})
	if err != nil {
		return nil, err
	}

	setup := &models.Setup{}

	for _, row := range t.Rows {
		param := strings.TrimSpace(row["parameter"])
		raw := row["value"]

		switch param {
		case "use_market_bids":
			setup.UseMarketBids = boolPtr(raw)
		case "use_reserves":
			setup.UseReserves = boolPtr(raw)
		case "use_reserve_realisation":
			setup.UseReserveRealisation = boolPtr(raw)
		case "use_node_dummy_variables":
			setup.UseNodeDummyVariables = boolPtr(raw)
		case "use_ramp_dummy_variables":
			setup.UseRampDummyVariables = boolPtr(raw)
		case "common_start_timesteps":
			if n, ok := tabular.Int(raw); ok {
				setup.CommonTimesteps = &n
			}
		case "common_scenario_name":
			if s := strings.TrimSpace(raw); s != "" {
				setup.CommonScenarioName = &s
			}
		case "node_dummy_variable_cost":
			setup.NodeDummyVariableCost = floatPtr(raw)
		case "ramp_dummy_variable_cost":
			setup.RampDummyVariableCost = floatPtr(raw)
		}
	}

	return setup, nil
}

func boolPtr(raw string) *bool {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	b := tabular.Bool(raw)
	return &b
}

func floatPtr(raw string) *float64 {
	f, ok := tabular.Number(raw)
	if !ok {
		return nil
	}
	return &f
}
