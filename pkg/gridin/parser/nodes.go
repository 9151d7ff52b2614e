package parser

import (
	"strings"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/models"
	"github.com/esmodel-tools/gridin-go/pkg/gridin/tabular"
)

// ParseNodes reads the nodes sheet into NewNode records. Rows with a blank
// node name are skipped. Cost and inflow start empty and are filled later
// from the price and inflow sheets. Nodes is a mandatory sheet.
func ParseNodes(path string) ([]models.Node, error) {
	t, err := readRequired(path, []string{"node", "is_commodity", "is_res", "is_market"})
	if err != nil {
		return nil, err
	}

	var nodes []models.Node
	for _, row := range t.Rows {
		name := strings.TrimSpace(row["node"])
		if name == "" {
			continue
		}
		nodes = append(nodes, models.Node{
			Name:        name,
			IsCommodity: tabular.Bool(row["is_commodity"]),
			IsMarket:    tabular.Bool(row["is_market"]),
			IsRes:       tabular.Bool(row["is_res"]),
			Cost:        []models.Value{},
			Inflow:      []models.Value{},
		})
	}
	return nodes, nil
}

// stateFloatColumns maps nodes sheet columns onto NodeState fields. The
// two boolean fields are handled separately in ParseNodeStates.
var stateFloatColumns = []struct {
	column string
	field  func(*models.NodeState) *float64
}{
	{"in_max", func(s *models.NodeState) *float64 { return &s.InMax }},
	{"out_max", func(s *models.NodeState) *float64 { return &s.OutMax }},
	{"state_loss_proportional", func(s *models.NodeState) *float64 { return &s.StateLossProportional }},
	{"state_min", func(s *models.NodeState) *float64 { return &s.StateMin }},
	{"state_max", func(s *models.NodeState) *float64 { return &s.StateMax }},
	{"initial_state", func(s *models.NodeState) *float64 { return &s.InitialState }},
	{"t_e_conversion", func(s *models.NodeState) *float64 { return &s.TEConversion }},
	{"residual_value", func(s *models.NodeState) *float64 { return &s.ResidualValue }},
}

// ParseNodeStates reads the nodes sheet again and emits a state input for
// every row flagged is_state. Absent state columns keep their defaults
// (all zero except isScenarioIndependent=true and tEConversion=1).
func ParseNodeStates(path string) ([]models.NodeStateInput, error) {
	t, err := readRequired(path, []string{"node"})
	if err != nil {
		return nil, err
	}

	hasStateFlag := t.HasColumn("is_state")

	var states []models.NodeStateInput
	for _, row := range t.Rows {
		name := strings.TrimSpace(row["node"])
		if name == "" {
			continue
		}
		if hasStateFlag && !tabular.Bool(row["is_state"]) {
			continue
		}

		state := models.DefaultNodeState()
		for _, sc := range stateFloatColumns {
			if !t.HasColumn(sc.column) {
				continue
			}
			dst := sc.field(&state)
			*dst = tabular.Float(row[sc.column], *dst)
		}
		if t.HasColumn("scenario_independent_state") {
			state.IsScenarioIndependent = tabular.Bool(row["scenario_independent_state"])
		}
		if t.HasColumn("is_temp") {
			state.IsTemp = tabular.Bool(row["is_temp"])
		}

		states = append(states, models.NodeStateInput{NodeName: name, State: state})
	}
	return states, nil
}
