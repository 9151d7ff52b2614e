package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/models"
)

func TestParseNodes(t *testing.T) {
	path := writeSheet(t, "nodes.csv",
		"node,is_commodity,is_res,is_market\ntank1,0,0,0\ngrid,yes,no,1\n")

	nodes, err := ParseNodes(path)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	assert.Equal(t, models.Node{
		Name:        "tank1",
		IsCommodity: false,
		IsMarket:    false,
		IsRes:       false,
		Cost:        []models.Value{},
		Inflow:      []models.Value{},
	}, nodes[0])

	assert.True(t, nodes[1].IsCommodity)
	assert.True(t, nodes[1].IsMarket)
	assert.False(t, nodes[1].IsRes)
}

func TestParseNodesSkipsBlankNames(t *testing.T) {
	path := writeSheet(t, "nodes.csv",
		"node,is_commodity,is_res,is_market\n,0,0,0\n  ,0,0,0\ntank1,0,0,0\n")

	nodes, err := ParseNodes(path)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "tank1", nodes[0].Name)
}

func TestParseNodesMissingColumnFatal(t *testing.T) {
	path := writeSheet(t, "nodes.csv", "node,is_commodity,is_res\nn1,0,0\n")

	_, err := ParseNodes(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)

	var sheetErr *SheetError
	require.True(t, errors.As(err, &sheetErr))
	assert.Equal(t, "nodes.csv", sheetErr.Sheet)
}

func TestParseNodesMissingFileFatal(t *testing.T) {
	_, err := ParseNodes(filepath.Join(t.TempDir(), "nodes.csv"))
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestParseNodeStates(t *testing.T) {
	path := writeSheet(t, "nodes.csv",
		"node,is_commodity,is_res,is_market,is_state,in_max,state_max,t_e_conversion,is_temp\n"+
			"tank1,0,0,0,1,5.0,100,,1\n"+
			"grid,0,0,1,0,,,,\n")

	states, err := ParseNodeStates(path)
	require.NoError(t, err)
	require.Len(t, states, 1)

	s := states[0]
	assert.Equal(t, "tank1", s.NodeName)
	assert.Equal(t, 5.0, s.State.InMax)
	assert.Equal(t, 100.0, s.State.StateMax)
	assert.Equal(t, 0.0, s.State.OutMax)
	// empty cell keeps the 1.0 default
	assert.Equal(t, 1.0, s.State.TEConversion)
	assert.True(t, s.State.IsTemp)
	// no scenario_independent_state column keeps the true default
	assert.True(t, s.State.IsScenarioIndependent)
}

func TestParseNodeStatesNoStateColumn(t *testing.T) {
	// without an is_state column every named row produces a state
	path := writeSheet(t, "nodes.csv", "node\ntank1\ntank2\n")

	states, err := ParseNodeStates(path)
	require.NoError(t, err)
	assert.Len(t, states, 2)
	assert.Equal(t, models.DefaultNodeState(), states[0].State)
}
