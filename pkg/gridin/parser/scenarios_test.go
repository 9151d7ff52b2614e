package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/models"
)

func TestParseScenarios(t *testing.T) {
	path := writeSheet(t, "scenarios.csv", "name,probability\ns1,0.6\ns2,\"0,4\"\n")

	scenarios := ParseScenarios(path, quietLogger())
	assert.Equal(t, []models.Scenario{
		{Name: "s1", Weight: 0.6},
		{Name: "s2", Weight: 0.4},
	}, scenarios)
}

func TestParseScenariosLegacySpelling(t *testing.T) {
	path := writeSheet(t, "scenarios.csv", "name,propability\ns1,1.0\n")

	scenarios := ParseScenarios(path, quietLogger())
	require.Len(t, scenarios, 1)
	assert.Equal(t, 1.0, scenarios[0].Weight)
}

func TestParseScenariosMissingWeightColumn(t *testing.T) {
	path := writeSheet(t, "scenarios.csv", "name,weight\ns1,1.0\n")
	assert.Empty(t, ParseScenarios(path, quietLogger()))
}

func TestParseScenariosOptional(t *testing.T) {
	assert.Empty(t, ParseScenarios(filepath.Join(t.TempDir(), "scenarios.csv"), quietLogger()))
}

func TestParseRisk(t *testing.T) {
	path := writeSheet(t, "risk.csv", "parameter,value\nalfa,0.1\nbeta,\"0,2\"\n,9\n")

	risks := ParseRisk(path, quietLogger())
	assert.Equal(t, []models.Risk{
		{Parameter: "alfa", Value: 0.1},
		{Parameter: "beta", Value: 0.2},
	}, risks)
}

func TestParseRiskOptional(t *testing.T) {
	assert.Empty(t, ParseRisk(filepath.Join(t.TempDir(), "risk.csv"), quietLogger()))
}
