package parser

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/models"
	"github.com/esmodel-tools/gridin-go/pkg/gridin/tabular"
)

// ParseScenarios reads the scenarios sheet into (name, weight) records.
// The weight column is accepted under both the correct spelling
// "probability" and the legacy sheet typo "propability". The sheet is
// optional.
func ParseScenarios(path string, log *logrus.Logger) []models.Scenario {
	t := readOptional(path, []string{"name"}, log)
	if t == nil {
		return []models.Scenario{}
	}

	probColumn := ""
	for _, candidate := range []string{"probability", "propability"} {
		if t.HasColumn(candidate) {
			probColumn = candidate
			break
		}
	}
	if probColumn == "" {
		log.WithField("sheet", "scenarios.csv").Warn(
			"missing probability/propability column, skipping scenarios")
		return []models.Scenario{}
	}

	var scenarios []models.Scenario
	for _, row := range t.Rows {
		name := strings.TrimSpace(row["name"])
		if name == "" {
			continue
		}
		scenarios = append(scenarios, models.Scenario{
			Name:   name,
			Weight: tabular.Float(row[probColumn], 0.0),
		})
	}
	return scenarios
}
