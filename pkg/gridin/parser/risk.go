package parser

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/models"
	"github.com/esmodel-tools/gridin-go/pkg/gridin/tabular"
)

// ParseRisk reads the risk sheet into (parameter, value) records. The
// sheet is optional.
func ParseRisk(path string, log *logrus.Logger) []models.Risk {
	t := readOptional(path, []string{"parameter", "value"}, log)
	if t == nil {
		return []models.Risk{}
	}

	var risks []models.Risk
	for _, row := range t.Rows {
		param := strings.TrimSpace(row["parameter"])
		if param == "" {
			continue
		}
		risks = append(risks, models.Risk{
			Parameter: param,
			Value:     tabular.Float(row["value"], 0.0),
		})
	}
	return risks
}
