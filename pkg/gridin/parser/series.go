package parser

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/models"
	"github.com/esmodel-tools/gridin-go/pkg/gridin/tabular"
)

// DecodeWideSeries decodes a wide-format time-series sheet into a mapping
// from entity name to value descriptors, one per matching column in column
// order. The first column is the time axis and is skipped. Remaining
// headers are "<name>,<scenario>" or bare "<name>"; a scenario of "ALL"
// (case-insensitive) means the value applies across every scenario.
//
// Cells that are empty or non-numeric are dropped from the column, not
// zeroed. A column with no decodable cells is skipped entirely. A column
// whose decoded values are all equal collapses to a constant descriptor;
// equality is exact after float coercion, which is an accepted
// simplification rather than a defect.
//
// A missing or empty file yields an empty map and no error, making the
// corresponding enrichment step a no-op.
func DecodeWideSeries(path string, log *logrus.Logger) (map[string][]models.Value, error) {
	sheet := filepath.Base(path)

	t, err := tabular.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("sheet", sheet).Info("no time-series sheet found, skipping")
			return map[string][]models.Value{}, nil
		}
		return nil, &SheetError{Sheet: sheet, Err: err}
	}

	if len(t.Headers) <= 1 || t.Empty() {
		log.WithField("sheet", sheet).Info("time-series sheet has no data columns, skipping")
		return map[string][]models.Value{}, nil
	}

	out := map[string][]models.Value{}

	for _, header := range t.Headers[1:] {
		name, scenario := splitSeriesHeader(header)
		if name == "" {
			continue
		}

		values := columnValues(t, header)
		if len(values) == 0 {
			continue
		}

		if allEqual(values) {
			out[name] = append(out[name], models.NewConstant(scenario, values[0]))
		} else {
			out[name] = append(out[name], models.NewSeries(scenario, values))
		}
	}

	return out, nil
}

// splitSeriesHeader splits a "<name>,<scenario>" header on the first
// comma. A bare name or an "ALL" scenario yields a nil scenario.
func splitSeriesHeader(header string) (string, *string) {
	h := strings.TrimSpace(header)
	name, scenarioRaw, found := strings.Cut(h, ",")
	name = strings.TrimSpace(name)
	if !found {
		return name, nil
	}
	scenarioRaw = strings.TrimSpace(scenarioRaw)
	if strings.EqualFold(scenarioRaw, "ALL") {
		return name, nil
	}
	return name, &scenarioRaw
}

// columnValues collects the decodable cells of one column in row order.
func columnValues(t *tabular.Table, header string) []float64 {
	var values []float64
	for _, row := range t.Rows {
		if f, ok := tabular.Number(row[header]); ok {
			values = append(values, f)
		}
	}
	return values
}

func allEqual(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
