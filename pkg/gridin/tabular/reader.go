// Package tabular reads delimited sheet exports into ordered row records
// and provides the shared cell coercion helpers.
package tabular

import (
	"encoding/csv"
	"os"
	"strings"
)

// Row maps a header name to the trimmed cell value of one record.
type Row map[string]string

// Table is an ordered sequence of rows. Headers preserves the source
// column order, which carries meaning for wide time-series sheets.
type Table struct {
	Headers []string
	Rows    []Row
}

// ReadFile loads a CSV file into a Table. Rows shorter than the header are
// padded with empty cells; cells beyond the header are dropped. A file with
// only a header row yields an empty Rows slice. Callers distinguish a
// missing file via os.IsNotExist on the returned error.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	t := &Table{Headers: headers}
	for _, rec := range records[1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = strings.TrimSpace(rec[i])
			} else {
				row[h] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// HasColumn reports whether the table header contains the named column.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the subset of required columns absent from the
// table header, in the given order.
func (t *Table) MissingColumns(required []string) []string {
	var missing []string
	for _, c := range required {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}
