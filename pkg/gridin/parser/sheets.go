// Package parser maps sheet exports into typed entity records and decodes
// wide-format time-series columns into value descriptors.
package parser

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/tabular"
)

// readRequired loads a mandatory sheet. A missing file or a missing
// required column aborts parsing of that entity type.
func readRequired(path string, required []string) (*tabular.Table, error) {
	sheet := filepath.Base(path)

	t, err := tabular.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &SheetError{Sheet: sheet, Err: ErrSheetNotFound}
		}
		return nil, &SheetError{Sheet: sheet, Err: err}
	}

	if missing := t.MissingColumns(required); len(missing) > 0 {
		return nil, &SheetError{
			Sheet: sheet,
			Err:   fmt.Errorf("%w %q (have %v)", ErrMissingColumn, missing[0], t.Headers),
		}
	}
	return t, nil
}

// readOptional loads an optional sheet. A missing or unreadable file, an
// empty sheet, or a missing required column degrades to nil with a
// warning; callers then return an empty result.
func readOptional(path string, required []string, log *logrus.Logger) *tabular.Table {
	sheet := filepath.Base(path)

	t, err := tabular.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("sheet", sheet).Warn("sheet file not found, skipping")
		} else {
			log.WithField("sheet", sheet).WithError(err).Warn("sheet unreadable, skipping")
		}
		return nil
	}

	if t.Empty() {
		log.WithField("sheet", sheet).Warn("sheet has no data rows, skipping")
		return nil
	}

	if missing := t.MissingColumns(required); len(missing) > 0 {
		log.WithFields(logrus.Fields{
			"sheet":  sheet,
			"column": missing[0],
		}).Warn("sheet missing required column, skipping")
		return nil
	}
	return t
}
