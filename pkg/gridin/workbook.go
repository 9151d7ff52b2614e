package gridin

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/payload"
)

// ConvertWorkbook writes every sheet of the xlsx workbook as one CSV file
// under csvDir, named after the sanitized sheet name. A sheet whose rows
// cannot be read is skipped with a warning.
func ConvertWorkbook(path, csvDir string, log *logrus.Logger) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrWorkbookNotFound, path)
		}
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ErrNoSheets
	}

	for _, sheetName := range sheets {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			log.WithField("sheet", sheetName).WithError(err).Warn("failed to read sheet, skipping")
			continue
		}

		safeName := payload.Sanitize(sheetName, "sheet")
		csvPath := filepath.Join(csvDir, safeName+".csv")
		if err := writeCSV(csvPath, rows); err != nil {
			return fmt.Errorf("failed to write %s: %w", csvPath, err)
		}
		log.WithFields(logrus.Fields{
			"sheet": sheetName,
			"file":  csvPath,
		}).Info("converted sheet")
	}
	return nil
}

func writeCSV(path string, rows [][]string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
