package excel

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"veristat/internal/errors"
)

// ReportWriter writes batch result tables to an Excel workbook, one sheet
// per table.
type ReportWriter struct {
	filePath string
	file     *excelize.File
}

// NewReportWriter creates a writer targeting the given .xlsx path
func NewReportWriter(filePath string) *ReportWriter {
	return &ReportWriter{
		filePath: filePath,
		file:     excelize.NewFile(),
	}
}

// AddSheet writes a header row plus data rows onto a named sheet
func (w *ReportWriter) AddSheet(name string, header []string, rows [][]string) error {
	index, err := w.file.NewSheet(name)
	if err != nil {
		return errors.Wrapf(err, "failed to create sheet %s", name)
	}
	w.file.SetActiveSheet(index)

	if err := w.writeRow(name, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := w.writeRow(name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

// Save removes the default empty sheet and writes the workbook to disk
func (w *ReportWriter) Save() error {
	// Sheet1 is the default sheet excelize creates; drop it if we added
	// our own sheets.
	if len(w.file.GetSheetList()) > 1 {
		if err := w.file.DeleteSheet("Sheet1"); err != nil {
			log.Printf("[ReportWriter] could not remove default sheet: %v", err)
		}
	}
	if err := w.file.SaveAs(w.filePath); err != nil {
		return errors.Wrapf(err, "failed to save workbook %s", w.filePath)
	}
	log.Printf("[ReportWriter] wrote report workbook: %s", w.filePath)
	return nil
}

func (w *ReportWriter) writeRow(sheet string, rowNum int, cells []string) error {
	for col, value := range cells {
		name, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return errors.Wrap(err, "bad cell coordinates")
		}
		if err := w.file.SetCellValue(sheet, name, value); err != nil {
			return errors.Wrap(err, fmt.Sprintf("failed to set cell %s", name))
		}
	}
	return nil
}
