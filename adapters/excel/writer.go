// Package excel writes diagnostics reports to Excel workbooks.
package excel

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"github.com/ArtesiaWater/pastas/adapters/stats"
)

const reportSheet = "Summary"

// ReportWriter writes a single report to an .xlsx file
type ReportWriter struct {
	filePath string
}

// NewReportWriter creates a writer targeting the given file path
func NewReportWriter(filePath string) *ReportWriter {
	return &ReportWriter{filePath: filePath}
}

// Write stores the report as a two-column table on the Summary sheet
func (w *ReportWriter) Write(report *stats.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return fmt.Errorf("failed to name report sheet: %w", err)
	}

	if err := f.SetCellValue(reportSheet, "A1", "Statistic"); err != nil {
		return err
	}
	if err := f.SetCellValue(reportSheet, "B1", "Value"); err != nil {
		return err
	}

	for i, row := range report.Rows {
		cellA, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		cellB, err := excelize.CoordinatesToCellName(2, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(reportSheet, cellA, row.Label); err != nil {
			return err
		}
		if err := f.SetCellValue(reportSheet, cellB, row.Value); err != nil {
			return err
		}
	}

	if err := f.SaveAs(w.filePath); err != nil {
		return fmt.Errorf("failed to save report workbook: %w", err)
	}

	log.Printf("[ReportWriter] Report %s written to %s (%d rows)", report.ID, w.filePath, len(report.Rows))
	return nil
}
