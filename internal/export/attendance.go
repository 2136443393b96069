// Package export writes the attendance sheet to an Excel workbook.
package export

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"schooldesk/internal/school"
)

// DefaultSheet names the worksheet when the caller passes none.
const DefaultSheet = "Attendance"

// FileName is the workbook name for a given day, e.g. attendance-2026-10-19.xlsx.
func FileName(day string) string {
	return fmt.Sprintf("attendance-%s.xlsx", day)
}

// WriteAttendance writes a header row and one row per record to a new
// workbook at path, creating parent directories as needed. Boolean columns
// use school.Mark.
func WriteAttendance(path, sheet string, headers []string, records []school.AttendanceRecord) (err error) {
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", cerr)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		row := []any{r.Number, r.Name, school.Mark(r.Present), school.Mark(r.Late), school.Mark(r.Absent)}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(sheet, "B", "B", 16); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	log.Printf("export: wrote %d attendance rows to %s", len(records), path)
	return nil
}
