package report

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the attendance workbook.
const (
	AttendanceSheet = "Attendance"
	SummarySheet    = "Summary"
)

// ErrNoRows is returned when a report is requested for an empty row set.
var ErrNoRows = errors.New("failed to generate report, 0 attendance rows were provided")

// Employee identifies whose attendance a report covers.
type Employee struct {
	Code       string
	FullName   string
	Department string
}

// AttendanceRow holds one line of the attendance sheet.
type AttendanceRow struct {
	Date   time.Time
	Status string
}

// Generator holds the state for the Excel report generation process.
type Generator struct {
	file        *excelize.File
	headerStyle int
}

// NewGenerator creates a new report generator.
func NewGenerator() *Generator {
	return &Generator{
		file: excelize.NewFile(),
	}
}

// GenerateAttendanceReport builds a workbook with the attendance rows of one
// employee on the Attendance sheet and the employee details with the two status
// totals on the Summary sheet. Rows are written in the order given.
func GenerateAttendanceReport(employee Employee, rows []AttendanceRow, totalPresent, totalAbsent int64) (*bytes.Buffer, error) {
	var err error

	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	gen := NewGenerator()
	defer gen.file.Close()

	if gen.headerStyle, err = gen.newHeaderStyle(); err != nil {
		return nil, err
	}

	if err = gen.addAttendanceSheet(rows); err != nil {
		return nil, fmt.Errorf("failed to add attendance sheet: %w", err)
	}

	if err = gen.addSummarySheet(employee, totalPresent, totalAbsent); err != nil {
		return nil, fmt.Errorf("failed to add summary sheet: %w", err)
	}

	// delete default sheet
	if sheetIndex, _ := gen.file.GetSheetIndex("Sheet1"); sheetIndex != -1 {
		if err = gen.file.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("failed to delete default sheet 'Sheet1': %w", err)
		}
	}

	// setup attendance sheet as active
	gen.file.SetActiveSheet(0)

	buffer, err := gen.file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write data from saved file: %w", err)
	}

	return buffer, nil
}

func (g *Generator) newHeaderStyle() (int, error) {
	style, err := g.file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Vertical: "center", Horizontal: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create new style: %w", err)
	}
	return style, nil
}

// addAttendanceSheet writes the header, one row per record and a table over them.
func (g *Generator) addAttendanceSheet(rows []AttendanceRow) error {
	var err error
	headerIndex := 2

	if _, err = g.file.NewSheet(AttendanceSheet); err != nil {
		return fmt.Errorf("failed to generate new sheet '%s': %w", AttendanceSheet, err)
	}

	headers := []string{"Date", "Status"}
	if err = g.file.SetSheetRow(AttendanceSheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to set sheet row for headers: %w", err)
	}
	if err = g.file.SetCellStyle(AttendanceSheet, "A1", "B1", g.headerStyle); err != nil {
		return fmt.Errorf("failed to set cell style for headers: %w", err)
	}
	if err = g.file.SetColWidth(AttendanceSheet, "A", "B", 16); err != nil { //nolint:mnd // column width
		return fmt.Errorf("failed to set column width: %w", err)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+headerIndex)
		values := []interface{}{row.Date.Format("2006-01-02"), row.Status}
		if err = g.file.SetSheetRow(AttendanceSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to add row '%d': %w", i+headerIndex, err)
		}
	}

	if err = g.file.AddTable(AttendanceSheet, &excelize.Table{
		Range:     fmt.Sprintf("A1:B%d", len(rows)+1),
		Name:      "table_attendance",
		StyleName: "TableStyleMedium9",
	}); err != nil {
		return fmt.Errorf("failed to add table: %w", err)
	}

	return nil
}

// addSummarySheet writes a two column key/value block describing the employee.
func (g *Generator) addSummarySheet(employee Employee, totalPresent, totalAbsent int64) error {
	if _, err := g.file.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("failed to generate new sheet '%s': %w", SummarySheet, err)
	}

	lines := [][]interface{}{
		{"Employee ID", employee.Code},
		{"Full Name", employee.FullName},
		{"Department", employee.Department},
		{"Total Present", totalPresent},
		{"Total Absent", totalAbsent},
	}
	for i, line := range lines {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := g.file.SetSheetRow(SummarySheet, cell, &line); err != nil {
			return fmt.Errorf("failed to set summary row '%d': %w", i+1, err)
		}
	}

	if err := g.file.SetCellStyle(SummarySheet, "A1", fmt.Sprintf("A%d", len(lines)), g.headerStyle); err != nil {
		return fmt.Errorf("failed to set cell style for summary labels: %w", err)
	}
	if err := g.file.SetColWidth(SummarySheet, "A", "B", 24); err != nil { //nolint:mnd // column width
		return fmt.Errorf("failed to set column width: %w", err)
	}

	return nil
}
