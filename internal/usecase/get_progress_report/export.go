package get_progress_report

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-CourseService/internal/domain"
)

const (
	reportSheet = "Progress"
	emptyCell   = "-"
)

var reportHeader = []interface{}{
	"Student ID",
	"Full name",
	"Course",
	"Total hours",
	"Weekly hours",
	"Completed hours",
	"Remaining hours",
	"Progress %",
	"Attendance %",
	"Attendance band",
	"Original end",
	"Current end",
	"Eligible",
	"Behind schedule",
	"Completed",
	"Warning",
}

// ExportXLSX строит xlsx-файл отчета: строка заголовка и по строке на студента
// Возвращает содержимое файла и предлагаемое имя
func ExportXLSX(resp *Response) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, "", fmt.Errorf("%w: SetSheetName: %v", ErrExport, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, "", fmt.Errorf("%w: NewStyle: %v", ErrExport, err)
	}

	if err := f.SetSheetRow(reportSheet, "A1", &reportHeader); err != nil {
		return nil, "", fmt.Errorf("%w: header: %v", ErrExport, err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(reportHeader))
	if err := f.SetCellStyle(reportSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, "", fmt.Errorf("%w: header style: %v", ErrExport, err)
	}

	f.SetColWidth(reportSheet, "A", "A", 38)
	f.SetColWidth(reportSheet, "B", "C", 28)
	f.SetColWidth(reportSheet, "D", "O", 16)
	f.SetColWidth(reportSheet, "P", "P", 48)

	for i, row := range resp.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", fmt.Errorf("%w: row %d: %v", ErrExport, i, err)
		}
		values := rowValues(row)
		if err := f.SetSheetRow(reportSheet, cell, &values); err != nil {
			return nil, "", fmt.Errorf("%w: row %d: %v", ErrExport, i, err)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", fmt.Errorf("%w: Write: %v", ErrExport, err)
	}

	filename := fmt.Sprintf("progress_%s.xlsx", resp.GeneratedAt.Format(domain.DateFormat))
	return buf, filename, nil
}

func rowValues(row Row) []interface{} {
	courseName, totalHours := emptyCell, interface{}(emptyCell)
	if row.Course != nil {
		courseName = row.Course.Name
		totalHours = row.Course.TotalHours
	}

	s := row.Summary
	return []interface{}{
		row.Student.ID.String(),
		row.Student.FullName,
		courseName,
		totalHours,
		s.WeeklyHours,
		s.CompletedHours,
		s.RemainingHours,
		round2(s.ProgressPercent),
		round2(s.Attendance.Percent),
		string(s.Attendance.Band),
		formatDate(s.Original.DatePtr()),
		formatDate(s.Current.DatePtr()),
		yesNo(s.Eligible),
		yesNo(s.BehindSchedule),
		yesNo(row.Student.IsCompleted),
		row.Warning,
	}
}

func formatDate(d *time.Time) string {
	if d == nil {
		return emptyCell
	}
	return d.Format(domain.DateFormat)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
