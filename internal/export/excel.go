// Package export renders the warden reports as Excel workbooks.
package export

import (
	"bytes"
	"fmt"
	"time"

	"hostelhub/backend/internal/models"

	"github.com/xuri/excelize/v2"
)

var complaintHeader = []string{
	"ID", "Student", "Room", "Category", "Description",
	"Status", "Assigned To", "Created At", "Resolved At", "Rating", "Feedback",
}

var attendanceHeader = []string{
	"Date", "Student ID", "Student", "Status", "Marked By",
}

// ComplaintReport renders the complaint list as a styled workbook.
func ComplaintReport(complaints []models.Complaint) ([]byte, error) {
	rows := make([][]any, 0, len(complaints))
	for _, c := range complaints {
		resolvedAt := ""
		if c.ResolvedAt != nil {
			resolvedAt = c.ResolvedAt.Format(time.RFC3339)
		}
		rating := ""
		if c.Rating != nil {
			rating = fmt.Sprintf("%d", *c.Rating)
		}
		rows = append(rows, []any{
			c.ID, c.StudentName, c.RoomNumber, c.Category, c.Description,
			c.Status, c.AssignedTo, c.CreatedAt.Format(time.RFC3339), resolvedAt, rating, c.Feedback,
		})
	}
	return generateSheet("Complaints", complaintHeader, rows)
}

// AttendanceReport renders the attendance records as a workbook.
func AttendanceReport(records []models.AttendanceRecord) ([]byte, error) {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{r.Date, r.StudentID, r.StudentName, r.Status, r.MarkedBy})
	}
	return generateSheet("Attendance", attendanceHeader, rows)
}

func generateSheet(sheetName string, headers []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	// Don't defer Close() here, WriteTo needs the file open.

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for rowIdx, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
