package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"placement-portal-backend/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	exportXLSX = "xlsx"
	exportCSV  = "csv"
)

var exportHeaders = []string{
	"APPLICATION ID", "STUDENT USER ID", "FIRST NAME", "LAST NAME", "EMAIL", "PHONE",
	"ROLL NUMBER", "STATUS", "CURRENT STAGE", "PORTFOLIO URL", "NOTES", "APPLIED AT", "UPDATED AT",
}

func exportRow(app domain.Application) []interface{} {
	s := app.Student
	if s == nil {
		s = &domain.Applicant{}
	}
	return []interface{}{
		app.ID,
		app.StudentUserID,
		deref(s.FirstName),
		deref(s.LastName),
		deref(s.PersonalEmail),
		deref(s.PhoneNumber),
		deref(s.InstituteRollNo),
		string(app.Status),
		app.CurrentStage,
		deref(app.PortfolioURL),
		deref(app.Notes),
		app.AppliedAt.UTC().Format(time.RFC3339),
		app.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func renderApplications(job *domain.Job, apps []domain.Application, format string) (*domain.ApplicationExport, error) {
	base := fmt.Sprintf("job_%d_applications", job.ID)
	if format == exportCSV {
		data, err := applicationsCSV(apps)
		if err != nil {
			return nil, err
		}
		return &domain.ApplicationExport{
			Filename:    base + ".csv",
			ContentType: "text/csv",
			Data:        data,
		}, nil
	}

	data, err := applicationsXLSX(apps)
	if err != nil {
		return nil, err
	}
	return &domain.ApplicationExport{
		Filename:    base + ".xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        data,
	}, nil
}

func applicationsCSV(apps []domain.Application) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, app := range apps {
		values := exportRow(app)
		record := make([]string, len(values))
		for i, v := range values {
			record[i] = fmt.Sprint(v)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func applicationsXLSX(apps []domain.Application) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Applications"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, app := range apps {
		for colIdx, value := range exportRow(app) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range exportHeaders {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
