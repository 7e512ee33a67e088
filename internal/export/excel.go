package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/lshigami/auriter/internal/model"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet      = "Summary"
	applicationsSheet = "Applications"
	analysisSheet     = "Resume Analysis"
)

var applicationHeaders = []string{"ID", "Applicant", "Email", "Job Title", "Job Type", "Status", "Applied At", "Cover Letter"}

// ApplicationsReport renders a recruiter's applications as an XLSX workbook.
func ApplicationsReport(apps []model.JobApplication, stats model.ApplicationStats, generatedAt time.Time) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(applicationsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(analysisSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	if err := writeSummary(f, headerStyle, stats, generatedAt); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeApplications(f, headerStyle, apps); err != nil {
		return nil, fmt.Errorf("failed to create applications sheet: %w", err)
	}
	if err := writeAnalysis(f, headerStyle, apps); err != nil {
		return nil, fmt.Errorf("failed to create analysis sheet: %w", err)
	}

	return f.WriteToBuffer()
}

func writeSummary(f *excelize.File, headerStyle int, stats model.ApplicationStats, generatedAt time.Time) error {
	f.SetColWidth(summarySheet, "A", "A", 22)
	f.SetColWidth(summarySheet, "B", "B", 24)

	rows := [][]any{
		{"Applications Report"},
		{"Generated", generatedAt.Format("2006-01-02 15:04:05")},
		{},
		{"Status", "Count"},
		{"Total", stats.Total},
		{"Pending", stats.Pending},
		{"Reviewed", stats.Reviewed},
		{"Shortlisted", stats.Shortlisted},
		{"Rejected", stats.Rejected},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(summarySheet, "A1", "B1", headerStyle); err != nil {
		return err
	}
	return f.SetCellStyle(summarySheet, "A4", "B4", headerStyle)
}

func writeApplications(f *excelize.File, headerStyle int, apps []model.JobApplication) error {
	if err := f.SetSheetRow(applicationsSheet, "A1", &applicationHeaders); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(applicationHeaders), 1)
	if err := f.SetCellStyle(applicationsSheet, "A1", last, headerStyle); err != nil {
		return err
	}
	f.SetColWidth(applicationsSheet, "B", "D", 28)
	f.SetColWidth(applicationsSheet, "H", "H", 60)

	for i, app := range apps {
		var name, email, title, jobType string
		if app.Applicant != nil {
			name, email = app.Applicant.Name, app.Applicant.Email
		}
		if app.Job != nil {
			title, jobType = app.Job.Title, app.Job.Type
		}
		row := []any{app.ID, name, email, title, jobType, app.Status, app.CreatedAt.Format("2006-01-02"), app.CoverLetter}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(applicationsSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeAnalysis(f *excelize.File, headerStyle int, apps []model.JobApplication) error {
	headers := []string{"Application ID", "Feedback", "Key Findings", "Suggestions"}
	if err := f.SetSheetRow(analysisSheet, "A1", &headers); err != nil {
		return err
	}
	if err := f.SetCellStyle(analysisSheet, "A1", "D1", headerStyle); err != nil {
		return err
	}
	f.SetColWidth(analysisSheet, "B", "D", 60)

	wrap, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"}})
	if err != nil {
		return err
	}

	row := 2
	for _, app := range apps {
		if app.ResumeAnalysis == nil {
			continue
		}
		a := app.ResumeAnalysis
		values := []any{app.ID, a.Feedback, bullets(a.KeyFindings), bullets(a.Suggestions)}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(analysisSheet, cell, &values); err != nil {
			return err
		}
		end, _ := excelize.CoordinatesToCellName(4, row)
		if err := f.SetCellStyle(analysisSheet, cell, end, wrap); err != nil {
			return err
		}
		row++
	}
	return nil
}

func bullets(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return "• " + strings.Join(items, "\n• ")
}
