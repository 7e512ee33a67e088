package export

import (
	"testing"
	"time"

	"github.com/lshigami/auriter/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestApplicationsReport(t *testing.T) {
	apps := []model.JobApplication{
		{
			ID:        1,
			Status:    model.ApplicationShortlisted,
			Applicant: &model.User{Name: "Ada", Email: "ada@example.com"},
			Job:       &model.Job{Title: "Go Engineer", Type: "full-time"},
			CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			ResumeAnalysis: &model.ResumeAnalysis{
				Feedback:    "Strong backend profile",
				KeyFindings: []string{"Go", "Postgres"},
			},
		},
		{ID: 2, Status: model.ApplicationPending},
	}
	stats := model.ApplicationStats{Total: 2, Pending: 1, Shortlisted: 1}

	buf, err := ApplicationsReport(apps, stats, time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{summarySheet, applicationsSheet, analysisSheet}, f.GetSheetList())

	total, err := f.GetCellValue(summarySheet, "B5")
	require.NoError(t, err)
	assert.Equal(t, "2", total)

	rows, err := f.GetRows(applicationsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Ada", rows[1][1])
	assert.Equal(t, "Go Engineer", rows[1][3])
	assert.Equal(t, "2024-05-01", rows[1][6])

	findings, err := f.GetCellValue(analysisSheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "• Go\n• Postgres", findings)
}

func TestBullets(t *testing.T) {
	assert.Equal(t, "", bullets(nil))
	assert.Equal(t, "• a", bullets([]string{"a"}))
}
