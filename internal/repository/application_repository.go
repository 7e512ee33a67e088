package repository

import (
	"context"
	"strings"
	"time"

	"github.com/lshigami/auriter/internal/model"
	"gorm.io/gorm"
)

// ApplicationFilter narrows a recruiter's application search.
type ApplicationFilter struct {
	RecruiterID uint
	JobID       uint
	SearchTerm  string
	Status      string
	JobType     string
	From        *time.Time
	To          *time.Time
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *model.JobApplication) error
	FindByID(ctx context.Context, id uint) (*model.JobApplication, error)
	Exists(ctx context.Context, jobID, applicantID uint) (bool, error)
	FindByApplicant(ctx context.Context, applicantID uint) ([]model.JobApplication, error)
	Search(ctx context.Context, filter ApplicationFilter) ([]model.JobApplication, error)
	Stats(ctx context.Context, recruiterID uint) (model.ApplicationStats, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	SaveResumeAnalysis(ctx context.Context, analysis *model.ResumeAnalysis) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *model.JobApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id uint) (*model.JobApplication, error) {
	var app model.JobApplication
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Applicant").
		Preload("ResumeAnalysis").
		First(&app, id).Error
	return &app, err
}

func (r *applicationRepository) Exists(ctx context.Context, jobID, applicantID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.JobApplication{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepository) FindByApplicant(ctx context.Context, applicantID uint) ([]model.JobApplication, error) {
	var apps []model.JobApplication
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("ResumeAnalysis").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) Search(ctx context.Context, f ApplicationFilter) ([]model.JobApplication, error) {
	q := r.db.WithContext(ctx).Model(&model.JobApplication{}).
		Preload("Job").
		Preload("Applicant").
		Preload("ResumeAnalysis").
		Joins("JOIN jobs ON jobs.id = job_applications.job_id AND jobs.deleted_at IS NULL").
		Joins("JOIN users ON users.id = job_applications.applicant_id").
		Where("jobs.recruiter_id = ?", f.RecruiterID)

	if f.JobID != 0 {
		q = q.Where("job_applications.job_id = ?", f.JobID)
	}
	if s := strings.TrimSpace(f.SearchTerm); s != "" {
		like := "%" + s + "%"
		q = q.Where("users.name ILIKE ? OR users.email ILIKE ? OR jobs.title ILIKE ?", like, like, like)
	}
	if f.Status != "" {
		q = q.Where("job_applications.status = ?", f.Status)
	}
	if f.JobType != "" {
		q = q.Where("jobs.type = ?", f.JobType)
	}
	if f.From != nil {
		q = q.Where("job_applications.created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("job_applications.created_at <= ?", *f.To)
	}

	var apps []model.JobApplication
	err := q.Order("job_applications.created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) Stats(ctx context.Context, recruiterID uint) (model.ApplicationStats, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&model.JobApplication{}).
		Select("job_applications.status AS status, COUNT(*) AS count").
		Joins("JOIN jobs ON jobs.id = job_applications.job_id AND jobs.deleted_at IS NULL").
		Where("jobs.recruiter_id = ?", recruiterID).
		Group("job_applications.status").
		Scan(&rows).Error
	if err != nil {
		return model.ApplicationStats{}, err
	}

	var stats model.ApplicationStats
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case model.ApplicationPending:
			stats.Pending = row.Count
		case model.ApplicationReviewed:
			stats.Reviewed = row.Count
		case model.ApplicationShortlisted:
			stats.Shortlisted = row.Count
		case model.ApplicationRejected:
			stats.Rejected = row.Count
		}
	}
	return stats, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&model.JobApplication{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *applicationRepository) SaveResumeAnalysis(ctx context.Context, analysis *model.ResumeAnalysis) error {
	return r.db.WithContext(ctx).Create(analysis).Error
}
