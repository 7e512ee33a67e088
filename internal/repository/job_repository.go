package repository

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/lshigami/auriter/internal/model"
	"gorm.io/gorm"
)

// JobFilter narrows a job search. Zero values are ignored.
type JobFilter struct {
	Search        string
	Location      string
	Type          string
	Status        string
	ExperienceMin int
	ExperienceMax int
	SalaryMin     int
	SalaryMax     int
	Skills        []string
	RecruiterID   uint
}

type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id uint) (*model.Job, error)
	Search(ctx context.Context, filter JobFilter) ([]model.Job, error)
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, id uint) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) FindByID(ctx context.Context, id uint) (*model.Job, error) {
	var job model.Job
	err := r.db.WithContext(ctx).First(&job, id).Error
	return &job, err
}

func (r *jobRepository) Search(ctx context.Context, f JobFilter) ([]model.Job, error) {
	q := r.db.WithContext(ctx).Model(&model.Job{})

	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where("title ILIKE ? OR company ILIKE ? OR description ILIKE ?", like, like, like)
	}
	if f.Location != "" {
		q = q.Where("location ILIKE ?", "%"+f.Location+"%")
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ExperienceMin > 0 {
		q = q.Where("experience_min >= ?", f.ExperienceMin)
	}
	if f.ExperienceMax > 0 {
		q = q.Where("experience_max <= ?", f.ExperienceMax)
	}
	if f.SalaryMin > 0 {
		q = q.Where("salary_min >= ?", f.SalaryMin)
	}
	if f.SalaryMax > 0 {
		q = q.Where("salary_max <= ?", f.SalaryMax)
	}
	if len(f.Skills) > 0 {
		skills, err := json.Marshal(f.Skills)
		if err != nil {
			return nil, err
		}
		q = q.Where("skills @> ?::jsonb", string(skills))
	}
	if f.RecruiterID != 0 {
		q = q.Where("recruiter_id = ?", f.RecruiterID)
	}

	var jobs []model.Job
	err := q.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) Update(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *jobRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Job{}, id).Error
}
