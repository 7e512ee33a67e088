package service

import (
	"context"
	"testing"

	"github.com/lshigami/auriter/internal/dto"
	"github.com/lshigami/auriter/internal/model"
	"github.com/lshigami/auriter/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memJobRepo struct {
	jobs       map[uint]*model.Job
	lastFilter repository.JobFilter
	deleted    []uint
}

func (r *memJobRepo) Create(_ context.Context, job *model.Job) error {
	job.ID = uint(len(r.jobs) + 1)
	r.jobs[job.ID] = job
	return nil
}

func (r *memJobRepo) FindByID(_ context.Context, id uint) (*model.Job, error) {
	if j, ok := r.jobs[id]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memJobRepo) Search(_ context.Context, f repository.JobFilter) ([]model.Job, error) {
	r.lastFilter = f
	return nil, nil
}

func (r *memJobRepo) Update(_ context.Context, job *model.Job) error {
	r.jobs[job.ID] = job
	return nil
}

func (r *memJobRepo) Delete(_ context.Context, id uint) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func TestJobService(t *testing.T) {
	ctx := context.Background()
	repo := &memJobRepo{jobs: map[uint]*model.Job{}}
	svc := NewJobService(repo)
	owner := &model.User{ID: 7, Role: model.RoleRecruiter}

	created, err := svc.Create(ctx, owner, dto.CreateJobRequest{
		Title:       "Go Developer",
		Company:     "Acme",
		Description: "Build services.",
		Skills:      []string{"go", "postgres"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusActive, created.Status)
	assert.Equal(t, owner.ID, created.RecruiterID)
	assert.Equal(t, []string{}, created.Requirements)

	_, err = svc.Create(ctx, owner, dto.CreateJobRequest{Title: "x", Company: "y", Description: "z", SalaryMin: 10, SalaryMax: 5})
	assert.ErrorIs(t, err, ErrInvalidInput)

	title := "Senior Go Developer"
	updated, err := svc.Update(ctx, owner, created.ID, dto.UpdateJobRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, "Acme", updated.Company)

	_, err = svc.Update(ctx, &model.User{ID: 8}, created.ID, dto.UpdateJobRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, &model.User{ID: 8}, created.ID), ErrNotFound)
	require.NoError(t, svc.Delete(ctx, owner, created.ID))
	assert.Equal(t, []uint{created.ID}, repo.deleted)

	_, err = svc.Get(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobSearchDefaults(t *testing.T) {
	repo := &memJobRepo{jobs: map[uint]*model.Job{}}
	svc := NewJobService(repo)

	_, err := svc.Search(context.Background(), dto.JobSearchQuery{Skills: " go, ,redis "})

	require.NoError(t, err)
	assert.Equal(t, model.JobStatusActive, repo.lastFilter.Status)
	assert.Equal(t, []string{"go", "redis"}, repo.lastFilter.Skills)
}
