package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/auriter/internal/dto"
	"github.com/lshigami/auriter/internal/model"
	"github.com/lshigami/auriter/internal/repository"
	"github.com/rs/zerolog/log"
)

type JobService interface {
	Create(ctx context.Context, recruiter *model.User, req dto.CreateJobRequest) (*dto.JobResponse, error)
	Get(ctx context.Context, id uint) (*dto.JobResponse, error)
	Search(ctx context.Context, query dto.JobSearchQuery) ([]dto.JobResponse, error)
	ListByRecruiter(ctx context.Context, recruiter *model.User) ([]dto.JobResponse, error)
	Update(ctx context.Context, recruiter *model.User, id uint, req dto.UpdateJobRequest) (*dto.JobResponse, error)
	Delete(ctx context.Context, recruiter *model.User, id uint) error
}

type jobService struct {
	jobRepo repository.JobRepository
}

func NewJobService(jobRepo repository.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

func (s *jobService) Create(ctx context.Context, recruiter *model.User, req dto.CreateJobRequest) (*dto.JobResponse, error) {
	if req.ExperienceMax > 0 && req.ExperienceMin > req.ExperienceMax {
		return nil, newError(ErrInvalidInput, "Minimum experience cannot exceed maximum experience")
	}
	if req.SalaryMax > 0 && req.SalaryMin > req.SalaryMax {
		return nil, newError(ErrInvalidInput, "Minimum salary cannot exceed maximum salary")
	}

	var job model.Job
	if err := copier.Copy(&job, &req); err != nil {
		return nil, fmt.Errorf("map job: %w", err)
	}
	job.RecruiterID = recruiter.ID
	if job.Status == "" {
		job.Status = model.JobStatusActive
	}
	if err := s.jobRepo.Create(ctx, &job); err != nil {
		log.Error().Err(err).Uint("recruiterID", recruiter.ID).Msg("Failed to create job")
		return nil, fmt.Errorf("create job: %w", err)
	}
	return toJobResponse(&job), nil
}

func (s *jobService) Get(ctx context.Context, id uint) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Job not found", "find job")
	}
	return toJobResponse(job), nil
}

func (s *jobService) Search(ctx context.Context, q dto.JobSearchQuery) ([]dto.JobResponse, error) {
	filter := repository.JobFilter{
		Search:        q.Search,
		Location:      strings.TrimSpace(q.Location),
		Type:          strings.TrimSpace(q.Type),
		Status:        strings.TrimSpace(q.Status),
		ExperienceMin: q.ExperienceMin,
		ExperienceMax: q.ExperienceMax,
		SalaryMin:     q.SalaryMin,
		SalaryMax:     q.SalaryMax,
		Skills:        splitList(q.Skills),
	}
	if filter.Status == "" {
		filter.Status = model.JobStatusActive
	}
	jobs, err := s.jobRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}
	return toJobResponses(jobs), nil
}

func (s *jobService) ListByRecruiter(ctx context.Context, recruiter *model.User) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.Search(ctx, repository.JobFilter{RecruiterID: recruiter.ID})
	if err != nil {
		return nil, fmt.Errorf("list recruiter jobs: %w", err)
	}
	return toJobResponses(jobs), nil
}

func (s *jobService) Update(ctx context.Context, recruiter *model.User, id uint, req dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.ownedJob(ctx, recruiter, id)
	if err != nil {
		return nil, err
	}
	if err := copier.CopyWithOption(job, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, fmt.Errorf("apply job update: %w", err)
	}
	if job.ExperienceMax > 0 && job.ExperienceMin > job.ExperienceMax {
		return nil, newError(ErrInvalidInput, "Minimum experience cannot exceed maximum experience")
	}
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return toJobResponse(job), nil
}

func (s *jobService) Delete(ctx context.Context, recruiter *model.User, id uint) error {
	if _, err := s.ownedJob(ctx, recruiter, id); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	log.Info().Uint("jobID", id).Uint("recruiterID", recruiter.ID).Msg("Job deleted")
	return nil
}

// ownedJob reports other recruiters' jobs as missing.
func (s *jobService) ownedJob(ctx context.Context, recruiter *model.User, id uint) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Job not found", "find job")
	}
	if job.RecruiterID != recruiter.ID {
		return nil, newError(ErrNotFound, "Job not found")
	}
	return job, nil
}

func toJobResponse(job *model.Job) *dto.JobResponse {
	var out dto.JobResponse
	if err := copier.Copy(&out, job); err != nil {
		log.Error().Err(err).Uint("jobID", job.ID).Msg("Failed to map job")
	}
	if out.Requirements == nil {
		out.Requirements = []string{}
	}
	if out.Skills == nil {
		out.Skills = []string{}
	}
	return &out
}

func toJobResponses(jobs []model.Job) []dto.JobResponse {
	out := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, *toJobResponse(&jobs[i]))
	}
	return out
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
