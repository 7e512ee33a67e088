package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/auriter/internal/dto"
	"github.com/lshigami/auriter/internal/export"
	"github.com/lshigami/auriter/internal/model"
	"github.com/lshigami/auriter/internal/repair"
	"github.com/lshigami/auriter/internal/repository"
	"github.com/lshigami/auriter/internal/storage"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const warnResumeAnalysis = "Resume analysis service temporarily unavailable"

// ResumeUpload is the uploaded resume of an application. A nil Content means
// no file was sent.
type ResumeUpload struct {
	Filename string
	Content  io.Reader
}

type SubmitApplicationInput struct {
	CoverLetter     string
	AdditionalNotes string
	Resume          *ResumeUpload
}

type ApplicationService interface {
	Submit(ctx context.Context, applicant *model.User, jobID uint, in SubmitApplicationInput) (*dto.SubmitApplicationResponse, error)
	ListMine(ctx context.Context, applicant *model.User) ([]dto.ApplicationResponse, error)
	ListForJob(ctx context.Context, recruiter *model.User, jobID uint) ([]dto.ApplicationResponse, error)
	Search(ctx context.Context, recruiter *model.User, q dto.ApplicationSearchQuery) (*dto.ApplicationListResponse, error)
	UpdateStatus(ctx context.Context, recruiter *model.User, id uint, status string) (*dto.UpdateApplicationStatusResponse, error)
	GetAnalysis(ctx context.Context, user *model.User, id uint) (*dto.ResumeAnalysisResponse, error)
	Export(ctx context.Context, recruiter *model.User, q dto.ApplicationSearchQuery) (*bytes.Buffer, error)
}

type applicationService struct {
	appRepo   repository.ApplicationRepository
	jobRepo   repository.JobRepository
	resumes   storage.ResumeStore
	generator TextGenerator
	now       func() time.Time
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	resumes storage.ResumeStore,
	generator TextGenerator,
) ApplicationService {
	return &applicationService{
		appRepo:   appRepo,
		jobRepo:   jobRepo,
		resumes:   resumes,
		generator: generator,
		now:       time.Now,
	}
}

func (s *applicationService) Submit(ctx context.Context, applicant *model.User, jobID uint, in SubmitApplicationInput) (*dto.SubmitApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, notFoundOr(err, "Job not found", "find job")
	}
	if !job.IsActive() {
		return nil, newError(ErrInvalidInput, "This job is no longer accepting applications")
	}
	exists, err := s.appRepo.Exists(ctx, jobID, applicant.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing application: %w", err)
	}
	if exists {
		return nil, newError(ErrInvalidInput, "You have already applied for this job")
	}
	if in.Resume == nil || in.Resume.Content == nil {
		return nil, newError(ErrInvalidInput, "Resume is required")
	}

	path, err := s.resumes.Save(applicant.ID, in.Resume.Filename, in.Resume.Content)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedResume) || errors.Is(err, storage.ErrResumeTooLarge) {
			return nil, newError(ErrInvalidInput, "%s", err.Error())
		}
		return nil, fmt.Errorf("save resume: %w", err)
	}

	app := &model.JobApplication{
		JobID:           jobID,
		ApplicantID:     applicant.ID,
		ResumePath:      path,
		CoverLetter:     strings.TrimSpace(in.CoverLetter),
		AdditionalNotes: strings.TrimSpace(in.AdditionalNotes),
		Status:          model.ApplicationPending,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		_ = s.resumes.Remove(path)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newError(ErrInvalidInput, "You have already applied for this job")
		}
		log.Error().Err(err).Uint("jobID", jobID).Uint("applicantID", applicant.ID).Msg("Failed to create application")
		return nil, fmt.Errorf("create application: %w", err)
	}
	app.Job = job
	app.Applicant = applicant

	resp := &dto.SubmitApplicationResponse{Success: true}
	analysis, err := s.analyzeResume(ctx, job, path)
	if err != nil {
		log.Warn().Err(err).Uint("applicationID", app.ID).Msg("Resume analysis failed")
		resp.Warning = warnResumeAnalysis
	} else {
		analysis.ApplicationID = app.ID
		if err := s.appRepo.SaveResumeAnalysis(ctx, analysis); err != nil {
			log.Error().Err(err).Uint("applicationID", app.ID).Msg("Failed to store resume analysis")
			resp.Warning = warnResumeAnalysis
		} else {
			app.ResumeAnalysis = analysis
		}
	}

	resp.Application = toApplicationResponse(app)
	return resp, nil
}

// analyzeResume asks the generator for a critique of the resume against the job.
func (s *applicationService) analyzeResume(ctx context.Context, job *model.Job, path string) (*model.ResumeAnalysis, error) {
	text, err := s.resumes.ExtractText(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extract resume text: %w", err)
	}
	raw, err := s.generator.GenerateText(ctx, resumePrompt(job, text))
	if err != nil {
		return nil, err
	}
	outcome := repair.RepairResumeReview(raw)
	if outcome.Status == repair.StatusFallback {
		return nil, fmt.Errorf("resume analysis output unparsable: %s", truncate(raw, 200))
	}
	return &model.ResumeAnalysis{
		Feedback:    outcome.Review.Feedback,
		KeyFindings: outcome.Review.KeyFindings,
		Suggestions: outcome.Review.Suggestions,
	}, nil
}

func (s *applicationService) ListMine(ctx context.Context, applicant *model.User) ([]dto.ApplicationResponse, error) {
	apps, err := s.appRepo.FindByApplicant(ctx, applicant.ID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return toApplicationResponses(apps), nil
}

func (s *applicationService) ListForJob(ctx context.Context, recruiter *model.User, jobID uint) ([]dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, notFoundOr(err, "Job not found", "find job")
	}
	if job.RecruiterID != recruiter.ID {
		return nil, newError(ErrForbidden, "Not authorized to view applications for this job")
	}
	apps, err := s.appRepo.Search(ctx, repository.ApplicationFilter{RecruiterID: recruiter.ID, JobID: jobID})
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	return toApplicationResponses(apps), nil
}

func (s *applicationService) Search(ctx context.Context, recruiter *model.User, q dto.ApplicationSearchQuery) (*dto.ApplicationListResponse, error) {
	apps, stats, err := s.search(ctx, recruiter, q)
	if err != nil {
		return nil, err
	}
	return &dto.ApplicationListResponse{Success: true, Applications: toApplicationResponses(apps), Stats: stats}, nil
}

func (s *applicationService) Export(ctx context.Context, recruiter *model.User, q dto.ApplicationSearchQuery) (*bytes.Buffer, error) {
	apps, stats, err := s.search(ctx, recruiter, q)
	if err != nil {
		return nil, err
	}
	buf, err := export.ApplicationsReport(apps, stats, s.now())
	if err != nil {
		return nil, fmt.Errorf("build applications report: %w", err)
	}
	return buf, nil
}

func (s *applicationService) search(ctx context.Context, recruiter *model.User, q dto.ApplicationSearchQuery) ([]model.JobApplication, model.ApplicationStats, error) {
	filter := repository.ApplicationFilter{
		RecruiterID: recruiter.ID,
		SearchTerm:  q.SearchTerm,
		Status:      strings.TrimSpace(q.Status),
		JobType:     strings.TrimSpace(q.JobType),
	}
	if filter.Status == "all" {
		filter.Status = ""
	}
	if filter.JobType == "all" {
		filter.JobType = ""
	}
	from, to, err := parseDateRange(q.DateRange)
	if err != nil {
		return nil, model.ApplicationStats{}, err
	}
	filter.From, filter.To = from, to

	apps, err := s.appRepo.Search(ctx, filter)
	if err != nil {
		return nil, model.ApplicationStats{}, fmt.Errorf("search applications: %w", err)
	}
	stats, err := s.appRepo.Stats(ctx, recruiter.ID)
	if err != nil {
		return nil, model.ApplicationStats{}, fmt.Errorf("application stats: %w", err)
	}
	return apps, stats, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, recruiter *model.User, id uint, status string) (*dto.UpdateApplicationStatusResponse, error) {
	if !slices.Contains(model.ApplicationStatuses, status) {
		return nil, newError(ErrInvalidInput, "Invalid status")
	}
	app, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Application not found", "find application")
	}
	if app.Job == nil || app.Job.RecruiterID != recruiter.ID {
		return nil, newError(ErrForbidden, "Not authorized to update this application")
	}
	if err := s.appRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update application status: %w", err)
	}
	app.Status = status

	stats, err := s.appRepo.Stats(ctx, recruiter.ID)
	if err != nil {
		return nil, fmt.Errorf("application stats: %w", err)
	}
	log.Info().Uint("applicationID", id).Str("status", status).Msg("Application status updated")
	return &dto.UpdateApplicationStatusResponse{Success: true, Application: toApplicationResponse(app), Stats: stats}, nil
}

func (s *applicationService) GetAnalysis(ctx context.Context, user *model.User, id uint) (*dto.ResumeAnalysisResponse, error) {
	app, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Application not found", "find application")
	}
	isApplicant := app.ApplicantID == user.ID
	isRecruiter := app.Job != nil && app.Job.RecruiterID == user.ID
	if !isApplicant && !isRecruiter {
		return nil, newError(ErrForbidden, "Not authorized to view this analysis")
	}
	if app.ResumeAnalysis == nil {
		return nil, newError(ErrNotFound, "Analysis not found")
	}
	return toResumeAnalysisResponse(app.ResumeAnalysis), nil
}

// parseDateRange accepts "YYYY-MM-DD,YYYY-MM-DD"; the end day is inclusive.
func parseDateRange(s string) (*time.Time, *time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, nil, newError(ErrInvalidInput, "dateRange must be start,end")
	}
	var bounds [2]*time.Time
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		t, err := time.Parse(time.DateOnly, p)
		if err != nil {
			return nil, nil, newError(ErrInvalidInput, "Invalid date %q in dateRange", p)
		}
		if i == 1 {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		bounds[i] = &t
	}
	return bounds[0], bounds[1], nil
}

func resumePrompt(job *model.Job, resume string) string {
	return fmt.Sprintf(`You are reviewing a resume submitted for the %s position at %s.

JOB DESCRIPTION:
%s

RESUME:
%s

Respond ONLY with valid JSON in exactly this structure:
{
  "feedback": "Overall assessment of how well the resume fits the role",
  "keyFindings": ["Notable strength or gap", "Another finding"],
  "suggestions": ["Specific, actionable improvement", "Another suggestion"]
}`, job.Title, job.Company, job.Description, resume)
}

func toApplicationResponse(app *model.JobApplication) dto.ApplicationResponse {
	out := dto.ApplicationResponse{
		ID:              app.ID,
		JobID:           app.JobID,
		ApplicantID:     app.ApplicantID,
		ResumePath:      app.ResumePath,
		CoverLetter:     app.CoverLetter,
		AdditionalNotes: app.AdditionalNotes,
		Status:          app.Status,
		CreatedAt:       app.CreatedAt,
		UpdatedAt:       app.UpdatedAt,
	}
	if app.Job != nil {
		out.Job = toJobResponse(app.Job)
	}
	if app.Applicant != nil {
		out.ApplicantName = app.Applicant.Name
		out.ApplicantEmail = app.Applicant.Email
	}
	if app.ResumeAnalysis != nil {
		out.ResumeAnalysis = toResumeAnalysisResponse(app.ResumeAnalysis)
	}
	return out
}

func toApplicationResponses(apps []model.JobApplication) []dto.ApplicationResponse {
	out := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, toApplicationResponse(&apps[i]))
	}
	return out
}

func toResumeAnalysisResponse(a *model.ResumeAnalysis) *dto.ResumeAnalysisResponse {
	var out dto.ResumeAnalysisResponse
	if err := copier.Copy(&out, a); err != nil {
		log.Error().Err(err).Uint("applicationID", a.ApplicationID).Msg("Failed to map resume analysis")
	}
	return &out
}
