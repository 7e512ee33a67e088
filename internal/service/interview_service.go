package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/auriter/config"
	"github.com/lshigami/auriter/internal/auth"
	"github.com/lshigami/auriter/internal/dto"
	"github.com/lshigami/auriter/internal/model"
	"github.com/lshigami/auriter/internal/repair"
	"github.com/lshigami/auriter/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	scheduledMessage     = "Interview scheduled successfully!"
	invitationSubject    = "Mock Interview Invitation"
	warnAnalysisFailed   = "Analysis service temporarily unavailable; default analysis returned"
	warnAnalysisUnusable = "Analysis output could not be read; default analysis returned"
)

type InterviewService interface {
	Schedule(ctx context.Context, recruiter *model.User, req dto.ScheduleInterviewRequest) (*dto.ScheduleInterviewResponse, error)
	GetDetails(ctx context.Context, roomID string) (*dto.InterviewDetailsResponse, error)
	GetQuestions(ctx context.Context, roomID string) (*dto.InterviewQuestionsResponse, error)
	SubmitResponse(ctx context.Context, roomID string, req dto.SubmitResponseRequest) (*dto.InterviewResponseDTO, error)
	ListResponses(ctx context.Context, roomID string) ([]dto.InterviewResponseDTO, error)
	// Analyze always returns a complete analysis; only invalid input is an error.
	Analyze(ctx context.Context, req dto.AnalyzeResponsesRequest) (*dto.AnalyzeResponsesResponse, error)
	RoomToken(ctx context.Context, roomID, role string) (*dto.RoomTokenResponse, error)
}

type interviewService struct {
	interviewRepo repository.InterviewRepository
	responseRepo  repository.InterviewResponseRepository
	appRepo       repository.ApplicationRepository
	questions     QuestionService
	generator     TextGenerator
	mailer        Mailer
	tokens        *auth.JWTMaker
	frontendURL   string
}

func NewInterviewService(
	interviewRepo repository.InterviewRepository,
	responseRepo repository.InterviewResponseRepository,
	appRepo repository.ApplicationRepository,
	questions QuestionService,
	generator TextGenerator,
	mailer Mailer,
	tokens *auth.JWTMaker,
	cfg *config.Config,
) InterviewService {
	return &interviewService{
		interviewRepo: interviewRepo,
		responseRepo:  responseRepo,
		appRepo:       appRepo,
		questions:     questions,
		generator:     generator,
		mailer:        mailer,
		tokens:        tokens,
		frontendURL:   strings.TrimRight(cfg.FrontendURL, "/"),
	}
}

func (s *interviewService) Schedule(ctx context.Context, recruiter *model.User, req dto.ScheduleInterviewRequest) (*dto.ScheduleInterviewResponse, error) {
	app, err := s.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, notFoundOr(err, "Application not found", "find application")
	}
	if app.Job == nil || app.Job.RecruiterID != recruiter.ID {
		return nil, newError(ErrForbidden, "Not authorized to schedule an interview for this application")
	}
	if app.Applicant == nil || app.Applicant.Email == "" {
		return nil, newError(ErrInvalidInput, "Application %d has no applicant email", app.ID)
	}

	roomID := uuid.NewString()
	link := fmt.Sprintf("%s/interview/%s", s.frontendURL, roomID)

	set := s.questions.QuestionsForSchedule(ctx, app.Job.Title, app.Job.Description, req.Questions)

	document := strings.TrimSpace(req.Document)
	if document == "" {
		document = jobDocument(app.Job)
	}
	interview := &model.Interview{
		RoomID:         roomID,
		ApplicationID:  app.ID,
		RecruiterID:    recruiter.ID,
		Date:           req.Date,
		Time:           req.Time,
		JobTitle:       app.Job.Title,
		Document:       document,
		CandidateEmail: app.Applicant.Email,
	}
	// Fallback banks are not stored so the first fetch can still extract from the document.
	if set.Source != SourceFallback {
		interview.Questions = set.Questions
	}
	if err := s.interviewRepo.Create(ctx, interview); err != nil {
		log.Error().Err(err).Uint("applicationID", app.ID).Msg("Failed to save interview")
		return nil, fmt.Errorf("save interview: %w", err)
	}

	err = s.mailer.Send(ctx, Mail{
		To:      app.Applicant.Email,
		Subject: invitationSubject,
		Text: fmt.Sprintf("You have been invited for a mock interview for the position of %s. Please join the room on %s at %s.",
			app.Job.Title, req.Date, req.Time),
		Link: link,
	})
	if err != nil {
		// The interview row stays; the recruiter can reschedule.
		return nil, fmt.Errorf("send invitation: %w", err)
	}

	log.Info().Str("roomID", roomID).Uint("applicationID", app.ID).Str("questionSource", string(set.Source)).Msg("Interview scheduled")
	return &dto.ScheduleInterviewResponse{
		Success:       true,
		Message:       scheduledMessage,
		InterviewLink: link,
		RoomID:        roomID,
		Questions:     set.Questions,
		Warning:       set.Warning,
	}, nil
}

func (s *interviewService) GetDetails(ctx context.Context, roomID string) (*dto.InterviewDetailsResponse, error) {
	interview, err := s.findInterview(ctx, roomID)
	if err != nil {
		return nil, err
	}
	var out dto.InterviewDetailsResponse
	if err := copier.Copy(&out, interview); err != nil {
		return nil, fmt.Errorf("map interview: %w", err)
	}
	return &out, nil
}

func (s *interviewService) GetQuestions(ctx context.Context, roomID string) (*dto.InterviewQuestionsResponse, error) {
	interview, err := s.findInterview(ctx, roomID)
	if err != nil {
		return nil, err
	}
	set, err := s.questions.QuestionsForFetch(ctx, interview)
	if err != nil {
		return nil, err
	}
	return &dto.InterviewQuestionsResponse{
		Success:   true,
		Questions: WithGenericQuestions(set.Questions),
		Source:    string(set.Source),
		Warning:   set.Warning,
	}, nil
}

func (s *interviewService) SubmitResponse(ctx context.Context, roomID string, req dto.SubmitResponseRequest) (*dto.InterviewResponseDTO, error) {
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Response) == "" {
		return nil, newError(ErrInvalidInput, "Question and response are required")
	}
	if _, err := s.findInterview(ctx, roomID); err != nil {
		return nil, err
	}

	record := &model.InterviewResponse{RoomID: roomID, Question: req.Question, Response: req.Response}
	if err := s.responseRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("save response: %w", err)
	}
	var out dto.InterviewResponseDTO
	if err := copier.Copy(&out, record); err != nil {
		return nil, fmt.Errorf("map response: %w", err)
	}
	return &out, nil
}

func (s *interviewService) ListResponses(ctx context.Context, roomID string) ([]dto.InterviewResponseDTO, error) {
	if _, err := s.findInterview(ctx, roomID); err != nil {
		return nil, err
	}
	records, err := s.responseRepo.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	out := make([]dto.InterviewResponseDTO, 0, len(records))
	if err := copier.Copy(&out, &records); err != nil {
		return nil, fmt.Errorf("map responses: %w", err)
	}
	return out, nil
}

func (s *interviewService) Analyze(ctx context.Context, req dto.AnalyzeResponsesRequest) (*dto.AnalyzeResponsesResponse, error) {
	if len(req.Questions) == 0 || len(req.Answers) == 0 {
		return nil, newError(ErrInvalidInput, "Questions or answers are missing in the request body")
	}

	raw, err := s.generator.GenerateText(ctx, analysisPrompt(req.Questions, req.Answers))
	if err != nil {
		log.Warn().Err(err).Str("roomID", req.RoomID).Msg("Analysis generation failed, returning default analysis")
		return &dto.AnalyzeResponsesResponse{
			Success:  true,
			Analysis: repair.DefaultAnalysis(),
			Status:   string(repair.StatusFallback),
			Warning:  warnAnalysisFailed,
		}, nil
	}

	outcome := repair.RepairAnalysis(raw)
	resp := &dto.AnalyzeResponsesResponse{
		Success:  true,
		Analysis: outcome.Result,
		Status:   string(outcome.Status),
	}
	switch outcome.Status {
	case repair.StatusFallback:
		log.Warn().Str("roomID", req.RoomID).Str("raw", truncate(raw, 500)).Msg("Analysis output unparsable, returning default analysis")
		resp.Warning = warnAnalysisUnusable
	case repair.StatusRepaired:
		log.Info().Str("roomID", req.RoomID).Strs("repaired", outcome.Repaired).Msg("Analysis output repaired")
	}
	return resp, nil
}

func (s *interviewService) RoomToken(ctx context.Context, roomID, role string) (*dto.RoomTokenResponse, error) {
	if _, err := s.findInterview(ctx, roomID); err != nil {
		return nil, err
	}
	token, err := s.tokens.CreateRoomToken(roomID, role)
	if err != nil {
		return nil, newError(ErrInvalidInput, "%s", err.Error())
	}
	return &dto.RoomTokenResponse{
		Token:     token,
		RoomID:    roomID,
		Role:      role,
		ExpiresAt: time.Now().Add(auth.RoomTokenTTL),
	}, nil
}

func (s *interviewService) findInterview(ctx context.Context, roomID string) (*model.Interview, error) {
	interview, err := s.interviewRepo.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, notFoundOr(err, "Interview not found", "find interview")
	}
	return interview, nil
}

func jobDocument(job *model.Job) string {
	var sb strings.Builder
	sb.WriteString(job.Title)
	sb.WriteString("\n\n")
	sb.WriteString(job.Description)
	if len(job.Requirements) > 0 {
		sb.WriteString("\n\nRequirements:\n")
		for i, r := range job.Requirements {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, r)
		}
	}
	if len(job.Skills) > 0 {
		sb.WriteString("\nSkills: ")
		sb.WriteString(strings.Join(job.Skills, ", "))
	}
	return sb.String()
}

const analysisTemplate = `PROVIDE A VALID JSON RESPONSE EXACTLY MATCHING THIS STRUCTURE:
{
  "overallScores": {
    "selfIntroduction": 7,
    "projectExplanation": 7,
    "englishCommunication": 7
  },
  "feedback": {
    "selfIntroduction": {
      "strengths": "Detailed feedback on strengths",
      "areasOfImprovement": "Detailed feedback on areas to improve"
    },
    "projectExplanation": {
      "strengths": "Detailed feedback on strengths",
      "areasOfImprovement": "Detailed feedback on areas to improve"
    },
    "englishCommunication": {
      "strengths": "Detailed feedback on strengths",
      "areasOfImprovement": "Detailed feedback on areas to improve"
    }
  },
  "focusAreas": [
    "Key area to focus on for improvement",
    "Another area to focus on for improvement",
    "Third most important area to focus on"
  ]
}`

const analysisInstructions = `INSTRUCTIONS:
- Respond ONLY with the JSON
- Ensure valid JSON syntax
- Scores should be between 1-10
- Evaluate the candidate holistically across all answers
- For Self Introduction: Assess how well they presented their background, skills, and career goals
- For Project Explanation: Evaluate their ability to explain technical projects clearly and highlight their contributions
- For English Communication: Assess overall fluency, grammar, vocabulary, and clarity across all answers
- In focusAreas, list 3-5 specific, actionable improvement areas ordered by priority`

func analysisPrompt(questions, answers []string) string {
	blocks := make([]string, len(questions))
	for i, q := range questions {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}
		blocks[i] = fmt.Sprintf("Question %d: %s\nResponse: %s", i+1, q, answer)
	}
	return analysisTemplate + "\n\nINTERVIEW DATA:\n" + strings.Join(blocks, "\n\n") + "\n\n" + analysisInstructions
}
