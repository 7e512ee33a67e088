package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/lshigami/auriter/internal/cache"
	"github.com/lshigami/auriter/internal/model"
	"github.com/lshigami/auriter/internal/repair"
	"github.com/lshigami/auriter/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuestionSource string

const (
	SourceSupplied  QuestionSource = "supplied"
	SourceGenerated QuestionSource = "generated"
	SourceStored    QuestionSource = "stored"
	SourceFallback  QuestionSource = "fallback"
)

// GenericQuestions are asked first in every interview. They are never stored.
var GenericQuestions = []string{
	"Tell me about yourself.",
	"What are your strengths and weaknesses?",
	"Why do you want to work for this company?",
	"Where do you see yourself in 5 years?",
	"How do you handle stress and pressure?",
}

// Used at scheduling time when the generator call itself fails.
var scheduleFallbackQuestions = []string{
	"Tell me about yourself and your experience.",
	"What are your strengths and weaknesses?",
	"Describe a challenging project you've worked on.",
	"How do you handle stress and pressure?",
	"Why are you interested in this position?",
}

// Used at fetch time when extraction from the source document fails.
var documentFallbackQuestions = []string{
	"Tell me about a challenging technical project you've worked on.",
	"How do you approach problem-solving in software development?",
	"Describe your experience with modern web development technologies.",
	"What strategies do you use to learn and adapt to new technologies?",
	"How do you ensure code quality and maintainability?",
}

// Used at fetch time for interviews without a source document.
var noDocumentQuestions = []string{
	"Tell me about your technical background and experience.",
	"What are your strongest technical skills?",
	"Describe a complex problem you've solved.",
	"How do you approach learning new technologies?",
	"What motivates you in your professional development?",
}

const (
	warnGenerationFailed = "Question generation is temporarily unavailable; default questions were used"
	warnUnparsable       = "Generated questions could not be read; default questions were used"

	questionLockTTL  = 60 * time.Second
	lockPollInterval = 500 * time.Millisecond
	lockWaitLimit    = 20 * time.Second
)

// QuestionSet is an ordered, non-empty list of questions and where it came from.
type QuestionSet struct {
	Questions []string
	Source    QuestionSource
	Warning   string
}

type QuestionService interface {
	// QuestionsForSchedule never fails; generator problems yield a static bank.
	QuestionsForSchedule(ctx context.Context, jobTitle, jobDescription string, supplied []string) QuestionSet
	// QuestionsForFetch returns the interview's technical questions, generating
	// and storing them from the source document on first use. Only storage
	// failures are returned as errors.
	QuestionsForFetch(ctx context.Context, interview *model.Interview) (QuestionSet, error)
}

type questionService struct {
	generator     TextGenerator
	interviewRepo repository.InterviewRepository
	locker        cache.Locker
	pollInterval  time.Duration
	waitLimit     time.Duration
}

func NewQuestionService(generator TextGenerator, interviewRepo repository.InterviewRepository, locker cache.Locker) QuestionService {
	return &questionService{
		generator:     generator,
		interviewRepo: interviewRepo,
		locker:        locker,
		pollInterval:  lockPollInterval,
		waitLimit:     lockWaitLimit,
	}
}

// WithGenericQuestions returns the generic questions followed by technical.
func WithGenericQuestions(technical []string) []string {
	out := make([]string, 0, len(GenericQuestions)+len(technical))
	out = append(out, GenericQuestions...)
	return append(out, technical...)
}

func (s *questionService) QuestionsForSchedule(ctx context.Context, jobTitle, jobDescription string, supplied []string) QuestionSet {
	if cleaned := cleanQuestions(supplied); len(cleaned) > 0 {
		return QuestionSet{Questions: cleaned, Source: SourceSupplied}
	}

	raw, err := s.generator.GenerateText(ctx, scheduleQuestionsPrompt(jobTitle, jobDescription))
	if err != nil {
		log.Warn().Err(err).Str("jobTitle", jobTitle).Msg("Question generation failed, using schedule fallback")
		return fallbackSet(scheduleFallbackQuestions, warnGenerationFailed)
	}

	result := repair.ParseQuestions(raw)
	if result.Status == repair.StatusFallback || len(result.Questions) == 0 {
		log.Warn().Str("jobTitle", jobTitle).Str("raw", truncate(raw, 500)).Msg("Generated questions unparsable, using default bank")
		return fallbackSet(repair.DefaultQuestions, warnUnparsable)
	}
	return QuestionSet{Questions: result.Questions, Source: SourceGenerated}
}

func (s *questionService) QuestionsForFetch(ctx context.Context, interview *model.Interview) (QuestionSet, error) {
	if interview.HasQuestions() {
		return QuestionSet{Questions: interview.Questions, Source: SourceStored}, nil
	}
	if strings.TrimSpace(interview.Document) == "" {
		return fallbackSet(noDocumentQuestions, ""), nil
	}

	unlock, acquired, err := s.locker.TryLock(ctx, questionLockKey(interview.RoomID), questionLockTTL)
	if err != nil {
		log.Warn().Err(err).Str("roomID", interview.RoomID).Msg("Question lock unavailable, generating without it")
	} else if acquired {
		defer unlock()
	} else if stored, ok := s.waitForStored(ctx, interview.RoomID); ok {
		return QuestionSet{Questions: stored, Source: SourceStored}, nil
	}

	raw, err := s.generator.GenerateText(ctx, extractQuestionsPrompt(interview.Document))
	if err != nil {
		log.Warn().Err(err).Str("roomID", interview.RoomID).Msg("Question extraction failed, using document fallback")
		return fallbackSet(documentFallbackQuestions, warnGenerationFailed), nil
	}

	result := repair.ParseQuestions(raw)
	if result.Status == repair.StatusFallback {
		log.Warn().Str("roomID", interview.RoomID).Str("raw", truncate(raw, 500)).Msg("Extracted questions unparsable, using document fallback")
		return fallbackSet(documentFallbackQuestions, warnUnparsable), nil
	}
	questions := repair.SupplementQuestions(result.Questions, interview.Document)
	if len(questions) == 0 {
		return fallbackSet(documentFallbackQuestions, warnUnparsable), nil
	}

	stored, err := s.interviewRepo.SetQuestionsIfEmpty(ctx, interview.RoomID, questions)
	if err != nil {
		return QuestionSet{}, fmt.Errorf("store questions for room %s: %w", interview.RoomID, err)
	}
	interview.Questions = stored

	source := SourceGenerated
	if !slices.Equal(stored, questions) {
		source = SourceStored
	}
	return QuestionSet{Questions: stored, Source: source}, nil
}

// waitForStored polls while another instance holds the generation lock.
func (s *questionService) waitForStored(ctx context.Context, roomID string) ([]string, bool) {
	deadline := time.Now().Add(s.waitLimit)
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return nil, false
		case <-ticker.C:
		}
		current, err := s.interviewRepo.FindByRoomID(ctx, roomID)
		if err != nil {
			return nil, false
		}
		if current.HasQuestions() {
			return current.Questions, true
		}
	}
	log.Warn().Str("roomID", roomID).Msg("Timed out waiting for concurrent question generation")
	return nil, false
}

func questionLockKey(roomID string) string {
	return "interview:questions:" + roomID
}

func scheduleQuestionsPrompt(jobTitle, jobDescription string) string {
	return fmt.Sprintf(`Generate 5 technical interview questions for a %s position.
The job description is: %s.
The questions should assess the candidate's technical skills, problem-solving abilities, and experience.
Return the questions in a strict JSON array format: ["Question 1", "Question 2", "Question 3", "Question 4", "Question 5"]`,
		jobTitle, jobDescription)
}

func extractQuestionsPrompt(document string) string {
	return fmt.Sprintf(`Extract the most relevant interview questions from the following document.
Focus on extracting 15 high-quality, varied questions that cover technical skills, problem-solving, and soft skills:

%s

Return the questions in a strict JSON array format. Do not include any additional text or explanations. Example format:
[
  "Question 1",
  "Question 2",
  "Question 3",
  "Question 4",
  "Question 5"
]`, document)
}

func fallbackSet(bank []string, warning string) QuestionSet {
	questions := make([]string, len(bank))
	copy(questions, bank)
	return QuestionSet{Questions: questions, Source: SourceFallback, Warning: warning}
}

func cleanQuestions(in []string) []string {
	var out []string
	for _, q := range in {
		if q = strings.TrimSpace(q); q != "" {
			out = append(out, q)
		}
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
