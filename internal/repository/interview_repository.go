package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lshigami/auriter/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	Create(ctx context.Context, interview *model.Interview) error
	FindByRoomID(ctx context.Context, roomID string) (*model.Interview, error)
	// SetQuestionsIfEmpty stores questions only when none are stored yet and
	// returns the list that is persisted afterwards.
	SetQuestionsIfEmpty(ctx context.Context, roomID string, questions []string) ([]string, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(ctx context.Context, interview *model.Interview) error {
	return r.db.WithContext(ctx).Create(interview).Error
}

func (r *interviewRepository) FindByRoomID(ctx context.Context, roomID string) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.WithContext(ctx).Where("room_id = ?", roomID).First(&interview).Error
	return &interview, err
}

func (r *interviewRepository) SetQuestionsIfEmpty(ctx context.Context, roomID string, questions []string) ([]string, error) {
	payload, err := json.Marshal(questions)
	if err != nil {
		return nil, fmt.Errorf("encode questions: %w", err)
	}

	var stored []string
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Interview{}).
			Where("room_id = ?", roomID).
			Where("COALESCE(questions, 'null'::jsonb) IN ('null'::jsonb, '[]'::jsonb)").
			Update("questions", gorm.Expr("?::jsonb", string(payload)))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 1 {
			stored = questions
			return nil
		}
		var current model.Interview
		if err := tx.Select("questions").Where("room_id = ?", roomID).First(&current).Error; err != nil {
			return err
		}
		stored = current.Questions
		return nil
	})
	return stored, err
}
