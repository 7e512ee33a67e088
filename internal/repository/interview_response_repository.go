package repository

import (
	"context"

	"github.com/lshigami/auriter/internal/model"
	"gorm.io/gorm"
)

type InterviewResponseRepository interface {
	Create(ctx context.Context, response *model.InterviewResponse) error
	FindByRoomID(ctx context.Context, roomID string) ([]model.InterviewResponse, error)
}

type interviewResponseRepository struct {
	db *gorm.DB
}

func NewInterviewResponseRepository(db *gorm.DB) InterviewResponseRepository {
	return &interviewResponseRepository{db: db}
}

func (r *interviewResponseRepository) Create(ctx context.Context, response *model.InterviewResponse) error {
	return r.db.WithContext(ctx).Create(response).Error
}

func (r *interviewResponseRepository) FindByRoomID(ctx context.Context, roomID string) ([]model.InterviewResponse, error) {
	var responses []model.InterviewResponse
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("id ASC").
		Find(&responses).Error
	return responses, err
}
