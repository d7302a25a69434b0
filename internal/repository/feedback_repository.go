package repository

import (
	"course_hub_backend/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) FindAll(page, limit int) ([]model.Feedback, int64, error) {
	query := r.DB.Model(&model.Feedback{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var feedbacks []model.Feedback
	err := query.
		Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&feedbacks).Error
	return feedbacks, total, err
}

func (r *FeedbackRepository) FindByUser(userID uint) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}

func (r *FeedbackRepository) FindByID(id uint) (*model.Feedback, error) {
	var feedback model.Feedback
	err := r.DB.First(&feedback, id).Error
	return &feedback, err
}

func (r *FeedbackRepository) Create(feedback *model.Feedback) error {
	return r.DB.Create(feedback).Error
}

func (r *FeedbackRepository) Update(feedback *model.Feedback) error {
	return r.DB.Save(feedback).Error
}

func (r *FeedbackRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Feedback{}, id).Error
}
