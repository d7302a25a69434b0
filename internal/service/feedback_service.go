package service

import (
	"course_hub_backend/internal/model"
	"course_hub_backend/internal/repository"
)

type FeedbackService struct {
	FeedbackRepo *repository.FeedbackRepository
}

func NewFeedbackService(feedbackRepo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{FeedbackRepo: feedbackRepo}
}

type FeedbackRequest struct {
	Subject string `json:"subject" binding:"required"`
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating"`
}

func (s *FeedbackService) Submit(userID uint, req FeedbackRequest) (*model.Feedback, error) {
	feedback := &model.Feedback{
		UserID:  userID,
		Subject: req.Subject,
		Content: req.Content,
		Rating:  req.Rating,
		Status:  model.FeedbackNew,
	}
	if err := s.FeedbackRepo.Create(feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *FeedbackService) ListMine(userID uint) ([]model.Feedback, error) {
	return s.FeedbackRepo.FindByUser(userID)
}

func (s *FeedbackService) ListAll(page, limit int) ([]model.Feedback, int64, error) {
	return s.FeedbackRepo.FindAll(page, limit)
}

func (s *FeedbackService) MarkHandled(id uint) (*model.Feedback, error) {
	feedback, err := s.FeedbackRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	feedback.Status = model.FeedbackHandled
	if err := s.FeedbackRepo.Update(feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}
