package service

import (
	"course_hub_backend/internal/model"
	"course_hub_backend/internal/repository"
)

type BadgeService struct {
	BadgeRepo *repository.BadgeRepository
}

func NewBadgeService(badgeRepo *repository.BadgeRepository) *BadgeService {
	return &BadgeService{BadgeRepo: badgeRepo}
}

type BadgeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	CourseID    *uint  `json:"courseId"`
}

func (s *BadgeService) ListBadges() ([]model.Badge, error) {
	return s.BadgeRepo.FindAll()
}

func (s *BadgeService) ListUserBadges(userID uint) ([]model.UserBadge, error) {
	return s.BadgeRepo.FindByUser(userID)
}

func (s *BadgeService) Create(req BadgeRequest) (*model.Badge, error) {
	badge := &model.Badge{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		CourseID:    req.CourseID,
	}
	if err := s.BadgeRepo.Create(badge); err != nil {
		return nil, err
	}
	return badge, nil
}

func (s *BadgeService) Update(id uint, req BadgeRequest) (*model.Badge, error) {
	badge, err := s.BadgeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	badge.Name = req.Name
	badge.Description = req.Description
	badge.Icon = req.Icon
	badge.CourseID = req.CourseID
	if err := s.BadgeRepo.Update(badge); err != nil {
		return nil, err
	}
	return badge, nil
}

func (s *BadgeService) Delete(id uint) error {
	return s.BadgeRepo.Delete(id)
}
