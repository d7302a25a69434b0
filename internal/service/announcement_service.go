package service

import (
	"course_hub_backend/internal/model"
	"course_hub_backend/internal/repository"
	"time"
)

type AnnouncementService struct {
	AnnouncementRepo *repository.AnnouncementRepository
}

func NewAnnouncementService(announcementRepo *repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{AnnouncementRepo: announcementRepo}
}

type AnnouncementRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	IsPublished bool   `json:"isPublished"`
}

func (s *AnnouncementService) ListPublished(page, limit int) ([]model.Announcement, int64, error) {
	return s.AnnouncementRepo.FindPublished(page, limit)
}

func (s *AnnouncementService) ListAll() ([]model.Announcement, error) {
	return s.AnnouncementRepo.FindAll()
}

func (s *AnnouncementService) Create(authorID uint, req AnnouncementRequest) (*model.Announcement, error) {
	announcement := &model.Announcement{
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    authorID,
		IsPublished: req.IsPublished,
	}
	if req.IsPublished {
		now := time.Now()
		announcement.PublishedAt = &now
	}
	if err := s.AnnouncementRepo.Create(announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (s *AnnouncementService) Update(id uint, req AnnouncementRequest) (*model.Announcement, error) {
	announcement, err := s.AnnouncementRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	announcement.Title = req.Title
	announcement.Content = req.Content
	if req.IsPublished && !announcement.IsPublished {
		now := time.Now()
		announcement.PublishedAt = &now
	}
	announcement.IsPublished = req.IsPublished

	if err := s.AnnouncementRepo.Update(announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (s *AnnouncementService) Delete(id uint) error {
	return s.AnnouncementRepo.Delete(id)
}
