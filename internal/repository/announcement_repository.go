package repository

import (
	"course_hub_backend/internal/model"

	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	DB *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{DB: db}
}

func (r *AnnouncementRepository) FindPublished(page, limit int) ([]model.Announcement, int64, error) {
	query := r.DB.Model(&model.Announcement{}).Where("is_published = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var announcements []model.Announcement
	err := query.
		Order("published_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&announcements).Error
	return announcements, total, err
}

func (r *AnnouncementRepository) FindAll() ([]model.Announcement, error) {
	var announcements []model.Announcement
	err := r.DB.Order("created_at DESC").Find(&announcements).Error
	return announcements, err
}

func (r *AnnouncementRepository) FindByID(id uint) (*model.Announcement, error) {
	var announcement model.Announcement
	err := r.DB.First(&announcement, id).Error
	return &announcement, err
}

func (r *AnnouncementRepository) Create(announcement *model.Announcement) error {
	return r.DB.Create(announcement).Error
}

func (r *AnnouncementRepository) Update(announcement *model.Announcement) error {
	return r.DB.Save(announcement).Error
}

func (r *AnnouncementRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Announcement{}, id).Error
}
