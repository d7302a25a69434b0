package repository

import (
	"course_hub_backend/internal/model"

	"gorm.io/gorm"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

func (r *BadgeRepository) FindAll() ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Order("created_at ASC").Find(&badges).Error
	return badges, err
}

func (r *BadgeRepository) FindByID(id uint) (*model.Badge, error) {
	var badge model.Badge
	err := r.DB.First(&badge, id).Error
	return &badge, err
}

func (r *BadgeRepository) FindByCourse(courseID uint) (*model.Badge, error) {
	var badge model.Badge
	err := r.DB.Where("course_id = ?", courseID).First(&badge).Error
	return &badge, err
}

func (r *BadgeRepository) Create(badge *model.Badge) error {
	return r.DB.Create(badge).Error
}

func (r *BadgeRepository) Update(badge *model.Badge) error {
	return r.DB.Save(badge).Error
}

func (r *BadgeRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Badge{}, id).Error
}

// Award 授予用户勋章，已持有时不重复写入
func (r *BadgeRepository) Award(userID, badgeID uint) error {
	userBadge := model.UserBadge{UserID: userID, BadgeID: badgeID}
	return r.DB.
		Where("user_id = ? AND badge_id = ?", userID, badgeID).
		FirstOrCreate(&userBadge).Error
}

func (r *BadgeRepository) FindByUser(userID uint) ([]model.UserBadge, error) {
	var userBadges []model.UserBadge
	err := r.DB.
		Preload("Badge").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&userBadges).Error
	return userBadges, err
}
