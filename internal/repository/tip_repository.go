package repository

import (
	"course_hub_backend/internal/model"

	"gorm.io/gorm"
)

type TipRepository struct {
	DB *gorm.DB
}

func NewTipRepository(db *gorm.DB) *TipRepository {
	return &TipRepository{DB: db}
}

func (r *TipRepository) FindByCourse(courseID uint) ([]model.CourseTip, error) {
	var tips []model.CourseTip
	err := r.DB.
		Where("course_id = ?", courseID).
		Order("sort_order ASC").
		Find(&tips).Error
	return tips, err
}

func (r *TipRepository) FindByID(id uint) (*model.CourseTip, error) {
	var tip model.CourseTip
	err := r.DB.First(&tip, id).Error
	return &tip, err
}

func (r *TipRepository) Create(tip *model.CourseTip) error {
	return r.DB.Create(tip).Error
}

func (r *TipRepository) Update(tip *model.CourseTip) error {
	return r.DB.Save(tip).Error
}

func (r *TipRepository) Delete(id uint) error {
	return r.DB.Delete(&model.CourseTip{}, id).Error
}
