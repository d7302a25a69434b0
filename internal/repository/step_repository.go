package repository

import (
	"course_hub_backend/internal/model"

	"gorm.io/gorm"
)

type StepRepository struct {
	DB *gorm.DB
}

func NewStepRepository(db *gorm.DB) *StepRepository {
	return &StepRepository{DB: db}
}

func (r *StepRepository) FindByCourse(courseID uint) ([]model.CourseStep, error) {
	var steps []model.CourseStep
	err := r.DB.
		Where("course_id = ?", courseID).
		Order("sort_order ASC").
		Find(&steps).Error
	return steps, err
}

func (r *StepRepository) FindByID(id uint) (*model.CourseStep, error) {
	var step model.CourseStep
	err := r.DB.First(&step, id).Error
	return &step, err
}

func (r *StepRepository) Create(step *model.CourseStep) error {
	return r.DB.Create(step).Error
}

func (r *StepRepository) Update(step *model.CourseStep) error {
	return r.DB.Save(step).Error
}

func (r *StepRepository) Delete(id uint) error {
	return r.DB.Delete(&model.CourseStep{}, id).Error
}
