package repository

import (
	"course_hub_backend/internal/model"
	"course_hub_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// ActivityRepository 用户-课程活动记录存取。
// 记录整条读写，(user_id, course_id) 唯一，重复创建返回冲突。
type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) FindByUserAndCourse(userID, courseID uint) (*model.UserCourseActivity, error) {
	var activity model.UserCourseActivity
	err := r.DB.
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&activity).Error
	return &activity, err
}

func (r *ActivityRepository) Create(activity *model.UserCourseActivity) error {
	err := r.DB.
		Where("user_id = ? AND course_id = ?", activity.UserID, activity.CourseID).
		First(&model.UserCourseActivity{}).Error
	if err == nil {
		return util.ErrActivityConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.DB.Create(activity).Error
}

// Update 整条覆盖写入，按记录自身 ID 定位
func (r *ActivityRepository) Update(activity *model.UserCourseActivity) error {
	return r.DB.Save(activity).Error
}

func (r *ActivityRepository) FindByUser(userID uint) ([]model.UserCourseActivity, error) {
	var activities []model.UserCourseActivity
	err := r.DB.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) FindBookmarkedByUser(userID uint) ([]model.UserCourseActivity, error) {
	var activities []model.UserCourseActivity
	err := r.DB.
		Where("user_id = ? AND bookmarked = ?", userID, true).
		Order("updated_at DESC").
		Find(&activities).Error
	return activities, err
}
