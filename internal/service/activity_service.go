package service

import (
	"course_hub_backend/internal/model"
	"course_hub_backend/internal/repository"
	"course_hub_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// ActivityService 课程报名、收藏与学习记录查询
type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
	CourseRepo   *repository.CourseRepository
}

func NewActivityService(activityRepo *repository.ActivityRepository, courseRepo *repository.CourseRepository) *ActivityService {
	return &ActivityService{
		ActivityRepo: activityRepo,
		CourseRepo:   courseRepo,
	}
}

// RegisterCourse 报名课程：为 (user, course) 创建唯一活动记录
func (s *ActivityService) RegisterCourse(userID, courseID uint) (*model.UserCourseActivity, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	activity := &model.UserCourseActivity{
		UserID:     userID,
		CourseID:   courseID,
		Registered: true,
		QuizStatus: model.QuizNotStarted,
	}
	if err := s.ActivityRepo.Create(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// ToggleBookmark 收藏/取消收藏，返回最新状态
func (s *ActivityService) ToggleBookmark(userID, courseID uint) (*model.UserCourseActivity, error) {
	activity, err := s.ActivityRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrActivityNotFound
		}
		return nil, err
	}

	activity.Bookmarked = !activity.Bookmarked
	if err := s.ActivityRepo.Update(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) GetActivity(userID, courseID uint) (*model.UserCourseActivity, error) {
	activity, err := s.ActivityRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrActivityNotFound
		}
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) ListMyActivities(userID uint) ([]model.UserCourseActivity, error) {
	return s.ActivityRepo.FindByUser(userID)
}

func (s *ActivityService) ListMyBookmarks(userID uint) ([]model.UserCourseActivity, error) {
	return s.ActivityRepo.FindBookmarkedByUser(userID)
}
