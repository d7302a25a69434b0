package service

import (
	"errors"

	"course_hub_backend/internal/model"

	"gorm.io/gorm"
)

// approvalSource 审核状态只读接口，由 PostRepository 实现
type approvalSource interface {
	HasApprovedCourseLinkedPost(userID, courseID uint) (bool, error)
}

// badgeAwarder 勋章授予接口，由 BadgeRepository 实现（可为 nil）
type badgeAwarder interface {
	FindByCourse(courseID uint) (*model.Badge, error)
	Award(userID, badgeID uint) error
}

// CompletionService 结课判定：测验完成 且 有审核通过的课程关联帖
// 两个条件同时满足才把 completed 置为 true。两个事件到达顺序不定，
// 所以两侧触发点都重新求值，求值本身幂等且单向（不会取消已完成）。
type CompletionService struct {
	Activities activityStore
	Posts      approvalSource
	Badges     badgeAwarder
}

func NewCompletionService(activities activityStore, posts approvalSource, badges badgeAwarder) *CompletionService {
	return &CompletionService{
		Activities: activities,
		Posts:      posts,
		Badges:     badges,
	}
}

// Evaluate 条件不满足时不做任何修改，提前调用是安全的
func (s *CompletionService) Evaluate(userID, courseID uint) error {
	activity, err := s.Activities.FindByUserAndCourse(userID, courseID)
	if err != nil {
		// 还没有活动记录说明前置条件必然不满足
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if activity.QuizStatus != model.QuizCompleted || activity.Completed {
		return nil
	}

	approved, err := s.Posts.HasApprovedCourseLinkedPost(userID, courseID)
	if err != nil {
		return err
	}
	if !approved {
		return nil
	}

	// 勋章授予先于 completed 写入：写入失败时下次求值会重走到这里，
	// 而 Award 本身按 (user, badge) 幂等
	if s.Badges != nil {
		if badge, err := s.Badges.FindByCourse(courseID); err == nil {
			if err := s.Badges.Award(userID, badge.ID); err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	activity.Completed = true
	return s.Activities.Update(activity)
}
