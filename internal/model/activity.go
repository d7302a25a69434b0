package model

import "time"

type QuizStatus string

const (
	QuizNotStarted QuizStatus = "NotStarted"
	QuizReAttempt  QuizStatus = "Re-Attempt"
	QuizCompleted  QuizStatus = "Completed"
)

// UserCourseActivity 用户与课程的持久活动记录，(user_id, course_id) 唯一。
// TotalSeconds 以整数秒存储测验总耗时，任意时长都不会回绕。
// QuizProgress 统计所有提交次数（含答错），与会话内的答对计数无关。
// swagger:model UserCourseActivity
type UserCourseActivity struct {
	BaseModel
	UserID        uint       `gorm:"uniqueIndex:idx_user_course;not null" json:"userId"`
	CourseID      uint       `gorm:"uniqueIndex:idx_user_course;not null" json:"courseId"`
	Registered    bool       `gorm:"default:true" json:"registered"`
	Bookmarked    bool       `gorm:"default:false" json:"bookmarked"`
	QuizStatus    QuizStatus `gorm:"type:varchar(20);default:'NotStarted'" json:"quizStatus"`
	QuizStartTime *time.Time `json:"quizStartTime"`
	QuizEndTime   *time.Time `json:"quizEndTime"`
	TotalSeconds  *int64     `json:"totalSeconds"`
	MistakeCount  int        `gorm:"default:0" json:"mistakeCount"`
	QuizProgress  int        `gorm:"default:0" json:"quizProgress"`
	Completed     bool       `gorm:"default:false" json:"completed"`
}

func (UserCourseActivity) TableName() string {
	return "user_course_activities"
}
