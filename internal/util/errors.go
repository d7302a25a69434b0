package util

import "errors"

var (
	ErrUserNotFound     = errors.New("用户不存在")
	ErrEmailRegistered  = errors.New("该邮箱已被注册")
	ErrPermissionDenied = errors.New("permission denied")
	ErrCourseNotFound   = errors.New("course not found")
	ErrPostNotFound     = errors.New("post not found")

	// 测验流程相关
	ErrEmptyCourse      = errors.New("course has no questions")
	ErrQueueExhausted   = errors.New("quiz queue exhausted")
	ErrNoActiveQuiz     = errors.New("no active quiz session, call start first")
	ErrActivityNotFound = errors.New("activity record not found, register for the course first")
	ErrActivityConflict = errors.New("activity record already exists for this course")
)
