package service

import (
	"errors"
	"time"

	"course_hub_backend/internal/model"
	"course_hub_backend/internal/util"

	"gorm.io/gorm"
)

// questionCatalog 题库只读接口，由 QuestionRepository 实现
type questionCatalog interface {
	FindByCourseOrdered(courseID uint) ([]model.CourseQuestion, error)
}

// activityStore 持久活动记录接口，由 ActivityRepository 实现
type activityStore interface {
	FindByUserAndCourse(userID, courseID uint) (*model.UserCourseActivity, error)
	Update(activity *model.UserCourseActivity) error
}

// QuizProgressService 测验推进状态机：start / answer / finish。
// 会话队列和答对计数放在内存会话表里，持久记录每次操作整条读写；
// 持久写失败时不动会话状态，调用方可以安全重试。
type QuizProgressService struct {
	Questions  questionCatalog
	Activities activityStore
	Sessions   *QuizSessionStore
}

func NewQuizProgressService(questions questionCatalog, activities activityStore, sessions *QuizSessionStore) *QuizProgressService {
	return &QuizProgressService{
		Questions:  questions,
		Activities: activities,
		Sessions:   sessions,
	}
}

type QuizStartResult struct {
	Question  QuestionRef `json:"question"`
	Remaining int         `json:"remaining"`
}

type QuizAnswerResult struct {
	Finished     bool         `json:"finished"`
	Next         *QuestionRef `json:"next,omitempty"`
	Remaining    int          `json:"remaining"`
	CorrectCount int          `json:"correctCount"`
}

type QuizFinishResult struct {
	TotalSeconds int64 `json:"totalSeconds"`
	QuizProgress int   `json:"quizProgress"`
	MistakeCount int   `json:"mistakeCount"`
}

// StartQuiz 开始（或重新开始）一次测验。
// 重复调用对持久记录是幂等的——进度字段整体覆盖；
// 但会丢弃之前会话里未答完的队列。
func (s *QuizProgressService) StartQuiz(userID, courseID uint) (*QuizStartResult, error) {
	questions, err := s.Questions.FindByCourseOrdered(courseID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrEmptyCourse
	}

	refs := make([]QuestionRef, len(questions))
	for i, q := range questions {
		refs[i] = QuestionRef{ID: q.ID, Kind: q.Kind}
	}

	queue, err := NewQuizQueue(refs)
	if err != nil {
		return nil, err
	}

	activity, err := s.Activities.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrActivityNotFound
		}
		return nil, err
	}

	now := time.Now()
	activity.QuizStatus = model.QuizReAttempt
	activity.QuizStartTime = &now
	activity.QuizEndTime = nil
	activity.TotalSeconds = nil
	activity.QuizProgress = 0
	activity.MistakeCount = 0

	if err := s.Activities.Update(activity); err != nil {
		return nil, err
	}

	s.Sessions.Put(userID, courseID, queue, 0)

	return &QuizStartResult{
		Question:  queue[0],
		Remaining: len(queue),
	}, nil
}

// AnswerQuestion 提交一次作答。答错的题目回到队尾；
// 持久记录的提交计数每次 +1，错误计数仅在答错时 +1。
func (s *QuizProgressService) AnswerQuestion(userID, courseID uint, isCorrect bool) (*QuizAnswerResult, error) {
	queue, correct, ok := s.Sessions.Get(userID, courseID)
	if !ok {
		return nil, util.ErrNoActiveQuiz
	}

	head, rest, err := queue.Dequeue()
	if err != nil {
		return nil, err
	}

	next := rest
	if isCorrect {
		correct++
	} else {
		next = rest.Requeue(head)
	}

	activity, err := s.Activities.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrActivityNotFound
		}
		return nil, err
	}

	activity.QuizProgress++
	if !isCorrect {
		activity.MistakeCount++
	}

	// 先落库再改会话：写失败时队列保持原样，便于重试
	if err := s.Activities.Update(activity); err != nil {
		return nil, err
	}

	s.Sessions.Put(userID, courseID, next, correct)

	result := &QuizAnswerResult{
		Finished:     next.IsTerminal(),
		Remaining:    len(next),
		CorrectCount: correct,
	}
	if !result.Finished {
		result.Next = &next[0]
	}
	return result, nil
}

// FinishQuiz 结束测验：计算耗时（时钟回拨时取 0），写入完成状态。
// 不依赖会话队列是否真的排空，外部取消也可以调用；
// 最终的课程 completed 标志由 CompletionService 单独判定。
func (s *QuizProgressService) FinishQuiz(userID, courseID uint) (*QuizFinishResult, error) {
	activity, err := s.Activities.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrActivityNotFound
		}
		return nil, err
	}

	now := time.Now()
	var elapsed int64
	if activity.QuizStartTime != nil {
		d := now.Sub(*activity.QuizStartTime)
		if d < 0 {
			d = 0
		}
		elapsed = int64(d.Seconds())
	}

	activity.QuizEndTime = &now
	activity.TotalSeconds = &elapsed
	activity.QuizStatus = model.QuizCompleted

	if err := s.Activities.Update(activity); err != nil {
		return nil, err
	}

	s.Sessions.Delete(userID, courseID)

	return &QuizFinishResult{
		TotalSeconds: elapsed,
		QuizProgress: activity.QuizProgress,
		MistakeCount: activity.MistakeCount,
	}, nil
}
