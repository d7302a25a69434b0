package service

import "sync"

// quizSession 测验会话的临时状态：剩余题目队列 + 本会话答对计数。
// 有意不落库——进程重启或会话被放弃后，重新 start 即可重建；
// 跨会话事实一律以 UserCourseActivity 持久记录为准。
type quizSession struct {
	Queue        QuizQueue
	CorrectCount int
}

type sessionKey struct {
	UserID   uint
	CourseID uint
}

// QuizSessionStore (user, course) 维度的内存会话表。
// 同一 (user, course) 的请求按客户端串行假设处理，不同键之间互不影响。
type QuizSessionStore struct {
	mu       sync.RWMutex
	sessions map[sessionKey]*quizSession
}

func NewQuizSessionStore() *QuizSessionStore {
	return &QuizSessionStore{
		sessions: make(map[sessionKey]*quizSession),
	}
}

// Put 覆盖写入会话状态（start 时传入 correct = 0 即重置计数）
func (s *QuizSessionStore) Put(userID, courseID uint, queue QuizQueue, correct int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionKey{UserID: userID, CourseID: courseID}] = &quizSession{
		Queue:        queue,
		CorrectCount: correct,
	}
}

// Get 返回会话状态快照
func (s *QuizSessionStore) Get(userID, courseID uint) (QuizQueue, int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionKey{UserID: userID, CourseID: courseID}]
	if !ok {
		return nil, 0, false
	}
	return session.Queue, session.CorrectCount, true
}

func (s *QuizSessionStore) Delete(userID, courseID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionKey{UserID: userID, CourseID: courseID})
}
