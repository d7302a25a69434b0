package service

import (
	"errors"
	"testing"
	"time"

	"course_hub_backend/internal/model"
	"course_hub_backend/internal/util"

	"gorm.io/gorm"
)

type fakeCatalog struct {
	questions []model.CourseQuestion
	err       error
}

func (f *fakeCatalog) FindByCourseOrdered(courseID uint) ([]model.CourseQuestion, error) {
	return f.questions, f.err
}

// fakeActivityStore 内存版活动记录存储。FindByUserAndCourse 返回副本，
// 只有 Update 成功才写回，模拟真实仓储的落库语义。
type fakeActivityStore struct {
	records   map[[2]uint]model.UserCourseActivity
	updateErr error
	updates   int
}

func newFakeActivityStore() *fakeActivityStore {
	return &fakeActivityStore{records: make(map[[2]uint]model.UserCourseActivity)}
}

func (f *fakeActivityStore) put(a model.UserCourseActivity) {
	f.records[[2]uint{a.UserID, a.CourseID}] = a
}

func (f *fakeActivityStore) get(userID, courseID uint) model.UserCourseActivity {
	return f.records[[2]uint{userID, courseID}]
}

func (f *fakeActivityStore) FindByUserAndCourse(userID, courseID uint) (*model.UserCourseActivity, error) {
	record, ok := f.records[[2]uint{userID, courseID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := record
	return &copied, nil
}

func (f *fakeActivityStore) Update(activity *model.UserCourseActivity) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates++
	f.records[[2]uint{activity.UserID, activity.CourseID}] = *activity
	return nil
}

func questionsFixture(n int) []model.CourseQuestion {
	questions := make([]model.CourseQuestion, n)
	for i := range questions {
		questions[i] = model.CourseQuestion{
			BaseModel: model.BaseModel{ID: uint(i + 1)},
			Kind:      model.QuestionMCQ,
		}
	}
	return questions
}

func newQuizFixture(t *testing.T, n int) (*QuizProgressService, *fakeActivityStore) {
	t.Helper()
	activities := newFakeActivityStore()
	activities.put(model.UserCourseActivity{UserID: 1, CourseID: 2, Registered: true})
	svc := NewQuizProgressService(
		&fakeCatalog{questions: questionsFixture(n)},
		activities,
		NewQuizSessionStore(),
	)
	return svc, activities
}

func TestStartQuizEmptyCourse(t *testing.T) {
	svc := NewQuizProgressService(&fakeCatalog{}, newFakeActivityStore(), NewQuizSessionStore())
	if _, err := svc.StartQuiz(1, 2); !errors.Is(err, util.ErrEmptyCourse) {
		t.Fatalf("expected ErrEmptyCourse, got %v", err)
	}
}

func TestStartQuizWithoutActivityRecord(t *testing.T) {
	svc := NewQuizProgressService(
		&fakeCatalog{questions: questionsFixture(3)},
		newFakeActivityStore(),
		NewQuizSessionStore(),
	)
	if _, err := svc.StartQuiz(1, 2); !errors.Is(err, util.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}

func TestStartQuizInitializesRecordAndSession(t *testing.T) {
	svc, activities := newQuizFixture(t, 5)

	result, err := svc.StartQuiz(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if result.Remaining != 5 {
		t.Fatalf("remaining = %d, want 5", result.Remaining)
	}
	if result.Question.ID == 0 {
		t.Fatal("start did not return a question")
	}

	record := activities.get(1, 2)
	if record.QuizStatus != model.QuizReAttempt {
		t.Fatalf("status = %q, want %q", record.QuizStatus, model.QuizReAttempt)
	}
	if record.QuizStartTime == nil {
		t.Fatal("start time not set")
	}
	if record.QuizEndTime != nil || record.TotalSeconds != nil {
		t.Fatal("end time / total seconds should be cleared on start")
	}
	if record.QuizProgress != 0 || record.MistakeCount != 0 {
		t.Fatal("counters should be reset on start")
	}
}

func TestStartThenFinishWithoutAnswers(t *testing.T) {
	svc, activities := newQuizFixture(t, 3)

	if _, err := svc.StartQuiz(1, 2); err != nil {
		t.Fatal(err)
	}
	result, err := svc.FinishQuiz(1, 2)
	if err != nil {
		t.Fatal(err)
	}

	if result.QuizProgress != 0 || result.MistakeCount != 0 {
		t.Fatalf("progress=%d mistakes=%d, want 0/0", result.QuizProgress, result.MistakeCount)
	}
	if result.TotalSeconds < 0 {
		t.Fatalf("total seconds = %d, want >= 0", result.TotalSeconds)
	}
	record := activities.get(1, 2)
	if record.QuizStatus != model.QuizCompleted {
		t.Fatalf("status = %q, want %q", record.QuizStatus, model.QuizCompleted)
	}
	if record.QuizEndTime == nil || record.TotalSeconds == nil {
		t.Fatal("end time / total seconds not persisted")
	}
}

func TestAllCorrectDrainsInExactlyNCalls(t *testing.T) {
	const n = 4
	svc, activities := newQuizFixture(t, n)

	if _, err := svc.StartQuiz(1, 2); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < n; i++ {
		result, err := svc.AnswerQuestion(1, 2, true)
		if err != nil {
			t.Fatal(err)
		}
		wantFinished := i == n-1
		if result.Finished != wantFinished {
			t.Fatalf("call %d: finished = %v, want %v", i+1, result.Finished, wantFinished)
		}
		if !result.Finished && result.Next == nil {
			t.Fatalf("call %d: no next question while unfinished", i+1)
		}
		if result.CorrectCount != i+1 {
			t.Fatalf("call %d: correct = %d, want %d", i+1, result.CorrectCount, i+1)
		}
	}

	record := activities.get(1, 2)
	if record.QuizProgress != n || record.MistakeCount != 0 {
		t.Fatalf("progress=%d mistakes=%d, want %d/0", record.QuizProgress, record.MistakeCount, n)
	}
}

// 三道题：答错一次后，其余题目各答对一次，最后答对被重排的那道。
func TestIncorrectThenCorrectCycle(t *testing.T) {
	svc, activities := newQuizFixture(t, 3)

	if _, err := svc.StartQuiz(1, 2); err != nil {
		t.Fatal(err)
	}

	result, err := svc.AnswerQuestion(1, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	if result.Finished {
		t.Fatal("queue must not finish on an incorrect answer")
	}
	if result.Remaining != 3 {
		t.Fatalf("remaining = %d, want 3 (requeued)", result.Remaining)
	}

	record := activities.get(1, 2)
	if record.QuizProgress != 1 || record.MistakeCount != 1 {
		t.Fatalf("progress=%d mistakes=%d, want 1/1", record.QuizProgress, record.MistakeCount)
	}

	for i := 0; i < 3; i++ {
		result, err = svc.AnswerQuestion(1, 2, true)
		if err != nil {
			t.Fatal(err)
		}
	}
	if !result.Finished {
		t.Fatal("queue should drain after answering remaining questions")
	}
	if result.CorrectCount != 3 {
		t.Fatalf("correct = %d, want 3", result.CorrectCount)
	}

	record = activities.get(1, 2)
	if record.QuizProgress != 4 || record.MistakeCount != 1 {
		t.Fatalf("progress=%d mistakes=%d, want 4/1", record.QuizProgress, record.MistakeCount)
	}
}

func TestAnswerWithoutStart(t *testing.T) {
	svc, _ := newQuizFixture(t, 3)
	if _, err := svc.AnswerQuestion(1, 2, true); !errors.Is(err, util.ErrNoActiveQuiz) {
		t.Fatalf("expected ErrNoActiveQuiz, got %v", err)
	}
}

func TestAnswerAfterFinish(t *testing.T) {
	svc, _ := newQuizFixture(t, 2)
	if _, err := svc.StartQuiz(1, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.FinishQuiz(1, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AnswerQuestion(1, 2, true); !errors.Is(err, util.ErrNoActiveQuiz) {
		t.Fatalf("expected ErrNoActiveQuiz after finish, got %v", err)
	}
}

func TestFailedUpdateLeavesQueueRetryable(t *testing.T) {
	svc, activities := newQuizFixture(t, 3)

	if _, err := svc.StartQuiz(1, 2); err != nil {
		t.Fatal(err)
	}

	ioErr := errors.New("connection reset")
	activities.updateErr = ioErr
	if _, err := svc.AnswerQuestion(1, 2, true); !errors.Is(err, ioErr) {
		t.Fatalf("expected store error, got %v", err)
	}

	// 落库失败时会话不变，重试从同一题继续
	queue, correct, ok := svc.Sessions.Get(1, 2)
	if !ok || len(queue) != 3 || correct != 0 {
		t.Fatalf("session changed after failed write: queue=%v correct=%d", queue, correct)
	}

	activities.updateErr = nil
	result, err := svc.AnswerQuestion(1, 2, true)
	if err != nil {
		t.Fatal(err)
	}
	if result.Remaining != 2 || result.CorrectCount != 1 {
		t.Fatalf("retry result = %+v", result)
	}
	record := activities.get(1, 2)
	if record.QuizProgress != 1 {
		t.Fatalf("progress = %d, want 1 (failed attempt not counted)", record.QuizProgress)
	}
}

func TestStartAbandonsPreviousSession(t *testing.T) {
	svc, activities := newQuizFixture(t, 4)

	if _, err := svc.StartQuiz(1, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AnswerQuestion(1, 2, true); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AnswerQuestion(1, 2, false); err != nil {
		t.Fatal(err)
	}

	result, err := svc.StartQuiz(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if result.Remaining != 4 {
		t.Fatalf("remaining = %d, want full queue after restart", result.Remaining)
	}

	queue, correct, _ := svc.Sessions.Get(1, 2)
	if len(queue) != 4 || correct != 0 {
		t.Fatalf("session not reset: queue=%v correct=%d", queue, correct)
	}
	record := activities.get(1, 2)
	if record.QuizProgress != 0 || record.MistakeCount != 0 {
		t.Fatalf("record not reset: progress=%d mistakes=%d", record.QuizProgress, record.MistakeCount)
	}
}

func TestFinishClampsClockSkewToZero(t *testing.T) {
	svc, activities := newQuizFixture(t, 2)

	future := time.Now().Add(time.Hour)
	record := activities.get(1, 2)
	record.QuizStartTime = &future
	record.QuizStatus = model.QuizReAttempt
	activities.put(record)

	result, err := svc.FinishQuiz(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if result.TotalSeconds != 0 {
		t.Fatalf("total seconds = %d, want 0 when clock skews backwards", result.TotalSeconds)
	}
}

func TestFinishWithoutActivityRecord(t *testing.T) {
	svc := NewQuizProgressService(
		&fakeCatalog{questions: questionsFixture(2)},
		newFakeActivityStore(),
		NewQuizSessionStore(),
	)
	if _, err := svc.FinishQuiz(9, 9); !errors.Is(err, util.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}

func TestElapsedTimeIsWholeSeconds(t *testing.T) {
	svc, activities := newQuizFixture(t, 2)

	past := time.Now().Add(-90 * time.Second)
	record := activities.get(1, 2)
	record.QuizStartTime = &past
	record.QuizStatus = model.QuizReAttempt
	activities.put(record)

	result, err := svc.FinishQuiz(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if result.TotalSeconds < 90 || result.TotalSeconds > 92 {
		t.Fatalf("total seconds = %d, want ~90", result.TotalSeconds)
	}
}
