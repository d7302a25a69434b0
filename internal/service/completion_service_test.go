package service

import (
	"errors"
	"testing"

	"course_hub_backend/internal/model"

	"gorm.io/gorm"
)

type fakeApprovalSource struct {
	approved bool
	err      error
}

func (f *fakeApprovalSource) HasApprovedCourseLinkedPost(userID, courseID uint) (bool, error) {
	return f.approved, f.err
}

type fakeBadgeAwarder struct {
	badge  *model.Badge
	awards map[[2]uint]int
}

func newFakeBadgeAwarder(badge *model.Badge) *fakeBadgeAwarder {
	return &fakeBadgeAwarder{badge: badge, awards: make(map[[2]uint]int)}
}

func (f *fakeBadgeAwarder) FindByCourse(courseID uint) (*model.Badge, error) {
	if f.badge == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.badge, nil
}

func (f *fakeBadgeAwarder) Award(userID, badgeID uint) error {
	f.awards[[2]uint{userID, badgeID}]++
	return nil
}

func completionFixture(status model.QuizStatus, approved bool) (*CompletionService, *fakeActivityStore) {
	activities := newFakeActivityStore()
	activities.put(model.UserCourseActivity{UserID: 1, CourseID: 2, QuizStatus: status})
	svc := NewCompletionService(activities, &fakeApprovalSource{approved: approved}, nil)
	return svc, activities
}

func TestEvaluateMissingRecordIsNoOp(t *testing.T) {
	svc := NewCompletionService(newFakeActivityStore(), &fakeApprovalSource{approved: true}, nil)
	if err := svc.Evaluate(1, 2); err != nil {
		t.Fatalf("missing record should not be an error, got %v", err)
	}
}

func TestEvaluateQuizNotCompleted(t *testing.T) {
	for _, status := range []model.QuizStatus{model.QuizNotStarted, model.QuizReAttempt} {
		svc, activities := completionFixture(status, true)
		if err := svc.Evaluate(1, 2); err != nil {
			t.Fatal(err)
		}
		if activities.get(1, 2).Completed {
			t.Fatalf("status %q must not complete the course", status)
		}
		if activities.updates != 0 {
			t.Fatalf("status %q caused %d writes", status, activities.updates)
		}
	}
}

func TestEvaluateWithoutApprovedPost(t *testing.T) {
	svc, activities := completionFixture(model.QuizCompleted, false)
	if err := svc.Evaluate(1, 2); err != nil {
		t.Fatal(err)
	}
	if activities.get(1, 2).Completed {
		t.Fatal("course completed without an approved post")
	}
}

func TestEvaluateBothConditionsMet(t *testing.T) {
	svc, activities := completionFixture(model.QuizCompleted, true)
	if err := svc.Evaluate(1, 2); err != nil {
		t.Fatal(err)
	}
	if !activities.get(1, 2).Completed {
		t.Fatal("course should be completed when both conditions hold")
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	svc, activities := completionFixture(model.QuizCompleted, true)
	if err := svc.Evaluate(1, 2); err != nil {
		t.Fatal(err)
	}
	writesAfterFirst := activities.updates

	if err := svc.Evaluate(1, 2); err != nil {
		t.Fatal(err)
	}
	if activities.updates != writesAfterFirst {
		t.Fatal("second evaluation must not write again")
	}
	if !activities.get(1, 2).Completed {
		t.Fatal("completed flag must stay set")
	}
}

// 两个条件到达顺序不定：先审核后交卷和先交卷后审核结果一致
func TestEvaluateOrderIndependence(t *testing.T) {
	posts := &fakeApprovalSource{approved: true}
	activities := newFakeActivityStore()
	activities.put(model.UserCourseActivity{UserID: 1, CourseID: 2, QuizStatus: model.QuizReAttempt})
	svc := NewCompletionService(activities, posts, nil)

	// 帖子先过审，测验还没完成
	if err := svc.Evaluate(1, 2); err != nil {
		t.Fatal(err)
	}
	if activities.get(1, 2).Completed {
		t.Fatal("approval alone must not complete the course")
	}

	// 之后测验完成，再次求值
	record := activities.get(1, 2)
	record.QuizStatus = model.QuizCompleted
	activities.put(record)
	if err := svc.Evaluate(1, 2); err != nil {
		t.Fatal(err)
	}
	if !activities.get(1, 2).Completed {
		t.Fatal("course should complete once the quiz side arrives")
	}
}

func TestEvaluateAwardsCourseBadgeOnce(t *testing.T) {
	badges := newFakeBadgeAwarder(&model.Badge{BaseModel: model.BaseModel{ID: 10}})
	activities := newFakeActivityStore()
	activities.put(model.UserCourseActivity{UserID: 1, CourseID: 2, QuizStatus: model.QuizCompleted})
	svc := NewCompletionService(activities, &fakeApprovalSource{approved: true}, badges)

	if err := svc.Evaluate(1, 2); err != nil {
		t.Fatal(err)
	}
	if err := svc.Evaluate(1, 2); err != nil {
		t.Fatal(err)
	}
	if badges.awards[[2]uint{1, 10}] != 1 {
		t.Fatalf("badge awarded %d times, want 1", badges.awards[[2]uint{1, 10}])
	}
}

func TestEvaluateWithoutCourseBadge(t *testing.T) {
	badges := newFakeBadgeAwarder(nil)
	activities := newFakeActivityStore()
	activities.put(model.UserCourseActivity{UserID: 1, CourseID: 2, QuizStatus: model.QuizCompleted})
	svc := NewCompletionService(activities, &fakeApprovalSource{approved: true}, badges)

	if err := svc.Evaluate(1, 2); err != nil {
		t.Fatal(err)
	}
	if !activities.get(1, 2).Completed {
		t.Fatal("missing course badge must not block completion")
	}
	if len(badges.awards) != 0 {
		t.Fatal("no badge should be awarded when none is linked to the course")
	}
}

func TestEvaluatePropagatesStoreErrors(t *testing.T) {
	ioErr := errors.New("timeout")
	activities := newFakeActivityStore()
	activities.put(model.UserCourseActivity{UserID: 1, CourseID: 2, QuizStatus: model.QuizCompleted})
	svc := NewCompletionService(activities, &fakeApprovalSource{err: ioErr}, nil)

	if err := svc.Evaluate(1, 2); !errors.Is(err, ioErr) {
		t.Fatalf("expected store error, got %v", err)
	}
	if activities.get(1, 2).Completed {
		t.Fatal("error path must not flip the completed flag")
	}
}
