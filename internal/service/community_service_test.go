package service

import (
	"errors"
	"os"
	"testing"

	"course_hub_backend/internal/model"
	"course_hub_backend/internal/repository"
	"course_hub_backend/internal/util"
	"course_hub_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type fakePostStore struct {
	posts   map[string]model.Post
	updates int
}

func newFakePostStore(posts ...model.Post) *fakePostStore {
	store := &fakePostStore{posts: make(map[string]model.Post)}
	for _, p := range posts {
		store.posts[p.ID] = p
	}
	return store
}

func (f *fakePostStore) FindAll(filter repository.PostFilter, page, limit int) ([]model.Post, int64, error) {
	out := make([]model.Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (f *fakePostStore) FindByID(id string) (*model.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := post
	return &copied, nil
}

func (f *fakePostStore) Create(post *model.Post) error {
	f.posts[post.ID] = *post
	return nil
}

func (f *fakePostStore) Update(post *model.Post) error {
	f.posts[post.ID] = *post
	f.updates++
	return nil
}

func (f *fakePostStore) Delete(id string) error {
	delete(f.posts, id)
	return nil
}

func (f *fakePostStore) IncrementViews(id string) error { return nil }

func courseLinkedPost(id string, authorID, courseID uint) model.Post {
	post := model.Post{
		Title:    "分享",
		Content:  "学习心得",
		AuthorID: authorID,
		CourseID: &courseID,
		Status:   model.ModerationPending,
	}
	post.ID = id
	return post
}

func TestReviewPostApproveTriggersCompletion(t *testing.T) {
	activities := newFakeActivityStore()
	activities.put(model.UserCourseActivity{UserID: 1, CourseID: 2, QuizStatus: model.QuizCompleted})
	completion := NewCompletionService(activities, &fakeApprovalSource{approved: true}, nil)

	posts := newFakePostStore(courseLinkedPost("p1", 1, 2))
	svc := NewCommunityService(posts, completion)

	post, err := svc.ReviewPost(9, "p1", true)
	if err != nil {
		t.Fatal(err)
	}
	if post.Status != model.ModerationApproved {
		t.Fatalf("status = %q, want approved", post.Status)
	}
	if post.ReviewerID == nil || *post.ReviewerID != 9 || post.ReviewedAt == nil {
		t.Fatal("reviewer fields not recorded")
	}
	if !activities.get(1, 2).Completed {
		t.Fatal("approved course-linked post must complete a finished quiz")
	}
}

func TestReviewPostPersistsWhenCompletionFails(t *testing.T) {
	activities := newFakeActivityStore()
	activities.put(model.UserCourseActivity{UserID: 1, CourseID: 2, QuizStatus: model.QuizCompleted})
	completion := NewCompletionService(activities, &fakeApprovalSource{err: errors.New("store down")}, nil)

	posts := newFakePostStore(courseLinkedPost("p1", 1, 2))
	svc := NewCommunityService(posts, completion)

	post, err := svc.ReviewPost(9, "p1", true)
	if err != nil {
		t.Fatalf("review already persisted, caller must not see an error: %v", err)
	}
	if post.Status != model.ModerationApproved {
		t.Fatalf("status = %q, want approved", post.Status)
	}
	if posts.updates != 1 {
		t.Fatalf("updates = %d, want 1", posts.updates)
	}
	// 结课判定失败只记录，下一次测验结束时会重新求值
	if activities.get(1, 2).Completed {
		t.Fatal("completion must not flip when evaluation failed")
	}
}

func TestReviewPostRejectSkipsCompletion(t *testing.T) {
	activities := newFakeActivityStore()
	activities.put(model.UserCourseActivity{UserID: 1, CourseID: 2, QuizStatus: model.QuizCompleted})
	completion := NewCompletionService(activities, &fakeApprovalSource{approved: true}, nil)

	posts := newFakePostStore(courseLinkedPost("p1", 1, 2))
	svc := NewCommunityService(posts, completion)

	post, err := svc.ReviewPost(9, "p1", false)
	if err != nil {
		t.Fatal(err)
	}
	if post.Status != model.ModerationRejected {
		t.Fatalf("status = %q, want rejected", post.Status)
	}
	if activities.updates != 0 {
		t.Fatal("rejection must not touch the activity record")
	}
}

func TestReviewPostNotFound(t *testing.T) {
	svc := NewCommunityService(newFakePostStore(), nil)
	if _, err := svc.ReviewPost(9, "missing", true); !errors.Is(err, util.ErrPostNotFound) {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
}
