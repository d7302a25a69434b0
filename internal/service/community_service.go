package service

import (
	"course_hub_backend/internal/model"
	"course_hub_backend/internal/repository"
	"course_hub_backend/internal/util"
	"course_hub_backend/pkg/logger"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// postStore 帖子存取接口，由 PostRepository 实现
type postStore interface {
	FindAll(filter repository.PostFilter, page, limit int) ([]model.Post, int64, error)
	FindByID(id string) (*model.Post, error)
	Create(post *model.Post) error
	Update(post *model.Post) error
	Delete(id string) error
	IncrementViews(id string) error
}

// CommunityService 社区帖子与内容审核。
// 审核通过课程关联帖时触发结课判定——测验完成事件与审核事件到达顺序
// 不定，两边都触发一次幂等求值即可。
type CommunityService struct {
	PostRepo   postStore
	Completion *CompletionService
}

func NewCommunityService(postRepo postStore, completion *CompletionService) *CommunityService {
	return &CommunityService{
		PostRepo:   postRepo,
		Completion: completion,
	}
}

type PostCreateRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	CourseID *uint  `json:"courseId"`
}

func (s *CommunityService) ListPosts(filter repository.PostFilter, page, limit int) ([]model.Post, int64, error) {
	return s.PostRepo.FindAll(filter, page, limit)
}

func (s *CommunityService) GetPost(id string) (*model.Post, error) {
	post, err := s.PostRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPostNotFound
		}
		return nil, err
	}

	// 浏览数异步累加，失败不影响读取
	go s.PostRepo.IncrementViews(id)

	return post, nil
}

// CreatePost 新帖默认进入待审核状态
func (s *CommunityService) CreatePost(authorID uint, req PostCreateRequest) (*model.Post, error) {
	post := &model.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
		CourseID: req.CourseID,
		Status:   model.ModerationPending,
	}
	if err := s.PostRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *CommunityService) DeletePost(userID uint, role model.UserRole, id string) error {
	post, err := s.PostRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrPostNotFound
		}
		return err
	}

	if post.AuthorID != userID && role != model.Admin {
		return util.ErrPermissionDenied
	}

	return s.PostRepo.Delete(id)
}

// ReviewPost 管理员审核。通过的课程关联帖会触发作者的结课判定
func (s *CommunityService) ReviewPost(reviewerID uint, id string, approve bool) (*model.Post, error) {
	post, err := s.PostRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPostNotFound
		}
		return nil, err
	}

	now := time.Now()
	if approve {
		post.Status = model.ModerationApproved
	} else {
		post.Status = model.ModerationRejected
	}
	post.ReviewerID = &reviewerID
	post.ReviewedAt = &now

	if err := s.PostRepo.Update(post); err != nil {
		return nil, err
	}

	// 审核结果已落库，结课判定失败只记录——测验结束时还会再触发一次
	if approve && post.CourseID != nil {
		if err := s.Completion.Evaluate(post.AuthorID, *post.CourseID); err != nil {
			logger.Log.Warn("course completion evaluation failed",
				zap.Uint("userId", post.AuthorID),
				zap.Uint("courseId", *post.CourseID),
				zap.Error(err))
		}
	}

	return post, nil
}
