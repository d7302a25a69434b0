package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"course_hub_backend/internal/model"
	"course_hub_backend/internal/repository"
	"course_hub_backend/internal/util"
)

type CourseService struct {
	CourseRepo   *repository.CourseRepository
	StepRepo     *repository.StepRepository
	TipRepo      *repository.TipRepository
	QuestionRepo *repository.QuestionRepository
	Storage      *StorageService
}

func NewCourseService(
	courseRepo *repository.CourseRepository,
	stepRepo *repository.StepRepository,
	tipRepo *repository.TipRepository,
	questionRepo *repository.QuestionRepository,
	storage *StorageService,
) *CourseService {
	return &CourseService{
		CourseRepo:   courseRepo,
		StepRepo:     stepRepo,
		TipRepo:      tipRepo,
		QuestionRepo: questionRepo,
		Storage:      storage,
	}
}

type CourseCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	CategoryID  uint   `json:"categoryId"`
	LevelID     uint   `json:"levelId"`
	CoverURL    string `json:"coverUrl"`
	IsPublished bool   `json:"isPublished"`
}

type StepRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content"`
	ImageURL  string `json:"imageUrl"`
	SortOrder int    `json:"sortOrder"`
}

type TipRequest struct {
	Content   string `json:"content" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

type QuestionRequest struct {
	Kind        model.QuestionKind `json:"kind" binding:"required"`
	Prompt      string             `json:"prompt" binding:"required"`
	Options     string             `json:"options"`
	Answer      string             `json:"answer"`
	Explanation string             `json:"explanation"`
	SortOrder   int                `json:"sortOrder"`
}

func (s *CourseService) ListCourses(filter repository.CourseFilter, page, limit int) ([]model.Course, int64, error) {
	return s.CourseRepo.FindAll(filter, page, limit)
}

func (s *CourseService) GetCourse(id uint) (*model.Course, error) {
	return s.CourseRepo.FindByID(id)
}

func (s *CourseService) CreateCourse(req CourseCreateRequest) (*model.Course, error) {
	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		LevelID:     req.LevelID,
		CoverURL:    req.CoverURL,
		IsPublished: req.IsPublished,
	}
	if req.IsPublished {
		now := time.Now()
		course.PublishedAt = &now
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) UpdateCourse(id uint, req CourseCreateRequest) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	course.Title = req.Title
	course.Description = req.Description
	course.CategoryID = req.CategoryID
	course.LevelID = req.LevelID
	if req.CoverURL != "" {
		course.CoverURL = req.CoverURL
	}
	if req.IsPublished && !course.IsPublished {
		now := time.Now()
		course.PublishedAt = &now
	}
	course.IsPublished = req.IsPublished

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) DeleteCourse(id uint) error {
	return s.CourseRepo.Delete(id)
}

// AttachVideo 绑定课程介绍视频：抽帧生成缩略图后双双入库
func (s *CourseService) AttachVideo(ctx context.Context, courseID uint, localPath string) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, err
	}

	info, err := util.GetVideoInfo(localPath)
	if err != nil {
		return nil, err
	}

	thumbnailPath := localPath + ".thumb.jpg"
	if err := util.GenerateThumbnail(localPath, thumbnailPath, "00:00:01"); err != nil {
		return nil, err
	}

	videoName := fmt.Sprintf("courses/%d/intro%s", courseID, filepath.Ext(localPath))
	videoURL, err := s.Storage.UploadFile(ctx, videoName, localPath, "video/"+info.Format)
	if err != nil {
		return nil, err
	}

	thumbName := fmt.Sprintf("courses/%d/intro_thumb.jpg", courseID)
	thumbURL, err := s.Storage.UploadFile(ctx, thumbName, thumbnailPath, "image/jpeg")
	if err != nil {
		return nil, err
	}

	course.VideoURL = videoURL
	course.ThumbnailURL = thumbURL
	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

// ---- 分步内容 ----

func (s *CourseService) ListSteps(courseID uint) ([]model.CourseStep, error) {
	return s.StepRepo.FindByCourse(courseID)
}

func (s *CourseService) CreateStep(courseID uint, req StepRequest) (*model.CourseStep, error) {
	step := &model.CourseStep{
		CourseID:  courseID,
		Title:     req.Title,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		SortOrder: req.SortOrder,
	}
	if err := s.StepRepo.Create(step); err != nil {
		return nil, err
	}
	return step, nil
}

func (s *CourseService) UpdateStep(stepID uint, req StepRequest) (*model.CourseStep, error) {
	step, err := s.StepRepo.FindByID(stepID)
	if err != nil {
		return nil, err
	}
	step.Title = req.Title
	step.Content = req.Content
	step.ImageURL = req.ImageURL
	step.SortOrder = req.SortOrder
	if err := s.StepRepo.Update(step); err != nil {
		return nil, err
	}
	return step, nil
}

func (s *CourseService) DeleteStep(stepID uint) error {
	return s.StepRepo.Delete(stepID)
}

// ---- 小贴士 ----

func (s *CourseService) ListTips(courseID uint) ([]model.CourseTip, error) {
	return s.TipRepo.FindByCourse(courseID)
}

func (s *CourseService) CreateTip(courseID uint, req TipRequest) (*model.CourseTip, error) {
	tip := &model.CourseTip{
		CourseID:  courseID,
		Content:   req.Content,
		SortOrder: req.SortOrder,
	}
	if err := s.TipRepo.Create(tip); err != nil {
		return nil, err
	}
	return tip, nil
}

func (s *CourseService) UpdateTip(tipID uint, req TipRequest) (*model.CourseTip, error) {
	tip, err := s.TipRepo.FindByID(tipID)
	if err != nil {
		return nil, err
	}
	tip.Content = req.Content
	tip.SortOrder = req.SortOrder
	if err := s.TipRepo.Update(tip); err != nil {
		return nil, err
	}
	return tip, nil
}

func (s *CourseService) DeleteTip(tipID uint) error {
	return s.TipRepo.Delete(tipID)
}

// ---- 测验题目 ----

func (s *CourseService) ListQuestions(courseID uint) ([]model.CourseQuestion, error) {
	return s.QuestionRepo.FindByCourseOrdered(courseID)
}

func (s *CourseService) CreateQuestion(courseID uint, req QuestionRequest) (*model.CourseQuestion, error) {
	question := &model.CourseQuestion{
		CourseID:    courseID,
		Kind:        req.Kind,
		Prompt:      req.Prompt,
		Options:     req.Options,
		Answer:      req.Answer,
		Explanation: req.Explanation,
		SortOrder:   req.SortOrder,
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *CourseService) UpdateQuestion(questionID uint, req QuestionRequest) (*model.CourseQuestion, error) {
	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		return nil, err
	}
	question.Kind = req.Kind
	question.Prompt = req.Prompt
	question.Options = req.Options
	question.Answer = req.Answer
	question.Explanation = req.Explanation
	question.SortOrder = req.SortOrder
	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *CourseService) DeleteQuestion(questionID uint) error {
	return s.QuestionRepo.Delete(questionID)
}
