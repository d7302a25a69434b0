package repository

import (
	"course_hub_backend/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{DB: db}
}

type PostFilter struct {
	AuthorID uint
	CourseID uint
	Status   model.ModerationStatus
}

func (r *PostRepository) FindAll(filter PostFilter, page, limit int) ([]model.Post, int64, error) {
	query := r.DB.Model(&model.Post{})

	if filter.AuthorID > 0 {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.CourseID > 0 {
		query = query.Where("course_id = ?", filter.CourseID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	err := query.
		Preload("Author").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *PostRepository) FindByID(id string) (*model.Post, error) {
	var post model.Post
	err := r.DB.Preload("Author").First(&post, "id = ?", id).Error
	return &post, err
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) Update(post *model.Post) error {
	return r.DB.Save(post).Error
}

func (r *PostRepository) Delete(id string) error {
	return r.DB.Delete(&model.Post{}, "id = ?", id).Error
}

func (r *PostRepository) IncrementViews(id string) error {
	return r.DB.Model(&model.Post{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).
		Error
}

// HasApprovedCourseLinkedPost 该用户是否有审核通过且关联指定课程的帖子
func (r *PostRepository) HasApprovedCourseLinkedPost(userID, courseID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Post{}).
		Where("author_id = ? AND course_id = ? AND status = ?", userID, courseID, model.ModerationApproved).
		Count(&count).Error
	return count > 0, err
}
