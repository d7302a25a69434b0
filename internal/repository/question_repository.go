package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"course_hub_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// QuestionRepository 课程题目存取，题目列表走 Redis 读缓存
type QuestionRepository struct {
	DB       *gorm.DB
	RDB      *redis.Client
	CacheTTL time.Duration
}

func NewQuestionRepository(db *gorm.DB, rdb *redis.Client, cacheTTL time.Duration) *QuestionRepository {
	return &QuestionRepository{DB: db, RDB: rdb, CacheTTL: cacheTTL}
}

func catalogCacheKey(courseID uint) string {
	return fmt.Sprintf("course:questions:%d", courseID)
}

// FindByCourseOrdered 按 sort_order 返回课程的完整题目列表
func (r *QuestionRepository) FindByCourseOrdered(courseID uint) ([]model.CourseQuestion, error) {
	ctx := context.Background()

	if r.RDB != nil && r.CacheTTL > 0 {
		cached, err := r.RDB.Get(ctx, catalogCacheKey(courseID)).Result()
		if err == nil {
			var questions []model.CourseQuestion
			if err := json.Unmarshal([]byte(cached), &questions); err == nil {
				return questions, nil
			}
		}
	}

	var questions []model.CourseQuestion
	err := r.DB.
		Where("course_id = ?", courseID).
		Order("sort_order ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}

	if r.RDB != nil && r.CacheTTL > 0 && len(questions) > 0 {
		if data, err := json.Marshal(questions); err == nil {
			// 缓存写失败不影响主流程
			r.RDB.Set(ctx, catalogCacheKey(courseID), data, r.CacheTTL)
		}
	}

	return questions, nil
}

func (r *QuestionRepository) FindByID(id uint) (*model.CourseQuestion, error) {
	var question model.CourseQuestion
	err := r.DB.First(&question, id).Error
	return &question, err
}

func (r *QuestionRepository) Create(question *model.CourseQuestion) error {
	if err := r.DB.Create(question).Error; err != nil {
		return err
	}
	r.invalidate(question.CourseID)
	return nil
}

func (r *QuestionRepository) Update(question *model.CourseQuestion) error {
	if err := r.DB.Save(question).Error; err != nil {
		return err
	}
	r.invalidate(question.CourseID)
	return nil
}

func (r *QuestionRepository) Delete(id uint) error {
	question, err := r.FindByID(id)
	if err != nil {
		return err
	}
	if err := r.DB.Delete(&model.CourseQuestion{}, id).Error; err != nil {
		return err
	}
	r.invalidate(question.CourseID)
	return nil
}

func (r *QuestionRepository) invalidate(courseID uint) {
	if r.RDB != nil {
		r.RDB.Del(context.Background(), catalogCacheKey(courseID))
	}
}
