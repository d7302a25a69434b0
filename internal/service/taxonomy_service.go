package service

import (
	"course_hub_backend/internal/model"
	"course_hub_backend/internal/repository"
)

// TaxonomyService 课程分类与难度分级的管理
type TaxonomyService struct {
	CategoryRepo *repository.CategoryRepository
	LevelRepo    *repository.LevelRepository
}

func NewTaxonomyService(categoryRepo *repository.CategoryRepository, levelRepo *repository.LevelRepository) *TaxonomyService {
	return &TaxonomyService{
		CategoryRepo: categoryRepo,
		LevelRepo:    levelRepo,
	}
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type LevelRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

func (s *TaxonomyService) ListCategories() ([]model.Category, error) {
	return s.CategoryRepo.FindAll()
}

func (s *TaxonomyService) CreateCategory(req CategoryRequest) (*model.Category, error) {
	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	}
	if err := s.CategoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *TaxonomyService) UpdateCategory(id uint, req CategoryRequest) (*model.Category, error) {
	category, err := s.CategoryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	category.Name = req.Name
	category.Description = req.Description
	category.Icon = req.Icon
	if err := s.CategoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *TaxonomyService) DeleteCategory(id uint) error {
	return s.CategoryRepo.Delete(id)
}

func (s *TaxonomyService) ListLevels() ([]model.Level, error) {
	return s.LevelRepo.FindAll()
}

func (s *TaxonomyService) CreateLevel(req LevelRequest) (*model.Level, error) {
	level := &model.Level{
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}
	if err := s.LevelRepo.Create(level); err != nil {
		return nil, err
	}
	return level, nil
}

func (s *TaxonomyService) UpdateLevel(id uint, req LevelRequest) (*model.Level, error) {
	level, err := s.LevelRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	level.Name = req.Name
	level.Description = req.Description
	level.SortOrder = req.SortOrder
	if err := s.LevelRepo.Update(level); err != nil {
		return nil, err
	}
	return level, nil
}

func (s *TaxonomyService) DeleteLevel(id uint) error {
	return s.LevelRepo.Delete(id)
}
