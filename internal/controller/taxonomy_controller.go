package controller

import (
	"errors"

	"course_hub_backend/internal/service"
	"course_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TaxonomyController struct {
	TaxonomyService *service.TaxonomyService
}

func NewTaxonomyController(taxonomyService *service.TaxonomyService) *TaxonomyController {
	return &TaxonomyController{TaxonomyService: taxonomyService}
}

// ListCategories godoc
// @Summary 分类列表
// @Tags 分类
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Category}
// @Router /api/categories [get]
func (c *TaxonomyController) ListCategories(ctx *gin.Context) {
	categories, err := c.TaxonomyService.ListCategories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// CreateCategory godoc
// @Summary 创建分类
// @Tags 分类管理
// @Security BearerAuth
// @Param   body body service.CategoryRequest true "分类信息"
// @Success 201 {object} util.Response{data=model.Category}
// @Router /api/admin/categories [post]
func (c *TaxonomyController) CreateCategory(ctx *gin.Context) {
	var req service.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.TaxonomyService.CreateCategory(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, category)
}

// UpdateCategory godoc
// @Summary 更新分类
// @Tags 分类管理
// @Security BearerAuth
// @Param   id path int true "分类 ID"
// @Param   body body service.CategoryRequest true "分类信息"
// @Success 200 {object} util.Response{data=model.Category}
// @Router /api/admin/categories/{id} [put]
func (c *TaxonomyController) UpdateCategory(ctx *gin.Context) {
	var req service.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.TaxonomyService.UpdateCategory(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, category)
}

// DeleteCategory godoc
// @Summary 删除分类
// @Tags 分类管理
// @Security BearerAuth
// @Param   id path int true "分类 ID"
// @Success 200 {object} util.Response
// @Router /api/admin/categories/{id} [delete]
func (c *TaxonomyController) DeleteCategory(ctx *gin.Context) {
	if err := c.TaxonomyService.DeleteCategory(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListLevels godoc
// @Summary 难度列表
// @Tags 难度
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Level}
// @Router /api/levels [get]
func (c *TaxonomyController) ListLevels(ctx *gin.Context) {
	levels, err := c.TaxonomyService.ListLevels()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, levels)
}

// CreateLevel godoc
// @Summary 创建难度
// @Tags 难度管理
// @Security BearerAuth
// @Param   body body service.LevelRequest true "难度信息"
// @Success 201 {object} util.Response{data=model.Level}
// @Router /api/admin/levels [post]
func (c *TaxonomyController) CreateLevel(ctx *gin.Context) {
	var req service.LevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	level, err := c.TaxonomyService.CreateLevel(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, level)
}

// UpdateLevel godoc
// @Summary 更新难度
// @Tags 难度管理
// @Security BearerAuth
// @Param   id path int true "难度 ID"
// @Param   body body service.LevelRequest true "难度信息"
// @Success 200 {object} util.Response{data=model.Level}
// @Router /api/admin/levels/{id} [put]
func (c *TaxonomyController) UpdateLevel(ctx *gin.Context) {
	var req service.LevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	level, err := c.TaxonomyService.UpdateLevel(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, level)
}

// DeleteLevel godoc
// @Summary 删除难度
// @Tags 难度管理
// @Security BearerAuth
// @Param   id path int true "难度 ID"
// @Success 200 {object} util.Response
// @Router /api/admin/levels/{id} [delete]
func (c *TaxonomyController) DeleteLevel(ctx *gin.Context) {
	if err := c.TaxonomyService.DeleteLevel(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
