package controller

import (
	"errors"

	"course_hub_backend/internal/model"
	"course_hub_backend/internal/repository"
	"course_hub_backend/internal/service"
	"course_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CommunityController struct {
	CommunityService *service.CommunityService
}

func NewCommunityController(communityService *service.CommunityService) *CommunityController {
	return &CommunityController{CommunityService: communityService}
}

// ListPosts godoc
// @Summary 帖子列表
// @Description 普通用户只能看到审核通过的帖子，管理员可按状态过滤
// @Tags 社区
// @Produce  json
// @Param   page query int false "页码"
// @Param   limit query int false "每页数量"
// @Param   courseId query int false "课程 ID"
// @Param   status query string false "审核状态（仅管理员）"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/posts [get]
func (c *CommunityController) ListPosts(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))

	filter := repository.PostFilter{
		CourseID: util.MustParseUint(ctx.Query("courseId")),
		Status:   model.ModerationApproved,
	}
	claims := util.GetUserFromContext(ctx)
	if claims != nil && claims.Role == model.Admin {
		filter.Status = model.ModerationStatus(ctx.Query("status"))
	}

	posts, total, err := c.CommunityService.ListPosts(filter, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  posts,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetPost godoc
// @Summary 帖子详情
// @Tags 社区
// @Produce  json
// @Param   id path string true "帖子 ID"
// @Success 200 {object} util.Response{data=model.Post}
// @Failure 404 {object} util.Response "帖子不存在"
// @Router /api/posts/{id} [get]
func (c *CommunityController) GetPost(ctx *gin.Context) {
	post, err := c.CommunityService.GetPost(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, post)
}

// CreatePost godoc
// @Summary 发布帖子
// @Description 新帖子进入待审核状态；关联课程的帖子审核通过后参与课程完成判定
// @Tags 社区
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.PostCreateRequest true "帖子内容"
// @Success 201 {object} util.Response{data=model.Post}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/posts [post]
func (c *CommunityController) CreatePost(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.PostCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	post, err := c.CommunityService.CreatePost(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, post)
}

// DeletePost godoc
// @Summary 删除帖子
// @Description 作者本人或管理员可删除
// @Tags 社区
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "帖子 ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "没有权限"
// @Router /api/posts/{id} [delete]
func (c *CommunityController) DeletePost(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.CommunityService.DeletePost(claims.UserID, claims.Role, ctx.Param("id")); err != nil {
		switch {
		case errors.Is(err, util.ErrPostNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

type ReviewRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

// ReviewPost godoc
// @Summary 审核帖子
// @Description 管理员审核帖子；审核通过且帖子关联课程时触发该课程的完成条件评估
// @Tags 社区管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "帖子 ID"
// @Param   body body ReviewRequest true "审核结论"
// @Success 200 {object} util.Response{data=model.Post}
// @Failure 404 {object} util.Response "帖子不存在"
// @Router /api/admin/posts/{id}/review [post]
func (c *CommunityController) ReviewPost(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	post, err := c.CommunityService.ReviewPost(claims.UserID, ctx.Param("id"), *req.Approve)
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, post)
}
