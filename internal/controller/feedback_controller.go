package controller

import (
	"errors"

	"course_hub_backend/internal/service"
	"course_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FeedbackController struct {
	FeedbackService *service.FeedbackService
}

func NewFeedbackController(feedbackService *service.FeedbackService) *FeedbackController {
	return &FeedbackController{FeedbackService: feedbackService}
}

// SubmitFeedback godoc
// @Summary 提交反馈
// @Tags 反馈
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.FeedbackRequest true "反馈内容"
// @Success 201 {object} util.Response{data=model.Feedback}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/feedback [post]
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	feedback, err := c.FeedbackService.Submit(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, feedback)
}

// ListMyFeedback godoc
// @Summary 我的反馈
// @Tags 反馈
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Feedback}
// @Router /api/my/feedback [get]
func (c *FeedbackController) ListMyFeedback(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	feedbacks, err := c.FeedbackService.ListMine(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, feedbacks)
}

// ListAllFeedback godoc
// @Summary 反馈列表（管理端）
// @Tags 反馈管理
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "页码"
// @Param   limit query int false "每页数量"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/feedback [get]
func (c *FeedbackController) ListAllFeedback(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))

	feedbacks, total, err := c.FeedbackService.ListAll(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  feedbacks,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// MarkFeedbackHandled godoc
// @Summary 标记反馈已处理
// @Tags 反馈管理
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "反馈 ID"
// @Success 200 {object} util.Response{data=model.Feedback}
// @Failure 404 {object} util.Response "反馈不存在"
// @Router /api/admin/feedback/{id}/handle [post]
func (c *FeedbackController) MarkFeedbackHandled(ctx *gin.Context) {
	feedback, err := c.FeedbackService.MarkHandled(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, feedback)
}
