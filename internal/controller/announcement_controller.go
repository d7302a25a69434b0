package controller

import (
	"errors"

	"course_hub_backend/internal/service"
	"course_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnnouncementController struct {
	AnnouncementService *service.AnnouncementService
}

func NewAnnouncementController(announcementService *service.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{AnnouncementService: announcementService}
}

// ListAnnouncements godoc
// @Summary 公告列表
// @Tags 公告
// @Produce  json
// @Param   page query int false "页码"
// @Param   limit query int false "每页数量"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/announcements [get]
func (c *AnnouncementController) ListAnnouncements(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))

	announcements, total, err := c.AnnouncementService.ListPublished(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  announcements,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// ListAllAnnouncements godoc
// @Summary 公告列表（管理端，含未发布）
// @Tags 公告管理
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Announcement}
// @Router /api/admin/announcements [get]
func (c *AnnouncementController) ListAllAnnouncements(ctx *gin.Context) {
	announcements, err := c.AnnouncementService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, announcements)
}

// CreateAnnouncement godoc
// @Summary 发布公告
// @Tags 公告管理
// @Security BearerAuth
// @Param   body body service.AnnouncementRequest true "公告内容"
// @Success 201 {object} util.Response{data=model.Announcement}
// @Router /api/admin/announcements [post]
func (c *AnnouncementController) CreateAnnouncement(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.AnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	announcement, err := c.AnnouncementService.Create(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, announcement)
}

// UpdateAnnouncement godoc
// @Summary 更新公告
// @Tags 公告管理
// @Security BearerAuth
// @Param   id path int true "公告 ID"
// @Param   body body service.AnnouncementRequest true "公告内容"
// @Success 200 {object} util.Response{data=model.Announcement}
// @Router /api/admin/announcements/{id} [put]
func (c *AnnouncementController) UpdateAnnouncement(ctx *gin.Context) {
	var req service.AnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	announcement, err := c.AnnouncementService.Update(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, announcement)
}

// DeleteAnnouncement godoc
// @Summary 删除公告
// @Tags 公告管理
// @Security BearerAuth
// @Param   id path int true "公告 ID"
// @Success 200 {object} util.Response
// @Router /api/admin/announcements/{id} [delete]
func (c *AnnouncementController) DeleteAnnouncement(ctx *gin.Context) {
	if err := c.AnnouncementService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
