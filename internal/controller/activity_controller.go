package controller

import (
	"errors"

	"course_hub_backend/internal/service"
	"course_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

// RegisterCourse godoc
// @Summary 注册课程
// @Description 为当前用户创建该课程的活动记录，每个 (用户, 课程) 只允许一条
// @Tags 学习活动
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程 ID"
// @Success 201 {object} util.Response{data=model.UserCourseActivity}
// @Failure 404 {object} util.Response "课程不存在"
// @Failure 409 {object} util.Response "已注册过该课程"
// @Router /api/courses/{id}/register [post]
func (c *ActivityController) RegisterCourse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	activity, err := c.ActivityService.RegisterCourse(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrActivityConflict):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, activity)
}

// ToggleBookmark godoc
// @Summary 收藏/取消收藏课程
// @Tags 学习活动
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程 ID"
// @Success 200 {object} util.Response{data=model.UserCourseActivity}
// @Failure 404 {object} util.Response "未注册该课程"
// @Router /api/courses/{id}/bookmark [post]
func (c *ActivityController) ToggleBookmark(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	activity, err := c.ActivityService.ToggleBookmark(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrActivityNotFound) {
			util.Error(ctx, 404, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, activity)
}

// GetActivity godoc
// @Summary 获取单课程学习活动
// @Description 返回当前用户在该课程上的注册、收藏、测验进度与完成状态
// @Tags 学习活动
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程 ID"
// @Success 200 {object} util.Response{data=model.UserCourseActivity}
// @Failure 404 {object} util.Response "未注册该课程"
// @Router /api/courses/{id}/activity [get]
func (c *ActivityController) GetActivity(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	activity, err := c.ActivityService.GetActivity(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrActivityNotFound) {
			util.Error(ctx, 404, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, activity)
}

// ListMyCourses godoc
// @Summary 我的课程
// @Tags 学习活动
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.UserCourseActivity}
// @Router /api/my/courses [get]
func (c *ActivityController) ListMyCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	activities, err := c.ActivityService.ListMyActivities(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, activities)
}

// ListMyBookmarks godoc
// @Summary 我的收藏
// @Tags 学习活动
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.UserCourseActivity}
// @Router /api/my/bookmarks [get]
func (c *ActivityController) ListMyBookmarks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	activities, err := c.ActivityService.ListMyBookmarks(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, activities)
}
