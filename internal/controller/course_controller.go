package controller

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"course_hub_backend/internal/model"
	"course_hub_backend/internal/repository"
	"course_hub_backend/internal/service"
	"course_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// ListCourses godoc
// @Summary 课程列表
// @Description 分页获取课程，支持按分类、难度、关键字过滤；未登录只能看到已发布课程
// @Tags 课程
// @Produce  json
// @Param   page query int false "页码"
// @Param   limit query int false "每页数量"
// @Param   categoryId query int false "分类 ID"
// @Param   levelId query int false "难度 ID"
// @Param   keyword query string false "标题关键字"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))

	filter := repository.CourseFilter{
		CategoryID: util.MustParseUint(ctx.Query("categoryId")),
		LevelID:    util.MustParseUint(ctx.Query("levelId")),
		Keyword:    ctx.Query("keyword"),
	}
	// 游客和学生只能浏览已发布的课程
	claims := util.GetUserFromContext(ctx)
	if claims == nil || claims.Role != model.Admin {
		filter.PublishedOnly = true
	}

	courses, total, err := c.CourseService.ListCourses(filter, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  courses,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetCourse godoc
// @Summary 课程详情
// @Description 返回课程及其步骤、提示（按排序），题目不包含答案
// @Tags 课程
// @Produce  json
// @Param   id path int true "课程 ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.CourseService.GetCourse(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, course)
}

// CreateCourse godoc
// @Summary 创建课程
// @Tags 课程管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.CourseCreateRequest true "课程信息"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/admin/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req service.CourseCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.CreateCourse(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// UpdateCourse godoc
// @Summary 更新课程
// @Tags 课程管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程 ID"
// @Param   body body service.CourseCreateRequest true "课程信息"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/admin/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req service.CourseCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.UpdateCourse(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, course)
}

// DeleteCourse godoc
// @Summary 删除课程
// @Tags 课程管理
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程 ID"
// @Success 200 {object} util.Response
// @Router /api/admin/courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.CourseService.DeleteCourse(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadVideo godoc
// @Summary 上传课程视频
// @Description 接收视频文件，探测时长分辨率并生成缩略图，限制 500MB
// @Tags 课程管理
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程 ID"
// @Param   file formData file true "视频文件"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response "文件类型不支持"
// @Router /api/admin/courses/{id}/video [post]
func (c *CourseController) UploadVideo(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("id"))

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "缺少文件")
		return
	}
	if fileHeader.Size > 500<<20 {
		util.BadRequest(ctx, "文件超过 500MB 限制")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	mimeType, err := util.ValidateMimeType(file, []string{"video/"})
	file.Close()
	if err != nil || !util.IsVideo(mimeType) {
		util.BadRequest(ctx, "仅支持视频文件")
		return
	}

	// ffmpeg 探测需要本地路径，先落到临时目录
	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("upload_%s%s", model.GenerateUUID(), filepath.Ext(fileHeader.Filename)))
	if err := ctx.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer os.Remove(tmpPath)

	course, err := c.CourseService.AttachVideo(ctx.Request.Context(), courseID, tmpPath)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, course)
}

// ListSteps godoc
// @Summary 课程步骤列表
// @Tags 课程
// @Produce  json
// @Param   id path int true "课程 ID"
// @Success 200 {object} util.Response{data=[]model.CourseStep}
// @Router /api/courses/{id}/steps [get]
func (c *CourseController) ListSteps(ctx *gin.Context) {
	steps, err := c.CourseService.ListSteps(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, steps)
}

// CreateStep godoc
// @Summary 新增课程步骤
// @Tags 课程管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程 ID"
// @Param   body body service.StepRequest true "步骤内容"
// @Success 201 {object} util.Response{data=model.CourseStep}
// @Router /api/admin/courses/{id}/steps [post]
func (c *CourseController) CreateStep(ctx *gin.Context) {
	var req service.StepRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	step, err := c.CourseService.CreateStep(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, step)
}

// UpdateStep godoc
// @Summary 更新课程步骤
// @Tags 课程管理
// @Security BearerAuth
// @Param   stepId path int true "步骤 ID"
// @Param   body body service.StepRequest true "步骤内容"
// @Success 200 {object} util.Response{data=model.CourseStep}
// @Router /api/admin/steps/{stepId} [put]
func (c *CourseController) UpdateStep(ctx *gin.Context) {
	var req service.StepRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	step, err := c.CourseService.UpdateStep(util.MustParseUint(ctx.Param("stepId")), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, step)
}

// DeleteStep godoc
// @Summary 删除课程步骤
// @Tags 课程管理
// @Security BearerAuth
// @Param   stepId path int true "步骤 ID"
// @Success 200 {object} util.Response
// @Router /api/admin/steps/{stepId} [delete]
func (c *CourseController) DeleteStep(ctx *gin.Context) {
	if err := c.CourseService.DeleteStep(util.MustParseUint(ctx.Param("stepId"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListTips godoc
// @Summary 课程提示列表
// @Tags 课程
// @Produce  json
// @Param   id path int true "课程 ID"
// @Success 200 {object} util.Response{data=[]model.CourseTip}
// @Router /api/courses/{id}/tips [get]
func (c *CourseController) ListTips(ctx *gin.Context) {
	tips, err := c.CourseService.ListTips(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tips)
}

// CreateTip godoc
// @Summary 新增课程提示
// @Tags 课程管理
// @Security BearerAuth
// @Param   id path int true "课程 ID"
// @Param   body body service.TipRequest true "提示内容"
// @Success 201 {object} util.Response{data=model.CourseTip}
// @Router /api/admin/courses/{id}/tips [post]
func (c *CourseController) CreateTip(ctx *gin.Context) {
	var req service.TipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tip, err := c.CourseService.CreateTip(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, tip)
}

// UpdateTip godoc
// @Summary 更新课程提示
// @Tags 课程管理
// @Security BearerAuth
// @Param   tipId path int true "提示 ID"
// @Param   body body service.TipRequest true "提示内容"
// @Success 200 {object} util.Response{data=model.CourseTip}
// @Router /api/admin/tips/{tipId} [put]
func (c *CourseController) UpdateTip(ctx *gin.Context) {
	var req service.TipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tip, err := c.CourseService.UpdateTip(util.MustParseUint(ctx.Param("tipId")), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, tip)
}

// DeleteTip godoc
// @Summary 删除课程提示
// @Tags 课程管理
// @Security BearerAuth
// @Param   tipId path int true "提示 ID"
// @Success 200 {object} util.Response
// @Router /api/admin/tips/{tipId} [delete]
func (c *CourseController) DeleteTip(ctx *gin.Context) {
	if err := c.CourseService.DeleteTip(util.MustParseUint(ctx.Param("tipId"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListQuestions godoc
// @Summary 课程题目列表（管理端，含答案）
// @Tags 课程管理
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程 ID"
// @Success 200 {object} util.Response{data=[]model.CourseQuestion}
// @Router /api/admin/courses/{id}/questions [get]
func (c *CourseController) ListQuestions(ctx *gin.Context) {
	questions, err := c.CourseService.ListQuestions(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// CreateQuestion godoc
// @Summary 新增课程题目
// @Tags 课程管理
// @Security BearerAuth
// @Param   id path int true "课程 ID"
// @Param   body body service.QuestionRequest true "题目内容"
// @Success 201 {object} util.Response{data=model.CourseQuestion}
// @Router /api/admin/courses/{id}/questions [post]
func (c *CourseController) CreateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.CourseService.CreateQuestion(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// UpdateQuestion godoc
// @Summary 更新课程题目
// @Tags 课程管理
// @Security BearerAuth
// @Param   questionId path int true "题目 ID"
// @Param   body body service.QuestionRequest true "题目内容"
// @Success 200 {object} util.Response{data=model.CourseQuestion}
// @Router /api/admin/questions/{questionId} [put]
func (c *CourseController) UpdateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.CourseService.UpdateQuestion(util.MustParseUint(ctx.Param("questionId")), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, question)
}

// DeleteQuestion godoc
// @Summary 删除课程题目
// @Tags 课程管理
// @Security BearerAuth
// @Param   questionId path int true "题目 ID"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{questionId} [delete]
func (c *CourseController) DeleteQuestion(ctx *gin.Context) {
	if err := c.CourseService.DeleteQuestion(util.MustParseUint(ctx.Param("questionId"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
