package controller

import (
	"errors"

	"course_hub_backend/internal/service"
	"course_hub_backend/internal/util"
	"course_hub_backend/pkg/logger"
	"course_hub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuizController struct {
	QuizService       *service.QuizProgressService
	CompletionService *service.CompletionService
}

func NewQuizController(quizService *service.QuizProgressService, completionService *service.CompletionService) *QuizController {
	return &QuizController{
		QuizService:       quizService,
		CompletionService: completionService,
	}
}

// StartQuiz godoc
// @Summary 开始测验
// @Description 以打乱顺序的题目队列开始一次测验；重复调用会放弃旧会话重新开始
// @Tags 测验
// @Produce  json
// @Security BearerAuth
// @Param   courseId path int true "课程 ID"
// @Success 200 {object} util.Response{data=service.QuizStartResult}
// @Failure 400 {object} util.Response "课程没有题目"
// @Failure 404 {object} util.Response "未注册该课程"
// @Router /api/quiz/{courseId}/start [post]
func (c *QuizController) StartQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	courseID := util.MustParseUint(ctx.Param("courseId"))

	result, err := c.QuizService.StartQuiz(claims.UserID, courseID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmptyCourse):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrActivityNotFound):
			util.Error(ctx, 404, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

type AnswerRequest struct {
	Correct *bool `json:"correct" binding:"required"`
}

// AnswerQuestion godoc
// @Summary 提交作答
// @Description 提交当前队首题目的作答结果；答错的题目会回到队尾
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   courseId path int true "课程 ID"
// @Param   body body AnswerRequest true "作答是否正确"
// @Success 200 {object} util.Response{data=service.QuizAnswerResult}
// @Failure 400 {object} util.Response "没有进行中的测验"
// @Router /api/quiz/{courseId}/answer [post]
func (c *QuizController) AnswerQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	courseID := util.MustParseUint(ctx.Param("courseId"))

	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	isCorrect := *req.Correct

	result, err := c.QuizService.AnswerQuestion(claims.UserID, courseID, isCorrect)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoActiveQuiz), errors.Is(err, util.ErrQueueExhausted):
			util.BadRequest(ctx, util.ErrNoActiveQuiz.Error())
		case errors.Is(err, util.ErrActivityNotFound):
			util.Error(ctx, 404, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	if isCorrect {
		monitoring.QuizSubmissions.WithLabelValues("correct").Inc()
	} else {
		monitoring.QuizSubmissions.WithLabelValues("incorrect").Inc()
	}

	util.Success(ctx, result)
}

// FinishQuiz godoc
// @Summary 结束测验
// @Description 写入结束时间与耗时并标记测验完成，随后评估课程整体完成条件
// @Tags 测验
// @Produce  json
// @Security BearerAuth
// @Param   courseId path int true "课程 ID"
// @Success 200 {object} util.Response{data=service.QuizFinishResult}
// @Failure 404 {object} util.Response "未注册该课程"
// @Router /api/quiz/{courseId}/finish [post]
func (c *QuizController) FinishQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	courseID := util.MustParseUint(ctx.Param("courseId"))

	result, err := c.QuizService.FinishQuiz(claims.UserID, courseID)
	if err != nil {
		if errors.Is(err, util.ErrActivityNotFound) {
			util.Error(ctx, 404, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	// 完成条件评估失败不影响本次结束操作，帖子审核通过时还会再触发一次
	if err := c.CompletionService.Evaluate(claims.UserID, courseID); err != nil {
		logger.Log.Warn("course completion evaluation failed",
			zap.Uint("userId", claims.UserID),
			zap.Uint("courseId", courseID),
			zap.Error(err))
	}

	util.Success(ctx, result)
}
