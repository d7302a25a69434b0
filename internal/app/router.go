package app

import (
	"course_hub_backend/docs"
	"course_hub_backend/internal/config"
	"course_hub_backend/internal/middleware"
	"course_hub_backend/internal/model"
	"course_hub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		public.GET("/categories", c.taxonomy.ListCategories)
		public.GET("/levels", c.taxonomy.ListLevels)
		public.GET("/announcements", c.announcement.ListAnnouncements)
		public.GET("/badges", c.badge.ListBadges)

		// 列表类：可选认证，管理员能看到未发布/未过审内容
		public.GET("/courses", middleware.TryAuthMiddleware(a.Config), c.course.ListCourses)
		public.GET("/courses/:id", middleware.TryAuthMiddleware(a.Config), c.course.GetCourse)
		public.GET("/courses/:id/steps", c.course.ListSteps)
		public.GET("/courses/:id/tips", c.course.ListTips)
		public.GET("/posts", middleware.TryAuthMiddleware(a.Config), c.community.ListPosts)
		public.GET("/posts/:id", middleware.TryAuthMiddleware(a.Config), c.community.GetPost)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/me", c.auth.Me)
	rg.GET("/profile", c.user.GetProfile)
	rg.PUT("/profile", c.user.UpdateProfile)
	rg.POST("/profile/avatar", c.user.UploadAvatar)

	// 学习活动
	rg.POST("/courses/:id/register", c.activity.RegisterCourse)
	rg.POST("/courses/:id/bookmark", c.activity.ToggleBookmark)
	rg.GET("/courses/:id/activity", c.activity.GetActivity)
	rg.GET("/my/courses", c.activity.ListMyCourses)
	rg.GET("/my/bookmarks", c.activity.ListMyBookmarks)
	rg.GET("/my/badges", c.badge.ListMyBadges)

	// 测验
	quiz := rg.Group("/quiz/:courseId")
	{
		quiz.POST("/start", c.quiz.StartQuiz)
		quiz.POST("/answer", c.quiz.AnswerQuestion)
		quiz.POST("/finish", c.quiz.FinishQuiz)
	}

	// 社区
	rg.POST("/posts", c.community.CreatePost)
	rg.DELETE("/posts/:id", c.community.DeletePost)

	// 反馈
	rg.POST("/feedback", c.feedback.SubmitFeedback)
	rg.GET("/my/feedback", c.feedback.ListMyFeedback)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin), middleware.ActivityMiddleware(repos.user))
	{
		// 课程管理
		admin.POST("/courses", c.course.CreateCourse)
		admin.PUT("/courses/:id", c.course.UpdateCourse)
		admin.DELETE("/courses/:id", c.course.DeleteCourse)
		admin.POST("/courses/:id/video", c.course.UploadVideo)

		admin.POST("/courses/:id/steps", c.course.CreateStep)
		admin.PUT("/steps/:stepId", c.course.UpdateStep)
		admin.DELETE("/steps/:stepId", c.course.DeleteStep)

		admin.POST("/courses/:id/tips", c.course.CreateTip)
		admin.PUT("/tips/:tipId", c.course.UpdateTip)
		admin.DELETE("/tips/:tipId", c.course.DeleteTip)

		admin.GET("/courses/:id/questions", c.course.ListQuestions)
		admin.POST("/courses/:id/questions", c.course.CreateQuestion)
		admin.PUT("/questions/:questionId", c.course.UpdateQuestion)
		admin.DELETE("/questions/:questionId", c.course.DeleteQuestion)

		// 分类与难度
		admin.POST("/categories", c.taxonomy.CreateCategory)
		admin.PUT("/categories/:id", c.taxonomy.UpdateCategory)
		admin.DELETE("/categories/:id", c.taxonomy.DeleteCategory)
		admin.POST("/levels", c.taxonomy.CreateLevel)
		admin.PUT("/levels/:id", c.taxonomy.UpdateLevel)
		admin.DELETE("/levels/:id", c.taxonomy.DeleteLevel)

		// 帖子审核
		admin.POST("/posts/:id/review", c.community.ReviewPost)

		// 公告
		admin.GET("/announcements", c.announcement.ListAllAnnouncements)
		admin.POST("/announcements", c.announcement.CreateAnnouncement)
		admin.PUT("/announcements/:id", c.announcement.UpdateAnnouncement)
		admin.DELETE("/announcements/:id", c.announcement.DeleteAnnouncement)

		// 徽章
		admin.POST("/badges", c.badge.CreateBadge)
		admin.PUT("/badges/:id", c.badge.UpdateBadge)
		admin.DELETE("/badges/:id", c.badge.DeleteBadge)

		// 反馈
		admin.GET("/feedback", c.feedback.ListAllFeedback)
		admin.POST("/feedback/:id/handle", c.feedback.MarkFeedbackHandled)
	}
}
