package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"course_hub_backend/internal/config"
	"course_hub_backend/internal/controller"
	"course_hub_backend/internal/repository"
	"course_hub_backend/internal/service"
	"course_hub_backend/pkg/configwatcher"
	"course_hub_backend/pkg/database"
	"course_hub_backend/pkg/logger"
	"course_hub_backend/pkg/monitoring"
	"course_hub_backend/pkg/security"
	"course_hub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	category     *repository.CategoryRepository
	level        *repository.LevelRepository
	course       *repository.CourseRepository
	step         *repository.StepRepository
	tip          *repository.TipRepository
	question     *repository.QuestionRepository
	activity     *repository.ActivityRepository
	post         *repository.PostRepository
	announcement *repository.AnnouncementRepository
	badge        *repository.BadgeRepository
	feedback     *repository.FeedbackRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	storage      *service.StorageService
	course       *service.CourseService
	taxonomy     *service.TaxonomyService
	activity     *service.ActivityService
	quiz         *service.QuizProgressService
	completion   *service.CompletionService
	community    *service.CommunityService
	announcement *service.AnnouncementService
	badge        *service.BadgeService
	feedback     *service.FeedbackService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	course       *controller.CourseController
	taxonomy     *controller.TaxonomyController
	quiz         *controller.QuizController
	activity     *controller.ActivityController
	community    *controller.CommunityController
	announcement *controller.AnnouncementController
	badge        *controller.BadgeController
	feedback     *controller.FeedbackController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		category:     repository.NewCategoryRepository(db),
		level:        repository.NewLevelRepository(db),
		course:       repository.NewCourseRepository(db),
		step:         repository.NewStepRepository(db),
		tip:          repository.NewTipRepository(db),
		question:     repository.NewQuestionRepository(db, rdb, time.Duration(cfg.Quiz.CatalogCacheMinutes)*time.Minute),
		activity:     repository.NewActivityRepository(db),
		post:         repository.NewPostRepository(db),
		announcement: repository.NewAnnouncementRepository(db),
		badge:        repository.NewBadgeRepository(db),
		feedback:     repository.NewFeedbackRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.course = service.NewCourseService(repos.course, repos.step, repos.tip, repos.question, s.storage)
	s.taxonomy = service.NewTaxonomyService(repos.category, repos.level)
	s.activity = service.NewActivityService(repos.activity, repos.course)

	s.quiz = service.NewQuizProgressService(repos.question, repos.activity, service.NewQuizSessionStore())
	s.completion = service.NewCompletionService(repos.activity, repos.post, repos.badge)

	s.community = service.NewCommunityService(repos.post, s.completion)
	s.announcement = service.NewAnnouncementService(repos.announcement)
	s.badge = service.NewBadgeService(repos.badge)
	s.feedback = service.NewFeedbackService(repos.feedback)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user, s.storage),
		course:       controller.NewCourseController(s.course),
		taxonomy:     controller.NewTaxonomyController(s.taxonomy),
		quiz:         controller.NewQuizController(s.quiz, s.completion),
		activity:     controller.NewActivityController(s.activity),
		community:    controller.NewCommunityController(s.community),
		announcement: controller.NewAnnouncementController(s.announcement),
		badge:        controller.NewBadgeController(s.badge),
		feedback:     controller.NewFeedbackController(s.feedback),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	limiter := security.NewIPRateLimiter(
		cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
	)
	router.Use(limiter.Middleware())

	// 限流参数随配置热加载生效，无需重启
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		limiter.Update(
			newCfg.RateLimit.MaxRequests,
			time.Duration(newCfg.RateLimit.WindowMinutes)*time.Minute,
		)
	})

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb, cfg)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("course-platform", &cfg.Tracing); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	// 配置文件热加载
	go func() {
		err := configwatcher.WatchConfig("configs/config.yaml", func(reloaded *config.Config) {
			logger.Log.Info("Config reloaded")
			for _, callback := range app.configCallbacks {
				callback(reloaded)
			}
		})
		if err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
