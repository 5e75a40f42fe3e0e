package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"escape_room_backend/internal/config"
	"escape_room_backend/internal/controller"
	"escape_room_backend/internal/repository"
	"escape_room_backend/internal/service"
	"escape_room_backend/pkg/database"
	"escape_room_backend/pkg/logger"
	"escape_room_backend/pkg/monitoring"
	"escape_room_backend/pkg/security"
	"escape_room_backend/pkg/tracing"

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
	student     *repository.StudentRepository
	task        *repository.TaskRepository
	question    *repository.QuestionRepository
	result      *repository.ResultRepository
	achievement *repository.AchievementRepository
	progress    *repository.ProgressRepository
}

type services struct {
	achievement *service.AchievementService
	submission  *service.SubmissionService
	student     *service.StudentService
	task        *service.TaskService
}

type controllers struct {
	submission  *controller.SubmissionController
	task        *controller.TaskController
	question    *controller.QuestionController
	student     *controller.StudentController
	achievement *controller.AchievementController
	dashboard   *controller.DashboardController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 热更新回调分发，configwatcher 重新加载后调用
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		student:     repository.NewStudentRepository(db),
		task:        repository.NewTaskRepository(db),
		question:    repository.NewQuestionRepository(db),
		result:      repository.NewResultRepository(db),
		achievement: repository.NewAchievementRepository(db),
		progress:    repository.NewProgressRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.achievement = service.NewAchievementService(
		repos.achievement,
		repos.result,
		repos.question,
		repos.task,
		rdb,
		cfg.Achievements,
	)
	s.submission = service.NewSubmissionService(
		repos.student,
		repos.task,
		repos.question,
		repos.progress,
		s.achievement,
		db,
	)
	s.student = service.NewStudentService(
		repos.student,
		repos.task,
		repos.question,
		repos.result,
		repos.progress,
		rdb,
	)
	s.task = service.NewTaskService(
		repos.task,
		repos.question,
		repos.student,
		repos.progress,
	)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		submission:  controller.NewSubmissionController(s.submission),
		task:        controller.NewTaskController(s.task),
		question:    controller.NewQuestionController(s.task),
		student:     controller.NewStudentController(s.student, s.achievement),
		achievement: controller.NewAchievementController(s.achievement),
		dashboard:   controller.NewDashboardController(s.student),
		health:      controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis 只用于缓存，连不上时降级为直连数据库
		logger.Log.Warn("Redis unavailable, caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("escape-room-platform", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers)

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
