package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lingua_tutor_backend/internal/config"
	"lingua_tutor_backend/internal/controller"
	"lingua_tutor_backend/internal/repository"
	"lingua_tutor_backend/internal/service"
	"lingua_tutor_backend/pkg/configwatcher"
	"lingua_tutor_backend/pkg/database"
	"lingua_tutor_backend/pkg/logger"
	"lingua_tutor_backend/pkg/monitoring"
	"lingua_tutor_backend/pkg/security"
	"lingua_tutor_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	services *services
}

type repositories struct {
	skillRecord *repository.SkillRecordRepository
	activity    *repository.ActivityRepository
	profile     *repository.ProfileRepository
	chat        *repository.ChatRepository
}

type services struct {
	mastery  *service.MasteryService
	practice *service.PracticeService
	progress *service.ProgressService
	profile  *service.ProfileService
	tutor    *service.TutorService
	chat     *service.ChatService
}

type controllers struct {
	chat     *controller.ChatController
	practice *controller.PracticeController
	progress *controller.ProgressController
	skill    *controller.SkillController
	profile  *controller.ProfileController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		skillRecord: repository.NewSkillRecordRepository(db),
		activity:    repository.NewActivityRepository(db),
		profile:     repository.NewProfileRepository(db),
		chat:        repository.NewChatRepository(db, rdb),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB) *services {
	s := &services{}

	s.mastery = service.NewMasteryService(repos.skillRecord, repos.activity, db, cfg.Adaptive)
	s.practice = service.NewPracticeService(repos.skillRecord, cfg.Adaptive)
	s.progress = service.NewProgressService(repos.activity, repos.profile, cfg.Adaptive)
	s.profile = service.NewProfileService(repos.profile)
	s.tutor = service.NewTutorService(cfg.Tutor)
	s.chat = service.NewChatService(repos.chat, s.tutor, s.mastery)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		chat:     controller.NewChatController(s.chat),
		practice: controller.NewPracticeController(s.practice),
		progress: controller.NewProgressController(s.progress),
		skill:    controller.NewSkillController(s.mastery),
		profile:  controller.NewProfileController(s.profile),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// watchAdaptiveConfig 热加载调度参数：改配置文件即可调优，无需重启
func (a *App) watchAdaptiveConfig(configFile string, s *services) {
	go configwatcher.WatchConfig(configFile, func(cfg *config.Config) {
		s.mastery.UpdateTuning(cfg.Adaptive)
		s.practice.UpdateTuning(cfg.Adaptive)
		s.progress.UpdateTuning(cfg.Adaptive)
		logger.Log.Info("adaptive tuning reloaded",
			zap.Float64("baseGain", cfg.Adaptive.BaseGain),
			zap.Float64("weaknessThreshold", cfg.Adaptive.WeaknessThreshold),
			zap.Int("maxIntervalDays", cfg.Adaptive.MaxIntervalDays),
		)
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// 没有 Redis 只是少了近期历史缓存，可以降级运行
		logger.Log.Warn("Failed to initialize redis, recent-history cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg, db)
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("lingua-tutor", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	app.watchAdaptiveConfig("configs/config.yaml", services)

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
