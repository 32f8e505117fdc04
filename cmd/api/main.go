package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/codequiz-api/internal/config"
	"github.com/yourusername/codequiz-api/internal/handler"
	"github.com/yourusername/codequiz-api/internal/middleware"
	"github.com/yourusername/codequiz-api/internal/repository/postgres"
	redisrepo "github.com/yourusername/codequiz-api/internal/repository/redis"
	"github.com/yourusername/codequiz-api/internal/service"
	"github.com/yourusername/codequiz-api/internal/service/srs"
	"github.com/yourusername/codequiz-api/internal/websocket"
	"github.com/yourusername/codequiz-api/pkg/auth"
	"github.com/yourusername/codequiz-api/pkg/database"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "путь к файлу конфигурации")
	migrationsPath := flag.String("migrations", "migrations", "путь к каталогу миграций")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Main] Ошибка загрузки конфигурации: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.PostgresURL(), *migrationsPath); err != nil {
		log.Fatalf("[Main] Ошибка миграций: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatalf("[Main] Ошибка подключения к PostgreSQL: %v", err)
	}

	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Fatalf("[Main] Ошибка подключения к Redis: %v", err)
	}
	defer redisClient.Close()

	// Репозитории
	userRepo := postgres.NewUserRepo(db)
	catalogRepo := postgres.NewCatalogRepo(db)
	questionRepo := postgres.NewQuestionRepo(db)
	scheduleRepo := postgres.NewScheduleRepo(db)
	settingsRepo := postgres.NewSettingsRepo(db)
	cacheRepo := redisrepo.NewCacheRepo(redisClient)

	// WebSocket
	hub := websocket.NewHub()
	hubCtx, hubCancel := context.WithCancel(context.Background())
	defer hubCancel()
	go hub.Run(hubCtx)
	wsManager := websocket.NewManager(hub)

	// Ядро SRS
	srsConfig := srs.DefaultConfig()
	srsConfig.QuestionSeconds = cfg.Session.QuestionSeconds
	srsConfig.FeedbackDelay = time.Duration(cfg.Session.FeedbackDelayMs) * time.Millisecond
	srsConfig.LockTTL = time.Duration(cfg.Session.LockTTLMinutes) * time.Minute

	sessionManager := srs.NewManager(srsConfig, &srs.Dependencies{
		QuestionRepo: questionRepo,
		ScheduleRepo: scheduleRepo,
		SettingsRepo: settingsRepo,
		CatalogRepo:  catalogRepo,
		CacheRepo:    cacheRepo,
		EventSender:  wsManager,
	})

	// Сервисы
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	authService := service.NewAuthService(userRepo, catalogRepo, jwtService)
	catalogService := service.NewCatalogService(catalogRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	statsService := service.NewStatsService(questionRepo, scheduleRepo, catalogRepo, srsConfig.LearnedIntervalDays)

	// Обработчики
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	sessionHandler := handler.NewSessionHandler(sessionManager)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	statsHandler := handler.NewStatsHandler(statsService)
	wsHandler := handler.NewWSHandler(hub)

	router := setupRouter(cfg, jwtService, authHandler, catalogHandler, sessionHandler, settingsHandler, statsHandler, wsHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("[Main] Сервер запущен на порту %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Main] Ошибка сервера: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[Main] Останавливаем сервер...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Main] Ошибка остановки сервера: %v", err)
	}
	log.Println("[Main] Сервер остановлен")
}

func setupRouter(
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	sessionHandler *handler.SessionHandler,
	settingsHandler *handler.SettingsHandler,
	statsHandler *handler.StatsHandler,
	wsHandler *handler.WSHandler,
) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService))
		{
			protected.GET("/users/me", authHandler.Profile)

			protected.GET("/languages", catalogHandler.Languages)
			protected.GET("/languages/:language_id/categories", catalogHandler.Categories)
			protected.GET("/catalog/search", catalogHandler.Search)

			protected.POST("/sessions", sessionHandler.Start)
			protected.GET("/sessions/current", sessionHandler.State)
			protected.POST("/sessions/current/answer", sessionHandler.Answer)
			protected.DELETE("/sessions/current", sessionHandler.Cancel)

			protected.GET("/settings", settingsHandler.List)
			protected.GET("/settings/:language_id", settingsHandler.Get)
			protected.PUT("/settings/:language_id", settingsHandler.Update)

			protected.GET("/stats/categories/:category_id", statsHandler.Category)
			protected.GET("/stats/languages/:language_id", statsHandler.Language)
		}
	}

	ws := router.Group("/ws")
	ws.Use(middleware.AuthMiddleware(jwtService))
	ws.GET("", wsHandler.Connect)

	return router
}
