package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/question-service/internal/config"
	"github.com/yourusername/question-service/internal/handler"
	"github.com/yourusername/question-service/internal/middleware"
	pgRepo "github.com/yourusername/question-service/internal/repository/postgres"
	"github.com/yourusername/question-service/internal/service"
	"github.com/yourusername/question-service/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции (схема и начальный набор категорий/вопросов)
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории.
	// Хранилища конструируются здесь и передаются явно: никакого
	// глобального подключения на уровне пакетов.
	categoryRepo := pgRepo.NewCategoryRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)

	// Инициализируем сервисы
	categoryService := service.NewCategoryService(categoryRepo)
	questionService := service.NewQuestionService(questionRepo, categoryService)
	quizService := service.NewQuizService(questionRepo)

	// Инициализируем обработчики
	categoryHandler := handler.NewCategoryHandler(categoryService)
	questionHandler := handler.NewQuestionHandler(questionService)
	quizHandler := handler.NewQuizHandler(quizService)

	// Rate limiter поверх Redis — только если включен в конфигурации.
	// По умолчанию write-эндпоинты не ограничиваются и Redis не требуется.
	var writeLimit gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if cfg.RateLimit.Enabled {
		redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		log.Println("Successfully connected to Redis")

		limiterCfg := middleware.DefaultWriteRateLimitConfig()
		if cfg.RateLimit.MaxRequests > 0 {
			limiterCfg.MaxRequests = cfg.RateLimit.MaxRequests
		}
		if cfg.RateLimit.WindowSec > 0 {
			limiterCfg.Window = time.Duration(cfg.RateLimit.WindowSec) * time.Second
		}
		writeLimit = middleware.NewRateLimiter(redisClient).Limit(limiterCfg)
	}

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	if isProduction {
		// Production: не доверять прокси-заголовкам
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS: сервис публичный, разрешаем все источники
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "PATCH", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	// Идентификатор запроса для корреляции логов
	router.Use(middleware.RequestID())

	// Ошибки маршрутизации тоже отвечают стандартным конвертом
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		handler.ErrorResponse(c, http.StatusMethodNotAllowed)
	})
	router.NoRoute(func(c *gin.Context) {
		handler.ErrorResponse(c, http.StatusNotFound)
	})

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Категории
		api.GET("/categories", categoryHandler.GetCategories)

		categoryWithID := api.Group("/categories/:id")
		categoryWithID.Use(middleware.ExtractUintParam("id", "categoryID"))
		{
			categoryWithID.GET("/questions", questionHandler.GetQuestionsByCategory)
		}

		// Вопросы
		questions := api.Group("/questions")
		{
			questions.GET("", questionHandler.ListQuestions)
			questions.GET("/export", questionHandler.ExportQuestions)
			questions.POST("/search", questionHandler.SearchQuestions)
			questions.POST("", writeLimit, questionHandler.CreateQuestion)

			questionWithID := questions.Group("/:id")
			questionWithID.Use(middleware.ExtractUintParam("id", "questionID"))
			{
				questionWithID.DELETE("", writeLimit, questionHandler.DeleteQuestion)
			}
		}

		// Розыгрыш
		api.POST("/quizzes", writeLimit, quizHandler.PlayQuiz)
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown с таймаутом
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
