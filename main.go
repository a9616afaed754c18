// File: soulsync/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"soulsync/config"
	"soulsync/cron"
	"soulsync/database"
	memoryRepo "soulsync/database/repository/memory"
	messageRepo "soulsync/database/repository/message"
	moodRepo "soulsync/database/repository/mood"
	taskRepo "soulsync/database/repository/task"
	therapistRepo "soulsync/database/repository/therapist"
	"soulsync/handlers"
	"soulsync/middleware"
	"soulsync/routes"
	"soulsync/services/chat"
	ai "soulsync/services/intelligence"
	"soulsync/services/mood"
	"soulsync/services/tasks"
	"soulsync/services/therapist"
	"soulsync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type repositories struct {
	messages   messageRepo.MessageRepository
	moods      moodRepo.MoodRepository
	tasks      taskRepo.TaskRepository
	therapists therapistRepo.TherapistRepository
}

// openRepositories connects to MongoDB, or keeps everything in process when
// DATABASE_URL uses the memory:// scheme.
func openRepositories(logger *zap.Logger) (repositories, bool) {
	if strings.HasPrefix(config.AppConfig.DatabaseURL, "memory://") {
		logger.Warn("main: using in-memory repositories, data will not survive a restart")
		return repositories{
			messages:   memoryRepo.NewMessageStore(),
			moods:      memoryRepo.NewMoodStore(),
			tasks:      memoryRepo.NewTaskStore(),
			therapists: memoryRepo.NewTherapistStore(),
		}, false
	}

	database.InitDB()
	return repositories{
		messages:   messageRepo.NewMongoMessageRepo(),
		moods:      moodRepo.NewMongoMoodRepo(),
		tasks:      taskRepo.NewMongoTaskRepo(),
		therapists: therapistRepo.NewMongoTherapistRepo(),
	}, true
}

// newRouter builds the gin engine. utils.ErrorHandler is the only panic
// recovery so every 500 carries the JSON error body.
func newRouter(logger *zap.Logger, hb *handlers.HandlerBundle, opts routes.Options) *gin.Engine {
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	routes.RegisterRoutes(router, hb, opts)
	return router
}

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	repos, usingMongo := openRepositories(logger)
	utils.InitRedis()

	// A nil generator keeps every reply on the canned path.
	var gen mood.TextGenerator
	if config.GenerationEnabled() {
		gemini, err := ai.NewGeminiClient(rootCtx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Error("main: text generation disabled", zap.Error(err))
		} else {
			defer gemini.Close()
			gen = gemini
		}
	} else {
		logger.Info("main: GEMINI_API_KEY not set, using canned replies only")
	}

	// services.
	ctxStore := ai.NewRedisContextStore(utils.GetContextCacheClient(), config.AppConfig.SessionContextTTL)
	chatService := chat.NewChatService(
		repos.messages,
		repos.moods,
		ctxStore,
		gen,
		config.AppConfig.GenerationTimeout,
		logger.Named("chat"),
	)
	journal := mood.NewJournal(repos.moods, repos.messages)
	taskService := tasks.NewTaskService(
		repos.tasks,
		repos.moods,
		gen,
		config.AppConfig.GenerationTimeout,
		logger.Named("tasks"),
	)
	directory := therapist.NewDirectoryService(
		repos.therapists,
		utils.GetCacheClient(),
		config.AppConfig.TherapistCacheTTL,
		config.AppConfig.SeedSampleTherapists,
		logger.Named("therapists"),
	)

	chatHandler := handlers.NewChatHandler(chatService)
	moodHandler := handlers.NewMoodHandler(journal)
	taskHandler := handlers.NewTaskHandler(taskService)
	therapistHandler := handlers.NewTherapistHandler(directory)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Chat endpoints.
		CreateChatSession: chatHandler.CreateSession,
		GetChatMessages:   chatHandler.GetMessages,
		SendChatMessage:   chatHandler.SendMessage,
		GetQuickReplies:   chatHandler.QuickReplies,
		GetSuggestions:    chatHandler.Suggestions,

		// Mood endpoints.
		LogMood:           moodHandler.LogMood,
		ListMoods:         moodHandler.ListMoods,
		GetDashboard:      moodHandler.Dashboard,
		GetRecommendation: moodHandler.Recommendation,
		ClassifyMood:      moodHandler.Classify,

		// Task endpoints.
		ListTasks:     taskHandler.List,
		CreateTask:    taskHandler.Create,
		CompleteTask:  taskHandler.Complete,
		DeleteTask:    taskHandler.Delete,
		GenerateTasks: taskHandler.Generate,

		// Therapist endpoints.
		SearchTherapists: therapistHandler.Search,
		ListSpecialties:  therapistHandler.Specialties,
		GetTherapist:     therapistHandler.Get,
		CreateTherapist:  therapistHandler.Create,

		Health: handlers.HealthHandler,
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	opts := routes.Options{RequestsPerMin: config.AppConfig.MaxRequestsPerMin}
	if config.AppConfig.GeoIPFallback {
		opts.Locate = middleware.NewIPAPILocator(utils.GetCacheClient(), config.AppConfig.GeoIPCacheTTL).Locate
	}
	router := newRouter(logger, handlerBundle, opts)

	// Background jobs.
	checks := []utils.HealthCheck{
		utils.RedisCheck("redis_cache", utils.GetCacheClient()),
		utils.RedisCheck("redis_context", utils.GetContextCacheClient()),
	}
	if usingMongo {
		checks = append(checks, utils.MongoCheck(database.MongoClient))
	}
	utils.StartHealthMonitor(rootCtx, 30*time.Second, checks)
	go cron.StartTherapistRefresher(rootCtx, config.AppConfig.TherapistRefreshInterval, directory, logger.Named("cron"))

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("main: mongo disconnect failed: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
