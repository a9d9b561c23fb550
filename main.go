package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"testseries-service/internal/config"
	"testseries-service/internal/db"
	"testseries-service/internal/event"
	"testseries-service/internal/handlers"
	"testseries-service/internal/repository"
	"testseries-service/internal/service"
	"testseries-service/pkg/discovery"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	db.InitMongo(cfg.MongoDB.URI, cfg.MongoDB.PoolSize, cfg.MongoDB.Timeout)
	defer db.Close()
	database := db.Client.Database(cfg.MongoDB.Database)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	// Redis leaderboard cache
	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	} else {
		log.Println("Redis not configured, leaderboard reads go straight to MongoDB")
	}
	leaderboardCache := service.NewLeaderboardCache(redisClient, cfg.Redis.LeaderboardTTL)

	// Repositories
	testRepo := repository.NewTestRepository(database)
	sectionRepo := repository.NewSectionRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	attemptRepo := repository.NewAttemptRepository(database)
	answerRepo := repository.NewAnswerRepository(database)
	resultRepo := repository.NewResultRepository(database)

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	if err := answerRepo.CreateIndexes(indexCtx); err != nil {
		log.Printf("Warning: Failed to create answer indexes: %v", err)
	}
	if err := resultRepo.CreateIndexes(indexCtx); err != nil {
		log.Printf("Warning: Failed to create result indexes: %v", err)
	}
	cancelIndex()

	// Services
	testService := service.NewTestService(testRepo, sectionRepo)
	sectionService := service.NewSectionService(sectionRepo, testRepo)
	questionService := service.NewQuestionService(questionRepo, sectionRepo)
	evaluationService := service.NewEvaluationService(attemptRepo, testRepo, sectionRepo, questionRepo, answerRepo)
	rankingService := service.NewRankingService(resultRepo, leaderboardCache, publisher)
	resultService := service.NewResultService(resultRepo, leaderboardCache)
	attemptService := service.NewAttemptService(
		attemptRepo,
		testRepo,
		sectionRepo,
		questionRepo,
		answerRepo,
		resultRepo,
		evaluationService,
		rankingService,
		publisher,
	)

	// Handlers
	testHandler := handlers.NewTestHandler(testService)
	sectionHandler := handlers.NewSectionHandler(sectionService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	attemptHandler := handlers.NewAttemptHandler(attemptService)
	resultHandler := handlers.NewResultHandler(resultService, rankingService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-Id"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	publicTest := r.Group("/public/testseries/test")
	{
		publicTest.GET("/", testHandler.ListPublished)
		publicTest.GET("/:id", testHandler.GetTest)
		publicTest.GET("/:id/sections", sectionHandler.ListByTest)
		publicTest.GET("/:id/leaderboard", resultHandler.GetLeaderboard)
	}

	publicUser := r.Group("/public/testseries/user")
	{
		publicUser.GET("/:id/results", resultHandler.GetResultsByUser)
	}

	protectedTest := r.Group("/protected/testseries/test")
	{
		protectedTest.GET("/", testHandler.ListAll)
		protectedTest.POST("/", testHandler.CreateTest)
		protectedTest.PUT("/:id", testHandler.UpdateTest)
		protectedTest.DELETE("/:id", testHandler.DeleteTest)
		protectedTest.POST("/:id/rerank", resultHandler.RecomputeRanks)
	}

	protectedSection := r.Group("/protected/testseries/section")
	{
		protectedSection.GET("/:id", sectionHandler.GetSection)
		protectedSection.GET("/:id/questions", questionHandler.ListBySection)
		protectedSection.POST("/", sectionHandler.CreateSection)
		protectedSection.PUT("/:id", sectionHandler.UpdateSection)
		protectedSection.DELETE("/:id", sectionHandler.DeleteSection)
	}

	protectedQuestion := r.Group("/protected/testseries/question")
	{
		protectedQuestion.GET("/:id", questionHandler.GetQuestion)
		protectedQuestion.POST("/", questionHandler.CreateQuestion)
		protectedQuestion.POST("/bulk", questionHandler.BulkCreateQuestions)
		protectedQuestion.PUT("/:id", questionHandler.UpdateQuestion)
		protectedQuestion.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	protectedAttempt := r.Group("/protected/testseries/attempt")
	{
		protectedAttempt.POST("/start", attemptHandler.StartAttempt)
		protectedAttempt.GET("/", attemptHandler.ListMyAttempts)
		protectedAttempt.GET("/:id", attemptHandler.GetAttempt)
		protectedAttempt.POST("/:id/answer", attemptHandler.RecordAnswer)
		protectedAttempt.POST("/:id/submit", attemptHandler.SubmitAttempt)
	}

	protectedResult := r.Group("/protected/testseries/result")
	{
		protectedResult.GET("/:id", resultHandler.GetResult)
		protectedResult.GET("/attempt/:id", resultHandler.GetResultByAttempt)
	}

	// Optional Consul registration
	var registry *discovery.ServiceRegistry
	if cfg.Consul.Address != "" {
		var err error
		registry, err = discovery.NewServiceRegistry(cfg)
		if err != nil {
			log.Fatalf("Service discovery init failed: %v", err)
		}
		if err := registry.Register(); err != nil {
			log.Fatalf("Service discovery registration failed: %v", err)
		}
		defer registry.Deregister()
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Starting server on %s", addr)
		if err := r.Run(addr); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-shutdownChan
	log.Println("Shutting down")
}
