package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"scent-match/internal/catalog"
	"scent-match/internal/config"
	"scent-match/internal/db"
	"scent-match/internal/email"
	apihttp "scent-match/internal/http"
	"scent-match/internal/llm"
	"scent-match/internal/matching"
	"scent-match/internal/repository"
	"scent-match/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cat, err := catalog.New()
	if err != nil {
		logger.Fatal("catalog load", zap.Error(err))
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	analysisRepo := repository.NewPgAnalysisRepository(pool)
	sessionRepo := repository.NewPgRecipeSessionRepository(pool)

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMVisionModel, logger)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var (
		tokenStore  service.RefreshTokenStore
		matchCache  service.Cache
		redisClient *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
			matchCache = service.NewRedisCache(redisClient, "match:")
		}
		cancel()
	}
	if matchCache == nil {
		matchCache = service.NewMemoryCache()
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)

	userSvc := service.NewUserService(logger, userRepo)
	visionSvc := service.NewVisionService(logger, llmClient, analysisRepo)
	engine := matching.NewEngine(logger)
	matcher := matching.NewMatcher(engine, cat, logger)
	adjuster := service.NewAdjustmentEngine(logger)
	recipeSvc := service.NewRecipeService(logger, llmClient, cat, adjuster, sessionRepo)

	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc)
	matchHandler := apihttp.NewMatchHandler(logger, cat, visionSvc, matcher, matchCache)
	recipeHandler := apihttp.NewRecipeHandler(logger, recipeSvc, sessionRepo, cat, emailSender)
	router := apihttp.NewRouter(logger, jwtSvc, userHandler, matchHandler, recipeHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
