package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hrsuite/internal/app"
	"hrsuite/internal/config"
	apphttp "hrsuite/internal/http"
	"hrsuite/internal/http/handlers"
	"hrsuite/internal/http/middleware"
	"hrsuite/internal/observability"
	"hrsuite/internal/repository/jsonfile"
	"hrsuite/internal/security"
	"hrsuite/internal/store"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()

	st := store.Open(cfg.DataFile, logger)
	if err := st.Load(); err != nil {
		log.Fatal(err)
	}

	userRepo := jsonfile.NewUserRepository(st)
	candidateRepo := jsonfile.NewCandidateRepository(st)
	vacancyRepo := jsonfile.NewVacancyRepository(st)
	applicationRepo := jsonfile.NewApplicationRepository(st)
	interviewRepo := jsonfile.NewInterviewRepository(st)
	hiringRepo := jsonfile.NewHiringRepository(st)

	hasher := security.NewPasswordHasher(cfg.BcryptCost)
	jwtProvider := security.NewJWTProvider(cfg.JWTSecret)

	authService := app.NewAuthService(userRepo, hasher, jwtProvider, logger, cfg.TokenTTL)
	userService := app.NewUserService(userRepo, hasher)
	candidateService := app.NewCandidateService(candidateRepo)
	vacancyService := app.NewVacancyService(vacancyRepo, userRepo)
	applicationService := app.NewApplicationService(applicationRepo, candidateRepo, vacancyRepo)
	interviewService := app.NewInterviewService(interviewRepo, applicationRepo, userRepo)
	hiringService := app.NewHiringService(hiringRepo, applicationRepo, vacancyRepo, userRepo, logger)

	var limiter middleware.Limiter = middleware.NewMemoryLimiter()
	if redisLimiter := middleware.NewRedisLimiter(cfg.RedisAddr); redisLimiter != nil {
		limiter = redisLimiter
		logger.Info("rate limiting backed by redis")
	}

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:        handlers.NewAuthHandler(authService),
		UserHandler:        handlers.NewUserHandler(userService),
		CandidateHandler:   handlers.NewCandidateHandler(candidateService),
		VacancyHandler:     handlers.NewVacancyHandler(vacancyService),
		ApplicationHandler: handlers.NewApplicationHandler(applicationService),
		InterviewHandler:   handlers.NewInterviewHandler(interviewService),
		HiringHandler:      handlers.NewHiringHandler(hiringService),
		AuthMiddleware:     middleware.NewAuthMiddleware(jwtProvider),
		Limiter:            limiter,
		LoginRateLimit:     cfg.LoginRateLimit,
		LoginRateWindow:    cfg.LoginRateWindow,
		RequestTimeout:     cfg.RequestTimeout,
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info(fmt.Sprintf("API started on :%s", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error(fmt.Sprintf("shutdown: %v", err))
	}
	if err := st.Save(); err != nil {
		logger.Error(fmt.Sprintf("final save: %v", err))
	}
}
