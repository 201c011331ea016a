package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yelizavetafitil/BookingBack/internal/config"
	"github.com/yelizavetafitil/BookingBack/internal/handler"
	authHandler "github.com/yelizavetafitil/BookingBack/internal/handler/auth"
	catalogHandler "github.com/yelizavetafitil/BookingBack/internal/handler/catalog"
	employeeHandler "github.com/yelizavetafitil/BookingBack/internal/handler/employee"
	enterpriseHandler "github.com/yelizavetafitil/BookingBack/internal/handler/enterprise"
	scheduleHandler "github.com/yelizavetafitil/BookingBack/internal/handler/schedule"
	userHandler "github.com/yelizavetafitil/BookingBack/internal/handler/user"
	"github.com/yelizavetafitil/BookingBack/internal/middleware"
	"github.com/yelizavetafitil/BookingBack/internal/repository/postgres"
	"github.com/yelizavetafitil/BookingBack/internal/router"
	authService "github.com/yelizavetafitil/BookingBack/internal/service/auth"
	catalogService "github.com/yelizavetafitil/BookingBack/internal/service/catalog"
	employeeService "github.com/yelizavetafitil/BookingBack/internal/service/employee"
	enterpriseService "github.com/yelizavetafitil/BookingBack/internal/service/enterprise"
	scheduleService "github.com/yelizavetafitil/BookingBack/internal/service/schedule"
	userService "github.com/yelizavetafitil/BookingBack/internal/service/user"
	"github.com/yelizavetafitil/BookingBack/pkg/logger"
	"github.com/yelizavetafitil/BookingBack/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Pretty,
	})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	employeeRepo := postgres.NewEmployeeRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)

	// Services
	hasher := security.NewBcryptHasher(cfg.Security.BcryptCost)
	authSvc := authService.NewService(userRepo, hasher)
	userSvc := userService.NewService(userRepo)
	enterpriseSvc := enterpriseService.NewService(companyRepo)
	catalogSvc := catalogService.NewService(serviceRepo)
	employeeSvc := employeeService.NewService(employeeRepo)
	scheduleSvc := scheduleService.NewService(scheduleRepo, employeeRepo)

	// HTTP layer
	h := handler.NewHandler()
	r := router.NewRouter(h, []router.Handler{
		authHandler.NewHandler(authSvc),
		userHandler.NewHandler(userSvc),
		enterpriseHandler.NewHandler(enterpriseSvc),
		catalogHandler.NewHandler(catalogSvc),
		employeeHandler.NewHandler(employeeSvc),
		scheduleHandler.NewHandler(scheduleSvc),
	}, router.Config{
		CORSConfig: middleware.DefaultCORSConfig(),
	})

	timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
