package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/stepperslife/events-service/internal/api/http"
	"github.com/stepperslife/events-service/internal/api/http/handlers"
	"github.com/stepperslife/events-service/internal/auth"
	"github.com/stepperslife/events-service/internal/authz"
	"github.com/stepperslife/events-service/internal/config"
	"github.com/stepperslife/events-service/internal/events"
	"github.com/stepperslife/events-service/internal/observability"
	"github.com/stepperslife/events-service/internal/persistence"
	"github.com/stepperslife/events-service/internal/repository"
	"github.com/stepperslife/events-service/internal/service"
	"github.com/stepperslife/events-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	restaurantRepo := repository.NewRestaurantRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	transferRepo := repository.NewTransferRepository(pool)
	teamRepo := repository.NewTeamRepository(pool)

	checker := authz.NewChecker(repository.NewAuthzStore(eventRepo, staffRepo))
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	authService := service.NewAuthService(*cfg, userRepo)
	eventService := service.NewEventService(eventRepo, ticketRepo, userRepo, checker)
	staffService := service.NewStaffService(eventRepo, staffRepo, checker, dispatcher)
	ticketService := service.NewTicketService(ticketRepo, staffRepo, checker, dispatcher)
	transferService := service.NewTransferService(transferRepo, ticketRepo, checker, dispatcher, logger)
	teamService := service.NewTeamService(teamRepo, userRepo, dispatcher)
	restaurantService := service.NewRestaurantService(restaurantRepo)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	notificationService.RegisterHandlers()

	transferWorker := worker.NewTransferWorker(transferService, redis, logger, cfg.Worker.TransferSweepInterval())
	go transferWorker.Run(ctx)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Metrics:        handlers.NewMetricsHandler(metrics),
		Users:          handlers.NewUsersHandler(authService),
		Events:         handlers.NewEventsHandler(eventService),
		Staff:          handlers.NewStaffHandler(staffService),
		Tickets:        handlers.NewTicketsHandler(ticketService, transferService),
		Teams:          handlers.NewTeamsHandler(teamService),
		Restaurants:    handlers.NewRestaurantsHandler(restaurantService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
