package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/cache"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/config"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/events"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/handler"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/middleware"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/notification"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/repository"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/router"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/scheduler"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/service"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/service/ports"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	publisher  *events.Publisher
	redisCache *cache.Redis
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"BookingTMS",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	venueRepo := repository.NewVenueRepo(a.db)
	activityRepo := repository.NewActivityRepo(a.db)
	sessionRepo := repository.NewSessionRepo(a.db)
	customerRepo := repository.NewCustomerRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)

	publisher, err := events.NewPublisher(a.cfg.Rabbit.URL, a.cfg.Rabbit.Exchange, a.log)
	if err != nil {
		return fmt.Errorf("init publisher: %w", err)
	}
	a.publisher = publisher

	notifier, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	var availabilityCache ports.AvailabilityCache
	if a.cfg.Redis.Enabled {
		rc, err := cache.NewRedis(a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("init redis: %w", err)
		}
		a.redisCache = rc
		availabilityCache = rc
	}

	resolver := service.NewCustomerService(customerRepo)
	generatorService := service.NewGeneratorService(
		activityRepo,
		venueRepo,
		sessionRepo,
		a.publisher,
		a.log,
		a.cfg.Generator.HorizonDays,
		a.cfg.Generator.ChunkSize,
	)
	activityService := service.NewActivityService(venueRepo, activityRepo, sessionRepo, generatorService, a.log)
	availabilityService := service.NewAvailabilityService(
		activityRepo,
		sessionRepo,
		availabilityCache,
		a.cfg.Redis.CacheTTL,
		a.log,
	)
	bookingService := service.NewBookingService(
		bookingRepo,
		sessionRepo,
		activityRepo,
		resolver,
		notifier,
		a.publisher,
		a.log,
	)

	a.scheduler = scheduler.New(
		generatorService,
		bookingService,
		a.cfg.Scheduler.RefreshInterval,
		a.cfg.Scheduler.ExpireInterval,
		a.cfg.Scheduler.PendingTTL,
		a.log,
	)

	h := handler.NewHandler(activityService, availabilityService, bookingService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.publisher.Close(); err != nil {
		a.log.Error("close publisher", logger.String("error", err.Error()))
	}

	if a.redisCache != nil {
		if err := a.redisCache.Close(); err != nil {
			a.log.Error("close redis", logger.String("error", err.Error()))
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
