package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/iliyamo/clinic-space-site/internal/config"
	"github.com/iliyamo/clinic-space-site/internal/database"
	"github.com/iliyamo/clinic-space-site/internal/handler"
	"github.com/iliyamo/clinic-space-site/internal/middleware"
	"github.com/iliyamo/clinic-space-site/internal/queue"
	"github.com/iliyamo/clinic-space-site/internal/repository"
	"github.com/iliyamo/clinic-space-site/internal/router"
	"github.com/iliyamo/clinic-space-site/internal/service"
	"github.com/iliyamo/clinic-space-site/internal/view"
)

func main() {
	cfg, err := config.Load() // Load environment config
	if err != nil {
		panic(err)
	}
	log, err := config.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	// Redis is optional: without it pages are rendered on every request and
	// the rate limiter is off.
	rdb := config.NewRedisClient(log)
	if rdb != nil {
		defer rdb.Close()
	}

	// Keep the interface nil when the queue is disabled so the services
	// skip publishing entirely.
	var events service.EventPublisher
	if cfg.QueueEnabled {
		events = queue.NewPublisher(cfg.RabbitMQURL, log)
		go queue.StartEventConsumer(ctx, cfg.RabbitMQURL, "logs", log)
	}

	var fwd service.Forwarder = service.NoopForwarder{}
	if cfg.AnalyticsURL != "" {
		fwd = service.NewHTTPForwarder(cfg.AnalyticsURL, cfg.AnalyticsKey)
	}

	pricing := service.PricingPolicy{PromoThreshold: cfg.PromoThreshold, PromoHourly: cfg.PromoHourly}
	content := service.NewContentService(repository.NewPostRepo(db), repository.NewRoomRepo(db), log)
	leads := service.NewLeadService(repository.NewLeadRepo(db), events, cfg.WhatsAppNumber, log)
	relay := service.NewTrackingRelay(events, fwd, log)

	renderer, err := view.New()
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(log))

	router.RegisterRoutes(e, router.Deps{
		DB:       db,
		Pages:    handler.NewPageHandler(content, pricing, cfg.BaseURL),
		Public:   handler.NewPublicHandler(content, pricing, cfg.BaseURL),
		Leads:    handler.NewLeadHandler(leads),
		Tracking: handler.NewTrackingHandler(relay),
		Cache:    middleware.NewRedisCache(config.LoadCacheConfig(), rdb, log),
		Limit:    middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, log),
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
