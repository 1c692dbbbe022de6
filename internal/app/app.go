package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pr-poehali-dev/lordhost-game-server/internal/config"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/dto"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/handlers"
	ordershandlers "github.com/pr-poehali-dev/lordhost-game-server/internal/handlers/orders"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/metrics"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/notify"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/pg"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/provisioning"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/repo"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/service"
	"github.com/pr-poehali-dev/lordhost-game-server/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	publisher notify.Publisher

	errCh chan error
	wg    sync.WaitGroup
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	if cfg.DatabaseConfigured() {
		if err := pg.RunMigrations(ctx, cfg.Database); err != nil {
			zap.L().Error("migrations failed: ", zap.Error(err))
			return fmt.Errorf("can't run migrations: %w", err)
		}
	} else {
		zap.L().Warn("DATABASE_URL is not set, order requests will fail until it is configured")
	}

	a.Init(cfg)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	zap.L().Info("all systems started successfully")
	return nil
}

// Init wires repositories, services and handlers without serving anything.
func (a *Application) Init(cfg *config.Config) {
	a.cfg = cfg
	a.publisher = newPublisher(cfg)
	a.repo = repo.New(pg.NewConnector(cfg.Database, cfg.ConnectTimeout))
	a.srv = service.New(a.repo, provisioning.NewPlaceholder(), a.publisher, cfg)
	a.api = handlers.New(a.srv, cfg, metrics.New())
}

// Invoke serves a single invocation event. Init must be called first.
func (a *Application) Invoke(ctx context.Context, req dto.Request) dto.Response {
	return ordershandlers.New(a.srv.OrderService, a.cfg.ExposeErrors).Handle(ctx, req)
}

// Close releases the broker connection.
func (a *Application) Close() error {
	if a.publisher == nil {
		return nil
	}
	return a.publisher.Close()
}

// newPublisher falls back to dropping events when the broker is not
// configured or can't be reached. Orders never depend on it.
func newPublisher(cfg *config.Config) notify.Publisher {
	if cfg.AMQPURL == "" {
		return notify.Noop{}
	}
	p, err := notify.Dial(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		zap.L().Error("order events disabled", zap.Error(err))
		return notify.Noop{}
	}
	return p
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		g, gCtx := errgroup.WithContext(sCtx)
		g.Go(func() error {
			return server.Shutdown(gCtx)
		})
		g.Go(a.Close)
		if err := g.Wait(); err != nil {
			zap.L().Error("shutdown finished with error", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
