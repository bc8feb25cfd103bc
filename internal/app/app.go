package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refledger/internal/config"
	"github.com/GlebRadaev/refledger/internal/handlers"
	"github.com/GlebRadaev/refledger/internal/metrics"
	"github.com/GlebRadaev/refledger/internal/notify"
	"github.com/GlebRadaev/refledger/internal/pg"
	"github.com/GlebRadaev/refledger/internal/profile"
	"github.com/GlebRadaev/refledger/internal/repo"
	"github.com/GlebRadaev/refledger/internal/service"
	"github.com/GlebRadaev/refledger/internal/service/cycleservice"
	"github.com/GlebRadaev/refledger/internal/sweeper"
	"github.com/GlebRadaev/refledger/pkg/auth"
	"github.com/GlebRadaev/refledger/pkg/clients"
	"github.com/GlebRadaev/refledger/pkg/logger"
	"github.com/GlebRadaev/refledger/pkg/retry"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg        *config.Config
	api        *handlers.Handlers
	srv        *service.Services
	repo       *repo.Repositories
	dispatcher *notify.Dispatcher
	sweeper    *sweeper.Service
	pool       *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	sink, err := newSink(cfg)
	if err != nil {
		return fmt.Errorf("can't build notification sink: %w", err)
	}

	reward, err := cfg.Reward()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.repo = repo.New(conn)
	a.dispatcher = notify.NewDispatcher(sink, cfg.NotifyWorkers)

	var names profile.Names
	if cfg.ProfileAddress != "" {
		names = profile.New(cfg.ProfileAddress, clients.NewHTTPClient(), a.repo.UserRepo)
	}
	hasher, err := auth.NewHashService(cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("can't build password hasher: %w", err)
	}
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	a.srv = service.New(a.repo, service.Deps{
		TXManager: txManager,
		Retrier: retry.New(retry.Config{
			MaxRetries: cfg.RetryMax,
			BaseDelay:  cfg.RetryBaseDelay,
			MaxDelay:   cfg.RetryMaxDelay,
			OnRetry: func(int, error) {
				metrics.ConflictRetries.Inc()
			},
		}),
		Names:    names,
		Notifier: a.dispatcher,
		Hasher:   hasher,
		JWT:      jwtService,
		Reward:   reward,
		Cycles: cycleservice.Config{
			Threshold: cfg.CycleThreshold,
			Window:    cfg.CycleWindow,
		},
	})
	a.api = handlers.New(a.srv, jwtService, cfg.ServiceAPIKey)
	a.sweeper = sweeper.New(a.srv.CycleService, cfg.SweepInterval)

	if cfg.ServiceAPIKey == "" {
		zap.L().Warn("SERVICE_API_KEY is empty, internal and admin routes reject every request")
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startSweeper(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func newSink(cfg *config.Config) (notify.Sink, error) {
	if cfg.RedisURL == "" {
		zap.L().Info("REDIS_URL is empty, notifications are logged only")
		return notify.LogSink{}, nil
	}
	client, err := notify.NewRedisClient(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	return notify.NewRedisSink(client, cfg.NotifyChannel), nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
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

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
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

func (a *Application) startSweeper(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.sweeper.Run(ctx)
	}()
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
	a.stop()

	return appErr
}

// stop releases what the stopped servers were still using.
func (a *Application) stop() {
	if a.dispatcher != nil {
		a.dispatcher.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
