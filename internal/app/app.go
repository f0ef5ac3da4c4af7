package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/storefront/internal/cfg"
	v1Http "github.com/DRSN-tech/storefront/internal/delivery/v1/http"
	"github.com/DRSN-tech/storefront/internal/infrastructure/kafka"
	"github.com/DRSN-tech/storefront/internal/repository/memory"
	"github.com/DRSN-tech/storefront/internal/repository/redis"
	redisConv "github.com/DRSN-tech/storefront/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/closer"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	janitorInterval    = time.Minute
	topicEnsureTimeout = 10 * time.Second
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(0),
	}

	catalogRepo := memory.NewDefaultCatalogRepo()

	sessions, err := a.initSessionRepo()
	if err != nil {
		_ = a.closer.Close(context.Background())
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	journal, err := a.initOrderJournal()
	if err != nil {
		_ = a.closer.Close(context.Background())
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalogUC := usecase.NewCatalogUC(catalogRepo)
	cartUC := usecase.NewCartUC(catalogRepo, sessions, log)
	checkoutUC := usecase.NewCheckoutUC(catalogRepo, sessions, journal, cfg.Store.Location, cfg.Store.OrderIDPrefix, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log, cfg.Http, cfg.Session)
	router.Init(catalogUC, cartUC, checkoutUC)

	a.httpSrv = v1Http.NewServer(r, cfg.Http)

	return a, nil
}

func (a *App) initSessionRepo() (usecase.SessionRepository, error) {
	switch a.cfg.Session.Store {
	case config.SessionStoreRedis:
		redisClient := clients.NewRedisClient(a.cfg.Redis)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx); err != nil {
			_ = redisClient.Close()
			a.logger.Errorf(err, "failed to connect to redis")
			return nil, err
		}
		a.closer.AddFunc("redis", redisClient.Close)

		a.logger.Infof("session store: redis %s", a.cfg.Redis.Addr)
		return redis.NewSessionRepo(redisClient, redisConv.NewSessionConverterImpl(), a.cfg.Redis, a.cfg.Session.TTL, a.logger), nil
	default:
		repo := memory.NewSessionRepo(a.cfg.Session.TTL)
		repo.StartJanitor(janitorInterval)
		a.closer.AddFunc("memory session janitor", repo.Close)

		a.logger.Infof("session store: memory")
		return repo, nil
	}
}

// initOrderJournal возвращает nil, если Kafka не настроена: заказы тогда только логируются.
func (a *App) initOrderJournal() (usecase.OrderJournal, error) {
	if !a.cfg.Kafka.Enabled() {
		a.logger.Infof("KAFKA_BROKERS is not set, order journal goes to log only")
		return nil, nil
	}

	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	if err := producer.EnsureTopic(topicEnsureTimeout); err != nil {
		_ = producer.Close()
		a.logger.Errorf(err, "failed to ensure kafka topic")
		return nil, err
	}
	a.closer.AddFunc("kafka producer", producer.Close)

	worker := kafka.NewJournalWorker(producer, a.cfg.Kafka.QueueSize, a.logger)
	worker.Start()
	a.closer.Add("order journal", worker.Stop)

	a.logger.Infof("order journal: kafka topic %s", a.cfg.Kafka.Topic)
	return worker, nil
}

func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "resources shutdown error")
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}
