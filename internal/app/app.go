package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/cookbook-backend/internal/adapter/metrics"
	"github.com/heartmarshall/cookbook-backend/internal/adapter/notify"
	"github.com/heartmarshall/cookbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cookbook-backend/internal/auth"
	"github.com/heartmarshall/cookbook-backend/internal/config"
	"github.com/heartmarshall/cookbook-backend/internal/eventbus"
	"github.com/heartmarshall/cookbook-backend/internal/transport/middleware"
	"github.com/heartmarshall/cookbook-backend/internal/transport/rest"
)

// Run loads configuration, connects to PostgreSQL (and Redis when enabled),
// wires the services and serves the API and metrics listeners until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("addr", cfg.Server.Addr()),
		slog.Bool("redis", cfg.Redis.Enabled),
		slog.Bool("metrics", cfg.Metrics.Enabled),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	bus := eventbus.New(logger)
	health := []rest.Component{{Name: "database", Pinger: pool}}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	bus.Subscribe("metrics", metrics.NewCollector(registry).Handle)

	if cfg.Redis.Enabled {
		client, err := notify.NewClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close() //nolint:errcheck

		bus.Subscribe("notify", notify.NewPublisher(client, cfg.Redis.Channel, logger).Handle)
		health = append(health, rest.Component{Name: "redis", Pinger: redisPinger(client)})
	}

	c := NewContainer(cfg, pool, bus, logger)
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	api := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewHandler(c, verifier, logger, health...),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	servers := []*http.Server{api}

	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, metrics.Handler(registry))
		servers = append(servers, &http.Server{
			Addr:        cfg.Metrics.Addr,
			Handler:     mux,
			ReadTimeout: cfg.Server.ReadTimeout,
		})
	}

	return serve(ctx, logger, cfg.Server, servers...)
}

// NewHandler builds the API handler with its middleware chain.
func NewHandler(c *Container, verifier *auth.Verifier, logger *slog.Logger, health ...rest.Component) http.Handler {
	router := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(BuildVersion(), health...),
		Ingredients: rest.NewCatalogHandler(c.Ingredients, c.IngredientMerge, logger),
		Tags:        rest.NewCatalogHandler(c.Tags, c.TagMerge, logger),
		Units:       rest.NewUnitHandler(c.Units, logger),
		Members:     rest.NewMemberHandler(c.Members, logger),
		Audit:       rest.NewAuditHandler(c.Audit, logger),
	})

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Auth(verifier),
	)(router)
}

// serve runs every server until ctx is done or one of them fails, then shuts
// them all down within the configured timeout.
func serve(ctx context.Context, logger *slog.Logger, cfg config.ServerConfig, servers ...*http.Server) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range servers {
		g.Go(func() error {
			logger.Info("listening", slog.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve %s: %w", srv.Addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("shutdown %s: %w", srv.Addr, err))
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

func redisPinger(client *redis.Client) rest.PingFunc {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
