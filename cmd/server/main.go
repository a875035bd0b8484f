package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/inkwellhq/inkwell/internal/auth"
	"github.com/inkwellhq/inkwell/internal/mailer"
	"github.com/inkwellhq/inkwell/internal/storage/postgres"
	"github.com/inkwellhq/inkwell/pkg/config"
	"github.com/inkwellhq/inkwell/pkg/httpserver"
	"github.com/inkwellhq/inkwell/pkg/jwt"
	"github.com/inkwellhq/inkwell/pkg/logger"
	"github.com/inkwellhq/inkwell/pkg/pg"
	"github.com/inkwellhq/inkwell/pkg/ratelimiter"
	"github.com/inkwellhq/inkwell/pkg/redis"
)

// appConfig aggregates the per-package configuration sections.
type appConfig struct {
	Log    logger.Config
	HTTP   httpserver.Config
	PG     pg.Config
	Redis  redis.Config
	Auth   auth.Config
	Mailer mailer.Config

	// RateLimitBackend selects the magic login limiter store.
	RateLimitBackend string `env:"RATE_LIMIT_BACKEND" envDefault:"memory"`
	// MagicLoginLimit and MagicLoginWindow cap the magic login request rate.
	MagicLoginLimit  int           `env:"MAGIC_LOGIN_RATE_LIMIT" envDefault:"10"`
	MagicLoginWindow time.Duration `env:"MAGIC_LOGIN_RATE_WINDOW" envDefault:"5m"`
}

func main() {
	ctx := context.Background()

	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Log, logger.WithAttr(logger.Component("server")))

	if err := run(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, "Server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, cfg.PG, log); err != nil {
		return err
	}

	tokens, err := jwt.New(cfg.Auth.JWTSecret)
	if err != nil {
		return err
	}

	checks := []func(context.Context) error{pg.Healthcheck(pool)}

	var limiterStore ratelimiter.Store
	if cfg.RateLimitBackend == "redis" {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		limiterStore = ratelimiter.NewRedisStore(client)
		checks = append(checks, redis.Healthcheck(client))
	} else {
		memStore := ratelimiter.NewMemoryStore()
		defer memStore.Close()
		limiterStore = memStore
	}

	bucket, err := ratelimiter.NewBucket(limiterStore, ratelimiter.Config{
		Capacity:       cfg.MagicLoginLimit,
		RefillRate:     cfg.MagicLoginLimit,
		RefillInterval: cfg.MagicLoginWindow,
	})
	if err != nil {
		return err
	}

	var sender auth.MagicLinkSender
	if cfg.Mailer.Configured() {
		sender, err = mailer.NewPostmarkMailer(cfg.Mailer)
		if err != nil {
			return err
		}
	} else {
		sender = mailer.NewDevMailer(log)
	}

	svc, err := auth.NewService(postgres.New(pool), tokens, cfg.Auth,
		auth.WithLogger(log),
		auth.WithMagicLinkSender(sender),
	)
	if err != nil {
		return err
	}

	handler := auth.NewHandler(svc, tokens,
		auth.WithHandlerLogger(log),
		auth.WithMagicLoginLimiter(bucket),
	)

	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Get("/health", httpserver.HealthCheckHandler(ctx, log, checks...))
	router.Mount("/auth", handler.Routes())

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}
