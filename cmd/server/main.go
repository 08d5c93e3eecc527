// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // civil zone rules must not depend on the host's zoneinfo

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/restaurant-api/internal/adapters/http"
	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/restaurant-api/internal/adapters/clients/objectstore"
	"github.com/jsamuelsen11/restaurant-api/internal/adapters/store/memory"
	"github.com/jsamuelsen11/restaurant-api/internal/adapters/store/postgres"
	"github.com/jsamuelsen11/restaurant-api/internal/app"
	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/admin"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/event"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/hours"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/menu"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/special"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/story"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/auth"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/config"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/health"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/httpclient"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/logging"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	bootstrapTimeout      = 30 * time.Second

	mediaServiceName = "media-storage"
	driverPostgres   = "postgres"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	converter, err := civiltime.NewConverter(cfg.Time.Zone)
	if err != nil {
		return fmt.Errorf("loading civil zone: %w", err)
	}
	zone := converter.ZoneInfo(converter.Now())
	logger.Info("civil time zone loaded",
		slog.String("zone", zone.Name),
		slog.String("abbreviation", zone.Abbreviation),
		slog.String("offset", zone.Offset),
		slog.Bool("is_dst", zone.IsDST),
	)

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, converter)

	if cfg.Database.Driver == driverPostgres {
		bootCtx, cancel := context.WithTimeout(ctx, bootstrapTimeout)
		db, err := postgres.Open(bootCtx, cfg.Database)
		cancel()
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer func() { _ = db.Close() }()
		do.ProvideValue(injector, db)
	}

	if cfg.Media.Enabled && cfg.Media.Backend == config.MediaBackendS3 {
		bootCtx, cancel := context.WithTimeout(ctx, bootstrapTimeout)
		client, err := objectstore.NewClient(bootCtx, cfg.Media.S3)
		cancel()
		if err != nil {
			return fmt.Errorf("creating S3 client: %w", err)
		}
		do.ProvideValue[objectstore.ObjectAPI](injector, client)
	}

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	if db, err := do.Invoke[*sql.DB](injector); err == nil {
		registry.Register(postgres.NewHealthChecker(db, cfg.Database.PingTimeout))
	}
	if cfg.Media.Enabled {
		if hc, ok := do.MustInvoke[ports.MediaClient](injector).(ports.HealthChecker); ok {
			registry.Register(hc)
		}
	}

	if err := bootstrapAdmin(ctx, injector, cfg); err != nil {
		return err
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// bootstrapAdmin creates the configured owner account on first start.
func bootstrapAdmin(ctx context.Context, injector do.Injector, cfg *config.Config) error {
	if cfg.Auth.Bootstrap.Email == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, bootstrapTimeout)
	defer cancel()

	svc := do.MustInvoke[ports.AuthService](injector)
	if err := svc.EnsureAdmin(ctx, cfg.Auth.Bootstrap.Email, cfg.Auth.Bootstrap.Password); err != nil {
		return fmt.Errorf("bootstrapping admin: %w", err)
	}
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// provideStore registers the ports.Store for one entity kind, backed by
// PostgreSQL when a *sql.DB is in the container and by memory otherwise.
func provideStore[T any, P domain.RecordPtr[T]](injector do.Injector, cfg *config.Config, kind string) {
	do.Provide(injector, func(i do.Injector) (ports.Store[T], error) {
		if cfg.Database.Driver == driverPostgres {
			db := do.MustInvoke[*sql.DB](i)
			return postgres.NewStore[T, P](db, cfg.Database.Table, kind), nil
		}
		return memory.NewStore[T, P](kind), nil
	})
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	paging := app.Paging{
		DefaultSize: cfg.Pagination.DefaultPageSize,
		MaxSize:     cfg.Pagination.MaxPageSize,
	}

	// Stores.
	provideStore[hours.OperationHours](injector, cfg, hours.Kind)
	provideStore[event.Event](injector, cfg, "event")
	provideStore[special.Special](injector, cfg, "special")
	provideStore[menu.Category](injector, cfg, "menu_category")
	provideStore[menu.Item](injector, cfg, "menu_item")
	provideStore[story.Story](injector, cfg, "story")
	provideStore[admin.Admin](injector, cfg, "admin")

	// Services.
	do.Provide(injector, func(i do.Injector) (ports.HoursService, error) {
		store := do.MustInvoke[ports.Store[hours.OperationHours]](i)
		return app.NewHoursService(store, do.MustInvoke[*civiltime.Converter](i), paging, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.EventService, error) {
		store := do.MustInvoke[ports.Store[event.Event]](i)
		return app.NewEventService(store, do.MustInvoke[*civiltime.Converter](i).Now, paging, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SpecialService, error) {
		store := do.MustInvoke[ports.Store[special.Special]](i)
		return app.NewSpecialService(store, do.MustInvoke[*civiltime.Converter](i), paging, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.MenuService, error) {
		return app.NewMenuService(
			do.MustInvoke[ports.Store[menu.Category]](i),
			do.MustInvoke[ports.Store[menu.Item]](i),
			paging, logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.StoryService, error) {
		return app.NewStoryService(do.MustInvoke[ports.Store[story.Story]](i), paging, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.OverviewService, error) {
		return app.NewOverviewService(
			do.MustInvoke[ports.HoursService](i),
			do.MustInvoke[ports.EventService](i),
			do.MustInvoke[ports.SpecialService](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TimeService, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTimeService(do.MustInvoke[*civiltime.Converter](i), metrics, logger), nil
	})

	// Admin authentication.
	do.Provide(injector, func(_ do.Injector) (ports.TokenIssuer, error) {
		return auth.NewTokenIssuer(cfg.Auth), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.PasswordHasher, error) {
		return auth.NewBcryptHasher(cfg.Auth.BcryptCost), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		return app.NewAuthService(
			do.MustInvoke[ports.Store[admin.Admin]](i),
			do.MustInvoke[ports.TokenIssuer](i),
			do.MustInvoke[ports.PasswordHasher](i),
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})

	// Media uploads, proxied to the media-storage service or written to S3.
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Media.Client, mediaServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.MediaClient, error) {
		if cfg.Media.Backend == config.MediaBackendS3 {
			return objectstore.NewS3Store(do.MustInvoke[objectstore.ObjectAPI](i), cfg.Media.S3, logger), nil
		}
		return acl.NewMediaClient(do.MustInvoke[*httpclient.Client](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.MediaService, error) {
		client := do.MustInvoke[ports.MediaClient](i)
		return app.NewMediaService(client, cfg.Media.AllowedTypes, cfg.Media.MaxUploadBytes, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Server.HealthCheckTimeout)), nil
	})

	// HTTP.
	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		converter := do.MustInvoke[*civiltime.Converter](i)
		menuSvc := do.MustInvoke[ports.MenuService](i)

		h := adapthttp.Handlers{
			Health:     handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			Time:       handlers.NewTimeHandler(do.MustInvoke[ports.TimeService](i)),
			Auth:       handlers.NewAuthHandler(do.MustInvoke[ports.AuthService](i)),
			Overview:   handlers.NewOverviewHandler(do.MustInvoke[ports.OverviewService](i), converter),
			Hours:      handlers.NewHoursHandler(do.MustInvoke[ports.HoursService](i), converter),
			Events:     handlers.NewEventHandler(do.MustInvoke[ports.EventService](i), converter),
			Specials:   handlers.NewSpecialHandler(do.MustInvoke[ports.SpecialService](i), converter),
			Categories: handlers.NewCategoryHandler(menuSvc),
			Items:      handlers.NewItemHandler(menuSvc),
			Stories:    handlers.NewStoryHandler(do.MustInvoke[ports.StoryService](i)),
		}
		if cfg.Media.Enabled {
			h.Media = handlers.NewMediaHandler(do.MustInvoke[ports.MediaService](i), cfg.Media.MaxUploadBytes)
		}
		return h, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(
			do.MustInvoke[adapthttp.Handlers](i),
			do.MustInvoke[ports.AuthService](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
