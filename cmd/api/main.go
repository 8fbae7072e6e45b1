package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.uber.org/zap"

	"github.com/zyreny/zye/cmd"
	_ContentHttpDelivery "github.com/zyreny/zye/content/delivery/http"
	_ContentRepo "github.com/zyreny/zye/content/repository"
	_ContentUcase "github.com/zyreny/zye/content/usecase"
	_LinkHttpDelivery "github.com/zyreny/zye/link/delivery/http"
	_LinkRepo "github.com/zyreny/zye/link/repository"
	_LinkUcase "github.com/zyreny/zye/link/usecase"
	"github.com/zyreny/zye/metrics"
	_MyMiddleware "github.com/zyreny/zye/middleware"
	"github.com/zyreny/zye/preview"
	"github.com/zyreny/zye/store"
	"github.com/zyreny/zye/web"
	"github.com/zyreny/zye/web/render"
)

func main() {
	// Logging
	logger, err := zap.NewDevelopment(zap.AddCaller())
	if err != nil {
		log.Println("can't create logger: ", err)
		return
	}
	defer func() {
		// do not need to check for errors
		_ = logger.Sync()
	}()

	if err := run(logger); err != nil {
		logger.Error("shutting down, error: ", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	// Configuration
	configPath := cmd.ConfigPath("config.yaml")
	logger.Info("Config path", zap.String("path", configPath))
	cfg, err := cmd.AppConfig(configPath, logger)
	if err != nil {
		return err
	}

	// Initialize context
	timeoutContext := time.Duration(cfg.Server.Timeout) * time.Second
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize tracing
	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.Server.OtlpAddress),
	)
	if err != nil {
		return err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			// the service name used to display traces in backends
			semconv.ServiceName("zye-api"),
		),
	)
	if err != nil {
		return err
	}

	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()), // dev env only
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp),
	)
	otel.SetTracerProvider(tp)
	tracer := otel.Tracer("zye-tracer")
	defer func() {
		if err = tp.Shutdown(ctx); err != nil {
			logger.Error("shutdown tracer provider", zap.Error(err))
		}
		if err = traceExporter.Shutdown(ctx); err != nil {
			logger.Error("shutdown tracing exporter", zap.Error(err))
		}
	}()

	// Initialize metrics
	metricExporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithEndpoint(cfg.Server.OtlpAddress),
	)
	if err != nil {
		return err
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(10*time.Second))),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(meterProvider)

	defer func() {
		if err = meterProvider.Shutdown(ctx); err != nil {
			logger.Error("shutdown meter provider", zap.Error(err))
		}
	}()

	// Echo configure
	e := echo.New()
	middL := _MyMiddleware.InitMiddleware(logger)
	e.Use(middL.CORS)
	e.Use(middL.Logger)
	e.Use(middleware.RecoverWithConfig(middleware.DefaultRecoverConfig))
	e.Use(otelecho.Middleware("zye", otelecho.WithTracerProvider(tp)))
	e.Use(metrics.Middleware(metrics.WithMeterProvider(meterProvider)))

	// Create database connections
	client, err := store.Open(ctx, cfg.MongoConfig, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err = client.Disconnect(ctx); err != nil {
			logger.Error("mongodb client disconnect error: ", zap.Error(err))
		}
	}()

	if err = store.EnsureLinkIndexes(ctx, client.Database(cfg.MongoConfig.Name)); err != nil {
		return err
	}

	contentDB, err := store.OpenSQLite(cfg.SQLiteConfig)
	if err != nil {
		return err
	}

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err = store.Seed(ctx, client.Database(cfg.MongoConfig.Name), contentDB); err != nil {
			return fmt.Errorf("can't seed databases: %w", err)
		}
		logger.Info("databases seeded")
		return nil
	}

	var cache *redis.Client
	if cfg.Redis.Address != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.Redis.Address})
		if err := cache.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, preview cache disabled", zap.Error(err))
			cache = nil
		}
	}

	// Initialize validator
	v, err := web.NewAppValidator()
	if err != nil {
		return err
	}
	e.Validator = v

	// Initialize page renderer
	renderer, err := render.New()
	if err != nil {
		return err
	}

	// Create link API
	lr := _LinkRepo.NewMongoLinkRepository(client, cfg.MongoConfig.Name, logger, tracer)
	pg := preview.NewGenerator(cfg.Server.BaseURL, cache, logger)
	lu := _LinkUcase.NewLinkUsecase(lr, pg, cfg.Server.BaseURL, timeoutContext, tracer)
	lh, err := _LinkHttpDelivery.NewLinkHandler(lu, renderer, v, logger, tracer)
	if err != nil {
		return fmt.Errorf("link handler creation failed: %w", err)
	}
	lh.RegisterRoutes(e)

	// Create content API
	cr := _ContentRepo.NewSQLiteContentRepository(contentDB, logger, tracer)
	cu := _ContentUcase.NewContentUsecase(cr, timeoutContext, tracer)
	ch := _ContentHttpDelivery.NewContentHandler(cu, v, logger, tracer)
	ch.RegisterRoutes(e, middL.RequireAPIKey(cfg.Auth.APIKeyHash))

	// Status check
	store.NewStatusHandler(e, client.Database(cfg.MongoConfig.Name))

	go func() {
		if err := e.Start(cfg.Server.Address); err != nil {
			logger.Error("can't start server: ", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancelSrv := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelSrv()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("can't shutdownn server: %w", err)
	}

	return nil
}
