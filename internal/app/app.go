package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/haguru/docgate/config"
	"github.com/haguru/docgate/internal/documentservice"
	"github.com/haguru/docgate/internal/interfaces"
	appMetrics "github.com/haguru/docgate/internal/metrics"
	"github.com/haguru/docgate/internal/middleware"
	"github.com/haguru/docgate/internal/models"
	"github.com/haguru/docgate/internal/resolver"
	"github.com/haguru/docgate/internal/routes"
	"github.com/haguru/docgate/internal/server"
	"github.com/haguru/docgate/pkg/databases/mongo"
	"github.com/haguru/docgate/pkg/metrics"
	logger "github.com/haguru/docgate/pkg/zerolog"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/time/rate"
)

var ShutdownTimeout = 15 * time.Second

// App represents the main application, containing server and configuration.
// It loads the config file, connects to MongoDB and registers the routes.
type App struct {
	Server   interfaces.Server
	Config   *config.ServiceConfig
	Logger   interfaces.Logger
	dbClient interfaces.DBClient
}

// NewApp creates and configures a new App instance.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.ReadLocalConfig(configPath)
	if err != nil {
		return nil, err
	}

	env, err := config.ReadEnvOverrides(os.LookupEnv)
	if err != nil {
		return nil, err
	}
	config.ApplyEnvOverrides(cfg, env)

	validator := structValidator.New()
	if err := validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	log := logger.NewZerologLogger(cfg.ServiceName)
	log.SetLevel(cfg.LogLevel)

	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		log.Debug(fmt.Sprintf(format, args...))
	})); err != nil {
		log.Warn("Failed to set GOMAXPROCS", "error", err)
	}

	app := &App{
		Config: cfg,
		Logger: log,
	}

	metricsInstance := metrics.NewMetrics(cfg.ServiceName)
	appMetrics.Register(metricsInstance)

	dbClient, err := app.initializeDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database client: %w", err)
	}
	app.dbClient = dbClient

	defaults := models.CollectionRef{
		Database:   cfg.Database.MongoDB.DefaultDatabase,
		Collection: cfg.Database.MongoDB.DefaultCollection,
	}
	collectionResolver := resolver.NewResolver(dbClient, defaults)
	documentService := documentservice.NewDocumentService(collectionResolver, log, cfg.Database.MongoDB.ItemsField)

	route := routes.NewRoute(metricsInstance, documentService, collectionResolver, dbClient, log, validator)

	app.Server = server.NewServer(cfg.Host, cfg.Port, log)
	app.Server.Use(middleware.RequestIDMiddleware(log))
	if cfg.RateLimit.RequestsPerSecond > 0 {
		burst := cfg.RateLimit.Burst
		if burst == 0 {
			burst = int(cfg.RateLimit.RequestsPerSecond)
		}
		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), burst)
		app.Server.Use(middleware.RateLimitMiddleware(limiter, metricsInstance))
	}

	if err := RegisterRoutes(app.Server, route, metricsInstance); err != nil {
		_ = dbClient.Disconnect(context.Background())
		return nil, err
	}

	return app, nil
}

// RegisterRoutes adds every HTTP route, traced and instrumented, to srv.
func RegisterRoutes(srv interfaces.Server, route *routes.Route, m interfaces.Metrics) error {
	handlers := []struct {
		path    string
		handler func(w http.ResponseWriter, r *http.Request)
	}{
		{routes.MongoRouteAPI, route.Mongo},
		{routes.MongoFindAllRouteAPI, route.FindAll},
		{routes.ConfigRouteAPI, route.Config},
		{routes.ConfigInsertRouteAPI, route.ConfigInsert},
		{routes.ConfigUpdateItemAPI, route.UpdateItem},
		{routes.ConfigItemsRouteAPI, route.ConfigItems},
		{routes.HealthRouteAPI, route.Health},
	}

	for _, h := range handlers {
		traced := otelhttp.NewHandler(route.Instrument(h.path, h.handler), h.path)
		if err := srv.AddRoute(h.path, traced.ServeHTTP); err != nil {
			return fmt.Errorf("failed to add route %s: %w", h.path, err)
		}
	}

	metricsHandler := promhttp.HandlerFor(m.GetRegistry(), promhttp.HandlerOpts{})
	tracedMetricsHandler := otelhttp.NewHandler(metricsHandler, routes.MetricsRouteAPI)
	if err := srv.AddRoute(routes.MetricsRouteAPI, tracedMetricsHandler.ServeHTTP); err != nil {
		return fmt.Errorf("failed to add metrics route: %w", err)
	}

	return nil
}

// Run serves requests until SIGINT or SIGTERM, then drains in-flight
// requests and closes the MongoDB connection.
func (app *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Server.ListenAndServe()
	}()

	var serveErr error
	select {
	case serveErr = <-errCh:
	case <-ctx.Done():
		app.Logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if serveErr == nil {
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error("Failed to shut down server", "error", err)
		}
	}
	if err := app.dbClient.Disconnect(shutdownCtx); err != nil {
		app.Logger.Error("Failed to disconnect from MongoDB", "error", err)
	}

	if serveErr != nil {
		return fmt.Errorf("failed to start server: %w", serveErr)
	}
	return nil
}

func (app *App) initializeDBClient() (interfaces.DBClient, error) {
	mongoConfig := app.Config.Database.MongoDB

	dbClient, err := mongo.NewMongoDB(&mongoConfig, app.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MongoDB client: %w", err)
	}

	ctx := context.Background()
	if err := dbClient.Connect(ctx, config.BuildMongoURI(mongoConfig)); err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	created, err := dbClient.EnsureCollection(ctx, mongoConfig.DefaultDatabase, mongoConfig.DefaultCollection)
	if err != nil {
		_ = dbClient.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ensure default collection: %w", err)
	}
	if created {
		app.Logger.Info("Default collection created",
			"database", mongoConfig.DefaultDatabase,
			"collection", mongoConfig.DefaultCollection)
	}

	return dbClient, nil
}
