package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"weather-widget/configs"
	_ "weather-widget/docs"
	"weather-widget/internal/application/controller"
	"weather-widget/internal/application/middleware"
	"weather-widget/internal/application/registry"
	"weather-widget/internal/application/schedule"
	"weather-widget/internal/application/view"
	"weather-widget/internal/domain/gateway/api"
	"weather-widget/internal/domain/gateway/queue"
	"weather-widget/internal/domain/gateway/session"
	"weather-widget/internal/domain/usecase/health"
	"weather-widget/internal/domain/usecase/weather"
	"weather-widget/internal/domain/usecase/widget"
	"weather-widget/internal/infra/aws"
	pkghttp "weather-widget/pkg/http"
	"weather-widget/pkg/log"
	"weather-widget/pkg/msg"
	"weather-widget/pkg/redis"
	"weather-widget/pkg/resource"
	"weather-widget/pkg/util/weatherutils"
)

func main() {
	defer log.Sync()

	if err := resource.Init(configs.Env.PropertiesPath); err != nil {
		log.Fatal("Failed to load properties", zap.Error(err))
	}
	if err := msg.Init(configs.Env.MessagesPath); err != nil {
		log.Fatal("Failed to load messages", zap.Error(err))
	}
	resource.SetDefault("app.session.ttl", "30m")
	resource.SetDefault("app.session.evict-cron", "@every 5m")

	log.Info(msg.GetMessage("app.start"), zap.String("application", configs.Env.ApplicationName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init infra
	contextPath := resource.GetString("app.server.context-path")
	if contextPath == "" {
		contextPath = configs.Env.ContextPath
	}
	sessionTTL := resource.GetDuration("app.session.ttl")

	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	e.GET(contextPath+"/swagger/*", echoSwagger.WrapHandler)

	group := e.Group(contextPath, middleware.Session(middleware.SessionConfig{
		CookieName: resource.GetString("app.session.cookie-name"),
		Path:       contextPath,
		TTL:        sessionTTL,
	}))

	// Init Gateways
	weatherGateway := api.NewWeatherGateway(
		resource.GetString("app.weather-api.base-url"),
		resource.GetString("app.weather-api.key"),
		resource.GetInt("app.weather-api.forecast-days"),
		pkghttp.ClientOptions{
			ConnectionTimeout: resource.GetDuration("app.weather-api.connection-timeout"),
			ReadTimeout:       resource.GetDuration("app.weather-api.read-timeout"),
		},
	)
	historyGateway, closeHistory := newHistoryGateway(ctx, sessionTTL)
	defer closeHistory()
	eventGateway := newSearchEventGateway(ctx)

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(historyGateway, eventGateway)
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway)
	widgetConfig := widget.Config{
		DefaultCity: resource.GetString("app.widget.default-city"),
		Unit:        weatherutils.Unit(resource.GetString("app.widget.unit")),
	}
	widgets := registry.NewRegistry(func(sessionID string, v *view.HTMLView) widget.UseCase {
		config := widgetConfig
		config.SessionID = sessionID
		return widget.NewWidgetUseCase(config, weatherGateway, historyGateway, eventGateway, v)
	})

	// Init Controller
	healthController := controller.NewHealthController(group, healthUseCase)
	weatherController := controller.NewWeatherController(group, weatherUseCase)
	widgetController := controller.NewWidgetController(group, widgets, contextPath)

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()
	widgetController.InitWidgetRoutes()

	// Init Schedule
	sessionScheduler := schedule.NewSessionScheduler(widgets, resource.GetString("app.session.evict-cron"), sessionTTL)
	if err := sessionScheduler.InitSessionScheduleTasks(); err != nil {
		log.Fatal("Failed to schedule session eviction", zap.Error(err))
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	sessionScheduler.Stop(shutdownCtx)
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down server", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stop"))
}

// newHistoryGateway picks the recent search store from app.session.store
func newHistoryGateway(ctx context.Context, ttl time.Duration) (session.HistoryGateway, func()) {
	if resource.GetString("app.session.store") == "memory" {
		return session.NewMemoryHistoryGateway(ttl), func() {}
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithPool(redis.Pool{
			MinIdleConns: resource.GetInt("app.redis.pool.min-idle-conns"),
			MaxIdleConns: resource.GetInt("app.redis.pool.max-idle-conns"),
			MaxActive:    resource.GetInt("app.redis.pool.max-active"),
			MaxRetries:   resource.GetInt("app.redis.pool.max-retries"),
			DialTimeout:  resource.GetDuration("app.redis.pool.dial-timeout"),
			ReadTimeout:  resource.GetDuration("app.redis.pool.read-timeout"),
			WriteTimeout: resource.GetDuration("app.redis.pool.write-timeout"),
			PoolTimeout:  resource.GetDuration("app.redis.pool.pool-timeout"),
		}).
		WithCacheTTL(session.HistoryKey, ttl)
	if err := config.Validate(); err != nil {
		log.Fatal("Invalid redis configuration", zap.Error(err))
	}

	client := redis.NewClient(config)
	if err := client.Ping(ctx); err != nil {
		log.Warn("Redis is not reachable, recent searches will not persist until it is", zap.Error(err))
	}
	return session.NewRedisHistoryGateway(client, ttl), func() {
		if err := client.Close(); err != nil {
			log.Error("Failed to close redis client", zap.Error(err))
		}
	}
}

// newSearchEventGateway publishes to SQS when app.events.enabled is set
func newSearchEventGateway(ctx context.Context) queue.SearchEventGateway {
	if !resource.GetBool("app.events.enabled") {
		return queue.NewDisabledSearchEventGateway()
	}

	cfg, err := aws.NewConfig(ctx)
	if err != nil {
		log.Fatal("Failed to configure AWS", zap.Error(err))
	}
	sender := aws.NewSQSSenderAdapter(aws.NewSqsClient(cfg))
	return queue.NewSearchEventGateway(sender, resource.GetString("app.events.queue-name"))
}
