package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"airport-transfer-board/config"
	deliveryHttp "airport-transfer-board/internal/delivery/http"
	"airport-transfer-board/internal/delivery/http/handler"
	"airport-transfer-board/internal/delivery/http/middleware"
	"airport-transfer-board/internal/infrastructure/cache"
	"airport-transfer-board/internal/render"
	"airport-transfer-board/internal/repository"
	"airport-transfer-board/internal/usecase"
	"airport-transfer-board/pkg/clock"
	"airport-transfer-board/pkg/metrics"
	"airport-transfer-board/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

const (
	metricsNamespace = "transfer_board"
	shutdownTimeout  = 10 * time.Second
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	RedisClient *redis.Client
	Board       usecase.BoardUsecase
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log, err := setupLogger(cfg.App)
	if err != nil {
		return nil, err
	}
	app.Log = log
	log.Info("Configuration loaded successfully")

	// Redis is only dialled when one of the sources lives there
	if repository.IsRedisLocator(cfg.Board.TodaySource) || repository.IsRedisLocator(cfg.Board.TomorrowSource) {
		redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		app.RedisClient = redisClient
	}

	board, server, err := initializeServer(cfg, log, app.RedisClient)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Board = board
	app.Server = server

	return app, nil
}

// setupLogger configures a JSON logrus logger at the configured level
func setupLogger(cfg config.AppConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(level)
	return log, nil
}

// initializeServer wires sources, usecases, handlers and the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, redisClient *redis.Client) (usecase.BoardUsecase, *http.Server, error) {
	deps := repository.SourceDeps{
		FS:          afero.NewOsFs(),
		HTTPClient:  &http.Client{},
		RedisClient: redisClient,
	}

	// Initialize sources
	todaySource, err := repository.NewBookingSource(cfg.Board.TodaySource, deps)
	if err != nil {
		return nil, nil, fmt.Errorf("today source %q: %w", cfg.Board.TodaySource, err)
	}
	tomorrowSource, err := repository.NewBookingSource(cfg.Board.TomorrowSource, deps)
	if err != nil {
		return nil, nil, fmt.Errorf("tomorrow source %q: %w", cfg.Board.TomorrowSource, err)
	}

	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		return nil, nil, err
	}
	m := metrics.NewMetrics(metricsNamespace)

	// Initialize usecases
	loaderUsecase := usecase.NewLoaderUsecase(log, todaySource, tomorrowSource, cfg.Board.FetchTimeout)
	boardUsecase := usecase.NewBoardUsecase(log, usecase.BoardConfig{
		PageSize:          cfg.Board.PageSize,
		RotationInterval:  cfg.Board.RotationInterval,
		InactivityTimeout: cfg.Board.InactivityTimeout,
		ContactMessage:    cfg.Board.ContactMessage,
		QRImageURL:        cfg.Board.QRImageURL,
	}, loaderUsecase, renderer, m, clock.New())

	// Initialize handlers
	kioskHandler := handler.NewKioskHandler(boardUsecase, renderer, cfg.Board.RefreshInterval, log)
	boardHandler := handler.NewBoardHandler(boardUsecase, validator.NewValidator())

	// Initialize middleware
	requestLoggerMiddleware := middleware.NewRequestLoggerMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(kioskHandler, boardHandler, m.Handler(), requestLoggerMiddleware, corsMiddleware)

	return boardUsecase, &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 5 * time.Second,
	}, nil
}

// Run serves HTTP, performs the startup load and blocks until SIGINT/SIGTERM
func (app *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	// A failed load leaves the error message on the board; the server keeps running
	g.Go(func() error {
		if err := app.Board.Load(gctx); err != nil {
			app.Log.Errorf("Failed to load bookings: %+v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.shutdown()
		return nil
	})

	return g.Wait()
}

func (app *App) shutdown() {
	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close stops the board timers and closes the Redis connection
func (app *App) Close() {
	if app.Board != nil {
		app.Board.Stop()
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
